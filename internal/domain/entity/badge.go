package entity

import "github.com/google/uuid"

// Badge is an achievement users can earn. The name is the business key
// used for lookup and granting.
type Badge struct {
	ID   uuid.UUID
	Name string
}

// UserBadge records that a badge was granted to a user. Grants are
// deleted together with their badge.
type UserBadge struct {
	ID       uuid.UUID
	Username string
	BadgeID  uuid.UUID
	Badge    *Badge
}
