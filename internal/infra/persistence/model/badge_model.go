package model

import "github.com/google/uuid"

// BadgeModel is the database representation of an achievement badge.
type BadgeModel struct {
	ID   uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"column:name;uniqueIndex;not null"`
}

// TableName specifies the table name for the BadgeModel
func (BadgeModel) TableName() string {
	return "badges"
}

// UserBadgeModel records a badge grant. Grants are removed with their badge.
type UserBadgeModel struct {
	ID       uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username string      `gorm:"column:username;not null;index"`
	BadgeID  uuid.UUID   `gorm:"column:badge_id;type:uuid;not null;index"`
	Badge    *BadgeModel `gorm:"foreignKey:BadgeID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserBadgeModel
func (UserBadgeModel) TableName() string {
	return "user_badges"
}
