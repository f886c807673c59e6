// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// User is the core account entity. The username is the primary identity:
// it is unique, case-sensitive, and immutable once set.
type User struct {
	Username string // Primary identity of the account.
	Email    string // Contact email, unique across accounts.
	Password string // One-way hash of the credential. Never holds plaintext.
	Name     string // Display name.
	Surname  string
	Role     Role // Privilege label, defaults to RoleStandardUser on registration.

	LikedPlants []*UserLikedPlant // Plants this user has liked. Loaded on demand.
	Badges      []*UserBadge      // Badges granted to this user. Loaded on demand.
}

// UserLikedPlant records that a user liked a plant.
type UserLikedPlant struct {
	ID       uuid.UUID
	Username string
	PlantID  uuid.UUID
	Plant    *Plant // Resolved plant, populated when the relation is loaded with its target.
}
