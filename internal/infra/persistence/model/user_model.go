// Package model contains the GORM data models for the persistence layer.
// Database concerns like table names, keys, and constraints live here so
// the domain entities stay free of storage tags.
package model

import "github.com/google/uuid"

// UserModel is the database representation of a user account.
// Accounts are keyed by username, not a surrogate id.
type UserModel struct {
	Username string `gorm:"column:username;primaryKey"`
	Email    string `gorm:"column:email;uniqueIndex;not null"`
	Password string `gorm:"column:password;not null"`
	Name     string `gorm:"column:name"`
	Surname  string `gorm:"column:surname"`
	Role     string `gorm:"column:role;not null"`

	LikedPlants []*UserLikedPlantModel `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
	Badges      []*UserBadgeModel      `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserModel
func (UserModel) TableName() string {
	return "users"
}

// UserLikedPlantModel links a user to a plant they liked.
type UserLikedPlantModel struct {
	ID       uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username string      `gorm:"column:username;not null;index"`
	PlantID  uuid.UUID   `gorm:"column:plant_id;type:uuid;not null;index"`
	Plant    *PlantModel `gorm:"foreignKey:PlantID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserLikedPlantModel
func (UserLikedPlantModel) TableName() string {
	return "user_liked_plants"
}
