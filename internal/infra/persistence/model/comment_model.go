package model

import "github.com/google/uuid"

// CommentModel is the database representation of a plant comment.
// AuthorUsername is nullable so comments survive account deletion.
type CommentModel struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PlantID        uuid.UUID  `gorm:"column:plant_id;type:uuid;not null;index"`
	AuthorUsername *string    `gorm:"column:author_username;index"`
	Author         *UserModel `gorm:"foreignKey:AuthorUsername;references:Username;constraint:OnDelete:SET NULL"`
	Content        string     `gorm:"column:content;not null"`
}

// TableName specifies the table name for the CommentModel
func (CommentModel) TableName() string {
	return "comments"
}
