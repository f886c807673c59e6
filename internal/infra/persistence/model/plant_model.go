package model

import "github.com/google/uuid"

// PlantModel is the database representation of a catalog plant.
type PlantModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"column:name;not null"`
	Type            string    `gorm:"column:type;not null"`
	Description     string    `gorm:"column:description"`
	Maintenance     string    `gorm:"column:maintenance"`
	Planting        string    `gorm:"column:planting"`
	Predispositions string    `gorm:"column:predispositions"`

	Comments []*CommentModel `gorm:"foreignKey:PlantID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the PlantModel
func (PlantModel) TableName() string {
	return "plants"
}
