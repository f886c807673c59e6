package entity

import "github.com/google/uuid"

// PlantType is the enumerated category of a plant.
type PlantType string

const (
	PlantTypeFlower    PlantType = "Flower"
	PlantTypeVegetable PlantType = "Vegetable"
	PlantTypeFruit     PlantType = "Fruit"
	PlantTypeHerb      PlantType = "Herb"
	PlantTypeTree      PlantType = "Tree"
)

// String returns the string representation of the PlantType.
func (t PlantType) String() string {
	return string(t)
}

// IsValid checks if the PlantType is a valid value.
func (t PlantType) IsValid() bool {
	switch t {
	case PlantTypeFlower, PlantTypeVegetable, PlantTypeFruit, PlantTypeHerb, PlantTypeTree:
		return true
	default:
		return false
	}
}

// Plant is a catalog entry users can browse, comment on, and like.
type Plant struct {
	ID              uuid.UUID
	Name            string
	Type            PlantType
	Description     string
	Maintenance     string
	Planting        string
	Predispositions string

	Comments []*Comment // Comments attached to this plant. Loaded on demand.
}
