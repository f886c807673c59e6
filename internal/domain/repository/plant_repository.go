package repository

import (
	"context"

	"flora/internal/domain/entity"

	"github.com/google/uuid"
)

// PlantLookup is the narrow by-id read capability for plants. The
// catalog's single-plant reads go through it so implementations can
// load the plant together with its comments.
type PlantLookup interface {
	// FetchPlantByID returns the plant with the given id, or
	// domain errors.ErrPlantNotFound when it does not exist.
	FetchPlantByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)
}
