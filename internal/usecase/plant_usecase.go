package usecase

import (
	"context"

	"flora/internal/domain/entity"

	"github.com/google/uuid"
)

// PlantUsecase defines the interface for catalog-related business operations.
type PlantUsecase interface {
	FetchAllPlants(ctx context.Context) ([]*entity.Plant, error)
	// FetchAllPlantsByType returns only plants whose category exactly
	// matches the given type. Empty slice on no match, never nil.
	FetchAllPlantsByType(ctx context.Context, plantType entity.PlantType) ([]*entity.Plant, error)
	FetchPlantByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)
	// FetchPlantByName scans the catalog for an exact name match.
	FetchPlantByName(ctx context.Context, name string) (*entity.Plant, error)
	PlantExists(ctx context.Context, id uuid.UUID) (bool, error)

	CreatePlant(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
	UpdatePlant(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
	DeletePlant(ctx context.Context, plant *entity.Plant) (*entity.Plant, error)
}

// PlantReader is the narrow read capability other services depend on.
type PlantReader interface {
	FetchPlantByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)
}
