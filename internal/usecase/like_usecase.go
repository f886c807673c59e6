package usecase

import (
	"context"

	"flora/internal/domain/entity"

	"github.com/google/uuid"
)

// AddLikeInput defines the data required to like a plant.
type AddLikeInput struct {
	Username string
	PlantID  uuid.UUID
}

// LikeUsecase defines the interface for recording plant likes.
type LikeUsecase interface {
	AddPlantToLikedPlants(ctx context.Context, input *AddLikeInput) (*entity.UserLikedPlant, error)
}
