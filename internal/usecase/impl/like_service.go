package impl

import (
	"context"
	"log/slog"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/usecase"

	"github.com/google/uuid"
)

// likeService implements the LikeUsecase interface.
type likeService struct {
	likeStorage repository.Storage[entity.UserLikedPlant]
	plants      usecase.PlantReader
	users       usecase.UserReader
	logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(
	likeStorage repository.Storage[entity.UserLikedPlant],
	plants usecase.PlantReader,
	users usecase.UserReader,
	logger *slog.Logger,
) usecase.LikeUsecase {
	return &likeService{
		likeStorage: likeStorage,
		plants:      plants,
		users:       users,
		logger:      logger,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddPlantToLikedPlants validates the input, resolves the user and the
// plant, then persists the like relation. The two input fields share one
// combined check and one failure message.
func (srv *likeService) AddPlantToLikedPlants(ctx context.Context, input *usecase.AddLikeInput) (*entity.UserLikedPlant, error) {
	if input == nil {
		return nil, domainerrors.ErrNilRequest
	}
	if input.Username == "" || input.PlantID == uuid.Nil {
		return nil, domainerrors.ErrLikeFieldsRequired
	}

	user, err := srv.users.FetchUserByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	plant, err := srv.plants.FetchPlantByID(ctx, input.PlantID)
	if err != nil {
		return nil, err
	}

	like := &entity.UserLikedPlant{
		Username: user.Username,
		PlantID:  plant.ID,
		Plant:    plant,
	}

	created, err := srv.likeStorage.Insert(ctx, like)
	if err != nil {
		srv.log(ctx).Warn("Failed to add like",
			slog.String("username", input.Username),
			slog.String("plantID", input.PlantID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	created.Plant = plant

	return created, nil
}
