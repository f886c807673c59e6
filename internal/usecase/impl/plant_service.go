package impl

import (
	"context"
	"log/slog"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/errors"
	"flora/internal/usecase"

	"github.com/google/uuid"
)

// plantService implements the PlantUsecase interface.
type plantService struct {
	plantStorage repository.Storage[entity.Plant]
	plantLookup  repository.PlantLookup
	logger       *slog.Logger
}

// NewPlantService is the constructor for plantService.
func NewPlantService(
	plantStorage repository.Storage[entity.Plant],
	plantLookup repository.PlantLookup,
	logger *slog.Logger,
) usecase.PlantUsecase {
	return &plantService{
		plantStorage: plantStorage,
		plantLookup:  plantLookup,
		logger:       logger,
	}
}

func (srv *plantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *plantService) FetchAllPlants(ctx context.Context) ([]*entity.Plant, error) {
	return srv.plantStorage.FetchAll(ctx)
}

// FetchAllPlantsByType filters the catalog in memory by exact category match.
func (srv *plantService) FetchAllPlantsByType(ctx context.Context, plantType entity.PlantType) ([]*entity.Plant, error) {
	plants, err := srv.plantStorage.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.Plant, 0, len(plants))
	for _, plant := range plants {
		if plant.Type == plantType {
			matches = append(matches, plant)
		}
	}

	return matches, nil
}

func (srv *plantService) FetchPlantByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrEmptyID
	}

	return srv.plantLookup.FetchPlantByID(ctx, id)
}

// FetchPlantByName scans the catalog for an exact name match. Duplicate
// names are a caller error; the first match wins.
func (srv *plantService) FetchPlantByName(ctx context.Context, name string) (*entity.Plant, error) {
	if name == "" {
		return nil, domainerrors.ErrPlantNameRequired
	}

	plants, err := srv.plantStorage.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, plant := range plants {
		if plant.Name == name {
			return plant, nil
		}
	}

	srv.log(ctx).Debug("Plant not found by name", slog.String("name", name))

	return nil, domainerrors.ErrPlantNotFound
}

func (srv *plantService) PlantExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, domainerrors.ErrEmptyID
	}

	_, err := srv.plantLookup.FetchPlantByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPlantNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (srv *plantService) CreatePlant(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	if plant == nil {
		return nil, domainerrors.ErrNilEntity
	}

	return srv.plantStorage.Insert(ctx, plant)
}

func (srv *plantService) UpdatePlant(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	if plant == nil {
		return nil, domainerrors.ErrNilEntity
	}

	return srv.plantStorage.Update(ctx, plant)
}

func (srv *plantService) DeletePlant(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	if plant == nil {
		return nil, domainerrors.ErrNilEntity
	}

	return srv.plantStorage.Delete(ctx, plant)
}
