package postgres

import (
	"context"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type plantStorage struct {
	gormStorage[model.PlantModel, entity.Plant]
}

func newPlantStorage(db *gorm.DB) *plantStorage {
	return &plantStorage{gormStorage[model.PlantModel, entity.Plant]{
		db:         db,
		toDomain:   plantToDomain,
		fromDomain: plantFromDomain,
		preloads:   []string{"Comments", "Comments.Author"},
		notFound:   domainerrors.ErrPlantNotFound,
	}}
}

// NewPlantStorage creates the persistence capability for catalog plants.
func NewPlantStorage(db *gorm.DB) repository.Storage[entity.Plant] {
	return newPlantStorage(db)
}

// NewPlantLookup creates the narrow by-id read capability for plants.
func NewPlantLookup(db *gorm.DB) repository.PlantLookup {
	return newPlantStorage(db)
}

// FetchPlantByID returns the plant with its comments and their authors loaded.
func (s *plantStorage) FetchPlantByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	return s.FetchByID(ctx, id)
}

func plantToDomain(dataModel *model.PlantModel) *entity.Plant {
	if dataModel == nil {
		return nil
	}

	plant := &entity.Plant{
		ID:              dataModel.ID,
		Name:            dataModel.Name,
		Type:            entity.PlantType(dataModel.Type),
		Description:     dataModel.Description,
		Maintenance:     dataModel.Maintenance,
		Planting:        dataModel.Planting,
		Predispositions: dataModel.Predispositions,
	}
	for _, comment := range dataModel.Comments {
		plant.Comments = append(plant.Comments, commentToDomain(comment))
	}

	return plant
}

func plantFromDomain(plant *entity.Plant) *model.PlantModel {
	return &model.PlantModel{
		ID:              plant.ID,
		Name:            plant.Name,
		Type:            plant.Type.String(),
		Description:     plant.Description,
		Maintenance:     plant.Maintenance,
		Planting:        plant.Planting,
		Predispositions: plant.Predispositions,
	}
}
