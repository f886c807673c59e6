package postgres

import (
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewLikedPlantStorage creates the persistence capability for plant likes.
func NewLikedPlantStorage(db *gorm.DB) repository.Storage[entity.UserLikedPlant] {
	return &gormStorage[model.UserLikedPlantModel, entity.UserLikedPlant]{
		db:         db,
		toDomain:   likedPlantToDomain,
		fromDomain: likedPlantFromDomain,
		preloads:   []string{"Plant"},
		notFound:   domainerrors.ErrLikeNotFound,
	}
}

func likedPlantToDomain(dataModel *model.UserLikedPlantModel) *entity.UserLikedPlant {
	if dataModel == nil {
		return nil
	}

	like := &entity.UserLikedPlant{
		ID:       dataModel.ID,
		Username: dataModel.Username,
		PlantID:  dataModel.PlantID,
	}
	if dataModel.Plant != nil {
		like.Plant = plantToDomain(dataModel.Plant)
	}

	return like
}

func likedPlantFromDomain(like *entity.UserLikedPlant) *model.UserLikedPlantModel {
	return &model.UserLikedPlantModel{
		ID:       like.ID,
		Username: like.Username,
		PlantID:  like.PlantID,
	}
}
