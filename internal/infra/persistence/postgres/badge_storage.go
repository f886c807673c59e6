package postgres

import (
	"context"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/errors"
	"flora/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type badgeStorage struct {
	gormStorage[model.BadgeModel, entity.Badge]
}

func newBadgeStorage(db *gorm.DB) *badgeStorage {
	return &badgeStorage{gormStorage[model.BadgeModel, entity.Badge]{
		db:         db,
		toDomain:   badgeToDomain,
		fromDomain: badgeFromDomain,
		notFound:   domainerrors.ErrBadgeNotFound,
		conflict:   domainerrors.ErrBadgeAlreadyExists,
	}}
}

// NewBadgeStorage creates the persistence capability for badges.
func NewBadgeStorage(db *gorm.DB) repository.Storage[entity.Badge] {
	return newBadgeStorage(db)
}

// NewBadgeLookup creates the by-name read capability for badges.
func NewBadgeLookup(db *gorm.DB) repository.BadgeLookup {
	return newBadgeStorage(db)
}

// FetchBadgeByName returns the badge with the given name.
func (s *badgeStorage) FetchBadgeByName(ctx context.Context, name string) (*entity.Badge, error) {
	dataModel := new(model.BadgeModel)
	err := s.db.WithContext(ctx).First(dataModel, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrBadgeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "fetch by name failed")
	}

	return badgeToDomain(dataModel), nil
}

// NewUserBadgeStorage creates the persistence capability for badge grants.
func NewUserBadgeStorage(db *gorm.DB) repository.Storage[entity.UserBadge] {
	return &gormStorage[model.UserBadgeModel, entity.UserBadge]{
		db:         db,
		toDomain:   userBadgeToDomain,
		fromDomain: userBadgeFromDomain,
		preloads:   []string{"Badge"},
		notFound:   domainerrors.ErrGrantNotFound,
	}
}

func badgeToDomain(dataModel *model.BadgeModel) *entity.Badge {
	if dataModel == nil {
		return nil
	}

	return &entity.Badge{
		ID:   dataModel.ID,
		Name: dataModel.Name,
	}
}

func badgeFromDomain(badge *entity.Badge) *model.BadgeModel {
	return &model.BadgeModel{
		ID:   badge.ID,
		Name: badge.Name,
	}
}

func userBadgeToDomain(dataModel *model.UserBadgeModel) *entity.UserBadge {
	if dataModel == nil {
		return nil
	}

	grant := &entity.UserBadge{
		ID:       dataModel.ID,
		Username: dataModel.Username,
		BadgeID:  dataModel.BadgeID,
	}
	if dataModel.Badge != nil {
		grant.Badge = badgeToDomain(dataModel.Badge)
	}

	return grant
}

func userBadgeFromDomain(grant *entity.UserBadge) *model.UserBadgeModel {
	return &model.UserBadgeModel{
		ID:       grant.ID,
		Username: grant.Username,
		BadgeID:  grant.BadgeID,
	}
}
