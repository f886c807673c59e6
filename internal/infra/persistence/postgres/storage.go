package postgres

import (
	"context"

	domainerrors "flora/internal/domain/errors"
	"flora/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormStorage is the shared GORM implementation of repository.Storage.
// Each entity wires its own model mapping, preloads, and error values;
// the persistence mechanics stay in one place.
type gormStorage[M any, E any] struct {
	db         *gorm.DB
	toDomain   func(*M) *E
	fromDomain func(*E) *M
	preloads   []string
	notFound   domainerrors.AppError
	conflict   domainerrors.AppError
}

func (s *gormStorage[M, E]) Insert(ctx context.Context, ent *E) (*E, error) {
	if ent == nil {
		return nil, domainerrors.ErrNilEntity
	}

	dataModel := s.fromDomain(ent)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(dataModel).Error; err != nil {
		return nil, s.translateWriteError(err)
	}

	return s.toDomain(dataModel), nil
}

func (s *gormStorage[M, E]) Update(ctx context.Context, ent *E) (*E, error) {
	if ent == nil {
		return nil, domainerrors.ErrNilEntity
	}

	dataModel := s.fromDomain(ent)
	// Select("*") forces zero values through; a cleared field must clear the column.
	result := s.db.WithContext(ctx).
		Model(dataModel).
		Select("*").
		Omit(clause.Associations).
		Updates(dataModel)
	if result.Error != nil {
		return nil, s.translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, s.notFound
	}

	return s.toDomain(dataModel), nil
}

func (s *gormStorage[M, E]) Delete(ctx context.Context, ent *E) (*E, error) {
	if ent == nil {
		return nil, domainerrors.ErrNilEntity
	}

	dataModel := s.fromDomain(ent)
	result := s.db.WithContext(ctx).Delete(dataModel)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "delete failed")
	}
	if result.RowsAffected == 0 {
		return nil, s.notFound
	}

	return s.toDomain(dataModel), nil
}

func (s *gormStorage[M, E]) FetchAll(ctx context.Context) ([]*E, error) {
	var dataModels []*M
	if err := s.query(ctx).Find(&dataModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "fetch all failed")
	}

	entities := make([]*E, 0, len(dataModels))
	for _, dataModel := range dataModels {
		entities = append(entities, s.toDomain(dataModel))
	}

	return entities, nil
}

func (s *gormStorage[M, E]) FetchByID(ctx context.Context, id uuid.UUID) (*E, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrEmptyID
	}

	dataModel := new(M)
	if err := s.query(ctx).First(dataModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "fetch by id failed")
	}

	return s.toDomain(dataModel), nil
}

func (s *gormStorage[M, E]) query(ctx context.Context) *gorm.DB {
	tx := s.db.WithContext(ctx)
	for _, preload := range s.preloads {
		tx = tx.Preload(preload)
	}

	return tx
}

func (s *gormStorage[M, E]) translateWriteError(err error) error {
	switch {
	case s.conflict != nil && isUniqueConstraintViolation(err):
		return s.conflict
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, "referenced row missing")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "write failed")
	}
}
