// Package mocks provides hand-written testify doubles for the domain
// contracts used in service tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flora/internal/domain/entity"
)

// Storage is a mock implementation of repository.Storage.
type Storage[E any] struct {
	mock.Mock
}

func (m *Storage[E]) Insert(ctx context.Context, ent *E) (*E, error) {
	args := m.Called(ctx, ent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*E), args.Error(1)
}

func (m *Storage[E]) Update(ctx context.Context, ent *E) (*E, error) {
	args := m.Called(ctx, ent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*E), args.Error(1)
}

func (m *Storage[E]) Delete(ctx context.Context, ent *E) (*E, error) {
	args := m.Called(ctx, ent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*E), args.Error(1)
}

func (m *Storage[E]) FetchAll(ctx context.Context) ([]*E, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*E), args.Error(1)
}

func (m *Storage[E]) FetchByID(ctx context.Context, id uuid.UUID) (*E, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*E), args.Error(1)
}

// PlantLookup is a mock implementation of repository.PlantLookup.
type PlantLookup struct {
	mock.Mock
}

func (m *PlantLookup) FetchPlantByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Plant), args.Error(1)
}

// QuizLookup is a mock implementation of repository.QuizLookup.
type QuizLookup struct {
	mock.Mock
}

func (m *QuizLookup) FetchMiniQuizByPlantID(ctx context.Context, plantID uuid.UUID) (*entity.MiniQuiz, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.MiniQuiz), args.Error(1)
}

// BadgeLookup is a mock implementation of repository.BadgeLookup.
type BadgeLookup struct {
	mock.Mock
}

func (m *BadgeLookup) FetchBadgeByName(ctx context.Context, name string) (*entity.Badge, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Badge), args.Error(1)
}
