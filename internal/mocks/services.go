package mocks

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"flora/internal/domain/entity"
)

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) GenerateTokens(username string, role string) (string, string, error) {
	args := m.Called(username, role)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *TokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *TokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// PlantReader is a mock implementation of usecase.PlantReader.
type PlantReader struct {
	mock.Mock
}

func (m *PlantReader) FetchPlantByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Plant), args.Error(1)
}

// UserReader is a mock implementation of usecase.UserReader.
type UserReader struct {
	mock.Mock
}

func (m *UserReader) FetchUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}
