package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flora/internal/delivery/http/validator"
	"flora/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type plantUsecaseMock struct {
	mock.Mock
}

func (m *plantUsecaseMock) FetchAllPlants(ctx context.Context) ([]*entity.Plant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Plant), args.Error(1)
}

func (m *plantUsecaseMock) FetchAllPlantsByType(ctx context.Context, plantType entity.PlantType) ([]*entity.Plant, error) {
	args := m.Called(ctx, plantType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Plant), args.Error(1)
}

func (m *plantUsecaseMock) FetchPlantByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Plant), args.Error(1)
}

func (m *plantUsecaseMock) FetchPlantByName(ctx context.Context, name string) (*entity.Plant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Plant), args.Error(1)
}

func (m *plantUsecaseMock) PlantExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *plantUsecaseMock) CreatePlant(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	args := m.Called(ctx, plant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Plant), args.Error(1)
}

func (m *plantUsecaseMock) UpdatePlant(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	args := m.Called(ctx, plant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Plant), args.Error(1)
}

func (m *plantUsecaseMock) DeletePlant(ctx context.Context, plant *entity.Plant) (*entity.Plant, error) {
	args := m.Called(ctx, plant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Plant), args.Error(1)
}

func newPlantContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPlantHandler_GetPlantByID(t *testing.T) {
	t.Run("malformed id is rejected before the catalog is queried", func(t *testing.T) {
		uc := new(plantUsecaseMock)
		h := NewPlantHandler(uc, slog.Default())

		c, rec := newPlantContext(t, "/plants/not-a-uuid")
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, h.GetPlantByID(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "FetchPlantByID", mock.Anything, mock.Anything)
	})

	t.Run("returns the plant for a valid id", func(t *testing.T) {
		plantID := uuid.New()
		uc := new(plantUsecaseMock)
		uc.On("FetchPlantByID", mock.Anything, plantID).Return(&entity.Plant{
			ID:   plantID,
			Name: "Basil",
			Type: entity.PlantTypeHerb,
		}, nil)

		h := NewPlantHandler(uc, slog.Default())
		c, rec := newPlantContext(t, "/plants/"+plantID.String())
		c.SetParamNames("id")
		c.SetParamValues(plantID.String())

		require.NoError(t, h.GetPlantByID(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Basil"`)
		uc.AssertExpectations(t)
	})
}

func newPlantWriteContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/plants", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPlantHandler_CreatePlant(t *testing.T) {
	t.Run("missing required fields are rejected before the catalog is touched", func(t *testing.T) {
		uc := new(plantUsecaseMock)
		h := NewPlantHandler(uc, slog.Default())

		c, rec := newPlantWriteContext(t, `{"description":"No name, no type"}`)

		require.NoError(t, h.CreatePlant(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		uc.AssertNotCalled(t, "CreatePlant", mock.Anything, mock.Anything)
	})

	t.Run("creates the plant when the request is complete", func(t *testing.T) {
		uc := new(plantUsecaseMock)
		uc.On("CreatePlant", mock.Anything, mock.MatchedBy(func(plant *entity.Plant) bool {
			return plant.Name == "Basil" && plant.Type == entity.PlantTypeHerb
		})).Return(&entity.Plant{Name: "Basil", Type: entity.PlantTypeHerb}, nil)

		h := NewPlantHandler(uc, slog.Default())
		c, rec := newPlantWriteContext(t, `{"name":"Basil","type":"Herb"}`)

		require.NoError(t, h.CreatePlant(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		uc.AssertExpectations(t)
	})
}

func TestPlantHandler_ListPlantsByType(t *testing.T) {
	t.Run("unknown type is rejected before the catalog is queried", func(t *testing.T) {
		uc := new(plantUsecaseMock)
		h := NewPlantHandler(uc, slog.Default())

		c, rec := newPlantContext(t, "/plants/type/Cactus")
		c.SetParamNames("type")
		c.SetParamValues("Cactus")

		require.NoError(t, h.ListPlantsByType(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "FetchAllPlantsByType", mock.Anything, mock.Anything)
	})

	t.Run("valid type is forwarded unchanged", func(t *testing.T) {
		uc := new(plantUsecaseMock)
		uc.On("FetchAllPlantsByType", mock.Anything, entity.PlantTypeHerb).
			Return([]*entity.Plant{}, nil)

		h := NewPlantHandler(uc, slog.Default())
		c, rec := newPlantContext(t, "/plants/type/Herb")
		c.SetParamNames("type")
		c.SetParamValues("Herb")

		require.NoError(t, h.ListPlantsByType(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})
}
