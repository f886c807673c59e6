package handler

import (
	"log/slog"
	"net/http"

	"flora/internal/delivery/http/response"
	"flora/internal/domain/entity"
	"flora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlantHandler holds dependencies for catalog-related handlers.
type PlantHandler struct {
	uc     usecase.PlantUsecase
	logger *slog.Logger
}

// NewPlantHandler is the constructor for PlantHandler, injected by Fx.
func NewPlantHandler(uc usecase.PlantUsecase, logger *slog.Logger) *PlantHandler {
	return &PlantHandler{
		uc:     uc,
		logger: logger,
	}
}

type plantRequest struct {
	Name            string `json:"name" validate:"required"`
	Type            string `json:"type" validate:"required"`
	Description     string `json:"description"`
	Maintenance     string `json:"maintenance"`
	Planting        string `json:"planting"`
	Predispositions string `json:"predispositions"`
}

// ListPlants returns the whole catalog.
func (h *PlantHandler) ListPlants(c echo.Context) error {
	plants, err := h.uc.FetchAllPlants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantViews(plants), "Plants fetched successfully")
}

// ListPlantsByType returns catalog entries of a single category.
func (h *PlantHandler) ListPlantsByType(c echo.Context) error {
	plantType := entity.PlantType(c.Param("type"))
	if !plantType.IsValid() {
		return response.BadRequest(c, "INVALID_PLANT_TYPE", "Unknown plant type")
	}

	plants, err := h.uc.FetchAllPlantsByType(c.Request().Context(), plantType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantViews(plants), "Plants fetched successfully")
}

// GetPlantByID returns a single plant with its comments.
func (h *PlantHandler) GetPlantByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PLANT_ID", "Plant id must be a valid UUID")
	}

	plant, err := h.uc.FetchPlantByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantView(plant), "Plant fetched successfully")
}

// GetPlantByName returns the plant with an exact name match.
func (h *PlantHandler) GetPlantByName(c echo.Context) error {
	plant, err := h.uc.FetchPlantByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantView(plant), "Plant fetched successfully")
}

// CreatePlant adds a new catalog entry.
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	var req *plantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plant input")
	}
	if err := c.Validate(req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Plant name and type are required")
	}

	plantType := entity.PlantType(req.Type)
	if !plantType.IsValid() {
		return response.BadRequest(c, "INVALID_PLANT_TYPE", "Unknown plant type")
	}

	created, err := h.uc.CreatePlant(c.Request().Context(), &entity.Plant{
		ID:              uuid.New(),
		Name:            req.Name,
		Type:            plantType,
		Description:     req.Description,
		Maintenance:     req.Maintenance,
		Planting:        req.Planting,
		Predispositions: req.Predispositions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlantView(created), "Plant created successfully")
}

// UpdatePlant replaces the catalog entry identified by the path id.
func (h *PlantHandler) UpdatePlant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PLANT_ID", "Plant id must be a valid UUID")
	}

	var req *plantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plant input")
	}
	if err := c.Validate(req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Plant name and type are required")
	}

	plantType := entity.PlantType(req.Type)
	if !plantType.IsValid() {
		return response.BadRequest(c, "INVALID_PLANT_TYPE", "Unknown plant type")
	}

	updated, err := h.uc.UpdatePlant(c.Request().Context(), &entity.Plant{
		ID:              id,
		Name:            req.Name,
		Type:            plantType,
		Description:     req.Description,
		Maintenance:     req.Maintenance,
		Planting:        req.Planting,
		Predispositions: req.Predispositions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantView(updated), "Plant updated successfully")
}

// DeletePlant removes the catalog entry identified by the path id.
func (h *PlantHandler) DeletePlant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PLANT_ID", "Plant id must be a valid UUID")
	}

	deleted, err := h.uc.DeletePlant(c.Request().Context(), &entity.Plant{ID: id})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantView(deleted), "Plant deleted successfully")
}
