package handler

import (
	"log/slog"
	"net/http"

	"flora/internal/delivery/http/middleware"
	"flora/internal/delivery/http/response"
	"flora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LikeHandler holds dependencies for like-related handlers.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{
		uc:     uc,
		logger: logger,
	}
}

type addLikeRequest struct {
	PlantID uuid.UUID `json:"plantId"`
}

// AddLike records that the authenticated caller liked a plant.
func (h *LikeHandler) AddLike(c echo.Context) error {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)
	if !ok || username == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	var req *addLikeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid like input")
	}

	created, err := h.uc.AddPlantToLikedPlants(c.Request().Context(), &usecase.AddLikeInput{
		Username: username,
		PlantID:  req.PlantID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLikeView(created), "Plant liked successfully")
}
