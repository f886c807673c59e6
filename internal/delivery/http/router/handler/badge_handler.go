package handler

import (
	"log/slog"
	"net/http"

	"flora/internal/delivery/http/response"
	"flora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BadgeHandler holds dependencies for badge-related handlers.
type BadgeHandler struct {
	uc     usecase.BadgeUsecase
	logger *slog.Logger
}

// NewBadgeHandler is the constructor for BadgeHandler, injected by Fx.
func NewBadgeHandler(uc usecase.BadgeUsecase, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{
		uc:     uc,
		logger: logger,
	}
}

type addBadgeRequest struct {
	Name string `json:"name"`
}

type grantBadgeRequest struct {
	BadgeName string `json:"badgeName"`
	Username  string `json:"username"`
}

// AddBadge defines a new badge.
func (h *BadgeHandler) AddBadge(c echo.Context) error {
	var req *addBadgeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid badge input")
	}

	created, err := h.uc.AddBadge(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBadgeView(created), "Badge created successfully")
}

// GetBadgeByName returns the badge identified by the path name.
func (h *BadgeHandler) GetBadgeByName(c echo.Context) error {
	badge, err := h.uc.FetchBadgeByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBadgeView(badge), "Badge fetched successfully")
}

// GrantBadge grants an existing badge to a user.
func (h *BadgeHandler) GrantBadge(c echo.Context) error {
	var req *grantBadgeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grant input")
	}

	grant, err := h.uc.AddBadgeToUser(c.Request().Context(), &usecase.GrantBadgeInput{
		BadgeName: req.BadgeName,
		Username:  req.Username,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toGrantView(grant), "Badge granted successfully")
}
