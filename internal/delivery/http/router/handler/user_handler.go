package handler

import (
	"log/slog"
	"net/http"

	"flora/internal/delivery/http/middleware"
	"flora/internal/delivery/http/response"
	"flora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req *registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Surname:  req.Surname,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(user), "User registered successfully")
}

// Login handles the login request and returns the token pair.
func (h *UserHandler) Login(c echo.Context) error {
	var req *loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := loginView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserView(output.User),
	}

	return response.Success(c, http.StatusOK, view, "Login successful")
}

// ListUsers returns every registered account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.FetchAllUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "Users fetched successfully")
}

// GetUserByUsername returns the account identified by the path username.
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	username := c.Param("username")

	user, err := h.uc.FetchUserByUsername(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "User fetched successfully")
}

// GetProfile returns the account of the authenticated caller.
func (h *UserHandler) GetProfile(c echo.Context) error {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)
	if !ok || username == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	user, err := h.uc.FetchUserByUsername(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Profile fetched successfully")
}

// HealthCheck provides a simple health check endpoint.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
