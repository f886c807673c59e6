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

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

type addCommentRequest struct {
	PlantID uuid.UUID `json:"plantId"`
	Content string    `json:"content"`
}

// AddComment attaches a comment to a plant. The author is the
// authenticated caller, never taken from the request body.
func (h *CommentHandler) AddComment(c echo.Context) error {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)
	if !ok || username == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	var req *addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	created, err := h.uc.AddCommentToPlant(c.Request().Context(), &usecase.AddCommentInput{
		Content:  req.Content,
		Username: username,
		PlantID:  req.PlantID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentView(created), "Comment added successfully")
}
