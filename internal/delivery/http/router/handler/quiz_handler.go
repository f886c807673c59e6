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

// QuizHandler holds dependencies for quiz-related handlers.
type QuizHandler struct {
	uc     usecase.QuizUsecase
	logger *slog.Logger
}

// NewQuizHandler is the constructor for QuizHandler, injected by Fx.
func NewQuizHandler(uc usecase.QuizUsecase, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{
		uc:     uc,
		logger: logger,
	}
}

type createQuizRequest struct {
	PlantID uuid.UUID `json:"plantId"`
	Title   string    `json:"title"`
}

type addQuestionRequest struct {
	QuizID             uuid.UUID `json:"quizId"`
	Question           string    `json:"question"`
	Answer1            string    `json:"answer1"`
	Answer2            string    `json:"answer2"`
	Answer3            string    `json:"answer3"`
	Answer4            string    `json:"answer4"`
	CorrectAnswerIndex int       `json:"correctAnswerIndex"`
}

type updateQuizRequest struct {
	Title string `json:"title"`
}

// ListQuizzes returns every quiz with its questions.
func (h *QuizHandler) ListQuizzes(c echo.Context) error {
	quizzes, err := h.uc.FetchAllMiniQuizzes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuizViews(quizzes), "Quizzes fetched successfully")
}

// GetQuizByID returns the quiz identified by the path id.
func (h *QuizHandler) GetQuizByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUIZ_ID", "Quiz id must be a valid UUID")
	}

	quiz, err := h.uc.FetchMiniQuizByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuizView(quiz), "Quiz fetched successfully")
}

// GetQuizByPlantID returns the quiz attached to the plant in the path.
func (h *QuizHandler) GetQuizByPlantID(c echo.Context) error {
	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PLANT_ID", "Plant id must be a valid UUID")
	}

	quiz, err := h.uc.FetchMiniQuizByPlantID(c.Request().Context(), plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuizView(quiz), "Quiz fetched successfully")
}

// CreateQuiz creates an empty quiz attached to a plant.
func (h *QuizHandler) CreateQuiz(c echo.Context) error {
	var req *createQuizRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quiz input")
	}

	created, err := h.uc.CreateMiniQuiz(c.Request().Context(), &usecase.CreateMiniQuizInput{
		PlantID: req.PlantID,
		Title:   req.Title,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toQuizView(created), "Quiz created successfully")
}

// AddQuestion appends a multiple-choice question to a quiz.
func (h *QuizHandler) AddQuestion(c echo.Context) error {
	var req *addQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	created, err := h.uc.AddQuestionToQuiz(c.Request().Context(), &usecase.AddQuizQuestionInput{
		QuizID:             req.QuizID,
		Question:           req.Question,
		Answer1:            req.Answer1,
		Answer2:            req.Answer2,
		Answer3:            req.Answer3,
		Answer4:            req.Answer4,
		CorrectAnswerIndex: req.CorrectAnswerIndex,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toQuestionView(created), "Question added successfully")
}

// UpdateQuiz renames the quiz identified by the path id.
func (h *QuizHandler) UpdateQuiz(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUIZ_ID", "Quiz id must be a valid UUID")
	}

	var req *updateQuizRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quiz input")
	}

	current, err := h.uc.FetchMiniQuizByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdateMiniQuiz(c.Request().Context(), &entity.MiniQuiz{
		ID:      current.ID,
		PlantID: current.PlantID,
		Title:   req.Title,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuizView(updated), "Quiz updated successfully")
}

// DeleteQuiz removes the quiz identified by the path id together with
// its questions.
func (h *QuizHandler) DeleteQuiz(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUIZ_ID", "Quiz id must be a valid UUID")
	}

	deleted, err := h.uc.DeleteMiniQuiz(c.Request().Context(), &entity.MiniQuiz{ID: id})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuizView(deleted), "Quiz deleted successfully")
}
