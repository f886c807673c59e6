package repository

import (
	"context"

	"flora/internal/domain/entity"

	"github.com/google/uuid"
)

// QuizLookup is the narrow by-plant read capability for mini quizzes.
type QuizLookup interface {
	// FetchMiniQuizByPlantID returns the quiz attached to the given
	// plant with its questions loaded, or domain errors.ErrQuizNotFound
	// when the plant has no quiz.
	FetchMiniQuizByPlantID(ctx context.Context, plantID uuid.UUID) (*entity.MiniQuiz, error)
}
