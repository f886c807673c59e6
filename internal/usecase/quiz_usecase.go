package usecase

import (
	"context"

	"flora/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMiniQuizInput defines the data required to create a plant quiz.
type CreateMiniQuizInput struct {
	PlantID uuid.UUID
	Title   string
}

// AddQuizQuestionInput defines the data required to append a question to
// a quiz. The four answers keep their positional order.
type AddQuizQuestionInput struct {
	QuizID             uuid.UUID
	Question           string
	Answer1            string
	Answer2            string
	Answer3            string
	Answer4            string
	CorrectAnswerIndex int
}

// QuizUsecase defines the interface for quiz authoring.
type QuizUsecase interface {
	CreateMiniQuiz(ctx context.Context, input *CreateMiniQuizInput) (*entity.MiniQuiz, error)
	AddQuestionToQuiz(ctx context.Context, input *AddQuizQuestionInput) (*entity.QuizQuestion, error)

	FetchAllMiniQuizzes(ctx context.Context) ([]*entity.MiniQuiz, error)
	FetchMiniQuizByID(ctx context.Context, id uuid.UUID) (*entity.MiniQuiz, error)
	FetchMiniQuizByPlantID(ctx context.Context, plantID uuid.UUID) (*entity.MiniQuiz, error)

	UpdateMiniQuiz(ctx context.Context, quiz *entity.MiniQuiz) (*entity.MiniQuiz, error)
	DeleteMiniQuiz(ctx context.Context, quiz *entity.MiniQuiz) (*entity.MiniQuiz, error)
}
