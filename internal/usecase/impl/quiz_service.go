package impl

import (
	"context"
	"log/slog"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/usecase"

	"github.com/google/uuid"
)

// quizService implements the QuizUsecase interface.
type quizService struct {
	quizStorage     repository.Storage[entity.MiniQuiz]
	questionStorage repository.Storage[entity.QuizQuestion]
	quizLookup      repository.QuizLookup
	plants          usecase.PlantReader
	logger          *slog.Logger
}

// NewQuizService is the constructor for quizService.
func NewQuizService(
	quizStorage repository.Storage[entity.MiniQuiz],
	questionStorage repository.Storage[entity.QuizQuestion],
	quizLookup repository.QuizLookup,
	plants usecase.PlantReader,
	logger *slog.Logger,
) usecase.QuizUsecase {
	return &quizService{
		quizStorage:     quizStorage,
		questionStorage: questionStorage,
		quizLookup:      quizLookup,
		plants:          plants,
		logger:          logger,
	}
}

func (srv *quizService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMiniQuiz validates the input, resolves the plant, and persists
// a new quiz bound to it.
func (srv *quizService) CreateMiniQuiz(ctx context.Context, input *usecase.CreateMiniQuizInput) (*entity.MiniQuiz, error) {
	if input == nil {
		return nil, domainerrors.ErrNilRequest
	}
	if input.PlantID == uuid.Nil {
		return nil, domainerrors.ErrEmptyID
	}
	if input.Title == "" {
		return nil, domainerrors.ErrQuizTitleRequired
	}

	plant, err := srv.plants.FetchPlantByID(ctx, input.PlantID)
	if err != nil {
		return nil, err
	}

	quiz := &entity.MiniQuiz{
		PlantID: plant.ID,
		Plant:   plant,
		Title:   input.Title,
	}

	created, err := srv.quizStorage.Insert(ctx, quiz)
	if err != nil {
		srv.log(ctx).Warn("Failed to create quiz",
			slog.String("plantID", input.PlantID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	created.Plant = plant

	return created, nil
}

// AddQuestionToQuiz validates the input, resolves the quiz, and appends
// a question with the four answers kept in their input order. The
// emptiness of question text and answers is one combined batch check;
// the index range violation is a distinct error kind.
func (srv *quizService) AddQuestionToQuiz(ctx context.Context, input *usecase.AddQuizQuestionInput) (*entity.QuizQuestion, error) {
	if input == nil {
		return nil, domainerrors.ErrNilRequest
	}
	if input.QuizID == uuid.Nil {
		return nil, domainerrors.ErrEmptyID
	}
	fields := []string{input.Question, input.Answer1, input.Answer2, input.Answer3, input.Answer4}
	for _, field := range fields {
		if field == "" {
			return nil, domainerrors.ErrQuestionFieldsRequired
		}
	}
	if input.CorrectAnswerIndex < 0 || input.CorrectAnswerIndex >= entity.AnswersPerQuestion {
		return nil, domainerrors.ErrAnswerIndexOutOfRange
	}

	quiz, err := srv.quizStorage.FetchByID(ctx, input.QuizID)
	if err != nil {
		return nil, err
	}

	question := &entity.QuizQuestion{
		QuizID:             quiz.ID,
		Question:           input.Question,
		Answers:            []string{input.Answer1, input.Answer2, input.Answer3, input.Answer4},
		CorrectAnswerIndex: input.CorrectAnswerIndex,
	}

	created, err := srv.questionStorage.Insert(ctx, question)
	if err != nil {
		srv.log(ctx).Warn("Failed to add quiz question",
			slog.String("quizID", input.QuizID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	return created, nil
}

func (srv *quizService) FetchAllMiniQuizzes(ctx context.Context) ([]*entity.MiniQuiz, error) {
	return srv.quizStorage.FetchAll(ctx)
}

func (srv *quizService) FetchMiniQuizByID(ctx context.Context, id uuid.UUID) (*entity.MiniQuiz, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrEmptyID
	}

	return srv.quizStorage.FetchByID(ctx, id)
}

func (srv *quizService) FetchMiniQuizByPlantID(ctx context.Context, plantID uuid.UUID) (*entity.MiniQuiz, error) {
	if plantID == uuid.Nil {
		return nil, domainerrors.ErrEmptyID
	}

	return srv.quizLookup.FetchMiniQuizByPlantID(ctx, plantID)
}

// UpdateMiniQuiz passes through to storage, which carries the nil guard.
func (srv *quizService) UpdateMiniQuiz(ctx context.Context, quiz *entity.MiniQuiz) (*entity.MiniQuiz, error) {
	return srv.quizStorage.Update(ctx, quiz)
}

// DeleteMiniQuiz passes through to storage, which carries the nil guard.
func (srv *quizService) DeleteMiniQuiz(ctx context.Context, quiz *entity.MiniQuiz) (*entity.MiniQuiz, error) {
	return srv.quizStorage.Delete(ctx, quiz)
}
