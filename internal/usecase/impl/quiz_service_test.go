package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/mocks"
	"flora/internal/usecase"
)

type quizServiceMocks struct {
	quizStorage     *mocks.Storage[entity.MiniQuiz]
	questionStorage *mocks.Storage[entity.QuizQuestion]
	quizLookup      *mocks.QuizLookup
	plants          *mocks.PlantReader
}

func newQuizServiceForTest() (usecase.QuizUsecase, *quizServiceMocks) {
	deps := &quizServiceMocks{
		quizStorage:     new(mocks.Storage[entity.MiniQuiz]),
		questionStorage: new(mocks.Storage[entity.QuizQuestion]),
		quizLookup:      new(mocks.QuizLookup),
		plants:          new(mocks.PlantReader),
	}
	srv := NewQuizService(deps.quizStorage, deps.questionStorage, deps.quizLookup, deps.plants, slog.Default())

	return srv, deps
}

func validQuestionInput(quizID uuid.UUID) *usecase.AddQuizQuestionInput {
	return &usecase.AddQuizQuestionInput{
		QuizID:             quizID,
		Question:           "Which of these is a herb?",
		Answer1:            "Oak",
		Answer2:            "Basil",
		Answer3:            "Tulip",
		Answer4:            "Carrot",
		CorrectAnswerIndex: 1,
	}
}

func TestQuizService_CreateMiniQuiz(t *testing.T) {
	ctx := context.Background()
	plantID := uuid.New()

	t.Run("validation order is request, plant id, title", func(t *testing.T) {
		srv, _ := newQuizServiceForTest()

		_, err := srv.CreateMiniQuiz(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrNilRequest)

		_, err = srv.CreateMiniQuiz(ctx, &usecase.CreateMiniQuizInput{Title: "Herbs"})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyID)

		_, err = srv.CreateMiniQuiz(ctx, &usecase.CreateMiniQuizInput{PlantID: plantID})
		assert.ErrorIs(t, err, domainerrors.ErrQuizTitleRequired)
	})

	t.Run("missing plant fails with plant not found", func(t *testing.T) {
		srv, deps := newQuizServiceForTest()
		deps.plants.On("FetchPlantByID", mock.Anything, plantID).Return(nil, domainerrors.ErrPlantNotFound)

		_, err := srv.CreateMiniQuiz(ctx, &usecase.CreateMiniQuizInput{PlantID: plantID, Title: "Herbs"})
		assert.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
		deps.quizStorage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("persists the quiz bound to the plant", func(t *testing.T) {
		srv, deps := newQuizServiceForTest()
		deps.plants.On("FetchPlantByID", mock.Anything, plantID).
			Return(&entity.Plant{ID: plantID, Name: "Lavender"}, nil)
		deps.quizStorage.On("Insert", mock.Anything, mock.MatchedBy(func(quiz *entity.MiniQuiz) bool {
			return quiz.PlantID == plantID && quiz.Title == "Herbs"
		})).Return(&entity.MiniQuiz{ID: uuid.New(), PlantID: plantID, Title: "Herbs"}, nil)

		created, err := srv.CreateMiniQuiz(ctx, &usecase.CreateMiniQuizInput{PlantID: plantID, Title: "Herbs"})
		require.NoError(t, err)
		assert.Equal(t, plantID, created.PlantID)
		deps.quizStorage.AssertExpectations(t)
	})
}

func TestQuizService_AddQuestionToQuiz(t *testing.T) {
	ctx := context.Background()
	quizID := uuid.New()

	t.Run("nil request first, then empty quiz id", func(t *testing.T) {
		srv, _ := newQuizServiceForTest()

		_, err := srv.AddQuestionToQuiz(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrNilRequest)

		input := validQuestionInput(uuid.Nil)
		_, err = srv.AddQuestionToQuiz(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyID)
	})

	t.Run("any empty answer or question fails the whole batch", func(t *testing.T) {
		srv, _ := newQuizServiceForTest()

		for _, mutate := range []func(*usecase.AddQuizQuestionInput){
			func(in *usecase.AddQuizQuestionInput) { in.Question = "" },
			func(in *usecase.AddQuizQuestionInput) { in.Answer1 = "" },
			func(in *usecase.AddQuizQuestionInput) { in.Answer2 = "" },
			func(in *usecase.AddQuizQuestionInput) { in.Answer3 = "" },
			func(in *usecase.AddQuizQuestionInput) { in.Answer4 = "" },
		} {
			input := validQuestionInput(quizID)
			mutate(input)

			_, err := srv.AddQuestionToQuiz(ctx, input)
			assert.ErrorIs(t, err, domainerrors.ErrQuestionFieldsRequired)
		}
	})

	t.Run("index out of range fails with the exact operation error", func(t *testing.T) {
		srv, deps := newQuizServiceForTest()

		for _, index := range []int{-1, 4} {
			input := validQuestionInput(quizID)
			input.CorrectAnswerIndex = index

			_, err := srv.AddQuestionToQuiz(ctx, input)
			assert.ErrorIs(t, err, domainerrors.ErrAnswerIndexOutOfRange)
			assert.EqualError(t, err, "CorrectAnswerIndex must not be greater than 3 or less than 0")
		}
		deps.quizStorage.AssertNotCalled(t, "FetchByID", mock.Anything, mock.Anything)
	})

	t.Run("missing quiz fails with mini quiz not found", func(t *testing.T) {
		srv, deps := newQuizServiceForTest()
		deps.quizStorage.On("FetchByID", mock.Anything, quizID).Return(nil, domainerrors.ErrQuizNotFound)

		_, err := srv.AddQuestionToQuiz(ctx, validQuestionInput(quizID))
		assert.ErrorIs(t, err, domainerrors.ErrQuizNotFound)
		assert.EqualError(t, err, "Mini Quiz not found")
		deps.questionStorage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("preserves the answer order and succeeds for valid indexes", func(t *testing.T) {
		srv, deps := newQuizServiceForTest()
		deps.quizStorage.On("FetchByID", mock.Anything, quizID).
			Return(&entity.MiniQuiz{ID: quizID, Title: "Herbs"}, nil)
		deps.questionStorage.On("Insert", mock.Anything, mock.MatchedBy(func(question *entity.QuizQuestion) bool {
			return question.QuizID == quizID
		})).Return(&entity.QuizQuestion{
			ID:                 uuid.New(),
			QuizID:             quizID,
			Question:           "Which of these is a herb?",
			Answers:            []string{"Oak", "Basil", "Tulip", "Carrot"},
			CorrectAnswerIndex: 1,
		}, nil)

		created, err := srv.AddQuestionToQuiz(ctx, validQuestionInput(quizID))
		require.NoError(t, err)
		assert.Equal(t, []string{"Oak", "Basil", "Tulip", "Carrot"}, created.Answers)
		assert.Equal(t, 1, created.CorrectAnswerIndex)
		deps.questionStorage.AssertExpectations(t)
	})
}

func TestQuizService_FetchGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch by id rejects the zero id before storage", func(t *testing.T) {
		srv, deps := newQuizServiceForTest()

		_, err := srv.FetchMiniQuizByID(ctx, uuid.Nil)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyID)
		deps.quizStorage.AssertNotCalled(t, "FetchByID", mock.Anything, mock.Anything)
	})

	t.Run("fetch by plant id rejects the zero id before the lookup", func(t *testing.T) {
		srv, deps := newQuizServiceForTest()

		_, err := srv.FetchMiniQuizByPlantID(ctx, uuid.Nil)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyID)
		deps.quizLookup.AssertNotCalled(t, "FetchMiniQuizByPlantID", mock.Anything, mock.Anything)
	})

	t.Run("fetch by plant id delegates to the lookup", func(t *testing.T) {
		srv, deps := newQuizServiceForTest()
		plantID := uuid.New()
		deps.quizLookup.On("FetchMiniQuizByPlantID", mock.Anything, plantID).
			Return(&entity.MiniQuiz{ID: uuid.New(), PlantID: plantID}, nil)

		quiz, err := srv.FetchMiniQuizByPlantID(ctx, plantID)
		require.NoError(t, err)
		assert.Equal(t, plantID, quiz.PlantID)
	})
}

func TestQuizService_UpdateDeletePassThrough(t *testing.T) {
	ctx := context.Background()

	srv, deps := newQuizServiceForTest()
	deps.quizStorage.On("Update", mock.Anything, (*entity.MiniQuiz)(nil)).
		Return(nil, domainerrors.ErrNilEntity)
	deps.quizStorage.On("Delete", mock.Anything, (*entity.MiniQuiz)(nil)).
		Return(nil, domainerrors.ErrNilEntity)

	// The service adds no guard of its own; the storage nil check surfaces.
	_, err := srv.UpdateMiniQuiz(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNilEntity)

	_, err = srv.DeleteMiniQuiz(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNilEntity)
	deps.quizStorage.AssertExpectations(t)
}
