package postgres

import (
	"context"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/errors"
	"flora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type miniQuizStorage struct {
	gormStorage[model.MiniQuizModel, entity.MiniQuiz]
}

func newMiniQuizStorage(db *gorm.DB) *miniQuizStorage {
	return &miniQuizStorage{gormStorage[model.MiniQuizModel, entity.MiniQuiz]{
		db:         db,
		toDomain:   miniQuizToDomain,
		fromDomain: miniQuizFromDomain,
		preloads:   []string{"Questions"},
		notFound:   domainerrors.ErrQuizNotFound,
	}}
}

// NewMiniQuizStorage creates the persistence capability for plant quizzes.
func NewMiniQuizStorage(db *gorm.DB) repository.Storage[entity.MiniQuiz] {
	return newMiniQuizStorage(db)
}

// NewQuizLookup creates the narrow by-plant read capability for quizzes.
func NewQuizLookup(db *gorm.DB) repository.QuizLookup {
	return newMiniQuizStorage(db)
}

// FetchMiniQuizByPlantID returns the quiz attached to the given plant with
// its questions loaded.
func (s *miniQuizStorage) FetchMiniQuizByPlantID(ctx context.Context, plantID uuid.UUID) (*entity.MiniQuiz, error) {
	if plantID == uuid.Nil {
		return nil, domainerrors.ErrEmptyID
	}

	dataModel := new(model.MiniQuizModel)
	err := s.query(ctx).First(dataModel, "plant_id = ?", plantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrQuizNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "fetch by plant id failed")
	}

	return miniQuizToDomain(dataModel), nil
}

// NewQuizQuestionStorage creates the persistence capability for quiz questions.
func NewQuizQuestionStorage(db *gorm.DB) repository.Storage[entity.QuizQuestion] {
	return &gormStorage[model.QuizQuestionModel, entity.QuizQuestion]{
		db:         db,
		toDomain:   quizQuestionToDomain,
		fromDomain: quizQuestionFromDomain,
		notFound:   domainerrors.ErrQuestionNotFound,
	}
}

func miniQuizToDomain(dataModel *model.MiniQuizModel) *entity.MiniQuiz {
	if dataModel == nil {
		return nil
	}

	quiz := &entity.MiniQuiz{
		ID:      dataModel.ID,
		PlantID: dataModel.PlantID,
		Title:   dataModel.Title,
	}
	if dataModel.Plant != nil {
		quiz.Plant = plantToDomain(dataModel.Plant)
	}
	for _, question := range dataModel.Questions {
		quiz.Questions = append(quiz.Questions, quizQuestionToDomain(question))
	}

	return quiz
}

func miniQuizFromDomain(quiz *entity.MiniQuiz) *model.MiniQuizModel {
	return &model.MiniQuizModel{
		ID:      quiz.ID,
		PlantID: quiz.PlantID,
		Title:   quiz.Title,
	}
}

func quizQuestionToDomain(dataModel *model.QuizQuestionModel) *entity.QuizQuestion {
	if dataModel == nil {
		return nil
	}

	return &entity.QuizQuestion{
		ID:                 dataModel.ID,
		QuizID:             dataModel.QuizID,
		Question:           dataModel.Question,
		Answers:            append([]string(nil), dataModel.Answers...),
		CorrectAnswerIndex: dataModel.CorrectAnswerIndex,
	}
}

func quizQuestionFromDomain(question *entity.QuizQuestion) *model.QuizQuestionModel {
	return &model.QuizQuestionModel{
		ID:                 question.ID,
		QuizID:             question.QuizID,
		Question:           question.Question,
		Answers:            pq.StringArray(append([]string(nil), question.Answers...)),
		CorrectAnswerIndex: question.CorrectAnswerIndex,
	}
}
