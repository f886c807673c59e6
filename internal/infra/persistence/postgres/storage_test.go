package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/infra/persistence/model"
)

func TestGormStorage_NilGuards(t *testing.T) {
	storage := &gormStorage[model.PlantModel, entity.Plant]{
		toDomain:   plantToDomain,
		fromDomain: plantFromDomain,
		notFound:   domainerrors.ErrPlantNotFound,
	}
	ctx := context.Background()

	t.Run("insert rejects nil entity", func(t *testing.T) {
		_, err := storage.Insert(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrNilEntity)
	})

	t.Run("update rejects nil entity", func(t *testing.T) {
		_, err := storage.Update(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrNilEntity)
	})

	t.Run("delete rejects nil entity", func(t *testing.T) {
		_, err := storage.Delete(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrNilEntity)
	})

	t.Run("fetch by id rejects empty id", func(t *testing.T) {
		_, err := storage.FetchByID(ctx, uuid.Nil)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyID)
	})
}

func TestPlantMapping(t *testing.T) {
	plant := &entity.Plant{
		ID:              uuid.New(),
		Name:            "Lavender",
		Type:            entity.PlantTypeHerb,
		Description:     "Fragrant perennial",
		Maintenance:     "Low",
		Planting:        "Spring",
		Predispositions: "Full sun",
	}

	roundTripped := plantToDomain(plantFromDomain(plant))
	require.NotNil(t, roundTripped)
	assert.Equal(t, plant.ID, roundTripped.ID)
	assert.Equal(t, plant.Name, roundTripped.Name)
	assert.Equal(t, plant.Type, roundTripped.Type)
	assert.Equal(t, plant.Predispositions, roundTripped.Predispositions)
}

func TestCommentMapping(t *testing.T) {
	t.Run("keeps the author reference", func(t *testing.T) {
		comment := &entity.Comment{
			ID:             uuid.New(),
			PlantID:        uuid.New(),
			AuthorUsername: "gardener",
			Content:        "Thrives on my balcony",
		}

		dataModel := commentFromDomain(comment)
		require.NotNil(t, dataModel.AuthorUsername)
		assert.Equal(t, "gardener", *dataModel.AuthorUsername)

		roundTripped := commentToDomain(dataModel)
		assert.Equal(t, comment.AuthorUsername, roundTripped.AuthorUsername)
		assert.Equal(t, comment.PlantID, roundTripped.PlantID)
	})

	t.Run("maps an orphaned comment without an author", func(t *testing.T) {
		dataModel := &model.CommentModel{
			ID:      uuid.New(),
			PlantID: uuid.New(),
			Content: "Left behind by a deleted account",
		}

		comment := commentToDomain(dataModel)
		assert.Empty(t, comment.AuthorUsername)
		assert.Nil(t, comment.Author)
	})
}

func TestQuizQuestionMapping(t *testing.T) {
	question := &entity.QuizQuestion{
		ID:                 uuid.New(),
		QuizID:             uuid.New(),
		Question:           "Which of these is a herb?",
		Answers:            []string{"Oak", "Basil", "Tulip", "Carrot"},
		CorrectAnswerIndex: 1,
	}

	roundTripped := quizQuestionToDomain(quizQuestionFromDomain(question))
	require.NotNil(t, roundTripped)
	assert.Equal(t, question.Answers, roundTripped.Answers)
	assert.Equal(t, question.CorrectAnswerIndex, roundTripped.CorrectAnswerIndex)
}

func TestUserMapping(t *testing.T) {
	user := &entity.User{
		Username: "gardener",
		Email:    "gardener@example.com",
		Password: "$2a$10$hash",
		Name:     "Flora",
		Surname:  "Green",
		Role:     entity.RoleStandardUser,
	}

	roundTripped := userToDomain(userFromDomain(user))
	require.NotNil(t, roundTripped)
	assert.Equal(t, user.Username, roundTripped.Username)
	assert.Equal(t, user.Role, roundTripped.Role)
	assert.Equal(t, user.Password, roundTripped.Password)
}
