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

func TestCommentService_ValidationOrder(t *testing.T) {
	ctx := context.Background()
	srv := NewCommentService(new(mocks.Storage[entity.Comment]), new(mocks.PlantReader), new(mocks.UserReader), slog.Default())

	t.Run("nil request first", func(t *testing.T) {
		_, err := srv.AddCommentToPlant(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrNilRequest)
	})

	t.Run("empty content before empty username", func(t *testing.T) {
		_, err := srv.AddCommentToPlant(ctx, &usecase.AddCommentInput{})
		assert.ErrorIs(t, err, domainerrors.ErrContentRequired)
	})

	t.Run("empty username before empty plant id", func(t *testing.T) {
		_, err := srv.AddCommentToPlant(ctx, &usecase.AddCommentInput{Content: "Lovely plant"})
		assert.ErrorIs(t, err, domainerrors.ErrUsernameRequired)
	})

	t.Run("empty plant id last", func(t *testing.T) {
		_, err := srv.AddCommentToPlant(ctx, &usecase.AddCommentInput{
			Content:  "Lovely plant",
			Username: "gardener",
		})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyID)
	})
}

func TestCommentService_AddCommentToPlant(t *testing.T) {
	ctx := context.Background()
	plantID := uuid.New()

	t.Run("round-trips the resolved plant and author", func(t *testing.T) {
		plant := &entity.Plant{ID: plantID, Name: "Lavender"}
		author := &entity.User{Username: "gardener"}

		plants := new(mocks.PlantReader)
		plants.On("FetchPlantByID", mock.Anything, plantID).Return(plant, nil)

		users := new(mocks.UserReader)
		users.On("FetchUserByUsername", mock.Anything, "gardener").Return(author, nil)

		storage := new(mocks.Storage[entity.Comment])
		storage.On("Insert", mock.Anything, mock.MatchedBy(func(comment *entity.Comment) bool {
			return comment.PlantID == plantID && comment.AuthorUsername == "gardener"
		})).Return(&entity.Comment{
			ID:             uuid.New(),
			PlantID:        plantID,
			AuthorUsername: "gardener",
			Content:        "Lovely plant",
		}, nil)

		srv := NewCommentService(storage, plants, users, slog.Default())

		created, err := srv.AddCommentToPlant(ctx, &usecase.AddCommentInput{
			Content:  "Lovely plant",
			Username: "gardener",
			PlantID:  plantID,
		})
		require.NoError(t, err)
		assert.Equal(t, plantID, created.Plant.ID)
		assert.Equal(t, "gardener", created.Author.Username)
		storage.AssertExpectations(t)
	})

	t.Run("missing plant aborts before the user lookup", func(t *testing.T) {
		plants := new(mocks.PlantReader)
		plants.On("FetchPlantByID", mock.Anything, plantID).Return(nil, domainerrors.ErrPlantNotFound)

		users := new(mocks.UserReader)
		storage := new(mocks.Storage[entity.Comment])

		srv := NewCommentService(storage, plants, users, slog.Default())

		_, err := srv.AddCommentToPlant(ctx, &usecase.AddCommentInput{
			Content:  "Lovely plant",
			Username: "gardener",
			PlantID:  plantID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
		assert.EqualError(t, err, "Plant not found")
		users.AssertNotCalled(t, "FetchUserByUsername", mock.Anything, mock.Anything)
		storage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("missing user aborts before the insert", func(t *testing.T) {
		plants := new(mocks.PlantReader)
		plants.On("FetchPlantByID", mock.Anything, plantID).Return(&entity.Plant{ID: plantID}, nil)

		users := new(mocks.UserReader)
		users.On("FetchUserByUsername", mock.Anything, "ghost").Return(nil, domainerrors.ErrUserNotFound)

		storage := new(mocks.Storage[entity.Comment])

		srv := NewCommentService(storage, plants, users, slog.Default())

		_, err := srv.AddCommentToPlant(ctx, &usecase.AddCommentInput{
			Content:  "Lovely plant",
			Username: "ghost",
			PlantID:  plantID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		storage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}
