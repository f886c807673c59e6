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

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentStorage repository.Storage[entity.Comment]
	plants         usecase.PlantReader
	users          usecase.UserReader
	logger         *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	commentStorage repository.Storage[entity.Comment],
	plants usecase.PlantReader,
	users usecase.UserReader,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		commentStorage: commentStorage,
		plants:         plants,
		users:          users,
		logger:         logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCommentToPlant validates the input, resolves the plant and the
// author, then persists the comment bound to both.
func (srv *commentService) AddCommentToPlant(ctx context.Context, input *usecase.AddCommentInput) (*entity.Comment, error) {
	if input == nil {
		return nil, domainerrors.ErrNilRequest
	}
	if input.Content == "" {
		return nil, domainerrors.ErrContentRequired
	}
	if input.Username == "" {
		return nil, domainerrors.ErrUsernameRequired
	}
	if input.PlantID == uuid.Nil {
		return nil, domainerrors.ErrEmptyID
	}

	plant, err := srv.plants.FetchPlantByID(ctx, input.PlantID)
	if err != nil {
		return nil, err
	}

	author, err := srv.users.FetchUserByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		PlantID:        plant.ID,
		Plant:          plant,
		AuthorUsername: author.Username,
		Author:         author,
		Content:        input.Content,
	}

	created, err := srv.commentStorage.Insert(ctx, comment)
	if err != nil {
		srv.log(ctx).Warn("Failed to add comment",
			slog.String("username", input.Username),
			slog.String("plantID", input.PlantID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	created.Plant = plant
	created.Author = author

	return created, nil
}
