package usecase

import (
	"context"

	"flora/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCommentInput defines the data required to comment on a plant.
type AddCommentInput struct {
	Content  string
	Username string
	PlantID  uuid.UUID
}

// CommentUsecase defines the interface for attaching comments to plants.
// Comments are append-only at this layer; no update or delete is exposed.
type CommentUsecase interface {
	AddCommentToPlant(ctx context.Context, input *AddCommentInput) (*entity.Comment, error)
}
