package usecase

import (
	"context"

	"flora/internal/domain/entity"
)

// GrantBadgeInput defines the data required to grant a badge to a user.
type GrantBadgeInput struct {
	BadgeName string
	Username  string
}

// BadgeUsecase defines the interface for defining and granting badges.
type BadgeUsecase interface {
	AddBadge(ctx context.Context, name string) (*entity.Badge, error)
	FetchBadgeByName(ctx context.Context, name string) (*entity.Badge, error)
	AddBadgeToUser(ctx context.Context, input *GrantBadgeInput) (*entity.UserBadge, error)
}
