package impl

import (
	"context"
	"log/slog"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/usecase"
)

// badgeService implements the BadgeUsecase interface.
type badgeService struct {
	badgeStorage repository.Storage[entity.Badge]
	grantStorage repository.Storage[entity.UserBadge]
	badgeLookup  repository.BadgeLookup
	users        usecase.UserReader
	logger       *slog.Logger
}

// NewBadgeService is the constructor for badgeService.
func NewBadgeService(
	badgeStorage repository.Storage[entity.Badge],
	grantStorage repository.Storage[entity.UserBadge],
	badgeLookup repository.BadgeLookup,
	users usecase.UserReader,
	logger *slog.Logger,
) usecase.BadgeUsecase {
	return &badgeService{
		badgeStorage: badgeStorage,
		grantStorage: grantStorage,
		badgeLookup:  badgeLookup,
		users:        users,
		logger:       logger,
	}
}

func (srv *badgeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddBadge defines a new badge under the given name.
func (srv *badgeService) AddBadge(ctx context.Context, name string) (*entity.Badge, error) {
	if name == "" {
		return nil, domainerrors.ErrBadgeNameRequired
	}

	created, err := srv.badgeStorage.Insert(ctx, &entity.Badge{Name: name})
	if err != nil {
		srv.log(ctx).Warn("Failed to add badge", slog.String("name", name), slog.Any("error", err))

		return nil, err
	}

	return created, nil
}

// FetchBadgeByName returns the badge with the given name. The name is
// the business key, so an empty name is a precondition failure.
func (srv *badgeService) FetchBadgeByName(ctx context.Context, name string) (*entity.Badge, error) {
	if name == "" {
		return nil, domainerrors.ErrBadgeNameRequired
	}

	return srv.badgeLookup.FetchBadgeByName(ctx, name)
}

// AddBadgeToUser validates the input, resolves the badge by name and the
// user by username, then persists the grant relation.
func (srv *badgeService) AddBadgeToUser(ctx context.Context, input *usecase.GrantBadgeInput) (*entity.UserBadge, error) {
	if input == nil {
		return nil, domainerrors.ErrNilRequest
	}
	if input.BadgeName == "" {
		return nil, domainerrors.ErrBadgeNameRequired
	}
	if input.Username == "" {
		return nil, domainerrors.ErrUsernameRequired
	}

	badge, err := srv.badgeLookup.FetchBadgeByName(ctx, input.BadgeName)
	if err != nil {
		return nil, err
	}

	user, err := srv.users.FetchUserByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	grant := &entity.UserBadge{
		Username: user.Username,
		BadgeID:  badge.ID,
		Badge:    badge,
	}

	created, err := srv.grantStorage.Insert(ctx, grant)
	if err != nil {
		srv.log(ctx).Warn("Failed to grant badge",
			slog.String("badge", input.BadgeName),
			slog.String("username", input.Username),
			slog.Any("error", err),
		)

		return nil, err
	}

	created.Badge = badge

	return created, nil
}
