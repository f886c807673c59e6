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

type badgeServiceMocks struct {
	badgeStorage *mocks.Storage[entity.Badge]
	grantStorage *mocks.Storage[entity.UserBadge]
	badgeLookup  *mocks.BadgeLookup
	users        *mocks.UserReader
}

func newBadgeServiceForTest() (usecase.BadgeUsecase, *badgeServiceMocks) {
	deps := &badgeServiceMocks{
		badgeStorage: new(mocks.Storage[entity.Badge]),
		grantStorage: new(mocks.Storage[entity.UserBadge]),
		badgeLookup:  new(mocks.BadgeLookup),
		users:        new(mocks.UserReader),
	}
	srv := NewBadgeService(deps.badgeStorage, deps.grantStorage, deps.badgeLookup, deps.users, slog.Default())

	return srv, deps
}

func TestBadgeService_AddBadge(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty name", func(t *testing.T) {
		srv, deps := newBadgeServiceForTest()

		_, err := srv.AddBadge(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrBadgeNameRequired)
		deps.badgeStorage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("persists the badge", func(t *testing.T) {
		srv, deps := newBadgeServiceForTest()
		deps.badgeStorage.On("Insert", mock.Anything, mock.MatchedBy(func(badge *entity.Badge) bool {
			return badge.Name == "Green Thumb"
		})).Return(&entity.Badge{ID: uuid.New(), Name: "Green Thumb"}, nil)

		created, err := srv.AddBadge(ctx, "Green Thumb")
		require.NoError(t, err)
		assert.Equal(t, "Green Thumb", created.Name)
	})

	t.Run("surfaces the storage conflict on duplicate names", func(t *testing.T) {
		srv, deps := newBadgeServiceForTest()
		deps.badgeStorage.On("Insert", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrBadgeAlreadyExists)

		_, err := srv.AddBadge(ctx, "Green Thumb")
		assert.ErrorIs(t, err, domainerrors.ErrBadgeAlreadyExists)
	})
}

func TestBadgeService_FetchBadgeByName(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty name", func(t *testing.T) {
		srv, _ := newBadgeServiceForTest()

		_, err := srv.FetchBadgeByName(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrBadgeNameRequired)
	})

	t.Run("delegates to the lookup", func(t *testing.T) {
		srv, deps := newBadgeServiceForTest()
		deps.badgeLookup.On("FetchBadgeByName", mock.Anything, "Green Thumb").
			Return(&entity.Badge{ID: uuid.New(), Name: "Green Thumb"}, nil)

		badge, err := srv.FetchBadgeByName(ctx, "Green Thumb")
		require.NoError(t, err)
		assert.Equal(t, "Green Thumb", badge.Name)
	})
}

func TestBadgeService_AddBadgeToUser(t *testing.T) {
	ctx := context.Background()

	t.Run("validation order is request, badge name, username", func(t *testing.T) {
		srv, _ := newBadgeServiceForTest()

		_, err := srv.AddBadgeToUser(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrNilRequest)

		_, err = srv.AddBadgeToUser(ctx, &usecase.GrantBadgeInput{Username: "gardener"})
		assert.ErrorIs(t, err, domainerrors.ErrBadgeNameRequired)

		_, err = srv.AddBadgeToUser(ctx, &usecase.GrantBadgeInput{BadgeName: "Green Thumb"})
		assert.ErrorIs(t, err, domainerrors.ErrUsernameRequired)
	})

	t.Run("unknown badge fails even when the user exists", func(t *testing.T) {
		srv, deps := newBadgeServiceForTest()
		deps.badgeLookup.On("FetchBadgeByName", mock.Anything, "Unheard Of").
			Return(nil, domainerrors.ErrBadgeNotFound)

		_, err := srv.AddBadgeToUser(ctx, &usecase.GrantBadgeInput{
			BadgeName: "Unheard Of",
			Username:  "gardener",
		})
		assert.ErrorIs(t, err, domainerrors.ErrBadgeNotFound)
		assert.EqualError(t, err, "Badge not found")
		deps.users.AssertNotCalled(t, "FetchUserByUsername", mock.Anything, mock.Anything)
		deps.grantStorage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("missing user aborts before the insert", func(t *testing.T) {
		srv, deps := newBadgeServiceForTest()
		deps.badgeLookup.On("FetchBadgeByName", mock.Anything, "Green Thumb").
			Return(&entity.Badge{ID: uuid.New(), Name: "Green Thumb"}, nil)
		deps.users.On("FetchUserByUsername", mock.Anything, "ghost").
			Return(nil, domainerrors.ErrUserNotFound)

		_, err := srv.AddBadgeToUser(ctx, &usecase.GrantBadgeInput{
			BadgeName: "Green Thumb",
			Username:  "ghost",
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		deps.grantStorage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("persists the grant bound to both entities", func(t *testing.T) {
		badgeID := uuid.New()

		srv, deps := newBadgeServiceForTest()
		deps.badgeLookup.On("FetchBadgeByName", mock.Anything, "Green Thumb").
			Return(&entity.Badge{ID: badgeID, Name: "Green Thumb"}, nil)
		deps.users.On("FetchUserByUsername", mock.Anything, "gardener").
			Return(&entity.User{Username: "gardener"}, nil)
		deps.grantStorage.On("Insert", mock.Anything, mock.MatchedBy(func(grant *entity.UserBadge) bool {
			return grant.Username == "gardener" && grant.BadgeID == badgeID
		})).Return(&entity.UserBadge{
			ID:       uuid.New(),
			Username: "gardener",
			BadgeID:  badgeID,
		}, nil)

		created, err := srv.AddBadgeToUser(ctx, &usecase.GrantBadgeInput{
			BadgeName: "Green Thumb",
			Username:  "gardener",
		})
		require.NoError(t, err)
		assert.Equal(t, badgeID, created.BadgeID)
		assert.Equal(t, "Green Thumb", created.Badge.Name)
		deps.grantStorage.AssertExpectations(t)
	})
}
