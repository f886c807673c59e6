package postgres

import (
	"context"
	"testing"

	"flora/internal/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return db, mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestUserRepository_UserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("true when username and email belong to different accounts", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, new(mocks.PasswordHasher))

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1`).
			WithArgs("gardener").
			WillReturnRows(countRows(1))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
			WithArgs("other@example.com").
			WillReturnRows(countRows(1))

		exists, err := repo.UserExists(ctx, "gardener", "other@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("false when only the username is taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, new(mocks.PasswordHasher))

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1`).
			WithArgs("gardener").
			WillReturnRows(countRows(1))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
			WithArgs("free@example.com").
			WillReturnRows(countRows(0))

		exists, err := repo.UserExists(ctx, "gardener", "free@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("false without an email query when the username is free", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, new(mocks.PasswordHasher))

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1`).
			WithArgs("nobody").
			WillReturnRows(countRows(0))

		exists, err := repo.UserExists(ctx, "nobody", "taken@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
