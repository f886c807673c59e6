package repository

import (
	"context"

	"flora/internal/domain/entity"
)

// UserRepository defines the operations for user persistence. Users are
// keyed by username rather than a surrogate id, so they do not fit the
// generic Storage capability and get a bespoke contract instead.
type UserRepository interface {
	// FetchAllUsers lists every account. Empty slice when there are none.
	FetchAllUsers(ctx context.Context) ([]*entity.User, error)

	// FetchUserByEmail retrieves a single user by email address.
	// Returns domain errors.ErrUserNotFound when no account matches.
	FetchUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FetchUserByUsername retrieves a single user by username, with the
	// user's liked plants and badge grants loaded.
	FetchUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// VerifyCredentials looks the user up by username and checks the
	// supplied plaintext password against the stored hash. Unknown user
	// and wrong password both fail with ErrInvalidCredentials.
	VerifyCredentials(ctx context.Context, username, password string) (*entity.User, error)

	// UserExists reports whether an account matching the given username
	// and email is already registered.
	UserExists(ctx context.Context, username, email string) (bool, error)

	// Insert persists a new user. Fails with ErrNilEntity on nil.
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update modifies an existing user. Fails with ErrNilEntity on nil.
	Update(ctx context.Context, user *entity.User) (*entity.User, error)

	// Delete removes a user. Fails with ErrNilEntity on nil.
	Delete(ctx context.Context, user *entity.User) (*entity.User, error)
}
