// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"flora/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Name     string
	Surname  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	FetchAllUsers(ctx context.Context) ([]*entity.User, error)
	FetchUserByEmail(ctx context.Context, email string) (*entity.User, error)
	FetchUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// Authenticate verifies the credentials and returns the matching user.
	Authenticate(ctx context.Context, input *LoginInput) (*entity.User, error)
	// Login authenticates and issues the session token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Register creates a new StandardUser account with a hashed password.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	// UserExists reports whether an account with the input's username and
	// email is already registered.
	UserExists(ctx context.Context, input *RegisterInput) (bool, error)

	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, user *entity.User) (*entity.User, error)
}

// UserReader is the narrow read capability other services depend on.
type UserReader interface {
	FetchUserByUsername(ctx context.Context, username string) (*entity.User, error)
}
