// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/domain/service"
	"flora/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) FetchAllUsers(ctx context.Context) ([]*entity.User, error) {
	return srv.userRepo.FetchAllUsers(ctx)
}

func (srv *userService) FetchUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, domainerrors.ErrEmailRequired
	}

	return srv.userRepo.FetchUserByEmail(ctx, email)
}

func (srv *userService) FetchUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		return nil, domainerrors.ErrUsernameRequired
	}

	return srv.userRepo.FetchUserByUsername(ctx, username)
}

// Authenticate verifies the credentials and returns the matching user.
// Unknown username and wrong password surface as the same failure.
func (srv *userService) Authenticate(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrNilRequest
	}
	if input.Username == "" {
		return nil, domainerrors.ErrUsernameRequired
	}
	if input.Password == "" {
		return nil, domainerrors.ErrPasswordRequired
	}

	user, err := srv.userRepo.VerifyCredentials(ctx, input.Username, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Authentication failed", slog.String("username", input.Username))

		return nil, err
	}

	return user, nil
}

// Login authenticates and issues the session token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.Username, user.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.String("username", user.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in", slog.String("username", user.Username))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Register creates a new StandardUser account. The five fields are
// validated together; the error does not say which one is missing.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrNilRequest
	}
	if input.Email == "" || input.Username == "" || input.Password == "" ||
		input.Name == "" || input.Surname == "" {
		return nil, domainerrors.ErrRegisterFieldsRequired
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Name:     input.Name,
		Surname:  input.Surname,
		Role:     entity.RoleStandardUser,
	}

	registered, err := srv.userRepo.Insert(ctx, newUser)
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User registered", slog.String("username", registered.Username))

	return registered, nil
}

// UserExists reports whether an account with the input's username and
// email is already registered.
func (srv *userService) UserExists(ctx context.Context, input *usecase.RegisterInput) (bool, error) {
	if input == nil {
		return false, domainerrors.ErrNilRequest
	}
	if input.Username == "" && input.Email == "" {
		return false, domainerrors.ErrIdentityRequired
	}

	return srv.userRepo.UserExists(ctx, input.Username, input.Email)
}

func (srv *userService) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domainerrors.ErrNilEntity
	}

	return srv.userRepo.Update(ctx, user)
}

func (srv *userService) DeleteUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domainerrors.ErrNilEntity
	}

	return srv.userRepo.Delete(ctx, user)
}
