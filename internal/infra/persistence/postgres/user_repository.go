package postgres

import (
	"context"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/domain/service"
	"flora/internal/errors"
	"flora/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements repository.UserRepository. Users are keyed
// by username, so it does not go through the shared id-keyed storage.
// Credential checks live here so the stored hash never crosses the
// repository boundary just to be compared.
type userRepository struct {
	db     *gorm.DB
	hasher service.PasswordHasher
}

// NewUserRepository creates a new PostgreSQL user repository.
func NewUserRepository(db *gorm.DB, hasher service.PasswordHasher) repository.UserRepository {
	return &userRepository{
		db:     db,
		hasher: hasher,
	}
}

func (r *userRepository) FetchAllUsers(ctx context.Context) ([]*entity.User, error) {
	var dataModels []*model.UserModel
	if err := r.db.WithContext(ctx).Find(&dataModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "fetch all users failed")
	}

	users := make([]*entity.User, 0, len(dataModels))
	for _, dataModel := range dataModels {
		users = append(users, userToDomain(dataModel))
	}

	return users, nil
}

func (r *userRepository) FetchUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	dataModel := new(model.UserModel)
	err := r.db.WithContext(ctx).First(dataModel, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "fetch user by email failed")
	}

	return userToDomain(dataModel), nil
}

func (r *userRepository) FetchUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	dataModel := new(model.UserModel)
	err := r.db.WithContext(ctx).
		Preload("LikedPlants").
		Preload("LikedPlants.Plant").
		Preload("Badges").
		Preload("Badges.Badge").
		First(dataModel, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "fetch user by username failed")
	}

	return userToDomain(dataModel), nil
}

func (r *userRepository) VerifyCredentials(ctx context.Context, username, password string) (*entity.User, error) {
	dataModel := new(model.UserModel)
	err := r.db.WithContext(ctx).First(dataModel, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same failure as a wrong password, so callers cannot
			// probe which usernames exist.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "verify credentials failed")
	}

	if !r.hasher.Check(password, dataModel.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return userToDomain(dataModel), nil
}

// UserExists reports whether the username and the email are both taken,
// as two independent checks. They may belong to different accounts.
func (r *userRepository) UserExists(ctx context.Context, username, email string) (bool, error) {
	var usernameCount int64
	err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&usernameCount).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "user exists check failed")
	}
	if usernameCount == 0 {
		return false, nil
	}

	var emailCount int64
	err = r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&emailCount).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "user exists check failed")
	}

	return emailCount > 0, nil
}

func (r *userRepository) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domainerrors.ErrNilEntity
	}

	dataModel := userFromDomain(user)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(dataModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "insert user failed")
	}

	return userToDomain(dataModel), nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domainerrors.ErrNilEntity
	}

	dataModel := userFromDomain(user)
	result := r.db.WithContext(ctx).
		Model(dataModel).
		Select("*").
		Omit(clause.Associations).
		Updates(dataModel)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "update user failed")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrUserNotFound
	}

	return userToDomain(dataModel), nil
}

func (r *userRepository) Delete(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domainerrors.ErrNilEntity
	}

	dataModel := userFromDomain(user)
	result := r.db.WithContext(ctx).Delete(dataModel)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "delete user failed")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrUserNotFound
	}

	return userToDomain(dataModel), nil
}

func userToDomain(dataModel *model.UserModel) *entity.User {
	if dataModel == nil {
		return nil
	}

	user := &entity.User{
		Username: dataModel.Username,
		Email:    dataModel.Email,
		Password: dataModel.Password,
		Name:     dataModel.Name,
		Surname:  dataModel.Surname,
		Role:     entity.Role(dataModel.Role),
	}
	for _, like := range dataModel.LikedPlants {
		user.LikedPlants = append(user.LikedPlants, likedPlantToDomain(like))
	}
	for _, grant := range dataModel.Badges {
		user.Badges = append(user.Badges, userBadgeToDomain(grant))
	}

	return user
}

func userFromDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
		Name:     user.Name,
		Surname:  user.Surname,
		Role:     user.Role.String(),
	}
}
