package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/agroassist/engine/internal/models"
	appErr "github.com/agroassist/engine/pkg/errors"
)

// UserRepository is the credential store. Callers pass emails already
// normalized (trimmed, lowercased); uniqueness is enforced by the store
// itself so concurrent creates for the same email cannot both succeed.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id any, dest *models.User) error
	GetByEmail(ctx context.Context, email string, dest *models.User) error
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db), db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// The unique index on lower(email) rejects duplicates atomically.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return appErr.Wrap(err, appErr.CodeConflict, "email already registered")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "create user failed")
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	if err := r.db.WithContext(ctx).Where("lower(email) = ?", email).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "user not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get user by email failed")
	}
	return nil
}
