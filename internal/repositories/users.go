package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/magno-tech/exercise-tracker/internal/models"
)

// UserRepository handles lookups and writes for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindOrCreate returns the stored user for the exact username when one
// exists, otherwise creates it. This makes registration idempotent by name.
func (r *UserRepository) FindOrCreate(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	db := r.db.WithContext(ctx)
	err := db.Where("username = ?", username).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Username: username}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return &user, nil
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

// FindByID resolves an id in its text form. Anything that is not a uuid
// cannot reference a stored user, so it reports not-found rather than
// letting the driver reject the value.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", uid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteByUsername removes at most one user with the given username.
// Deleting a username that does not exist is not an error.
func (r *UserRepository) DeleteByUsername(ctx context.Context, username string) error {
	db := r.db.WithContext(ctx)
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("find user: %w", err)
	}
	if err := db.Delete(&user).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
