package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/romch007/youtube/internal/db"
)

// UserRepository provides data access methods for the User model.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Create inserts a new user row. The username's unique index makes
// concurrent duplicate registrations fail with gorm.ErrDuplicatedKey
// instead of creating a second row.
func (r *UserRepository) Create(ctx context.Context, user *db.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByUsername returns the user with the given username, or
// gorm.ErrRecordNotFound.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*db.User, error) {
	var user db.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given id, or gorm.ErrRecordNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*db.User, error) {
	var user db.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
