package user

import (
	"context"

	"gorm.io/gorm"

	"recipe-catalog/entities"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, tx *gorm.DB, user *entities.User) error
		GetUserByUsername(ctx context.Context, tx *gorm.DB, username string) (*entities.User, error)
		GetUsers(ctx context.Context, tx *gorm.DB) ([]*entities.User, error)
		CheckUsername(ctx context.Context, tx *gorm.DB, username string) (bool, error)
		UpdateUserRoles(ctx context.Context, tx *gorm.DB, user *entities.User) error
		DeleteUser(ctx context.Context, tx *gorm.DB, userID int) error
		Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *userRepository) CreateUser(ctx context.Context, tx *gorm.DB, user *entities.User) error {
	return r.conn(ctx, tx).Create(user).Error
}

func (r *userRepository) GetUserByUsername(ctx context.Context, tx *gorm.DB, username string) (*entities.User, error) {
	var user entities.User
	if err := r.conn(ctx, tx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUsers(ctx context.Context, tx *gorm.DB) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.conn(ctx, tx).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CheckUsername(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
	var count int64
	if err := r.conn(ctx, tx).
		Model(&entities.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateUserRoles(ctx context.Context, tx *gorm.DB, user *entities.User) error {
	return r.conn(ctx, tx).Model(user).Select("Roles").Updates(user).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, tx *gorm.DB, userID int) error {
	return r.conn(ctx, tx).Delete(&entities.User{}, userID).Error
}

func (r *userRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
