package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"ruralplanner/internal/models/db_models"
	"ruralplanner/pkg/utils"
)

type UserRepository interface {
	GetOrCreateByEmail(ctx context.Context, email string) (db_models.User, error)
	UpdatePrefVector(ctx context.Context, userID int, vector pgvector.Vector) error
	CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetOrCreateByEmail(ctx context.Context, email string) (db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return user, utils.ErrDatabaseError
	}

	user = db_models.User{Email: email}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return user, utils.ErrDatabaseError
	}
	return user, nil
}

func (r *userRepository) UpdatePrefVector(ctx context.Context, userID int, vector pgvector.Vector) error {
	err := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", userID).
		Update("pref_vector", vector).Error
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *userRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
