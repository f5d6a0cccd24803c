package repository

import (
	"context"

	"github.com/lshigami/lingoquiz/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	// AddQuizAttempt bumps the lifetime counters, creating the user row if
	// the chat user has never been stored.
	AddQuizAttempt(ctx context.Context, userID int64, score int) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) AddQuizAttempt(ctx context.Context, userID int64, score int) error {
	user := model.User{
		UserID:         userID,
		QuizScoreTotal: score,
		QuizAttempts:   1,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quiz_score_total": gorm.Expr("users.quiz_score_total + ?", score),
			"quiz_attempts":    gorm.Expr("users.quiz_attempts + 1"),
		}),
	}).Create(&user).Error
}
