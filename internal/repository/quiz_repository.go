package repository

import (
	"context"

	"github.com/lshigami/lingoquiz/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Quiz, error)
	FindAllByLanguage(ctx context.Context, language string) ([]model.Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindAllByLanguage lists quizzes newest first.
func (r *quizRepository) FindAllByLanguage(ctx context.Context, language string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.WithContext(ctx).
		Where("language = ?", language).
		Order("created_at DESC").
		Order("id DESC").
		Find(&quizzes).Error
	return quizzes, err
}
