package repository

import (
	"context"

	"github.com/lshigami/lingoquiz/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByQuizID(ctx context.Context, quizID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindByQuizID returns the questions in authoring order (ascending id).
func (r *questionRepository) FindByQuizID(ctx context.Context, quizID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
