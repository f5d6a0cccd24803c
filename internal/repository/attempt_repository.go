package repository

import (
	"context"
	"time"

	"github.com/lshigami/lingoquiz/internal/model"
	"gorm.io/gorm"
)

// AttemptTotals aggregates a user's attempts.
type AttemptTotals struct {
	Attempts int64
	AvgScore float64
	MaxScore int
}

type LanguageTotals struct {
	Language string
	Attempts int64
	AvgScore float64
	MaxScore int
}

type RecentAttempt struct {
	QuizID         uint
	Title          string
	Score          int
	TotalQuestions int
	CompletedAt    time.Time
}

type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.QuizAttempt) error
	TotalsByUser(ctx context.Context, userID int64) (*AttemptTotals, error)
	TotalsByLanguage(ctx context.Context, userID int64) ([]LanguageTotals, error)
	RecentByUser(ctx context.Context, userID int64, limit int) ([]RecentAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.db.WithContext(ctx).Omit("Quiz").Create(attempt).Error
}

func (r *attemptRepository) TotalsByUser(ctx context.Context, userID int64) (*AttemptTotals, error) {
	var totals AttemptTotals
	err := r.db.WithContext(ctx).Model(&model.QuizAttempt{}).
		Select("COUNT(*) AS attempts, COALESCE(AVG(score), 0) AS avg_score, COALESCE(MAX(score), 0) AS max_score").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	return &totals, err
}

func (r *attemptRepository) TotalsByLanguage(ctx context.Context, userID int64) ([]LanguageTotals, error) {
	var rows []LanguageTotals
	err := r.db.WithContext(ctx).Model(&model.QuizAttempt{}).
		Select("quizzes.language AS language, COUNT(*) AS attempts, COALESCE(AVG(quiz_attempts.score), 0) AS avg_score, COALESCE(MAX(quiz_attempts.score), 0) AS max_score").
		Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
		Where("quiz_attempts.user_id = ?", userID).
		Group("quizzes.language").
		Order("quizzes.language ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *attemptRepository) RecentByUser(ctx context.Context, userID int64, limit int) ([]RecentAttempt, error) {
	var rows []RecentAttempt
	err := r.db.WithContext(ctx).Model(&model.QuizAttempt{}).
		Select("quiz_attempts.quiz_id AS quiz_id, quizzes.title AS title, quiz_attempts.score AS score, quiz_attempts.total_questions AS total_questions, quiz_attempts.completed_at AS completed_at").
		Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
		Where("quiz_attempts.user_id = ?", userID).
		Order("quiz_attempts.completed_at DESC").
		Order("quiz_attempts.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
