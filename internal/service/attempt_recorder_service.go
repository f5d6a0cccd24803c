package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/lingoquiz/internal/dto"
	"github.com/lshigami/lingoquiz/internal/model"
	"github.com/lshigami/lingoquiz/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const recentAttemptsLimit = 5

type AttemptRecorderService interface {
	AttemptRecorder
	// UserStats reports lifetime totals, per-language totals and the most
	// recent attempts of a user.
	UserStats(ctx context.Context, userID int64) (*dto.UserStatsDTO, error)
}

type attemptRecorderService struct {
	attemptRepo repository.AttemptRepository
	db          *gorm.DB // Used for the record transaction
}

func NewAttemptRecorderService(attemptRepo repository.AttemptRepository, db *gorm.DB) AttemptRecorderService {
	return &attemptRecorderService{attemptRepo: attemptRepo, db: db}
}

// Record inserts the attempt row and bumps the user's counters in one
// transaction; either both land or neither does.
func (s *attemptRecorderService) Record(ctx context.Context, userID int64, quizID uint, score, totalQuestions int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt := model.QuizAttempt{
			UserID:         userID,
			QuizID:         quizID,
			Score:          score,
			TotalQuestions: totalQuestions,
		}
		if err := repository.NewAttemptRepository(tx).Create(ctx, &attempt); err != nil {
			return fmt.Errorf("failed to create quiz attempt record: %w", err)
		}
		if err := repository.NewUserRepository(tx).AddQuizAttempt(ctx, userID, score); err != nil {
			return fmt.Errorf("failed to update quiz totals of user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Uint("quizID", quizID).Msg("Record: transaction failed")
		return err
	}
	log.Info().Int64("userID", userID).Uint("quizID", quizID).Int("score", score).Msg("Quiz attempt recorded")
	return nil
}

func (s *attemptRecorderService) UserStats(ctx context.Context, userID int64) (*dto.UserStatsDTO, error) {
	totals, err := s.attemptRepo.TotalsByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("UserStats: failed to load totals")
		return nil, fmt.Errorf("error loading quiz totals: %w", err)
	}
	byLanguage, err := s.attemptRepo.TotalsByLanguage(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("UserStats: failed to load language totals")
		return nil, fmt.Errorf("error loading language totals: %w", err)
	}
	recent, err := s.attemptRepo.RecentByUser(ctx, userID, recentAttemptsLimit)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("UserStats: failed to load recent attempts")
		return nil, fmt.Errorf("error loading recent attempts: %w", err)
	}

	resp := dto.UserStatsDTO{
		UserID:     userID,
		ByLanguage: []dto.LanguageStatsDTO{},
		Recent:     []dto.RecentAttemptDTO{},
	}
	if err := copier.Copy(&resp.Overall, totals); err != nil {
		return nil, fmt.Errorf("error mapping totals: %w", err)
	}
	if len(byLanguage) > 0 {
		if err := copier.Copy(&resp.ByLanguage, &byLanguage); err != nil {
			return nil, fmt.Errorf("error mapping language totals: %w", err)
		}
	}
	if len(recent) > 0 {
		if err := copier.Copy(&resp.Recent, &recent); err != nil {
			return nil, fmt.Errorf("error mapping recent attempts: %w", err)
		}
	}
	return &resp, nil
}
