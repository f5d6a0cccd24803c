package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/lshigami/lingoquiz/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AccessGate interface {
	IsPremiumActive(ctx context.Context, userID int64) (bool, error)
}

type accessGateService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewAccessGateService(userRepo repository.UserRepository) AccessGate {
	return &accessGateService{userRepo: userRepo, now: time.Now}
}

// IsPremiumActive is false for users never stored and for lapsed premium.
func (s *accessGateService) IsPremiumActive(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("Premium lookup failed")
		return false, fmt.Errorf("%w: user %d: %w", domain.ErrAccessGateUnavailable, userID, err)
	}
	return user.PremiumActiveAt(s.now()), nil
}
