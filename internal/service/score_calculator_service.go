package service

import (
	"github.com/lshigami/lingoquiz/internal/domain"
)

// Grade tiers, inclusive lower bounds in percent.
const (
	ExcellentThreshold    = 90.0
	GoodThreshold         = 80.0
	SatisfactoryThreshold = 70.0
	AverageThreshold      = 60.0
)

// Rating and feedback tiers are coarser than grades.
const (
	HighPerformanceThreshold = 80.0
	FairPerformanceThreshold = 60.0
)

type ScoreCalculatorService interface {
	// Percentage returns score/maxScore*100 clamped to [0,100]; 0 when maxScore is 0.
	Percentage(score, maxScore int) float64
	// Grade maps an already computed percentage to a grade tier.
	Grade(percentage float64) domain.Grade
	RatingEvent(percentage float64) domain.RatingEvent
	Feedback(percentage float64) domain.Feedback
}

type scoreCalculatorServiceImpl struct{}

func NewScoreCalculatorService() ScoreCalculatorService {
	return &scoreCalculatorServiceImpl{}
}

func (s *scoreCalculatorServiceImpl) Percentage(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	p := float64(score) / float64(maxScore) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

func (s *scoreCalculatorServiceImpl) Grade(percentage float64) domain.Grade {
	switch {
	case percentage >= ExcellentThreshold:
		return domain.GradeExcellent
	case percentage >= GoodThreshold:
		return domain.GradeGood
	case percentage >= SatisfactoryThreshold:
		return domain.GradeSatisfactory
	case percentage >= AverageThreshold:
		return domain.GradeAverage
	default:
		return domain.GradeNeedsReview
	}
}

func (s *scoreCalculatorServiceImpl) RatingEvent(percentage float64) domain.RatingEvent {
	switch {
	case percentage >= HighPerformanceThreshold:
		return domain.RatingQuizExcellent
	case percentage >= FairPerformanceThreshold:
		return domain.RatingQuizGood
	default:
		return domain.RatingQuizComplete
	}
}

func (s *scoreCalculatorServiceImpl) Feedback(percentage float64) domain.Feedback {
	switch {
	case percentage >= HighPerformanceThreshold:
		return domain.FeedbackExcellent
	case percentage >= FairPerformanceThreshold:
		return domain.FeedbackGood
	default:
		return domain.FeedbackRetry
	}
}
