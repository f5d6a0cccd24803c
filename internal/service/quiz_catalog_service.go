package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/lshigami/lingoquiz/internal/model"
	"github.com/lshigami/lingoquiz/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizCatalog is the read path the engine starts sessions from.
type QuizCatalog interface {
	GetQuiz(ctx context.Context, quizID uint) (*domain.Quiz, error)
	GetQuestions(ctx context.Context, quizID uint) ([]domain.Question, error)
}

type QuizCatalogService interface {
	QuizCatalog
	// ListQuizzes lists a language's quizzes, newest first. Premium quizzes
	// are left out unless userID holds an active premium entitlement.
	ListQuizzes(ctx context.Context, language string, userID *int64) ([]domain.Quiz, error)
}

type quizCatalogService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	gate         AccessGate
}

func NewQuizCatalogService(quizRepo repository.QuizRepository, questionRepo repository.QuestionRepository, gate AccessGate) QuizCatalogService {
	return &quizCatalogService{quizRepo: quizRepo, questionRepo: questionRepo, gate: gate}
}

func (s *quizCatalogService) GetQuiz(ctx context.Context, quizID uint) (*domain.Quiz, error) {
	row, err := s.quizRepo.FindByID(ctx, quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrQuizNotFound
	}
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to load quiz from repository")
		return nil, fmt.Errorf("%w: loading quiz %d: %w", domain.ErrCatalogUnavailable, quizID, err)
	}

	var quiz domain.Quiz
	if err := copier.Copy(&quiz, row); err != nil {
		return nil, fmt.Errorf("error mapping quiz %d: %w", quizID, err)
	}
	return &quiz, nil
}

func (s *quizCatalogService) GetQuestions(ctx context.Context, quizID uint) ([]domain.Question, error) {
	rows, err := s.questionRepo.FindByQuizID(ctx, quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to load quiz questions from repository")
		return nil, fmt.Errorf("%w: loading questions of quiz %d: %w", domain.ErrCatalogUnavailable, quizID, err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		q := toDomainQuestion(&rows[i])
		if err := checkQuestion(q); err != nil {
			log.Warn().Err(err).Uint("quizID", quizID).Uint("questionID", q.ID).Msg("Skipping malformed quiz question")
			continue
		}
		if q.Points == 0 {
			log.Warn().Uint("quizID", quizID).Uint("questionID", q.ID).Msg("Quiz question is worth no points")
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (s *quizCatalogService) ListQuizzes(ctx context.Context, language string, userID *int64) ([]domain.Quiz, error) {
	rows, err := s.quizRepo.FindAllByLanguage(ctx, language)
	if err != nil {
		log.Error().Err(err).Str("language", language).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("%w: listing %s quizzes: %w", domain.ErrCatalogUnavailable, language, err)
	}

	premium := false
	if userID != nil {
		premium, err = s.gate.IsPremiumActive(ctx, *userID)
		if err != nil {
			return nil, err
		}
	}

	quizzes := make([]domain.Quiz, 0, len(rows))
	for i := range rows {
		if rows[i].IsPremium && !premium {
			continue
		}
		var q domain.Quiz
		if err := copier.Copy(&q, &rows[i]); err != nil {
			return nil, fmt.Errorf("error mapping quiz %d: %w", rows[i].ID, err)
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}

// toDomainQuestion assembles the labeled option set; C and D appear only
// when authored.
func toDomainQuestion(row *model.Question) domain.Question {
	options := []domain.Option{
		{Label: "A", Text: row.OptionA},
		{Label: "B", Text: row.OptionB},
	}
	if row.OptionC != nil && *row.OptionC != "" {
		options = append(options, domain.Option{Label: "C", Text: *row.OptionC})
	}
	if row.OptionD != nil && *row.OptionD != "" {
		options = append(options, domain.Option{Label: "D", Text: *row.OptionD})
	}
	return domain.Question{
		ID:           row.ID,
		QuizID:       row.QuizID,
		Prompt:       row.Question,
		Options:      options,
		CorrectLabel: strings.ToUpper(strings.TrimSpace(row.CorrectAnswer)),
		Points:       row.Points,
	}
}

// checkQuestion rejects rows no answer could score on, and negative points
// which would push a percentage below zero.
func checkQuestion(q domain.Question) error {
	if q.Points < 0 {
		return fmt.Errorf("question %d has negative points %d", q.ID, q.Points)
	}
	for _, o := range q.Options {
		if o.Label == q.CorrectLabel {
			return nil
		}
	}
	return fmt.Errorf("question %d: correct answer %q is not one of its options", q.ID, q.CorrectLabel)
}
