package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/lingoquiz/config"
	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const coachModel = "gemini-1.5-flash"

// StudyCoachService turns the missed questions of a review into short study
// advice.
type StudyCoachService interface {
	Advise(ctx context.Context, review *domain.Review) (string, error)
}

// contentGenerator is the part of *genai.GenerativeModel the coach uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type studyCoachService struct {
	client  contentGenerator
	catalog QuizCatalog
}

func NewStudyCoachService(cfg *config.Config, catalog QuizCatalog) (StudyCoachService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Study advice will be unavailable.")
		return &studyCoachService{catalog: catalog}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &studyCoachService{client: client.GenerativeModel(coachModel), catalog: catalog}, nil
}

func (s *studyCoachService) Advise(ctx context.Context, review *domain.Review) (string, error) {
	if s.client == nil {
		return "Study advice is not available right now.", domain.ErrCoachUnavailable
	}

	missed := make(map[uint]domain.AnswerRecord)
	for _, a := range review.Answers {
		if !a.IsCorrect {
			missed[a.QuestionID] = a
		}
	}
	if len(missed) == 0 {
		return "Every answer was correct. Try a harder quiz next.", nil
	}

	questions, err := s.catalog.GetQuestions(ctx, review.QuizID)
	if err != nil {
		return "", err
	}

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("You are a friendly %s language tutor.\n", review.Language))
	prompt.WriteString(fmt.Sprintf("A learner just took the quiz %q and missed the questions below.\n", review.QuizTitle))
	prompt.WriteString("For each one, explain the correct answer in one or two sentences, then finish with one short study tip.\n\n")
	n := 0
	for _, q := range questions {
		a, ok := missed[q.ID]
		if !ok {
			continue
		}
		n++
		prompt.WriteString(fmt.Sprintf("%d. %s\n", n, q.Prompt))
		for _, o := range q.Options {
			prompt.WriteString(fmt.Sprintf("   %s) %s\n", o.Label, o.Text))
		}
		prompt.WriteString(fmt.Sprintf("   Learner chose: %s. Correct: %s.\n", a.Chosen, a.Correct))
	}

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Uint("quizID", review.QuizID).Msg("Gemini API error during study advice")
		return "", fmt.Errorf("%w: %w", domain.ErrCoachUnavailable, err)
	}

	text := responseText(resp)
	if text == "" {
		log.Warn().Uint("quizID", review.QuizID).Msg("Gemini returned no text content for study advice")
		return "", fmt.Errorf("%w: gemini returned no text content", domain.ErrCoachUnavailable)
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String())
}
