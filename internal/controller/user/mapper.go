package user

import (
	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/lshigami/lingoquiz/internal/dto"
)

// toProgressDTO strips the correct label before a question leaves the service.
// A non-nil persistErr marks the result as unsaved.
func toProgressDTO(p *domain.Progress, persistErr error) dto.ProgressResponseDTO {
	resp := dto.ProgressResponseDTO{
		SessionID: p.SessionID,
		QuizID:    p.QuizID,
		QuizTitle: p.QuizTitle,
		State:     string(p.State),
		Score:     p.Score,
		Stale:     p.Stale,
	}
	if p.Question != nil {
		q := &dto.QuestionViewDTO{
			Index:      p.Index,
			Total:      p.Total,
			QuestionID: p.Question.ID,
			Prompt:     p.Question.Prompt,
			Points:     p.Question.Points,
			Options:    make([]dto.OptionDTO, 0, len(p.Question.Options)),
		}
		for _, o := range p.Question.Options {
			q.Options = append(q.Options, dto.OptionDTO{Label: o.Label, Text: o.Text})
		}
		resp.Question = q
	}
	if r := p.Result; r != nil {
		resp.Result = &dto.AttemptResultDTO{
			QuizID:          r.QuizID,
			QuizTitle:       r.QuizTitle,
			Score:           r.Score,
			MaxScore:        r.MaxScore,
			Percentage:      r.Percentage,
			TotalQuestions:  r.TotalQuestions,
			CorrectCount:    r.CorrectCount,
			DurationSeconds: int64(r.Duration.Seconds()),
			Grade:           string(r.Grade),
			Feedback:        string(r.Feedback),
			FinishedAt:      r.FinishedAt,
			Recorded:        r.Recorded,
		}
		if persistErr != nil || !r.Recorded {
			resp.Result.Recorded = false
			resp.Result.Warning = "Your result could not be saved. It is shown here but will not count towards your statistics."
		}
	}
	return resp
}
