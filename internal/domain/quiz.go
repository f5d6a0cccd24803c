package domain

import (
	"strings"
	"time"
)

// Quiz is the catalog metadata of a quiz. It is never modified by the engine.
type Quiz struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language"`
	IsPremium   bool      `json:"is_premium"`
	CreatedAt   time.Time `json:"created_at"`
}

// Option is one labeled choice of a question. Labels are A through D.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type Question struct {
	ID           uint     `json:"id"`
	QuizID       uint     `json:"quiz_id"`
	Prompt       string   `json:"prompt"`
	Options      []Option `json:"options"`
	CorrectLabel string   `json:"correct_label"`
	Points       int      `json:"points"`
}

// IsCorrect compares labels case-insensitively. Labels that name no option
// are simply wrong.
func (q Question) IsCorrect(label string) bool {
	return strings.EqualFold(strings.TrimSpace(label), q.CorrectLabel)
}

// Award returns the points earned for answering label.
func (q Question) Award(label string) (bool, int) {
	if q.IsCorrect(label) {
		return true, q.Points
	}
	return false, 0
}
