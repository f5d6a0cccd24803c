package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/lingoquiz/internal/domain"
)

// RatingMessage is the body published for each rating event.
type RatingMessage struct {
	ID         string             `json:"id"`
	Type       domain.RatingEvent `json:"type"`
	UserID     int64              `json:"user_id"`
	Source     string             `json:"source"`
	OccurredAt time.Time          `json:"occurred_at"`
}

func NewRatingMessage(userID int64, kind domain.RatingEvent, at time.Time) RatingMessage {
	return RatingMessage{
		ID:         uuid.NewString(),
		Type:       kind,
		UserID:     userID,
		Source:     "quiz-engine",
		OccurredAt: at.UTC(),
	}
}

// RoutingKey is the topic key, e.g. "rating.quiz_start".
func (m RatingMessage) RoutingKey() string {
	return "rating." + string(m.Type)
}
