package domain

import "time"

type Grade string

const (
	GradeExcellent    Grade = "excellent"
	GradeGood         Grade = "good"
	GradeSatisfactory Grade = "satisfactory"
	GradeAverage      Grade = "average"
	GradeNeedsReview  Grade = "needs_review"
)

// Feedback is the closing remark shown with a result.
type Feedback string

const (
	FeedbackExcellent Feedback = "excellent"
	FeedbackGood      Feedback = "good"
	FeedbackRetry     Feedback = "retry"
)

// RatingEvent is sent to the gamification subsystem.
type RatingEvent string

const (
	RatingQuizStart     RatingEvent = "quiz_start"
	RatingQuizExcellent RatingEvent = "quiz_excellent"
	RatingQuizGood      RatingEvent = "quiz_good"
	RatingQuizComplete  RatingEvent = "quiz_complete"
)

// AttemptResult is produced once, when the last question is answered.
type AttemptResult struct {
	SessionID      string        `json:"session_id"`
	UserID         int64         `json:"user_id"`
	QuizID         uint          `json:"quiz_id"`
	QuizTitle      string        `json:"quiz_title"`
	Score          int           `json:"score"`
	MaxScore       int           `json:"max_score"`
	Percentage     float64       `json:"percentage"`
	TotalQuestions int           `json:"total_questions"`
	CorrectCount   int           `json:"correct_count"`
	Duration       time.Duration `json:"duration"`
	Grade          Grade         `json:"grade"`
	Feedback       Feedback      `json:"feedback"`
	FinishedAt     time.Time     `json:"finished_at"`
	// Recorded is false when the attempt could not be persisted.
	Recorded bool `json:"recorded"`
}

// Progress is what a front end presents after any engine verb.
type Progress struct {
	State     SessionState   `json:"state"`
	SessionID string         `json:"session_id"`
	QuizID    uint           `json:"quiz_id"`
	QuizTitle string         `json:"quiz_title"`
	Index     int            `json:"index"`
	Total     int            `json:"total"`
	Score     int            `json:"score"`
	Question  *Question      `json:"question,omitempty"`
	Result    *AttemptResult `json:"result,omitempty"`
	// Stale is set when a submitted answer did not match the awaited index
	// and was ignored.
	Stale bool `json:"stale,omitempty"`
}
