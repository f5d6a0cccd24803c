package dto

import "time"

// QuizSummaryDTO is used for listing quizzes available to a user.
type QuizSummaryDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language"`
	IsPremium   bool      `json:"is_premium"`
	CreatedAt   time.Time `json:"created_at"`
}

type OptionDTO struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuestionViewDTO is a question as presented to the user. The correct label
// is deliberately absent.
type QuestionViewDTO struct {
	Index      int         `json:"index"`
	Total      int         `json:"total"`
	QuestionID uint        `json:"question_id"`
	Prompt     string      `json:"prompt"`
	Options    []OptionDTO `json:"options"`
	Points     int         `json:"points"`
}

// AttemptResultDTO is the finished-quiz summary.
type AttemptResultDTO struct {
	QuizID          uint      `json:"quiz_id"`
	QuizTitle       string    `json:"quiz_title"`
	Score           int       `json:"score"`
	MaxScore        int       `json:"max_score"`
	Percentage      float64   `json:"percentage"`
	TotalQuestions  int       `json:"total_questions"`
	CorrectCount    int       `json:"correct_count"`
	DurationSeconds int64     `json:"duration_seconds"`
	Grade           string    `json:"grade"`
	Feedback        string    `json:"feedback"`
	FinishedAt      time.Time `json:"finished_at"`
	Recorded        bool      `json:"recorded"`
	Warning         string    `json:"warning,omitempty"`
}

// ProgressResponseDTO is returned by every quiz verb.
type ProgressResponseDTO struct {
	SessionID string            `json:"session_id"`
	QuizID    uint              `json:"quiz_id"`
	QuizTitle string            `json:"quiz_title"`
	State     string            `json:"state"`
	Score     int               `json:"score"`
	Stale     bool              `json:"stale,omitempty"`
	Question  *QuestionViewDTO  `json:"question,omitempty"`
	Result    *AttemptResultDTO `json:"result,omitempty"`
}

type AnswerRecordDTO struct {
	Number        int    `json:"number"`
	QuestionID    uint   `json:"question_id"`
	Chosen        string `json:"chosen"`
	Correct       string `json:"correct"`
	IsCorrect     bool   `json:"is_correct"`
	PointsAwarded int    `json:"points_awarded"`
}

type ReviewResponseDTO struct {
	SessionID string            `json:"session_id"`
	QuizID    uint              `json:"quiz_id"`
	QuizTitle string            `json:"quiz_title"`
	Language  string            `json:"language"`
	Finished  bool              `json:"finished"`
	Answers   []AnswerRecordDTO `json:"answers"`
	Advice    string            `json:"advice,omitempty"`
}

// --- Lifetime statistics ---

type ScoreStatsDTO struct {
	Attempts int64   `json:"attempts"`
	AvgScore float64 `json:"avg_score"`
	MaxScore int     `json:"max_score"`
}

type LanguageStatsDTO struct {
	Language string  `json:"language"`
	Attempts int64   `json:"attempts"`
	AvgScore float64 `json:"avg_score"`
	MaxScore int     `json:"max_score"`
}

type RecentAttemptDTO struct {
	QuizID         uint      `json:"quiz_id"`
	Title          string    `json:"title"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

type UserStatsDTO struct {
	UserID     int64              `json:"user_id"`
	Overall    ScoreStatsDTO      `json:"overall"`
	ByLanguage []LanguageStatsDTO `json:"by_language"`
	Recent     []RecentAttemptDTO `json:"recent"`
}
