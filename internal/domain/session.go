package domain

import "time"

type SessionState string

const (
	StateNoSession      SessionState = "no_session"
	StateAwaitingAnswer SessionState = "awaiting_answer"
	StateFinished       SessionState = "finished"
)

// AnswerRecord is the outcome of one submitted answer.
type AnswerRecord struct {
	QuestionID    uint   `json:"question_id"`
	Chosen        string `json:"chosen"`
	Correct       string `json:"correct"`
	IsCorrect     bool   `json:"is_correct"`
	PointsAwarded int    `json:"points_awarded"`
}

// Session is one user's in-progress run through a quiz. Questions is a
// snapshot taken at start and is shared, read-only, between clones.
//
// Invariants: len(Answers) == CurrentIndex, Score == sum of PointsAwarded,
// CurrentIndex <= len(Questions).
type Session struct {
	ID           string         `json:"id"`
	UserID       int64          `json:"user_id"`
	QuizID       uint           `json:"quiz_id"`
	QuizTitle    string         `json:"quiz_title"`
	Language     string         `json:"language"`
	Questions    []Question     `json:"questions"`
	CurrentIndex int            `json:"current_index"`
	Score        int            `json:"score"`
	Answers      []AnswerRecord `json:"answers"`
	StartedAt    time.Time      `json:"started_at"`
}

// Current returns the question awaiting an answer, if any.
func (s *Session) Current() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

func (s *Session) Completed() bool {
	return s.CurrentIndex >= len(s.Questions)
}

func (s *Session) MaxScore() int {
	total := 0
	for _, q := range s.Questions {
		total += q.Points
	}
	return total
}

func (s *Session) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// Record applies an answer to the current question and advances the session.
func (s *Session) Record(label string) AnswerRecord {
	q := s.Questions[s.CurrentIndex]
	ok, points := q.Award(label)
	rec := AnswerRecord{
		QuestionID:    q.ID,
		Chosen:        label,
		Correct:       q.CorrectLabel,
		IsCorrect:     ok,
		PointsAwarded: points,
	}
	s.Answers = append(s.Answers, rec)
	s.CurrentIndex++
	s.Score += points
	return rec
}

// Clone copies the mutable parts of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Answers = append([]AnswerRecord(nil), s.Answers...)
	return &c
}

// Review is the read-only answer list of a session or finished attempt.
type Review struct {
	SessionID string         `json:"session_id"`
	QuizID    uint           `json:"quiz_id"`
	QuizTitle string         `json:"quiz_title"`
	Language  string         `json:"language"`
	Finished  bool           `json:"finished"`
	Answers   []AnswerRecord `json:"answers"`
}

func (s *Session) Review(finished bool) *Review {
	return &Review{
		SessionID: s.ID,
		QuizID:    s.QuizID,
		QuizTitle: s.QuizTitle,
		Language:  s.Language,
		Finished:  finished,
		Answers:   append([]AnswerRecord(nil), s.Answers...),
	}
}
