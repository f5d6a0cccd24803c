package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/lshigami/lingoquiz/internal/metrics"
	"github.com/lshigami/lingoquiz/internal/session"
	"github.com/rs/zerolog/log"
)

// AttemptRecorder persists a finished attempt and updates the user's totals.
type AttemptRecorder interface {
	Record(ctx context.Context, userID int64, quizID uint, score, totalQuestions int) error
}

// RatingNotifier is fire-and-forget; implementations swallow their own failures.
type RatingNotifier interface {
	Notify(ctx context.Context, userID int64, kind domain.RatingEvent)
}

// QuizEngine drives one user at a time through a quiz, one question per turn.
type QuizEngine interface {
	Start(ctx context.Context, userID int64, quizID uint) (*domain.Progress, error)
	CurrentQuestion(ctx context.Context, userID int64) (*domain.Progress, error)
	// SubmitAnswer answers the question at questionIndex. An index other than
	// the awaited one leaves the session untouched and reports Stale.
	SubmitAnswer(ctx context.Context, userID int64, questionIndex int, label string) (*domain.Progress, error)
	Review(ctx context.Context, userID int64) (*domain.Review, error)
	Retake(ctx context.Context, userID int64, quizID uint) (*domain.Progress, error)
}

// recordTimeout bounds persisting a finished attempt once it is detached
// from the request.
const recordTimeout = 10 * time.Second

type quizEngineImpl struct {
	catalog  QuizCatalog
	gate     AccessGate
	recorder AttemptRecorder
	notifier RatingNotifier
	sessions session.Store
	reviews  session.ReviewStore
	scorer   ScoreCalculatorService
	locks    *userLocks
	now      func() time.Time
}

func NewQuizEngine(
	catalog QuizCatalog,
	gate AccessGate,
	recorder AttemptRecorder,
	notifier RatingNotifier,
	sessions session.Store,
	reviews session.ReviewStore,
	scorer ScoreCalculatorService,
) QuizEngine {
	return &quizEngineImpl{
		catalog:  catalog,
		gate:     gate,
		recorder: recorder,
		notifier: notifier,
		sessions: sessions,
		reviews:  reviews,
		scorer:   scorer,
		locks:    newUserLocks(),
		now:      time.Now,
	}
}

func (e *quizEngineImpl) Start(ctx context.Context, userID int64, quizID uint) (*domain.Progress, error) {
	unlock := e.locks.lock(userID)
	defer unlock()

	quiz, err := e.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		e.rejectStart(err)
		return nil, err
	}

	premium := false
	if quiz.IsPremium {
		premium, err = e.gate.IsPremiumActive(ctx, userID)
		if err != nil {
			e.rejectStart(err)
			return nil, err
		}
		if !premium {
			log.Info().Int64("userID", userID).Uint("quizID", quizID).Msg("Premium quiz refused for non-premium user")
			e.rejectStart(domain.ErrPremiumRequired)
			return nil, domain.ErrPremiumRequired
		}
	}

	questions, err := e.catalog.GetQuestions(ctx, quizID)
	if err != nil {
		e.rejectStart(err)
		return nil, err
	}
	if len(questions) == 0 {
		e.rejectStart(domain.ErrNoQuestions)
		return nil, domain.ErrNoQuestions
	}
	questions = append([]domain.Question(nil), questions...)
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })

	s := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		QuizID:    quiz.ID,
		QuizTitle: quiz.Title,
		Language:  quiz.Language,
		Questions: questions,
		Answers:   []domain.AnswerRecord{},
		StartedAt: e.now(),
	}

	if prev, ok, err := e.sessions.Get(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: reading session of user %d: %w", domain.ErrSessionStore, userID, err)
	} else if ok {
		log.Info().Int64("userID", userID).Str("replacedSession", prev.ID).Uint("replacedQuizID", prev.QuizID).
			Int("answered", prev.CurrentIndex).Msg("Discarding unfinished quiz session")
	}
	if err := e.sessions.Put(ctx, userID, s); err != nil {
		return nil, fmt.Errorf("%w: saving session of user %d: %w", domain.ErrSessionStore, userID, err)
	}

	metrics.SessionsStarted.WithLabelValues(strconv.FormatBool(quiz.IsPremium)).Inc()
	e.notifier.Notify(ctx, userID, domain.RatingQuizStart)
	log.Info().Int64("userID", userID).Uint("quizID", quizID).Str("sessionID", s.ID).Int("questions", len(questions)).Msg("Quiz session started")

	return progressOf(s), nil
}

func (e *quizEngineImpl) Retake(ctx context.Context, userID int64, quizID uint) (*domain.Progress, error) {
	return e.Start(ctx, userID, quizID)
}

func (e *quizEngineImpl) CurrentQuestion(ctx context.Context, userID int64) (*domain.Progress, error) {
	s, err := e.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progressOf(s), nil
}

func (e *quizEngineImpl) SubmitAnswer(ctx context.Context, userID int64, questionIndex int, label string) (*domain.Progress, error) {
	unlock := e.locks.lock(userID)
	defer unlock()

	s, err := e.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if questionIndex != s.CurrentIndex || s.Completed() {
		metrics.StaleAnswers.Inc()
		log.Debug().Err(domain.ErrStaleAnswer).Int64("userID", userID).Int("submittedIndex", questionIndex).
			Int("currentIndex", s.CurrentIndex).Msg("Ignoring answer for a question that is not awaited")
		p := progressOf(s)
		p.Stale = true
		return p, nil
	}

	rec := s.Record(label)
	log.Debug().Int64("userID", userID).Uint("questionID", rec.QuestionID).Bool("correct", rec.IsCorrect).Msg("Answer recorded")

	if !s.Completed() {
		if err := e.sessions.Put(ctx, userID, s); err != nil {
			return nil, fmt.Errorf("%w: saving session of user %d: %w", domain.ErrSessionStore, userID, err)
		}
		return progressOf(s), nil
	}
	return e.finish(ctx, s)
}

// finish closes a completed session. The session is removed before the
// attempt is recorded so a failed removal leaves the last answer unapplied
// rather than recorded twice. When another instance already removed it, the
// answer is treated as stale and nothing is recorded.
func (e *quizEngineImpl) finish(ctx context.Context, s *domain.Session) (*domain.Progress, error) {
	removed, err := e.sessions.Delete(ctx, s.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: removing session of user %d: %w", domain.ErrSessionStore, s.UserID, err)
	}
	if !removed {
		metrics.StaleAnswers.Inc()
		log.Warn().Int64("userID", s.UserID).Str("sessionID", s.ID).Msg("Session was finished elsewhere, not recording the attempt again")
		return nil, domain.ErrSessionNotFound
	}

	// The session is gone; a cancelled request must not drop the attempt.
	ctx = context.WithoutCancel(ctx)

	finishedAt := e.now()
	maxScore := s.MaxScore()
	pct := e.scorer.Percentage(s.Score, maxScore)
	result := &domain.AttemptResult{
		SessionID:      s.ID,
		UserID:         s.UserID,
		QuizID:         s.QuizID,
		QuizTitle:      s.QuizTitle,
		Score:          s.Score,
		MaxScore:       maxScore,
		Percentage:     pct,
		TotalQuestions: len(s.Questions),
		CorrectCount:   s.CorrectCount(),
		Duration:       finishedAt.Sub(s.StartedAt),
		Grade:          e.scorer.Grade(pct),
		Feedback:       e.scorer.Feedback(pct),
		FinishedAt:     finishedAt,
		Recorded:       true,
	}

	var persistErr error
	recordCtx, cancel := context.WithTimeout(ctx, recordTimeout)
	err = e.recorder.Record(recordCtx, s.UserID, s.QuizID, s.Score, len(s.Questions))
	cancel()
	if err != nil {
		result.Recorded = false
		metrics.PersistenceFailures.Inc()
		log.Error().Err(err).Int64("userID", s.UserID).Uint("quizID", s.QuizID).Int("score", s.Score).Msg("Failed to record quiz attempt")
		persistErr = fmt.Errorf("%w: quiz %d for user %d: %w", domain.ErrPersistenceFailure, s.QuizID, s.UserID, err)
	}

	e.notifier.Notify(ctx, s.UserID, e.scorer.RatingEvent(pct))

	if err := e.reviews.SaveReview(ctx, s.UserID, s.Review(true)); err != nil {
		log.Warn().Err(err).Int64("userID", s.UserID).Msg("Failed to keep review of finished attempt")
	}

	metrics.AttemptsFinished.WithLabelValues(string(result.Grade)).Inc()
	metrics.AttemptDuration.Observe(result.Duration.Seconds())
	log.Info().Int64("userID", s.UserID).Uint("quizID", s.QuizID).Int("score", s.Score).Int("maxScore", maxScore).
		Str("grade", string(result.Grade)).Msg("Quiz finished")

	return &domain.Progress{
		State:     domain.StateFinished,
		SessionID: s.ID,
		QuizID:    s.QuizID,
		QuizTitle: s.QuizTitle,
		Index:     s.CurrentIndex,
		Total:     len(s.Questions),
		Score:     s.Score,
		Result:    result,
	}, persistErr
}

func (e *quizEngineImpl) Review(ctx context.Context, userID int64) (*domain.Review, error) {
	s, ok, err := e.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: reading session of user %d: %w", domain.ErrSessionStore, userID, err)
	}
	if ok {
		return s.Review(false), nil
	}

	r, ok, err := e.reviews.LastReview(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: reading last review of user %d: %w", domain.ErrSessionStore, userID, err)
	}
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return r, nil
}

func (e *quizEngineImpl) activeSession(ctx context.Context, userID int64) (*domain.Session, error) {
	s, ok, err := e.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: reading session of user %d: %w", domain.ErrSessionStore, userID, err)
	}
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (e *quizEngineImpl) rejectStart(err error) {
	reason := "error"
	switch {
	case errors.Is(err, domain.ErrQuizNotFound):
		reason = "not_found"
	case errors.Is(err, domain.ErrNoQuestions):
		reason = "no_questions"
	case errors.Is(err, domain.ErrPremiumRequired):
		reason = "premium_required"
	}
	metrics.StartRejected.WithLabelValues(reason).Inc()
}

func progressOf(s *domain.Session) *domain.Progress {
	p := &domain.Progress{
		State:     domain.StateAwaitingAnswer,
		SessionID: s.ID,
		QuizID:    s.QuizID,
		QuizTitle: s.QuizTitle,
		Index:     s.CurrentIndex,
		Total:     len(s.Questions),
		Score:     s.Score,
	}
	if q, ok := s.Current(); ok {
		p.Question = &q
	}
	return p
}

// userLocks serialises mutating verbs per user. Entries are dropped once no
// goroutine holds or waits on them.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*userLock)}
}

func (l *userLocks) lock(userID int64) func() {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.Lock()
	return func() {
		ul.Unlock()
		l.mu.Lock()
		ul.refs--
		if ul.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}
