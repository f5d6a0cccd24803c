package domain

import "errors"

var (
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrNoQuestions     = errors.New("quiz has no questions")
	ErrPremiumRequired = errors.New("premium subscription required")
	ErrSessionNotFound = errors.New("no active quiz session")
	// ErrStaleAnswer marks an answer for a question other than the awaited
	// one. The engine absorbs it and never returns it to callers.
	ErrStaleAnswer = errors.New("stale answer")
	// ErrPersistenceFailure is returned alongside a valid result when the
	// attempt could not be recorded.
	ErrPersistenceFailure = errors.New("attempt could not be recorded")

	ErrCatalogUnavailable    = errors.New("quiz catalog unavailable")
	ErrAccessGateUnavailable = errors.New("premium access check unavailable")
	ErrSessionStore          = errors.New("session store failure")
	ErrCoachUnavailable      = errors.New("study coach unavailable")
)
