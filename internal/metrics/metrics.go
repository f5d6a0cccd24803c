package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_sessions_started_total",
			Help: "Total number of quiz sessions started, including retakes",
		},
		[]string{"premium"},
	)

	StartRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_start_rejected_total",
			Help: "Quiz starts refused before a session was created",
		},
		[]string{"reason"}, // not_found, no_questions, premium_required, error
	)

	AttemptsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_attempts_finished_total",
			Help: "Total number of finished quiz attempts by grade",
		},
		[]string{"grade"},
	)

	StaleAnswers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_stale_answers_total",
			Help: "Answers ignored because they targeted a question other than the awaited one",
		},
	)

	PersistenceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_attempt_persistence_failures_total",
			Help: "Finished attempts that could not be recorded",
		},
	)

	AttemptDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quiz_attempt_duration_seconds",
			Help:    "Time from quiz start to the last answer",
			Buckets: []float64{15, 30, 60, 120, 300, 600, 1200, 3600},
		},
	)
)
