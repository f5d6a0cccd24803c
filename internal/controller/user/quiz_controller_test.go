package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/lshigami/lingoquiz/internal/dto"
)

type fakeEngine struct {
	progress *domain.Progress
	review   *domain.Review
	err      error

	lastUser  int64
	lastQuiz  uint
	lastIndex int
	lastLabel string
	verb      string
}

func (f *fakeEngine) Start(_ context.Context, userID int64, quizID uint) (*domain.Progress, error) {
	f.verb, f.lastUser, f.lastQuiz = "start", userID, quizID
	return f.progress, f.err
}

func (f *fakeEngine) Retake(_ context.Context, userID int64, quizID uint) (*domain.Progress, error) {
	f.verb, f.lastUser, f.lastQuiz = "retake", userID, quizID
	return f.progress, f.err
}

func (f *fakeEngine) CurrentQuestion(_ context.Context, userID int64) (*domain.Progress, error) {
	f.verb, f.lastUser = "current", userID
	return f.progress, f.err
}

func (f *fakeEngine) SubmitAnswer(_ context.Context, userID int64, idx int, label string) (*domain.Progress, error) {
	f.verb, f.lastUser, f.lastIndex, f.lastLabel = "submit", userID, idx, label
	return f.progress, f.err
}

func (f *fakeEngine) Review(_ context.Context, userID int64) (*domain.Review, error) {
	f.verb, f.lastUser = "review", userID
	return f.review, f.err
}

type fakeCatalog struct {
	quizzes  []domain.Quiz
	err      error
	lastUser *int64
}

func (f *fakeCatalog) GetQuiz(context.Context, uint) (*domain.Quiz, error) { return nil, nil }
func (f *fakeCatalog) GetQuestions(context.Context, uint) ([]domain.Question, error) { return nil, nil }
func (f *fakeCatalog) ListQuizzes(_ context.Context, _ string, userID *int64) ([]domain.Quiz, error) {
	f.lastUser = userID
	return f.quizzes, f.err
}

type fakeRecorder struct {
	stats *dto.UserStatsDTO
	err   error
}

func (f *fakeRecorder) Record(context.Context, int64, uint, int, int) error { return nil }
func (f *fakeRecorder) UserStats(_ context.Context, userID int64) (*dto.UserStatsDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := *f.stats
	s.UserID = userID
	return &s, nil
}

type fakeCoach struct {
	advice string
	err    error
}

func (f *fakeCoach) Advise(context.Context, *domain.Review) (string, error) { return f.advice, f.err }

type harness struct {
	router   *gin.Engine
	engine   *fakeEngine
	catalog  *fakeCatalog
	recorder *fakeRecorder
	coach    *fakeCoach
}

func newHarness() *harness {
	gin.SetMode(gin.TestMode)
	h := &harness{
		engine:   &fakeEngine{},
		catalog:  &fakeCatalog{},
		recorder: &fakeRecorder{stats: &dto.UserStatsDTO{}},
		coach:    &fakeCoach{},
	}
	h.router = gin.New()
	NewQuizController(h.engine, h.catalog, h.recorder, h.coach).RegisterRoutes(h.router.Group("/api/v1"))
	return h
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func awaiting() *domain.Progress {
	return &domain.Progress{
		State: domain.StateAwaitingAnswer, SessionID: "s-1", QuizID: 3, QuizTitle: "Korean L1", Index: 0, Total: 2,
		Question: &domain.Question{ID: 10, Prompt: "안녕?", CorrectLabel: "A", Points: 1,
			Options: []domain.Option{{Label: "A", Text: "hello"}, {Label: "B", Text: "bye"}}},
	}
}

func TestStartQuizReturnsQuestionWithoutAnswer(t *testing.T) {
	h := newHarness()
	h.engine.progress = awaiting()

	w := h.do(http.MethodPost, "/api/v1/users/5005/quizzes/3/start", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if h.engine.verb != "start" || h.engine.lastUser != 5005 || h.engine.lastQuiz != 3 {
		t.Fatalf("engine called with %+v", h.engine)
	}
	if strings.Contains(w.Body.String(), "correct") {
		t.Fatalf("response leaks the correct label: %s", w.Body.String())
	}
	var resp dto.ProgressResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Question == nil || resp.Question.QuestionID != 10 || len(resp.Question.Options) != 2 || resp.Question.Total != 2 {
		t.Fatalf("response = %+v", resp)
	}
}

func TestRetakeRoute(t *testing.T) {
	h := newHarness()
	h.engine.progress = awaiting()
	if w := h.do(http.MethodPost, "/api/v1/users/1/quizzes/3/retake", ""); w.Code != http.StatusOK || h.engine.verb != "retake" {
		t.Fatalf("status = %d, verb = %s", w.Code, h.engine.verb)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
		code string
	}{
		{domain.ErrQuizNotFound, http.StatusNotFound, "quiz_not_found"},
		{domain.ErrNoQuestions, http.StatusUnprocessableEntity, "no_questions"},
		{domain.ErrPremiumRequired, http.StatusForbidden, "premium_required"},
		{domain.ErrSessionNotFound, http.StatusNotFound, "session_not_found"},
		{fmt.Errorf("%w: boom", domain.ErrCatalogUnavailable), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		h := newHarness()
		h.engine.err = tc.err
		w := h.do(http.MethodPost, "/api/v1/users/1/quizzes/3/start", "")
		if w.Code != tc.want {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.want)
			continue
		}
		var body dto.ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != tc.code {
			t.Errorf("%v: code = %q, want %q", tc.err, body.Code, tc.code)
		}
	}
}

func TestBadIDs(t *testing.T) {
	h := newHarness()
	for _, path := range []string{"/api/v1/users/abc/quizzes/3/start", "/api/v1/users/1/quizzes/-3/start"} {
		if w := h.do(http.MethodPost, path, ""); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", path, w.Code)
		}
	}
}

func TestSubmitAnswer(t *testing.T) {
	h := newHarness()
	h.engine.progress = awaiting()

	w := h.do(http.MethodPost, "/api/v1/users/9/session/answers", `{"question_index":0,"label":"b"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if h.engine.lastIndex != 0 || h.engine.lastLabel != "b" {
		t.Fatalf("engine got (%d, %q)", h.engine.lastIndex, h.engine.lastLabel)
	}

	for _, body := range []string{`{"label":"A"}`, `{"question_index":1}`, `not json`} {
		if w := h.do(http.MethodPost, "/api/v1/users/9/session/answers", body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d", body, w.Code)
		}
	}
}

func TestSubmitAnswerPersistenceFailureStillShowsResult(t *testing.T) {
	h := newHarness()
	h.engine.progress = &domain.Progress{
		State: domain.StateFinished, QuizID: 3, Score: 2,
		Result: &domain.AttemptResult{Score: 2, MaxScore: 2, Percentage: 100, Grade: domain.GradeExcellent},
	}
	h.engine.err = fmt.Errorf("%w: db down", domain.ErrPersistenceFailure)

	w := h.do(http.MethodPost, "/api/v1/users/9/session/answers", `{"question_index":1,"label":"B"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp dto.ProgressResponseDTO
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Result == nil || resp.Result.Recorded || resp.Result.Warning == "" || resp.Result.Grade != "excellent" {
		t.Fatalf("result = %+v", resp.Result)
	}
}

func TestReviewWithAdvice(t *testing.T) {
	h := newHarness()
	h.engine.review = &domain.Review{QuizID: 3, Finished: true, Answers: []domain.AnswerRecord{
		{QuestionID: 10, Chosen: "A", Correct: "A", IsCorrect: true, PointsAwarded: 1},
		{QuestionID: 11, Chosen: "C", Correct: "B"},
	}}
	h.coach.advice = "Practise thanks."

	w := h.do(http.MethodGet, "/api/v1/users/9/review?advice=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.ReviewResponseDTO
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Answers) != 2 || resp.Answers[1].Number != 2 || resp.Answers[1].Correct != "B" || resp.Advice != "Practise thanks." {
		t.Fatalf("review = %+v", resp)
	}
	want := dto.AnswerRecordDTO{Number: 1, QuestionID: 10, Chosen: "A", Correct: "A", IsCorrect: true, PointsAwarded: 1}
	if resp.Answers[0] != want {
		t.Fatalf("first answer = %+v, want %+v", resp.Answers[0], want)
	}

	h.coach.err = domain.ErrCoachUnavailable
	h.coach.advice = ""
	if w := h.do(http.MethodGet, "/api/v1/users/9/review?advice=true", ""); w.Code != http.StatusOK {
		t.Fatalf("review with coach down: status = %d", w.Code)
	}
}

func TestListQuizzes(t *testing.T) {
	h := newHarness()
	h.catalog.quizzes = []domain.Quiz{{ID: 1, Title: "Korean L1", Language: "korean"}}

	if w := h.do(http.MethodGet, "/api/v1/quizzes", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("missing language: status = %d", w.Code)
	}
	w := h.do(http.MethodGet, "/api/v1/quizzes?language=korean&user_id=77", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if h.catalog.lastUser == nil || *h.catalog.lastUser != 77 {
		t.Fatalf("user id not forwarded")
	}
	var resp []dto.QuizSummaryDTO
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp) != 1 || resp[0].Title != "Korean L1" {
		t.Fatalf("quizzes = %+v", resp)
	}
}

func TestStats(t *testing.T) {
	h := newHarness()
	h.recorder.stats = &dto.UserStatsDTO{Overall: dto.ScoreStatsDTO{Attempts: 3, AvgScore: 2, MaxScore: 3}}
	w := h.do(http.MethodGet, "/api/v1/users/9/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.UserStatsDTO
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.UserID != 9 || resp.Overall.Attempts != 3 {
		t.Fatalf("stats = %+v", resp)
	}

	h.recorder.err = errors.New("db down")
	if w := h.do(http.MethodGet, "/api/v1/users/9/stats", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}
