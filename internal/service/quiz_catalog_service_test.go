package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/lshigami/lingoquiz/internal/model"
	"github.com/lshigami/lingoquiz/internal/repository"
)

func newCatalogForTest(t *testing.T) (QuizCatalogService, *accessGateService, func(v interface{})) {
	db := newServiceTestDB(t)
	gate := NewAccessGateService(repository.NewUserRepository(db)).(*accessGateService)
	gate.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	catalog := NewQuizCatalogService(repository.NewQuizRepository(db), repository.NewQuestionRepository(db), gate)
	create := func(v interface{}) {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("create %T: %v", v, err)
		}
	}
	return catalog, gate, create
}

func TestCatalogGetQuizNotFound(t *testing.T) {
	catalog, _, _ := newCatalogForTest(t)
	if _, err := catalog.GetQuiz(context.Background(), 404); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestCatalogQuestionsCarryOptionalOptions(t *testing.T) {
	catalog, _, create := newCatalogForTest(t)
	ctx := context.Background()
	quiz := model.Quiz{Title: "Korean L1", Language: "korean", IsPremium: true}
	create(&quiz)
	c, empty := "c", ""
	create(&model.Question{ID: 2, QuizID: quiz.ID, Question: "two", OptionA: "a", OptionB: "b", OptionC: &c, OptionD: &empty, CorrectAnswer: "C", Points: 2})
	create(&model.Question{ID: 1, QuizID: quiz.ID, Question: "one", OptionA: "a", OptionB: "b", CorrectAnswer: "A", Points: 1})

	got, err := catalog.GetQuiz(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}
	if got.Title != "Korean L1" || !got.IsPremium || got.Language != "korean" {
		t.Fatalf("quiz = %+v", got)
	}

	questions, err := catalog.GetQuestions(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("GetQuestions: %v", err)
	}
	if len(questions) != 2 || questions[0].ID != 1 {
		t.Fatalf("questions = %+v", questions)
	}
	if len(questions[0].Options) != 2 || len(questions[1].Options) != 3 {
		t.Fatalf("option counts = %d, %d", len(questions[0].Options), len(questions[1].Options))
	}
	if questions[1].Prompt != "two" || questions[1].CorrectLabel != "C" || questions[1].Points != 2 {
		t.Fatalf("question = %+v", questions[1])
	}
}

func TestCatalogSkipsMalformedQuestions(t *testing.T) {
	catalog, _, create := newCatalogForTest(t)
	ctx := context.Background()
	quiz := model.Quiz{Title: "Kana", Language: "japanese"}
	create(&quiz)
	c := "c"
	create(&model.Question{ID: 1, QuizID: quiz.ID, Question: "ok", OptionA: "a", OptionB: "b", CorrectAnswer: "A", Points: 1})
	create(&model.Question{ID: 2, QuizID: quiz.ID, Question: "no D", OptionA: "a", OptionB: "b", OptionC: &c, CorrectAnswer: "D", Points: 1})
	create(&model.Question{ID: 3, QuizID: quiz.ID, Question: "bad label", OptionA: "a", OptionB: "b", CorrectAnswer: "E", Points: 1})
	create(&model.Question{ID: 4, QuizID: quiz.ID, Question: "negative", OptionA: "a", OptionB: "b", CorrectAnswer: "B", Points: -1})
	create(&model.Question{ID: 5, QuizID: quiz.ID, Question: "lower", OptionA: "a", OptionB: "b", OptionC: &c, CorrectAnswer: "c", Points: 2})

	questions, err := catalog.GetQuestions(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("GetQuestions: %v", err)
	}
	if len(questions) != 2 || questions[0].ID != 1 || questions[1].ID != 5 {
		t.Fatalf("questions = %+v", questions)
	}
	if questions[1].CorrectLabel != "C" {
		t.Fatalf("correct label = %q, want C", questions[1].CorrectLabel)
	}
}

func TestListQuizzesHidesPremium(t *testing.T) {
	catalog, _, create := newCatalogForTest(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	create(&model.Quiz{Title: "Free", Language: "korean", CreatedAt: base})
	create(&model.Quiz{Title: "Paid", Language: "korean", IsPremium: true, CreatedAt: base.Add(time.Hour)})
	create(&model.Quiz{Title: "Other", Language: "japanese", CreatedAt: base})

	expired := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	create(&model.User{UserID: 1, IsPremium: true})
	create(&model.User{UserID: 2, IsPremium: true, PremiumExpiresAt: &expired})

	titles := func(userID *int64) []string {
		quizzes, err := catalog.ListQuizzes(ctx, "korean", userID)
		if err != nil {
			t.Fatalf("ListQuizzes: %v", err)
		}
		var out []string
		for _, q := range quizzes {
			out = append(out, q.Title)
		}
		return out
	}

	premiumUser, lapsedUser, unknownUser := int64(1), int64(2), int64(3)
	cases := []struct {
		name   string
		userID *int64
		want   []string
	}{
		{"anonymous", nil, []string{"Free"}},
		{"premium", &premiumUser, []string{"Paid", "Free"}},
		{"lapsed premium", &lapsedUser, []string{"Free"}},
		{"unknown user", &unknownUser, []string{"Free"}},
	}
	for _, tc := range cases {
		got := titles(tc.userID)
		if len(got) != len(tc.want) {
			t.Errorf("%s: titles = %v, want %v", tc.name, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: titles = %v, want %v", tc.name, got, tc.want)
				break
			}
		}
	}
}
