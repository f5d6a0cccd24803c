package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lshigami/lingoquiz/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&model.Quiz{}, &model.Question{}, &model.QuizAttempt{}, &model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestQuestionRepositoryOrdersByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	quiz := model.Quiz{Title: "Korean L1", Language: "korean"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	for _, q := range []model.Question{
		{ID: 30, QuizID: quiz.ID, Question: "third", OptionA: "a", OptionB: "b", CorrectAnswer: "A", Points: 1},
		{ID: 10, QuizID: quiz.ID, Question: "first", OptionA: "a", OptionB: "b", OptionC: strPtr("c"), CorrectAnswer: "C", Points: 2},
		{ID: 20, QuizID: quiz.ID, Question: "second", OptionA: "a", OptionB: "b", CorrectAnswer: "B", Points: 1},
	} {
		q := q
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("create question: %v", err)
		}
	}

	questions, err := NewQuestionRepository(db).FindByQuizID(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("FindByQuizID: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	for i, want := range []uint{10, 20, 30} {
		if questions[i].ID != want {
			t.Fatalf("questions[%d].ID = %d, want %d", i, questions[i].ID, want)
		}
	}
	if questions[0].OptionC == nil || *questions[0].OptionC != "c" {
		t.Fatalf("option C not loaded: %+v", questions[0])
	}
}

func TestQuizRepositoryFindAllByLanguage(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, q := range []model.Quiz{
		{Title: "Old", Language: "korean", CreatedAt: base},
		{Title: "New", Language: "korean", IsPremium: true, CreatedAt: base.Add(time.Hour)},
		{Title: "Kana", Language: "japanese", CreatedAt: base},
	} {
		q := q
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("create quiz %d: %v", i, err)
		}
	}

	repo := NewQuizRepository(db)
	quizzes, err := repo.FindAllByLanguage(ctx, "korean")
	if err != nil {
		t.Fatalf("FindAllByLanguage: %v", err)
	}
	if len(quizzes) != 2 || quizzes[0].Title != "New" || quizzes[1].Title != "Old" {
		t.Fatalf("unexpected order: %+v", quizzes)
	}

	if _, err := repo.FindByID(ctx, 999); err != gorm.ErrRecordNotFound {
		t.Fatalf("FindByID missing = %v, want ErrRecordNotFound", err)
	}
}

func TestUserRepositoryAddQuizAttemptUpserts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	if err := repo.AddQuizAttempt(ctx, 42, 3); err != nil {
		t.Fatalf("first AddQuizAttempt: %v", err)
	}
	if err := repo.AddQuizAttempt(ctx, 42, 5); err != nil {
		t.Fatalf("second AddQuizAttempt: %v", err)
	}

	user, err := repo.FindByID(ctx, 42)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user.QuizScoreTotal != 8 || user.QuizAttempts != 2 {
		t.Fatalf("counters = (%d, %d), want (8, 2)", user.QuizScoreTotal, user.QuizAttempts)
	}
}

func TestAttemptRepositoryStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	korean := model.Quiz{Title: "Korean L1", Language: "korean"}
	japanese := model.Quiz{Title: "Hiragana", Language: "japanese"}
	db.Create(&korean)
	db.Create(&japanese)

	repo := NewAttemptRepository(db)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	attempts := []model.QuizAttempt{
		{UserID: 7, QuizID: korean.ID, Score: 2, TotalQuestions: 2, CompletedAt: base},
		{UserID: 7, QuizID: korean.ID, Score: 1, TotalQuestions: 2, CompletedAt: base.Add(time.Minute)},
		{UserID: 7, QuizID: japanese.ID, Score: 6, TotalQuestions: 10, CompletedAt: base.Add(2 * time.Minute)},
		{UserID: 8, QuizID: japanese.ID, Score: 9, TotalQuestions: 10, CompletedAt: base},
	}
	for i := range attempts {
		if err := repo.Create(ctx, &attempts[i]); err != nil {
			t.Fatalf("create attempt %d: %v", i, err)
		}
	}

	totals, err := repo.TotalsByUser(ctx, 7)
	if err != nil {
		t.Fatalf("TotalsByUser: %v", err)
	}
	if totals.Attempts != 3 || totals.MaxScore != 6 || totals.AvgScore != 3 {
		t.Fatalf("totals = %+v", totals)
	}

	byLang, err := repo.TotalsByLanguage(ctx, 7)
	if err != nil {
		t.Fatalf("TotalsByLanguage: %v", err)
	}
	if len(byLang) != 2 || byLang[0].Language != "japanese" || byLang[1].Attempts != 2 {
		t.Fatalf("byLang = %+v", byLang)
	}

	recent, err := repo.RecentByUser(ctx, 7, 2)
	if err != nil {
		t.Fatalf("RecentByUser: %v", err)
	}
	if len(recent) != 2 || recent[0].Title != "Hiragana" || recent[1].Score != 1 {
		t.Fatalf("recent = %+v", recent)
	}

	empty, err := repo.TotalsByUser(ctx, 99)
	if err != nil {
		t.Fatalf("TotalsByUser empty: %v", err)
	}
	if empty.Attempts != 0 || empty.AvgScore != 0 {
		t.Fatalf("empty totals = %+v", empty)
	}
}
