package model

import (
	"time"
)

// QuizAttempt is the durable record of a finished quiz session.
type QuizAttempt struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         int64     `json:"user_id" gorm:"not null;index"`
	QuizID         uint      `json:"quiz_id" gorm:"not null;index"`
	Quiz           Quiz      `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	CompletedAt    time.Time `json:"completed_at" gorm:"autoCreateTime;index"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }
