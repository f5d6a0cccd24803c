package model

import (
	"time"
)

type Quiz struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Language    string     `json:"language" gorm:"not null;index"` // "korean", "japanese"
	IsPremium   bool       `json:"is_premium" gorm:"not null;default:false"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE;"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Quiz) TableName() string { return "quizzes" }
