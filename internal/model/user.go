package model

import (
	"time"
)

// User holds the chat user's premium entitlement and lifetime quiz counters.
// UserID is the chat platform's id, not generated here.
type User struct {
	UserID           int64      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	IsPremium        bool       `json:"is_premium" gorm:"not null;default:false"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
	QuizScoreTotal   int        `json:"quiz_score_total" gorm:"not null;default:0"`
	QuizAttempts     int        `json:"quiz_attempts" gorm:"not null;default:0"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// PremiumActiveAt reports whether the entitlement is in force at t.
func (u *User) PremiumActiveAt(t time.Time) bool {
	if !u.IsPremium {
		return false
	}
	return u.PremiumExpiresAt == nil || u.PremiumExpiresAt.After(t)
}
