package model

// Question is a row of quiz_questions. Options C and D are optional.
type Question struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	QuizID        uint    `json:"quiz_id" gorm:"not null;index"`
	Question      string  `json:"question" gorm:"type:text;not null"`
	OptionA       string  `json:"option_a" gorm:"not null"`
	OptionB       string  `json:"option_b" gorm:"not null"`
	OptionC       *string `json:"option_c,omitempty"`
	OptionD       *string `json:"option_d,omitempty"`
	CorrectAnswer string  `json:"correct_answer" gorm:"size:1;not null"`
	Points        int     `json:"points" gorm:"not null;default:1"`
}

func (Question) TableName() string { return "quiz_questions" }
