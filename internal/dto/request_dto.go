package dto

// SubmitAnswerRequest answers the question at QuestionIndex. A pointer keeps
// index 0 distinguishable from a missing field.
type SubmitAnswerRequest struct {
	QuestionIndex *int   `json:"question_index" binding:"required,min=0"`
	Label         string `json:"label" binding:"required,max=8"`
}
