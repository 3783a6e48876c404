package dto

// SubmitFeedbackDTO for the site contact form
type SubmitFeedbackDTO struct {
	Subject string `json:"subject" binding:"required,min=3,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Content string `json:"content" binding:"required,min=1,max=10000"`
}
