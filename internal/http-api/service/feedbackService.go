package service

import (
	"context"
	"strings"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/models"
	"bloghub/internal/http-api/repository"
)

type FeedbackService interface {
	Submit(in dto.SubmitFeedbackDTO, ip string, userID *string) error
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

// Submit stores a contact-form message. Authenticated submitters get their
// user attached alongside the email they typed.
func (s *feedbackService) Submit(in dto.SubmitFeedbackDTO, ip string, userID *string) error {
	feedback := &models.Feedback{
		Subject:   strings.TrimSpace(in.Subject),
		Email:     strings.TrimSpace(in.Email),
		Content:   sanitizeText(in.Content),
		IPAddress: ip,
		UserID:    userID,
	}

	return s.feedbackRepo.Create(context.Background(), feedback)
}
