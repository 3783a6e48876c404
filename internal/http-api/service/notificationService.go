package service

import (
	"context"
	"errors"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService interface {
	List(userID string, page, pageSize int) (*dto.PaginatedNotificationResponse, error)
	MarkRead(userID string, notificationID int64) error
	MarkAllRead(userID string) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(userID string, page, pageSize int) (*dto.PaginatedNotificationResponse, error) {
	ctx := context.Background()

	notifications, total, err := s.notificationRepo.GetByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *dto.FromModelToNotificationResponse(&notifications[i]))
	}

	return dto.NewPaginatedNotificationResponse(responses, int(total), page, pageSize), nil
}

func (s *notificationService) MarkRead(userID string, notificationID int64) error {
	ctx := context.Background()

	err := s.notificationRepo.MarkAsRead(ctx, userID, notificationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

func (s *notificationService) MarkAllRead(userID string) error {
	return s.notificationRepo.MarkAllAsRead(context.Background(), userID)
}
