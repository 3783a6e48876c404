package dto

import (
	"time"

	"bloghub/internal/http-api/models"
)

// NotificationResponse for returning notification information
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	Message   string    `json:"message"`
	ArticleID int64     `json:"article_id"`
	CommentID int64     `json:"comment_id"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToNotificationResponse converts a Notification model to its response DTO
func FromModelToNotificationResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Actor:     n.Actor,
		Message:   n.Message,
		ArticleID: n.ArticleID,
		CommentID: n.CommentID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// PaginatedNotificationResponse for returning paginated notifications
type PaginatedNotificationResponse struct {
	Data       []NotificationResponse `json:"data"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	Total      int                    `json:"total"`
	TotalPages int                    `json:"total_pages"`
}

// NewPaginatedNotificationResponse creates a paginated notification response
func NewPaginatedNotificationResponse(data []NotificationResponse, total, page, pageSize int) *PaginatedNotificationResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedNotificationResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
