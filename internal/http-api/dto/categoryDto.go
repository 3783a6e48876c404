package dto

import "bloghub/internal/http-api/models"

// CategoryResponse for returning category information
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// FromModelToCategoryResponse converts a Category model to its response DTO
func FromModelToCategoryResponse(c *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
	}
}
