package dto

import (
	"time"

	"bloghub/internal/http-api/models"
)

// CreateArticleDTO used for POST /api/articles
type CreateArticleDTO struct {
	Title           string   `json:"title" binding:"required,min=3,max=200"`
	FullDescription string   `json:"full_description" binding:"required"`
	CategoryID      int64    `json:"category_id" binding:"required"`
	Tags            []string `json:"tags,omitempty"`
}

// UpdateArticleDTO used for PUT /api/articles/:slug (partial updates allowed)
type UpdateArticleDTO struct {
	Title           *string  `json:"title,omitempty"`
	FullDescription *string  `json:"full_description,omitempty"`
	CategoryID      *int64   `json:"category_id,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// ArticleSummary is the list-view shape.
type ArticleSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	RatingSum int       `json:"rating_sum"`
	CreatedAt time.Time `json:"created_at"`
}

// ArticleDetailResponse is the detail-view shape: rendered body plus the
// supplements the article page needs (similar articles, views, thread).
type ArticleDetailResponse struct {
	ArticleSummary
	FullDescription string            `json:"full_description"`
	HTML            string            `json:"html"`
	Views           int64             `json:"views"`
	Similar         []ArticleSummary  `json:"similar_articles"`
	Comments        []CommentResponse `json:"comments"`
}

// FromModelToArticleSummary converts an Article model to its summary DTO
func FromModelToArticleSummary(a *models.Article, ratingSum int) *ArticleSummary {
	tags := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		tags = append(tags, t.Name)
	}
	return &ArticleSummary{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Author:    a.Author.Username,
		Category:  a.Category.Title,
		Tags:      tags,
		RatingSum: ratingSum,
		CreatedAt: a.CreatedAt,
	}
}

// PaginatedArticleResponse for returning paginated article lists
type PaginatedArticleResponse struct {
	Data       []ArticleSummary `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// NewPaginatedArticleResponse creates a paginated article response
func NewPaginatedArticleResponse(data []ArticleSummary, total, page, pageSize int) *PaginatedArticleResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedArticleResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
