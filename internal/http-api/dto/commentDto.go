package dto

import (
	"crypto/md5"
	"fmt"
	"strings"

	"bloghub/internal/http-api/models"
)

// commentTimeLayout matches the timestamp format the article page renders.
const commentTimeLayout = "2006-Jan-02 15:04:05"

// SubmitCommentDTO for submitting a comment. Name and Email are required for
// anonymous submitters only; the service enforces that.
type SubmitCommentDTO struct {
	Content  string `json:"content" form:"content" binding:"required,min=1,max=5000"`
	ParentID *int64 `json:"parent_id,omitempty" form:"parent"`
	Name     string `json:"name,omitempty" form:"name" binding:"max=100"`
	Email    string `json:"email,omitempty" form:"email" binding:"omitempty,email"`
}

// CommentResponse is the structured reply for asynchronous submissions and
// thread listings. GetAbsoluteURL points at the author's profile for
// authenticated comments and a mailto: link for anonymous ones.
type CommentResponse struct {
	IsChild        bool   `json:"is_child"`
	ID             int64  `json:"id"`
	Author         string `json:"author"`
	ParentID       *int64 `json:"parent_id"`
	TimeCreate     string `json:"time_create"`
	Avatar         string `json:"avatar"`
	Content        string `json:"content"`
	GetAbsoluteURL string `json:"get_absolute_url"`
}

// FromModelToCommentResponse converts a Comment model to its response DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	resp := &CommentResponse{
		IsChild:    comment.IsChild(),
		ID:         comment.ID,
		ParentID:   comment.ParentID,
		TimeCreate: comment.CreatedAt.Format(commentTimeLayout),
		Content:    comment.Content,
	}

	if comment.Author != nil {
		resp.Author = comment.Author.Username
		resp.Avatar = gravatarURL(comment.Author.Email)
		resp.GetAbsoluteURL = comment.Author.ProfileURL()
	} else {
		resp.Author = comment.Name
		resp.Avatar = gravatarURL(comment.Email)
		resp.GetAbsoluteURL = "mailto:" + comment.Email
	}

	return resp
}

// gravatarURL builds the avatar link from an email address.
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=80&d=identicon", hash)
}
