package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/models"
	"bloghub/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrArticleNotFound   = errors.New("article not found")
	ErrCommentNotFound   = errors.New("parent comment not found")
	ErrParentMismatch    = errors.New("parent comment belongs to a different article")
	ErrEmptyContent      = errors.New("comment content must not be empty")
	ErrAnonymousIdentity = errors.New("name and email are required for anonymous comments")
)

// ArticleGetter is the slice of the article repository the comment, rating
// and bookmark services need.
type ArticleGetter interface {
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
}

// SubmitCommentInput carries a comment submission. Exactly one identity is
// used: UserID when the submitter is authenticated, otherwise Name and Email.
type SubmitCommentInput struct {
	ArticleSlug string
	ParentID    *int64
	Content     string
	UserID      *string
	Name        string
	Email       string
}

// SubmitCommentResult pairs the stored comment's payload with the redirect
// target for non-asynchronous submissions.
type SubmitCommentResult struct {
	Comment     *dto.CommentResponse
	RedirectURL string
}

type CommentService interface {
	Submit(in SubmitCommentInput) (*SubmitCommentResult, error)
	ListByArticle(articleSlug string) ([]dto.CommentResponse, error)
}

type commentService struct {
	commentRepo      repository.CommentRepository
	articleRepo      ArticleGetter
	notificationRepo repository.NotificationRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	articleRepo ArticleGetter,
	notificationRepo repository.NotificationRepository,
) CommentService {
	return &commentService{
		commentRepo:      commentRepo,
		articleRepo:      articleRepo,
		notificationRepo: notificationRepo,
	}
}

// Submit persists a comment as a thread root or as a reply. Comments are
// append-only; there is no update or delete path.
func (s *commentService) Submit(in SubmitCommentInput) (*SubmitCommentResult, error) {
	ctx := context.Background()

	article, err := s.articleRepo.GetBySlug(ctx, in.ArticleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	content := strings.TrimSpace(sanitizeText(in.Content))
	if content == "" {
		return nil, ErrEmptyContent
	}

	// A reply must cite a parent comment on the same article.
	var parent *models.Comment
	if in.ParentID != nil {
		parent, err = s.commentRepo.GetByID(*in.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCommentNotFound
			}
			return nil, err
		}
		if parent.ArticleID != article.ID {
			return nil, ErrParentMismatch
		}
	}

	comment := &models.Comment{
		ArticleID: article.ID,
		ParentID:  in.ParentID,
		Content:   content,
	}

	if in.UserID != nil {
		comment.AuthorID = in.UserID
	} else {
		name := strings.TrimSpace(in.Name)
		email := strings.TrimSpace(in.Email)
		if name == "" || email == "" {
			return nil, ErrAnonymousIdentity
		}
		comment.Name = name
		comment.Email = email
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Reload with author data
	comment, err = s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, article, comment, parent)

	return &SubmitCommentResult{
		Comment:     dto.FromModelToCommentResponse(comment),
		RedirectURL: article.AbsoluteURL(),
	}, nil
}

// ListByArticle returns the article's whole thread, oldest first.
func (s *commentService) ListByArticle(articleSlug string) ([]dto.CommentResponse, error) {
	ctx := context.Background()

	article, err := s.articleRepo.GetBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.GetByArticle(article.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comment))
	}

	return responses, nil
}

// notify tells the article author about new root comments and the parent
// comment's author about replies. Best-effort: a failed notification never
// fails the submission.
func (s *commentService) notify(ctx context.Context, article *models.Article, comment *models.Comment, parent *models.Comment) {
	actor := comment.Name
	if comment.Author != nil {
		actor = comment.Author.Username
	}

	commenterID := ""
	if comment.AuthorID != nil {
		commenterID = *comment.AuthorID
	}

	if parent != nil {
		if parent.AuthorID != nil && *parent.AuthorID != commenterID {
			_ = s.notificationRepo.Create(ctx, &models.Notification{
				UserID:    *parent.AuthorID,
				Type:      models.NotificationTypeReply,
				ArticleID: article.ID,
				CommentID: comment.ID,
				Actor:     actor,
				Message:   fmt.Sprintf("%s replied to your comment on %q", actor, article.Title),
			})
		}
		return
	}

	if article.AuthorID != commenterID {
		_ = s.notificationRepo.Create(ctx, &models.Notification{
			UserID:    article.AuthorID,
			Type:      models.NotificationTypeComment,
			ArticleID: article.ID,
			CommentID: comment.ID,
			Actor:     actor,
			Message:   fmt.Sprintf("%s commented on %q", actor, article.Title),
		})
	}
}
