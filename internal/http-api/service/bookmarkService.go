package service

import (
	"context"
	"errors"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")

type BookmarkService interface {
	Add(userID, articleSlug string) error
	Remove(userID, articleSlug string) error
	List(userID string, page, pageSize int) (*dto.PaginatedArticleResponse, error)
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	articleRepo  ArticleGetter
	ratingRepo   repository.RatingRepository
}

func NewBookmarkService(
	bookmarkRepo repository.BookmarkRepository,
	articleRepo ArticleGetter,
	ratingRepo repository.RatingRepository,
) BookmarkService {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		articleRepo:  articleRepo,
		ratingRepo:   ratingRepo,
	}
}

// Add saves an article for the user. Adding twice is a no-op.
func (s *bookmarkService) Add(userID, articleSlug string) error {
	ctx := context.Background()

	article, err := s.articleRepo.GetBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	exists, err := s.bookmarkRepo.Exists(ctx, userID, article.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.bookmarkRepo.Add(ctx, userID, article.ID)
}

func (s *bookmarkService) Remove(userID, articleSlug string) error {
	ctx := context.Background()

	article, err := s.articleRepo.GetBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	err = s.bookmarkRepo.Remove(ctx, userID, article.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookmarkNotFound
	}
	return err
}

func (s *bookmarkService) List(userID string, page, pageSize int) (*dto.PaginatedArticleResponse, error) {
	ctx := context.Background()

	bookmarks, total, err := s.bookmarkRepo.List(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ArticleSummary, 0, len(bookmarks))
	for i := range bookmarks {
		if bookmarks[i].Article == nil {
			continue
		}
		sum, err := s.ratingRepo.SumByArticle(bookmarks[i].ArticleID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *dto.FromModelToArticleSummary(bookmarks[i].Article, sum))
	}

	return dto.NewPaginatedArticleResponse(summaries, int(total), page, pageSize), nil
}
