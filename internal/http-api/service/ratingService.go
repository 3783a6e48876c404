package service

import (
	"context"
	"errors"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/models"
	"bloghub/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrInvalidVoteValue = errors.New("vote value must be +1 or -1")

type RatingService interface {
	Vote(articleSlug, ip string, value int, userID *string) (*dto.RatingResult, error)
	Sum(articleID int64) (int, error)
}

type ratingService struct {
	ratingRepo  repository.RatingRepository
	articleRepo ArticleGetter
}

func NewRatingService(ratingRepo repository.RatingRepository, articleRepo ArticleGetter) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		articleRepo: articleRepo,
	}
}

// Vote records, flips, or withdraws the voter's rating for an article.
// The slot is keyed by (article, ip): a repeat vote with the same value
// removes it, a repeat vote with the other value overwrites it. The returned
// aggregate is recomputed from the table after the mutation.
func (s *ratingService) Vote(articleSlug, ip string, value int, userID *string) (*dto.RatingResult, error) {
	if value != 1 && value != -1 {
		return nil, ErrInvalidVoteValue
	}

	ctx := context.Background()

	article, err := s.articleRepo.GetBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	existing, err := s.ratingRepo.GetByArticleAndIP(article.ID, ip)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing == nil {
		rating := &models.Rating{
			ArticleID: article.ID,
			IPAddress: ip,
			Value:     value,
			UserID:    userID,
		}
		err := s.ratingRepo.Create(rating)
		if err == nil {
			return s.result(dto.RatingStatusCreated, article.ID)
		}
		if !errors.Is(err, repository.ErrDuplicateRating) {
			return nil, err
		}
		// Lost the insert race: another request from the same voter already
		// created the slot. Re-read and continue down the toggle path.
		existing, err = s.ratingRepo.GetByArticleAndIP(article.ID, ip)
		if err != nil {
			return nil, err
		}
	}

	if existing.Value == value {
		// Same value twice = un-vote
		if err := s.ratingRepo.Delete(existing.ID); err != nil {
			return nil, err
		}
		return s.result(dto.RatingStatusDeleted, article.ID)
	}

	// Different value = overwrite, last writer wins
	existing.Value = value
	existing.UserID = userID
	if err := s.ratingRepo.Update(existing); err != nil {
		return nil, err
	}
	return s.result(dto.RatingStatusUpdated, article.ID)
}

// Sum returns the current aggregate score for an article.
func (s *ratingService) Sum(articleID int64) (int, error) {
	return s.ratingRepo.SumByArticle(articleID)
}

func (s *ratingService) result(status string, articleID int64) (*dto.RatingResult, error) {
	sum, err := s.ratingRepo.SumByArticle(articleID)
	if err != nil {
		return nil, err
	}
	return &dto.RatingResult{Status: status, RatingSum: sum}, nil
}
