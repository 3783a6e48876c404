package repository

import (
	"context"
	"fmt"

	"bloghub/internal/http-api/models"

	"gorm.io/gorm"
)

type BookmarkRepository interface {
	Add(ctx context.Context, userID string, articleID int64) error
	Remove(ctx context.Context, userID string, articleID int64) error
	List(ctx context.Context, userID string, page, pageSize int) ([]models.Bookmark, int64, error)
	Exists(ctx context.Context, userID string, articleID int64) (bool, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Add(ctx context.Context, userID string, articleID int64) error {
	bookmark := &models.Bookmark{
		UserID:    userID,
		ArticleID: articleID,
	}

	if err := r.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	return nil
}

func (r *bookmarkRepository) Remove(ctx context.Context, userID string, articleID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.Bookmark{})

	if result.Error != nil {
		return fmt.Errorf("remove bookmark: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *bookmarkRepository) List(ctx context.Context, userID string, page, pageSize int) ([]models.Bookmark, int64, error) {
	var bookmarks []models.Bookmark
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("Article").
		Preload("Article.Author").
		Preload("Article.Category").
		Preload("Article.Tags").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&bookmarks).Error; err != nil {
		return nil, 0, fmt.Errorf("list bookmarks: %w", err)
	}

	return bookmarks, total, nil
}

func (r *bookmarkRepository) Exists(ctx context.Context, userID string, articleID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
