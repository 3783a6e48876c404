package repository

import (
	"context"
	"fmt"

	"bloghub/internal/http-api/models"

	"gorm.io/gorm"
)

// searchVector weights the title above the body, mirroring the site search
// behavior: matches in the title rank higher than matches in the text.
const searchVector = "setweight(to_tsvector('english', coalesce(title, '')), 'A') || " +
	"setweight(to_tsvector('english', coalesce(full_description, '')), 'B')"

// minSearchRank filters out barely-relevant matches.
const minSearchRank = 0.3

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

func (r *ArticleRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Article, int64, error) {
	var list []models.Article
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Article{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *ArticleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	var a models.Article
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var a models.Article
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepo) Create(ctx context.Context, a *models.Article) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

func (r *ArticleRepo) Update(ctx context.Context, a *models.Article) error {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// ReplaceTags rewrites the article's tag set.
func (r *ArticleRepo) ReplaceTags(ctx context.Context, a *models.Article, tags []models.Tag) error {
	if err := r.db.WithContext(ctx).Model(a).Association("Tags").Replace(tags); err != nil {
		return fmt.Errorf("replace article tags: %w", err)
	}
	return nil
}

func (r *ArticleRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Article{}, id).Error; err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// SlugExists reports whether any article already uses the given slug.
func (r *ArticleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ArticleRepo) GetByCategory(ctx context.Context, categoryID int64, page, pageSize int) ([]models.Article, int64, error) {
	var list []models.Article
	var total int64

	base := r.db.WithContext(ctx).Model(&models.Article{}).Where("category_id = ?", categoryID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *ArticleRepo) GetByTag(ctx context.Context, tagID int64, page, pageSize int) ([]models.Article, int64, error) {
	var list []models.Article
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Joins("JOIN article_tags at ON at.article_id = articles.id").
		Where("at.tag_id = ?", tagID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Joins("JOIN article_tags at ON at.article_id = articles.id").
		Where("at.tag_id = ?", tagID).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("articles.created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("get articles by tag: %w", err)
	}

	return list, total, nil
}

// SimilarByTags returns every other article sharing at least one tag with the
// given one, most shared tags first. The caller decides what to do with the
// ordering; no limit is applied here.
func (r *ArticleRepo) SimilarByTags(ctx context.Context, articleID int64) ([]models.Article, error) {
	var list []models.Article
	if err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Select("articles.*").
		Joins("JOIN article_tags at ON at.article_id = articles.id").
		Where("at.tag_id IN (SELECT tag_id FROM article_tags WHERE article_id = ?)", articleID).
		Where("articles.id <> ?", articleID).
		Group("articles.id").
		Order("COUNT(at.tag_id) DESC").
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("similar articles: %w", err)
	}
	return list, nil
}

// Search runs weighted Postgres full-text search over title and body and
// keeps results ranked at minSearchRank or better.
func (r *ArticleRepo) Search(ctx context.Context, query string, page, pageSize int) ([]models.Article, int64, error) {
	var list []models.Article
	var total int64

	rank := fmt.Sprintf("ts_rank(%s, plainto_tsquery('english', ?))", searchVector)

	if err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where(rank+" >= ?", query, minSearchRank).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count search results: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Select("articles.*, "+rank+" AS rank", query).
		Where(rank+" >= ?", query, minSearchRank).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("rank DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("search articles: %w", err)
	}

	return list, total, nil
}
