package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/models"
	"bloghub/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrNotOwner         = errors.New("you don't have permission to modify this article")
)

// similarLimit caps the similar-articles block on the detail page.
const similarLimit = 6

type ArticleService interface {
	List(page, pageSize int) (*dto.PaginatedArticleResponse, error)
	GetBySlug(slug string) (*dto.ArticleDetailResponse, error)
	Create(authorID string, in dto.CreateArticleDTO) (*dto.ArticleSummary, error)
	Update(authorID, slug string, in dto.UpdateArticleDTO) (*dto.ArticleSummary, error)
	Delete(authorID, slug string) error
	ListByCategory(categorySlug string, page, pageSize int) (*dto.PaginatedArticleResponse, error)
	ListByTag(tagSlug string, page, pageSize int) (*dto.PaginatedArticleResponse, error)
	Search(query string, page, pageSize int) (*dto.PaginatedArticleResponse, error)
	Similar(articleID int64) ([]dto.ArticleSummary, error)
}

type articleService struct {
	articleRepo  *repository.ArticleRepo
	categoryRepo *repository.CategoryRepo
	tagRepo      *repository.TagRepo
	commentRepo  repository.CommentRepository
	ratingRepo   repository.RatingRepository
}

func NewArticleService(
	articleRepo *repository.ArticleRepo,
	categoryRepo *repository.CategoryRepo,
	tagRepo *repository.TagRepo,
	commentRepo repository.CommentRepository,
	ratingRepo repository.RatingRepository,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		commentRepo:  commentRepo,
		ratingRepo:   ratingRepo,
	}
}

// List retrieves articles with pagination, newest first
func (s *articleService) List(page, pageSize int) (*dto.PaginatedArticleResponse, error) {
	ctx := context.Background()

	articles, total, err := s.articleRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	return s.paginated(articles, int(total), page, pageSize)
}

// GetBySlug retrieves the article detail: rendered body, tags, category,
// aggregate rating, the similar-articles block and the comment thread.
// The view count is attached by the handler, which owns the counter.
func (s *articleService) GetBySlug(slug string) (*dto.ArticleDetailResponse, error) {
	ctx := context.Background()

	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	sum, err := s.ratingRepo.SumByArticle(article.ID)
	if err != nil {
		return nil, err
	}

	similar, err := s.Similar(article.ID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByArticle(article.ID)
	if err != nil {
		return nil, err
	}
	commentResponses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentResponses = append(commentResponses, *dto.FromModelToCommentResponse(&comment))
	}

	return &dto.ArticleDetailResponse{
		ArticleSummary:  *dto.FromModelToArticleSummary(article, sum),
		FullDescription: article.FullDescription,
		HTML:            renderMarkdown(article.FullDescription),
		Similar:         similar,
		Comments:        commentResponses,
	}, nil
}

// Create persists a new article for the authenticated author. The slug is
// derived from the title and deduplicated with a numeric suffix; tags are
// resolved by name, created when missing.
func (s *articleService) Create(authorID string, in dto.CreateArticleDTO) (*dto.ArticleSummary, error) {
	ctx := context.Background()

	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, in.Title)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, in.Tags)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:           strings.TrimSpace(in.Title),
		Slug:            slug,
		FullDescription: in.FullDescription,
		AuthorID:        authorID,
		CategoryID:      in.CategoryID,
		Tags:            tags,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	// Reload with associations
	article, err = s.articleRepo.GetByID(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToArticleSummary(article, 0), nil
}

// Update applies a partial update. Only the article's author may update it;
// the slug stays stable so existing links keep working.
func (s *articleService) Update(authorID, slug string, in dto.UpdateArticleDTO) (*dto.ArticleSummary, error) {
	ctx := context.Background()

	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if article.AuthorID != authorID {
		return nil, ErrNotOwner
	}

	if in.Title != nil {
		article.Title = strings.TrimSpace(*in.Title)
	}
	if in.FullDescription != nil {
		article.FullDescription = *in.FullDescription
	}
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		article.CategoryID = *in.CategoryID
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	if in.Tags != nil {
		tags, err := s.resolveTags(ctx, in.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.ReplaceTags(ctx, article, tags); err != nil {
			return nil, err
		}
	}

	article, err = s.articleRepo.GetByID(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	sum, err := s.ratingRepo.SumByArticle(article.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToArticleSummary(article, sum), nil
}

// Delete removes an article. Author-only, like Update.
func (s *articleService) Delete(authorID, slug string) error {
	ctx := context.Background()

	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	if article.AuthorID != authorID {
		return ErrNotOwner
	}

	return s.articleRepo.Delete(ctx, article.ID)
}

// ListByCategory retrieves articles in the category named by slug
func (s *articleService) ListByCategory(categorySlug string, page, pageSize int) (*dto.PaginatedArticleResponse, error) {
	ctx := context.Background()

	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	articles, total, err := s.articleRepo.GetByCategory(ctx, category.ID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return s.paginated(articles, int(total), page, pageSize)
}

// ListByTag retrieves articles carrying the tag named by slug
func (s *articleService) ListByTag(tagSlug string, page, pageSize int) (*dto.PaginatedArticleResponse, error) {
	ctx := context.Background()

	tag, err := s.tagRepo.GetBySlug(ctx, tagSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	articles, total, err := s.articleRepo.GetByTag(ctx, tag.ID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return s.paginated(articles, int(total), page, pageSize)
}

// Search runs weighted full-text search over titles and bodies.
func (s *articleService) Search(query string, page, pageSize int) (*dto.PaginatedArticleResponse, error) {
	ctx := context.Background()

	articles, total, err := s.articleRepo.Search(ctx, query, page, pageSize)
	if err != nil {
		return nil, err
	}

	return s.paginated(articles, int(total), page, pageSize)
}

// Similar picks the similar-articles block for the detail page: candidates
// share at least one tag and arrive ranked by shared-tag count, then the whole
// list is shuffled before the cap is applied. The shuffle deliberately spans
// the full candidate set, not just tie groups, trading strict ordering for
// discovery variety.
func (s *articleService) Similar(articleID int64) ([]dto.ArticleSummary, error) {
	ctx := context.Background()

	candidates, err := s.articleRepo.SimilarByTags(ctx, articleID)
	if err != nil {
		return nil, err
	}

	candidates = pickSimilar(candidates)

	summaries := make([]dto.ArticleSummary, 0, len(candidates))
	for i := range candidates {
		sum, err := s.ratingRepo.SumByArticle(candidates[i].ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *dto.FromModelToArticleSummary(&candidates[i], sum))
	}

	return summaries, nil
}

// pickSimilar shuffles the ranked candidate list and applies the cap. The
// shuffle spans the whole list, not just rank ties.
func pickSimilar(candidates []models.Article) []models.Article {
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > similarLimit {
		candidates = candidates[:similarLimit]
	}
	return candidates
}

func (s *articleService) paginated(articles []models.Article, total, page, pageSize int) (*dto.PaginatedArticleResponse, error) {
	summaries := make([]dto.ArticleSummary, 0, len(articles))
	for i := range articles {
		sum, err := s.ratingRepo.SumByArticle(articles[i].ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *dto.FromModelToArticleSummary(&articles[i], sum))
	}
	return dto.NewPaginatedArticleResponse(summaries, total, page, pageSize), nil
}

// uniqueSlug derives a slug from the title and suffixes it when taken.
func (s *articleService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slugify(title)
	if base == "" {
		base = "article"
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.articleRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *articleService) resolveTags(ctx context.Context, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		tag, err := s.tagRepo.GetOrCreateByName(ctx, name, slugify(name))
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
