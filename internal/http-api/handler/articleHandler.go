package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bloghub/internal/cache"
	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService service.ArticleService
	viewCounter    *cache.ViewCounter
}

func NewArticleHandler(articleService service.ArticleService, viewCounter *cache.ViewCounter) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		viewCounter:    viewCounter,
	}
}

// RegisterRoutes registers article routes. Write routes go through the
// required-auth middleware.
func (h *ArticleHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	articles := router.Group("/articles")
	{
		articles.GET("", h.List)
		articles.GET("/search", h.Search)
		articles.GET("/:slug", h.GetBySlug)

		articles.POST("", requireAuth, h.Create)
		articles.PUT("/:slug", requireAuth, h.Update)
		articles.DELETE("/:slug", requireAuth, h.Delete)
	}
}

// List retrieves articles with pagination
// GET /api/articles?page=1&page_size=10
func (h *ArticleHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	articles, err := h.articleService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// GetBySlug retrieves the article detail page data and counts the view
// GET /api/articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	detail, err := h.articleService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// View counting is best-effort; a Redis hiccup never fails the page.
	ctx := c.Request.Context()
	_, _ = h.viewCounter.Hit(ctx, detail.ID, c.ClientIP())
	if views, err := h.viewCounter.Count(ctx, detail.ID); err == nil {
		detail.Views = views
	}

	c.JSON(http.StatusOK, detail)
}

// Create publishes a new article
// POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateArticleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Create(userID.(string), req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Update applies a partial update to the caller's own article
// PUT /api/articles/:slug
func (h *ArticleHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateArticleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Update(userID.(string), c.Param("slug"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound), errors.Is(err, service.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete removes the caller's own article
// DELETE /api/articles/:slug
func (h *ArticleHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.articleService.Delete(userID.(string), c.Param("slug")); err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

// Search runs full-text search over articles
// GET /api/articles/search?q=...&page=1&page_size=10
func (h *ArticleHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	page, pageSize := pagination(c)

	articles, err := h.articleService.Search(query, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// pagination pulls page/page_size query params with the usual clamping.
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
