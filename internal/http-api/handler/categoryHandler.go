package handler

import (
	"errors"
	"net/http"

	"bloghub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	articleService  service.ArticleService
}

func NewCategoryHandler(categoryService service.CategoryService, articleService service.ArticleService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		articleService:  articleService,
	}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:slug/articles", h.ListArticles)
	}
}

// List retrieves all categories
// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ListArticles retrieves articles in a category
// GET /api/categories/:slug/articles?page=1&page_size=10
func (h *CategoryHandler) ListArticles(c *gin.Context) {
	page, pageSize := pagination(c)

	articles, err := h.articleService.ListByCategory(c.Param("slug"), page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, articles)
}
