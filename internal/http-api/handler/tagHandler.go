package handler

import (
	"errors"
	"net/http"

	"bloghub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	articleService service.ArticleService
}

func NewTagHandler(articleService service.ArticleService) *TagHandler {
	return &TagHandler{articleService: articleService}
}

// RegisterRoutes registers tag routes
func (h *TagHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tags/:slug/articles", h.ListArticles)
}

// ListArticles retrieves articles carrying a tag
// GET /api/tags/:slug/articles?page=1&page_size=10
func (h *TagHandler) ListArticles(c *gin.Context) {
	page, pageSize := pagination(c)

	articles, err := h.articleService.ListByTag(c.Param("slug"), page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, articles)
}
