package handler

import (
	"errors"
	"net/http"

	"bloghub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// RegisterRoutes registers bookmark routes (all require auth)
func (h *BookmarkHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	bookmarks := router.Group("/bookmarks", requireAuth)
	{
		bookmarks.GET("", h.List)
		bookmarks.PUT("/:slug", h.Add)
		bookmarks.DELETE("/:slug", h.Remove)
	}
}

// List retrieves the caller's saved articles
// GET /api/bookmarks?page=1&page_size=10
func (h *BookmarkHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	page, pageSize := pagination(c)

	articles, err := h.bookmarkService.List(userID.(string), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// Add saves an article to the caller's bookmarks (idempotent)
// PUT /api/bookmarks/:slug
func (h *BookmarkHandler) Add(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.bookmarkService.Add(userID.(string), c.Param("slug")); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article bookmarked"})
}

// Remove drops an article from the caller's bookmarks
// DELETE /api/bookmarks/:slug
func (h *BookmarkHandler) Remove(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.bookmarkService.Remove(userID.(string), c.Param("slug")); err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound), errors.Is(err, service.ErrBookmarkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}
