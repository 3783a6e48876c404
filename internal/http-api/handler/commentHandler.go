package handler

import (
	"errors"
	"net/http"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment routes. Submission accepts both
// authenticated and anonymous callers, so it sits behind the optional-auth
// middleware plus the write rate limit.
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup, optionalAuth, rateLimit gin.HandlerFunc) {
	comments := router.Group("/articles/:slug/comments")
	{
		comments.GET("", h.ListByArticle)
		comments.POST("", optionalAuth, rateLimit, h.Submit)
	}
}

// isAJAX reports whether the submission expects a structured reply instead
// of a full page navigation.
func isAJAX(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// Submit creates a comment, as a thread root or as a reply
// POST /api/articles/:slug/comments
func (h *CommentHandler) Submit(c *gin.Context) {
	var req dto.SubmitCommentDTO
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.SubmitCommentInput{
		ArticleSlug: c.Param("slug"),
		ParentID:    req.ParentID,
		Content:     req.Content,
		Name:        req.Name,
		Email:       req.Email,
	}

	// Authenticated submitters comment under their account; the anonymous
	// name/email fields are ignored for them.
	if userID, exists := c.Get("userID"); exists {
		id := userID.(string)
		in.UserID = &id
	}

	result, err := h.commentService.Submit(in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCommentNotFound),
			errors.Is(err, service.ErrParentMismatch),
			errors.Is(err, service.ErrEmptyContent),
			errors.Is(err, service.ErrAnonymousIdentity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if isAJAX(c) {
		c.JSON(http.StatusOK, result.Comment)
		return
	}

	// Full page submissions navigate back to the article.
	c.Redirect(http.StatusFound, result.RedirectURL)
}

// ListByArticle retrieves the article's comment thread
// GET /api/articles/:slug/comments
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	comments, err := h.commentService.ListByArticle(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}
