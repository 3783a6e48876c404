package handler

import (
	"errors"
	"net/http"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers the vote route. Votes work for anonymous callers
// too (the slot is keyed by IP), so the auth here is optional.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, optionalAuth, rateLimit gin.HandlerFunc) {
	router.POST("/articles/:slug/ratings", optionalAuth, rateLimit, h.Vote)
}

// Vote casts, flips, or withdraws the caller's vote on an article
// POST /api/articles/:slug/ratings
func (h *RatingHandler) Vote(c *gin.Context) {
	var req dto.VoteDTO
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID *string
	if id, exists := c.Get("userID"); exists {
		s := id.(string)
		userID = &s
	}

	result, err := h.ratingService.Vote(c.Param("slug"), c.ClientIP(), req.Value, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidVoteValue):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
