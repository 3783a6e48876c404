package handler

import (
	"net/http"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup, optionalAuth, rateLimit gin.HandlerFunc) {
	router.POST("/feedback", optionalAuth, rateLimit, h.Submit)
}

// Submit accepts a contact-form message from any visitor
// POST /api/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.SubmitFeedbackDTO
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var userID *string
	if id, exists := c.Get("userID"); exists {
		s := id.(string)
		userID = &s
	}

	if err := h.feedbackService.Submit(req, c.ClientIP(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Feedback received"})
}
