package handlers

import (
	"net/http"

	"tutorlink/middleware"
	reviewSvc "tutorlink/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves post-lesson feedback endpoints.
type ReviewHandler struct {
	Service reviewSvc.ReviewService
}

func NewReviewHandler(svc reviewSvc.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// CreateReviewHandler records feedback for a completed lesson.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	logger := getLogger(c)

	var req reviewSvc.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	r, err := h.Service.CreateReview(middleware.ProfileID(c), req)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListReviewsHandler returns a profile's reviews with their average rating.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	logger := getLogger(c)

	summary, err := h.Service.ListForProfile(c.Param("id"))
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
