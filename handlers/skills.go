package handlers

import (
	"net/http"

	"tutorlink/middleware"
	skillSvc "tutorlink/services/skill"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SkillHandler serves the subject catalog and tutor offerings.
type SkillHandler struct {
	Service skillSvc.SkillService
}

func NewSkillHandler(svc skillSvc.SkillService) *SkillHandler {
	return &SkillHandler{Service: svc}
}

// ListCatalogHandler returns the global subject catalog.
func (h *SkillHandler) ListCatalogHandler(c *gin.Context) {
	logger := getLogger(c)

	skills, err := h.Service.ListCatalog()
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// ListOfferingsHandler returns the caller's own skill offerings.
func (h *SkillHandler) ListOfferingsHandler(c *gin.Context) {
	logger := getLogger(c)

	offerings, err := h.Service.ListOfferings(middleware.ProfileID(c))
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, offerings)
}

// AddOfferingHandler adds a subject to the caller's offerings.
func (h *SkillHandler) AddOfferingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req skillSvc.OfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid offering request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ts, err := h.Service.AddOffering(middleware.ProfileID(c), req)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, ts)
}

// RemoveOfferingHandler removes one of the caller's offerings.
func (h *SkillHandler) RemoveOfferingHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Service.RemoveOffering(middleware.ProfileID(c), c.Param("id")); err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "offering removed"})
}
