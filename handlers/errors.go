package handlers

import (
	"net/http"

	bookingSvc "tutorlink/services/booking"
	profileSvc "tutorlink/services/profile"
	skillSvc "tutorlink/services/skill"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError maps service errors to HTTP responses. Unrecognized
// errors become opaque 500s so internals never leak to clients.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch err.(type) {
	case *bookingSvc.ValidationError, *profileSvc.ValidationError, *skillSvc.ValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case *profileSvc.AuthError:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case *bookingSvc.NotFoundError, *profileSvc.NotFoundError, *skillSvc.NotFoundError:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case *bookingSvc.TransitionError, *bookingSvc.ConflictError:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}
