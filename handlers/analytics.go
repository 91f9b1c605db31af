package handlers

import (
	"net/http"

	"tutorlink/utils"

	"github.com/gin-gonic/gin"
)

// TrackEventHandler accepts a fire-and-forget analytics event from clients.
// It always answers 202: analytics must never disturb the caller's flow.
func TrackEventHandler(c *gin.Context) {
	var ev utils.AnalyticsEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	go utils.TrackEvent(ev)
	c.JSON(http.StatusAccepted, gin.H{"message": "accepted"})
}
