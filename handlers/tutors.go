package handlers

import (
	"net/http"

	searchSvc "tutorlink/services/search"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves the public tutor directory.
type SearchHandler struct {
	Service searchSvc.SearchService
}

func NewSearchHandler(svc searchSvc.SearchService) *SearchHandler {
	return &SearchHandler{Service: svc}
}

// SearchTutorsHandler lists tutors matching the query filters. All filters
// are optional; an empty query returns the whole directory.
func (h *SearchHandler) SearchTutorsHandler(c *gin.Context) {
	logger := getLogger(c)

	filter := searchSvc.Filter{
		Term:         c.Query("q"),
		Subject:      c.Query("subject"),
		Location:     c.Query("location"),
		PriceBracket: c.Query("price"),
	}

	listings, err := h.Service.SearchTutors(filter)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}
