package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgrady4/civica/internal/services"
)

// SummaryHandler handles the aggregate summary endpoint.
type SummaryHandler struct {
	service services.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler instance.
func NewSummaryHandler(service services.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// Summary handles GET /summary. The response always succeeds; keys for
// failed sub-aggregates are omitted rather than failing the whole
// response.
func (h *SummaryHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Summarize(c.Request.Context()))
}
