package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/mgrady4/civica/internal/errors"
	"github.com/mgrady4/civica/internal/services"
)

// LegislatorHandler handles the legislators search endpoint.
type LegislatorHandler struct {
	service services.LegislatorService
}

// NewLegislatorHandler creates a new LegislatorHandler instance.
func NewLegislatorHandler(service services.LegislatorService) *LegislatorHandler {
	return &LegislatorHandler{service: service}
}

// Search handles GET /legislators. It reads only the parameters it
// recognizes; anything else in the query string is ignored.
func (h *LegislatorHandler) Search(c *gin.Context) {
	params := services.LegislatorParams{
		State:   c.Query("state"),
		Party:   c.Query("party"),
		Chamber: c.Query("chamber"),
		Keyword: c.Query("keyword"),
		Limit:   c.Query("limit"),
	}

	rows, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		apierrors.DatabaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
