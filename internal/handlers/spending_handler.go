package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/mgrady4/civica/internal/errors"
	"github.com/mgrady4/civica/internal/services"
)

// SpendingHandler handles the spending awards search endpoint.
type SpendingHandler struct {
	service services.SpendingService
}

// NewSpendingHandler creates a new SpendingHandler instance.
func NewSpendingHandler(service services.SpendingService) *SpendingHandler {
	return &SpendingHandler{service: service}
}

// Search handles GET /spending.
func (h *SpendingHandler) Search(c *gin.Context) {
	params := services.SpendingParams{
		Agency:     c.Query("agency"),
		Recipient:  c.Query("recipient"),
		MinAmount:  c.Query("min_amount"),
		FiscalYear: c.Query("fiscal_year"),
		Keyword:    c.Query("keyword"),
		Limit:      c.Query("limit"),
	}

	rows, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		apierrors.DatabaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
