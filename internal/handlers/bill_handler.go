package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/mgrady4/civica/internal/errors"
	"github.com/mgrady4/civica/internal/services"
)

// BillHandler handles the bills search endpoint.
type BillHandler struct {
	service services.BillService
}

// NewBillHandler creates a new BillHandler instance.
func NewBillHandler(service services.BillService) *BillHandler {
	return &BillHandler{service: service}
}

// Search handles GET /bills.
func (h *BillHandler) Search(c *gin.Context) {
	params := services.BillParams{
		BillType: c.Query("bill_type"),
		Congress: c.Query("congress"),
		Status:   c.Query("status"),
		Keyword:  c.Query("keyword"),
		Limit:    c.Query("limit"),
	}

	rows, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		apierrors.DatabaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
