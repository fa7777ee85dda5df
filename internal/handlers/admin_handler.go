package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/mgrady4/civica/internal/errors"
	"github.com/mgrady4/civica/internal/sanitize"
	"github.com/mgrady4/civica/internal/services"
)

// AdminHandler handles the operator-only reseed endpoint.
type AdminHandler struct {
	seeder services.SeedService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(seeder services.SeedService) *AdminHandler {
	return &AdminHandler{seeder: seeder}
}

// ReseedRequest is the reseed request body.
type ReseedRequest struct {
	Source string `json:"source" binding:"required"`
}

// ReseedResponse is the reseed success/failure summary.
type ReseedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Reseed handles POST /admin/reseed. Repeating a reseed is idempotent:
// rows are replaced by primary key, never duplicated.
func (h *AdminHandler) Reseed(c *gin.Context) {
	var req ReseedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Request body must include a source")
		return
	}

	source := strings.ToLower(sanitize.Field("source", req.Source))
	counts, err := h.seeder.Reseed(c.Request.Context(), source)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSource) {
			apierrors.BadRequest(c, fmt.Sprintf("Unknown source %q", source))
			return
		}
		apierrors.DatabaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReseedResponse{
		Success: true,
		Message: fmt.Sprintf("Reseeded %s", formatCounts(counts)),
	})
}

// formatCounts renders per-collection row counts in a stable order.
func formatCounts(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%d rows)", name, counts[name]))
	}
	return strings.Join(parts, ", ")
}
