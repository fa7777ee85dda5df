package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/mgrady4/civica/internal/errors"
	"github.com/mgrady4/civica/internal/services"
)

// LobbyingHandler handles the lobbying filings search endpoint.
type LobbyingHandler struct {
	service services.LobbyingService
}

// NewLobbyingHandler creates a new LobbyingHandler instance.
func NewLobbyingHandler(service services.LobbyingService) *LobbyingHandler {
	return &LobbyingHandler{service: service}
}

// Search handles GET /lobbying.
func (h *LobbyingHandler) Search(c *gin.Context) {
	params := services.LobbyingParams{
		Client:    c.Query("client"),
		Lobbyist:  c.Query("lobbyist"),
		Year:      c.Query("year"),
		MinAmount: c.Query("min_amount"),
		Keyword:   c.Query("keyword"),
		Limit:     c.Query("limit"),
	}

	rows, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		apierrors.DatabaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
