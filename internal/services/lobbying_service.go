package services

import (
	"context"
	"fmt"

	"github.com/mgrady4/civica/internal/logger"
	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/repository"
)

// LobbyingParams are the raw, already-sanitized string parameters the
// lobbying endpoint recognizes.
type LobbyingParams struct {
	Client    string
	Lobbyist  string
	Year      string
	MinAmount string
	Keyword   string
	Limit     string
}

// LobbyingService defines the lobbying filings search operation.
type LobbyingService interface {
	// Search coerces the raw parameters and returns matching filings,
	// largest amount first.
	Search(ctx context.Context, p LobbyingParams) ([]models.LobbyingFiling, error)
}

type lobbyingService struct {
	repo repository.LobbyingRepository
	log  *logger.Logger
}

// NewLobbyingService creates a new LobbyingService instance.
func NewLobbyingService(repo repository.LobbyingRepository, log *logger.Logger) LobbyingService {
	return &lobbyingService{repo: repo, log: log}
}

func (s *lobbyingService) Search(ctx context.Context, p LobbyingParams) ([]models.LobbyingFiling, error) {
	minAmount, hasMin := parseAmount(p.MinAmount)
	filter := repository.LobbyingFilter{
		Client:       p.Client,
		Lobbyist:     p.Lobbyist,
		Keyword:      p.Keyword,
		MinAmount:    minAmount,
		HasMinAmount: hasMin,
		Year:         parseYear(p.Year),
		Limit:        parseLimit(p.Limit, DefaultSearchLimit),
	}

	rows, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.log.Error("Lobbying search failed", err, map[string]interface{}{
			"client":   p.Client,
			"lobbyist": p.Lobbyist,
			"year":     p.Year,
		})
		return nil, fmt.Errorf("failed to search lobbying filings: %w", err)
	}

	s.log.Debug("Lobbying search completed", map[string]interface{}{
		"count": len(rows),
		"limit": filter.Limit,
	})
	return rows, nil
}
