package services

import (
	"context"
	"fmt"

	"github.com/mgrady4/civica/internal/logger"
	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/repository"
)

// LegislatorParams are the raw, already-sanitized string parameters
// the legislators endpoint recognizes. Anything else in the query
// string is ignored upstream.
type LegislatorParams struct {
	State   string
	Party   string
	Chamber string
	Keyword string
	Limit   string
}

// LegislatorService defines the legislators search operation.
type LegislatorService interface {
	// Search coerces the raw parameters and returns matching
	// legislators. Returns an empty slice, never nil, for no matches.
	Search(ctx context.Context, p LegislatorParams) ([]models.Legislator, error)
}

type legislatorService struct {
	repo repository.LegislatorRepository
	log  *logger.Logger
}

// NewLegislatorService creates a new LegislatorService instance.
func NewLegislatorService(repo repository.LegislatorRepository, log *logger.Logger) LegislatorService {
	return &legislatorService{repo: repo, log: log}
}

func (s *legislatorService) Search(ctx context.Context, p LegislatorParams) ([]models.Legislator, error) {
	filter := repository.LegislatorFilter{
		State:   p.State,
		Party:   p.Party,
		Chamber: p.Chamber,
		Keyword: p.Keyword,
		Limit:   parseLimit(p.Limit, DefaultSearchLimit),
	}

	rows, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.log.Error("Legislator search failed", err, map[string]interface{}{
			"state":   p.State,
			"party":   p.Party,
			"chamber": p.Chamber,
		})
		return nil, fmt.Errorf("failed to search legislators: %w", err)
	}

	s.log.Debug("Legislator search completed", map[string]interface{}{
		"count": len(rows),
		"limit": filter.Limit,
	})
	return rows, nil
}
