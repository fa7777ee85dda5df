package services

import (
	"context"
	"fmt"

	"github.com/mgrady4/civica/internal/logger"
	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/repository"
)

// SpendingParams are the raw, already-sanitized string parameters the
// spending endpoint recognizes.
type SpendingParams struct {
	Agency     string
	Recipient  string
	MinAmount  string
	FiscalYear string
	Keyword    string
	Limit      string
}

// SpendingService defines the spending awards search operation.
type SpendingService interface {
	// Search coerces the raw parameters and returns matching awards,
	// largest amount first. An unparsable min_amount drops that filter
	// rather than failing the request.
	Search(ctx context.Context, p SpendingParams) ([]models.SpendingAward, error)
}

type spendingService struct {
	repo repository.SpendingRepository
	log  *logger.Logger
}

// NewSpendingService creates a new SpendingService instance.
func NewSpendingService(repo repository.SpendingRepository, log *logger.Logger) SpendingService {
	return &spendingService{repo: repo, log: log}
}

func (s *spendingService) Search(ctx context.Context, p SpendingParams) ([]models.SpendingAward, error) {
	minAmount, hasMin := parseAmount(p.MinAmount)
	filter := repository.SpendingFilter{
		Agency:       p.Agency,
		Recipient:    p.Recipient,
		Keyword:      p.Keyword,
		MinAmount:    minAmount,
		HasMinAmount: hasMin,
		FiscalYear:   parseYear(p.FiscalYear),
		Limit:        parseLimit(p.Limit, DefaultSearchLimit),
	}

	rows, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.log.Error("Spending search failed", err, map[string]interface{}{
			"agency":      p.Agency,
			"recipient":   p.Recipient,
			"fiscal_year": p.FiscalYear,
		})
		return nil, fmt.Errorf("failed to search spending awards: %w", err)
	}

	s.log.Debug("Spending search completed", map[string]interface{}{
		"count": len(rows),
		"limit": filter.Limit,
	})
	return rows, nil
}
