package services

import (
	"context"
	"fmt"

	"github.com/mgrady4/civica/internal/logger"
	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/repository"
)

// BillParams are the raw, already-sanitized string parameters the
// bills endpoint recognizes.
type BillParams struct {
	BillType string
	Congress string
	Status   string
	Keyword  string
	Limit    string
}

// BillService defines the bills search operation.
type BillService interface {
	// Search coerces the raw parameters and returns matching bills,
	// newest introduced first. Empty slice, never nil, for no matches.
	Search(ctx context.Context, p BillParams) ([]models.Bill, error)
}

type billService struct {
	repo repository.BillRepository
	log  *logger.Logger
}

// NewBillService creates a new BillService instance.
func NewBillService(repo repository.BillRepository, log *logger.Logger) BillService {
	return &billService{repo: repo, log: log}
}

func (s *billService) Search(ctx context.Context, p BillParams) ([]models.Bill, error) {
	filter := repository.BillFilter{
		BillType: p.BillType,
		Status:   p.Status,
		Keyword:  p.Keyword,
		Congress: parseYear(p.Congress),
		Limit:    parseLimit(p.Limit, DefaultBillLimit),
	}

	rows, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.log.Error("Bill search failed", err, map[string]interface{}{
			"bill_type": p.BillType,
			"congress":  p.Congress,
			"status":    p.Status,
		})
		return nil, fmt.Errorf("failed to search bills: %w", err)
	}

	s.log.Debug("Bill search completed", map[string]interface{}{
		"count": len(rows),
		"limit": filter.Limit,
	})
	return rows, nil
}
