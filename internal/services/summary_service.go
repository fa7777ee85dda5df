package services

import (
	"context"
	"sync"

	"github.com/mgrady4/civica/internal/logger"
	"github.com/mgrady4/civica/internal/repository"
)

// SummaryFiscalYear is the fiscal year the spending total aggregates.
const SummaryFiscalYear = 2024

// Summary is the aggregate response. Pointer fields are nil when the
// corresponding sub-query failed; encoding/json drops those keys, so
// the client sees only the aggregates that succeeded.
type Summary struct {
	InOfficeLegislators *int     `json:"in_office_legislators,omitempty"`
	ActiveBills         *int     `json:"active_bills,omitempty"`
	FiscalYearSpending  *float64 `json:"fiscal_year_spending,omitempty"`
	FiscalYear          int      `json:"fiscal_year"`
}

// SummaryService composes the three aggregate queries.
type SummaryService interface {
	// Summarize runs the aggregates concurrently and returns whatever
	// succeeded. A failed sub-query is logged and its key omitted; the
	// call itself never fails and never blocks on a failed sibling.
	Summarize(ctx context.Context) Summary
}

type summaryService struct {
	legislators repository.LegislatorRepository
	bills       repository.BillRepository
	spending    repository.SpendingRepository
	log         *logger.Logger
}

// NewSummaryService creates a new SummaryService instance.
func NewSummaryService(
	legislators repository.LegislatorRepository,
	bills repository.BillRepository,
	spending repository.SpendingRepository,
	log *logger.Logger,
) SummaryService {
	return &summaryService{
		legislators: legislators,
		bills:       bills,
		spending:    spending,
		log:         log,
	}
}

func (s *summaryService) Summarize(ctx context.Context) Summary {
	summary := Summary{FiscalYear: SummaryFiscalYear}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		count, err := s.legislators.CountInOffice(ctx)
		if err != nil {
			s.log.Error("Summary legislator count failed", err, nil)
			return
		}
		summary.InOfficeLegislators = &count
	}()

	go func() {
		defer wg.Done()
		count, err := s.bills.CountActive(ctx)
		if err != nil {
			s.log.Error("Summary active bill count failed", err, nil)
			return
		}
		summary.ActiveBills = &count
	}()

	go func() {
		defer wg.Done()
		total, err := s.spending.SumByFiscalYear(ctx, SummaryFiscalYear)
		if err != nil {
			s.log.Error("Summary spending total failed", err, map[string]interface{}{
				"fiscal_year": SummaryFiscalYear,
			})
			return
		}
		summary.FiscalYearSpending = &total
	}()

	wg.Wait()
	return summary
}
