package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mgrady4/civica/internal/logger"
	"github.com/mgrady4/civica/internal/repository"
	"github.com/mgrady4/civica/internal/seed"
)

// Seed source tokens accepted by the reseed operation.
const (
	SourceLegislators = "legislators"
	SourceBills       = "bills"
	SourceSpending    = "spending"
	SourceLobbying    = "lobbying"
	SourceAll         = "all"
)

// ErrUnknownSource is returned for a source token outside the fixed set.
var ErrUnknownSource = errors.New("unknown seed source")

// SeedService bulk-loads the static source records into the store. It
// backs both startup seeding and the operator reseed endpoint.
type SeedService interface {
	// Reseed replaces the rows of the named collection (or all of
	// them) from the embedded source data and returns per-collection
	// row counts. Replace is keyed on each collection's primary key,
	// so repeating a reseed is idempotent.
	Reseed(ctx context.Context, source string) (map[string]int, error)
}

type seedService struct {
	legislators repository.LegislatorRepository
	bills       repository.BillRepository
	spending    repository.SpendingRepository
	lobbying    repository.LobbyingRepository
	log         *logger.Logger

	// mu serializes reseed runs; the canonical store is single-writer,
	// and interleaving two loads of the same collection buys nothing.
	mu sync.Mutex
}

// NewSeedService creates a new SeedService instance.
func NewSeedService(
	legislators repository.LegislatorRepository,
	bills repository.BillRepository,
	spending repository.SpendingRepository,
	lobbying repository.LobbyingRepository,
	log *logger.Logger,
) SeedService {
	return &seedService{
		legislators: legislators,
		bills:       bills,
		spending:    spending,
		lobbying:    lobbying,
		log:         log,
	}
}

func (s *seedService) Reseed(ctx context.Context, source string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	var countsMu sync.Mutex

	record := func(name string, n int) {
		countsMu.Lock()
		counts[name] = n
		countsMu.Unlock()
	}

	switch source {
	case SourceLegislators:
		n, err := s.loadLegislators(ctx)
		if err != nil {
			return nil, err
		}
		record(SourceLegislators, n)

	case SourceBills:
		n, err := s.loadBills(ctx)
		if err != nil {
			return nil, err
		}
		record(SourceBills, n)

	case SourceSpending:
		n, err := s.loadSpending(ctx)
		if err != nil {
			return nil, err
		}
		record(SourceSpending, n)

	case SourceLobbying:
		n, err := s.loadLobbying(ctx)
		if err != nil {
			return nil, err
		}
		record(SourceLobbying, n)

	case SourceAll:
		// Each loader touches only its own collection, so the four may
		// interleave freely.
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			n, err := s.loadLegislators(gctx)
			if err == nil {
				record(SourceLegislators, n)
			}
			return err
		})
		g.Go(func() error {
			n, err := s.loadBills(gctx)
			if err == nil {
				record(SourceBills, n)
			}
			return err
		})
		g.Go(func() error {
			n, err := s.loadSpending(gctx)
			if err == nil {
				record(SourceSpending, n)
			}
			return err
		})
		g.Go(func() error {
			n, err := s.loadLobbying(gctx)
			if err == nil {
				record(SourceLobbying, n)
			}
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	s.log.Info("Reseed completed", map[string]interface{}{
		"source": source,
		"counts": counts,
	})
	return counts, nil
}

func (s *seedService) loadLegislators(ctx context.Context) (int, error) {
	rows, err := seed.Legislators()
	if err != nil {
		return 0, err
	}
	return s.legislators.ReplaceAll(ctx, rows)
}

func (s *seedService) loadBills(ctx context.Context) (int, error) {
	rows, err := seed.Bills()
	if err != nil {
		return 0, err
	}
	return s.bills.ReplaceAll(ctx, rows)
}

func (s *seedService) loadSpending(ctx context.Context) (int, error) {
	rows, err := seed.Spending()
	if err != nil {
		return 0, err
	}
	return s.spending.ReplaceAll(ctx, rows)
}

func (s *seedService) loadLobbying(ctx context.Context) (int, error) {
	rows, err := seed.Lobbying()
	if err != nil {
		return 0, err
	}
	return s.lobbying.ReplaceAll(ctx, rows)
}
