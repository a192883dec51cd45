package ledgerservice

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type AccountRepo interface {
	Get(ctx context.Context, userID int) (*domain.Account, error)
	ListStaged(ctx context.Context, limit int) ([]int, error)
	Flush(ctx context.Context, userID int, now time.Time) (*domain.FlushedAccount, error)
}

type LedgerRepo interface {
	ListByUser(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error)
}

type FlushReport struct {
	Accounts        int
	CurrencyApplied int64
	XPApplied       int64
	CurrencyClamped int64
	XPClamped       int64
	Failed          []int
}

type Config struct {
	BatchSize   int
	Concurrency int
}

type Service struct {
	accounts AccountRepo
	ledger   LedgerRepo
	cfg      Config
	clock    func() time.Time
}

func New(accounts AccountRepo, ledger LedgerRepo, cfg Config) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	return &Service{
		accounts: accounts,
		ledger:   ledger,
		cfg:      cfg,
		clock:    time.Now,
	}
}

// Flush applies staged deltas to balances, one account at a time. A failing
// account keeps its staged values for the next flush and does not stop the
// others; failures are reported together as a FlushPartialFailureError.
func (s *Service) Flush(ctx context.Context) (*FlushReport, error) {
	userIDs, err := s.accounts.ListStaged(ctx, s.cfg.BatchSize)
	if err != nil {
		zap.L().Error("failed to list staged accounts", zap.Error(err))
		return nil, err
	}

	var (
		mu       sync.Mutex
		report   = &FlushReport{}
		failures []domain.FlushFailure
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for _, userID := range userIDs {
		g.Go(func() error {
			flushed, err := s.accounts.Flush(gctx, userID, s.clock())
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				zap.L().Error("failed to flush account", zap.Int("user_id", userID), zap.Error(err))
				failures = append(failures, domain.FlushFailure{UserID: userID, Err: err})
				report.Failed = append(report.Failed, userID)
				return nil
			}
			if flushed == nil {
				return nil
			}
			report.Accounts++
			report.CurrencyApplied += flushed.CurrencyBalance - flushed.PrevCurrency
			report.XPApplied += flushed.XPBalance - flushed.PrevXP
			report.CurrencyClamped += flushed.CurrencyClamped()
			report.XPClamped += flushed.XPClamped()
			if flushed.CurrencyClamped() != 0 {
				zap.L().Info("staged debit clamped at zero",
					zap.Int("user_id", userID),
					zap.Int64("clamped", flushed.CurrencyClamped()))
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failures) > 0 {
		return report, &domain.FlushPartialFailureError{Failures: failures}
	}
	if report.Accounts > 0 {
		zap.L().Info("staged ledger flushed",
			zap.Int("accounts", report.Accounts),
			zap.Int64("currency", report.CurrencyApplied),
			zap.Int64("xp", report.XPApplied))
	}
	return report, nil
}

// GetAccount returns a zero account for users that never had a settlement.
func (s *Service) GetAccount(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := s.accounts.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return &domain.Account{UserID: userID}, nil
	}
	return account, nil
}

func (s *Service) ListEntries(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledger.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to list ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
