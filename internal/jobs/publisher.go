package jobs

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/service/ledgerservice"
)

//go:generate mockgen -source=publisher.go -destination=mock_publisher.go -package=jobs

type Flusher interface {
	Flush(ctx context.Context) (*ledgerservice.FlushReport, error)
}

// Publisher periodically applies staged ledger deltas to balances.
type Publisher struct {
	flusher  Flusher
	interval time.Duration
}

func NewPublisher(flusher Flusher, interval time.Duration) *Publisher {
	return &Publisher{flusher: flusher, interval: interval}
}

func (p *Publisher) Start(ctx context.Context) {
	zap.L().Info("staged ledger publisher started", zap.Duration("interval", p.interval))
	go p.run(ctx)
}

func (p *Publisher) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("staged ledger publisher stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Publisher) tick(ctx context.Context) {
	_, err := p.flusher.Flush(ctx)
	var partial *domain.FlushPartialFailureError
	switch {
	case err == nil:
	case errors.As(err, &partial):
		zap.L().Warn("flush left accounts staged", zap.Int("failed", len(partial.Failures)))
	default:
		zap.L().Error("flush failed", zap.Error(err))
	}
}
