package jobs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/service/settlementservice"
)

//go:generate mockgen -source=lifecycle.go -destination=mock_lifecycle.go -package=jobs

type AuctionRepo interface {
	FindDue(ctx context.Context, now time.Time, limit int) ([]domain.Auction, error)
	Activate(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	End(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

type Settler interface {
	Settle(ctx context.Context, auctionID uuid.UUID) (*settlementservice.SettlementResult, error)
}

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type SweepReport struct {
	Activated int
	Ended     int
	Settled   int
	Deferred  int
}

// LifecycleManager moves auctions through scheduled, active, ended and
// settled. Every step is a conditional write, so overlapping sweeps from
// several instances are safe; inFlight only avoids duplicate work locally.
type LifecycleManager struct {
	auctions   AuctionRepo
	settler    Settler
	workerPool WorkerPoolI
	interval   time.Duration
	batch      int
	inFlight   sync.Map
	clock      func() time.Time
}

func NewLifecycleManager(auctions AuctionRepo, settler Settler, workerPool WorkerPoolI, interval time.Duration, batch int) *LifecycleManager {
	return &LifecycleManager{
		auctions:   auctions,
		settler:    settler,
		workerPool: workerPool,
		interval:   interval,
		batch:      batch,
		clock:      time.Now,
	}
}

func (m *LifecycleManager) Start(ctx context.Context) {
	zap.L().Info("auction lifecycle sweep started", zap.Duration("interval", m.interval))
	go m.run(ctx)
}

func (m *LifecycleManager) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	defer m.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("auction lifecycle sweep stopped")
			return
		case <-ticker.C:
			if _, err := m.Sweep(ctx); err != nil && ctx.Err() == nil {
				zap.L().Error("lifecycle sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep advances every due auction by as many steps as it can take now.
func (m *LifecycleManager) Sweep(ctx context.Context) (SweepReport, error) {
	now := m.clock()
	due, err := m.auctions.FindDue(ctx, now, m.batch)
	if err != nil {
		return SweepReport{}, err
	}

	var wg sync.WaitGroup
	var activated, ended, settled, deferred atomic.Int32
	for _, a := range due {
		if _, loaded := m.inFlight.LoadOrStore(a.ID, struct{}{}); loaded {
			continue
		}
		wg.Add(1)
		err := m.workerPool.AddTask(ctx, func() error {
			defer wg.Done()
			defer m.inFlight.Delete(a.ID)

			step, err := m.advance(ctx, a, now)
			switch step {
			case stepActivated:
				activated.Add(1)
			case stepEnded:
				ended.Add(1)
			case stepSettled:
				ended.Add(1)
				settled.Add(1)
			case stepSettledOnly:
				settled.Add(1)
			}
			if err != nil {
				deferred.Add(1)
				zap.L().Warn("settlement deferred", zap.String("auction_id", a.ID.String()), zap.Error(err))
			}
			return nil
		})
		if err != nil {
			wg.Done()
			m.inFlight.Delete(a.ID)
			zap.L().Error("failed to schedule auction", zap.String("auction_id", a.ID.String()), zap.Error(err))
		}
	}
	wg.Wait()

	report := SweepReport{
		Activated: int(activated.Load()),
		Ended:     int(ended.Load()),
		Settled:   int(settled.Load()),
		Deferred:  int(deferred.Load()),
	}
	if report != (SweepReport{}) {
		zap.L().Info("lifecycle sweep",
			zap.Int("activated", report.Activated),
			zap.Int("ended", report.Ended),
			zap.Int("settled", report.Settled),
			zap.Int("deferred", report.Deferred))
	}
	return report, ctx.Err()
}

type step int

const (
	stepNone step = iota
	stepActivated
	stepEnded
	stepSettled
	stepSettledOnly
)

// advance returns the furthest step reached and a non-nil error only when
// settlement has to be retried.
func (m *LifecycleManager) advance(ctx context.Context, a domain.Auction, now time.Time) (step, error) {
	switch a.Status {
	case domain.StatusScheduled:
		ok, err := m.auctions.Activate(ctx, a.ID, now)
		if err != nil {
			zap.L().Error("failed to activate auction", zap.String("auction_id", a.ID.String()), zap.Error(err))
			return stepNone, nil
		}
		if !ok {
			return stepNone, nil
		}
		zap.L().Info("auction activated", zap.String("auction_id", a.ID.String()))
		return stepActivated, nil

	case domain.StatusActive:
		ok, err := m.auctions.End(ctx, a.ID, now)
		if err != nil {
			zap.L().Error("failed to end auction", zap.String("auction_id", a.ID.String()), zap.Error(err))
			return stepNone, nil
		}
		if !ok {
			zap.L().Info("auction still running, deadline moved", zap.String("auction_id", a.ID.String()))
			return stepNone, nil
		}
		zap.L().Info("auction ended", zap.String("auction_id", a.ID.String()))
		if ok, err := m.settle(ctx, a.ID); err != nil || !ok {
			return stepEnded, err
		}
		return stepSettled, nil

	case domain.StatusEnded:
		if ok, err := m.settle(ctx, a.ID); err != nil || !ok {
			return stepNone, err
		}
		return stepSettledOnly, nil
	}
	return stepNone, nil
}

func (m *LifecycleManager) settle(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := m.settler.Settle(ctx, id)
	if err != nil {
		return false, err
	}
	return !result.AlreadySettled, nil
}
