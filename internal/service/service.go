package service

import (
	"github.com/GlebRadaev/auctionhouse/internal/config"
	"github.com/GlebRadaev/auctionhouse/internal/repo"
	"github.com/GlebRadaev/auctionhouse/internal/service/auctionservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/ledgerservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/powerupservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/settlementservice"
)

type Services struct {
	AuctionService    *auctionservice.Service
	PowerUpService    *powerupservice.Service
	SettlementService *settlementservice.Service
	LedgerService     *ledgerservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	powerUpService := powerupservice.New(repo.TXManager, repo.PowerUps, repo.Auctions, repo.Effects, Rules(cfg))
	auctionService := auctionservice.New(repo.TXManager, repo.Auctions, repo.Items, repo.Bids, repo.Effects, powerUpService)
	settlementService := settlementservice.New(repo.TXManager, repo.Auctions, repo.Accounts, repo.Ledger)
	ledgerService := ledgerservice.New(repo.Accounts, repo.Ledger, ledgerservice.Config{
		BatchSize:   cfg.FlushBatch,
		Concurrency: cfg.Workers,
	})

	return &Services{
		AuctionService:    auctionService,
		PowerUpService:    powerUpService,
		SettlementService: settlementService,
		LedgerService:     ledgerService,
	}
}

// Rules maps the configured power-up tuning onto the resolver rules. Zero
// durations fall back to the defaults.
func Rules(cfg *config.Config) powerupservice.Rules {
	rules := powerupservice.DefaultRules()
	if cfg.FreezeDuration > 0 {
		rules.FreezeDuration = cfg.FreezeDuration
	}
	if cfg.ShieldDuration > 0 {
		rules.ShieldDuration = cfg.ShieldDuration
	}
	if cfg.SniperWindow > 0 {
		rules.SniperWindow = cfg.SniperWindow
	}
	if cfg.SniperExtension > 0 {
		rules.SniperExtension = cfg.SniperExtension
	}
	rules.DiscountPercent = cfg.DiscountPercent
	return rules
}
