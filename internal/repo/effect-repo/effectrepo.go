package effectrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, e *domain.AuctionEffect) error {
	query := `
		INSERT INTO auction_effects (id, auction_id, power_up_id, owner_id, type, activated_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, e.ID, e.AuctionID, e.PowerUpID, e.OwnerID, e.Type, e.ActivatedAt, e.ExpiresAt)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return domain.ErrAuctionNotFound
		}
		zap.L().Error("failed to create auction effect", zap.Error(err))
		return fmt.Errorf("create auction effect: %w", err)
	}
	return nil
}

// ListActive returns effects on the auction that have not expired at now.
func (r *Repository) ListActive(ctx context.Context, auctionID uuid.UUID, now time.Time) ([]domain.AuctionEffect, error) {
	query := `
		SELECT id, auction_id, power_up_id, owner_id, type, activated_at, expires_at
		FROM auction_effects
		WHERE auction_id = $1 AND expires_at > $2
		ORDER BY activated_at`
	rows, err := r.db.Query(ctx, query, auctionID, now)
	if err != nil {
		zap.L().Error("failed to list auction effects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var effects []domain.AuctionEffect
	for rows.Next() {
		var e domain.AuctionEffect
		if err := rows.Scan(&e.ID, &e.AuctionID, &e.PowerUpID, &e.OwnerID, &e.Type, &e.ActivatedAt, &e.ExpiresAt); err != nil {
			zap.L().Error("failed to scan auction effect", zap.Error(err))
			return nil, err
		}
		effects = append(effects, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return effects, nil
}
