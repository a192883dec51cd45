package ledgerrepo

import (
	"context"
	"fmt"

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

func (r *Repository) Append(ctx context.Context, e *domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, user_id, auction_id, currency_delta, xp_delta, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, e.ID, e.UserID, e.AuctionID, e.CurrencyDelta, e.XPDelta, e.Reason, e.CreatedAt)
	if err != nil {
		zap.L().Error("failed to append ledger entry", zap.Int("user_id", e.UserID), zap.Error(err))
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// ListByUser returns the newest entries first.
func (r *Repository) ListByUser(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, user_id, auction_id, currency_delta, xp_delta, reason, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to list ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.AuctionID, &e.CurrencyDelta, &e.XPDelta, &e.Reason, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
