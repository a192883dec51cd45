package accountrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) Get(ctx context.Context, userID int) (*domain.Account, error) {
	query := `
		SELECT user_id, currency_balance, xp_balance, staged_currency_delta, staged_xp_delta, updated_at
		FROM accounts
		WHERE user_id = $1`
	var a domain.Account
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&a.UserID, &a.CurrencyBalance, &a.XPBalance, &a.StagedCurrencyDelta, &a.StagedXPDelta, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

// Stage adds both deltas to the staging buffer in one statement, creating the account if needed.
func (r *Repository) Stage(ctx context.Context, userID int, currencyDelta, xpDelta int64, now time.Time) error {
	query := `
		INSERT INTO accounts (user_id, staged_currency_delta, staged_xp_delta, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET staged_currency_delta = accounts.staged_currency_delta + EXCLUDED.staged_currency_delta,
			staged_xp_delta = accounts.staged_xp_delta + EXCLUDED.staged_xp_delta,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.db.Exec(ctx, query, userID, currencyDelta, xpDelta, now); err != nil {
		zap.L().Error("failed to stage account deltas", zap.Int("user_id", userID), zap.Error(err))
		return fmt.Errorf("stage deltas for user %d: %w", userID, err)
	}
	return nil
}

func (r *Repository) ListStaged(ctx context.Context, limit int) ([]int, error) {
	query := `
		SELECT user_id
		FROM accounts
		WHERE staged_currency_delta <> 0 OR staged_xp_delta <> 0
		ORDER BY updated_at
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to list staged accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan staged account", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Flush applies the staged deltas of one account to its live balances, clamped
// at zero, and resets them in the same statement. It returns nil, nil when
// nothing was staged.
func (r *Repository) Flush(ctx context.Context, userID int, now time.Time) (*domain.FlushedAccount, error) {
	query := `
		WITH prev AS (
			SELECT user_id, currency_balance, xp_balance, staged_currency_delta, staged_xp_delta
			FROM accounts
			WHERE user_id = $1 AND (staged_currency_delta <> 0 OR staged_xp_delta <> 0)
			FOR UPDATE
		)
		UPDATE accounts a
		SET currency_balance = GREATEST(0, a.currency_balance + a.staged_currency_delta),
			xp_balance = GREATEST(0, a.xp_balance + a.staged_xp_delta),
			staged_currency_delta = 0,
			staged_xp_delta = 0,
			updated_at = $2
		FROM prev
		WHERE a.user_id = prev.user_id
		RETURNING a.user_id, prev.currency_balance, prev.xp_balance, prev.staged_currency_delta, prev.staged_xp_delta,
			a.currency_balance, a.xp_balance`
	var f domain.FlushedAccount
	err := r.db.QueryRow(ctx, query, userID, now).Scan(
		&f.UserID, &f.PrevCurrency, &f.PrevXP, &f.StagedCurrency, &f.StagedXP, &f.CurrencyBalance, &f.XPBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to flush account", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("flush user %d: %w", userID, err)
	}
	return &f, nil
}
