package poweruprepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
)

const columns = `id, owner_id, type, uses_left, expires_at, is_used, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.PowerUp, error) {
	var p domain.PowerUp
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Type, &p.UsesLeft, &p.ExpiresAt, &p.IsUsed, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.PowerUp) error {
	query := `
		INSERT INTO power_ups (id, owner_id, type, uses_left, expires_at, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, p.ID, p.OwnerID, p.Type, p.UsesLeft, p.ExpiresAt, p.IsUsed, p.CreatedAt)
	if err != nil {
		if pg.IsCheckViolation(err) {
			return domain.ErrInvalidPowerUp
		}
		zap.L().Error("failed to create power-up", zap.Error(err))
		return fmt.Errorf("create power-up: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.PowerUp, error) {
	query := `SELECT ` + columns + ` FROM power_ups WHERE id = $1`
	p, err := scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get power-up", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Consume spends one use of an owned, live instance. It returns nil, nil when
// the instance is not owned by ownerID, inert or expired at now.
func (r *Repository) Consume(ctx context.Context, id uuid.UUID, ownerID int, now time.Time) (*domain.PowerUp, error) {
	query := `
		UPDATE power_ups
		SET uses_left = uses_left - 1, is_used = (uses_left - 1 = 0)
		WHERE id = $1 AND owner_id = $2 AND uses_left > 0 AND NOT is_used
			AND (expires_at IS NULL OR expires_at > $3)
		RETURNING ` + columns
	p, err := scan(r.db.QueryRow(ctx, query, id, ownerID, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to consume power-up", zap.Error(err))
		return nil, fmt.Errorf("consume power-up: %w", err)
	}
	return p, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int) ([]domain.PowerUp, error) {
	query := `SELECT ` + columns + ` FROM power_ups WHERE owner_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("failed to list power-ups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var powerUps []domain.PowerUp
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			zap.L().Error("failed to scan power-up", zap.Error(err))
			return nil, err
		}
		powerUps = append(powerUps, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return powerUps, nil
}
