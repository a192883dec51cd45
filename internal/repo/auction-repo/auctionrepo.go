package auctionrepo

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

const columns = `id, item_id, status, start_time, end_time, starting_price, current_price, charge_amount,
	current_highest_bidder, version, xp_reward, seller_id, created_at, updated_at, settled_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Auction, error) {
	var a domain.Auction
	err := row.Scan(
		&a.ID, &a.ItemID, &a.Status, &a.StartTime, &a.EndTime, &a.StartingPrice, &a.CurrentPrice, &a.ChargeAmount,
		&a.CurrentHighestBidder, &a.Version, &a.XPReward, &a.SellerID, &a.CreatedAt, &a.UpdatedAt, &a.SettledAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// scanOne maps pgx.ErrNoRows to nil, nil.
func scanOne(row pgx.Row, op string) (*domain.Auction, error) {
	a, err := scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to "+op, zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) Create(ctx context.Context, a *domain.Auction) (*domain.Auction, error) {
	query := `
		INSERT INTO auctions (id, item_id, status, start_time, end_time, starting_price, current_price, charge_amount,
			version, xp_reward, seller_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $6, 0, $7, $8, $9, $9)
		RETURNING ` + columns
	row := r.db.QueryRow(ctx, query, a.ID, a.ItemID, a.Status, a.StartTime, a.EndTime, a.StartingPrice, a.XPReward, a.SellerID, a.CreatedAt)
	created, err := scan(row)
	if err != nil {
		switch {
		case pg.IsForeignKeyViolation(err):
			return nil, domain.ErrItemNotFound
		case pg.IsCheckViolation(err):
			return nil, domain.ErrInvalidAuction
		}
		zap.L().Error("failed to create auction", zap.Error(err))
		return nil, fmt.Errorf("create auction: %w", err)
	}
	return created, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Auction, error) {
	query := `SELECT ` + columns + ` FROM auctions WHERE id = $1`
	return scanOne(r.db.QueryRow(ctx, query, id), "get auction")
}

// GetForUpdate locks the auction row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Auction, error) {
	query := `SELECT ` + columns + ` FROM auctions WHERE id = $1 FOR UPDATE`
	return scanOne(r.db.QueryRow(ctx, query, id), "lock auction")
}

// ApplyBid is the bid compare-and-set. It returns nil, nil when the version,
// status, deadline or price guard did not hold.
func (r *Repository) ApplyBid(ctx context.Context, id uuid.UUID, expectedVersion int64, bidderID int, amount, charge int64, now time.Time) (*domain.Auction, error) {
	query := `
		UPDATE auctions
		SET current_price = $1, charge_amount = $2, current_highest_bidder = $3, version = version + 1, updated_at = $4
		WHERE id = $5 AND version = $6 AND status = 'active' AND end_time > $4 AND current_price < $1
		RETURNING ` + columns
	return scanOne(r.db.QueryRow(ctx, query, amount, charge, bidderID, now, id, expectedVersion), "apply bid")
}

func (r *Repository) BumpVersion(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Auction, error) {
	query := `
		UPDATE auctions
		SET version = version + 1, updated_at = $1
		WHERE id = $2 AND status = 'active'
		RETURNING ` + columns
	return scanOne(r.db.QueryRow(ctx, query, now, id), "bump auction version")
}

// ExtendEnd moves end_time only if it still equals oldEnd and the auction is open at now.
func (r *Repository) ExtendEnd(ctx context.Context, id uuid.UUID, oldEnd, newEnd, now time.Time) (*domain.Auction, error) {
	query := `
		UPDATE auctions
		SET end_time = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND end_time = $4 AND status = 'active' AND end_time > $2
		RETURNING ` + columns
	return scanOne(r.db.QueryRow(ctx, query, newEnd, now, id, oldEnd), "extend auction")
}

func (r *Repository) transition(ctx context.Context, op, query string, args ...any) (bool, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to "+op, zap.Error(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Activate(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE auctions SET status = 'active', updated_at = $1
		WHERE id = $2 AND status = 'scheduled' AND start_time <= $1`
	return r.transition(ctx, "activate auction", query, now, id)
}

// End closes the auction only if the deadline stored in the row has passed.
func (r *Repository) End(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE auctions SET status = 'ended', updated_at = $1
		WHERE id = $2 AND status = 'active' AND end_time <= $1`
	return r.transition(ctx, "end auction", query, now, id)
}

func (r *Repository) MarkSettled(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE auctions SET status = 'settled', settled_at = $1, updated_at = $1
		WHERE id = $2 AND status = 'ended'`
	return r.transition(ctx, "settle auction", query, now, id)
}

func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE auctions SET status = 'cancelled', updated_at = $1
		WHERE id = $2 AND status IN ('scheduled', 'active')`
	return r.transition(ctx, "cancel auction", query, now, id)
}

// FindDue returns auctions the lifecycle sweep has to advance.
func (r *Repository) FindDue(ctx context.Context, now time.Time, limit int) ([]domain.Auction, error) {
	query := `
		SELECT ` + columns + `
		FROM auctions
		WHERE (status = 'scheduled' AND start_time <= $1)
			OR (status = 'active' AND end_time <= $1)
			OR status = 'ended'
		ORDER BY updated_at
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("failed to find due auctions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var auctions []domain.Auction
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			zap.L().Error("failed to scan auction", zap.Error(err))
			return nil, err
		}
		auctions = append(auctions, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return auctions, nil
}
