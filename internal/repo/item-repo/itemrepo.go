package itemrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, item *domain.AuctionItem) error {
	query := `
		INSERT INTO auction_items (id, name, description, starting_price, xp_reward, seller_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.StartingPrice, item.XPReward, item.SellerID, item.CreatedAt)
	if err != nil {
		if pg.IsCheckViolation(err) {
			return domain.ErrInvalidAuction
		}
		zap.L().Error("failed to create item", zap.Error(err))
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.AuctionItem, error) {
	query := `
		SELECT id, name, description, starting_price, xp_reward, seller_id, created_at
		FROM auction_items
		WHERE id = $1`
	var item domain.AuctionItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.StartingPrice, &item.XPReward, &item.SellerID, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}
