package bidrepo

import (
	"context"
	"fmt"

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

// Append records an accepted bid. (auction_id, resulting_version) is unique,
// so a second bid for the same version fails and rolls the caller back.
func (r *Repository) Append(ctx context.Context, bid *domain.Bid) error {
	query := `
		INSERT INTO bids (id, auction_id, bidder_id, amount, charged_amount, accepted_at, resulting_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, bid.ID, bid.AuctionID, bid.BidderID, bid.Amount, bid.ChargedAmount, bid.AcceptedAt, bid.ResultingVersion)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return &domain.StaleBidError{CurrentPrice: bid.Amount, Version: bid.ResultingVersion}
		}
		zap.L().Error("failed to append bid", zap.Error(err))
		return fmt.Errorf("append bid: %w", err)
	}
	return nil
}

func (r *Repository) ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]domain.Bid, error) {
	query := `
		SELECT id, auction_id, bidder_id, amount, charged_amount, accepted_at, resulting_version
		FROM bids
		WHERE auction_id = $1
		ORDER BY resulting_version`
	rows, err := r.db.Query(ctx, query, auctionID)
	if err != nil {
		zap.L().Error("failed to list bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var b domain.Bid
		if err := rows.Scan(&b.ID, &b.AuctionID, &b.BidderID, &b.Amount, &b.ChargedAmount, &b.AcceptedAt, &b.ResultingVersion); err != nil {
			zap.L().Error("failed to scan bid", zap.Error(err))
			return nil, err
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bids, nil
}
