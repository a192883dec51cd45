package powerupservice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
)

type Rules struct {
	FreezeDuration  time.Duration
	ShieldDuration  time.Duration
	SniperWindow    time.Duration
	SniperExtension time.Duration
	DiscountPercent int64
}

func DefaultRules() Rules {
	return Rules{
		FreezeDuration:  10 * time.Second,
		ShieldDuration:  15 * time.Second,
		SniperWindow:    60 * time.Second,
		SniperExtension: 30 * time.Second,
		DiscountPercent: 10,
	}
}

// ActionContext is the situation a power-up is activated in. BidAmount is set
// only when the power-up rides along with a bid.
type ActionContext struct {
	ActorID   int
	Auction   *domain.Auction
	Now       time.Time
	BidAmount *int64
}

func (ac ActionContext) inBid() bool {
	return ac.BidAmount != nil
}

type Resolver struct {
	rules Rules
}

func NewResolver(rules Rules) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve turns a power-up instance into the effect it would have in ac. It
// does not consume the instance.
func (r *Resolver) Resolve(p *domain.PowerUp, ac ActionContext) (domain.Effect, error) {
	switch {
	case p.OwnerID != ac.ActorID:
		return nil, domain.ErrPowerUpNotOwned
	case p.Inert():
		return nil, domain.ErrPowerUpExhausted
	case p.ExpiredAt(ac.Now):
		return nil, domain.ErrPowerUpExpired
	case ac.Auction == nil:
		return nil, domain.ErrAuctionNotFound
	case !ac.Auction.AcceptsBidsAt(ac.Now):
		return nil, &domain.AuctionNotActiveError{Status: ac.Auction.Status}
	}

	switch p.Type {
	case domain.PowerUpPriceFreeze:
		return domain.PriceFreeze{Until: ac.Now.Add(r.rules.FreezeDuration)}, nil
	case domain.PowerUpBidShield:
		if !ac.inBid() && !ac.Auction.IsLeader(ac.ActorID) {
			return nil, domain.ErrEffectNotApplicable
		}
		return domain.BidShield{Until: ac.Now.Add(r.rules.ShieldDuration)}, nil
	case domain.PowerUpSniperExtend:
		remaining := ac.Auction.EndTime.Sub(ac.Now)
		if remaining <= 0 || remaining > r.rules.SniperWindow {
			return nil, domain.ErrEffectNotApplicable
		}
		return domain.SniperExtend{
			Delta:      r.rules.SniperExtension,
			NewEndTime: ac.Auction.EndTime.Add(r.rules.SniperExtension),
		}, nil
	case domain.PowerUpDiscount:
		if !ac.inBid() {
			return nil, domain.ErrEffectNotApplicable
		}
		return domain.Discount{
			Percent:       r.rules.DiscountPercent,
			ChargedAmount: discounted(*ac.BidAmount, r.rules.DiscountPercent),
		}, nil
	}
	return nil, domain.ErrInvalidPowerUp
}

// discounted rounds half up to whole currency units.
func discounted(amount, percent int64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(100 - percent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
