package errmap

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/dto"
	"github.com/GlebRadaev/auctionhouse/pkg/utils"
)

// Respond writes the status code and body for a service error. Unknown
// errors are logged and reported as 500.
func Respond(w http.ResponseWriter, err error) {
	var stale *domain.StaleBidError
	var blocked *domain.BidBlockedError
	switch {
	case errors.As(err, &stale):
		utils.RespondWithJSON(w, http.StatusConflict, dto.StaleBidResponseDTO{
			Error:   domain.ErrStaleBid.Error(),
			Price:   stale.CurrentPrice,
			Version: stale.Version,
		})
	case errors.As(err, &blocked):
		utils.RespondWithJSON(w, http.StatusLocked, dto.BidBlockedResponseDTO{
			Error:   blocked.Error(),
			Effect:  string(blocked.Effect),
			OwnerID: blocked.OwnerID,
			Until:   blocked.Until,
		})
	case errors.Is(err, domain.ErrAuctionNotFound),
		errors.Is(err, domain.ErrPowerUpNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrPowerUpNotOwned):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrPowerUpExpired):
		utils.RespondWithError(w, http.StatusGone, err.Error())
	case errors.Is(err, domain.ErrInvalidBid),
		errors.Is(err, domain.ErrDuplicatePowerUp),
		errors.Is(err, domain.ErrInvalidAuction),
		errors.Is(err, domain.ErrInvalidPowerUp):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAuctionNotActive),
		errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrPowerUpExhausted),
		errors.Is(err, domain.ErrEffectNotApplicable):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrAuctionNotEnded):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
