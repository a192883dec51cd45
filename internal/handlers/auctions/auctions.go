package auctions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/dto"
	"github.com/GlebRadaev/auctionhouse/internal/handlers/errmap"
	"github.com/GlebRadaev/auctionhouse/internal/service/auctionservice"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
	"github.com/GlebRadaev/auctionhouse/pkg/utils"
	"github.com/GlebRadaev/auctionhouse/pkg/validate"
)

//go:generate mockgen -source=auctions.go -destination=mock_auctions.go -package=auctions

type Service interface {
	PlaceBid(ctx context.Context, req auctionservice.PlaceBidRequest) (*auctionservice.BidResult, error)
	GetAuctionState(ctx context.Context, id uuid.UUID) (*auctionservice.AuctionState, error)
	ListBids(ctx context.Context, auctionID uuid.UUID) ([]domain.Bid, error)
}

type AuctionHandler struct {
	auctionService Service
}

func New(auctionService Service) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
	}
}

// PlaceBid godoc
//
//	@Summary		Place a bid
//	@Description	Place a bid against the auction version the caller last saw. When expected_version is omitted the current version is used.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Auction ID"
//	@Param			request	body		dto.PlaceBidRequestDTO	true	"Bid"
//	@Success		200		{object}	dto.PlaceBidResponseDTO	"Bid accepted"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Power-up not owned"
//	@Failure		404		{object}	utils.Response			"Auction or power-up not found"
//	@Failure		409		{object}	dto.StaleBidResponseDTO	"Auction changed since it was read"
//	@Failure		410		{object}	utils.Response			"Power-up expired"
//	@Failure		422		{object}	utils.Response			"Auction not active or bid too low"
//	@Failure		423		{object}	dto.BidBlockedResponseDTO	"Bid blocked by an active effect"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auctions/{id}/bids [post]
func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	auctionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid auction id")
		return
	}

	var req dto.PlaceBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	powerUps := make([]uuid.UUID, 0, len(req.PowerUps))
	for _, s := range req.PowerUps {
		powerUps = append(powerUps, uuid.MustParse(s))
	}

	var version int64
	if req.ExpectedVersion != nil {
		version = *req.ExpectedVersion
	} else {
		state, err := h.auctionService.GetAuctionState(r.Context(), auctionID)
		if err != nil {
			errmap.Respond(w, err)
			return
		}
		version = state.Version
	}

	result, err := h.auctionService.PlaceBid(r.Context(), auctionservice.PlaceBidRequest{
		AuctionID:       auctionID,
		BidderID:        userID,
		Amount:          req.Amount,
		ExpectedVersion: version,
		PowerUpIDs:      powerUps,
	})
	if err != nil {
		errmap.Respond(w, err)
		return
	}

	resp := dto.PlaceBidResponseDTO{
		BidID:   result.BidID.String(),
		Price:   result.Price,
		Charged: result.Charged,
		Version: result.Version,
		EndTime: result.EndTime,
	}
	for _, e := range result.Effects {
		resp.Effects = append(resp.Effects, dto.NewEffectResponseDTO(e))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetAuction godoc
//
//	@Summary		Get auction state
//	@Description	Current price, leader, deadline and version token of an auction.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Auction ID"
//	@Success		200	{object}	dto.AuctionResponseDTO	"Auction state"
//	@Failure		400	{object}	utils.Response			"Invalid auction id"
//	@Failure		404	{object}	utils.Response			"Auction not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/auctions/{id} [get]
func (h *AuctionHandler) GetAuction(w http.ResponseWriter, r *http.Request) {
	auctionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid auction id")
		return
	}

	state, err := h.auctionService.GetAuctionState(r.Context(), auctionID)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuctionResponseDTO{
		ID:                   state.ID.String(),
		Status:               string(state.Status),
		CurrentPrice:         state.CurrentPrice,
		CurrentHighestBidder: state.CurrentHighestBidder,
		StartTime:            state.StartTime,
		EndTime:              state.EndTime,
		Version:              state.Version,
	})
}

// ListBids godoc
//
//	@Summary		List accepted bids
//	@Description	Accepted bids of an auction in version order.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Auction ID"
//	@Success		200	{array}		dto.BidResponseDTO	"Bid history"
//	@Failure		400	{object}	utils.Response		"Invalid auction id"
//	@Failure		404	{object}	utils.Response		"Auction not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/auctions/{id}/bids [get]
func (h *AuctionHandler) ListBids(w http.ResponseWriter, r *http.Request) {
	auctionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid auction id")
		return
	}

	bids, err := h.auctionService.ListBids(r.Context(), auctionID)
	if err != nil {
		errmap.Respond(w, err)
		return
	}

	response := make([]dto.BidResponseDTO, len(bids))
	for i, b := range bids {
		response[i] = dto.BidResponseDTO{
			ID:         b.ID.String(),
			BidderID:   b.BidderID,
			Amount:     b.Amount,
			AcceptedAt: b.AcceptedAt,
			Version:    b.ResultingVersion,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
