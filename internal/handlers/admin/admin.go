package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/dto"
	"github.com/GlebRadaev/auctionhouse/internal/handlers/errmap"
	"github.com/GlebRadaev/auctionhouse/internal/service/auctionservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/ledgerservice"
	"github.com/GlebRadaev/auctionhouse/pkg/utils"
	"github.com/GlebRadaev/auctionhouse/pkg/validate"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type AuctionService interface {
	CreateItem(ctx context.Context, req auctionservice.CreateItemRequest) (*domain.AuctionItem, error)
	CreateAuction(ctx context.Context, req auctionservice.CreateAuctionRequest) (*domain.Auction, error)
	CancelAuction(ctx context.Context, id uuid.UUID) error
}

type PowerUpService interface {
	Grant(ctx context.Context, ownerID int, t domain.PowerUpType, uses int, expiresAt *time.Time) (*domain.PowerUp, error)
}

type LedgerService interface {
	Flush(ctx context.Context) (*ledgerservice.FlushReport, error)
}

type AdminHandler struct {
	auctionService AuctionService
	powerUpService PowerUpService
	ledgerService  LedgerService
}

func New(auctionService AuctionService, powerUpService PowerUpService, ledgerService LedgerService) *AdminHandler {
	return &AdminHandler{
		auctionService: auctionService,
		powerUpService: powerUpService,
		ledgerService:  ledgerService,
	}
}

// CreateItem godoc
//
//	@Summary	Create an auction item
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateItemRequestDTO	true	"Item"
//	@Success	201		{object}	dto.ItemResponseDTO			"Created item"
//	@Failure	400		{object}	utils.Response				"Invalid request"
//	@Failure	403		{object}	utils.Response				"Admin only"
//	@Failure	500		{object}	utils.Response				"Internal server error"
//	@Router		/api/admin/items [post]
func (h *AdminHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequestDTO
	if !decode(w, r, &req) {
		return
	}

	item, err := h.auctionService.CreateItem(r.Context(), auctionservice.CreateItemRequest{
		Name:          req.Name,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		XPReward:      req.XPReward,
		SellerID:      req.SellerID,
	})
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ItemResponseDTO{
		ID:            item.ID.String(),
		Name:          item.Name,
		Description:   item.Description,
		StartingPrice: item.StartingPrice,
		XPReward:      item.XPReward,
		SellerID:      item.SellerID,
	})
}

// CreateAuction godoc
//
//	@Summary		Schedule an auction
//	@Description	The auction activates at start_time. A zero starting_price takes the item's one.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAuctionRequestDTO	true	"Auction"
//	@Success		201		{object}	dto.AuctionResponseDTO		"Scheduled auction"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		403		{object}	utils.Response				"Admin only"
//	@Failure		404		{object}	utils.Response				"Item not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/auctions [post]
func (h *AdminHandler) CreateAuction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAuctionRequestDTO
	if !decode(w, r, &req) {
		return
	}

	a, err := h.auctionService.CreateAuction(r.Context(), auctionservice.CreateAuctionRequest{
		ItemID:        uuid.MustParse(req.ItemID),
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		StartingPrice: req.StartingPrice,
	})
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AuctionResponseDTO{
		ID:                   a.ID.String(),
		Status:               string(a.Status),
		CurrentPrice:         a.CurrentPrice,
		CurrentHighestBidder: a.CurrentHighestBidder,
		StartTime:            a.StartTime,
		EndTime:              a.EndTime,
		Version:              a.Version,
	})
}

// CancelAuction godoc
//
//	@Summary	Cancel a scheduled or active auction
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Auction ID"
//	@Success	204	"Cancelled"
//	@Failure	400	{object}	utils.Response	"Invalid auction id"
//	@Failure	404	{object}	utils.Response	"Auction not found"
//	@Failure	409	{object}	utils.Response	"Auction already finished"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/auctions/{id}/cancel [post]
func (h *AdminHandler) CancelAuction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid auction id")
		return
	}
	if err := h.auctionService.CancelAuction(r.Context(), id); err != nil {
		errmap.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GrantPowerUp godoc
//
//	@Summary	Grant a power-up to a user
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.GrantPowerUpRequestDTO	true	"Power-up"
//	@Success	201		{object}	dto.PowerUpResponseDTO		"Granted power-up"
//	@Failure	400		{object}	utils.Response				"Invalid request"
//	@Failure	403		{object}	utils.Response				"Admin only"
//	@Failure	500		{object}	utils.Response				"Internal server error"
//	@Router		/api/admin/powerups [post]
func (h *AdminHandler) GrantPowerUp(w http.ResponseWriter, r *http.Request) {
	var req dto.GrantPowerUpRequestDTO
	if !decode(w, r, &req) {
		return
	}

	p, err := h.powerUpService.Grant(r.Context(), req.OwnerID, domain.PowerUpType(req.Type), req.Uses, req.ExpiresAt)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PowerUpResponseDTO{
		ID:        p.ID.String(),
		Type:      string(p.Type),
		UsesLeft:  p.UsesLeft,
		ExpiresAt: p.ExpiresAt,
		IsUsed:    p.IsUsed,
	})
}

// Flush godoc
//
//	@Summary		Flush staged balances
//	@Description	Applies every account's staged deltas now instead of waiting for the next tick.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.FlushResponseDTO	"Flush report"
//	@Failure		207	{object}	dto.FlushResponseDTO	"Some accounts failed and stay staged"
//	@Failure		403	{object}	utils.Response			"Admin only"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/ledger/flush [post]
func (h *AdminHandler) Flush(w http.ResponseWriter, r *http.Request) {
	report, err := h.ledgerService.Flush(r.Context())

	var partial *domain.FlushPartialFailureError
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, flushResponse(report))
	case errors.As(err, &partial) && report != nil:
		zap.L().Warn("manual flush left accounts staged", zap.Ints("user_ids", report.Failed))
		utils.RespondWithJSON(w, http.StatusMultiStatus, flushResponse(report))
	default:
		zap.L().Error("manual flush failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func flushResponse(report *ledgerservice.FlushReport) dto.FlushResponseDTO {
	return dto.FlushResponseDTO{
		Accounts:        report.Accounts,
		CurrencyApplied: report.CurrencyApplied,
		XPApplied:       report.XPApplied,
		CurrencyClamped: report.CurrencyClamped,
		XPClamped:       report.XPClamped,
		Failed:          report.Failed,
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
