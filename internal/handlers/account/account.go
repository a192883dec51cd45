package account

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/dto"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
	"github.com/GlebRadaev/auctionhouse/pkg/utils"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=account

const (
	defaultLedgerLimit = 50
	maxLedgerLimit     = 500
)

type Service interface {
	GetAccount(ctx context.Context, userID int) (*domain.Account, error)
	ListEntries(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error)
}

type AccountHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
	}
}

// GetAccount godoc
//
//	@Summary		Get account balances
//	@Description	Flushed currency and XP balances plus the deltas still waiting for the next flush.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO	"Balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/account [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	account, err := h.ledgerService.GetAccount(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		Currency:       account.CurrencyBalance,
		XP:             account.XPBalance,
		StagedCurrency: account.StagedCurrencyDelta,
		StagedXP:       account.StagedXPDelta,
	})
}

// ListLedger godoc
//
//	@Summary		Get ledger history
//	@Description	Settlement entries of the authenticated user, newest first.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int							false	"Max entries (default 50)"
//	@Success		200		{array}		dto.LedgerEntryResponseDTO	"Entries"
//	@Success		204		{object}	utils.Response				"No entries"
//	@Failure		400		{object}	utils.Response				"Invalid limit"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/ledger [get]
func (h *AccountHandler) ListLedger(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := defaultLedgerLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, maxLedgerLimit)
	}

	entries, err := h.ledgerService.ListEntries(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Ledger entries not found")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			AuctionID: e.AuctionID.String(),
			Currency:  e.CurrencyDelta,
			XP:        e.XPDelta,
			Reason:    e.Reason,
			CreatedAt: e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
