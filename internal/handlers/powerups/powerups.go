package powerups

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/dto"
	"github.com/GlebRadaev/auctionhouse/internal/handlers/errmap"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
	"github.com/GlebRadaev/auctionhouse/pkg/utils"
	"github.com/GlebRadaev/auctionhouse/pkg/validate"
)

//go:generate mockgen -source=powerups.go -destination=mock_powerups.go -package=powerups

type Service interface {
	Activate(ctx context.Context, powerUpID uuid.UUID, actorID int, auctionID uuid.UUID) (domain.Effect, error)
	ListOwned(ctx context.Context, ownerID int) ([]domain.PowerUp, error)
}

type PowerUpHandler struct {
	powerUpService Service
}

func New(powerUpService Service) *PowerUpHandler {
	return &PowerUpHandler{
		powerUpService: powerUpService,
	}
}

// Activate godoc
//
//	@Summary		Activate a power-up
//	@Description	Spend one use of a power-up against an auction outside of a bid.
//	@Tags			Power-ups
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Power-up ID"
//	@Param			request	body		dto.ActivatePowerUpRequestDTO	true	"Target auction"
//	@Success		200		{object}	dto.EffectResponseDTO			"Resolved effect"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		403		{object}	utils.Response					"Power-up not owned"
//	@Failure		404		{object}	utils.Response					"Power-up or auction not found"
//	@Failure		410		{object}	utils.Response					"Power-up expired"
//	@Failure		422		{object}	utils.Response					"Exhausted or not applicable"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/powerups/{id}/activate [post]
func (h *PowerUpHandler) Activate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	powerUpID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid power-up id")
		return
	}

	var req dto.ActivatePowerUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	effect, err := h.powerUpService.Activate(r.Context(), powerUpID, userID, uuid.MustParse(req.AuctionID))
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEffectResponseDTO(effect))
}

// ListOwned godoc
//
//	@Summary		List own power-ups
//	@Tags			Power-ups
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PowerUpResponseDTO	"Power-ups"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/powerups [get]
func (h *PowerUpHandler) ListOwned(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	powerUps, err := h.powerUpService.ListOwned(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PowerUpResponseDTO, len(powerUps))
	for i, p := range powerUps {
		response[i] = dto.PowerUpResponseDTO{
			ID:        p.ID.String(),
			Type:      string(p.Type),
			UsesLeft:  p.UsesLeft,
			ExpiresAt: p.ExpiresAt,
			IsUsed:    p.IsUsed,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
