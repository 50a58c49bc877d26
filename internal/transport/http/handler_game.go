package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appforge "sword-forge/internal/app/forge"
)

type GameHandlers struct {
	forgeSvc *appforge.Service
}

func NewGameHandlers(forgeSvc *appforge.Service) *GameHandlers {
	return &GameHandlers{forgeSvc: forgeSvc}
}

func (h *GameHandlers) Enhance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appforge.EnhanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		metricEnhanceTotal.Add(1)
		resp, err := h.forgeSvc.Enhance(r.Context(), req)
		if err != nil {
			metricEnhanceRejectedTotal.Add(1)
			writeForgeError(w, err)
			return
		}
		if resp.Success {
			metricEnhanceSuccessTotal.Add(1)
		} else {
			metricEnhanceFailureTotal.Add(1)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *GameHandlers) ChanceRoll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appforge.RollRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		metricChanceRollTotal.Add(1)
		resp, err := h.forgeSvc.Reroll(r.Context(), req)
		if err != nil {
			writeForgeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *GameHandlers) Sell() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appforge.SellRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		metricSellTotal.Add(1)
		resp, err := h.forgeSvc.Sell(r.Context(), req)
		if err != nil {
			writeForgeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *GameHandlers) Cooldowns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("player_id")
		resp, err := h.forgeSvc.Cooldowns(r.Context(), playerID)
		if err != nil {
			writeForgeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func writeForgeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appforge.ErrValidationFailed):
		WriteHTTPError(w, http.StatusBadRequest, "validation_failed")
	case errors.Is(err, appforge.ErrInsufficientFunds):
		WriteHTTPError(w, http.StatusBadRequest, "insufficient_funds")
	case errors.Is(err, appforge.ErrInsufficientFragments):
		WriteHTTPError(w, http.StatusBadRequest, "insufficient_fragments")
	case errors.Is(err, appforge.ErrInsufficientInventory):
		WriteHTTPError(w, http.StatusBadRequest, "insufficient_inventory")
	case errors.Is(err, appforge.ErrCooldownActive):
		WriteHTTPError(w, http.StatusBadRequest, "cooldown_active")
	case errors.Is(err, appforge.ErrMissingMaterial):
		WriteHTTPErrorDetail(w, http.StatusBadRequest, "missing_material", err.Error())
	case errors.Is(err, appforge.ErrNotFound):
		WriteHTTPError(w, http.StatusNotFound, "not_found")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
