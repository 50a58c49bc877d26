package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"sword-forge/internal/config"
	"sword-forge/internal/store"
)

type AdminHandlers struct {
	st  *store.Store
	cfg config.ServerConfig
}

func NewAdminHandlers(st *store.Store, cfg config.ServerConfig) *AdminHandlers {
	return &AdminHandlers{st: st, cfg: cfg}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.st.Ping(r.Context()); err != nil {
			WriteHTTPError(w, http.StatusServiceUnavailable, "store_unavailable")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

// Reset restores a player's balance to the configured reset amount and
// clears fragments, pending rolls, and inventory.
func (h *AdminHandlers) Reset() http.HandlerFunc {
	type request struct {
		PlayerID string `json:"player_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		if err := h.st.ResetProgress(r.Context(), req.PlayerID, h.cfg.ResetGold); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "gold": h.cfg.ResetGold})
	}
}

func (h *AdminHandlers) Grant() http.HandlerFunc {
	type request struct {
		PlayerID string `json:"player_id"`
		Amount   int64  `json:"amount"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" || req.Amount <= 0 {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		gold, err := h.st.GrantBonus(r.Context(), req.PlayerID, req.Amount, store.NewID())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "gold": gold})
	}
}

func (h *AdminHandlers) Ledger() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		entries, err := h.st.ListLedgerEntries(r.Context(), r.URL.Query().Get("player_id"), limit, offset)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"entries": entries})
	}
}
