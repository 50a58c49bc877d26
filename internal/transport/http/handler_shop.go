package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appshop "sword-forge/internal/app/shop"
)

type ShopHandlers struct {
	shopSvc *appshop.Service
}

func NewShopHandlers(shopSvc *appshop.Service) *ShopHandlers {
	return &ShopHandlers{shopSvc: shopSvc}
}

func (h *ShopHandlers) Purchase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appshop.PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		metricPurchaseTotal.Add(1)
		resp, err := h.shopSvc.Purchase(r.Context(), req)
		if err != nil {
			writeShopError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *ShopHandlers) FragmentRoll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appshop.FragmentRollRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.shopSvc.FragmentRoll(r.Context(), req)
		if err != nil {
			writeShopError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *ShopHandlers) Catalog() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"items": h.shopSvc.Listing()})
	}
}

func writeShopError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appshop.ErrValidationFailed):
		WriteHTTPError(w, http.StatusBadRequest, "validation_failed")
	case errors.Is(err, appshop.ErrUnknownItem):
		WriteHTTPError(w, http.StatusBadRequest, "unknown_item")
	case errors.Is(err, appshop.ErrInsufficientFunds):
		WriteHTTPError(w, http.StatusBadRequest, "insufficient_funds")
	case errors.Is(err, appshop.ErrItemLimit):
		WriteHTTPError(w, http.StatusBadRequest, "item_limit_reached")
	case errors.Is(err, appshop.ErrNotFound):
		WriteHTTPError(w, http.StatusNotFound, "not_found")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
