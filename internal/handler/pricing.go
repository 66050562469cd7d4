package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fitsched/booking-platform/internal/service"
)

// PricingHandler serves GET /api/clients/check-pricing.
type PricingHandler struct {
	svc *service.PricingService
}

func NewPricingHandler(svc *service.PricingService) *PricingHandler {
	return &PricingHandler{svc: svc}
}

func (h *PricingHandler) Check(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	// No session is a normal answer, not an error.
	email, ok := SessionEmail(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, service.PricingCheck{HasCustomPricing: false})
		return
	}

	providerID := r.URL.Query().Get("providerId")
	if providerID == "" {
		writeError(w, http.StatusBadRequest, "providerId query parameter is required")
		return
	}

	trainerID, err := uuid.Parse(providerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid providerId")
		return
	}

	check, err := h.svc.Check(r.Context(), tenant.ID, trainerID, email)
	if err != nil {
		writeErrorDetails(w, http.StatusInternalServerError, "failed to check pricing", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, check)
}
