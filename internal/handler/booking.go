package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fitsched/booking-platform/internal/service"
)

// BookingHandler serves /api/bookings/{id}.
type BookingHandler struct {
	svc *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}

	b, err := h.svc.Get(r.Context(), tenant.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		writeErrorDetails(w, http.StatusInternalServerError, "failed to get booking", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) Patch(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}

	var patch service.BookingPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	b, err := h.svc.Update(r.Context(), tenant.ID, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, "booking not found")
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeErrorDetails(w, http.StatusInternalServerError, "failed to update booking", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}

	if err := h.svc.Cancel(r.Context(), tenant.ID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		writeErrorDetails(w, http.StatusInternalServerError, "failed to cancel booking", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled"})
}
