package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fitsched/booking-platform/internal/service"
)

// ProviderTypeHandler serves /api/provider-types/{id}.
type ProviderTypeHandler struct {
	svc *service.ProviderTypeService
}

func NewProviderTypeHandler(svc *service.ProviderTypeService) *ProviderTypeHandler {
	return &ProviderTypeHandler{svc: svc}
}

func (h *ProviderTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "provider type not found")
		return
	}

	pt, err := h.svc.Get(r.Context(), tenant.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "provider type not found")
			return
		}
		writeErrorDetails(w, http.StatusInternalServerError, "failed to get provider type", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, pt)
}

func (h *ProviderTypeHandler) Patch(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "provider type not found")
		return
	}

	var patch service.ProviderTypePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	pt, err := h.svc.Update(r.Context(), tenant.ID, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, "provider type not found")
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeErrorDetails(w, http.StatusInternalServerError, "failed to update provider type", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, pt)
}

func (h *ProviderTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "provider type not found")
		return
	}

	if err := h.svc.Delete(r.Context(), tenant.ID, id); err != nil {
		var depErr *service.DependentsError
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, "provider type not found")
		case errors.As(err, &depErr):
			writeErrorDetails(w, http.StatusBadRequest, "provider type has assigned trainers", depErr.Error())
		default:
			writeErrorDetails(w, http.StatusInternalServerError, "failed to delete provider type", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Provider type deleted"})
}
