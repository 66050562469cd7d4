package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fitsched/booking-platform/internal/model"
	"github.com/fitsched/booking-platform/internal/service"
)

// TrainerHandler serves /api/trainers and /api/trainers/{id}.
type TrainerHandler struct {
	svc *service.TrainerService
}

func NewTrainerHandler(svc *service.TrainerService) *TrainerHandler {
	return &TrainerHandler{svc: svc}
}

func (h *TrainerHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	trainers, err := h.svc.List(r.Context(), tenant.ID)
	if err != nil {
		writeErrorDetails(w, http.StatusInternalServerError, "failed to list trainers", err.Error())
		return
	}

	if trainers == nil {
		trainers = []model.Trainer{}
	}
	writeJSON(w, http.StatusOK, trainers)
}

func (h *TrainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	var in service.CreateTrainerInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	trainer, err := h.svc.Create(r.Context(), tenant.ID, in)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErrorDetails(w, http.StatusInternalServerError, "failed to create trainer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, trainer)
}

func (h *TrainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "trainer not found")
		return
	}

	trainer, err := h.svc.Get(r.Context(), tenant.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trainer not found")
			return
		}
		writeErrorDetails(w, http.StatusInternalServerError, "failed to get trainer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, trainer)
}

func (h *TrainerHandler) Patch(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "trainer not found")
		return
	}

	var patch service.TrainerPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	trainer, err := h.svc.Update(r.Context(), tenant.ID, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, "trainer not found")
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeErrorDetails(w, http.StatusInternalServerError, "failed to update trainer", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, trainer)
}

func (h *TrainerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, _ := TenantFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "trainer not found")
		return
	}

	if err := h.svc.Delete(r.Context(), tenant.ID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trainer not found")
			return
		}
		writeErrorDetails(w, http.StatusInternalServerError, "failed to delete trainer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Trainer deleted"})
}
