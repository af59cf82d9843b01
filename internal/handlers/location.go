package handlers

import (
	"errors"
	"net/http"

	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/services"
	"go.uber.org/zap"
)

// LocationHandler serves the geofence locations page: the table/map list,
// the create/edit dialog submissions, and deletion.
type LocationHandler struct {
	svc *services.LocationService
	log *zap.Logger
}

func NewLocationHandler(svc *services.LocationService, log *zap.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: log}
}

// List returns every location newest-first with its assigned employee ids.
// ?q= narrows by case-insensitive substring over name or address.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.log.Error("list locations", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_locations", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": locations})
}

func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	loc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrLocationNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "location_not_found", nil)
			return
		}
		h.log.Error("get location", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_location", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, loc)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.LocationInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	if v := in.Validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	loc, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.log.Error("create location", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_location", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, loc)
}

func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in services.LocationInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	if v := in.Validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	loc, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, services.ErrLocationNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "location_not_found", nil)
			return
		}
		h.log.Error("update location", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_location", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, loc)
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrLocationNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "location_not_found", nil)
			return
		}
		h.log.Error("delete location", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_location", nil)
		return
	}
	httpx.JSON(w, http.StatusNoContent, nil)
}
