package handlers

import (
	"net/http"

	"motofleet/backend/services/fleet-sandbox/internal/service"
)

const iotNotFound = "IoT não encontrado"

// IotHandlers serves /iots.
type IotHandlers struct {
	fleet *service.FleetService
}

// NewIotHandlers builds IotHandlers.
func NewIotHandlers(fleet *service.FleetService) *IotHandlers {
	return &IotHandlers{fleet: fleet}
}

// List handles GET /iots.
func (h *IotHandlers) List(w http.ResponseWriter, r *http.Request) {
	iots, err := h.fleet.ListIots(r.Context())
	if err != nil {
		writeServiceError(w, err, iotNotFound)
		return
	}
	writeJSON(w, http.StatusOK, iots)
}

// Get handles GET /iots/{id}.
func (h *IotHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tag, err := h.fleet.GetIot(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, iotNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

// Create handles POST /iots.
func (h *IotHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in service.IotInput
	if !decode(w, r, &in) {
		return
	}
	tag, err := h.fleet.CreateIot(r.Context(), in)
	if err != nil {
		writeServiceError(w, err, iotNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, tag)
}

// Update handles PUT /iots/{id}.
func (h *IotHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in service.IotInput
	if !decode(w, r, &in) {
		return
	}
	tag, err := h.fleet.UpdateIot(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err, iotNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

// Delete handles DELETE /iots/{id}.
func (h *IotHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.fleet.DeleteIot(r.Context(), id); err != nil {
		writeServiceError(w, err, iotNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
