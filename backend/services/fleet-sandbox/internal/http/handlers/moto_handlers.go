package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"motofleet/backend/services/fleet-sandbox/internal/service"
)

const motoNotFound = "Moto não encontrada"

// MotoHandlers serves /motos.
type MotoHandlers struct {
	fleet *service.FleetService
}

// NewMotoHandlers builds MotoHandlers.
func NewMotoHandlers(fleet *service.FleetService) *MotoHandlers {
	return &MotoHandlers{fleet: fleet}
}

// List handles GET /motos.
func (h *MotoHandlers) List(w http.ResponseWriter, r *http.Request) {
	motos, err := h.fleet.ListMotos(r.Context())
	if err != nil {
		writeServiceError(w, err, motoNotFound)
		return
	}
	writeJSON(w, http.StatusOK, motos)
}

// Get handles GET /motos/{id}.
func (h *MotoHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	moto, err := h.fleet.GetMoto(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, motoNotFound)
		return
	}
	writeJSON(w, http.StatusOK, moto)
}

// ByPlaca handles GET /motos/placa/{placa}.
func (h *MotoHandlers) ByPlaca(w http.ResponseWriter, r *http.Request) {
	moto, err := h.fleet.GetMotoByPlaca(r.Context(), mux.Vars(r)["placa"])
	if err != nil {
		writeServiceError(w, err, motoNotFound)
		return
	}
	writeJSON(w, http.StatusOK, moto)
}

// BySetor handles GET /motos/setor/{setor}.
func (h *MotoHandlers) BySetor(w http.ResponseWriter, r *http.Request) {
	motos, err := h.fleet.ListMotosBySetor(r.Context(), mux.Vars(r)["setor"])
	if err != nil {
		writeServiceError(w, err, motoNotFound)
		return
	}
	writeJSON(w, http.StatusOK, motos)
}

// ByIot handles GET /motos/por-iot/{iotId}.
func (h *MotoHandlers) ByIot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "iotId")
	if !ok {
		return
	}
	moto, err := h.fleet.GetMotoByIot(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Nenhuma moto vinculada a este IoT")
		return
	}
	writeJSON(w, http.StatusOK, moto)
}

// Create handles POST /motos.
func (h *MotoHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in service.MotoInput
	if !decode(w, r, &in) {
		return
	}
	moto, err := h.fleet.CreateMoto(r.Context(), in)
	if err != nil {
		writeServiceError(w, err, motoNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, moto)
}

// Update handles PUT /motos/{id}.
func (h *MotoHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in service.MotoInput
	if !decode(w, r, &in) {
		return
	}
	moto, err := h.fleet.UpdateMoto(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err, motoNotFound)
		return
	}
	writeJSON(w, http.StatusOK, moto)
}

// Delete handles DELETE /motos/{id}.
func (h *MotoHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.fleet.DeleteMoto(r.Context(), id); err != nil {
		writeServiceError(w, err, motoNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
