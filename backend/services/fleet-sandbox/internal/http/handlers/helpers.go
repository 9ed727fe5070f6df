package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"motofleet/backend/services/fleet-sandbox/internal/repository"
	"motofleet/backend/services/fleet-sandbox/internal/service"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "id inválido")
		return 0, false
	}
	return id, true
}

// writeServiceError maps domain errors onto status codes. notFound is the 404 message.
func writeServiceError(w http.ResponseWriter, err error, notFound string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, "Campos inválidos: "+strings.Join(verr.Fields, ", "))
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, repository.ErrPlacaTaken):
		writeError(w, http.StatusConflict, "Placa já cadastrada")
	case errors.Is(err, service.ErrUsernameInUse):
		writeError(w, http.StatusConflict, "Usuário já cadastrado")
	case errors.Is(err, service.ErrMotoMissing):
		writeError(w, http.StatusUnprocessableEntity, "Moto informada não existe")
	default:
		writeError(w, http.StatusInternalServerError, "Erro interno")
	}
}
