package handlers

import (
	"net/http"

	"motofleet/backend/services/fleet-sandbox/internal/service"
)

// NewUsuarioHandler handles GET /usuarios/{id}.
func NewUsuarioHandler(auth *service.AuthService) http.HandlerFunc {
	type response struct {
		ID    int64  `json:"id"`
		Nome  string `json:"nome,omitempty"`
		Email string `json:"email,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		user, err := auth.User(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Usuário não encontrado")
			return
		}
		nome := user.NomeCompleto
		if nome == "" {
			nome = user.Username
		}
		writeJSON(w, http.StatusOK, response{ID: user.ID, Nome: nome, Email: user.Email})
	}
}
