package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"motofleet/backend/services/fleet-sandbox/internal/metrics"
	"motofleet/backend/services/fleet-sandbox/internal/service"
)

// AuthHandlers serves /autenticacao.
type AuthHandlers struct {
	auth    *service.AuthService
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewAuthHandlers builds AuthHandlers.
func NewAuthHandlers(auth *service.AuthService, m *metrics.Metrics, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{auth: auth, metrics: m, logger: logger}
}

// Login handles POST /autenticacao/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Username string `json:"username"`
		Senha    string `json:"senha"`
	}
	type response struct {
		Token string `json:"token"`
		ID    int64  `json:"id"`
	}

	var req request
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Senha == "" {
		writeError(w, http.StatusBadRequest, "Usuário e senha são obrigatórios")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Username, req.Senha)
	h.metrics.RecordLogin(err == nil)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Usuário ou senha inválidos")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Erro ao fazer login")
		return
	}

	writeJSON(w, http.StatusOK, response{Token: token, ID: user.ID})
}

// Cadastrar handles POST /autenticacao/cadastrar.
func (h *AuthHandlers) Cadastrar(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Username     string `json:"username"`
		Senha        string `json:"senha"`
		NomeCompleto string `json:"nomeCompleto"`
		Email        string `json:"email"`
	}
	type response struct {
		ID           int64  `json:"id"`
		Username     string `json:"username"`
		NomeCompleto string `json:"nomeCompleto,omitempty"`
		Email        string `json:"email,omitempty"`
	}

	var req request
	if !decode(w, r, &req) {
		return
	}

	user, err := h.auth.Signup(r.Context(), service.SignupInput{
		Username:     req.Username,
		Senha:        req.Senha,
		NomeCompleto: req.NomeCompleto,
		Email:        req.Email,
	})
	if err != nil {
		writeServiceError(w, err, "Usuário não encontrado")
		return
	}

	writeJSON(w, http.StatusCreated, response{
		ID:           user.ID,
		Username:     user.Username,
		NomeCompleto: user.NomeCompleto,
		Email:        user.Email,
	})
}
