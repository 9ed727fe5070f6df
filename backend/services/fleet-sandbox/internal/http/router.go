package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"motofleet/backend/services/fleet-sandbox/internal/http/handlers"
	"motofleet/backend/services/fleet-sandbox/internal/http/middleware"
	"motofleet/backend/services/fleet-sandbox/internal/metrics"
)

// Routes aggregates handlers for HTTP server.
type Routes struct {
	Health  http.HandlerFunc
	Auth    *handlers.AuthHandlers
	Motos   *handlers.MotoHandlers
	Iots    *handlers.IotHandlers
	Usuario http.HandlerFunc
	Tokens  middleware.TokenValidator
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// NewRouter wires all HTTP routes. Everything except /health, /metrics and /autenticacao needs a bearer token.
func NewRouter(routes Routes) http.Handler {
	logger := routes.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "Recurso não encontrado")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Método não permitido")
	})
	r.Use(middleware.Recovery(logger), middleware.Logging(logger))
	if routes.Metrics != nil {
		r.Use(middleware.Instrument(routes.Metrics))
		r.Handle("/metrics", routes.Metrics.Handler()).Methods(http.MethodGet)
	}

	if routes.Health != nil {
		r.HandleFunc("/health", routes.Health).Methods(http.MethodGet)
	}
	if routes.Auth != nil {
		r.HandleFunc("/autenticacao/login", routes.Auth.Login).Methods(http.MethodPost)
		r.HandleFunc("/autenticacao/cadastrar", routes.Auth.Cadastrar).Methods(http.MethodPost)
	}

	api := r.NewRoute().Subrouter()
	api.Use(middleware.Auth(routes.Tokens))

	if m := routes.Motos; m != nil {
		api.HandleFunc("/motos", m.List).Methods(http.MethodGet)
		api.HandleFunc("/motos", m.Create).Methods(http.MethodPost)
		api.HandleFunc("/motos/placa/{placa}", m.ByPlaca).Methods(http.MethodGet)
		api.HandleFunc("/motos/setor/{setor}", m.BySetor).Methods(http.MethodGet)
		api.HandleFunc("/motos/por-iot/{iotId}", m.ByIot).Methods(http.MethodGet)
		api.HandleFunc("/motos/{id:[0-9]+}", m.Get).Methods(http.MethodGet)
		api.HandleFunc("/motos/{id:[0-9]+}", m.Update).Methods(http.MethodPut)
		api.HandleFunc("/motos/{id:[0-9]+}", m.Delete).Methods(http.MethodDelete)
	}
	if i := routes.Iots; i != nil {
		api.HandleFunc("/iots", i.List).Methods(http.MethodGet)
		api.HandleFunc("/iots", i.Create).Methods(http.MethodPost)
		api.HandleFunc("/iots/{id:[0-9]+}", i.Get).Methods(http.MethodGet)
		api.HandleFunc("/iots/{id:[0-9]+}", i.Update).Methods(http.MethodPut)
		api.HandleFunc("/iots/{id:[0-9]+}", i.Delete).Methods(http.MethodDelete)
	}
	if routes.Usuario != nil {
		api.HandleFunc("/usuarios/{id:[0-9]+}", routes.Usuario).Methods(http.MethodGet)
	}
	return r
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"message":"` + message + `"}` + "\n"))
}
