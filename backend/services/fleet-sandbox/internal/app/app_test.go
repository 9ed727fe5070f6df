package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	appconfig "motofleet/backend/services/fleet-sandbox/internal/config"
	"motofleet/backend/services/fleet-sandbox/internal/password"
)

func newSandbox(t *testing.T, seed bool) *httptest.Server {
	t.Helper()
	cfg := &appconfig.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.Seed.Enabled = seed
	cfg.Seed.Username = "admin"
	cfg.Seed.Password = "admin123"

	application, err := New(context.Background(), cfg, password.NewBcryptHasher(bcrypt.MinCost), zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func login(t *testing.T, srv *httptest.Server, username, senha string) (string, int64) {
	t.Helper()
	status, body := call(t, srv, http.MethodPost, "/autenticacao/login", "", map[string]string{"username": username, "senha": senha})
	if status != http.StatusOK {
		t.Fatalf("login status %d: %s", status, body)
	}
	var resp struct {
		Token string `json:"token"`
		ID    int64  `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Token == "" || resp.ID == 0 {
		t.Fatalf("login body %s (%v)", body, err)
	}
	return resp.Token, resp.ID
}

func message(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("error body %s: %v", body, err)
	}
	return resp.Message
}

func TestRegisterLoginAndProfile(t *testing.T) {
	srv := newSandbox(t, false)

	status, body := call(t, srv, http.MethodPost, "/autenticacao/cadastrar", "", map[string]string{
		"username": "bob", "senha": "secret1", "nomeCompleto": "Bob Silva", "email": "bob@example.com",
	})
	if status != http.StatusCreated {
		t.Fatalf("cadastrar status %d: %s", status, body)
	}
	status, body = call(t, srv, http.MethodPost, "/autenticacao/cadastrar", "", map[string]string{"username": "bob", "senha": "secret1"})
	if status != http.StatusConflict || message(t, body) == "" {
		t.Fatalf("duplicate cadastrar = %d %s", status, body)
	}

	status, body = call(t, srv, http.MethodPost, "/autenticacao/login", "", map[string]string{"username": "bob", "senha": "nope"})
	if status != http.StatusUnauthorized || message(t, body) != "Usuário ou senha inválidos" {
		t.Fatalf("bad login = %d %s", status, body)
	}

	token, id := login(t, srv, "bob", "secret1")
	status, body = call(t, srv, http.MethodGet, "/usuarios/1", token, nil)
	if status != http.StatusOK {
		t.Fatalf("usuario status %d: %s", status, body)
	}
	var profile struct {
		ID    int64  `json:"id"`
		Nome  string `json:"nome"`
		Email string `json:"email"`
	}
	_ = json.Unmarshal(body, &profile)
	if profile.ID != id || profile.Nome != "Bob Silva" || profile.Email != "bob@example.com" {
		t.Fatalf("profile = %+v", profile)
	}
}

func TestProtectedRoutesNeedBearer(t *testing.T) {
	srv := newSandbox(t, false)
	for _, path := range []string{"/motos", "/iots", "/usuarios/1", "/motos/placa/ABC1234"} {
		status, body := call(t, srv, http.MethodGet, path, "", nil)
		if status != http.StatusUnauthorized || message(t, body) == "" {
			t.Fatalf("GET %s without token = %d %s", path, status, body)
		}
	}
	status, _ := call(t, srv, http.MethodGet, "/motos", "not-a-jwt", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("garbage token = %d", status)
	}
	if status, _ := call(t, srv, http.MethodGet, "/health", "", nil); status != http.StatusOK {
		t.Fatalf("health = %d", status)
	}
}

func TestMotoLifecycle(t *testing.T) {
	srv := newSandbox(t, true)
	token, _ := login(t, srv, "admin", "admin123")

	status, body := call(t, srv, http.MethodGet, "/motos", token, nil)
	var motos []map[string]interface{}
	if status != http.StatusOK || json.Unmarshal(body, &motos) != nil || len(motos) != len(demoMotos) {
		t.Fatalf("seeded list = %d %s", status, body)
	}

	status, body = call(t, srv, http.MethodPost, "/motos", token, map[string]interface{}{
		"modelo": "MOTTU_E", "ano": 2024, "placa": "abc1d23", "setor": "MANUTENCAO",
	})
	if status != http.StatusCreated {
		t.Fatalf("create = %d %s", status, body)
	}
	var created struct {
		ID    int64  `json:"id"`
		Placa string `json:"placa"`
	}
	_ = json.Unmarshal(body, &created)
	if created.Placa != "ABC1D23" {
		t.Fatalf("plate not normalised: %s", body)
	}

	status, body = call(t, srv, http.MethodPost, "/motos", token, map[string]interface{}{
		"modelo": "MOTTU_E", "ano": 2024, "placa": "ABC1D23",
	})
	if status != http.StatusConflict || message(t, body) != "Placa já cadastrada" {
		t.Fatalf("duplicate plate = %d %s", status, body)
	}

	status, body = call(t, srv, http.MethodPost, "/motos", token, map[string]interface{}{"modelo": "", "ano": 1800, "placa": "XX"})
	if status != http.StatusBadRequest || !strings.HasPrefix(message(t, body), "Campos inválidos") {
		t.Fatalf("invalid body = %d %s", status, body)
	}

	status, body = call(t, srv, http.MethodGet, "/motos/placa/ABC1D23", token, nil)
	if status != http.StatusOK || !strings.Contains(string(body), `"id":`) {
		t.Fatalf("by placa = %d %s", status, body)
	}
	status, body = call(t, srv, http.MethodGet, "/motos/placa/ZZZ9999", token, nil)
	if status != http.StatusNotFound || message(t, body) != "Moto não encontrada" {
		t.Fatalf("missing placa = %d %s", status, body)
	}

	status, body = call(t, srv, http.MethodGet, "/motos/setor/MANUTENCAO", token, nil)
	motos = nil
	if status != http.StatusOK || json.Unmarshal(body, &motos) != nil || len(motos) != 2 {
		t.Fatalf("by setor = %d %s", status, body)
	}

	path := "/motos/" + strconv.FormatInt(created.ID, 10)
	status, body = call(t, srv, http.MethodPut, path, token, map[string]interface{}{
		"modelo": "MOTTU_E", "ano": 2025, "placa": "ABC1D23", "setor": "PRONTA_PARA_ALUGUEL",
	})
	if status != http.StatusOK || !strings.Contains(string(body), `"ano":2025`) {
		t.Fatalf("update = %d %s", status, body)
	}

	if status, body = call(t, srv, http.MethodDelete, path, token, nil); status != http.StatusNoContent {
		t.Fatalf("delete = %d %s", status, body)
	}
	if status, _ = call(t, srv, http.MethodGet, path, token, nil); status != http.StatusNotFound {
		t.Fatalf("get after delete = %d", status)
	}
	if status, _ = call(t, srv, http.MethodPatch, path, token, nil); status != http.StatusMethodNotAllowed {
		t.Fatalf("patch = %d", status)
	}
}

func TestIotAssociation(t *testing.T) {
	srv := newSandbox(t, true)
	token, _ := login(t, srv, "admin", "admin123")

	status, body := call(t, srv, http.MethodGet, "/motos/por-iot/1", token, nil)
	if status != http.StatusOK || !strings.Contains(string(body), `"placa":"ABC1234"`) {
		t.Fatalf("por-iot = %d %s", status, body)
	}

	loose := strconv.FormatInt(int64(len(demoMotos)+1), 10)
	if status, _ = call(t, srv, http.MethodGet, "/motos/por-iot/"+loose, token, nil); status != http.StatusNotFound {
		t.Fatalf("loose tag lookup = %d", status)
	}

	status, body = call(t, srv, http.MethodPost, "/iots", token, map[string]interface{}{"moto": map[string]int64{"id": 999}})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("dangling iot = %d %s", status, body)
	}

	status, body = call(t, srv, http.MethodPut, "/iots/"+loose, token, map[string]interface{}{"moto": map[string]int64{"id": 2}})
	if status != http.StatusOK || !strings.Contains(string(body), `"moto":{"id":2}`) {
		t.Fatalf("attach = %d %s", status, body)
	}
	status, body = call(t, srv, http.MethodGet, "/motos/por-iot/"+loose, token, nil)
	if status != http.StatusOK || !strings.Contains(string(body), `"id":2`) {
		t.Fatalf("por-iot after attach = %d %s", status, body)
	}

	status, body = call(t, srv, http.MethodPut, "/iots/"+loose, token, map[string]interface{}{})
	if status != http.StatusOK || strings.Contains(string(body), "moto") {
		t.Fatalf("detach = %d %s", status, body)
	}
	if status, _ = call(t, srv, http.MethodDelete, "/iots/"+loose, token, nil); status != http.StatusNoContent {
		t.Fatalf("delete iot = %d", status)
	}
	if status, _ = call(t, srv, http.MethodGet, "/iots/"+loose, token, nil); status != http.StatusNotFound {
		t.Fatalf("get deleted iot = %d", status)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newSandbox(t, false)
	call(t, srv, http.MethodGet, "/health", "", nil)

	status, body := call(t, srv, http.MethodGet, "/metrics", "", nil)
	if status != http.StatusOK {
		t.Fatalf("metrics = %d", status)
	}
	if !strings.Contains(string(body), `fleet_sandbox_http_requests_total{method="GET",route="/health",status="200"} 1`) {
		t.Fatalf("health request not counted:\n%s", body)
	}
}
