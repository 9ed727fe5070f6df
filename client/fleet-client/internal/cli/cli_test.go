package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"motofleet/client/fleet-client/internal/models"
)

// fakeFleetAPI is a tiny in-memory stand-in for the motos and auth endpoints.
type fakeFleetAPI struct {
	mu    sync.Mutex
	motos []models.Moto
	auth  []string
}

func (f *fakeFleetAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth = append(f.auth, r.Header.Get("Authorization"))

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/autenticacao/login":
		_, _ = io.WriteString(w, `{"token":"abc123","id":7}`)
	case r.Method == http.MethodGet && r.URL.Path == "/motos":
		_ = json.NewEncoder(w).Encode(f.motos)
	case r.Method == http.MethodPost && r.URL.Path == "/motos":
		var req models.MotoRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		m := models.Moto{ID: int64(len(f.motos) + 1), Modelo: req.Modelo, Ano: req.Ano, Placa: req.Placa, Setor: req.Setor}
		f.motos = append(f.motos, m)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(m)
	case strings.HasPrefix(r.URL.Path, "/motos/placa/"):
		placa := strings.TrimPrefix(r.URL.Path, "/motos/placa/")
		for _, m := range f.motos {
			if m.Placa == placa {
				_ = json.NewEncoder(w).Encode(m)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Moto não encontrada"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeFleetAPI) lastAuth() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auth[len(f.auth)-1]
}

type harness struct {
	api *fakeFleetAPI
	url string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	api := &fakeFleetAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	t.Setenv("FLEET_STORAGE_DRIVER", "file")
	t.Setenv("FLEET_STORAGE_PATH", filepath.Join(t.TempDir(), "session.yaml"))
	t.Setenv("FLEET_LOCALE", "pt-BR")
	return &harness{api: api, url: srv.URL}
}

func (h *harness) run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := New(&stdout, &stderr, nil).Run(context.Background(), append([]string{"--api", h.url}, args...))
	return code, stdout.String(), stderr.String()
}

func TestSessionSurvivesAcrossInvocations(t *testing.T) {
	h := newHarness(t)

	if code, out, errOut := h.run("login", "--username", "bob", "--senha", "secret"); code != 0 || !strings.Contains(out, "bob") {
		t.Fatalf("login: code=%d out=%q err=%q", code, out, errOut)
	}
	code, out, _ := h.run("whoami")
	if code != 0 || !strings.Contains(out, "bob") || !strings.Contains(out, "7") {
		t.Fatalf("whoami: code=%d out=%q", code, out)
	}

	if code, _, _ := h.run("motos", "list"); code != 0 {
		t.Fatalf("list failed")
	}
	if got := h.api.lastAuth(); got != "Bearer abc123" {
		t.Fatalf("Authorization = %q", got)
	}

	if code, _, errOut := h.run("logout"); code != 0 || !strings.Contains(errOut, "Você saiu da sua conta.") {
		t.Fatalf("logout: code=%d err=%q", code, errOut)
	}
	if _, out, _ := h.run("whoami"); !strings.Contains(out, "not logged in") {
		t.Fatalf("whoami after logout = %q", out)
	}
	h.run("motos", "list")
	if got := h.api.lastAuth(); got != "" {
		t.Fatalf("Authorization after logout = %q", got)
	}
}

func TestMotoCommands(t *testing.T) {
	h := newHarness(t)

	code, out, errOut := h.run("motos", "create", "--modelo", "MOTTU_POP", "--ano", "2023", "--placa", "abc1234")
	if code != 0 || !strings.Contains(out, "ABC1234") || !strings.Contains(out, "Mottu Pop") {
		t.Fatalf("create: code=%d out=%q err=%q", code, out, errOut)
	}

	code, _, errOut = h.run("motos", "create", "--modelo", "", "--ano", "1899", "--placa", "XX11YY")
	if code != 1 {
		t.Fatalf("invalid create exit code = %d", code)
	}
	for _, msg := range []string{"Modelo é obrigatório", "Ano mínimo é 1900", "Placa inválida"} {
		if !strings.Contains(errOut, msg) {
			t.Fatalf("stderr %q missing %q", errOut, msg)
		}
	}

	if code, out, _ := h.run("motos", "plate", "abc1234"); code != 0 || !strings.Contains(out, "ABC1234") {
		t.Fatalf("plate: code=%d out=%q", code, out)
	}
	if code, out, _ := h.run("motos", "plate", "ZZZ9999"); code != 0 || !strings.Contains(out, "no moto found") {
		t.Fatalf("missing plate: code=%d out=%q", code, out)
	}
	if code, _, errOut := h.run("motos", "plate"); code != 1 || !strings.Contains(errOut, "Informe a placa da moto") {
		t.Fatalf("empty plate: code=%d err=%q", code, errOut)
	}

	if code, out, _ := h.run("motos", "list", "--search", "abc"); code != 0 || !strings.Contains(out, "ABC1234") {
		t.Fatalf("filtered list: code=%d out=%q", code, out)
	}
}

func TestUsage(t *testing.T) {
	h := newHarness(t)
	if code, _, _ := h.run(); code != 2 {
		t.Fatalf("no command exit code = %d", code)
	}
	if code, _, errOut := h.run("bogus"); code != 1 || !strings.Contains(errOut, "unknown command") {
		t.Fatalf("bogus: code=%d err=%q", code, errOut)
	}
}

func TestMenu(t *testing.T) {
	h := newHarness(t)
	code, out, _ := h.run("menu")
	if code != 0 || !strings.Contains(out, "Localizar moto") || !strings.Contains(out, "Logout") {
		t.Fatalf("menu: code=%d out=%q", code, out)
	}
}
