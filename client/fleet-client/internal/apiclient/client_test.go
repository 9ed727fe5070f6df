package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"motofleet/client/fleet-client/internal/storage"
)

type echo struct {
	Value string `json:"value"`
}

func TestDoAttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth, gotType, gotID string
	var gotBody echo
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotID = r.Header.Get("X-Request-ID")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = io.WriteString(w, `{"value":"pong"}`)
	}))
	defer srv.Close()

	store := storage.NewMemory()
	_ = store.Set(context.Background(), storage.KeyToken, "abc123")
	c := New(Options{BaseURL: srv.URL + "/", Tokens: StoreTokens(store)})

	var out echo
	if err := c.Do(context.Background(), http.MethodPost, "/motos", echo{Value: "ping"}, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Fatalf("Content-Type = %q", gotType)
	}
	if gotID == "" {
		t.Fatalf("missing X-Request-ID")
	}
	if gotBody.Value != "ping" || out.Value != "pong" {
		t.Fatalf("body round trip: sent %+v got %+v", gotBody, out)
	}
}

func TestDoOmitsHeaderWithoutToken(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Tokens: StoreTokens(storage.NewMemory())})
	if err := c.Do(context.Background(), http.MethodGet, "motos", nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if present {
		t.Fatalf("Authorization header sent without a token")
	}
}

func TestDoReadsTokenOnEveryRequest(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	ctx := context.Background()
	store := storage.NewMemory()
	c := New(Options{BaseURL: srv.URL, Tokens: StoreTokens(store)})

	_ = c.Do(ctx, http.MethodGet, "/motos", nil, nil)
	_ = store.Set(ctx, storage.KeyToken, "t1")
	_ = c.Do(ctx, http.MethodGet, "/motos", nil, nil)
	_ = store.Remove(ctx, storage.KeyToken)
	_ = c.Do(ctx, http.MethodGet, "/motos", nil, nil)

	want := []string{"", "Bearer t1", ""}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("request %d Authorization = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestDoProceedsWhenTokenReadFails(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header")
		}
	}))
	defer srv.Close()

	tokens := TokenFunc(func(context.Context) (string, error) { return "", errors.New("disk gone") })
	c := New(Options{BaseURL: srv.URL, Tokens: tokens})
	if err := c.Do(context.Background(), http.MethodGet, "/motos", nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !called {
		t.Fatalf("request was not sent")
	}
}

func TestDoEmptyAndNullBodies(t *testing.T) {
	for _, body := range []string{"", "null", "  \n"} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		}))
		out := &echo{}
		if err := New(Options{BaseURL: srv.URL}).Do(context.Background(), http.MethodGet, "/x", nil, &out); err != nil {
			t.Fatalf("body %q: %v", body, err)
		}
		if out == nil || out.Value != "" {
			t.Fatalf("body %q: out = %+v", body, out)
		}
		srv.Close()
	}
}

func TestDoNon2xxReturnsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"message":"Placa já cadastrada"}`)
	}))
	defer srv.Close()

	err := New(Options{BaseURL: srv.URL}).Do(context.Background(), http.MethodPost, "/motos", echo{}, nil)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %T %v", err, err)
	}
	if httpErr.StatusCode != http.StatusConflict || httpErr.Path != "/motos" {
		t.Fatalf("unexpected error %+v", httpErr)
	}
	if msg, ok := ServerMessage(err); !ok || msg != "Placa já cadastrada" {
		t.Fatalf("ServerMessage = %q %v", msg, ok)
	}
	if IsNotFound(err) {
		t.Fatalf("409 reported as not found")
	}
}

func TestDoTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New(Options{BaseURL: url}).Do(context.Background(), http.MethodGet, "/motos", nil, nil)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if StatusCode(err) != 0 {
		t.Fatalf("transport error carries status %d", StatusCode(err))
	}
	if _, ok := ServerMessage(err); ok {
		t.Fatalf("transport error should carry no server message")
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"message":"a"}`, "a"},
		{`{"mensagem":"b"}`, "b"},
		{`{"error":"c"}`, "c"},
		{`{"erro":"d"}`, "d"},
		{`{"errors":[{"message":"e"}]}`, "e"},
		{`{"errors":["f"]}`, "f"},
		{`{"message":"  "}`, ""},
		{`{"status":500}`, ""},
		{`<html>bad gateway</html>`, ""},
		{``, ""},
	}
	for _, tc := range cases {
		e := &HTTPError{StatusCode: 500, Body: []byte(tc.body)}
		if got := e.Message(); got != tc.want {
			t.Errorf("Message(%q) = %q, want %q", tc.body, got, tc.want)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&HTTPError{StatusCode: http.StatusNotFound}) {
		t.Fatalf("404 not detected")
	}
	if IsNotFound(errors.New("boom")) {
		t.Fatalf("plain error detected as 404")
	}
}
