package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("get", "/motos/{id}", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest("GET", "/motos/{id}", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest("GET", "", http.StatusNotFound, time.Millisecond)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/motos/{id}", "200")); got != 2 {
		t.Fatalf("requests_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("unmatched = %v, want 1", got)
	}

	done := m.InFlight()
	if got := testutil.ToFloat64(m.httpInFlight); got != 1 {
		t.Fatalf("inflight = %v", got)
	}
	done()
	if got := testutil.ToFloat64(m.httpInFlight); got != 0 {
		t.Fatalf("inflight after done = %v", got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.RecordLogin(true)
	m.RecordLogin(false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `fleet_sandbox_auth_logins_total{result="success"} 1`) {
		t.Fatalf("login counter missing from exposition:\n%s", body)
	}
}

func TestInstancesDoNotShareRegistry(t *testing.T) {
	a, b := New(), New()
	a.RecordLogin(true)
	if got := testutil.ToFloat64(b.logins.WithLabelValues("success")); got != 0 {
		t.Fatalf("second instance saw %v logins", got)
	}
}
