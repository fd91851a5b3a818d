package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"/items":     "/items",
		"/items/42":  "/items/{id}",
		"/items/abc": "/items/{id}",
		"/":          "/",
		"/github/me": "/github/me",
	}
	for in, want := range cases {
		if got := canonicalPath(in); got != want {
			t.Errorf("canonicalPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRecordUpstreamCall(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequests.WithLabelValues("ok"))
	RecordUpstreamCall("ok")
	after := testutil.ToFloat64(upstreamRequests.WithLabelValues("ok"))
	if after != before+1 {
		t.Fatalf("expected counter to increment, got %f -> %f", before, after)
	}
}

func TestInstrumentHandlerCountsRequests(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	h := InstrumentHandler(inner)

	before := testutil.ToFloat64(httpRequests.WithLabelValues("POST", "/items", "201"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", nil))
	after := testutil.ToFloat64(httpRequests.WithLabelValues("POST", "/items", "201"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if after != before+1 {
		t.Fatalf("expected request counted, got %f -> %f", before, after)
	}
}

func TestMetricsEndpointExposition(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "items_api_http_requests_total") {
		t.Fatal("expected application metrics in exposition")
	}
}
