package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jacmel/storefront-backend/pkg/logger"
	"github.com/jacmel/storefront-backend/pkg/metrics"
)

func TestSessionGeneratesAndEchoesID(t *testing.T) {
	var seen string
	h := Session(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatal("expected a generated session id")
	}
	if rec.Header().Get(SessionIDHeader) != seen {
		t.Fatalf("expected response header %q, got %q", seen, rec.Header().Get(SessionIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionIDHeader, "table-7")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "table-7" {
		t.Fatalf("expected provided session id, got %q", seen)
	}
}

func TestSessionReplacesMalformedID(t *testing.T) {
	var seen string
	h := Session(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionIDHeader, "cart:other")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen == "cart:other" || seen == "" {
		t.Fatalf("expected malformed id to be replaced, got %q", seen)
	}
}

func TestRequestIDPropagates(t *testing.T) {
	h := RequestID(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get(requestIDHeader) != "req-1" {
		t.Fatalf("expected request id echoed, got %q", rec.Header().Get(requestIDHeader))
	}
}

func TestRecovererWritesInternalError(t *testing.T) {
	h := Recoverer(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestLoggingRecordsStatus(t *testing.T) {
	h := Logging(logger.Nop(), metrics.NewStorefrontMetrics(nil))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status passthrough, got %d", rec.Code)
	}
}

func TestRequestIDReplacesUnusableID(t *testing.T) {
	h := RequestID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, strings.Repeat("x", maxClientIDLength+1))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	got := rec.Header().Get(requestIDHeader)
	if got == "" || len(got) > maxClientIDLength {
		t.Fatalf("expected a generated request id, got %q", got)
	}
}

func TestRecovererRethrowsAbort(t *testing.T) {
	h := Recoverer(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Fatalf("expected ErrAbortHandler to propagate, got %v", rec)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
