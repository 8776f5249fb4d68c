package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jacmel/storefront-backend/pkg/logger"
)

const (
	requestIDHeader   = "X-Request-Id"
	maxClientIDLength = 128
	clientIDForbidden = ": \t\r\n"
)

// RequestID tags the request with the caller's id, or a fresh one when the
// caller sent none or sent something unusable as a log field.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := clientID(r.Header.Get(requestIDHeader))
			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clientID accepts an id supplied by the client or mints a new one.
func clientID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > maxClientIDLength || strings.ContainsAny(value, clientIDForbidden) {
		return uuid.NewString()
	}
	return value
}
