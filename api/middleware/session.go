package middleware

import (
	"net/http"

	"github.com/jacmel/storefront-backend/pkg/logger"
)

const SessionIDHeader = "X-Session-Id"

// Session binds each request to a cart session. Clients echo back the id they
// were handed; a request without one starts a new session.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := clientID(r.Header.Get(SessionIDHeader))
			w.Header().Set(SessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
