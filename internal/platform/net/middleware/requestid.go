// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"

	"mouthsoap/internal/platform/logger"
	pnet "mouthsoap/internal/platform/net"

	"github.com/google/uuid"
)

// RequestIDHeader is the header the id is read from and mirrored into
const RequestIDHeader = "X-Request-ID"

// RequestID propagates an inbound X-Request-ID or mints a fresh uuid,
// stores it on the context for the logger and envelope, and mirrors it
// on the response
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := pnet.WithRequestID(r.Context(), id)
		ctx = logger.WithRequest(ctx, id)
		w.Header().Set(RequestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
