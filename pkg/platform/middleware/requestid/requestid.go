// Package requestid assigns every request a correlation ID.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"isocountry/pkg/requestcontext"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

// maxInboundLength caps caller-supplied IDs before they reach logs.
const maxInboundLength = 128

// Middleware reuses a caller-supplied X-Request-ID or generates a UUIDv4,
// stores it on the context and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if reqID == "" || len(reqID) > maxInboundLength {
			reqID = uuid.NewString()
		}
		w.Header().Set(Header, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
