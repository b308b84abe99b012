// Package version provides middleware for API version extraction and validation.
package version

import (
	"net/http"

	id "isocountry/pkg/domain"
	"isocountry/pkg/platform/httputil"
	"isocountry/pkg/requestcontext"
)

// Header lets callers pin the version they expect a route to serve.
const Header = "API-Version"

// ExtractVersion creates middleware that records the API version of a chi subrouter.
// A request carrying an API-Version header that does not match the route is
// rejected with 400 so clients notice when they hit the wrong prefix.
//
// Usage:
//
//	r.Route("/v1", func(v1 chi.Router) {
//	    v1.Use(version.ExtractVersion(id.APIVersionV1))
//	    // ... routes
//	})
func ExtractVersion(version id.APIVersion) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requested := r.Header.Get(Header); requested != "" {
				v, err := id.ParseAPIVersion(requested)
				if err != nil {
					httputil.WriteError(w, err)
					return
				}
				if v != version {
					httputil.WriteError(w, versionMismatch(v, version))
					return
				}
			}
			w.Header().Set(Header, version.String())
			ctx := requestcontext.WithAPIVersion(r.Context(), version)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
