package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	lookuphandler "isocountry/internal/lookup/handler"
	"isocountry/internal/platform/metrics"
	"isocountry/internal/platform/middleware"
	id "isocountry/pkg/domain"
	"isocountry/pkg/platform/httputil"
	"isocountry/pkg/platform/middleware/metadata"
	"isocountry/pkg/platform/middleware/requestid"
	"isocountry/pkg/platform/middleware/requesttime"
	"isocountry/pkg/platform/middleware/tracing"
	"isocountry/pkg/platform/middleware/version"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps are the collaborators the router mounts.
type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Lookup  *lookuphandler.Handler
	// Health is optional; nil means no external dependency to probe.
	Health HealthChecker
}

// NewRouter wires all public endpoints. Country routes live under /v1.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(tracing.Middleware)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(middleware.RequestLogger(deps.Logger))

	r.Get("/healthz", healthz(deps.Health))
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route(id.APIVersionV1.Prefix(), func(v1 chi.Router) {
		v1.Use(version.ExtractVersion(id.APIVersionV1))
		deps.Lookup.Register(v1)
	})
	return r
}

func healthz(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.Health(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
