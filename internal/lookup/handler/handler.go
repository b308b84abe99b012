package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"isocountry/internal/lookup/models"
	dErrors "isocountry/pkg/domain-errors"
	"isocountry/pkg/platform/httputil"
	pstrings "isocountry/pkg/platform/strings"
	"isocountry/pkg/requestcontext"
)

// Service defines the lookup operations the handler needs.
type Service interface {
	Lookup(ctx context.Context, code, name string) (*models.Record, error)
	List(ctx context.Context, codes []string) ([]*models.Record, error)
	FindTimezone(ctx context.Context, code, identifier string) (*models.TimezoneDetail, error)
}

// Handler wires country endpoints to the lookup service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a lookup handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts country endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/countries", h.HandleList)
	r.Get("/countries/{code}", h.HandleGet)
	r.Get("/countries/{code}/timezones", h.HandleTimezones)
	r.Get("/countries/{code}/timezones/*", h.HandleTimezone)
}

// HandleList handles GET /countries?codes=US,BRA.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	codes := pstrings.SplitList(",", r.URL.Query()["codes"]...)

	recs, err := h.service.List(ctx, codes)
	if err != nil {
		h.fail(ctx, w, "country list failed", err, "codes", codes)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRecords(recs))
}

// HandleGet handles GET /countries/{code}?name=.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")
	start := time.Now()

	rec, err := h.service.Lookup(ctx, code, r.URL.Query().Get("name"))
	if err != nil {
		h.fail(ctx, w, "country lookup failed", err, "code", code)
		return
	}

	h.logger.DebugContext(ctx, "country resolved",
		"request_id", requestcontext.RequestID(ctx),
		"code", code,
		"alpha2", rec.Alpha2,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromRecord(rec))
}

// HandleTimezones handles GET /countries/{code}/timezones.
func (h *Handler) HandleTimezones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	rec, err := h.service.Lookup(ctx, code, "")
	if err != nil {
		h.fail(ctx, w, "timezone list failed", err, "code", code)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, TimezonesFromRecord(rec))
}

// HandleTimezone handles GET /countries/{code}/timezones/{identifier...}.
// Identifiers contain slashes (America/Argentina/Buenos_Aires), hence the
// wildcard route.
func (h *Handler) HandleTimezone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")
	identifier := chi.URLParam(r, "*")
	if identifier == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "timezone identifier is required"))
		return
	}

	detail, err := h.service.FindTimezone(ctx, code, identifier)
	if err != nil {
		h.fail(ctx, w, "timezone lookup failed", err, "code", code, "identifier", identifier)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

// fail logs server-side failures at error and client mistakes at debug.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	level := slog.LevelDebug
	if httputil.StatusFor(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	attrs = append(attrs, "request_id", requestcontext.RequestID(ctx), "error", err)
	h.logger.Log(ctx, level, msg, attrs...)
	httputil.WriteError(w, err)
}
