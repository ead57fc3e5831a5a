// Package ops serves the operational HTTP surface: health, Prometheus
// metrics and read-only order lookups against the active sheet.
package ops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/nduythai/lunchbot/internal/http/middleware"
	"github.com/nduythai/lunchbot/internal/sheets"
	"github.com/nduythai/lunchbot/pkg/logging"
)

// OrderReader is the read-only slice of the sheet service the ops API
// needs.
type OrderReader interface {
	OrderStatus(ctx context.Context, displayName string, date time.Time) (has, ok bool, err error)
	DaySummary(ctx context.Context, date time.Time) ([]sheets.Entry, error)
}

var _ OrderReader = (*sheets.Service)(nil)

// Handler serves the ops endpoints.
type Handler struct {
	reader OrderReader
	loc    *time.Location
	logger *logging.Logger
}

// NewHandler creates a new ops handler. Dates in query parameters are
// interpreted in loc.
func NewHandler(reader OrderReader, loc *time.Location, logger *logging.Logger) *Handler {
	if reader == nil {
		panic("ops: reader cannot be nil")
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		reader: reader,
		loc:    loc,
		logger: logger,
	}
}

// Router assembles the ops HTTP surface. metricsHandler may be nil when
// no registry is exposed.
func (h *Handler) Router(metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(httpmiddleware.RequestLogger(h.logger))

	r.Get("/healthz", h.Health)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}
	r.Route("/api", func(api chi.Router) {
		api.Get("/summary", h.GetSummary)
		api.Get("/status", h.GetStatus)
	})
	return r
}

// Health returns a plain liveness response.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GetSummary returns everyone's order state for one day.
// GET /api/summary?date=2026-01-23 (date defaults to today)
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	date, err := h.queryDate(r)
	if err != nil {
		http.Error(w, `{"error": "invalid date, use YYYY-MM-DD"}`, http.StatusBadRequest)
		return
	}

	entries, err := h.reader.DaySummary(r.Context(), date)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		h.logger.Error("failed to encode day summary", "error", err)
	}
}

type statusResponse struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	HasOrder bool   `json:"has_order"`
	Known    bool   `json:"known"`
}

// GetStatus returns one person's order state for one day.
// GET /api/status?name=An&date=2026-01-23 (date defaults to today)
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		http.Error(w, `{"error": "name required"}`, http.StatusBadRequest)
		return
	}

	date, err := h.queryDate(r)
	if err != nil {
		http.Error(w, `{"error": "invalid date, use YYYY-MM-DD"}`, http.StatusBadRequest)
		return
	}

	has, known, err := h.reader.OrderStatus(r.Context(), name, date)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	resp := statusResponse{
		Name:     name,
		Date:     date.Format("2006-01-02"),
		HasOrder: has,
		Known:    known,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode order status", "error", err)
	}
}

// queryDate parses the date query parameter, defaulting to today in the
// handler's location.
func (h *Handler) queryDate(r *http.Request) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		now := time.Now().In(h.loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc), nil
	}
	return time.ParseInLocation("2006-01-02", raw, h.loc)
}

func (h *Handler) writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sheets.ErrTabNotFound):
		http.Error(w, `{"error": "month sheet not found"}`, http.StatusNotFound)
	case errors.Is(err, sheets.ErrDateColumnNotFound):
		http.Error(w, `{"error": "date column not found"}`, http.StatusNotFound)
	case errors.Is(err, sheets.ErrUserNotFound):
		http.Error(w, `{"error": "user not found"}`, http.StatusNotFound)
	default:
		h.logger.Error("order lookup failed", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
	}
}
