package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"salescli/internal/app"
	"salescli/internal/dataprocessing"
	apierrors "salescli/internal/errors"
)

// AnalyticsHandler serves the statistics of a completed pipeline run.
type AnalyticsHandler struct {
	artifacts *app.RunArtifacts
	logger    *slog.Logger
}

// NewAnalyticsHandler creates a handler over the given run artifacts.
func NewAnalyticsHandler(artifacts *app.RunArtifacts, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{
		artifacts: artifacts,
		logger:    logger.With(slog.String("component", "analytics_handler")),
	}
}

// Router builds the serve-mode router.
func (h *AnalyticsHandler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/healthz", h.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/summary", h.GetSummary)
		r.Get("/regions", h.GetRegions)
		r.Get("/products/top", h.GetTopProducts)
		r.Get("/products/low-performers", h.GetLowPerformers)
		r.Get("/customers", h.GetCustomers)
		r.Get("/trend", h.GetTrend)
		r.Get("/enrichment", h.GetEnrichment)
		r.Get("/filters/options", h.GetFilterOptions)
		r.Get("/report", h.GetReport)
	})

	return r
}

func (h *AnalyticsHandler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("Request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// GetHealth reports liveness and the served run id.
func (h *AnalyticsHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status": "ok",
		"run_id": h.artifacts.Data.RunID,
	})
}

// GetSummary returns the overall figures plus cleaning and filter counts.
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	data := h.artifacts.Data
	render.JSON(w, r, map[string]interface{}{
		"run_id":        data.RunID,
		"generated_at":  data.GeneratedAt,
		"summary":       data.Summary,
		"total_parsed":  data.TotalParsed,
		"invalid_count": data.InvalidCount,
		"valid_count":   data.ValidCount,
		"filter":        data.Filter,
	})
}

// GetRegions returns the per-region statistics.
func (h *AnalyticsHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.artifacts.Data.Regions)
}

// GetTopProducts returns the top-n products by quantity. The n query
// parameter defaults to the configured report limit.
func (h *AnalyticsHandler) GetTopProducts(w http.ResponseWriter, r *http.Request) {
	n := h.artifacts.Data.Limits.TopProducts
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			apierrors.RenderError(w, r, apierrors.NewWithDetails(
				http.StatusBadRequest, "INVALID_PARAMETER", "n must be a positive integer", raw))
			return
		}
		n = parsed
	}
	render.JSON(w, r, dataprocessing.TopProducts(h.artifacts.Result.Filtered, n))
}

// GetLowPerformers returns products below the quantity threshold. The
// threshold query parameter defaults to the configured value.
func (h *AnalyticsHandler) GetLowPerformers(w http.ResponseWriter, r *http.Request) {
	threshold := h.artifacts.Data.Limits.LowPerformerThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			apierrors.RenderError(w, r, apierrors.NewWithDetails(
				http.StatusBadRequest, "INVALID_PARAMETER", "threshold must be a positive integer", raw))
			return
		}
		threshold = parsed
	}
	low := dataprocessing.LowPerformers(h.artifacts.Result.Filtered, threshold)
	if low == nil {
		low = []dataprocessing.ProductStat{}
	}
	render.JSON(w, r, low)
}

// GetCustomers returns the per-customer statistics.
func (h *AnalyticsHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.artifacts.Data.Customers)
}

// GetTrend returns the daily trend with the peak day.
func (h *AnalyticsHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"trend":    h.artifacts.Data.Trend,
		"peak_day": h.artifacts.Data.Peak,
	})
}

// GetEnrichment returns the enrichment coverage summary.
func (h *AnalyticsHandler) GetEnrichment(w http.ResponseWriter, r *http.Request) {
	if h.artifacts.Data.Enrichment == nil {
		apierrors.RenderError(w, r, apierrors.New(
			http.StatusNotFound, "NOT_FOUND", "Enrichment was not run"))
		return
	}
	render.JSON(w, r, h.artifacts.Data.Enrichment)
}

// GetFilterOptions returns the available regions and the transaction amount
// range across the valid set, for building filter requests.
func (h *AnalyticsHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	valid := h.artifacts.Result.Valid
	min, max, ok := dataprocessing.AmountRange(valid)
	regions := dataprocessing.AvailableRegions(valid)
	if regions == nil {
		regions = []string{}
	}
	render.JSON(w, r, map[string]interface{}{
		"regions":    regions,
		"min_amount": min,
		"max_amount": max,
		"has_data":   ok,
	})
}

// GetReport returns the rendered text report.
func (h *AnalyticsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.artifacts.ReportText))
}
