package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/filewise-ai/filewise/internal/core/domain"
	"github.com/filewise-ai/filewise/internal/observability/metrics"
)

const serviceName = "filewise-api"

// Analyzer is the single inbound operation the API exposes.
type Analyzer interface {
	Analyze(ctx context.Context, sample domain.ContentSample) (domain.Recommendation, error)
}

type Router struct {
	analyzer Analyzer
	metrics  *metrics.HTTPServerMetrics

	rateLimitRPS   float64
	rateLimitBurst int
}

func NewRouter(analyzer Analyzer, m *metrics.HTTPServerMetrics, rateLimitRPS float64, rateLimitBurst int) *Router {
	return &Router{
		analyzer:       analyzer,
		metrics:        m,
		rateLimitRPS:   rateLimitRPS,
		rateLimitBurst: rateLimitBurst,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/analyze", rt.analyze)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = rateLimitMiddleware(handler, rt.rateLimitRPS, rt.rateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var sample domain.ContentSample
	if err := json.NewDecoder(r.Body).Decode(&sample); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	start := time.Now()
	rec, err := rt.analyzer.Analyze(r.Context(), sample)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordAnalysis(serviceName, string(rec.Category), string(rec.Decision), rec.Confidence, time.Since(start))
		if rec.NameSource == domain.NameSourceFallback {
			rt.metrics.RecordFallback(serviceName, string(rec.Decision))
		}
	}

	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
