// Package http exposes the analyze service over JSON endpoints
package http

import (
	"net/http"

	"mouthsoap/internal/modkit/httpkit"
	"mouthsoap/internal/services/analyze/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Analyzer domain.AnalyzerPort
}

type handlers struct {
	deps Deps
}

// Register mounts the analyze routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.PostJSON(r, "/analyze", h.analyze)
}

func (h *handlers) analyze(r *http.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Analyzer.Analyze(r.Context(), in)
}
