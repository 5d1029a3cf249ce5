// Package module wires the analyze service into the API
package module

import (
	"net/http"

	modkit "mouthsoap/internal/modkit"
	"mouthsoap/internal/modkit/httpkit"
	str "mouthsoap/internal/platform/strings"

	analyzehttp "mouthsoap/internal/services/analyze/http"
	"mouthsoap/internal/services/analyze/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
}

// New constructs an analyze module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analyze"),
		modkit.WithPrefix("/sentence"),
	}, opts...)...)

	svc := service.New(nil)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyzehttp.Register(r, analyzehttp.Deps{Analyzer: svc})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, str.MustPrefix(m.prefix), m.mws, m.register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "analyze") }
