// Package api provides the HTTP API for the application
package api

import (
	"time"

	"mouthsoap/internal/platform/config"
	"mouthsoap/internal/platform/logger"
	phttp "mouthsoap/internal/platform/net/http"
	"mouthsoap/internal/platform/net/middleware"

	"mouthsoap/internal/modkit"
	"mouthsoap/internal/modkit/module"

	analyzemod "mouthsoap/internal/services/analyze/module"
	metamod "mouthsoap/internal/services/meta/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
}

// Mount attaches the middleware stack and all modules onto the given router.
// Middleware goes on before any routes so chi accepts the stack
func Mount(r phttp.Router, opt Options) {
	r.Use(middleware.Defaults()...)
	r.Use(middleware.CORS(middleware.CORSOptions{}))
	r.Use(middleware.AccessLog(middleware.AccessLogOptions{Slow: 2 * time.Second}))
	r.Use(middleware.Heartbeat("/ping"))

	deps := modkit.Deps{
		Cfg: opt.Config,
		Log: *opt.Logger,
	}

	mods := []module.Module{
		metamod.New(deps),
		analyzemod.New(deps),
	}

	for _, m := range mods {
		m.MountRoutes(r)
	}
}
