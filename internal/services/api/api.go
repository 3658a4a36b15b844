// Package api provides the HTTP API for the application
package api

import (
	"velora/internal/platform/config"
	"velora/internal/platform/logger"
	phttp "velora/internal/platform/net/http"

	"velora/internal/modkit"
	"velora/internal/modkit/httpkit"
	"velora/internal/modkit/module"

	detectmod "velora/internal/services/detect/module"
	inbounddom "velora/internal/services/inbound/domain"
	inboundmod "velora/internal/services/inbound/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the detect module first and extract its Classifier port
	detect := detectmod.New(deps, detectmod.FromConfig(deps.Cfg))
	classifier := module.MustPortsOf[detectmod.Ports](detect).Classifier

	// Inject the classifier into the inbound module
	inbound := inboundmod.New(
		deps,
		inboundmod.FromConfig(deps.Cfg),
		modkit.WithPorts(inbounddom.Ports{
			Classifier: classifier,
		}),
	)

	mods := []module.Module{
		detect, // include detect so its ports are registered
		inbound,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
