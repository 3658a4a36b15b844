package main

import (
	"context"

	"velora/internal/platform/config"
	"velora/internal/platform/logger"
	phttp "velora/internal/platform/net/http"

	"velora/internal/services/api"
)

func main() {
	root := config.New()

	// service-scoped config for HTTP etc (CORE_INBOUND_*)
	srvCfg := root.Prefix("CORE_INBOUND_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_INBOUND_API_PORT)
	srv := phttp.NewServer(srvCfg)

	// mount the API; modules read their own prefixes off the root config
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			EnableProfiler: srvCfg.MayBool("PROFILER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
