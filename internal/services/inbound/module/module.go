// Package module wires inbound mail ingestion into the API using modkit
package module

import (
	"net/http"

	"velora/internal/modkit"
	"velora/internal/modkit/httpkit"
	str "velora/internal/platform/strings"
	"velora/internal/services/inbound/domain"
	inhttp "velora/internal/services/inbound/http"
	"velora/internal/services/inbound/service"
)

// Module implements modkit.Module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *service.Service
}

// Ports exposed by the inbound module
type Ports struct {
	Ingest domain.IngestPort
}

// New constructs the inbound module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("inbound"),
		modkit.WithPrefix("/inbound"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("inbound module: expected WithPorts(inbound/domain.Ports)")
	}
	if ports.Classifier == nil {
		panic("inbound module: Ports missing Classifier")
	}

	cfg := FromConfig(deps.Cfg)
	if overrides.Domain != "" {
		cfg.Domain = overrides.Domain
	}
	if overrides.Timezone != "" {
		cfg.Timezone = overrides.Timezone
	}
	if overrides.SmartFallbackDays != 0 {
		cfg.SmartFallbackDays = overrides.SmartFallbackDays
	}

	svc := service.New(ports.Classifier, service.Config{
		Domain:            cfg.Domain,
		Timezone:          cfg.Timezone,
		SmartFallbackDays: cfg.SmartFallbackDays,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Ingest: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		inhttp.Register(r, m.svc, m.svc.Resolver())
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module's exported ports
func (m *Module) Ports() any { return m.ports }
