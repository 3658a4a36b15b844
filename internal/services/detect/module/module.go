// Package module implements the detect module
package module

import (
	"net/http"

	"velora/internal/modkit"
	"velora/internal/modkit/httpkit"
	"velora/internal/services/detect/domain"
	"velora/internal/services/detect/service"
)

// Ports exposed by the detect module
type Ports struct {
	Classifier domain.ClassifierPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new detect module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("detect"),
	}, opts...)...)

	// The fallback collaborator is optional; modules without a slow path
	// still get the rule engine
	var fallback domain.FallbackPort
	if b.Ports != nil {
		ports, ok := b.Ports.(domain.Ports)
		if !ok {
			panic("detect module: expected WithPorts(detect/domain.Ports)")
		}
		fallback = ports.Fallback
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.FallbackTimeout != 0 {
		cfg.FallbackTimeout = overrides.FallbackTimeout
	}

	classifier := service.New(fallback, service.Config{
		FallbackTimeout: cfg.FallbackTimeout,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Classifier: classifier}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "detect" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
