// Package http provides http transport for inbound mail
package http

import (
	stdhttp "net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"velora/internal/core/schedule"
	"velora/internal/modkit/httpkit"
	perr "velora/internal/platform/errors"
	"velora/internal/platform/net/http/bind"
	"velora/internal/services/inbound/domain"
)

var aliasTokenOnce sync.Once

// registerAliasToken wires the alias grammar into the request validator so
// payloads can declare `validate:"alias_token"`
func registerAliasToken() {
	aliasTokenOnce.Do(func() {
		_ = bind.RegisterValidation("alias_token", func(fl validator.FieldLevel) bool {
			return schedule.Recognized(fl.Field().String())
		})
	})
}

// PreviewInput asks for a dry-run resolution of a single alias token
type PreviewInput struct {
	Alias string `json:"alias" validate:"required,alias_token"`
	// Now overrides the reference time, RFC3339; empty means the server clock
	Now string `json:"now,omitempty" validate:"omitempty"`
}

// PreviewResult is the dry-run resolution outcome
type PreviewResult struct {
	Alias string     `json:"alias"`
	Type  string     `json:"type"`
	DueAt *time.Time `json:"due_at,omitempty"`
}

// Register mounts inbound endpoints on the given router
func Register(r httpkit.Router, svc domain.IngestPort, resolver *schedule.Resolver) {
	registerAliasToken()
	h := &handlers{svc: svc, resolver: resolver}

	// mail provider webhook
	httpkit.PostJSON[domain.InboundEmail](r, "/email", h.email)

	// dry-run alias resolution for client tooling
	httpkit.PostJSON[PreviewInput](r, "/alias", h.previewAlias)
}

type handlers struct {
	svc      domain.IngestPort
	resolver *schedule.Resolver
}

func (h *handlers) email(r *stdhttp.Request, in domain.InboundEmail) (any, error) {
	return h.svc.Ingest(r.Context(), in)
}

func (h *handlers) previewAlias(r *stdhttp.Request, in PreviewInput) (any, error) {
	now := time.Now()
	if in.Now != "" {
		t, err := time.Parse(time.RFC3339, in.Now)
		if err != nil {
			return nil, perr.InvalidArgf("now must be RFC3339: %v", err)
		}
		now = t
	}
	res := h.resolver.Parse(in.Alias, now)
	return PreviewResult{Alias: res.RawAlias, Type: string(res.Type), DueAt: res.DueAt}, nil
}
