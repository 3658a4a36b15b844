package domain

import (
	"context"

	"velora/internal/core/followup"
)

// ClassifierPort is the external port for follow-up classification.
// A nil result with a nil error means no obligation was detected
type ClassifierPort interface {
	Classify(ctx context.Context, m Message) (*followup.Result, error)
}

// FallbackPort is the optional slow-path collaborator (an LLM behind a
// network boundary). Implementations live outside this repo; failures are
// absorbed by the service, never propagated
type FallbackPort interface {
	Classify(ctx context.Context, m Message) (*followup.Result, error)
}

// Ports are dependencies injected into the detect module
type Ports struct {
	Fallback FallbackPort // optional
}
