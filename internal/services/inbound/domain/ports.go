package domain

import (
	"context"

	detectdom "velora/internal/services/detect/domain"
)

// IngestPort accepts one forwarded email and returns the follow-up it produced
type IngestPort interface {
	Ingest(ctx context.Context, in InboundEmail) (*FollowUp, error)
}

// Ports declares the cross module dependencies the inbound module expects
type Ports struct {
	Classifier detectdom.ClassifierPort
}
