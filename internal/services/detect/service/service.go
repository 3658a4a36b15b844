// Package service implements the detect service
package service

import (
	"context"
	"time"

	"velora/internal/core/followup"
	"velora/internal/platform/logger"
	"velora/internal/services/detect/domain"
)

// Config for the detect service
type Config struct {
	// FallbackTimeout bounds the slow-path collaborator call
	FallbackTimeout time.Duration
}

// Service implements domain.ClassifierPort with a heuristic-first policy:
// the rule engine runs unconditionally; the fallback is consulted only when
// the heuristic is absent or below the acceptance bar, and its failure
// degrades to the heuristic result rather than an error
type Service struct {
	Fallback domain.FallbackPort
	Cfg      Config
}

// New constructs a detect service. fallback may be nil
func New(fallback domain.FallbackPort, cfg Config) *Service {
	if cfg.FallbackTimeout <= 0 {
		cfg.FallbackTimeout = 2 * time.Second
	}
	return &Service{Fallback: fallback, Cfg: cfg}
}

// Classify runs heuristic detection and, when inconclusive, the fallback.
// The returned error is always nil today; the signature leaves room for
// future collaborators that must surface hard failures
func (s *Service) Classify(ctx context.Context, m domain.Message) (*followup.Result, error) {
	heur := followup.Detect(followup.Input{
		Subject: m.Subject,
		Body:    m.Body,
		From:    m.From,
		Self:    m.Self,
	})
	if heur != nil && heur.Confidence >= followup.AcceptConfidence {
		return heur, nil
	}

	if s.Fallback != nil {
		cctx, cancel := context.WithTimeout(ctx, s.Cfg.FallbackTimeout)
		defer cancel()

		res, err := s.Fallback.Classify(cctx, m)
		if err != nil {
			logger.C(ctx).Debug().Err(err).Msg("fallback classify failed; using heuristic")
		} else if v := sanitizeFallback(res); v != nil {
			return v, nil
		}
	}

	// a weak heuristic beats nothing at all; heur may be nil here
	return heur, nil
}

// sanitizeFallback validates the collaborator's loosely-typed response at the
// boundary. Anything that does not hold up as a real classification is
// treated as no result
func sanitizeFallback(r *followup.Result) *followup.Result {
	if r == nil {
		return nil
	}
	switch r.Direction {
	case followup.DirectionYouOwe, followup.DirectionTheyOwe:
	default:
		return nil
	}
	out := *r
	if out.Confidence < 0 {
		out.Confidence = 0
	}
	if out.Confidence > 1 {
		out.Confidence = 1
	}
	out.Quote = followup.CapQuote(out.Quote)
	out.Method = followup.MethodLLM
	return &out
}
