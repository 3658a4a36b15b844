// Package service implements inbound mail ingestion
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"velora/internal/core/followup"
	"velora/internal/core/schedule"
	perr "velora/internal/platform/errors"
	"velora/internal/platform/logger"
	ptime "velora/internal/platform/time"
	detectdom "velora/internal/services/detect/domain"
	"velora/internal/services/inbound/domain"
)

// Config for the inbound service
type Config struct {
	// Domain is the alias-bearing recipient domain
	Domain string
	// Timezone is the IANA zone all due times are computed in
	Timezone string
	// SmartFallbackDays is the due offset when neither the alias nor the
	// message pins a time
	SmartFallbackDays int
}

// Service implements domain.IngestPort
type Service struct {
	classifier detectdom.ClassifierPort
	resolver   *schedule.Resolver
	cfg        Config

	// now is swappable so tests can pin the clock
	now func() time.Time
}

// New constructs an inbound service
func New(classifier detectdom.ClassifierPort, cfg Config) *Service {
	if cfg.Domain == "" {
		cfg.Domain = schedule.DefaultDomain
	}
	if cfg.SmartFallbackDays <= 0 {
		cfg.SmartFallbackDays = 2
	}
	return &Service{
		classifier: classifier,
		resolver:   schedule.NewResolver(cfg.Timezone),
		cfg:        cfg,
		now:        time.Now,
	}
}

// Resolver exposes the alias resolver for transports that need dry runs
func (s *Service) Resolver() *schedule.Resolver { return s.resolver }

// Ingest turns one forwarded email into a follow-up record.
// The alias recipient decides when; the classifier decides who owes whom
func (s *Service) Ingest(ctx context.Context, in domain.InboundEmail) (*domain.FollowUp, error) {
	addr, ok := s.aliasRecipient(in.To)
	if !ok {
		return nil, perr.InvalidArgf("no recipient on %s", s.cfg.Domain)
	}

	alias, user := schedule.SplitAddress(addr)
	now := s.now().In(s.resolver.Location())
	parsed := s.resolver.Parse(alias, now)

	res, err := s.classify(ctx, in, user)
	if err != nil {
		return nil, err
	}

	fu := &domain.FollowUp{
		ID:        uuid.NewString(),
		UserID:    user,
		Alias:     parsed.RawAlias,
		AliasType: string(parsed.Type),
		DueAt:     s.dueAt(parsed, now),
		CreatedAt: now,
	}
	if res != nil {
		fu.Direction = string(res.Direction)
		fu.Confidence = res.Confidence
		fu.DueText = res.DueText
		fu.Quote = res.Quote
		fu.Method = string(res.Method)
	}

	logger.C(ctx).Info().
		Str("followup_id", fu.ID).
		Str("alias", fu.Alias).
		Str("alias_type", fu.AliasType).
		Str("direction", fu.Direction).
		Msg("inbound email ingested")
	return fu, nil
}

// aliasRecipient picks the first recipient on the configured domain
func (s *Service) aliasRecipient(to []string) (string, bool) {
	suffix := "@" + strings.ToLower(s.cfg.Domain)
	for _, rcpt := range to {
		if strings.HasSuffix(strings.ToLower(strings.TrimSpace(rcpt)), suffix) {
			return rcpt, true
		}
	}
	return "", false
}

// classify runs the detect port. The payload carries no canonical address for
// the identity, so authorship is inferred by matching the sender's local part
// against the user segment of the alias address
func (s *Service) classify(ctx context.Context, in domain.InboundEmail, user string) (*followup.Result, error) {
	self := ""
	if user != "" && strings.EqualFold(localPart(in.From), user) {
		self = in.From
	}
	return s.classifier.Classify(ctx, detectdom.Message{
		Subject: in.Subject,
		Body:    in.Body,
		From:    in.From,
		Self:    self,
	})
}

// dueAt applies the due-time policy per alias type
func (s *Service) dueAt(parsed schedule.ParseResult, now time.Time) *time.Time {
	switch parsed.Type {
	case schedule.AliasAbsolute:
		// the user named a day; honor it even on weekends
		return parsed.DueAt
	case schedule.AliasRelative:
		if parsed.DueAt == nil {
			return nil
		}
		return ptime.Ptr(s.resolver.AdjustForWeekend(*parsed.DueAt))
	case schedule.AliasSmart:
		due := s.resolver.AdjustForWeekend(now.AddDate(0, 0, s.cfg.SmartFallbackDays))
		return ptime.Ptr(due)
	default:
		// capture events carry no deadline
		return nil
	}
}

func localPart(address string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(address), "@")
	return local
}
