// Package schedule parses mnemonic email-alias tokens (2d, tomorrow8am, eow)
// into concrete due timestamps and provides the business-day normalization
// helpers that callers apply to computed times
package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// AliasType classifies how an alias resolves to a due time
type AliasType string

const (
	// AliasAbsolute resolves to a specific calendar point (nextfri, eow)
	AliasAbsolute AliasType = "absolute"
	// AliasRelative is an offset from now (2d, 30m)
	AliasRelative AliasType = "relative"
	// AliasSmart defers the due time to message-content inference
	AliasSmart AliasType = "smart"
	// AliasCapture marks the mail as a task-capture event with no inferred deadline
	AliasCapture AliasType = "capture"
)

// ParseResult is the outcome of resolving a single alias token
type ParseResult struct {
	// DueAt is nil for smart/capture aliases and unrecognized tokens
	DueAt    *time.Time
	Type     AliasType
	Matched  bool
	RawAlias string
}

// Grammar forms are mutually exclusive by construction; the test order below
// mirrors the documented grammar for clarity
var (
	relativeRe = regexp.MustCompile(`^(\d+)(m|h|d)$`)
	tomorrowRe = regexp.MustCompile(`^tomorrow(\d{1,2})?(am|pm)?$`)
	nextDayRe  = regexp.MustCompile(`^next(mon|tue|wed|thu|fri|sat|sun)$`)
)

var weekdays = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// Resolver resolves alias tokens against a configured IANA zone.
// All day/hour arithmetic runs in that zone; an unknown zone degrades to UTC
// so the resolver stays total over arbitrary configuration
type Resolver struct {
	loc  *time.Location
	zone string
}

// NewResolver builds a Resolver for the given IANA zone name
func NewResolver(zone string) *Resolver {
	loc, err := time.LoadLocation(zone)
	if err != nil || zone == "" {
		loc = time.UTC
	}
	return &Resolver{loc: loc, zone: zone}
}

// Location returns the zone all computations run in
func (r *Resolver) Location() *time.Location { return r.loc }

// Parse resolves an alias token (or a full alias address; anything from the
// first '@' on is ignored) against the reference time now.
// Unrecognized tokens return Matched=false with AliasSmart as the degenerate type
func (r *Resolver) Parse(alias string, now time.Time) ParseResult {
	raw := strings.ToLower(strings.TrimSpace(alias))
	if at := strings.IndexByte(raw, '@'); at >= 0 {
		raw = raw[:at]
	}
	now = now.In(r.loc)

	res := ParseResult{RawAlias: raw, Type: AliasSmart}
	if raw == "" {
		return res
	}

	if m := relativeRe.FindStringSubmatch(raw); m != nil {
		n, _ := strconv.Atoi(m[1])
		var d time.Duration
		switch m[2] {
		case "m":
			d = time.Duration(n) * time.Minute
		case "h":
			d = time.Duration(n) * time.Hour
		case "d":
			d = time.Duration(n) * 24 * time.Hour
		}
		due := now.Add(d)
		return ParseResult{DueAt: &due, Type: AliasRelative, Matched: true, RawAlias: raw}
	}

	if m := tomorrowRe.FindStringSubmatch(raw); m != nil {
		hour := 9
		if m[1] != "" {
			hour, _ = strconv.Atoi(m[1])
			switch m[2] {
			case "am":
				if hour == 12 {
					hour = 0
				}
			case "pm":
				if hour != 12 {
					hour += 12
				}
			}
		}
		t := now.AddDate(0, 0, 1)
		due := time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, r.loc)
		return ParseResult{DueAt: &due, Type: AliasAbsolute, Matched: true, RawAlias: raw}
	}

	if m := nextDayRe.FindStringSubmatch(raw); m != nil {
		target := weekdays[m[1]]
		delta := (int(target) - int(now.Weekday()) + 7) % 7
		if delta == 0 {
			// "next" never means today
			delta = 7
		}
		t := now.AddDate(0, 0, delta)
		due := time.Date(t.Year(), t.Month(), t.Day(), 9, 0, 0, 0, r.loc)
		return ParseResult{DueAt: &due, Type: AliasAbsolute, Matched: true, RawAlias: raw}
	}

	switch raw {
	case "eow":
		days := int(time.Friday) - int(now.Weekday())
		if days <= 0 {
			days += 7
		}
		t := now.AddDate(0, 0, days)
		due := time.Date(t.Year(), t.Month(), t.Day(), 17, 0, 0, 0, r.loc)
		return ParseResult{DueAt: &due, Type: AliasAbsolute, Matched: true, RawAlias: raw}
	case "eom":
		// day 0 of next month normalizes to the last day of this month
		due := time.Date(now.Year(), now.Month()+1, 0, 17, 0, 0, 0, r.loc)
		return ParseResult{DueAt: &due, Type: AliasAbsolute, Matched: true, RawAlias: raw}
	case "follow":
		return ParseResult{Type: AliasSmart, Matched: true, RawAlias: raw}
	case "todo":
		return ParseResult{Type: AliasCapture, Matched: true, RawAlias: raw}
	}

	return res
}

// recognized reports whether token structurally matches the alias grammar
// without computing a timestamp
func recognized(token string) bool {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return false
	}
	switch t {
	case "eow", "eom", "follow", "todo":
		return true
	}
	return relativeRe.MatchString(t) || tomorrowRe.MatchString(t) || nextDayRe.MatchString(t)
}

// Recognized reports whether token structurally matches the alias grammar
func Recognized(token string) bool { return recognized(token) }
