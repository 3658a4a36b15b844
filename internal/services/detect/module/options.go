package module

import (
	"time"

	"velora/internal/platform/config"
)

// Options holds configuration settings for the detect module
type Options struct {
	FallbackTimeout time.Duration
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	df := cfg.Prefix("CORE_DETECT_")
	return Options{
		FallbackTimeout: df.MayDuration("FALLBACK_TIMEOUT", 2*time.Second),
	}
}
