package module

import "velora/internal/platform/config"

// Options holds configuration settings for the inbound module
type Options struct {
	Domain            string
	Timezone          string
	SmartFallbackDays int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	df := cfg.Prefix("INBOUND_")
	return Options{
		Domain:            df.MayString("DOMAIN", "in.velora.cc"),
		Timezone:          df.MayString("TIMEZONE", "UTC"),
		SmartFallbackDays: df.MayInt("SMART_FALLBACK_DAYS", 2),
	}
}
