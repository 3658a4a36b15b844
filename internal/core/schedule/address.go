package schedule

import "strings"

// DefaultDomain is the inbound alias domain when none is configured
const DefaultDomain = "in.velora.cc"

// splitLocal separates an address local part into its alias token and user id.
// The current shape ({alias}+{user}) is preferred when the first segment
// structurally matches the alias grammar; otherwise the legacy shape
// ({user}+{alias}) is assumed. Single-segment local parts carry no user
func splitLocal(address string) (alias, user string) {
	local := strings.ToLower(strings.TrimSpace(address))
	if at := strings.IndexByte(local, '@'); at >= 0 {
		local = local[:at]
	}
	first, second, ok := strings.Cut(local, "+")
	if !ok {
		return first, ""
	}
	if recognized(first) {
		return first, second
	}
	return second, first
}

// ExtractUserID returns the user segment of an alias address, supporting both
// the legacy {user}+{alias}@domain and current {alias}+{user}@domain shapes
func ExtractUserID(address string) string {
	alias, user := splitLocal(address)
	if user == "" && !recognized(alias) {
		// plain {user}@domain address
		return alias
	}
	return user
}

// SplitAddress is the exported form of splitLocal for ingestion callers
func SplitAddress(address string) (alias, user string) { return splitLocal(address) }

// UserBoundAlias builds the current-format address {alias}+{user}@domain.
// An empty domain falls back to DefaultDomain
func UserBoundAlias(alias, user string, domain string) string {
	if domain == "" {
		domain = DefaultDomain
	}
	return strings.ToLower(alias) + "+" + strings.ToLower(user) + "@" + domain
}
