package schedule

import "time"

// HasDSTTransition reports whether a daylight-saving transition occurs within
// one day on either side of date in the named zone. Zones without DST and
// unrecognized zone names (treated as UTC) always report false.
// The predicate is total: it never panics regardless of input
func HasDSTTransition(date time.Time, zone string) bool {
	loc, err := time.LoadLocation(zone)
	if err != nil || zone == "" {
		return false
	}
	// compare UTC offsets at noon across a three-day window; any change
	// means a transition falls inside it
	probe := func(d time.Time) int {
		ld := d.In(loc)
		noon := time.Date(ld.Year(), ld.Month(), ld.Day(), 12, 0, 0, 0, loc)
		_, off := noon.Zone()
		return off
	}
	before := probe(date.AddDate(0, 0, -1))
	at := probe(date)
	after := probe(date.AddDate(0, 0, 1))
	return before != at || at != after
}
