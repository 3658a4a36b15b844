package schedule

import "time"

// IsWeekend reports whether t falls on a Saturday or Sunday in the resolver zone
func (r *Resolver) IsWeekend(t time.Time) bool {
	wd := t.In(r.loc).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AdjustForWeekend moves a Saturday or Sunday timestamp to the following
// Monday at 09:00, discarding the original time-of-day. Weekday timestamps
// are returned unchanged
func (r *Resolver) AdjustForWeekend(t time.Time) time.Time {
	lt := t.In(r.loc)
	var days int
	switch lt.Weekday() {
	case time.Saturday:
		days = 2
	case time.Sunday:
		days = 1
	default:
		return t
	}
	d := lt.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, r.loc)
}

// EODTime returns today at the given hour (default 17). If that point has
// already passed relative to now it rolls to the next calendar day, and the
// result never lands on a weekend
func (r *Resolver) EODTime(now time.Time, hour ...int) time.Time {
	h := 17
	if len(hour) > 0 && hour[0] > 0 {
		h = hour[0]
	}
	lt := now.In(r.loc)
	due := time.Date(lt.Year(), lt.Month(), lt.Day(), h, 0, 0, 0, r.loc)
	if !due.After(lt) {
		due = due.AddDate(0, 0, 1)
	}
	for r.IsWeekend(due) {
		due = due.AddDate(0, 0, 1)
	}
	return due
}
