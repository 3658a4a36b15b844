package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"velora/internal/core/schedule"
)

// velora-alias resolves one alias token against a reference time and prints
// the outcome as JSON. Handy when debugging inbound addresses by hand
func main() {
	var (
		alias  = flag.String("alias", "", "alias token or full address, e.g. 2d or 2d+hector@in.velora.cc")
		tz     = flag.String("tz", "UTC", "IANA zone for due-time arithmetic")
		nowStr = flag.String("now", "", "reference time, RFC3339; empty means the wall clock")
	)
	flag.Parse()

	if *alias == "" {
		log.Fatal("alias is required")
	}

	now := time.Now()
	if *nowStr != "" {
		t, err := time.Parse(time.RFC3339, *nowStr)
		if err != nil {
			log.Fatalf("bad -now: %v", err)
		}
		now = t
	}

	r := schedule.NewResolver(*tz)
	token, user := schedule.SplitAddress(*alias)
	res := r.Parse(token, now)

	out := struct {
		Alias   string     `json:"alias"`
		UserID  string     `json:"user_id,omitempty"`
		Type    string     `json:"type"`
		Matched bool       `json:"matched"`
		DueAt   *time.Time `json:"due_at,omitempty"`
		Zone    string     `json:"zone"`
	}{
		Alias:   res.RawAlias,
		UserID:  user,
		Type:    string(res.Type),
		Matched: res.Matched,
		DueAt:   res.DueAt,
		Zone:    r.Location().String(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}
