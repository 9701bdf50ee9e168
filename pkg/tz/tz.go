package tz

import (
	"fmt"
	"time"
)

// Local is the name that selects the machine's local zone.
const Local = "Local"

// Load resolves an IANA zone name ("Asia/Tokyo", "UTC") to a location.
// An empty name or "Local" returns time.Local.
func Load(name string) (*time.Location, error) {
	if name == "" || name == Local {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}
