package timezone

import "time"

// DefaultTimezone is the salon wall clock used when SALON_TIMEZONE is
// unset or names an unknown zone.
const DefaultTimezone = "Europe/London"

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}

	return time.Local
}
