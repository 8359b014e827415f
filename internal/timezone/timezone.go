package timezone

import "time"

// The product is Greek; every day-granularity decision (calendar bucketing,
// "today", display labels) is made in this zone unless configured otherwise.
const DefaultTimezone = "Europe/Athens"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}
