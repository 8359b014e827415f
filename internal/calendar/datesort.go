package calendar

import (
	"log"
	"sort"
	"strings"
	"time"
)

// The dashboard's recent/upcoming lists carry display-formatted date and
// time strings rather than the canonical timestamp, so ordering them means
// reconstructing a comparable instant from locale text. The date may arrive
// in either slash order depending on which screen formatted it.

var displayLayouts = []string{
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"01/02/2006 3:04 PM",
}

// SortByDisplayTime orders records ascending by the instant reconstructed
// from their display strings. The sort is stable: ties and unresolvable
// records keep their original relative order, and a malformed record sorts
// first (epoch zero) instead of breaking the list.
func SortByDisplayTime[T any](records []T, display func(T) (date, clock string)) []T {
	type keyed struct {
		key int64
		rec T
	}

	items := make([]keyed, len(records))
	for i, rec := range records {
		date, clock := display(rec)
		items[i] = keyed{key: resolveDisplayTime(date, clock), rec: rec}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key < items[j].key
	})

	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

// resolveDisplayTime parses "date clock" after stripping a leading "at "
// from the clock. If the native order fails (e.g. the date arrived as
// DD/MM/YYYY), the first two slash components are swapped and parsing is
// retried. Unparseable input resolves to epoch zero with a warning; it
// never propagates.
func resolveDisplayTime(date, clock string) int64 {
	clean := strings.TrimPrefix(strings.TrimSpace(clock), "at ")

	if t, ok := parseDisplay(date + " " + clean); ok {
		return t.Unix()
	}

	parts := strings.Split(date, "/")
	if len(parts) == 3 {
		swapped := parts[1] + "/" + parts[0] + "/" + parts[2]
		if t, ok := parseDisplay(swapped + " " + clean); ok {
			return t.Unix()
		}
	}

	log.Printf("calendar: unparseable display time %q %q, sorting first", date, clock)
	return 0
}

func parseDisplay(s string) (time.Time, bool) {
	for _, layout := range displayLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
