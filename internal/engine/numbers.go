package engine

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:h|hr|hrs|hour|hours)?\b`)
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:%|percent|pct)?`)
)

// namedDurations maps spoken shortcuts to labor hours.
var namedDurations = map[string]float64{
	"half day":   4,
	"half a day": 4,
	"a day":      8,
	"one day":    8,
	"full day":   8,
	"whole day":  8,
	"two days":   16,
}

// parseHours extracts labor hours from normalized input: a number with an
// optional hour suffix, or a named shortcut like "half day".
func parseHours(norm string) (float64, bool) {
	for name, hours := range namedDurations {
		if strings.Contains(norm, name) {
			return hours, true
		}
	}
	m := hoursPattern.FindStringSubmatch(norm)
	if m == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(m[1], 64)
	if err != nil || hours <= 0 || hours > 2000 {
		return 0, false
	}
	return hours, true
}

// parsePercent extracts a markup percentage from normalized input. "none"
// and "no markup" mean zero; values above 100 are rejected as implausible.
func parsePercent(norm string) (float64, bool) {
	if norm == "none" || norm == "no markup" || norm == "zero" || norm == "0%" {
		return 0, true
	}
	m := percentPattern.FindStringSubmatch(norm)
	if m == nil {
		return 0, false
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil || pct < 0 || pct > 100 {
		return 0, false
	}
	return pct, true
}
