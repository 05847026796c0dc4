package units

import (
	"fmt"
	"math"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// FormatDuration renders seconds as "1d 02h 03m 04s", starting at the
// coarsest non-zero unit. maxParts limits output to that many of the most
// significant units (0 = all); finer units are truncated, never rounded up.
func FormatDuration(seconds float64, maxParts int) string {
	if IsMissing(seconds) {
		return Placeholder
	}

	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	total := int64(math.Floor(seconds))
	values := []int64{
		total / secondsPerDay,
		total % secondsPerDay / secondsPerHour,
		total % secondsPerHour / secondsPerMinute,
		total % secondsPerMinute,
	}
	suffixes := []string{"d", "h", "m", "s"}

	first := 0
	for first < len(values)-1 && values[first] == 0 {
		first++
	}

	last := len(values)
	if maxParts > 0 && first+maxParts < last {
		last = first + maxParts
	}

	parts := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		if i == first {
			parts = append(parts, fmt.Sprintf("%d%s", values[i], suffixes[i]))
			continue
		}
		parts = append(parts, fmt.Sprintf("%02d%s", values[i], suffixes[i]))
	}
	return sign + strings.Join(parts, " ")
}

// FormatDMS renders decimal degrees as degrees, minutes and seconds with a
// hemisphere suffix, e.g. FormatDMS(-0.0972, "N", "S") == "0°05'49\" S".
func FormatDMS(degrees float64, positive, negative string) string {
	if IsMissing(degrees) {
		return Placeholder
	}

	hemisphere := positive
	if degrees < 0 {
		hemisphere = negative
		degrees = -degrees
	}

	totalSeconds := int64(math.Floor(degrees * 3600))
	d := totalSeconds / 3600
	m := totalSeconds % 3600 / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%d°%02d'%02d\" %s", d, m, s, hemisphere)
}
