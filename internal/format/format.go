// Package format renders byte counts for display.
package format

import (
	"fmt"

	"burrow/internal/domain"
)

// UnknownLabel is shown where a size could not be determined.
const UnknownLabel = "size unavailable"

var units = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Bytes converts a byte count to a human-readable string, dividing by
// 1024 until the value drops below 1024 or PB is reached. The base
// unit is rendered as an integer, everything else with one decimal.
func Bytes(n int64) string {
	if n < 0 {
		return UnknownLabel
	}
	value := float64(n)
	for _, unit := range units {
		if value < 1024.0 || unit == units[len(units)-1] {
			if unit == "B" {
				return fmt.Sprintf("%dB", int64(value))
			}
			return fmt.Sprintf("%.1f%s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%dB", n)
}

// EntrySize renders an entry's size, marking unknown sizes with a
// literal label and partial sums with a trailing "+" (the reported
// number is a lower bound, not exact).
func EntrySize(entry domain.Entry) string {
	if !entry.SizeKnown() {
		return UnknownLabel
	}
	if entry.Partial {
		return Bytes(entry.SizeBytes) + "+"
	}
	return Bytes(entry.SizeBytes)
}
