// Package report prints the one-shot flat view: the top-N largest
// immediate children of a single directory, with percentage bars.
package report

import (
	"fmt"
	"io"
	"strings"

	"burrow/internal/domain"
	"burrow/internal/format"
)

const barWidth = 16

// Bar fills width cells proportionally to pct (0..100).
func Bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100.0 * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Render writes the top entries of one listing. Percentages are
// relative to the sum of the listing's known sizes; entries beyond top
// are omitted, not folded into an "other" row.
func Render(w io.Writer, listing domain.Listing, top int) {
	fmt.Fprintf(w, "\n➤ Analyze — %s\n\n", listing.Path)

	if listing.Failed() {
		fmt.Fprintf(w, "! %s: %s\n", listing.Fail, listing.FailDetail)
		return
	}
	if len(listing.Entries) == 0 {
		fmt.Fprintln(w, "(empty directory)")
		return
	}

	total := listing.TotalBytes
	if total <= 0 {
		total = 1
	}

	fmt.Fprintf(w, "%6s  %-*s  %-32s %10s\n", "%", barWidth, "Bar", "Name", "Size")
	fmt.Fprintln(w, strings.Repeat("-", 6+2+barWidth+2+32+1+10))

	count := top
	if count < 0 {
		count = 0
	}
	if count > len(listing.Entries) {
		count = len(listing.Entries)
	}
	for _, entry := range listing.Entries[:count] {
		name := entry.Name
		if entry.Kind == domain.KindDir {
			name += "/"
		}
		if !entry.SizeKnown() {
			fmt.Fprintf(w, "%6s  %-*s  %-32s %10s\n", "--", barWidth, Bar(0, barWidth), name, format.UnknownLabel)
			continue
		}
		pct := float64(entry.SizeBytes) / float64(total) * 100.0
		fmt.Fprintf(w, "%5.1f%%  %s  %-32s %10s\n", pct, Bar(pct, barWidth), name, format.EntrySize(entry))
	}

	fmt.Fprintf(w, "\nTotal: %s across %d entries\n", format.Bytes(listing.TotalBytes), len(listing.Entries))
}
