package quiz

import (
	"fmt"
	"time"
)

// PageWindowWidth is the maximum number of page buttons shown at once.
const PageWindowWidth = 5

// PageWindow computes the bounded window of page numbers to display.
// Pure and deterministic: the same (current, pages) always yields the
// same window.
//
//	pages <= 5          → all pages
//	current <= 3        → 1..5
//	current >= pages-2  → last 5
//	otherwise           → current-2 .. current+2
func PageWindow(current, pages int) []int {
	if pages <= 0 {
		return nil
	}

	n := PageWindowWidth
	if pages < n {
		n = pages
	}

	start := 1
	switch {
	case pages <= PageWindowWidth || current <= 3:
		start = 1
	case current >= pages-2:
		start = pages - PageWindowWidth + 1
	default:
		start = current - 2
	}

	window := make([]int, n)
	for i := range window {
		window[i] = start + i
	}
	return window
}

// FormatDuration renders an attempt duration for the history table:
// minutes and seconds when at least a minute, seconds only otherwise.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	mins := total / 60
	secs := total % 60
	if mins > 0 {
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// FormatAttemptDate renders created_at for the history table.
func FormatAttemptDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
