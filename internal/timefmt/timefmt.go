// Package timefmt converts between user-supplied time expressions and
// integer seconds. Parse accepts plain seconds, MM:SS, and HH:MM:SS; Format
// is its display-side inverse.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Time unit constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// UnknownDuration is the sentinel label for absent durations.
const UnknownDuration = "Unknown"

// Parse converts a time expression to seconds. Supported forms are a bare
// non-negative integer ("90"), MM:SS ("1:30"), and HH:MM:SS ("0:01:30").
// Empty or whitespace-only input means "not specified" and returns ok=false,
// as does any malformed expression. Range checks against a video duration are
// the trim planner's job, not done here.
func Parse(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	if !strings.Contains(text, ":") {
		seconds, err := strconv.Atoi(text)
		if err != nil || seconds < 0 {
			return 0, false
		}
		return seconds, true
	}

	parts := strings.Split(text, ":")
	switch len(parts) {
	case 2: // MM:SS
		minutes, err1 := strconv.Atoi(parts[0])
		seconds, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || minutes < 0 || seconds < 0 {
			return 0, false
		}
		return minutes*SecondsPerMinute + seconds, true
	case 3: // HH:MM:SS
		hours, err1 := strconv.Atoi(parts[0])
		minutes, err2 := strconv.Atoi(parts[1])
		seconds, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || hours < 0 || minutes < 0 || seconds < 0 {
			return 0, false
		}
		return hours*SecondsPerHour + minutes*SecondsPerMinute + seconds, true
	}

	return 0, false
}

// Format renders seconds as zero-padded HH:MM:SS when an hour or more, else
// MM:SS. Reparsing the result yields the input for any non-negative value.
func Format(seconds int) string {
	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatOrUnknown is Format for contexts that accept absent durations:
// zero or negative input renders the Unknown sentinel instead of "00:00".
func FormatOrUnknown(seconds int) string {
	if seconds <= 0 {
		return UnknownDuration
	}
	return Format(seconds)
}
