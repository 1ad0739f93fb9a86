package model

import (
	"fmt"
	"strings"
	"time"
)

// ClipTask represents a single download/trim job handed to yt-dlp.
type ClipTask struct {
	ID         string
	URL        string
	Title      string
	Selector   string // resolved format selector expression
	AudioOnly  bool
	StartSec   int // trim start, -1 when not set
	EndSec     int // trim end, -1 when not set
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	Speed      string  // human readable speed (e.g., "1.2MB/s")
	ETASec     int     // ETA in seconds, -1 if unknown
	LastError  string  // last error message if any
	OutputPath string  // path to downloaded file
	StartedAt  time.Time
	FinishedAt time.Time
}

// HasTrim reports whether the task carries a non-empty trim range.
func (ct *ClipTask) HasTrim() bool {
	return ct.StartSec >= 0 || ct.EndSec >= 0
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (ct *ClipTask) GetETAString() string {
	if ct.ETASec <= 0 {
		return "—"
	}

	hours := ct.ETASec / 3600
	minutes := (ct.ETASec % 3600) / 60
	seconds := ct.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (ct *ClipTask) GetDisplayTitle() string {
	// First priority: video title (non-URL)
	if ct.Title != "" && !strings.HasPrefix(ct.Title, "http") {
		return ct.Title
	}

	// Second priority: filename from OutputPath
	if ct.OutputPath != "" {
		parts := strings.FieldsFunc(ct.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return ct.URL
}
