// Package catalog turns the raw stream descriptors reported by yt-dlp into
// the de-duplicated, user-facing list of resolution choices. One entry
// survives per distinct height; ordering is highest resolution first.
package catalog

import (
	"fmt"
	"sort"

	"github.com/ytget/yt-clipper/internal/model"
)

// Display sentinels for absent numeric fields
const (
	UnknownSize = "Unknown"
	UnknownFPS  = "N/A"
)

// Entry is one selectable resolution derived from one or more stream
// descriptors sharing a height.
type Entry struct {
	Resolution  string  `json:"resolution"` // e.g. "1080p"
	Height      int     `json:"height"`
	FormatID    string  `json:"format_id"`
	Ext         string  `json:"ext"`
	HasAudio    bool    `json:"has_audio"`
	DisplaySize string  `json:"display_size"`
	DisplayFPS  string  `json:"display_fps"`
	SizeBytes   int64   `json:"size_bytes"`
	FPS         float64 `json:"fps"`
}

// Build filters descriptors down to those with a usable video codec,
// de-duplicates them by height, and returns entries sorted by descending
// height. When several descriptors share a height, one carrying audio wins;
// among equals the higher total (or video) bitrate wins. Audio-only streams
// never appear here; callers offer audio-only as a separate fixed option.
func Build(descriptors []model.StreamDescriptor) []Entry {
	best := make(map[int]model.StreamDescriptor)
	for _, d := range descriptors {
		if !d.HasVideo() || d.Height <= 0 {
			continue
		}
		current, seen := best[d.Height]
		if !seen || preferred(d, current) {
			best[d.Height] = d
		}
	}

	entries := make([]Entry, 0, len(best))
	for height, d := range best {
		entries = append(entries, Entry{
			Resolution:  fmt.Sprintf("%dp", height),
			Height:      height,
			FormatID:    d.FormatID,
			Ext:         defaultExt(d.Ext),
			HasAudio:    d.HasAudio(),
			DisplaySize: FormatSize(d.SizeBytes),
			DisplayFPS:  FormatFPS(d.FPS),
			SizeBytes:   d.SizeBytes,
			FPS:         d.FPS,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Height > entries[j].Height
	})
	return entries
}

// FindByResolution returns the entry whose resolution label matches exactly.
func FindByResolution(entries []Entry, resolution string) (Entry, bool) {
	for _, e := range entries {
		if e.Resolution == resolution {
			return e, true
		}
	}
	return Entry{}, false
}

// preferred reports whether candidate should replace current as the
// representative descriptor for a height. Combined audio+video beats
// video-only; after that the higher bitrate wins.
func preferred(candidate, current model.StreamDescriptor) bool {
	if candidate.HasAudio() != current.HasAudio() {
		return candidate.HasAudio()
	}
	return bitrate(candidate) > bitrate(current)
}

func bitrate(d model.StreamDescriptor) float64 {
	if d.BitrateTotal > 0 {
		return d.BitrateTotal
	}
	return d.BitrateVideo
}

func defaultExt(ext string) string {
	if ext == "" {
		return "mp4"
	}
	return ext
}

// FormatSize returns a human-readable size, or the Unknown sentinel when the
// extractor did not report one.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return UnknownSize
	}
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KB", "MB", "GB", "TB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatFPS renders a frame rate, or the N/A sentinel when unknown.
func FormatFPS(fps float64) string {
	if fps <= 0 {
		return UnknownFPS
	}
	if fps == float64(int(fps)) {
		return fmt.Sprintf("%d", int(fps))
	}
	return fmt.Sprintf("%.2f", fps)
}
