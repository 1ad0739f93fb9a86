// Package selection maps a user's catalog choice to the yt-dlp format
// selector expression that actually gets downloaded. The fallback and merge
// expressions are policy templates because they are tied to yt-dlp's own
// selector syntax, not to anything this package decides.
package selection

import (
	"strconv"
	"strings"

	"github.com/ytget/yt-clipper/internal/catalog"
)

// Kind enumerates the closed set of selection variants.
type Kind int

const (
	// KindBestQuality asks for the top of the catalog, capped at a sane
	// default resolution.
	KindBestQuality Kind = iota

	// KindAudioOnly asks for the best audio stream regardless of catalog.
	KindAudioOnly

	// KindSpecificResolution asks for the catalog entry with a matching
	// resolution label.
	KindSpecificResolution
)

// Selection is a user's choice from the format menu.
type Selection struct {
	Kind       Kind
	Resolution string // set for KindSpecificResolution, e.g. "720p"
}

// BestQuality returns the default top-of-catalog selection.
func BestQuality() Selection {
	return Selection{Kind: KindBestQuality}
}

// AudioOnly returns the fixed best-audio selection.
func AudioOnly() Selection {
	return Selection{Kind: KindAudioOnly}
}

// SpecificResolution returns a selection for one resolution label.
func SpecificResolution(label string) Selection {
	return Selection{Kind: KindSpecificResolution, Resolution: label}
}

// Policy holds the selector expression templates handed to yt-dlp. Templates
// take a height cap via the {height} placeholder.
type Policy struct {
	// MergeTemplate widens a video-only pick into "best video at/below this
	// height plus best audio".
	MergeTemplate string

	// AudioSelector is the fixed expression for audio-only downloads.
	AudioSelector string

	// DefaultCapHeight bounds the best-quality fallback expression.
	DefaultCapHeight int

	// AcceptVideoOnly keeps a video-only format id as-is instead of widening
	// it into a merge expression.
	AcceptVideoOnly bool
}

// DefaultPolicy mirrors the stock yt-dlp behavior: merge separate streams,
// cap automatic picks at 1080p, extract best audio for audio-only.
func DefaultPolicy() Policy {
	return Policy{
		MergeTemplate:    "bestvideo[height<={height}]+bestaudio/best[height<={height}]",
		AudioSelector:    "bestaudio/best",
		DefaultCapHeight: 1080,
	}
}

// Resolve turns a selection into a selector expression against the given
// catalog. It never fails on user-facing input: an unknown resolution label
// falls back to the same capped expression as best quality.
func Resolve(sel Selection, entries []catalog.Entry, policy Policy) string {
	switch sel.Kind {
	case KindAudioOnly:
		return policy.AudioSelector
	case KindSpecificResolution:
		entry, ok := catalog.FindByResolution(entries, sel.Resolution)
		if !ok {
			return bestExpression(entries, policy)
		}
		if entry.HasAudio || policy.AcceptVideoOnly {
			return entry.FormatID
		}
		// The chosen stream has no audio track; widen to a merge so the
		// output is not silent.
		return mergeExpression(entry.Height, policy)
	default:
		return bestExpression(entries, policy)
	}
}

// bestExpression prefers the top catalog entry when it carries audio,
// otherwise falls back to the height-capped merge expression.
func bestExpression(entries []catalog.Entry, policy Policy) string {
	capHeight := policy.DefaultCapHeight
	if capHeight <= 0 {
		capHeight = DefaultPolicy().DefaultCapHeight
	}
	if len(entries) > 0 {
		top := entries[0]
		if top.HasAudio && top.Height <= capHeight {
			return top.FormatID
		}
	}
	return mergeExpression(capHeight, policy)
}

func mergeExpression(height int, policy Policy) string {
	tmpl := policy.MergeTemplate
	if tmpl == "" {
		tmpl = DefaultPolicy().MergeTemplate
	}
	return strings.ReplaceAll(tmpl, "{height}", strconv.Itoa(height))
}
