// Package trim validates user-supplied clip ranges against a video's total
// duration and renders the resulting ffmpeg seek arguments.
package trim

import (
	"errors"
	"fmt"
)

// Validation failures form a closed set so callers can show a specific
// message and re-prompt. They are the only errors this package returns.
var (
	ErrDurationUnknown     = errors.New("video duration unknown, trimming unavailable")
	ErrStartBeyondDuration = errors.New("start time is beyond video duration")
	ErrEndBeyondDuration   = errors.New("end time is beyond video duration")
	ErrEndNotAfterStart    = errors.New("end time must be after start time")
)

// Directive is a normalized trim instruction. A nil bound means "from the
// beginning" / "to the end"; both nil means no trimming at all.
type Directive struct {
	StartSec *int
	EndSec   *int
}

// None is the pass-through directive for untrimmed downloads.
var None = Directive{}

// IsZero reports whether the directive requests no trimming.
func (d Directive) IsZero() bool {
	return d.StartSec == nil && d.EndSec == nil
}

// Start returns the effective start bound (0 when absent).
func (d Directive) Start() int {
	if d.StartSec == nil {
		return 0
	}
	return *d.StartSec
}

// End returns the effective end bound given the total duration.
func (d Directive) End(totalSec int) int {
	if d.EndSec == nil {
		return totalSec
	}
	return *d.EndSec
}

// Duration returns the clip length in seconds for display. Positive for any
// directive that passed Validate against the same total.
func (d Directive) Duration(totalSec int) int {
	return d.End(totalSec) - d.Start()
}

// FFmpegArgs renders the directive as ffmpeg postprocessor arguments:
// -ss for the start, then -t (relative duration) when both bounds are set or
// -to (absolute end) when only the end is. Empty for the zero directive.
func (d Directive) FFmpegArgs() []string {
	var args []string
	if d.StartSec != nil {
		args = append(args, "-ss", fmt.Sprintf("%d", *d.StartSec))
	}
	if d.EndSec != nil {
		if d.StartSec != nil {
			args = append(args, "-t", fmt.Sprintf("%d", *d.EndSec-*d.StartSec))
		} else {
			args = append(args, "-to", fmt.Sprintf("%d", *d.EndSec))
		}
	}
	return args
}

// FromBounds rebuilds a directive from integer bounds where a negative value
// means "not set". It performs no validation; use it only for bounds that
// already passed Validate.
func FromBounds(startSec, endSec int) Directive {
	var d Directive
	if startSec >= 0 {
		d.StartSec = &startSec
	}
	if endSec >= 0 {
		d.EndSec = &endSec
	}
	return d
}

// Validate checks a (start, end) pair against the known total duration and
// returns a normalized directive. Either bound may be nil; with both nil and
// a known total the pass-through directive is returned. Validate is pure, so
// callers may re-run it after the user edits either field.
func Validate(startSec, endSec *int, totalSec int) (Directive, error) {
	if totalSec <= 0 {
		return None, ErrDurationUnknown
	}
	if startSec != nil && *startSec >= totalSec {
		return None, ErrStartBeyondDuration
	}
	if endSec != nil && *endSec > totalSec {
		return None, ErrEndBeyondDuration
	}
	if startSec != nil && endSec != nil && *endSec <= *startSec {
		return None, ErrEndNotAfterStart
	}
	return Directive{StartSec: startSec, EndSec: endSec}, nil
}
