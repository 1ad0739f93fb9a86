package timefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"plain seconds", "90", 90, true},
		{"zero", "0", 0, true},
		{"non-numeric", "abc", 0, false},
		{"negative seconds", "-5", 0, false},
		{"mm:ss", "1:30", 90, true},
		{"mm:ss zero padded", "01:30", 90, true},
		{"hh:mm:ss", "0:01:30", 90, true},
		{"hh:mm:ss with hours", "1:02:03", 3723, true},
		{"too many colons", "1:2:3:4", 0, false},
		{"non-integer component", "1:x", 0, false},
		{"non-integer hour", "x:01:30", 0, false},
		{"surrounding whitespace", " 1:30 ", 90, true},
		{"large plain value beyond any duration", "99999", 99999, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := Parse(test.input)
			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{90, "01:30"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3723, "01:02:03"},
		{360000, "100:00:00"}, // hours field is unbounded width
	}

	for _, test := range tests {
		assert.Equal(t, test.want, Format(test.seconds))
	}
}

func TestFormatOrUnknown(t *testing.T) {
	assert.Equal(t, UnknownDuration, FormatOrUnknown(0))
	assert.Equal(t, UnknownDuration, FormatOrUnknown(-1))
	assert.Equal(t, "01:30", FormatOrUnknown(90))
}

// Formatting then reparsing must return the original seconds value for the
// whole representable range, since the trim confirmation round-trips values
// through the display form.
func TestRoundTrip(t *testing.T) {
	for _, seconds := range []int{0, 1, 59, 60, 61, 599, 3599, 3600, 3661, 86399, 360000} {
		got, ok := Parse(Format(seconds))
		assert.True(t, ok, "Format(%d) should reparse", seconds)
		assert.Equal(t, seconds, got)
	}
}
