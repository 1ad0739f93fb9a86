package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Filename derivation constants
const (
	MaxTitleLength    = 50
	TimestampLayout   = "20060102_150405"
	TrimSuffixFormat  = "_trim_%s-%s"
	TrimOpenEndLabel  = "end"
	FallbackBaseTitle = "video"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// SanitizeTitle reduces a video title to a filesystem-safe base name: only
// alphanumerics, spaces, hyphens, and underscores survive, trailing spaces
// are trimmed, and the result is capped at MaxTitleLength characters.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	clean := strings.TrimRight(b.String(), " ")

	runes := []rune(clean)
	if len(runes) > MaxTitleLength {
		clean = string(runes[:MaxTitleLength])
	}
	if clean == "" {
		return FallbackBaseTitle
	}
	return clean
}

// OutputBaseName derives the output file base name (no extension) from a
// title: sanitized title, a timestamp suffix so concurrent downloads of the
// same video never collide, and a trim range marker when bounds are set.
// Negative bounds mean "unset".
func OutputBaseName(title string, now time.Time, startSec, endSec int) string {
	base := SanitizeTitle(title) + "_" + now.Format(TimestampLayout)

	if startSec >= 0 || endSec >= 0 {
		startLabel := "0s"
		if startSec >= 0 {
			startLabel = fmt.Sprintf("%ds", startSec)
		}
		endLabel := TrimOpenEndLabel
		if endSec >= 0 {
			endLabel = fmt.Sprintf("%ds", endSec)
		}
		base += fmt.Sprintf(TrimSuffixFormat, startLabel, endLabel)
	}

	return base
}
