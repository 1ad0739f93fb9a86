package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	// Should end with "Downloads"
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain title", "My Video", "My Video"},
		{"strips punctuation", "Best of 2024: Top 10! (Official)", "Best of 2024 Top 10 Official"},
		{"keeps hyphens and underscores", "track-01_final", "track-01_final"},
		{"trims trailing spaces", "Ends with bang!", "Ends with bang"},
		{"empty after cleaning", "!!!???", "video"},
		{"empty input", "", "video"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := SanitizeTitle(test.input)
			if result != test.expected {
				t.Errorf("SanitizeTitle(%q) = %q, expected %q", test.input, result, test.expected)
			}
		})
	}
}

func TestSanitizeTitle_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 80)
	result := SanitizeTitle(long)
	if len(result) != MaxTitleLength {
		t.Errorf("Expected sanitized title capped at %d characters, got %d", MaxTitleLength, len(result))
	}
}

func TestOutputBaseName(t *testing.T) {
	now := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

	full := OutputBaseName("My Video", now, -1, -1)
	if full != "My Video_20250102_150405" {
		t.Errorf("Unexpected base name for full download: %s", full)
	}

	trimmed := OutputBaseName("My Video", now, 30, 90)
	if trimmed != "My Video_20250102_150405_trim_30s-90s" {
		t.Errorf("Unexpected base name for trimmed download: %s", trimmed)
	}

	openEnd := OutputBaseName("My Video", now, 30, -1)
	if !strings.HasSuffix(openEnd, "_trim_30s-end") {
		t.Errorf("Expected open-end trim suffix, got: %s", openEnd)
	}

	openStart := OutputBaseName("My Video", now, -1, 90)
	if !strings.HasSuffix(openStart, "_trim_0s-90s") {
		t.Errorf("Expected open-start trim suffix, got: %s", openStart)
	}
}
