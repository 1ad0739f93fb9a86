package platform

import (
	"os/exec"
)

// External tool binaries
const (
	FFmpegCommand = "ffmpeg"
	YTDLPCommand  = "yt-dlp"
)

// FFmpegAvailable reports whether the ffmpeg binary can be found and runs.
// Trimming and audio extraction require it; downloads without either do not.
func FFmpegAvailable() bool {
	if _, err := exec.LookPath(FFmpegCommand); err != nil {
		return false
	}
	return exec.Command(FFmpegCommand, "-version").Run() == nil
}

// YTDLPAvailable reports whether the yt-dlp binary is on PATH. The go-ytdlp
// wrapper can install its own copy, so a missing binary is a warning rather
// than a hard failure.
func YTDLPAvailable() bool {
	_, err := exec.LookPath(YTDLPCommand)
	return err == nil
}
