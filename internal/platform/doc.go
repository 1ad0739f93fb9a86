package platform

// Package platform contains OS/platform integration and external tooling
// glue: filesystem helpers, output filename derivation, and availability
// checks for the ffmpeg/yt-dlp binaries.
