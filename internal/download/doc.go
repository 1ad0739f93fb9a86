package download

// Package download implements the clip download pipeline built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp). It manages task lifecycle,
// concurrency limits, progress propagation, trim postprocessing through
// ffmpeg, and MP3 extraction for audio-only jobs.
