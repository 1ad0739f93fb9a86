package extract

// Package extract fetches video metadata through yt-dlp (via
// github.com/lrstanley/go-ytdlp) and maps the raw info JSON into the
// internal model types.
