package model

// VideoInfo holds the metadata yt-dlp reports for a single video. Duration is
// zero when the extractor does not know it, which disables trimming upstream.
type VideoInfo struct {
	ID              string
	Title           string
	Uploader        string
	DurationSeconds int
	Thumbnail       string
	WebpageURL      string
	Streams         []StreamDescriptor
}

// HasDuration reports whether the extractor supplied a usable total duration.
func (v *VideoInfo) HasDuration() bool {
	return v.DurationSeconds > 0
}

// StreamDescriptor is one concrete encoded variant of the video as reported
// by yt-dlp. Numeric fields are zero when the extractor omits them; codec
// fields use the extractor's "none" sentinel for absent tracks.
type StreamDescriptor struct {
	FormatID   string
	Height     int
	Width      int
	Ext        string
	SizeBytes  int64
	FPS        float64
	VideoCodec string
	AudioCodec string
	// Bitrates in kbps as reported (tbr/vbr/abr); zero when unknown.
	BitrateTotal float64
	BitrateVideo float64
	BitrateAudio float64
	FormatNote   string
}

// HasVideo reports whether the stream carries a video track.
func (d StreamDescriptor) HasVideo() bool {
	return d.VideoCodec != "" && d.VideoCodec != "none"
}

// HasAudio reports whether the stream carries an audio track.
func (d StreamDescriptor) HasAudio() bool {
	return d.AudioCodec != "" && d.AudioCodec != "none"
}
