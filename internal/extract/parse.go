package extract

import (
	"encoding/json"
	"fmt"

	"github.com/ytget/yt-clipper/internal/model"
)

// infoJSON mirrors the subset of yt-dlp's info JSON the app consumes.
type infoJSON struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Uploader   string       `json:"uploader"`
	Duration   float64      `json:"duration"`
	Thumbnail  string       `json:"thumbnail"`
	WebpageURL string       `json:"webpage_url"`
	Formats    []formatJSON `json:"formats"`
}

type formatJSON struct {
	FormatID       string  `json:"format_id"`
	Height         int     `json:"height"`
	Width          int     `json:"width"`
	Ext            string  `json:"ext"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox int64   `json:"filesize_approx"`
	FPS            float64 `json:"fps"`
	VideoCodec     string  `json:"vcodec"`
	AudioCodec     string  `json:"acodec"`
	BitrateTotal   float64 `json:"tbr"`
	BitrateVideo   float64 `json:"vbr"`
	BitrateAudio   float64 `json:"abr"`
	FormatNote     string  `json:"format_note"`
}

// ParseInfoJSON decodes a yt-dlp info JSON document into VideoInfo.
func ParseInfoJSON(data []byte) (*model.VideoInfo, error) {
	var raw infoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid info JSON: %w", err)
	}

	info := &model.VideoInfo{
		ID:              raw.ID,
		Title:           raw.Title,
		Uploader:        raw.Uploader,
		DurationSeconds: int(raw.Duration),
		Thumbnail:       raw.Thumbnail,
		WebpageURL:      raw.WebpageURL,
		Streams:         make([]model.StreamDescriptor, 0, len(raw.Formats)),
	}

	for _, f := range raw.Formats {
		size := f.Filesize
		if size <= 0 {
			size = f.FilesizeApprox
		}

		info.Streams = append(info.Streams, model.StreamDescriptor{
			FormatID:     f.FormatID,
			Height:       f.Height,
			Width:        f.Width,
			Ext:          f.Ext,
			SizeBytes:    size,
			FPS:          f.FPS,
			VideoCodec:   f.VideoCodec,
			AudioCodec:   f.AudioCodec,
			BitrateTotal: f.BitrateTotal,
			BitrateVideo: f.BitrateVideo,
			BitrateAudio: f.BitrateAudio,
			FormatNote:   f.FormatNote,
		})
	}

	return info, nil
}
