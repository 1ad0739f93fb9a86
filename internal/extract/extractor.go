package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-clipper/internal/model"
)

// Extractor fetches metadata for a single video URL.
type Extractor interface {
	FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error)
}

// YTDLPExtractor implements Extractor by asking yt-dlp for the full info
// JSON without downloading anything.
type YTDLPExtractor struct{}

// NewYTDLPExtractor creates a metadata extractor backed by yt-dlp.
func NewYTDLPExtractor() *YTDLPExtractor {
	return &YTDLPExtractor{}
}

// FetchInfo runs yt-dlp in metadata-only mode and decodes the resulting
// info JSON.
func (e *YTDLPExtractor) FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	dl := ytdlp.New().
		SkipDownload().
		NoPlaylist().
		DumpSingleJSON()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video info: %w", err)
	}

	raw := strings.TrimSpace(result.Stdout)
	if raw == "" {
		return nil, fmt.Errorf("yt-dlp returned no metadata for %s", url)
	}

	info, err := ParseInfoJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse video info: %w", err)
	}

	return info, nil
}
