package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/yt-clipper/internal/catalog"
	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/extract"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
	"github.com/ytget/yt-clipper/internal/selection"
	"github.com/ytget/yt-clipper/internal/timefmt"
	"github.com/ytget/yt-clipper/internal/trim"
)

// Console drives the interactive download flow over a line-based reader and
// writer, so the loop is testable without a real terminal.
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	extractor extract.Extractor
	downloads download.Downloader
	policy    selection.Policy
}

// NewConsole creates a console bound to the given streams and services.
func NewConsole(in io.Reader, out io.Writer, extractor extract.Extractor, downloads download.Downloader, policy selection.Policy) *Console {
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		extractor: extractor,
		downloads: downloads,
		policy:    policy,
	}
}

// runConsole assembles the services from config and runs the interactive
// loop on stdin/stdout.
func runConsole(ctx context.Context, cfg *config.Config) error {
	if err := platform.CreateDirectoryIfNotExists(cfg.Download.Dir); err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}

	if !platform.FFmpegAvailable() {
		fmt.Println("Warning: ffmpeg not found. Trimming and MP3 extraction will not work.")
	}
	if !platform.YTDLPAvailable() {
		fmt.Println("Note: yt-dlp not found on PATH, a managed copy will be used.")
	}

	svc := download.NewService(cfg.Download.Dir, cfg.Download.MaxParallel)
	console := NewConsole(os.Stdin, os.Stdout, extract.NewYTDLPExtractor(), svc, PolicyFromConfig(cfg))
	return console.Run(ctx)
}

// PolicyFromConfig maps the selection section of the config onto a resolver
// policy.
func PolicyFromConfig(cfg *config.Config) selection.Policy {
	return selection.Policy{
		MergeTemplate:    cfg.Selection.MergeTemplate,
		AudioSelector:    cfg.Selection.AudioSelector,
		DefaultCapHeight: cfg.Selection.DefaultCapHeight,
		AcceptVideoOnly:  cfg.Selection.AcceptVideoOnly,
	}
}

// Run executes the interactive loop until the user quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "yt-clipper interactive console")

	for {
		url, ok := c.prompt("\nEnter YouTube URL (or 'q' to quit): ")
		if !ok || strings.EqualFold(url, "q") {
			return nil
		}
		if url == "" {
			continue
		}
		if !IsSupportedURL(url) {
			fmt.Fprintln(c.out, "That does not look like a YouTube URL.")
			continue
		}

		if err := c.handleURL(ctx, url); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}

		answer, ok := c.prompt("\nDownload another? (y/N): ")
		if !ok || !isYes(answer) {
			return nil
		}
	}
}

// handleURL runs one fetch/pick/trim/download round for a single video.
func (c *Console) handleURL(ctx context.Context, url string) error {
	fmt.Fprintln(c.out, "Fetching video information...")
	info, err := c.extractor.FetchInfo(ctx, url)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "\nTitle:    %s\n", info.Title)
	fmt.Fprintf(c.out, "Uploader: %s\n", info.Uploader)
	fmt.Fprintf(c.out, "Duration: %s\n\n", timefmt.FormatOrUnknown(info.DurationSeconds))

	entries := catalog.Build(info.Streams)
	c.printMenu(entries)

	sel, audioOnly := c.promptSelection(entries)

	directive := trim.None
	if !audioOnly {
		directive = c.promptTrim(info)
	}

	task, err := c.downloads.AddTask(download.Request{
		URL:       url,
		Title:     info.Title,
		Selector:  selection.Resolve(sel, entries, c.policy),
		AudioOnly: audioOnly,
		Trim:      directive,
	})
	if err != nil {
		return err
	}

	return c.waitForTask(task)
}

// printMenu lists the selectable resolutions plus the fixed audio-only row.
func (c *Console) printMenu(entries []catalog.Entry) {
	fmt.Fprintln(c.out, "Available formats:")
	for i, e := range entries {
		audio := ""
		if !e.HasAudio {
			audio = "  (video only, audio merged on download)"
		}
		fmt.Fprintf(c.out, "  %d. %-6s %-5s %-10s %s fps%s\n",
			i+1, e.Resolution, e.Ext, e.DisplaySize, e.DisplayFPS, audio)
	}
	fmt.Fprintf(c.out, "  %d. Audio Only (MP3)\n", len(entries)+1)
}

// promptSelection reads a menu choice. The audio row is the last ordinal;
// anything unparsable falls back to best quality.
func (c *Console) promptSelection(entries []catalog.Entry) (selection.Selection, bool) {
	for {
		answer, ok := c.prompt(fmt.Sprintf("\nChoose a format (1-%d, Enter for best): ", len(entries)+1))
		if !ok || answer == "" {
			return selection.BestQuality(), false
		}

		choice, valid := ParseMenuChoice(answer, len(entries)+1)
		if !valid {
			fmt.Fprintln(c.out, "Please enter a number from the list.")
			continue
		}
		if choice == len(entries)+1 {
			return selection.AudioOnly(), true
		}
		return selection.SpecificResolution(entries[choice-1].Resolution), false
	}
}

// promptTrim asks for an optional clip range and validates it against the
// video duration, re-prompting on specific failures.
func (c *Console) promptTrim(info *model.VideoInfo) trim.Directive {
	answer, ok := c.prompt("Trim the video? (y/N): ")
	if !ok || !isYes(answer) {
		return trim.None
	}

	for {
		startText, ok := c.prompt("Start time (e.g. 90 or 1:30, Enter for beginning): ")
		if !ok {
			return trim.None
		}
		endText, ok := c.prompt("End time (Enter for end of video): ")
		if !ok {
			return trim.None
		}

		startSec := parseBound(startText)
		endSec := parseBound(endText)
		if startSec == nil && endSec == nil {
			return trim.None
		}

		directive, err := trim.Validate(startSec, endSec, info.DurationSeconds)
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			if err == trim.ErrDurationUnknown {
				return trim.None
			}
			continue
		}

		fmt.Fprintf(c.out, "Clip length: %s\n",
			timefmt.Format(directive.Duration(info.DurationSeconds)))
		return directive
	}
}

// waitForTask blocks until the task finishes, echoing progress updates.
func (c *Console) waitForTask(task *model.ClipTask) error {
	done := make(chan *model.ClipTask, 1)
	c.downloads.SetUpdateCallback(func(t *model.ClipTask) {
		if t.ID != task.ID {
			return
		}
		if t.Status == model.TaskStatusDownloading && t.Percent > 0 {
			fmt.Fprintf(c.out, "\r  %3d%%  %s  ETA %s   ", t.Percent, t.Speed, t.GetETAString())
		}
		if t.Status.IsFinished() {
			select {
			case done <- t:
			default:
			}
		}
	})

	// The callback is registered after AddTask, so also poll in case the
	// task finished before registration.
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var finished *model.ClipTask
	for finished == nil {
		select {
		case finished = <-done:
		case <-ticker.C:
			if t, ok := c.downloads.GetTask(task.ID); ok && t.Status.IsFinished() {
				finished = t
			}
		}
	}
	fmt.Fprintln(c.out)

	if finished.Status == model.TaskStatusError {
		return fmt.Errorf("download failed: %s", finished.LastError)
	}
	if finished.OutputPath != "" {
		fmt.Fprintf(c.out, "Saved to %s\n", finished.OutputPath)
	} else {
		fmt.Fprintln(c.out, "Download complete.")
	}
	return nil
}

// prompt prints the text and reads one trimmed line. ok is false when input
// has ended.
func (c *Console) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// IsSupportedURL reports whether the text looks like a YouTube video URL.
func IsSupportedURL(url string) bool {
	url = strings.ToLower(strings.TrimSpace(url))
	return strings.Contains(url, "youtube.com/") || strings.Contains(url, "youtu.be/")
}

// ParseMenuChoice parses a 1-based menu ordinal, rejecting anything outside
// [1, max].
func ParseMenuChoice(input string, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}

// parseBound converts a time string into an optional trim bound. Empty or
// malformed input means "not set".
func parseBound(text string) *int {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	seconds, ok := timefmt.Parse(text)
	if !ok {
		return nil
	}
	return &seconds
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
