package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ytget/yt-clipper/internal/catalog"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/extract"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/selection"
	"github.com/ytget/yt-clipper/internal/timefmt"
	"github.com/ytget/yt-clipper/internal/trim"
)

// Handler bundles the services the dashboard endpoints need.
type Handler struct {
	extractor extract.Extractor
	downloads download.Downloader
	policy    selection.Policy
}

// NewHandler creates a dashboard handler.
func NewHandler(extractor extract.Extractor, downloads download.Downloader, policy selection.Policy) *Handler {
	return &Handler{
		extractor: extractor,
		downloads: downloads,
		policy:    policy,
	}
}

type infoRequest struct {
	URL string `json:"url" binding:"required"`
}

type infoResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Uploader        string          `json:"uploader"`
	DurationSeconds int             `json:"duration_seconds"`
	DurationDisplay string          `json:"duration_display"`
	Formats         []catalog.Entry `json:"formats"`
}

type downloadRequest struct {
	URL        string `json:"url" binding:"required"`
	Resolution string `json:"resolution"` // empty means best quality
	AudioOnly  bool   `json:"audio_only"`
	Start      string `json:"start"` // trim bounds as seconds, MM:SS or HH:MM:SS
	End        string `json:"end"`
}

type taskView struct {
	ID         string  `json:"id"`
	URL        string  `json:"url"`
	Title      string  `json:"title"`
	AudioOnly  bool    `json:"audio_only"`
	StartSec   int     `json:"start_sec"`
	EndSec     int     `json:"end_sec"`
	Status     string  `json:"status"`
	Progress   float64 `json:"progress"`
	Percent    int     `json:"percent"`
	Speed      string  `json:"speed,omitempty"`
	ETA        string  `json:"eta"`
	Error      string  `json:"error,omitempty"`
	OutputPath string  `json:"output_path,omitempty"`
}

func newTaskView(task *model.ClipTask) taskView {
	return taskView{
		ID:         task.ID,
		URL:        task.URL,
		Title:      task.GetDisplayTitle(),
		AudioOnly:  task.AudioOnly,
		StartSec:   task.StartSec,
		EndSec:     task.EndSec,
		Status:     string(task.Status),
		Progress:   task.Progress,
		Percent:    task.Percent,
		Speed:      task.Speed,
		ETA:        task.GetETAString(),
		Error:      task.LastError,
		OutputPath: task.OutputPath,
	}
}

// Info fetches metadata for a URL and returns the filtered format catalog.
func (h *Handler) Info(c *gin.Context) {
	var req infoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	info, err := h.extractor.FetchInfo(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, infoResponse{
		ID:              info.ID,
		Title:           info.Title,
		Uploader:        info.Uploader,
		DurationSeconds: info.DurationSeconds,
		DurationDisplay: timefmt.FormatOrUnknown(info.DurationSeconds),
		Formats:         catalog.Build(info.Streams),
	})
}

// Download validates a clip request and queues it.
func (h *Handler) Download(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	info, err := h.extractor.FetchInfo(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	directive := trim.None
	startSec, endSec := parseBound(req.Start), parseBound(req.End)
	if startSec != nil || endSec != nil {
		directive, err = trim.Validate(startSec, endSec, info.DurationSeconds)
		if err != nil {
			c.JSON(trimErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
	}

	entries := catalog.Build(info.Streams)
	sel := selection.BestQuality()
	switch {
	case req.AudioOnly:
		sel = selection.AudioOnly()
	case req.Resolution != "":
		sel = selection.SpecificResolution(req.Resolution)
	}

	taskURL := info.WebpageURL
	if taskURL == "" {
		taskURL = req.URL
	}

	task, err := h.downloads.AddTask(download.Request{
		URL:       taskURL,
		Title:     info.Title,
		Selector:  selection.Resolve(sel, entries, h.policy),
		AudioOnly: req.AudioOnly,
		Trim:      directive,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, newTaskView(task))
}

// Tasks lists all known tasks.
func (h *Handler) Tasks(c *gin.Context) {
	tasks := h.downloads.GetAllTasks()
	views := make([]taskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, newTaskView(task))
	}
	c.JSON(http.StatusOK, gin.H{"tasks": views})
}

// Task returns one task by id.
func (h *Handler) Task(c *gin.Context) {
	task, ok := h.downloads.GetTask(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, newTaskView(task))
}

// parseBound converts a user-supplied time string into an optional bound.
// Empty or malformed input means "not set".
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

// trimErrorStatus maps trim validation failures to HTTP statuses. An unknown
// duration is a property of the video, not of the request.
func trimErrorStatus(err error) int {
	if errors.Is(err, trim.ErrDurationUnknown) {
		return http.StatusConflict
	}
	return http.StatusUnprocessableEntity
}
