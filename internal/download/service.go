package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
	"github.com/ytget/yt-clipper/internal/trim"
)

// Retry policy
const (
	maxRetries   = 1
	retryBackoff = 2 * time.Second
)

// Audio extraction settings for audio-only jobs
const (
	audioFormat  = "mp3"
	audioQuality = "192K"
)

// Request describes one clip job: what to download, which streams, and
// which slice of the video to keep.
type Request struct {
	URL       string
	Title     string // video title from metadata, may be empty
	Selector  string // resolved yt-dlp format selector expression
	AudioOnly bool
	Trim      trim.Directive
}

// Service handles clip download operations
type Service struct {
	tasks       map[string]*model.ClipTask
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	downloadDir string
	onUpdate    func(*model.ClipTask) // callback for UI updates
}

// NewService creates a new download service
func NewService(downloadDir string, maxParallel int) *Service {
	return &Service{
		tasks:       make(map[string]*model.ClipTask),
		maxParallel: maxParallel,
		downloadDir: downloadDir,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ClipTask)) {
	s.onUpdate = callback
}

// AddTask registers a new clip job and starts it if there is capacity.
func (s *Service) AddTask(req Request) (*model.ClipTask, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("request URL is empty")
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	startSec, endSec := -1, -1
	if req.Trim.StartSec != nil {
		startSec = *req.Trim.StartSec
	}
	if req.Trim.EndSec != nil {
		endSec = *req.Trim.EndSec
	}

	task := &model.ClipTask{
		ID:        generateTaskID(),
		URL:       req.URL,
		Title:     req.Title,
		Selector:  req.Selector,
		AudioOnly: req.AudioOnly,
		StartSec:  startSec,
		EndSec:    endSec,
		Status:    model.TaskStatusPending,
		Progress:  0.0,
		Percent:   0,
		ETASec:    -1,
		StartedAt: time.Now(),
	}

	s.tasks[task.ID] = task

	// Try to start task if we have capacity
	if s.activeCount < s.maxParallel {
		go s.startTask(task)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.ClipTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.ClipTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ClipTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// startTask runs a clip job to completion
func (s *Service) startTask(task *model.ClipTask) {
	s.tasksMutex.Lock()
	s.activeCount++
	task.Status = model.TaskStatusStarting
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)

	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()

		// Try to start next pending task
		s.startNextPendingTask()
	}()

	// Update status to downloading
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusDownloading
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dl := s.buildCommand(task)

	// Setup progress callback
	dl.ProgressFunc(500*time.Millisecond, func(update ytdlp.ProgressUpdate) {
		s.updateTaskProgress(task, &update)
	})

	// Start download with retry logic
	result, err := s.downloadWithRetry(ctx, dl, task)

	// Update final status
	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100

		// Set output path from result
		if result != nil {
			info, err := result.GetExtractedInfo()
			if err == nil && len(info) > 0 {
				// Get the first downloaded file
				if info[0].Filename != nil {
					task.OutputPath = *info[0].Filename
				}
			}
		}
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// buildCommand translates a task into a yt-dlp invocation: format selector,
// timestamped output template, ffmpeg trim arguments, and MP3 extraction
// for audio-only jobs.
func (s *Service) buildCommand(task *model.ClipTask) *ytdlp.Command {
	base := platform.OutputBaseName(task.Title, time.Now(), task.StartSec, task.EndSec)

	dl := ytdlp.New().
		ForceOverwrites().
		NoPlaylist().
		Output(filepath.Join(s.downloadDir, base+".%(ext)s"))

	if task.Selector != "" {
		dl.Format(task.Selector)
	}

	if task.AudioOnly {
		dl.ExtractAudio().
			AudioFormat(audioFormat).
			AudioQuality(audioQuality)
	}

	if task.HasTrim() {
		args := trim.FromBounds(task.StartSec, task.EndSec).FFmpegArgs()
		dl.PostProcessorArgs("ffmpeg:" + strings.Join(args, " "))
	}

	return dl
}

// downloadWithRetry attempts download with retry logic
func (s *Service) downloadWithRetry(ctx context.Context, dl *ytdlp.Command, task *model.ClipTask) (*ytdlp.Result, error) {
	var lastErr error
	var result *ytdlp.Result

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Backoff delay
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}

			log.Printf("Retrying download for task %s, attempt %d", task.ID, attempt+1)
		}

		// Attempt download
		res, err := dl.Run(ctx, task.URL)
		if err == nil {
			return res, nil
		}

		lastErr = err
		result = res // Keep last result even if there was an error
		log.Printf("Download attempt %d failed for task %s: %v", attempt+1, task.ID, err)

		if ctx.Err() != nil {
			return result, ctx.Err()
		}
	}

	return result, lastErr
}

// updateTaskProgress updates task progress from yt-dlp info
func (s *Service) updateTaskProgress(task *model.ClipTask, update *ytdlp.ProgressUpdate) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Update percentage
	if update.TotalBytes > 0 {
		percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}

	// Calculate speed
	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			task.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	// Calculate ETA
	eta := update.ETA()
	if eta > 0 {
		task.ETASec = int(eta.Seconds())
	}

	// Update title if available
	if update.Info != nil && update.Info.Title != nil && *update.Info.Title != "" && task.Title == "" {
		task.Title = *update.Info.Title
	}

	s.notifyUpdate(task)
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	// Find next pending task
	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending {
			go s.startTask(task)
			return
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ClipTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("clip-%d", time.Now().UnixNano())
	}
	return "clip-" + id.String()
}
