package download

import (
	"github.com/ytget/yt-clipper/internal/model"
)

// Downloader defines the interface for the clip download service.
type Downloader interface {
	SetUpdateCallback(func(*model.ClipTask))
	AddTask(req Request) (*model.ClipTask, error)
	GetTask(id string) (*model.ClipTask, bool)
	GetAllTasks() []*model.ClipTask
}
