package download

import (
	"strings"
	"testing"
	"time"

	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/trim"
)

func TestNewService(t *testing.T) {
	service := NewService("/tmp", 2)

	if service.downloadDir != "/tmp" {
		t.Errorf("Expected downloadDir to be '/tmp', got '%s'", service.downloadDir)
	}

	if service.maxParallel != 2 {
		t.Errorf("Expected maxParallel to be 2, got %d", service.maxParallel)
	}

	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}
}

func TestAddTask(t *testing.T) {
	service := NewService("/tmp", 0) // no capacity so tasks stay pending

	task, err := service.AddTask(Request{
		URL:      "https://youtube.com/watch?v=test1",
		Title:    "Test Video",
		Selector: "22",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.URL != "https://youtube.com/watch?v=test1" {
		t.Errorf("Expected URL to be 'https://youtube.com/watch?v=test1', got '%s'", task.URL)
	}

	if task.Status != model.TaskStatusPending {
		t.Errorf("Expected status to be Pending, got %s", task.Status)
	}

	if task.StartSec != -1 || task.EndSec != -1 {
		t.Errorf("Expected unset trim bounds, got start=%d end=%d", task.StartSec, task.EndSec)
	}

	if task.HasTrim() {
		t.Error("Expected task without trim range")
	}
}

func TestAddTask_EmptyURL(t *testing.T) {
	service := NewService("/tmp", 1)

	_, err := service.AddTask(Request{})
	if err == nil {
		t.Error("Expected error for empty URL, got nil")
	}
}

func TestAddTask_TrimBounds(t *testing.T) {
	service := NewService("/tmp", 0)

	start, end := 30, 90
	directive, err := trim.Validate(&start, &end, 600)
	if err != nil {
		t.Fatalf("Expected valid directive, got %v", err)
	}

	task, err := service.AddTask(Request{
		URL:  "https://youtube.com/watch?v=test-trim",
		Trim: directive,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.StartSec != 30 || task.EndSec != 90 {
		t.Errorf("Expected trim bounds 30/90, got %d/%d", task.StartSec, task.EndSec)
	}

	if !task.HasTrim() {
		t.Error("Expected task with trim range")
	}
}

func TestGetTask(t *testing.T) {
	service := NewService("/tmp", 0)

	task, err := service.AddTask(Request{URL: "https://youtube.com/watch?v=test"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	retrievedTask, exists := service.GetTask(task.ID)
	if !exists {
		t.Error("Expected task to exist")
	}

	if retrievedTask.ID != task.ID {
		t.Errorf("Expected task ID to be '%s', got '%s'", task.ID, retrievedTask.ID)
	}

	_, exists = service.GetTask("non-existing-id")
	if exists {
		t.Error("Expected task to not exist")
	}
}

func TestGetAllTasks(t *testing.T) {
	service := NewService("/tmp", 0)

	tasks := service.GetAllTasks()
	if len(tasks) != 0 {
		t.Errorf("Expected 0 tasks, got %d", len(tasks))
	}

	task1, err1 := service.AddTask(Request{URL: "https://youtube.com/watch?v=test1"})
	if err1 != nil {
		t.Fatalf("Failed to add first task: %v", err1)
	}

	task2, err2 := service.AddTask(Request{URL: "https://youtube.com/watch?v=test2"})
	if err2 != nil {
		t.Fatalf("Failed to add second task: %v", err2)
	}

	tasks = service.GetAllTasks()
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}

	foundTask1 := false
	foundTask2 := false
	for _, task := range tasks {
		if task.ID == task1.ID {
			foundTask1 = true
		}
		if task.ID == task2.ID {
			foundTask2 = true
		}
	}

	if !foundTask1 {
		t.Error("Task 1 not found in results")
	}
	if !foundTask2 {
		t.Error("Task 2 not found in results")
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService("/tmp", 1)

	updateCalled := false
	var updatedTask *model.ClipTask

	service.SetUpdateCallback(func(task *model.ClipTask) {
		updateCalled = true
		updatedTask = task
	})

	task := &model.ClipTask{
		ID:     "test-id",
		URL:    "https://youtube.com/watch?v=test",
		Status: model.TaskStatusDownloading,
	}

	service.notifyUpdate(task)

	if !updateCalled {
		t.Error("Expected update callback to be called")
	}

	if updatedTask != task {
		t.Error("Expected updated task to be the same as input task")
	}
}

func TestBuildCommand_DoesNotPanic(t *testing.T) {
	service := NewService(t.TempDir(), 0)

	tests := []struct {
		name string
		task *model.ClipTask
	}{
		{
			name: "plain video",
			task: &model.ClipTask{Title: "Plain", Selector: "22", StartSec: -1, EndSec: -1},
		},
		{
			name: "audio only",
			task: &model.ClipTask{Title: "Audio", AudioOnly: true, Selector: "bestaudio/best", StartSec: -1, EndSec: -1},
		},
		{
			name: "trimmed",
			task: &model.ClipTask{Title: "Clip", Selector: "22", StartSec: 30, EndSec: 90},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if dl := service.buildCommand(test.task); dl == nil {
				t.Error("Expected a configured command, got nil")
			}
		})
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}

	if id1 == "" || id2 == "" {
		t.Error("Expected non-empty task IDs")
	}

	if !strings.HasPrefix(id1, "clip-") {
		t.Errorf("Expected ID to start with 'clip-', got: %s", id1)
	}

	if !strings.HasPrefix(id2, "clip-") {
		t.Errorf("Expected ID to start with 'clip-', got: %s", id2)
	}
}

func TestStartNextPendingTask_RespectsCapacity(t *testing.T) {
	service := NewService("/tmp", 0)

	if _, err := service.AddTask(Request{URL: "https://youtube.com/watch?v=queued"}); err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	// With zero capacity nothing should leave Pending.
	service.startNextPendingTask()
	time.Sleep(50 * time.Millisecond)

	tasks := service.GetAllTasks()
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Status != model.TaskStatusPending {
		t.Errorf("Expected task to stay Pending, got %s", tasks[0].Status)
	}
}
