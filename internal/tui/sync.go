package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tasks/internal/health"
	"github.com/Makepad-fr/tasks/internal/model"
)

// Client is the remote collection as the sync operations see it.
type Client interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, title string) (model.Task, error)
	DeleteTask(ctx context.Context, id model.ID) error
}

// Each sync result carries the sequence number it was issued with so the
// store can tell stale results apart.
type (
	tasksFetchedMsg struct {
		seq   uint64
		tasks []model.Task
		err   error
	}
	taskCreatedMsg struct {
		seq  uint64
		task model.Task
		err  error
	}
	taskDeletedMsg struct {
		seq uint64
		id  model.ID
		err error
	}
	healthMsg     struct{ status health.Status }
	healthTickMsg struct{}
)

func fetchTasks(ctx context.Context, c Client, seq uint64) tea.Cmd {
	return func() tea.Msg {
		tasks, err := c.ListTasks(ctx)
		return tasksFetchedMsg{seq: seq, tasks: tasks, err: err}
	}
}

func createTask(ctx context.Context, c Client, seq uint64, title string) tea.Cmd {
	return func() tea.Msg {
		task, err := c.CreateTask(ctx, title)
		return taskCreatedMsg{seq: seq, task: task, err: err}
	}
}

func deleteTask(ctx context.Context, c Client, seq uint64, id model.ID) tea.Cmd {
	return func() tea.Msg {
		return taskDeletedMsg{seq: seq, id: id, err: c.DeleteTask(ctx, id)}
	}
}

func checkHealth(ctx context.Context, mon *health.Monitor) tea.Cmd {
	return func() tea.Msg {
		return healthMsg{status: mon.Check(ctx)}
	}
}

// scheduleHealth fires the next probe; the loop lives as long as the program.
func scheduleHealth(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return healthTickMsg{} })
}
