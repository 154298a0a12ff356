// Package cli routes subcommands and maps their outcome to exit codes
// (0 ok, 1 error, 2 usage).
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tasks/internal/api"
	"github.com/Makepad-fr/tasks/internal/config"
	"github.com/Makepad-fr/tasks/internal/endpoint"
	"github.com/Makepad-fr/tasks/internal/health"
	"github.com/Makepad-fr/tasks/internal/model"
	"github.com/Makepad-fr/tasks/internal/server"
	"github.com/Makepad-fr/tasks/internal/tui"
	"github.com/Makepad-fr/tasks/internal/ui"
	"github.com/Makepad-fr/tasks/internal/view"
)

// Options carry the loaded config and where output goes.
type Options struct {
	Config config.Config
	Out    io.Writer
	Err    io.Writer
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Err == nil {
		opt.Err = os.Stderr
	}
	ui.SetTheme(opt.Config.Client.Theme)

	if len(args) == 0 {
		return doUI(ctx, opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "ui":
		return doUI(ctx, opt)

	case "ls":
		return doList(ctx, opt)

	case "add":
		if len(a) == 0 {
			ui.Fail(opt.Err, "usage: tasks add <title...>")
			return 2
		}
		return doAdd(ctx, opt, strings.Join(a, " "))

	case "rm":
		if len(a) != 1 {
			ui.Fail(opt.Err, "usage: tasks rm <id>")
			return 2
		}
		return doRemove(ctx, opt, model.ID(a[0]))

	case "health":
		return doHealth(ctx, opt)

	case "serve":
		return doServe(ctx, opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `tasks - a tiny task-list client

Usage:
  tasks [subcommand] [args]

Subcommands:
  ui                 Interactive list (default)
  ls                 Print the task list
  add <title...>     Add a task (title can be multiple words)
  rm <id>            Delete the task with the given id
  health             Probe the backend once
  serve              Run the in-memory backend

Environment:
  TASKS_HOST, TASKS_ORIGIN, TASKS_HEALTH_INTERVAL, TASKS_REQUEST_TIMEOUT,
  TASKS_LOG_FILE, TASKS_THEME, PORT

Examples:
  tasks add "Buy milk"
  tasks ls
  tasks rm 3
`)
}

func newClient(cfg config.ClientConfig) (*api.Client, error) {
	return api.New(endpoint.Resolve(cfg.Host), cfg.Origin, api.WithTimeout(cfg.RequestTimeout.Duration()))
}

// -------------- subcommand impls ----------------

func doUI(ctx context.Context, opt Options) int {
	cfg := opt.Config.Client
	c, err := newClient(cfg)
	if err != nil {
		ui.Fail(opt.Err, "client: "+err.Error())
		return 1
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tasks")
		if err != nil {
			ui.Fail(opt.Err, "log file: "+err.Error())
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	logger := log.Default()

	err = tui.Run(tui.Options{
		Client:         c,
		Monitor:        health.NewMonitor(c, logger),
		HealthInterval: cfg.HealthInterval.Duration(),
		Logger:         logger,
		Context:        ctx,
	})
	if err != nil {
		ui.Fail(opt.Err, "tui: "+err.Error())
		return 1
	}
	return 0
}

func doList(ctx context.Context, opt Options) int {
	c, err := newClient(opt.Config.Client)
	if err != nil {
		ui.Fail(opt.Err, "client: "+err.Error())
		return 1
	}
	tasks, err := c.ListTasks(ctx)
	if err != nil {
		ui.Fail(opt.Err, "list: "+err.Error())
		return 1
	}

	t := ui.Current()
	v := view.Render(tasks)
	lines := []string{
		fmt.Sprintf("%s  %s %d", t.Title.Render("Tasks"), t.Accent.Render("Total"), len(v.Rows)),
		"",
	}
	lines = append(lines, viewLines(v)...)
	fmt.Fprintln(opt.Out, ui.Panel(lines))
	return 0
}

func doAdd(ctx context.Context, opt Options, title string) int {
	title = strings.TrimSpace(title)
	if title == "" {
		ui.Fail(opt.Err, "Please enter a task!")
		return 2
	}
	c, err := newClient(opt.Config.Client)
	if err != nil {
		ui.Fail(opt.Err, "client: "+err.Error())
		return 1
	}
	task, err := c.CreateTask(ctx, title)
	if err != nil {
		log.New(opt.Err, "", log.LstdFlags).Printf("Error adding task: %v", err)
		ui.Fail(opt.Err, "Failed to add task. Check backend connection.")
		return 1
	}
	ui.OK(opt.Out, fmt.Sprintf("added #%s %s", task.ID, task.Title))
	return 0
}

func doRemove(ctx context.Context, opt Options, id model.ID) int {
	if strings.TrimSpace(id.String()) == "" {
		ui.Fail(opt.Err, "rm: empty id")
		return 2
	}
	c, err := newClient(opt.Config.Client)
	if err != nil {
		ui.Fail(opt.Err, "client: "+err.Error())
		return 1
	}
	if err := c.DeleteTask(ctx, id); err != nil {
		ui.Fail(opt.Err, "rm: "+err.Error())
		return 1
	}
	ui.OK(opt.Out, "removed #"+id.String())
	return 0
}

func doHealth(ctx context.Context, opt Options) int {
	c, err := newClient(opt.Config.Client)
	if err != nil {
		ui.Fail(opt.Err, "client: "+err.Error())
		return 1
	}
	status := health.NewMonitor(c, log.New(opt.Err, "", log.LstdFlags)).Check(ctx)
	fmt.Fprintf(opt.Out, "%s backend %s\n", ui.StatusIndicator(status), status)
	if status != health.Healthy {
		return 1
	}
	return 0
}

func doServe(ctx context.Context, opt Options) int {
	srv := server.New(opt.Config.Server, server.NewStore())
	if err := srv.Run(ctx); err != nil {
		ui.Fail(opt.Err, "serve: "+err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

func viewLines(v view.View) []string {
	t := ui.Current()
	if v.Empty() {
		return []string{t.Muted.Render(v.Placeholder)}
	}
	out := make([]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		title := r.Title
		if rs := []rune(title); len(rs) > 80 {
			title = string(rs[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%4s.", r.DeleteID)), title))
	}
	return out
}
