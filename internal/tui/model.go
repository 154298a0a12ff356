// Package tui is the interactive task list: an input line, a submit control
// and one row per task with its own delete control.
package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tasks/internal/health"
	"github.com/Makepad-fr/tasks/internal/store"
	"github.com/Makepad-fr/tasks/internal/ui"
	"github.com/Makepad-fr/tasks/internal/view"
)

const (
	alertEmptyTitle = "Please enter a task!"
	alertAddFailed  = "Failed to add task. Check backend connection."
)

type focus int

const (
	focusInput focus = iota
	focusSubmit
	focusList
)

type Options struct {
	Client         Client
	Monitor        *health.Monitor
	HealthInterval time.Duration
	Logger         *log.Logger
	Context        context.Context
}

type Model struct {
	ctx      context.Context
	client   Client
	monitor  *health.Monitor
	interval time.Duration
	logger   *log.Logger

	store *store.Store
	view  view.View

	list    list.Model
	input   textinput.Model
	help    help.Model
	spinner spinner.Model
	keys    keyMap

	focus   focus
	status  health.Status
	alert   string
	pending int
	width   int
	height  int
}

func New(opt Options) Model {
	if opt.Context == nil {
		opt.Context = context.Background()
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard, "", 0)
	}
	if opt.HealthInterval <= 0 {
		opt.HealthInterval = 30 * time.Second
	}

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.Styles.PaginationStyle = ui.Current().Muted

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:      opt.Context,
		client:   opt.Client,
		monitor:  opt.Monitor,
		interval: opt.HealthInterval,
		logger:   opt.Logger,
		store:    store.New(),
		list:     l,
		input:    ti,
		help:     help.New(),
		spinner:  sp,
		keys:     defaultKeyMap(),
		focus:    focusInput,
		status:   health.Unknown,
		// the startup fetch issued by Init
		pending: 1,
	}
	m.render()
	return m
}

// Init probes health, starts the probe timer and loads the list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		checkHealth(m.ctx, m.monitor),
		scheduleHealth(m.interval),
		fetchTasks(m.ctx, m.client, m.store.Next()),
		m.spinner.Tick,
		textinput.Blink,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case healthTickMsg:
		return m, tea.Batch(checkHealth(m.ctx, m.monitor), scheduleHealth(m.interval))

	case healthMsg:
		m.status = msg.status
		return m, nil

	case tasksFetchedMsg:
		m.settle()
		if msg.err != nil {
			m.logger.Printf("Error fetching tasks: %v", msg.err)
			return m, nil
		}
		if m.store.Apply(store.Update{Seq: msg.seq, Kind: store.Replace, Tasks: msg.tasks}) == store.Superseded {
			m.logger.Printf("fetch #%d superseded by a newer result, fetching again", msg.seq)
			return m, m.fetch()
		}
		return m, m.render()

	case taskCreatedMsg:
		m.settle()
		if msg.err != nil {
			m.logger.Printf("Error adding task: %v", msg.err)
			m.alert = alertAddFailed
			return m, nil
		}
		m.store.Apply(store.Update{Seq: msg.seq, Kind: store.Append, Task: msg.task})
		m.input.Reset()
		return m, m.render()

	case taskDeletedMsg:
		m.settle()
		if msg.err != nil {
			m.logger.Printf("Error deleting task %s: %v", msg.id, msg.err)
			return m, nil
		}
		m.store.Apply(store.Update{Seq: msg.seq, Kind: store.Remove, ID: msg.id})
		return m, m.render()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	// alerts are modal: the key that dismisses one does nothing else
	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus((m.focus + 1) % 3)
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.setFocus((m.focus + 2) % 3)
	}

	switch m.focus {
	case focusInput:
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m, m.addTask()
		case key.Matches(msg, m.keys.Leave):
			return m, m.setFocus(focusList)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case focusSubmit:
		switch {
		case key.Matches(msg, m.keys.Press):
			return m, m.addTask()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil

	default:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Delete):
			if it, ok := m.list.SelectedItem().(rowItem); ok {
				return m, m.deleteTask(it.row)
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.fetch()
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
}

// addTask validates the field and issues the create call.
func (m *Model) addTask() tea.Cmd {
	title := strings.TrimSpace(m.input.Value())
	if title == "" {
		m.alert = alertEmptyTitle
		return nil
	}
	m.pending++
	return createTask(m.ctx, m.client, m.store.Next(), title)
}

func (m *Model) deleteTask(row view.Row) tea.Cmd {
	m.pending++
	return deleteTask(m.ctx, m.client, m.store.Next(), row.DeleteID)
}

func (m *Model) fetch() tea.Cmd {
	m.pending++
	return fetchTasks(m.ctx, m.client, m.store.Next())
}

// render rebuilds the whole list from the store; nothing is diffed.
func (m *Model) render() tea.Cmd {
	m.view = view.Render(m.store.Tasks())
	items := make([]list.Item, 0, len(m.view.Rows))
	for _, r := range m.view.Rows {
		items = append(items, rowItem{row: r})
	}
	return m.list.SetItems(items)
}

// settle marks one in-flight request as finished.
func (m *Model) settle() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.list.SetDelegate(rowDelegate{focused: f == focusList})
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.input.Width = w - 14
	// header, input row, help and the panel frame
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
	m.help.Width = w
}

func (m Model) View() string {
	t := ui.Current()

	header := fmt.Sprintf("%s  %s %s", t.Title.Render("Tasks"), ui.StatusIndicator(m.status), t.Muted.Render("backend "+m.status.String()))
	if m.pending > 0 {
		header += "  " + m.spinner.View()
	}

	button := t.Muted.Render("[ Add ]")
	if m.focus == focusSubmit {
		button = t.Selected.Render("[ Add ]")
	}
	inputRow := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", button)

	var body string
	switch {
	case m.alert != "":
		box := lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 2)
		body = box.Render(t.Error.Render(m.alert) + "\n" + t.Muted.Render("press any key"))
	case m.view.Empty():
		body = t.Muted.Render(m.view.Placeholder)
	default:
		body = m.list.View()
	}

	helpLine := m.help.ShortHelpView(m.keys.helpFor(m.focus))
	return ui.PanelStyle().Render(strings.Join([]string{header, "", inputRow, "", body, "", helpLine}, "\n"))
}

// Run starts the program in the alternate screen and blocks until it quits.
func Run(opt Options) error {
	m := New(opt)
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.Context != nil {
		popts = append(popts, tea.WithContext(opt.Context))
	}
	_, err := tea.NewProgram(m, popts...).Run()
	return err
}
