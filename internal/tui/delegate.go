package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tasks/internal/ui"
	"github.com/Makepad-fr/tasks/internal/view"
)

// rowItem adapts a rendered row to bubbles/list.Item.
type rowItem struct {
	row view.Row
}

func (i rowItem) Title() string       { return i.row.Title }
func (i rowItem) Description() string { return "" }
func (i rowItem) FilterValue() string { return i.row.Title }

// Custom delegate to control how rows render (single line)
type rowDelegate struct {
	focused bool
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}
	t := ui.Current()

	prefix := "  "
	button := t.Muted.Render("[Delete]")
	if index == m.Index() && d.focused {
		prefix = t.Selected.Render(">") + " "
		button = t.Error.Render("[Delete]")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, t.Muted.Render(t.SymBullet), it.row.Title, button)
}
