package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	Press     key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	Up        key.Binding
	Down      key.Binding
	Leave     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Press:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpFor lists the bindings that make sense for the focused control.
func (k keyMap) helpFor(f focus) []key.Binding {
	switch f {
	case focusInput:
		return []key.Binding{k.Submit, k.NextFocus, k.Leave}
	case focusSubmit:
		return []key.Binding{k.Press, k.NextFocus, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Delete, k.Refresh, k.NextFocus, k.Quit}
	}
}
