// Package view turns the task store into a declarative description of the
// list. Applying it to a terminal is the tui package's job.
package view

import "github.com/Makepad-fr/tasks/internal/model"

const Placeholder = "No tasks yet. Add one above! 🚀"

// Row is one visible task with the id its delete control is bound to.
type Row struct {
	Title    string
	DeleteID model.ID
}

// View is either the placeholder or a list of rows, never both.
type View struct {
	Placeholder string
	Rows        []Row
}

func (v View) Empty() bool { return len(v.Rows) == 0 }

func Render(tasks []model.Task) View {
	if len(tasks) == 0 {
		return View{Placeholder: Placeholder}
	}
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, Row{Title: t.Title, DeleteID: t.ID})
	}
	return View{Rows: rows}
}
