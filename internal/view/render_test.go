package view

import (
	"testing"

	"github.com/Makepad-fr/tasks/internal/model"
)

func TestRenderEmpty(t *testing.T) {
	for _, tasks := range [][]model.Task{nil, {}} {
		v := Render(tasks)
		if !v.Empty() || len(v.Rows) != 0 {
			t.Fatalf("Render(%v) rows = %+v", tasks, v.Rows)
		}
		if v.Placeholder != Placeholder {
			t.Errorf("Placeholder = %q", v.Placeholder)
		}
	}
}

func TestRenderRowsInStoreOrder(t *testing.T) {
	tasks := []model.Task{{ID: "3", Title: "C"}, {ID: "1", Title: "A"}, {ID: "x", Title: "B"}}
	v := Render(tasks)

	if v.Placeholder != "" {
		t.Errorf("Placeholder = %q, want none", v.Placeholder)
	}
	if len(v.Rows) != len(tasks) {
		t.Fatalf("rows = %d, want %d", len(v.Rows), len(tasks))
	}
	for i, r := range v.Rows {
		if r.Title != tasks[i].Title || r.DeleteID != tasks[i].ID {
			t.Errorf("row %d = %+v, want title %q id %q", i, r, tasks[i].Title, tasks[i].ID)
		}
	}
}

func TestRenderAfterDeleteScenario(t *testing.T) {
	v := Render([]model.Task{{ID: "2", Title: "B"}})
	if len(v.Rows) != 1 || v.Rows[0].Title != "B" || v.Rows[0].DeleteID != "2" {
		t.Errorf("rows = %+v", v.Rows)
	}
}
