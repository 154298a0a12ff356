package store

import (
	"reflect"
	"testing"

	"github.com/Makepad-fr/tasks/internal/model"
)

func seeded(t *testing.T, tasks ...model.Task) *Store {
	t.Helper()
	s := New()
	if got := s.Apply(Update{Seq: s.Next(), Kind: Replace, Tasks: tasks}); got != Applied {
		t.Fatalf("seed replace = %v", got)
	}
	return s
}

func TestReplaceDiscardsLocalState(t *testing.T) {
	s := seeded(t, model.Task{ID: "1", Title: "A"}, model.Task{ID: "2", Title: "B"})
	s.Apply(Update{Seq: s.Next(), Kind: Replace, Tasks: []model.Task{{ID: "3", Title: "C"}}})

	want := []model.Task{{ID: "3", Title: "C"}}
	if got := s.Tasks(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tasks = %+v, want %+v", got, want)
	}
}

func TestAppendKeepsArrivalOrder(t *testing.T) {
	s := seeded(t, model.Task{ID: "1", Title: "A"})
	s.Apply(Update{Seq: s.Next(), Kind: Append, Task: model.Task{ID: "2", Title: "B"}})
	s.Apply(Update{Seq: s.Next(), Kind: Append, Task: model.Task{ID: "3", Title: "C"}})

	got := s.Tasks()
	if len(got) != 3 || got[2].Title != "C" || got[2].ID != "3" {
		t.Errorf("Tasks = %+v", got)
	}
}

func TestAppendDuplicateIDDropped(t *testing.T) {
	s := seeded(t, model.Task{ID: "1", Title: "A"})
	if got := s.Apply(Update{Seq: s.Next(), Kind: Append, Task: model.Task{ID: "1", Title: "A"}}); got != Dropped {
		t.Fatalf("Apply = %v, want Dropped", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestRemoveScenario(t *testing.T) {
	s := seeded(t, model.Task{ID: "1", Title: "A"}, model.Task{ID: "2", Title: "B"})
	if got := s.Apply(Update{Seq: s.Next(), Kind: Remove, ID: "1"}); got != Applied {
		t.Fatalf("Apply = %v", got)
	}
	want := []model.Task{{ID: "2", Title: "B"}}
	if got := s.Tasks(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tasks = %+v, want %+v", got, want)
	}
}

func TestRemoveEveryPresentID(t *testing.T) {
	base := []model.Task{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}, {ID: "3", Title: "C"}}
	for _, victim := range base {
		s := seeded(t, base...)
		s.Apply(Update{Seq: s.Next(), Kind: Remove, ID: victim.ID})
		if s.Len() != len(base)-1 {
			t.Errorf("remove %s: Len = %d", victim.ID, s.Len())
		}
		for _, task := range s.Tasks() {
			if task.ID == victim.ID {
				t.Errorf("remove %s: id still present", victim.ID)
			}
		}
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := seeded(t, model.Task{ID: "1", Title: "A"})
	if got := s.Apply(Update{Seq: s.Next(), Kind: Remove, ID: "9"}); got != Dropped {
		t.Fatalf("Apply = %v, want Dropped", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d", s.Len())
	}
}

func TestStaleReplaceDoesNotUndelete(t *testing.T) {
	s := seeded(t, model.Task{ID: "1", Title: "A"}, model.Task{ID: "2", Title: "B"})

	fetchSeq := s.Next() // slow fetch goes out first
	deleteSeq := s.Next()
	s.Apply(Update{Seq: deleteSeq, Kind: Remove, ID: "1"})

	got := s.Apply(Update{Seq: fetchSeq, Kind: Replace, Tasks: []model.Task{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}}})
	if got != Superseded {
		t.Fatalf("Apply = %v, want Superseded", got)
	}
	if s.Len() != 1 || s.Tasks()[0].ID != "2" {
		t.Errorf("Tasks = %+v, want only B", s.Tasks())
	}
}

func TestOlderReplaceLosesToNewerReplace(t *testing.T) {
	s := New()
	first, second := s.Next(), s.Next()
	s.Apply(Update{Seq: second, Kind: Replace, Tasks: []model.Task{{ID: "2", Title: "new"}}})
	if got := s.Apply(Update{Seq: first, Kind: Replace, Tasks: []model.Task{{ID: "1", Title: "old"}}}); got != Superseded {
		t.Fatalf("Apply = %v, want Superseded", got)
	}
	if s.Tasks()[0].Title != "new" {
		t.Errorf("Tasks = %+v", s.Tasks())
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	s := seeded(t, model.Task{ID: "1", Title: "A"})
	got := s.Tasks()
	got[0].Title = "mutated"
	if s.Tasks()[0].Title != "A" {
		t.Error("Tasks leaked internal slice")
	}
}
