package server

import (
	"strconv"
	"sync"

	"github.com/Makepad-fr/tasks/internal/model"
)

// Store keeps the collection in memory. Ids come from a counter and are never
// reused, even after deletes.
type Store struct {
	mu     sync.Mutex
	todos  []model.Task
	lastID int64
}

func NewStore() *Store {
	return &Store{todos: []model.Task{}}
}

func (s *Store) List() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *Store) Create(title string) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	t := model.Task{ID: model.ID(strconv.FormatInt(s.lastID, 10)), Title: title}
	s.todos = append(s.todos, t)
	return t
}

// Delete drops every record with the id and reports whether any existed.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := model.ID(strconv.FormatInt(id, 10))
	kept := s.todos[:0]
	for _, t := range s.todos {
		if t.ID != key {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(s.todos)
	s.todos = kept
	return removed
}
