// Package store holds the client's ordered view of the remote collection.
//
// The Store has a single writer: every change goes through Apply, and every
// change carries the sequence number its operation was issued with. A
// wholesale replace that was issued before an already-applied result is
// stale and is not applied.
package store

import "github.com/Makepad-fr/tasks/internal/model"

type Kind int

const (
	Replace Kind = iota
	Append
	Remove
)

func (k Kind) String() string {
	switch k {
	case Replace:
		return "replace"
	case Append:
		return "append"
	case Remove:
		return "remove"
	}
	return "unknown"
}

// Update is the outcome of one successful sync call.
type Update struct {
	Seq   uint64
	Kind  Kind
	Tasks []model.Task // Replace
	Task  model.Task   // Append
	ID    model.ID     // Remove
}

type Outcome int

const (
	Applied Outcome = iota
	// Dropped: the update changed nothing (duplicate append, absent id).
	Dropped
	// Superseded: a replace lost to a newer result; the caller should fetch again.
	Superseded
)

type Store struct {
	tasks   []model.Task
	issued  uint64
	applied uint64
}

func New() *Store {
	return &Store{tasks: []model.Task{}}
}

// Next hands out the sequence number for an operation about to be issued.
func (s *Store) Next() uint64 {
	s.issued++
	return s.issued
}

func (s *Store) Apply(u Update) Outcome {
	switch u.Kind {
	case Replace:
		if u.Seq < s.applied {
			return Superseded
		}
		s.mark(u.Seq)
		s.tasks = make([]model.Task, len(u.Tasks))
		copy(s.tasks, u.Tasks)
		return Applied

	case Append:
		s.mark(u.Seq)
		if s.index(u.Task.ID) >= 0 {
			return Dropped
		}
		s.tasks = append(s.tasks, u.Task)
		return Applied

	case Remove:
		s.mark(u.Seq)
		i := s.index(u.ID)
		if i < 0 {
			return Dropped
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		return Applied
	}
	return Dropped
}

// Tasks returns a copy in store order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) mark(seq uint64) {
	if seq > s.applied {
		s.applied = seq
	}
}

func (s *Store) index(id model.ID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
