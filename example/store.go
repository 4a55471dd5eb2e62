package main

import (
	"sort"
	"sync"

	"github.com/pthm/compkit/example/components"
)

// Store is an in-memory todo store.
type Store struct {
	mu     sync.RWMutex
	todos  map[int]components.Todo
	nextID int
}

// NewStore creates a store with sample data.
func NewStore() *Store {
	s := &Store{todos: make(map[int]components.Todo), nextID: 1}
	s.Add("Define the component library", "high")
	s.Add("Render the todo page", "")
	s.Toggle(s.Add("Pick a class naming scheme", "low"))
	return s
}

// Add stores a todo and returns its ID.
func (s *Store) Add(title, priority string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.todos[id] = components.Todo{ID: id, Title: title, Priority: priority}
	return id
}

// Toggle flips a todo's done state.
func (s *Store) Toggle(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.todos[id]; ok {
		t.Done = !t.Done
		s.todos[id] = t
	}
}

// List returns todos ordered by ID.
func (s *Store) List() []components.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]components.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
