package core

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Categories are the fixed task lists the demo serves. Unknown categories
// are a not-found condition, not a validation layer.
var Categories = []string{"personal", "work", "shopping"}

type Task struct {
	ID   string
	Name string
	Done bool
}

// Store keeps tasks in memory for the lifetime of the process. There is no
// persistence; the mutex only guards the map against concurrent requests.
type Store struct {
	mu    sync.RWMutex
	tasks map[string][]Task
}

func NewStore() *Store {
	tasks := make(map[string][]Task, len(Categories))
	for _, category := range Categories {
		tasks[category] = []Task{}
	}
	return &Store{tasks: tasks}
}

func (s *Store) List(category string) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks, ok := s.tasks[category]
	if !ok {
		return nil, fmt.Errorf("%w: category %s", ErrNotFound, category)
	}

	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out, nil
}

func (s *Store) Add(category, name string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[category]; !ok {
		return Task{}, fmt.Errorf("%w: category %s", ErrNotFound, category)
	}

	task := Task{ID: uuid.NewString(), Name: name}
	s.tasks[category] = append(s.tasks[category], task)
	return task, nil
}

func (s *Store) Get(category, id string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks, ok := s.tasks[category]
	if !ok {
		return Task{}, fmt.Errorf("%w: category %s", ErrNotFound, category)
	}
	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
}

// Toggle flips a task between done and not done and returns the new state.
func (s *Store) Toggle(category, id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, ok := s.tasks[category]
	if !ok {
		return Task{}, fmt.Errorf("%w: category %s", ErrNotFound, category)
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Done = !tasks[i].Done
			return tasks[i], nil
		}
	}
	return Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
}

// Delete removes a task and reports how many tasks the category still holds.
func (s *Store) Delete(category, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, ok := s.tasks[category]
	if !ok {
		return 0, fmt.Errorf("%w: category %s", ErrNotFound, category)
	}
	for i := range tasks {
		if tasks[i].ID == id {
			s.tasks[category] = append(tasks[:i], tasks[i+1:]...)
			return len(s.tasks[category]), nil
		}
	}
	return 0, fmt.Errorf("%w: task %s", ErrNotFound, id)
}
