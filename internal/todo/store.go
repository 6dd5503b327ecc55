// Package todo is a small in-memory todo list served next to the catalog.
package todo

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"catalog-service/internal/apperr"
	"catalog-service/internal/models"

	"github.com/google/uuid"
)

// Store keeps todo items in insertion order
type Store struct {
	mu    sync.Mutex
	items []models.TodoItem
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// List returns a snapshot of all items
func (s *Store) List() []models.TodoItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.TodoItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Create(title string) (models.TodoItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.TodoItem{}, fmt.Errorf("%w: title is required", apperr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.TodoItem{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: s.now(),
	}
	s.items = append(s.items, item)
	return item, nil
}

func (s *Store) SetCompleted(id string, completed bool) (models.TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.TodoItem{}, fmt.Errorf("%w: todo %s", apperr.ErrNotFound, id)
	}
	s.items[i].Completed = completed
	return s.items[i], nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: todo %s", apperr.ErrNotFound, id)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// caller holds mu
func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
