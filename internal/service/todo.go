package service

import (
	"context"
	"errors"
	"strings"

	"github.com/blackash/todo-api/internal/crypto"
	"github.com/blackash/todo-api/internal/model"
)

var (
	ErrTextRequired   = errors.New("text is required")
	ErrTodoIDRequired = errors.New("todo id is required")
)

// TodoService handles the per-user todo list. Every mutation reads the
// current list, computes the new one in memory and writes it back whole;
// concurrent edits to the same list can lose updates, which the stored data
// shape accepts.
type TodoService struct {
	store UserStore
}

// NewTodoService creates a new TodoService.
func NewTodoService(store UserStore) *TodoService {
	return &TodoService{store: store}
}

// Add appends a new task with a fresh id and isCompleted false.
func (s *TodoService) Add(ctx context.Context, userID, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrTextRequired
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	id, err := crypto.TokenID(crypto.TodoIDLength)
	if err != nil {
		return err
	}

	todos := append(user.Todos, model.Todo{
		ID:          id,
		Text:        text,
		IsCompleted: false,
	})

	return s.store.ReplaceTodos(ctx, userID, todos)
}

// List returns the user's tasks in stored order. Never returns nil.
func (s *TodoService) List(ctx context.Context, userID string) ([]model.Todo, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Todos == nil {
		return []model.Todo{}, nil
	}
	return user.Todos, nil
}

// Update replaces the task matching req.ID wholesale. An id with no match
// leaves the list unchanged and still succeeds.
func (s *TodoService) Update(ctx context.Context, userID string, req model.UpdateTodoRequest) error {
	if req.ID == "" {
		return ErrTodoIDRequired
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	todos := make([]model.Todo, len(user.Todos))
	for i, todo := range user.Todos {
		if todo.ID == req.ID {
			todos[i] = model.Todo{
				ID:          req.ID,
				Text:        req.Todo,
				IsCompleted: req.IsCompleted,
			}
			continue
		}
		todos[i] = todo
	}

	return s.store.ReplaceTodos(ctx, userID, todos)
}

// Delete removes the task with the given id. A missing id leaves the list
// unchanged and still succeeds.
func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	todos := make([]model.Todo, 0, len(user.Todos))
	for _, todo := range user.Todos {
		if todo.ID != todoID {
			todos = append(todos, todo)
		}
	}

	return s.store.ReplaceTodos(ctx, userID, todos)
}
