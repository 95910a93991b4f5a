package service

import (
	"context"

	"github.com/blackash/todo-api/internal/model"
)

// UserStore is the persistence surface the services depend on. The Mongo
// repository satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	ReplaceTodos(ctx context.Context, id string, todos []model.Todo) error
	SetVerified(ctx context.Context, email string) error
}
