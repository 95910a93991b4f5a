package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blackash/todo-api/internal/model"
	"github.com/blackash/todo-api/internal/repository"
)

// fakeStore is an in-memory UserStore. Reads return copies so callers see the
// same read-then-write-whole-list behavior the Mongo repository has.
type fakeStore struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]*model.User)}
}

func (f *fakeStore) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}

	user.ID = primitive.NewObjectID()
	stored := *user
	stored.Todos = append([]model.Todo(nil), user.Todos...)
	f.users[user.ID.Hex()] = &stored
	return nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (f *fakeStore) ReplaceTodos(_ context.Context, id string, todos []model.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Todos = append([]model.Todo(nil), todos...)
	return nil
}

func (f *fakeStore) SetVerified(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			u.Verified = true
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func copyUser(u *model.User) *model.User {
	cp := *u
	cp.Todos = append([]model.Todo(nil), u.Todos...)
	return &cp
}
