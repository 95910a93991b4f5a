package handler

import (
	"context"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blackash/todo-api/internal/middleware"
	"github.com/blackash/todo-api/internal/model"
	"github.com/blackash/todo-api/internal/repository"
	"github.com/blackash/todo-api/internal/service"
)

const testSecret = "test-secret"

// memStore is an in-memory service.UserStore for wiring real services under
// httptest.
type memStore struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*model.User)}
}

func (m *memStore) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	m.users[user.ID.Hex()] = &stored
	return nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memStore) GetByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	cp.Todos = append([]model.Todo(nil), u.Todos...)
	return &cp, nil
}

func (m *memStore) ReplaceTodos(_ context.Context, id string, todos []model.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Todos = append([]model.Todo(nil), todos...)
	return nil
}

func (m *memStore) SetVerified(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u.Verified = true
			return nil
		}
	}
	return repository.ErrUserNotFound
}

type nopSender struct{}

func (nopSender) Send(to, subject, body string) error { return nil }

// newTestRouter wires the full route table over in-memory stores.
func newTestRouter(store *memStore) chi.Router {
	authService := service.NewAuthService(store, testSecret, time.Hour)
	todoService := service.NewTodoService(store)
	otpService := service.NewOTPService(repository.NewMemoryOTPStore(time.Minute), nopSender{}, store)

	authHandler := NewAuthHandler(authService)
	todoHandler := NewTodoHandler(todoService)
	otpHandler := NewOTPHandler(otpService)

	r := chi.NewRouter()
	r.Post("/api/register/", authHandler.HandleRegister)
	r.Post("/api/login/", authHandler.HandleLogin)
	r.Post("/api/signout", authHandler.HandleSignout)
	r.Post("/api/register-otp", otpHandler.HandleRequestOTP)
	r.Post("/api/verify-otp", otpHandler.HandleVerifyOTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(testSecret))
		r.Get("/api/username/", authHandler.HandleUsername)
		r.Get("/api/user/profile/", authHandler.HandleProfile)
		r.Put("/api/user/todos", todoHandler.HandleAddTodo)
		r.Get("/api/user/todos", todoHandler.HandleListTodos)
		r.Patch("/api/user/todos", todoHandler.HandleUpdateTodo)
		r.Delete("/api/user/todos/{id}", todoHandler.HandleDeleteTodo)
	})

	return r
}
