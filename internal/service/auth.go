package service

import (
	"context"
	"errors"
	"time"

	"github.com/blackash/todo-api/internal/crypto"
	"github.com/blackash/todo-api/internal/model"
	"github.com/blackash/todo-api/internal/repository"
)

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMissingCredentials = errors.New("email or password is missing")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration, login and profile logic.
type AuthService struct {
	store     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account with an empty todo list.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if req.Email == "" {
		return model.RegisterResponse{}, ErrEmailRequired
	}
	if req.Username == "" {
		return model.RegisterResponse{}, ErrUsernameRequired
	}
	if req.Password == "" {
		return model.RegisterResponse{}, ErrPasswordRequired
	}

	if _, err := s.store.GetByUsername(ctx, req.Username); err == nil {
		return model.RegisterResponse{}, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.RegisterResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Todos:        []model.Todo{},
	}

	if err := s.store.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.RegisterResponse{}, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return model.RegisterResponse{}, ErrUsernameTaken
		}
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		Status: "success",
		User:   toUserResponse(user),
	}, nil
}

// Login authenticates a user by email and password and issues a session token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.LoginResponse{}, ErrMissingCredentials
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrUserNotFound
		}
		return model.LoginResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	payload := model.SessionPayload{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	}

	token, err := crypto.GenerateToken(payload.ID, payload.Username, payload.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Status:  "success",
		Payload: payload,
		Token:   token,
	}, nil
}

// Username returns the username of the authenticated user.
func (s *AuthService) Username(ctx context.Context, userID string) (string, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// Profile returns the user summary with task counts computed from the
// embedded list.
func (s *AuthService) Profile(ctx context.Context, userID string) (model.Profile, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}

	completed := 0
	for _, todo := range user.Todos {
		if todo.IsCompleted {
			completed++
		}
	}

	return model.Profile{
		ID:            user.ID.Hex(),
		Email:         user.Email,
		Username:      user.Username,
		TotalTask:     len(user.Todos),
		TaskCompleted: completed,
		TaskRemaining: len(user.Todos) - completed,
	}, nil
}

func toUserResponse(user *model.User) model.UserResponse {
	todos := user.Todos
	if todos == nil {
		todos = []model.Todo{}
	}
	return model.UserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Todos:    todos,
	}
}
