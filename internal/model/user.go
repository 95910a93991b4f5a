package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a user document in the users collection. The todo list is
// embedded: the user owns it exclusively and list writes replace it wholesale.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Verified     bool               `bson:"verified"`
	Todos        []Todo             `bson:"todos"`
	CreatedAt    primitive.DateTime `bson:"createdAt"`
	UpdatedAt    primitive.DateTime `bson:"updatedAt"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Todos    []Todo `json:"todos"`
}

// SessionPayload is the identity bundle embedded in session tokens and echoed
// back by the login response.
type SessionPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterResponse is the envelope returned by a successful registration.
type RegisterResponse struct {
	Status string       `json:"status"`
	User   UserResponse `json:"user"`
}

// LoginResponse is the envelope returned by a successful login.
type LoginResponse struct {
	Status  string         `json:"status"`
	Payload SessionPayload `json:"payload"`
	Token   string         `json:"token"`
}

// Profile summarizes a user and their task counts.
type Profile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Username      string `json:"username"`
	TotalTask     int    `json:"totalTask"`
	TaskCompleted int    `json:"taskCompleted"`
	TaskRemaining int    `json:"taskRemaining"`
}
