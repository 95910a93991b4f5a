package model

// Todo is a single task embedded in its owner's user document. The id is
// unique within the owning list and assigned at creation.
type Todo struct {
	ID          string `bson:"id" json:"id"`
	Text        string `bson:"text" json:"text"`
	IsCompleted bool   `bson:"isCompleted" json:"isCompleted"`
}

// AddTodoRequest represents a request to append a new task.
type AddTodoRequest struct {
	Text string `json:"text"`
}

// UpdateTodoRequest represents a request to replace an existing task.
// The wire field for the new text is "todo".
type UpdateTodoRequest struct {
	ID          string `json:"id"`
	Todo        string `json:"todo"`
	IsCompleted bool   `json:"isCompleted"`
}

// TodosResponse wraps a user's task list.
type TodosResponse struct {
	Todos []Todo `json:"todos"`
}

// StatusResponse is the generic confirmation envelope for mutations.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// OTPRequest represents a request to send a verification code.
type OTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest represents a code verification attempt.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
