package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blackash/todo-api/internal/middleware"
	"github.com/blackash/todo-api/internal/model"
	"github.com/blackash/todo-api/internal/service"
)

// TodoHandler handles the per-user todo list endpoints.
type TodoHandler struct {
	service *service.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{service: svc}
}

// HandleAddTodo handles PUT /api/user/todos requests.
func (h *TodoHandler) HandleAddTodo(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.AddTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse("invalid request body"))
		return
	}

	if err := h.service.Add(r.Context(), claims.UserID, req.Text); err != nil {
		if errors.Is(err, service.ErrTextRequired) {
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
			return
		}
		serverError(w, "add todo", err)
		return
	}

	writeJSON(w, http.StatusOK, "Todo Added Successfully")
}

// HandleListTodos handles GET /api/user/todos requests.
func (h *TodoHandler) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	todos, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		serverError(w, "list todos", err)
		return
	}

	writeJSON(w, http.StatusOK, model.TodosResponse{Todos: todos})
}

// HandleUpdateTodo handles PATCH /api/user/todos requests.
func (h *TodoHandler) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse("invalid request body"))
		return
	}

	if err := h.service.Update(r.Context(), claims.UserID, req); err != nil {
		if errors.Is(err, service.ErrTodoIDRequired) {
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
			return
		}
		serverError(w, "update todo", err)
		return
	}

	writeJSON(w, http.StatusOK, model.StatusResponse{
		Message: "Todo Updated Successfully",
		Status:  "success",
	})
}

// HandleDeleteTodo handles DELETE /api/user/todos/{id} requests.
func (h *TodoHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	todoID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), claims.UserID, todoID); err != nil {
		serverError(w, "delete todo", err)
		return
	}

	writeJSON(w, http.StatusOK, model.StatusResponse{
		Message: "Todo Deleted Successfully",
		Status:  "success",
	})
}
