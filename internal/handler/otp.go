package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blackash/todo-api/internal/model"
	"github.com/blackash/todo-api/internal/service"
)

// OTPHandler handles the email verification code endpoints. These respond
// with plain text rather than JSON envelopes.
type OTPHandler struct {
	service *service.OTPService
}

// NewOTPHandler creates a new OTPHandler.
func NewOTPHandler(svc *service.OTPService) *OTPHandler {
	return &OTPHandler{service: svc}
}

// HandleRequestOTP handles POST /api/register-otp requests.
func (h *OTPHandler) HandleRequestOTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.OTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.service.Request(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			writeText(w, http.StatusBadRequest, "Email is required.")
		case errors.Is(err, service.ErrEmailDelivery):
			writeText(w, http.StatusInternalServerError, "Error sending OTP email.")
		default:
			writeText(w, http.StatusInternalServerError, "Error sending OTP email.")
		}
		return
	}

	writeText(w, http.StatusOK, "Registration successful! Please check your email for the OTP.")
}

// HandleVerifyOTP handles POST /api/verify-otp requests.
func (h *OTPHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ok, err := h.service.Verify(r.Context(), req.Email, req.OTP)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if !ok {
		writeText(w, http.StatusBadRequest, "Invalid OTP.")
		return
	}

	writeText(w, http.StatusOK, "Email verified successfully!")
}
