package handler

import (
	"net/http"
	"strings"
	"testing"
)

func TestRequestOTPWire(t *testing.T) {
	r := newTestRouter(newMemStore())

	rec := doJSON(t, r, http.MethodPost, "/api/register-otp", "", map[string]string{
		"email": "a@x.com",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "check your email") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRequestOTPMissingEmail(t *testing.T) {
	r := newTestRouter(newMemStore())

	rec := doJSON(t, r, http.MethodPost, "/api/register-otp", "", map[string]string{})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestVerifyOTPInvalid(t *testing.T) {
	r := newTestRouter(newMemStore())

	rec := doJSON(t, r, http.MethodPost, "/api/verify-otp", "", map[string]string{
		"email": "a@x.com",
		"otp":   "0000",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if rec.Body.String() != "Invalid OTP." {
		t.Errorf("body = %q, want %q", rec.Body.String(), "Invalid OTP.")
	}
}
