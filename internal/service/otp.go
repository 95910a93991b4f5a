package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blackash/todo-api/internal/crypto"
	"github.com/blackash/todo-api/internal/mail"
	"github.com/blackash/todo-api/internal/repository"
)

var ErrEmailDelivery = errors.New("error sending OTP email")

// OTPService handles emailed verification codes for registration.
type OTPService struct {
	codes  repository.OTPStore
	sender mail.Sender
	store  UserStore
}

// NewOTPService creates a new OTPService.
func NewOTPService(codes repository.OTPStore, sender mail.Sender, store UserStore) *OTPService {
	return &OTPService{
		codes:  codes,
		sender: sender,
		store:  store,
	}
}

// Request generates a fresh code for the email, overwriting any pending one,
// and dispatches it. The pending record is stored before dispatch, so a
// delivery failure leaves a code behind; the store's TTL reclaims it.
func (s *OTPService) Request(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmailRequired
	}

	code, err := crypto.NumericCode(crypto.OTPLength)
	if err != nil {
		return err
	}

	if err := s.codes.Put(ctx, email, code); err != nil {
		return err
	}

	body := fmt.Sprintf("Your OTP code is: %s for confirmation on todo", code)
	if err := s.sender.Send(email, "Your OTP Code", body); err != nil {
		slog.Error("otp dispatch failed", "email", email, "error", err)
		return ErrEmailDelivery
	}

	return nil
}

// Verify consumes the pending code for the email if it matches. On success
// an existing account with that email is marked verified; verification is
// not a precondition for registration or login.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	ok, err := s.codes.Verify(ctx, email, code)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := s.store.SetVerified(ctx, email); err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		slog.Warn("could not persist email verification", "email", email, "error", err)
	}

	return true, nil
}
