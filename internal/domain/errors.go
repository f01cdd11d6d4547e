package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
	ErrConflict     = errors.New("conflict with current state")
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username already taken")
)

// Billing computation errors. All of them are local, recoverable validation
// failures: handlers map them to 4xx responses, never to a crash.
var (
	ErrInvalidAmount   = errors.New("payment amount must be greater than zero")
	ErrOverpayment     = errors.New("payment exceeds outstanding balance")
	ErrLineIndex       = errors.New("service line index out of range")
	ErrLastServiceLine = errors.New("an invoice must keep at least one service line")
	ErrUnknownStatus   = errors.New("unknown invoice status")
)
