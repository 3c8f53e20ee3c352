package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers map these to HTTP statuses.
var (
	ErrNotFound              = errors.New("not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDuplicateRegistration = errors.New("registration already exists for this event")
	ErrAlreadyOnWaitingList  = errors.New("already on the waiting list for this event")
	ErrInvalidPaymentType    = errors.New("invalid payment type")
)

// ErrorCode builds an internal error code from a module number and an error
// enum index, e.g. ErrorCode(1, 3) == "10003".
func ErrorCode(module, index int) string {
	return fmt.Sprintf("%d00%02d", module, index)
}

// Registration module error codes surfaced to API clients.
var (
	CodeEventNotFound         = ErrorCode(1, 1)
	CodeInvalidPaymentType    = ErrorCode(1, 2)
	CodeDuplicateRegistration = ErrorCode(1, 3)
)
