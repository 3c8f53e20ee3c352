package domain

import (
	"context"
	"strings"
	"time"
)

// PaymentType is how a participant intends to pay for an event.
type PaymentType string

const (
	PaymentTypeCash PaymentType = "CASH"
	PaymentTypeQR   PaymentType = "QR"
)

// ParsePaymentType normalizes and validates a payment type value.
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(strings.ToUpper(strings.TrimSpace(s))) {
	case PaymentTypeCash:
		return PaymentTypeCash, nil
	case PaymentTypeQR:
		return PaymentTypeQR, nil
	default:
		return "", ErrInvalidPaymentType
	}
}

// Registration is a participant's registration for an event. Deleted is a
// soft-delete flag: at most one active (deleted=false) registration may exist
// per (event, email, first name, last name) tuple, enforced by a partial
// unique index.
// swagger:model Registration
type Registration struct {
	ID          string      `json:"id"`
	EventID     string      `json:"event_id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phone_number"`
	PaymentType PaymentType `json:"payment_type"`
	Attended    bool        `json:"attended"`
	Deleted     bool        `json:"deleted"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewRegistration returns an active Registration. ID is set by the repository on create.
func NewRegistration(eventID, firstName, lastName, email, phoneNumber string, paymentType PaymentType, createdAt time.Time) *Registration {
	return &Registration{
		EventID:     eventID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phoneNumber,
		PaymentType: paymentType,
		CreatedAt:   createdAt,
	}
}

// RegistrationWithPayment bundles a registration with its payment state for
// admin participant listings.
type RegistrationWithPayment struct {
	Registration
	Paid           bool   `json:"paid"`
	VariableSymbol string `json:"variable_symbol,omitempty"`
}

// RegistrationRepository defines storage operations for registrations.
// The *WithHistory methods run their writes and the history append in one
// database transaction.
type RegistrationRepository interface {
	GetByID(ctx context.Context, id string) (*Registration, error)
	// GetByEventAndIdentity finds the registration matching the identity tuple
	// with the given deleted flag.
	GetByEventAndIdentity(ctx context.Context, eventID, email, firstName, lastName string, deleted bool) (*Registration, error)
	GetActiveByEventAndEmail(ctx context.Context, eventID, email string) (*Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*RegistrationWithPayment, error)
	CountActiveByEventID(ctx context.Context, eventID string) (int, error)
	CreateWithHistory(ctx context.Context, reg *Registration, entry *HistoryEntry) error
	// ReactivateWithHistory clears the deleted flag on reg.ID, refreshing
	// phone number, payment type and created_at from reg.
	ReactivateWithHistory(ctx context.Context, reg *Registration, entry *HistoryEntry) error
	// DeleteWithHistory hard-deletes the registration; the payment row, if
	// any, goes with it via ON DELETE CASCADE.
	DeleteWithHistory(ctx context.Context, id string, entry *HistoryEntry) error
	// SetDeletedWithHistory soft-deletes the registration.
	SetDeletedWithHistory(ctx context.Context, id string, entry *HistoryEntry) error
	SetAttended(ctx context.Context, id string, attended bool) error
	// PromoteFromWaitingList removes the waiting-list entry and creates reg in
	// one transaction.
	PromoteFromWaitingList(ctx context.Context, waitingListID string, reg *Registration, entry *HistoryEntry) error
	// MoveToWaitingList soft-deletes the registration and creates the
	// waiting-list entry in one transaction.
	MoveToWaitingList(ctx context.Context, registrationID string, wl *WaitingListEntry, entry *HistoryEntry) error
}

// RegisterInput is the input for creating (or reactivating) a registration.
type RegisterInput struct {
	EventID     string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	PaymentType PaymentType
}

// RegistrationResult is the outcome of a Register call. QRCode carries a
// base64 PNG data URI of the payment QR for QR payments, empty for cash.
type RegistrationResult struct {
	Registration *Registration `json:"registration"`
	Reactivated  bool          `json:"reactivated"`
	QRCode       string        `json:"qr_code,omitempty"`
}

// RegistrationService defines registration lifecycle operations. actorID is
// the acting user's id for history attribution; empty for self-service calls.
type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput, actorID string) (*RegistrationResult, error)
	Unregister(ctx context.Context, eventID, email string) error
	SetAttended(ctx context.Context, registrationID string, attended bool) (*Registration, error)
	DeleteByModerator(ctx context.Context, registrationID, actorID string) error
	PromoteFromWaitingList(ctx context.Context, eventID, waitingListID, actorID string) (*Registration, error)
	MoveToWaitingList(ctx context.Context, eventID, registrationID, actorID string) (*WaitingListEntry, error)
	ListParticipants(ctx context.Context, eventID string) ([]*RegistrationWithPayment, error)
	CountParticipants(ctx context.Context, eventID string) (int, error)
}
