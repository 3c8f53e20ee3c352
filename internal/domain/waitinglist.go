package domain

import (
	"context"
	"time"
)

// WaitingListEntry is a holding-queue entry for an event. Entries are removed
// (hard delete) on promotion to a registration or on self-removal.
// swagger:model WaitingListEntry
type WaitingListEntry struct {
	ID          string      `json:"id"`
	EventID     string      `json:"event_id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phone_number"`
	PaymentType PaymentType `json:"payment_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

// WaitingListRepository defines storage operations for waiting-list entries.
type WaitingListRepository interface {
	Create(ctx context.Context, entry *WaitingListEntry) error
	GetByID(ctx context.Context, id string) (*WaitingListEntry, error)
	GetByEventAndIdentity(ctx context.Context, eventID, email, firstName, lastName string) (*WaitingListEntry, error)
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*WaitingListEntry, error)
	ListByEventID(ctx context.Context, eventID string) ([]*WaitingListEntry, error)
	Delete(ctx context.Context, id string) error
}

// JoinWaitingListInput is the input for joining an event's waiting list.
type JoinWaitingListInput struct {
	EventID     string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	PaymentType PaymentType
}

// WaitingListService defines waiting-list operations.
type WaitingListService interface {
	Join(ctx context.Context, input JoinWaitingListInput) (*WaitingListEntry, error)
	Leave(ctx context.Context, eventID, email string) error
	ListByEvent(ctx context.Context, eventID string) ([]*WaitingListEntry, error)
}
