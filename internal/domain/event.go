package domain

import (
	"context"
	"time"
)

// Event is a single bookable event (a game session, a practice, a tournament).
// swagger:model Event
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	Place         string    `json:"place"`
	Capacity      int       `json:"capacity"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	Visible       bool      `json:"visible"`
	BankAccountID *string   `json:"bank_account_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// UpdateEventInput carries optional fields for a partial event update.
// Nil fields are left unchanged.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Price       *int
	Place       *string
	Capacity    *int
	From        *time.Time
	To          *time.Time
	Visible     *bool
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListVisible(ctx context.Context) ([]*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id string, input UpdateEventInput) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines event management operations. Mutations append a
// history entry recording the acting user.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event, actorID string) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListVisibleEvents(ctx context.Context) ([]*Event, error)
	ListAllEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, id string, input UpdateEventInput, actorID string) (*Event, error)
	DeleteEvent(ctx context.Context, id string, actorID string) error
}
