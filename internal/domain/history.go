package domain

import (
	"context"
	"time"
)

// HistoryAction tags a registration or event state transition.
type HistoryAction string

const (
	ActionRegistered        HistoryAction = "REGISTERED"
	ActionUnregistered      HistoryAction = "UNREGISTERED"
	ActionReactivated       HistoryAction = "REACTIVATED"
	ActionMovedToWaitlist   HistoryAction = "MOVED_TO_WAITLIST"
	ActionMovedFromWaitlist HistoryAction = "MOVED_FROM_WAITLIST"
	ActionDeletedByModerator HistoryAction = "DELETED_BY_MODERATOR"
	ActionEventCreated      HistoryAction = "EVENT_CREATED"
	ActionEventUpdated      HistoryAction = "EVENT_UPDATED"
	ActionEventDeleted      HistoryAction = "EVENT_DELETED"
)

// HistoryEntry is an append-only log row for a state transition. UserID is
// the acting user when the transition was triggered by an admin or moderator.
// EventTitle is denormalized so history survives event deletion.
// swagger:model HistoryEntry
type HistoryEntry struct {
	ID             string        `json:"id"`
	EventID        string        `json:"event_id"`
	RegistrationID *string       `json:"registration_id,omitempty"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Email          string        `json:"email"`
	PhoneNumber    string        `json:"phone_number"`
	Action         HistoryAction `json:"action_type"`
	UserID         *string       `json:"user_id,omitempty"`
	EventTitle     string        `json:"event_title"`
	CreatedAt      time.Time     `json:"created_at"`
}

// HistoryRepository defines storage for the append-only history log.
// Entries are never updated or deleted.
type HistoryRepository interface {
	Create(ctx context.Context, entry *HistoryEntry) error
	List(ctx context.Context, params PaginationParams) ([]*HistoryEntry, int, error)
}

// HistoryService exposes the paginated history log for the admin audit view.
type HistoryService interface {
	List(ctx context.Context, params PaginationParams) ([]*HistoryEntry, int, error)
}
