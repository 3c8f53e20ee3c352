package domain

import (
	"context"
	"time"
)

// NoShow records a registrant who did not attend and did not pay, tracked for
// follow-up fee collection. Event title and date are denormalized.
// swagger:model NoShow
type NoShow struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	EventID    string    `json:"event_id"`
	EventTitle string    `json:"event_title"`
	EventDate  time.Time `json:"event_date"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FeePaid    bool      `json:"fee_paid"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// NoShowCandidate is an active registration eligible to become a NoShow:
// attended=false, no paid payment, not already recorded for the event.
type NoShowCandidate struct {
	RegistrationID string `json:"registration_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
}

// NoShowRepository defines storage operations for no-show records.
type NoShowRepository interface {
	Create(ctx context.Context, n *NoShow) error
	// CreateBatch inserts all records in one transaction.
	CreateBatch(ctx context.Context, ns []*NoShow) error
	ListByEventID(ctx context.Context, eventID string) ([]*NoShow, error)
	ExistingEmailsByEventID(ctx context.Context, eventID string) (map[string]struct{}, error)
	ListCandidatesByEventID(ctx context.Context, eventID string) ([]*NoShowCandidate, error)
	SetFeePaid(ctx context.Context, id string, feePaid bool) error
}

// NoShowService defines no-show tracking operations.
type NoShowService interface {
	Candidates(ctx context.Context, eventID string) ([]*NoShowCandidate, error)
	// BulkImport re-filters candidates against currently recorded no-shows and
	// inserts the remainder in one batch. Returns the number inserted;
	// importing the same candidate list twice inserts zero the second time.
	BulkImport(ctx context.Context, eventID string, candidates []*NoShowCandidate) (int, error)
	Create(ctx context.Context, n *NoShow) error
	ListByEvent(ctx context.Context, eventID string) ([]*NoShow, error)
	SetFeePaid(ctx context.Context, id string, feePaid bool) error
}
