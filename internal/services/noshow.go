package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gameonbaby/internal/domain"
)

type noShowService struct {
	noShowRepo     domain.NoShowRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewNoShowService(noShowRepo domain.NoShowRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.NoShowService {
	return &noShowService{
		noShowRepo:     noShowRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *noShowService) Candidates(ctx context.Context, eventID string) ([]*domain.NoShowCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	candidates, err := s.noShowRepo.ListCandidatesByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list no-show candidates: %w", err)
	}
	if candidates == nil {
		candidates = []*domain.NoShowCandidate{}
	}
	return candidates, nil
}

// BulkImport records the given candidates as no-shows for the event. Emails
// already recorded for the event are skipped, so re-submitting the same list
// inserts nothing the second time.
func (s *noShowService) BulkImport(ctx context.Context, eventID string, candidates []*domain.NoShowCandidate) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get event: %w", err)
	}

	existing, err := s.noShowRepo.ExistingEmailsByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("list existing no-show emails: %w", err)
	}

	now := time.Now()
	var batch []*domain.NoShow
	for _, c := range candidates {
		key := strings.ToLower(strings.TrimSpace(c.Email))
		if key == "" {
			continue
		}
		if _, ok := existing[key]; ok {
			continue
		}
		existing[key] = struct{}{} // dedupe within the submitted list too
		batch = append(batch, &domain.NoShow{
			Email:      c.Email,
			EventID:    eventID,
			EventTitle: event.Title,
			EventDate:  event.From,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			CreatedAt:  now,
		})
	}
	if len(batch) == 0 {
		return 0, nil
	}
	if err := s.noShowRepo.CreateBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("create no-shows: %w", err)
	}
	return len(batch), nil
}

func (s *noShowService) Create(ctx context.Context, n *domain.NoShow) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if n.Email == "" || n.EventID == "" {
		return domain.ErrInvalidInput
	}
	event, err := s.eventRepo.GetByID(ctx, n.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if n.EventTitle == "" {
		n.EventTitle = event.Title
	}
	if n.EventDate.IsZero() {
		n.EventDate = event.From
	}
	n.CreatedAt = time.Now()
	if err := s.noShowRepo.Create(ctx, n); err != nil {
		return fmt.Errorf("create no-show: %w", err)
	}
	return nil
}

func (s *noShowService) ListByEvent(ctx context.Context, eventID string) ([]*domain.NoShow, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ns, err := s.noShowRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list no-shows: %w", err)
	}
	if ns == nil {
		ns = []*domain.NoShow{}
	}
	return ns, nil
}

func (s *noShowService) SetFeePaid(ctx context.Context, id string, feePaid bool) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.noShowRepo.SetFeePaid(ctx, id, feePaid); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("set fee paid: %w", err)
	}
	return nil
}
