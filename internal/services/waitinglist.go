package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameonbaby/internal/domain"
)

type waitingListService struct {
	eventRepo        domain.EventRepository
	waitingListRepo  domain.WaitingListRepository
	registrationRepo domain.RegistrationRepository
	contextTimeout   time.Duration
}

func NewWaitingListService(
	eventRepo domain.EventRepository,
	waitingListRepo domain.WaitingListRepository,
	registrationRepo domain.RegistrationRepository,
	timeout time.Duration,
) domain.WaitingListService {
	return &waitingListService{
		eventRepo:        eventRepo,
		waitingListRepo:  waitingListRepo,
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

func (s *waitingListService) Join(ctx context.Context, input domain.JoinWaitingListInput) (*domain.WaitingListEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// Someone already holding an active spot does not belong on the queue.
	if _, err := s.registrationRepo.GetByEventAndIdentity(ctx, input.EventID, input.Email, input.FirstName, input.LastName, false); err == nil {
		return nil, domain.ErrDuplicateRegistration
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	if _, err := s.waitingListRepo.GetByEventAndIdentity(ctx, input.EventID, input.Email, input.FirstName, input.LastName); err == nil {
		return nil, domain.ErrAlreadyOnWaitingList
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get waiting list entry: %w", err)
	}

	entry := &domain.WaitingListEntry{
		EventID:     input.EventID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		PaymentType: input.PaymentType,
		CreatedAt:   time.Now(),
	}
	if err := s.waitingListRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrAlreadyOnWaitingList) {
			return nil, domain.ErrAlreadyOnWaitingList
		}
		return nil, fmt.Errorf("create waiting list entry: %w", err)
	}
	return entry, nil
}

func (s *waitingListService) Leave(ctx context.Context, eventID, email string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entry, err := s.waitingListRepo.GetByEventAndEmail(ctx, eventID, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get waiting list entry: %w", err)
	}
	if err := s.waitingListRepo.Delete(ctx, entry.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete waiting list entry: %w", err)
	}
	return nil
}

func (s *waitingListService) ListByEvent(ctx context.Context, eventID string) ([]*domain.WaitingListEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	entries, err := s.waitingListRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list waiting list: %w", err)
	}
	if entries == nil {
		entries = []*domain.WaitingListEntry{}
	}
	return entries, nil
}
