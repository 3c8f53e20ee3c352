package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gameonbaby/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	historyRepo    domain.HistoryRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, historyRepo domain.HistoryRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		historyRepo:    historyRepo,
		contextTimeout: timeout,
	}
}

func eventHistory(event *domain.Event, action domain.HistoryAction, actorID string) *domain.HistoryEntry {
	return &domain.HistoryEntry{
		EventID:    event.ID,
		Action:     action,
		UserID:     actorPtr(actorID),
		EventTitle: event.Title,
		CreatedAt:  time.Now(),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event, actorID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.Title == "" || event.Capacity < 0 || event.Price < 0 || event.From.After(event.To) {
		return domain.ErrInvalidInput
	}
	event.CreatedAt = time.Now()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	if err := s.historyRepo.Create(ctx, eventHistory(event, domain.ActionEventCreated, actorID)); err != nil {
		log.Printf("[HISTORY] event create entry for %s failed: %v", event.ID, err)
	}
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListVisibleEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visible events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) ListAllEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput, actorID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if (input.Capacity != nil && *input.Capacity < 0) || (input.Price != nil && *input.Price < 0) {
		return nil, domain.ErrInvalidInput
	}
	if input.From != nil || input.To != nil {
		current, err := s.eventRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get event: %w", err)
		}
		from, to := current.From, current.To
		if input.From != nil {
			from = *input.From
		}
		if input.To != nil {
			to = *input.To
		}
		if from.After(to) {
			return nil, domain.ErrInvalidInput
		}
	}

	event, err := s.eventRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	if err := s.historyRepo.Create(ctx, eventHistory(event, domain.ActionEventUpdated, actorID)); err != nil {
		log.Printf("[HISTORY] event update entry for %s failed: %v", event.ID, err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string, actorID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	if err := s.historyRepo.Create(ctx, eventHistory(event, domain.ActionEventDeleted, actorID)); err != nil {
		log.Printf("[HISTORY] event delete entry for %s failed: %v", event.ID, err)
	}
	return nil
}
