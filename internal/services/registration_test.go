package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gameonbaby/internal/domain"
)

func newTestEvent() *domain.Event {
	return &domain.Event{
		ID:       "ev-1",
		Title:    "Monday practice",
		Price:    150,
		Place:    "Hala Podvinny Mlyn",
		Capacity: 12,
		From:     time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC),
		Visible:  true,
	}
}

func registrationSvc(eventRepo *mockEventRepository, regRepo *mockRegistrationRepository, wlRepo *mockWaitingListRepository, email *mockEmailService) *registrationService {
	return &registrationService{
		eventRepo:          eventRepo,
		registrationRepo:   regRepo,
		waitingListRepo:    wlRepo,
		qrGenerator:        &mockQRGenerator{},
		emailService:       email,
		defaultBankAccount: "123456789/0100",
		contextTimeout:     testTimeout,
	}
}

func TestRegistrationService_Register(t *testing.T) {
	input := domain.RegisterInput{
		EventID:     "ev-1",
		FirstName:   "Jana",
		LastName:    "Nova",
		Email:       "jana@example.com",
		PhoneNumber: "+420777111222",
		PaymentType: domain.PaymentTypeCash,
	}

	tests := []struct {
		name            string
		input           domain.RegisterInput
		eventRepo       *mockEventRepository
		regRepo         *mockRegistrationRepository
		wantErr         error
		wantReactivated bool
		wantQR          bool
		wantAction      domain.HistoryAction
	}{
		{
			name:      "new registration",
			input:     input,
			eventRepo: &mockEventRepository{events: map[string]*domain.Event{"ev-1": newTestEvent()}},
			regRepo:   &mockRegistrationRepository{},
			wantAction: domain.ActionRegistered,
		},
		{
			name: "qr payment returns code",
			input: domain.RegisterInput{
				EventID: "ev-1", FirstName: "Jana", LastName: "Nova",
				Email: "jana@example.com", PaymentType: domain.PaymentTypeQR,
			},
			eventRepo:  &mockEventRepository{events: map[string]*domain.Event{"ev-1": newTestEvent()}},
			regRepo:    &mockRegistrationRepository{},
			wantQR:     true,
			wantAction: domain.ActionRegistered,
		},
		{
			name:      "event not found",
			input:     input,
			eventRepo: &mockEventRepository{events: map[string]*domain.Event{}},
			regRepo:   &mockRegistrationRepository{},
			wantErr:   domain.ErrNotFound,
		},
		{
			name:      "duplicate active registration",
			input:     input,
			eventRepo: &mockEventRepository{events: map[string]*domain.Event{"ev-1": newTestEvent()}},
			regRepo: &mockRegistrationRepository{
				active: map[string]*domain.Registration{
					identityKey("ev-1", "jana@example.com", "Jana", "Nova"): {ID: "reg-1", EventID: "ev-1"},
				},
			},
			wantErr: domain.ErrDuplicateRegistration,
		},
		{
			name:      "soft-deleted registration is reactivated",
			input:     input,
			eventRepo: &mockEventRepository{events: map[string]*domain.Event{"ev-1": newTestEvent()}},
			regRepo: &mockRegistrationRepository{
				deleted: map[string]*domain.Registration{
					identityKey("ev-1", "jana@example.com", "Jana", "Nova"): {
						ID: "reg-old", EventID: "ev-1", FirstName: "Jana", LastName: "Nova",
						Email: "jana@example.com", Deleted: true,
					},
				},
			},
			wantReactivated: true,
			wantAction:      domain.ActionReactivated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := &mockEmailService{}
			svc := registrationSvc(tt.eventRepo, tt.regRepo, &mockWaitingListRepository{}, email)

			got, err := svc.Register(context.Background(), tt.input, "")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(email.confirmations) != 0 {
					t.Error("no confirmation email expected on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Reactivated != tt.wantReactivated {
				t.Errorf("expected reactivated=%v, got %v", tt.wantReactivated, got.Reactivated)
			}
			if tt.wantReactivated && got.Registration.ID != "reg-old" {
				t.Errorf("expected reactivation to keep row id reg-old, got %q", got.Registration.ID)
			}
			if tt.wantQR && got.QRCode == "" {
				t.Error("expected QR code for QR payment")
			}
			if !tt.wantQR && got.QRCode != "" {
				t.Errorf("expected no QR code, got %q", got.QRCode)
			}
			if got.Registration.ID == "" {
				t.Error("expected registration ID to be set")
			}
			if len(tt.regRepo.history) != 1 || tt.regRepo.history[0].Action != tt.wantAction {
				t.Fatalf("expected one %s history entry, got %+v", tt.wantAction, tt.regRepo.history)
			}
			if len(email.confirmations) != 1 {
				t.Fatalf("expected one confirmation email, got %d", len(email.confirmations))
			}
		})
	}
}

func TestRegistrationService_Register_EmailFailureDoesNotFail(t *testing.T) {
	regRepo := &mockRegistrationRepository{}
	email := &mockEmailService{err: errors.New("ses unavailable")}
	svc := registrationSvc(
		&mockEventRepository{events: map[string]*domain.Event{"ev-1": newTestEvent()}},
		regRepo, &mockWaitingListRepository{}, email,
	)

	input := domain.RegisterInput{
		EventID: "ev-1", FirstName: "Jana", LastName: "Nova",
		Email: "jana@example.com", PaymentType: domain.PaymentTypeCash,
	}
	got, err := svc.Register(context.Background(), input, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Registration.ID == "" {
		t.Error("expected registration to be created despite email failure")
	}
}

func TestRegistrationService_Unregister(t *testing.T) {
	tests := []struct {
		name    string
		regRepo *mockRegistrationRepository
		email   string
		wantErr error
	}{
		{
			name: "success appends history",
			regRepo: &mockRegistrationRepository{
				active: map[string]*domain.Registration{
					identityKey("ev-1", "jana@example.com", "Jana", "Nova"): {
						ID: "reg-1", EventID: "ev-1", FirstName: "Jana", LastName: "Nova",
						Email: "jana@example.com",
					},
				},
			},
			email: "jana@example.com",
		},
		{
			name:    "no active registration",
			regRepo: &mockRegistrationRepository{},
			email:   "nobody@example.com",
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := registrationSvc(
				&mockEventRepository{events: map[string]*domain.Event{"ev-1": newTestEvent()}},
				tt.regRepo, &mockWaitingListRepository{}, &mockEmailService{},
			)
			err := svc.Unregister(context.Background(), "ev-1", tt.email)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tt.regRepo.hardDeleted) != 1 || tt.regRepo.hardDeleted[0] != "reg-1" {
				t.Fatalf("expected reg-1 deleted, got %v", tt.regRepo.hardDeleted)
			}
			if len(tt.regRepo.history) != 1 || tt.regRepo.history[0].Action != domain.ActionUnregistered {
				t.Fatalf("expected UNREGISTERED history entry, got %+v", tt.regRepo.history)
			}
		})
	}
}

func TestRegistrationService_PromoteFromWaitingList(t *testing.T) {
	wlEntry := &domain.WaitingListEntry{
		ID: "wl-1", EventID: "ev-1", FirstName: "Petr", LastName: "Svoboda",
		Email: "petr@example.com", PaymentType: domain.PaymentTypeCash,
	}

	tests := []struct {
		name          string
		wlRepo        *mockWaitingListRepository
		eventID       string
		waitingListID string
		wantErr       error
	}{
		{
			name:          "success",
			wlRepo:        &mockWaitingListRepository{entries: map[string]*domain.WaitingListEntry{"wl-1": wlEntry}},
			eventID:       "ev-1",
			waitingListID: "wl-1",
		},
		{
			name:          "entry not found",
			wlRepo:        &mockWaitingListRepository{},
			eventID:       "ev-1",
			waitingListID: "wl-missing",
			wantErr:       domain.ErrNotFound,
		},
		{
			name:          "entry belongs to another event",
			wlRepo:        &mockWaitingListRepository{entries: map[string]*domain.WaitingListEntry{"wl-1": wlEntry}},
			eventID:       "ev-other",
			waitingListID: "wl-1",
			wantErr:       domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regRepo := &mockRegistrationRepository{}
			email := &mockEmailService{}
			events := map[string]*domain.Event{"ev-1": newTestEvent()}
			events["ev-other"] = &domain.Event{ID: "ev-other", Title: "Other"}
			svc := registrationSvc(&mockEventRepository{events: events}, regRepo, tt.wlRepo, email)

			got, err := svc.PromoteFromWaitingList(context.Background(), tt.eventID, tt.waitingListID, "admin-1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Email != "petr@example.com" {
				t.Errorf("expected promoted registration for petr@example.com, got %s", got.Email)
			}
			if len(regRepo.promoted) != 1 || regRepo.promoted[0] != "wl-1" {
				t.Fatalf("expected wl-1 promoted, got %v", regRepo.promoted)
			}
			if len(regRepo.history) != 1 || regRepo.history[0].Action != domain.ActionMovedFromWaitlist {
				t.Fatalf("expected MOVED_FROM_WAITLIST history entry, got %+v", regRepo.history)
			}
			if regRepo.history[0].UserID == nil || *regRepo.history[0].UserID != "admin-1" {
				t.Error("expected acting user recorded in history")
			}
			if len(email.promotions) != 1 {
				t.Fatalf("expected one promotion email, got %d", len(email.promotions))
			}
		})
	}
}

func TestRegistrationService_MoveToWaitingList(t *testing.T) {
	reg := &domain.Registration{
		ID: "reg-1", EventID: "ev-1", FirstName: "Jana", LastName: "Nova",
		Email: "jana@example.com", PaymentType: domain.PaymentTypeQR,
	}

	tests := []struct {
		name           string
		regRepo        *mockRegistrationRepository
		registrationID string
		wantErr        error
	}{
		{
			name:           "success",
			regRepo:        &mockRegistrationRepository{byID: map[string]*domain.Registration{"reg-1": reg}},
			registrationID: "reg-1",
		},
		{
			name:           "registration not found",
			regRepo:        &mockRegistrationRepository{},
			registrationID: "reg-missing",
			wantErr:        domain.ErrNotFound,
		},
		{
			name: "already soft-deleted",
			regRepo: &mockRegistrationRepository{byID: map[string]*domain.Registration{
				"reg-1": {ID: "reg-1", EventID: "ev-1", Deleted: true},
			}},
			registrationID: "reg-1",
			wantErr:        domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := registrationSvc(
				&mockEventRepository{events: map[string]*domain.Event{"ev-1": newTestEvent()}},
				tt.regRepo, &mockWaitingListRepository{}, &mockEmailService{},
			)
			got, err := svc.MoveToWaitingList(context.Background(), "ev-1", tt.registrationID, "admin-1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Email != "jana@example.com" {
				t.Errorf("expected entry for jana@example.com, got %s", got.Email)
			}
			if len(tt.regRepo.moved) != 1 || tt.regRepo.moved[0] != "reg-1" {
				t.Fatalf("expected reg-1 moved, got %v", tt.regRepo.moved)
			}
			if len(tt.regRepo.history) != 1 || tt.regRepo.history[0].Action != domain.ActionMovedToWaitlist {
				t.Fatalf("expected MOVED_TO_WAITLIST history entry, got %+v", tt.regRepo.history)
			}
		})
	}
}

func TestRegistrationService_SetAttended(t *testing.T) {
	reg := &domain.Registration{ID: "reg-1", EventID: "ev-1"}
	regRepo := &mockRegistrationRepository{byID: map[string]*domain.Registration{"reg-1": reg}}
	svc := registrationSvc(
		&mockEventRepository{events: map[string]*domain.Event{"ev-1": newTestEvent()}},
		regRepo, &mockWaitingListRepository{}, &mockEmailService{},
	)

	got, err := svc.SetAttended(context.Background(), "reg-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Attended {
		t.Error("expected attended=true")
	}

	if _, err := svc.SetAttended(context.Background(), "reg-missing", true); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistrationService_DeleteByModerator(t *testing.T) {
	reg := &domain.Registration{ID: "reg-1", EventID: "ev-1", FirstName: "Jana", Email: "jana@example.com"}
	regRepo := &mockRegistrationRepository{byID: map[string]*domain.Registration{"reg-1": reg}}
	svc := registrationSvc(
		&mockEventRepository{events: map[string]*domain.Event{"ev-1": newTestEvent()}},
		regRepo, &mockWaitingListRepository{}, &mockEmailService{},
	)

	if err := svc.DeleteByModerator(context.Background(), "reg-1", "mod-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regRepo.softDeleted) != 1 || regRepo.softDeleted[0] != "reg-1" {
		t.Fatalf("expected reg-1 soft deleted, got %v", regRepo.softDeleted)
	}
	if len(regRepo.history) != 1 || regRepo.history[0].Action != domain.ActionDeletedByModerator {
		t.Fatalf("expected DELETED_BY_MODERATOR history entry, got %+v", regRepo.history)
	}
	if regRepo.history[0].UserID == nil || *regRepo.history[0].UserID != "mod-1" {
		t.Error("expected acting moderator recorded in history")
	}
}

func TestGenerateVariableSymbol(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		vs, err := generateVariableSymbol()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vs) != variableSymbolLength {
			t.Fatalf("expected %d digits, got %q", variableSymbolLength, vs)
		}
		for _, r := range vs {
			if r < '0' || r > '9' {
				t.Fatalf("expected numeric symbol, got %q", vs)
			}
		}
		seen[vs] = struct{}{}
	}
	if len(seen) < 2 {
		t.Error("expected generated symbols to vary")
	}
}
