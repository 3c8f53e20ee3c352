package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"gameonbaby/internal/domain"
)

type registrationService struct {
	eventRepo          domain.EventRepository
	registrationRepo   domain.RegistrationRepository
	waitingListRepo    domain.WaitingListRepository
	qrGenerator        domain.PaymentQRGenerator
	emailService       domain.EmailService
	defaultBankAccount string
	contextTimeout     time.Duration
}

func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	waitingListRepo domain.WaitingListRepository,
	qrGenerator domain.PaymentQRGenerator,
	emailService domain.EmailService,
	defaultBankAccount string,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:          eventRepo,
		registrationRepo:   registrationRepo,
		waitingListRepo:    waitingListRepo,
		qrGenerator:        qrGenerator,
		emailService:       emailService,
		defaultBankAccount: defaultBankAccount,
		contextTimeout:     timeout,
	}
}

const variableSymbolLength = 10

var variableSymbolDigits = []rune("0123456789")

// generateVariableSymbol returns a crypto-random numeric payment reference.
// Ten digits instead of the historical four; collisions are still possible
// but no longer likely within a season.
func generateVariableSymbol() (string, error) {
	b := make([]rune, variableSymbolLength)
	max := big.NewInt(int64(len(variableSymbolDigits)))
	for i := 0; i < variableSymbolLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = variableSymbolDigits[n.Int64()]
	}
	return string(b), nil
}

func actorPtr(actorID string) *string {
	if actorID == "" {
		return nil
	}
	return &actorID
}

func historyFor(reg *domain.Registration, event *domain.Event, action domain.HistoryAction, actorID string, at time.Time) *domain.HistoryEntry {
	return &domain.HistoryEntry{
		EventID:     event.ID,
		FirstName:   reg.FirstName,
		LastName:    reg.LastName,
		Email:       reg.Email,
		PhoneNumber: reg.PhoneNumber,
		Action:      action,
		UserID:      actorPtr(actorID),
		EventTitle:  event.Title,
		CreatedAt:   at,
	}
}

func (s *registrationService) bankAccount(event *domain.Event) string {
	if event.BankAccountID != nil && *event.BankAccountID != "" {
		return *event.BankAccountID
	}
	return s.defaultBankAccount
}

func (s *registrationService) Register(ctx context.Context, input domain.RegisterInput, actorID string) (*domain.RegistrationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// An active registration for the same identity tuple is a conflict. The
	// partial unique index backs this check against concurrent inserts.
	if _, err := s.registrationRepo.GetByEventAndIdentity(ctx, event.ID, input.Email, input.FirstName, input.LastName, false); err == nil {
		return nil, domain.ErrDuplicateRegistration
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	now := time.Now()
	reactivated := false
	var reg *domain.Registration

	// A soft-deleted match is reactivated in place so history and payment
	// rows keep pointing at the same registration id.
	existing, err := s.registrationRepo.GetByEventAndIdentity(ctx, event.ID, input.Email, input.FirstName, input.LastName, true)
	switch {
	case err == nil:
		reg = existing
		reg.PhoneNumber = input.PhoneNumber
		reg.PaymentType = input.PaymentType
		reg.CreatedAt = now
		entry := historyFor(reg, event, domain.ActionReactivated, actorID, now)
		if err := s.registrationRepo.ReactivateWithHistory(ctx, reg, entry); err != nil {
			return nil, fmt.Errorf("reactivate registration: %w", err)
		}
		reg.Deleted = false
		reactivated = true
	case errors.Is(err, domain.ErrNotFound):
		reg = domain.NewRegistration(event.ID, input.FirstName, input.LastName, input.Email, input.PhoneNumber, input.PaymentType, now)
		entry := historyFor(reg, event, domain.ActionRegistered, actorID, now)
		if err := s.registrationRepo.CreateWithHistory(ctx, reg, entry); err != nil {
			if errors.Is(err, domain.ErrDuplicateRegistration) {
				return nil, domain.ErrDuplicateRegistration
			}
			return nil, fmt.Errorf("create registration: %w", err)
		}
	default:
		return nil, fmt.Errorf("get deleted registration: %w", err)
	}

	result := &domain.RegistrationResult{Registration: reg, Reactivated: reactivated}

	if input.PaymentType == domain.PaymentTypeQR {
		vs, err := generateVariableSymbol()
		if err != nil {
			return nil, fmt.Errorf("generate variable symbol: %w", err)
		}
		qr, err := s.qrGenerator.Generate(domain.PaymentQRRequest{
			Account:        s.bankAccount(event),
			Amount:         event.Price,
			Currency:       "CZK",
			VariableSymbol: vs,
			Message:        event.Title,
		})
		if err != nil {
			return nil, fmt.Errorf("generate payment qr: %w", err)
		}
		result.QRCode = qr.PNGBase64
	}

	// Confirmation mail is best effort; a mail failure must not undo the registration.
	if err := s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationConfirmationEmailData{
		Email:      reg.Email,
		FirstName:  reg.FirstName,
		EventTitle: event.Title,
		EventDate:  event.From.Format("2.1.2006 15:04"),
		EventPlace: event.Place,
		QRCode:     result.QRCode,
	}); err != nil {
		log.Printf("[EMAIL] registration confirmation to %s failed: %v", reg.Email, err)
	}

	return result, nil
}

func (s *registrationService) Unregister(ctx context.Context, eventID, email string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	reg, err := s.registrationRepo.GetActiveByEventAndEmail(ctx, eventID, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get registration: %w", err)
	}

	entry := historyFor(reg, event, domain.ActionUnregistered, "", time.Now())
	entry.RegistrationID = nil // row is gone after the hard delete
	if err := s.registrationRepo.DeleteWithHistory(ctx, reg.ID, entry); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

func (s *registrationService) SetAttended(ctx context.Context, registrationID string, attended bool) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if err := s.registrationRepo.SetAttended(ctx, registrationID, attended); err != nil {
		return nil, fmt.Errorf("set attended: %w", err)
	}
	reg.Attended = attended
	return reg, nil
}

func (s *registrationService) DeleteByModerator(ctx context.Context, registrationID, actorID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get registration: %w", err)
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		event = &domain.Event{ID: reg.EventID}
	}

	entry := historyFor(reg, event, domain.ActionDeletedByModerator, actorID, time.Now())
	if err := s.registrationRepo.SetDeletedWithHistory(ctx, registrationID, entry); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("soft delete registration: %w", err)
	}
	return nil
}

// PromoteFromWaitingList moves a waiting-list entry into an active
// registration as one transactional transfer.
func (s *registrationService) PromoteFromWaitingList(ctx context.Context, eventID, waitingListID, actorID string) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	wl, err := s.waitingListRepo.GetByID(ctx, waitingListID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get waiting list entry: %w", err)
	}
	if wl.EventID != eventID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	reg := domain.NewRegistration(eventID, wl.FirstName, wl.LastName, wl.Email, wl.PhoneNumber, wl.PaymentType, now)
	entry := historyFor(reg, event, domain.ActionMovedFromWaitlist, actorID, now)
	if err := s.registrationRepo.PromoteFromWaitingList(ctx, waitingListID, reg, entry); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateRegistration) {
			return nil, err
		}
		return nil, fmt.Errorf("promote from waiting list: %w", err)
	}

	if err := s.emailService.SendWaitlistPromotion(ctx, &domain.WaitlistPromotionEmailData{
		Email:      reg.Email,
		FirstName:  reg.FirstName,
		EventTitle: event.Title,
		EventDate:  event.From.Format("2.1.2006 15:04"),
		EventPlace: event.Place,
	}); err != nil {
		log.Printf("[EMAIL] waitlist promotion notice to %s failed: %v", reg.Email, err)
	}

	return reg, nil
}

// MoveToWaitingList is the reverse transfer: the registration is soft-deleted
// and the identity is queued on the waiting list, atomically.
func (s *registrationService) MoveToWaitingList(ctx context.Context, eventID, registrationID, actorID string) (*domain.WaitingListEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if reg.EventID != eventID || reg.Deleted {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	wl := &domain.WaitingListEntry{
		EventID:     eventID,
		FirstName:   reg.FirstName,
		LastName:    reg.LastName,
		Email:       reg.Email,
		PhoneNumber: reg.PhoneNumber,
		PaymentType: reg.PaymentType,
		CreatedAt:   now,
	}
	entry := historyFor(reg, event, domain.ActionMovedToWaitlist, actorID, now)
	if err := s.registrationRepo.MoveToWaitingList(ctx, registrationID, wl, entry); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyOnWaitingList) {
			return nil, err
		}
		return nil, fmt.Errorf("move to waiting list: %w", err)
	}
	return wl, nil
}

func (s *registrationService) ListParticipants(ctx context.Context, eventID string) ([]*domain.RegistrationWithPayment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if regs == nil {
		regs = []*domain.RegistrationWithPayment{}
	}
	return regs, nil
}

func (s *registrationService) CountParticipants(ctx context.Context, eventID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.registrationRepo.CountActiveByEventID(ctx, eventID)
}
