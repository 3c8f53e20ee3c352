package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameonbaby/internal/domain"
)

type paymentService struct {
	registrationRepo   domain.RegistrationRepository
	paymentRepo        domain.PaymentRepository
	eventRepo          domain.EventRepository
	qrGenerator        domain.PaymentQRGenerator
	defaultBankAccount string
	contextTimeout     time.Duration
}

func NewPaymentService(
	registrationRepo domain.RegistrationRepository,
	paymentRepo domain.PaymentRepository,
	eventRepo domain.EventRepository,
	qrGenerator domain.PaymentQRGenerator,
	defaultBankAccount string,
	timeout time.Duration,
) domain.PaymentService {
	return &paymentService{
		registrationRepo:   registrationRepo,
		paymentRepo:        paymentRepo,
		eventRepo:          eventRepo,
		qrGenerator:        qrGenerator,
		defaultBankAccount: defaultBankAccount,
		contextTimeout:     timeout,
	}
}

// SetPaid toggles the paid flag for a registration's payment record, creating
// the record on first use. Repeating the same toggle is a no-op.
func (s *paymentService) SetPaid(ctx context.Context, registrationID string, paid bool) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}

	payment, err := s.paymentRepo.GetByRegistrationID(ctx, registrationID)
	switch {
	case err == nil:
		if payment.Paid == paid {
			return payment, nil
		}
		if err := s.paymentRepo.SetPaid(ctx, payment.ID, paid); err != nil {
			return nil, fmt.Errorf("set paid: %w", err)
		}
		payment.Paid = paid
		return payment, nil
	case errors.Is(err, domain.ErrNotFound):
		payment, err = s.createPayment(ctx, reg, paid)
		if err != nil {
			return nil, err
		}
		return payment, nil
	default:
		return nil, fmt.Errorf("get payment: %w", err)
	}
}

func (s *paymentService) createPayment(ctx context.Context, reg *domain.Registration, paid bool) (*domain.Payment, error) {
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	vs, err := generateVariableSymbol()
	if err != nil {
		return nil, fmt.Errorf("generate variable symbol: %w", err)
	}

	account := s.defaultBankAccount
	if event.BankAccountID != nil && *event.BankAccountID != "" {
		account = *event.BankAccountID
	}
	qr, err := s.qrGenerator.Generate(domain.PaymentQRRequest{
		Account:        account,
		Amount:         event.Price,
		Currency:       "CZK",
		VariableSymbol: vs,
		Message:        event.Title,
	})
	if err != nil {
		return nil, fmt.Errorf("generate payment qr: %w", err)
	}

	payment := &domain.Payment{
		RegistrationID: reg.ID,
		Paid:           paid,
		VariableSymbol: vs,
		QRData:         qr.Payload,
		CreatedAt:      time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return payment, nil
}
