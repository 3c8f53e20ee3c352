package domain

import (
	"context"
	"time"
)

// Payment is the 1:1 payment record for a registration. It is created lazily
// the first time a registration is marked paid. VariableSymbol is the bank
// transfer reference used to match incoming payments.
// swagger:model Payment
type Payment struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registration_id"`
	Paid           bool      `json:"paid"`
	VariableSymbol string    `json:"variable_symbol"`
	QRData         string    `json:"qr_data"`
	CreatedAt      time.Time `json:"created_at"`
}

// PaymentRepository defines storage operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	GetByRegistrationID(ctx context.Context, registrationID string) (*Payment, error)
	SetPaid(ctx context.Context, id string, paid bool) error
}

// PaymentService toggles the paid state of a registration, creating the
// payment record on first use. Idempotent for repeated identical toggles.
type PaymentService interface {
	SetPaid(ctx context.Context, registrationID string, paid bool) (*Payment, error)
}

// PaymentQRRequest describes a bank-transfer payment to encode as a QR code.
type PaymentQRRequest struct {
	Account        string
	Amount         int
	Currency       string
	VariableSymbol string
	Message        string
}

// PaymentQR is a generated payment QR artifact: the short-payment-descriptor
// payload and its PNG rendering as a base64 data URI.
type PaymentQR struct {
	Payload   string `json:"payload"`
	PNGBase64 string `json:"png_base64"`
}

// PaymentQRGenerator renders payment QR codes (infrastructure port).
type PaymentQRGenerator interface {
	Generate(req PaymentQRRequest) (*PaymentQR, error)
}
