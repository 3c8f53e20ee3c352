package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gameonbaby/internal/domain"
)

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) domain.PaymentRepository {
	return &paymentRepository{
		DB: db,
	}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `
		INSERT INTO payments (registration_id, paid, variable_symbol, qr_data, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.RegistrationID, p.Paid, p.VariableSymbol, p.QRData, p.CreatedAt,
	).Scan(&p.ID)
}

func (r *paymentRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Payment, error) {
	query := `
		SELECT id, registration_id, paid, variable_symbol, qr_data, created_at
		FROM payments
		WHERE registration_id = $1
	`
	p := &domain.Payment{}
	err := r.DB.QueryRowContext(ctx, query, registrationID).
		Scan(&p.ID, &p.RegistrationID, &p.Paid, &p.VariableSymbol, &p.QRData, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) SetPaid(ctx context.Context, id string, paid bool) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE payments SET paid = $2 WHERE id = $1`, id, paid)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
