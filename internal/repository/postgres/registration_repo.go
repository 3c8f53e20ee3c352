package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"gameonbaby/internal/domain"
)

// uniqueViolation is the Postgres error code raised by the partial unique
// index on active registrations and the waiting-list identity constraint.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

const registrationColumns = `id, event_id, first_name, last_name, email, phone_number, payment_type, attended, deleted, created_at`

func scanRegistration(row interface{ Scan(...any) error }) (*domain.Registration, error) {
	reg := &domain.Registration{}
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.FirstName, &reg.LastName, &reg.Email,
		&reg.PhoneNumber, &reg.PaymentType, &reg.Attended, &reg.Deleted, &reg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE id = $1
	`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetByEventAndIdentity(ctx context.Context, eventID, email, firstName, lastName string, deleted bool) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1
		  AND lower(email) = lower($2)
		  AND lower(first_name) = lower($3)
		  AND lower(last_name) = lower($4)
		  AND deleted = $5
		LIMIT 1
	`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, eventID, email, firstName, lastName, deleted))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetActiveByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1 AND lower(email) = lower($2) AND NOT deleted
		LIMIT 1
	`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, eventID, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

// ListByEventID returns active registrations with their payment state, the
// join the admin participant table needs.
func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.RegistrationWithPayment, error) {
	query := `
		SELECT r.id, r.event_id, r.first_name, r.last_name, r.email, r.phone_number,
		       r.payment_type, r.attended, r.deleted, r.created_at,
		       COALESCE(p.paid, false), COALESCE(p.variable_symbol, '')
		FROM registrations r
		LEFT JOIN payments p ON p.registration_id = r.id
		WHERE r.event_id = $1 AND NOT r.deleted
		ORDER BY r.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.RegistrationWithPayment, 0)
	for rows.Next() {
		reg := &domain.RegistrationWithPayment{}
		if err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.FirstName, &reg.LastName, &reg.Email,
			&reg.PhoneNumber, &reg.PaymentType, &reg.Attended, &reg.Deleted, &reg.CreatedAt,
			&reg.Paid, &reg.VariableSymbol,
		); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) CountActiveByEventID(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND NOT deleted`,
		eventID,
	).Scan(&count)
	return count, err
}

// withTx runs fn inside a transaction, rolling back on error.
func (r *registrationRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertRegistrationTx(ctx context.Context, tx *sql.Tx, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_id, first_name, last_name, email, phone_number, payment_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := tx.QueryRowContext(ctx, query,
		reg.EventID, reg.FirstName, reg.LastName, reg.Email, reg.PhoneNumber, reg.PaymentType, reg.CreatedAt,
	).Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func (r *registrationRepository) CreateWithHistory(ctx context.Context, reg *domain.Registration, entry *domain.HistoryEntry) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if err := insertRegistrationTx(ctx, tx, reg); err != nil {
			return err
		}
		entry.RegistrationID = &reg.ID
		return insertHistory(ctx, tx, entry)
	})
}

func (r *registrationRepository) ReactivateWithHistory(ctx context.Context, reg *domain.Registration, entry *domain.HistoryEntry) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			UPDATE registrations
			SET deleted = false, phone_number = $2, payment_type = $3, created_at = $4
			WHERE id = $1
		`
		result, err := tx.ExecContext(ctx, query, reg.ID, reg.PhoneNumber, reg.PaymentType, reg.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateRegistration
			}
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		entry.RegistrationID = &reg.ID
		return insertHistory(ctx, tx, entry)
	})
}

// DeleteWithHistory hard-deletes the registration row. The dependent payment
// row is removed by the ON DELETE CASCADE constraint.
func (r *registrationRepository) DeleteWithHistory(ctx context.Context, id string, entry *domain.HistoryEntry) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		return insertHistory(ctx, tx, entry)
	})
}

func (r *registrationRepository) SetDeletedWithHistory(ctx context.Context, id string, entry *domain.HistoryEntry) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `UPDATE registrations SET deleted = true WHERE id = $1 AND NOT deleted`, id)
		if err != nil {
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		entry.RegistrationID = &id
		return insertHistory(ctx, tx, entry)
	})
}

func (r *registrationRepository) SetAttended(ctx context.Context, id string, attended bool) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE registrations SET attended = $2 WHERE id = $1`, id, attended)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PromoteFromWaitingList transfers a waiting-list entry into an active
// registration atomically: one delete, one insert, one history row.
func (r *registrationRepository) PromoteFromWaitingList(ctx context.Context, waitingListID string, reg *domain.Registration, entry *domain.HistoryEntry) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM waiting_list WHERE id = $1`, waitingListID)
		if err != nil {
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		if err := insertRegistrationTx(ctx, tx, reg); err != nil {
			return err
		}
		entry.RegistrationID = &reg.ID
		return insertHistory(ctx, tx, entry)
	})
}

// MoveToWaitingList is the reverse transfer: soft-delete the registration and
// queue the identity on the waiting list, atomically.
func (r *registrationRepository) MoveToWaitingList(ctx context.Context, registrationID string, wl *domain.WaitingListEntry, entry *domain.HistoryEntry) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `UPDATE registrations SET deleted = true WHERE id = $1 AND NOT deleted`, registrationID)
		if err != nil {
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		query := `
			INSERT INTO waiting_list (event_id, first_name, last_name, email, phone_number, payment_type, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		err = tx.QueryRowContext(ctx, query,
			wl.EventID, wl.FirstName, wl.LastName, wl.Email, wl.PhoneNumber, wl.PaymentType, wl.CreatedAt,
		).Scan(&wl.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadyOnWaitingList
			}
			return err
		}
		entry.RegistrationID = &registrationID
		return insertHistory(ctx, tx, entry)
	})
}
