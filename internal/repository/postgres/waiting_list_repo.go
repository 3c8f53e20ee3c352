package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gameonbaby/internal/domain"
)

type waitingListRepository struct {
	DB *sql.DB
}

func NewWaitingListRepository(db *sql.DB) domain.WaitingListRepository {
	return &waitingListRepository{
		DB: db,
	}
}

const waitingListColumns = `id, event_id, first_name, last_name, email, phone_number, payment_type, created_at`

func scanWaitingListEntry(row interface{ Scan(...any) error }) (*domain.WaitingListEntry, error) {
	entry := &domain.WaitingListEntry{}
	err := row.Scan(
		&entry.ID, &entry.EventID, &entry.FirstName, &entry.LastName,
		&entry.Email, &entry.PhoneNumber, &entry.PaymentType, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *waitingListRepository) Create(ctx context.Context, entry *domain.WaitingListEntry) error {
	query := `
		INSERT INTO waiting_list (event_id, first_name, last_name, email, phone_number, payment_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		entry.EventID, entry.FirstName, entry.LastName, entry.Email, entry.PhoneNumber, entry.PaymentType, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyOnWaitingList
		}
		return err
	}
	return nil
}

func (r *waitingListRepository) GetByID(ctx context.Context, id string) (*domain.WaitingListEntry, error) {
	query := `
		SELECT ` + waitingListColumns + `
		FROM waiting_list
		WHERE id = $1
	`
	entry, err := scanWaitingListEntry(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *waitingListRepository) GetByEventAndIdentity(ctx context.Context, eventID, email, firstName, lastName string) (*domain.WaitingListEntry, error) {
	query := `
		SELECT ` + waitingListColumns + `
		FROM waiting_list
		WHERE event_id = $1
		  AND lower(email) = lower($2)
		  AND lower(first_name) = lower($3)
		  AND lower(last_name) = lower($4)
		LIMIT 1
	`
	entry, err := scanWaitingListEntry(r.DB.QueryRowContext(ctx, query, eventID, email, firstName, lastName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *waitingListRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.WaitingListEntry, error) {
	query := `
		SELECT ` + waitingListColumns + `
		FROM waiting_list
		WHERE event_id = $1 AND lower(email) = lower($2)
		LIMIT 1
	`
	entry, err := scanWaitingListEntry(r.DB.QueryRowContext(ctx, query, eventID, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *waitingListRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.WaitingListEntry, error) {
	query := `
		SELECT ` + waitingListColumns + `
		FROM waiting_list
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.WaitingListEntry, 0)
	for rows.Next() {
		entry, err := scanWaitingListEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *waitingListRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM waiting_list WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
