package postgres

import (
	"context"
	"database/sql"

	"gameonbaby/internal/domain"
)

type historyRepository struct {
	DB *sql.DB
}

func NewHistoryRepository(db *sql.DB) domain.HistoryRepository {
	return &historyRepository{
		DB: db,
	}
}

const insertHistoryQuery = `
	INSERT INTO registration_history (event_id, registration_id, first_name, last_name, email, phone_number, action_type, user_id, event_title, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id
`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertHistory(ctx context.Context, db execer, entry *domain.HistoryEntry) error {
	return db.QueryRowContext(ctx, insertHistoryQuery,
		entry.EventID, entry.RegistrationID, entry.FirstName, entry.LastName,
		entry.Email, entry.PhoneNumber, entry.Action, entry.UserID,
		entry.EventTitle, entry.CreatedAt,
	).Scan(&entry.ID)
}

func (r *historyRepository) Create(ctx context.Context, entry *domain.HistoryEntry) error {
	return insertHistory(ctx, r.DB, entry)
}

func (r *historyRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.HistoryEntry, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registration_history`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, event_id, registration_id, first_name, last_name, email, phone_number, action_type, user_id, event_title, created_at
		FROM registration_history
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]*domain.HistoryEntry, 0)
	for rows.Next() {
		entry := &domain.HistoryEntry{}
		var regIDNull, userIDNull sql.NullString
		if err := rows.Scan(
			&entry.ID, &entry.EventID, &regIDNull, &entry.FirstName, &entry.LastName,
			&entry.Email, &entry.PhoneNumber, &entry.Action, &userIDNull,
			&entry.EventTitle, &entry.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		if regIDNull.Valid {
			entry.RegistrationID = &regIDNull.String
		}
		if userIDNull.Valid {
			entry.UserID = &userIDNull.String
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
