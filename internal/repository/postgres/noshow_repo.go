package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gameonbaby/internal/domain"
)

type noShowRepository struct {
	DB *sql.DB
}

func NewNoShowRepository(db *sql.DB) domain.NoShowRepository {
	return &noShowRepository{
		DB: db,
	}
}

const insertNoShowQuery = `
	INSERT INTO no_shows (email, event_id, event_title, event_date, first_name, last_name, fee_paid, notes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id
`

func (r *noShowRepository) Create(ctx context.Context, n *domain.NoShow) error {
	return r.DB.QueryRowContext(ctx, insertNoShowQuery,
		n.Email, n.EventID, n.EventTitle, n.EventDate, n.FirstName, n.LastName, n.FeePaid, n.Notes, n.CreatedAt,
	).Scan(&n.ID)
}

func (r *noShowRepository) CreateBatch(ctx context.Context, ns []*domain.NoShow) error {
	if len(ns) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	for _, n := range ns {
		if err := tx.QueryRowContext(ctx, insertNoShowQuery,
			n.Email, n.EventID, n.EventTitle, n.EventDate, n.FirstName, n.LastName, n.FeePaid, n.Notes, n.CreatedAt,
		).Scan(&n.ID); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *noShowRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.NoShow, error) {
	query := `
		SELECT id, email, event_id, event_title, event_date, first_name, last_name, fee_paid, notes, created_at
		FROM no_shows
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	noShows := make([]*domain.NoShow, 0)
	for rows.Next() {
		n := &domain.NoShow{}
		if err := rows.Scan(
			&n.ID, &n.Email, &n.EventID, &n.EventTitle, &n.EventDate,
			&n.FirstName, &n.LastName, &n.FeePaid, &n.Notes, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		noShows = append(noShows, n)
	}
	return noShows, rows.Err()
}

func (r *noShowRepository) ExistingEmailsByEventID(ctx context.Context, eventID string) (map[string]struct{}, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT lower(email) FROM no_shows WHERE event_id = $1`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := make(map[string]struct{})
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails[email] = struct{}{}
	}
	return emails, rows.Err()
}

// ListCandidatesByEventID selects active, non-attended registrations with no
// paid payment that are not yet recorded as no-shows for the event.
func (r *noShowRepository) ListCandidatesByEventID(ctx context.Context, eventID string) ([]*domain.NoShowCandidate, error) {
	query := `
		SELECT r.id, r.first_name, r.last_name, r.email, r.phone_number
		FROM registrations r
		LEFT JOIN payments p ON p.registration_id = r.id AND p.paid
		WHERE r.event_id = $1
		  AND NOT r.deleted
		  AND NOT r.attended
		  AND p.id IS NULL
		  AND NOT EXISTS (
		      SELECT 1 FROM no_shows n
		      WHERE n.event_id = r.event_id AND lower(n.email) = lower(r.email)
		  )
		ORDER BY r.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]*domain.NoShowCandidate, 0)
	for rows.Next() {
		c := &domain.NoShowCandidate{}
		if err := rows.Scan(&c.RegistrationID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *noShowRepository) SetFeePaid(ctx context.Context, id string, feePaid bool) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE no_shows SET fee_paid = $2 WHERE id = $1`, id, feePaid)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
