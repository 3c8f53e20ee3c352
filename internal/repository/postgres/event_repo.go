package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gameonbaby/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, title, description, price, place, capacity, "from", "to", visible, bank_account_id, created_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var bankAccountNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Price, &e.Place, &e.Capacity,
		&e.From, &e.To, &e.Visible, &bankAccountNull, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if bankAccountNull.Valid {
		e.BankAccountID = &bankAccountNull.String
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, price, place, capacity, "from", "to", visible, bank_account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Price, e.Place, e.Capacity, e.From, e.To, e.Visible, e.BankAccountID, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListVisible(ctx context.Context) ([]*domain.Event, error) {
	return r.list(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE visible
		ORDER BY "from" ASC
	`)
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	return r.list(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY "from" DESC
	`)
}

func (r *eventRepository) list(ctx context.Context, query string) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if input.Title != nil {
		add("title", *input.Title)
	}
	if input.Description != nil {
		add("description", *input.Description)
	}
	if input.Price != nil {
		add("price", *input.Price)
	}
	if input.Place != nil {
		add("place", *input.Place)
	}
	if input.Capacity != nil {
		add("capacity", *input.Capacity)
	}
	if input.From != nil {
		add(`"from"`, *input.From)
	}
	if input.To != nil {
		add(`"to"`, *input.To)
	}
	if input.Visible != nil {
		add("visible", *input.Visible)
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING `+eventColumns+`
	`, strings.Join(setClauses, ", "), n)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
