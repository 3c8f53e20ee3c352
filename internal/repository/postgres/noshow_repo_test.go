package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gameonbaby/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestNoShowRepository_ListCandidatesByEventID(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone_number"}).
		AddRow("reg-1", "Jana", "Nova", "jana@example.com", "+420123456789").
		AddRow("reg-2", "Petr", "Svoboda", "petr@example.com", "")
	mock.ExpectQuery(`SELECT r.id, r.first_name, r.last_name, r.email, r.phone_number`).
		WithArgs("ev-1").
		WillReturnRows(rows)

	repo := NewNoShowRepository(db)
	got, err := repo.ListCandidatesByEventID(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "jana@example.com", got[0].Email)
	require.Equal(t, "reg-2", got[1].RegistrationID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoShowRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()
	eventDate := time.Date(2026, 2, 10, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		noShows []*domain.NoShow
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "success two rows one tx",
			noShows: []*domain.NoShow{
				{Email: "jana@example.com", EventID: "ev-1", EventTitle: "Monday practice", EventDate: eventDate, FirstName: "Jana", LastName: "Nova", CreatedAt: testCreatedAt},
				{Email: "petr@example.com", EventID: "ev-1", EventTitle: "Monday practice", EventDate: eventDate, FirstName: "Petr", LastName: "Svoboda", CreatedAt: testCreatedAt},
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO no_shows`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ns-1"))
				mock.ExpectQuery(`INSERT INTO no_shows`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ns-2"))
				mock.ExpectCommit()
			},
		},
		{
			name: "failure rolls back",
			noShows: []*domain.NoShow{
				{Email: "jana@example.com", EventID: "ev-1", CreatedAt: testCreatedAt},
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO no_shows`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name:    "empty batch is a no-op",
			noShows: nil,
			mock:    func(mock sqlmock.Sqlmock) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewNoShowRepository(db)
			err = repo.CreateBatch(ctx, tt.noShows)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoShowRepository_ExistingEmailsByEventID(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"email"}).
		AddRow("jana@example.com").
		AddRow("petr@example.com")
	mock.ExpectQuery(`SELECT lower\(email\) FROM no_shows`).
		WithArgs("ev-1").
		WillReturnRows(rows)

	repo := NewNoShowRepository(db)
	got, err := repo.ExistingEmailsByEventID(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	_, ok := got["jana@example.com"]
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
