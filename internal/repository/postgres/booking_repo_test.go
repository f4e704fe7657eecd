package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventbooker/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func newMockBookingRepo(t *testing.T) (domain.BookingRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	repo := NewBookingRepository(NewConnWithDB(db))
	return repo, mock, func() { db.Close() }
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings \(event_id, email\)`).
					WithArgs("ev-uuid-1", "test@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
						AddRow("bk-uuid-1", createdAt, createdAt))
			},
		},
		{
			name: "pair unique violation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_event_id_email_key"})
			},
			wantErr: domain.ErrDuplicateBooking,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockBookingRepo(t)
			defer cleanup()
			tt.mock(mock)

			booking := &domain.Booking{EventID: "ev-uuid-1", Email: "test@example.com"}
			err := repo.Create(ctx, booking)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "bk-uuid-1", booking.ID)
			require.Equal(t, createdAt, booking.CreatedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_GetByEventAndEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockBookingRepo(t)
		defer cleanup()
		mock.ExpectQuery(`SELECT id, event_id, email`).
			WithArgs("ev-1", "a@b.co").
			WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "email", "created_at", "updated_at"}).
				AddRow("bk-1", "ev-1", "a@b.co", now, now))

		booking, err := repo.GetByEventAndEmail(ctx, "ev-1", "a@b.co")
		require.NoError(t, err)
		require.Equal(t, "bk-1", booking.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := newMockBookingRepo(t)
		defer cleanup()
		mock.ExpectQuery(`SELECT id, event_id, email`).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEventAndEmail(ctx, "ev-1", "missing@b.co")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	strPtr := func(s string) *string { return &s }

	t.Run("email patch", func(t *testing.T) {
		repo, mock, cleanup := newMockBookingRepo(t)
		defer cleanup()
		mock.ExpectQuery(`UPDATE bookings SET updated_at = NOW\(\), email = \$1`).
			WithArgs("new@example.com", "bk-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "email", "created_at", "updated_at"}).
				AddRow("bk-1", "ev-1", "new@example.com", now, now))

		updated, err := repo.Update(ctx, "bk-1", domain.BookingPatch{Email: strPtr("new@example.com")})
		require.NoError(t, err)
		require.Equal(t, "new@example.com", updated.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pair collision on update", func(t *testing.T) {
		repo, mock, cleanup := newMockBookingRepo(t)
		defer cleanup()
		mock.ExpectQuery(`UPDATE bookings SET`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_event_id_email_key"})

		_, err := repo.Update(ctx, "bk-1", domain.BookingPatch{Email: strPtr("taken@example.com")})
		require.ErrorIs(t, err, domain.ErrDuplicateBooking)
	})

	t.Run("empty patch fetches current row", func(t *testing.T) {
		repo, mock, cleanup := newMockBookingRepo(t)
		defer cleanup()
		mock.ExpectQuery(`SELECT id, event_id, email`).
			WithArgs("bk-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "email", "created_at", "updated_at"}).
				AddRow("bk-1", "ev-1", "a@b.co", now, now))

		updated, err := repo.Update(ctx, "bk-1", domain.BookingPatch{})
		require.NoError(t, err)
		require.Equal(t, "bk-1", updated.ID)
	})
}
