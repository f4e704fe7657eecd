package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventbooker/internal/domain"
)

type bookingRepository struct {
	conn *Conn
}

// NewBookingRepository creates a BookingRepository on the shared connection
// service.
func NewBookingRepository(conn *Conn) domain.BookingRepository {
	return &bookingRepository{conn: conn}
}

const bookingColumns = `id, event_id, email, created_at, updated_at`

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO bookings (event_id, email)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err = db.QueryRowContext(ctx, query, b.EventID, b.Email).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if derr := duplicateErr(err); derr != nil {
			return derr
		}
		return err
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE event_id = $1 AND email = $2`
	return scanBooking(db.QueryRowContext(ctx, query, eventID, email))
}

func (r *bookingRepository) Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if patch.EventID != nil {
		setClauses = append(setClauses, fmt.Sprintf("event_id = $%d", n))
		args = append(args, *patch.EventID)
		n++
	}
	if patch.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", n))
		args = append(args, *patch.Email)
		n++
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE bookings SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, bookingColumns)

	b, err := scanBooking(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if derr := duplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return b, nil
}
