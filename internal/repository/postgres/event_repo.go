package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventbooker/internal/domain"
)

// Unique constraint names; violations are translated into the matching
// domain error.
const (
	constraintEventSlug    = "events_slug_key"
	constraintBookingEmail = "bookings_event_id_email_key"
)

// duplicateErr maps a pq unique violation (23505) to the domain error for
// its constraint. Returns nil if err is not a unique violation.
func duplicateErr(err error) error {
	var perr *pq.Error
	if !errors.As(err, &perr) || perr.Code != "23505" {
		return nil
	}
	switch perr.Constraint {
	case constraintEventSlug:
		return domain.ErrDuplicateSlug
	case constraintBookingEmail:
		return domain.ErrDuplicateBooking
	default:
		return fmt.Errorf("unique constraint %s violated", perr.Constraint)
	}
}

type eventRepository struct {
	conn *Conn
}

// NewEventRepository creates an EventRepository on the shared connection
// service.
func NewEventRepository(conn *Conn) domain.EventRepository {
	return &eventRepository{conn: conn}
}

const eventColumns = `id, title, slug, description, overview, image, venue, location, audience, organizer, date, time, mode, agenda, tags, created_at, updated_at`

func scanEvent(row *sql.Row) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Overview, &e.Image,
		&e.Venue, &e.Location, &e.Audience, &e.Organizer, &e.Date, &e.Time,
		&e.Mode, pq.Array(&e.Agenda), pq.Array(&e.Tags),
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (title, slug, description, overview, image, venue, location, audience, organizer, date, time, mode, agenda, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err = db.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Overview, e.Image,
		e.Venue, e.Location, e.Audience, e.Organizer, e.Date, e.Time,
		e.Mode, pq.Array(e.Agenda), pq.Array(e.Tags),
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if derr := duplicateErr(err); derr != nil {
			return derr
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(db.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	return scanEvent(db.QueryRowContext(ctx, query, slug))
}

func (r *eventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	err = db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
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
	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Overview != nil {
		add("overview", *patch.Overview)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Venue != nil {
		add("venue", *patch.Venue)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Audience != nil {
		add("audience", *patch.Audience)
	}
	if patch.Organizer != nil {
		add("organizer", *patch.Organizer)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.Time != nil {
		add("time", *patch.Time)
	}
	if patch.Mode != nil {
		add("mode", *patch.Mode)
	}
	if patch.Agenda != nil {
		add("agenda", pq.Array(*patch.Agenda))
	}
	if patch.Tags != nil {
		add("tags", pq.Array(*patch.Tags))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)

	e, err := scanEvent(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if derr := duplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return e, nil
}
