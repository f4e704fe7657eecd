package domain

import (
	"context"
	"time"
)

// Booking registers one email address for one event. Email is stored in its
// canonical lowercased form; the (event_id, email) pair is unique.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingInput is the raw field set accepted when creating a booking.
type BookingInput struct {
	EventID string
	Email   string
}

// BookingPatch carries the fields of a booking update. Nil means
// "unchanged". Referential integrity of EventID is only re-checked when
// EventID itself is set.
type BookingPatch struct {
	EventID *string
	Email   *string
}

// Empty reports whether the patch sets no fields.
func (p BookingPatch) Empty() bool {
	return p.EventID == nil && p.Email == nil
}

// BookingRepository defines the storage operations for bookings. ID and
// timestamps are generated by the store on Create; UpdatedAt is refreshed by
// the store on Update.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*Booking, error)
	Update(ctx context.Context, id string, patch BookingPatch) (*Booking, error)
}

// BookingService owns validation, referential integrity and persistence of
// bookings.
type BookingService interface {
	Create(ctx context.Context, in BookingInput) (*Booking, error)
	Update(ctx context.Context, id string, patch BookingPatch) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
}
