package domain

import (
	"context"
	"time"
)

// Mode is the delivery mode of an event.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeHybrid  Mode = "hybrid"
)

// Modes lists every allowed event mode.
var Modes = []Mode{ModeOnline, ModeOffline, ModeHybrid}

// Field length bounds applied after trimming.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 1000
	MaxOverviewLen    = 500
)

// Event is a bookable event in its canonical stored form: date is always
// YYYY-MM-DD, time is always 24-hour HH:MM, and slug is derived from the
// current title.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Audience    string    `json:"audience"`
	Organizer   string    `json:"organizer"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        Mode      `json:"mode"`
	Agenda      []string  `json:"agenda"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventInput is the raw field set accepted when creating an event, before
// any normalization has run.
type EventInput struct {
	Title       string
	Description string
	Overview    string
	Image       string
	Venue       string
	Location    string
	Audience    string
	Organizer   string
	Date        string
	Time        string
	Mode        string
	Agenda      []string
	Tags        []string
}

// EventPatch carries the fields of an update. Nil means "unchanged"; only
// set fields are re-validated and written. Slug is derived from Title by the
// service when Title is set and must be left nil by callers.
type EventPatch struct {
	Title       *string
	Slug        *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Audience    *string
	Organizer   *string
	Date        *string
	Time        *string
	Mode        *string
	Agenda      *[]string
	Tags        *[]string
}

// Empty reports whether the patch sets no fields.
func (p EventPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Overview == nil &&
		p.Image == nil && p.Venue == nil && p.Location == nil &&
		p.Audience == nil && p.Organizer == nil && p.Date == nil &&
		p.Time == nil && p.Mode == nil && p.Agenda == nil && p.Tags == nil
}

// EventRepository defines the storage operations for events. ID and
// timestamps are generated by the store on Create; UpdatedAt is refreshed by
// the store on Update.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
}

// EventService owns validation, normalization and persistence of events.
type EventService interface {
	Create(ctx context.Context, in EventInput) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
}
