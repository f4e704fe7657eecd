package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventbooker/internal/domain"
	"eventbooker/internal/normalize"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// stringRule is one stage of the ordered validation pipeline for a string
// field: required presence after trim, then an optional length bound.
// Stages run left to right and fail fast on the first violation.
type stringRule struct {
	field string
	value string
	max   int // 0 means unbounded
}

func runStringRules(rules []stringRule) (map[string]string, error) {
	trimmed := make(map[string]string, len(rules))
	for _, r := range rules {
		v := strings.TrimSpace(r.value)
		if v == "" {
			return nil, domain.NewFieldError(r.field, domain.ErrMissingField, "")
		}
		if r.max > 0 && len([]rune(v)) > r.max {
			return nil, domain.NewFieldError(r.field, domain.ErrFieldLength,
				fmt.Sprintf("maximum %d characters", r.max))
		}
		trimmed[r.field] = v
	}
	return trimmed, nil
}

func parseMode(value string) (domain.Mode, error) {
	m := domain.Mode(strings.TrimSpace(value))
	for _, allowed := range domain.Modes {
		if m == allowed {
			return m, nil
		}
	}
	return "", domain.NewFieldError("mode", domain.ErrInvalidEnum,
		"must be one of online, offline, hybrid")
}

func requireNonEmptySequence(field string, values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, domain.NewFieldError(field, domain.ErrEmptySequence, "")
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out, nil
}

func (s *eventService) Create(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trimmed, err := runStringRules([]stringRule{
		{field: "title", value: in.Title, max: domain.MaxTitleLen},
		{field: "description", value: in.Description, max: domain.MaxDescriptionLen},
		{field: "overview", value: in.Overview, max: domain.MaxOverviewLen},
		{field: "image", value: in.Image},
		{field: "venue", value: in.Venue},
		{field: "location", value: in.Location},
		{field: "audience", value: in.Audience},
		{field: "organizer", value: in.Organizer},
	})
	if err != nil {
		return nil, err
	}

	mode, err := parseMode(in.Mode)
	if err != nil {
		return nil, err
	}
	agenda, err := requireNonEmptySequence("agenda", in.Agenda)
	if err != nil {
		return nil, err
	}
	tags, err := requireNonEmptySequence("tags", in.Tags)
	if err != nil {
		return nil, err
	}

	date, err := normalize.Date(in.Date)
	if err != nil {
		return nil, err
	}
	canonicalTime, err := normalize.Time(in.Time)
	if err != nil {
		return nil, err
	}
	slug, err := normalize.Slug(trimmed["title"])
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		Title:       trimmed["title"],
		Slug:        slug,
		Description: trimmed["description"],
		Overview:    trimmed["overview"],
		Image:       trimmed["image"],
		Venue:       trimmed["venue"],
		Location:    trimmed["location"],
		Audience:    trimmed["audience"],
		Organizer:   trimmed["organizer"],
		Date:        date,
		Time:        canonicalTime,
		Mode:        mode,
		Agenda:      agenda,
		Tags:        tags,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.NewFieldError("slug", domain.ErrDuplicateSlug, slug)
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Update re-validates only the fields present in the patch. A changed title
// regenerates the slug before the store re-checks its uniqueness.
func (s *eventService) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Slug is derived, never caller-supplied.
	patch.Slug = nil

	normalizeField := func(field string, p **string, max int) error {
		if *p == nil {
			return nil
		}
		trimmed, err := runStringRules([]stringRule{{field: field, value: **p, max: max}})
		if err != nil {
			return err
		}
		v := trimmed[field]
		*p = &v
		return nil
	}

	if err := normalizeField("title", &patch.Title, domain.MaxTitleLen); err != nil {
		return nil, err
	}
	if err := normalizeField("description", &patch.Description, domain.MaxDescriptionLen); err != nil {
		return nil, err
	}
	if err := normalizeField("overview", &patch.Overview, domain.MaxOverviewLen); err != nil {
		return nil, err
	}
	if err := normalizeField("image", &patch.Image, 0); err != nil {
		return nil, err
	}
	if err := normalizeField("venue", &patch.Venue, 0); err != nil {
		return nil, err
	}
	if err := normalizeField("location", &patch.Location, 0); err != nil {
		return nil, err
	}
	if err := normalizeField("audience", &patch.Audience, 0); err != nil {
		return nil, err
	}
	if err := normalizeField("organizer", &patch.Organizer, 0); err != nil {
		return nil, err
	}

	if patch.Mode != nil {
		mode, err := parseMode(*patch.Mode)
		if err != nil {
			return nil, err
		}
		m := string(mode)
		patch.Mode = &m
	}
	if patch.Agenda != nil {
		agenda, err := requireNonEmptySequence("agenda", *patch.Agenda)
		if err != nil {
			return nil, err
		}
		patch.Agenda = &agenda
	}
	if patch.Tags != nil {
		tags, err := requireNonEmptySequence("tags", *patch.Tags)
		if err != nil {
			return nil, err
		}
		patch.Tags = &tags
	}
	if patch.Date != nil {
		date, err := normalize.Date(*patch.Date)
		if err != nil {
			return nil, err
		}
		patch.Date = &date
	}
	if patch.Time != nil {
		canonicalTime, err := normalize.Time(*patch.Time)
		if err != nil {
			return nil, err
		}
		patch.Time = &canonicalTime
	}
	if patch.Title != nil {
		slug, err := normalize.Slug(*patch.Title)
		if err != nil {
			return nil, err
		}
		patch.Slug = &slug
	}

	updated, err := s.eventRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.NewFieldError("slug", domain.ErrDuplicateSlug, "")
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}
