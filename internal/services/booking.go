package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventbooker/internal/domain"
	"eventbooker/internal/normalize"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService. emailService may be nil, in
// which case no confirmation emails are sent.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// parseEventReference validates that id is a canonical UUID.
func parseEventReference(id string) (string, error) {
	eventID := strings.TrimSpace(id)
	if eventID == "" {
		return "", domain.NewFieldError("event_id", domain.ErrMissingField, "")
	}
	if _, err := uuid.Parse(eventID); err != nil {
		return "", domain.NewFieldError("event_id", domain.ErrMalformedReference, eventID)
	}
	return eventID, nil
}

// requireEventExists is the referential-integrity check: the referenced
// event must exist at the moment the reference is set or changed.
func (s *bookingService) requireEventExists(ctx context.Context, eventID string) error {
	exists, err := s.eventRepo.ExistsByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("check event exists: %w", err)
	}
	if !exists {
		return domain.NewFieldError("event_id", domain.ErrDanglingReference,
			fmt.Sprintf("no event with id %s", eventID))
	}
	return nil
}

func (s *bookingService) Create(ctx context.Context, in domain.BookingInput) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	eventID, err := parseEventReference(in.EventID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, domain.NewFieldError("email", domain.ErrMissingField, "")
	}
	email, err := normalize.Email(in.Email)
	if err != nil {
		return nil, err
	}
	if err := s.requireEventExists(ctx, eventID); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		EventID: eventID,
		Email:   email,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrDuplicateBooking) {
			return nil, domain.NewFieldError("email", domain.ErrDuplicateBooking, email)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, booking)
	return booking, nil
}

// Update re-validates only changed fields. The referential-integrity check
// runs solely when event_id itself is in the patch; an unchanged event_id is
// never re-checked, even if the referenced event has since been removed, so
// that unrelated field changes cannot fail retroactively.
func (s *bookingService) Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if patch.Email != nil {
		email, err := normalize.Email(*patch.Email)
		if err != nil {
			return nil, err
		}
		patch.Email = &email
	}
	if patch.EventID != nil {
		eventID, err := parseEventReference(*patch.EventID)
		if err != nil {
			return nil, err
		}
		if err := s.requireEventExists(ctx, eventID); err != nil {
			return nil, err
		}
		patch.EventID = &eventID
	}

	updated, err := s.bookingRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		if errors.Is(err, domain.ErrDuplicateBooking) {
			return nil, domain.NewFieldError("email", domain.ErrDuplicateBooking, "")
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return updated, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

// sendConfirmation is best-effort: a failed or missing mailer never fails
// the booking that already persisted.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	if s.emailService == nil {
		return
	}
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "booking confirmation skipped",
			"booking_id", booking.ID, "err", err)
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:      booking.Email,
		EventTitle: event.Title,
		EventDate:  event.Date,
		EventTime:  event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation failed",
			"booking_id", booking.ID, "err", err)
	}
}
