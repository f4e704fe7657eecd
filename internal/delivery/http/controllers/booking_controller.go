package controllers

import (
	"log/slog"
	"net/http"

	"eventbooker/internal/delivery/http/helpers"
	"eventbooker/internal/domain"
)

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

// Validate implements Validator. Presence only; syntax and referential
// checks belong to the service.
func (r CreateBookingRequest) Validate() []string {
	var errs []string
	if r.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if r.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// UpdateBookingRequest is the request body for PATCH /bookings/{bookingID}.
// Absent fields are left unchanged.
type UpdateBookingRequest struct {
	EventID *string `json:"event_id"`
	Email   *string `json:"email"`
}

// BookingSuccessResponse is the success envelope carrying a single booking.
type BookingSuccessResponse struct {
	Data  *domain.Booking   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book an event
// @Description Create a booking for an existing event. The email is stored lowercased and trimmed; one booking per (event, email) pair.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking fields"
// @Success 201 {object} controllers.BookingSuccessResponse "data contains the created booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event does not exist)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already booked)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.Create(r.Context(), domain.BookingInput{
		EventID: req.EventID,
		Email:   req.Email,
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// UpdateBooking godoc
// @Summary Update a booking
// @Description Partially update a booking. The referenced event is re-checked only when event_id itself changes.
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID (UUID)"
// @Param booking body UpdateBookingRequest true "Changed fields"
// @Success 200 {object} controllers.BookingSuccessResponse "data contains the updated booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings/{bookingID} [patch]
func (c *BookingController) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing bookingID")
		return
	}
	var req UpdateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.Update(r.Context(), bookingID, domain.BookingPatch{
		EventID: req.EventID,
		Email:   req.Email,
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// GetBookingByID godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID (UUID)"
// @Success 200 {object} controllers.BookingSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings/{bookingID} [get]
func (c *BookingController) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing bookingID")
		return
	}
	booking, err := c.Service.GetByID(r.Context(), bookingID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}
