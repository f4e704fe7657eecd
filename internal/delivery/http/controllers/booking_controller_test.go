package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventbooker/internal/delivery/http/helpers"
	"eventbooker/internal/domain"
)

type mockBookingService struct {
	booking *domain.Booking
	err     error
}

func (m *mockBookingService) Create(ctx context.Context, in domain.BookingInput) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

func (m *mockBookingService) Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

func TestBookingController_CreateBooking_Success(t *testing.T) {
	b := &domain.Booking{ID: "b1", EventID: "e1", Email: "test@example.com"}
	ctrl := NewBookingController(testLogger(), &mockBookingService{booking: b})

	body := `{"event_id": "e1", "email": "TEST@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.CreateBooking(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	var resp BookingSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data == nil || resp.Data.Email != "test@example.com" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestBookingController_CreateBooking_MissingFields(t *testing.T) {
	ctrl := NewBookingController(testLogger(), &mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	ctrl.CreateBooking(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestBookingController_CreateBooking_DanglingEvent(t *testing.T) {
	svc := &mockBookingService{
		err: domain.NewFieldError("event_id", domain.ErrDanglingReference, "no event with id e1"),
	}
	ctrl := NewBookingController(testLogger(), svc)

	body := `{"event_id": "e1", "email": "test@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.CreateBooking(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestBookingController_CreateBooking_Duplicate(t *testing.T) {
	svc := &mockBookingService{
		err: domain.NewFieldError("email", domain.ErrDuplicateBooking, ""),
	}
	ctrl := NewBookingController(testLogger(), svc)

	body := `{"event_id": "e1", "email": "test@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.CreateBooking(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeConflict {
		t.Fatalf("expected conflict error, got %+v", resp.Error)
	}
}

func TestBookingController_UpdateBooking_Success(t *testing.T) {
	b := &domain.Booking{ID: "b1", EventID: "e1", Email: "new@example.com"}
	ctrl := NewBookingController(testLogger(), &mockBookingService{booking: b})

	req := httptest.NewRequest(http.MethodPatch, "/bookings/b1", strings.NewReader(`{"email": "NEW@example.com"}`))
	req.SetPathValue("bookingID", "b1")
	w := httptest.NewRecorder()

	ctrl.UpdateBooking(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestBookingController_UpdateBooking_MalformedReference(t *testing.T) {
	svc := &mockBookingService{
		err: domain.NewFieldError("event_id", domain.ErrMalformedReference, "not-a-uuid"),
	}
	ctrl := NewBookingController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/b1", strings.NewReader(`{"event_id": "not-a-uuid"}`))
	req.SetPathValue("bookingID", "b1")
	w := httptest.NewRecorder()

	ctrl.UpdateBooking(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestBookingController_GetBookingByID_NotFound(t *testing.T) {
	ctrl := NewBookingController(testLogger(), &mockBookingService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/bookings/missing", nil)
	req.SetPathValue("bookingID", "missing")
	w := httptest.NewRecorder()

	ctrl.GetBookingByID(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
