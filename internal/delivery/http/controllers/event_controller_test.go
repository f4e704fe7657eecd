package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventbooker/internal/delivery/http/helpers"
	"eventbooker/internal/domain"
)

type mockEventService struct {
	event *domain.Event
	err   error
}

func (m *mockEventService) Create(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestEventController_CreateEvent_Success(t *testing.T) {
	ev := &domain.Event{ID: "e1", Title: "Tech Conference 2024", Slug: "tech-conference-2024"}
	ctrl := NewEventController(testLogger(), &mockEventService{event: ev})

	body := `{"title": "Tech Conference 2024", "description": "d", "overview": "o", "image": "i",
		"venue": "v", "location": "l", "audience": "a", "organizer": "org",
		"date": "December 31, 2024", "time": "2:30 PM", "mode": "offline",
		"agenda": ["Keynote"], "tags": ["tech"]}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	var resp EventSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
	if resp.Data == nil || resp.Data.Slug != "tech-conference-2024" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestEventController_CreateEvent_InvalidJSON(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{})

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_CreateEvent_ValidationError(t *testing.T) {
	svc := &mockEventService{err: domain.NewFieldError("title", domain.ErrMissingField, "")}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"title": ""}`))
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeBadRequest {
		t.Fatalf("expected bad_request error, got %+v", resp.Error)
	}
}

func TestEventController_CreateEvent_DuplicateSlug(t *testing.T) {
	svc := &mockEventService{err: domain.NewFieldError("title", domain.ErrDuplicateSlug, "tech-conference-2024")}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"title": "Tech Conference 2024"}`))
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestEventController_UpdateEvent_NotFound(t *testing.T) {
	svc := &mockEventService{err: domain.ErrNotFound}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPatch, "/events/unknown", strings.NewReader(`{"title": "New"}`))
	req.SetPathValue("eventID", "unknown")
	w := httptest.NewRecorder()

	ctrl.UpdateEvent(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_GetEventByID_Success(t *testing.T) {
	ev := &domain.Event{ID: "e1", Title: "Event 1"}
	ctrl := NewEventController(testLogger(), &mockEventService{event: ev})

	req := httptest.NewRequest(http.MethodGet, "/events/e1", nil)
	req.SetPathValue("eventID", "e1")
	w := httptest.NewRecorder()

	ctrl.GetEventByID(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestEventController_GetEventBySlug_InternalError(t *testing.T) {
	svc := &mockEventService{err: errors.New("boom")}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/slug/some-slug", nil)
	req.SetPathValue("slug", "some-slug")
	w := httptest.NewRecorder()

	ctrl.GetEventBySlug(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
