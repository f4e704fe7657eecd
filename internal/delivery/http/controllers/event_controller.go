package controllers

import (
	"log/slog"
	"net/http"

	"eventbooker/internal/delivery/http/helpers"
	"eventbooker/internal/domain"
)

// CreateEventRequest is the request body for POST /events. Dates and times
// may arrive in any supported loose format; they are stored canonically.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Audience    string   `json:"audience"`
	Organizer   string   `json:"organizer"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Agenda      []string `json:"agenda"`
	Tags        []string `json:"tags"`
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}. Absent
// fields are left unchanged; slug is derived and cannot be set directly.
type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Overview    *string   `json:"overview"`
	Image       *string   `json:"image"`
	Venue       *string   `json:"venue"`
	Location    *string   `json:"location"`
	Audience    *string   `json:"audience"`
	Organizer   *string   `json:"organizer"`
	Date        *string   `json:"date"`
	Time        *string   `json:"time"`
	Mode        *string   `json:"mode"`
	Agenda      *[]string `json:"agenda"`
	Tags        *[]string `json:"tags"`
}

func (r UpdateEventRequest) patch() domain.EventPatch {
	return domain.EventPatch{
		Title:       r.Title,
		Description: r.Description,
		Overview:    r.Overview,
		Image:       r.Image,
		Venue:       r.Venue,
		Location:    r.Location,
		Audience:    r.Audience,
		Organizer:   r.Organizer,
		Date:        r.Date,
		Time:        r.Time,
		Mode:        r.Mode,
		Agenda:      r.Agenda,
		Tags:        r.Tags,
	}
}

// EventSuccessResponse is the success envelope carrying a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create an event. Date and time accept loose formats and are stored canonically (YYYY-MM-DD, 24-hour HH:MM); the slug is derived from the title and must be unique.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event fields"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), domain.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Overview:    req.Overview,
		Image:       req.Image,
		Venue:       req.Venue,
		Location:    req.Location,
		Audience:    req.Audience,
		Organizer:   req.Organizer,
		Date:        req.Date,
		Time:        req.Time,
		Mode:        req.Mode,
		Agenda:      req.Agenda,
		Tags:        req.Tags,
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partially update an event. Only fields present in the body are re-validated and changed; a title change regenerates the slug and re-checks its uniqueness.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param event body UpdateEventRequest true "Changed fields"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), eventID, req.patch())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetByID(r.Context(), eventID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/slug/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	event, err := c.Service.GetBySlug(r.Context(), slug)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
