// Package http wires the controllers into the request router. All
// validation and persistence rules live below the service boundary; this
// layer only parses requests and shapes responses.
package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventbooker/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, bookingController *controllers.BookingController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("PATCH /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("GET /events/slug/{slug}", eventController.GetEventBySlug)

	// Bookings
	mux.HandleFunc("POST /bookings", bookingController.CreateBooking)
	mux.HandleFunc("GET /bookings/{bookingID}", bookingController.GetBookingByID)
	mux.HandleFunc("PATCH /bookings/{bookingID}", bookingController.UpdateBooking)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
