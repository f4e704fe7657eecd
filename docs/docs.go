// Package docs holds the Swagger document served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Event Booker API",
        "description": "Event and booking management service",
        "version": "1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Events", "description": "Event management"},
        {"name": "Bookings", "description": "Booking management"}
    ],
    "paths": {
        "/events": {
            "post": {
                "tags": ["Events"],
                "summary": "Create event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/events/{eventID}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get event by ID",
                "parameters": [
                    {"name": "eventID", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            },
            "patch": {
                "tags": ["Events"],
                "summary": "Update event",
                "parameters": [
                    {"name": "eventID", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/events/slug/{slug}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get event by slug",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/bookings": {
            "post": {
                "tags": ["Bookings"],
                "summary": "Create booking",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBookingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/bookings/{bookingID}": {
            "get": {
                "tags": ["Bookings"],
                "summary": "Get booking by ID",
                "parameters": [
                    {"name": "bookingID", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            },
            "patch": {
                "tags": ["Bookings"],
                "summary": "Update booking",
                "parameters": [
                    {"name": "bookingID", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateBookingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "slug": {"type": "string"},
                "description": {"type": "string"},
                "overview": {"type": "string"},
                "image": {"type": "string"},
                "venue": {"type": "string"},
                "location": {"type": "string"},
                "audience": {"type": "string"},
                "organizer": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "mode": {"type": "string", "enum": ["online", "offline", "hybrid"]},
                "agenda": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Booking": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "event_id": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "CreateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "overview": {"type": "string"},
                "image": {"type": "string"},
                "venue": {"type": "string"},
                "location": {"type": "string"},
                "audience": {"type": "string"},
                "organizer": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "mode": {"type": "string", "enum": ["online", "offline", "hybrid"]},
                "agenda": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["title", "description", "overview", "image", "venue", "location", "audience", "organizer", "date", "time", "mode", "agenda", "tags"]
        },
        "UpdateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "overview": {"type": "string"},
                "image": {"type": "string"},
                "venue": {"type": "string"},
                "location": {"type": "string"},
                "audience": {"type": "string"},
                "organizer": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "mode": {"type": "string", "enum": ["online", "offline", "hybrid"]},
                "agenda": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "CreateBookingRequest": {
            "type": "object",
            "properties": {
                "event_id": {"type": "string"},
                "email": {"type": "string"}
            },
            "required": ["event_id", "email"]
        },
        "UpdateBookingRequest": {
            "type": "object",
            "properties": {
                "event_id": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "APIResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
