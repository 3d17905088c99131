// Package handler implements the HTTP surface for the trip planner. It is the
// rendering-layer boundary: every route reads a state snapshot or dispatches
// one of the itinerary/booking actions, and nothing else.
// Handlers are methods on Server, split into page-specific files
// (itinerary.go, booking.go) that all share the same struct.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/internal/booking"
	"github.com/pkordes/trip-planner/internal/itinerary"
)

// ItineraryStore defines the operations the itinerary handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a scripted double instead of a real store.
type ItineraryStore interface {
	Dispatch(action itinerary.Action) *itinerary.State
	Snapshot() *itinerary.State
}

// BookingMachine defines the operations the booking handlers depend on.
type BookingMachine interface {
	Dispatch(action booking.Action) *booking.State
	Snapshot() *booking.State
}

// Server holds the dependencies shared by all handlers.
// Wire it in main.go via Routes().
type Server struct {
	itinerary ItineraryStore
	booking   BookingMachine
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itineraryStore ItineraryStore, bookingMachine BookingMachine) *Server {
	return &Server{itinerary: itineraryStore, booking: bookingMachine}
}

// Routes returns the API router. Middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/itinerary", func(r chi.Router) {
		r.Get("/", s.GetItinerary)
		r.Post("/destinations", s.CreateDestination)
		r.Put("/destinations/{id}", s.RenameDestination)
		r.Delete("/destinations/{id}", s.DeleteDestination)
		r.Post("/destinations/{id}/todos", s.CreateTodo)
		r.Delete("/todos/{id}", s.DeleteTodo)
	})

	r.Route("/booking", func(r chi.Router) {
		r.Get("/", s.GetBooking)
		r.Put("/input", s.UpdateBookingInput)
		r.Put("/flight", s.SelectFlight)
		r.Put("/hotel", s.SelectHotel)
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
