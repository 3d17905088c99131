package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/booking"
	"github.com/pkordes/trip-planner/internal/domain"
)

// BookingResponse is the full trip-search snapshot the wizard page renders.
type BookingResponse struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	Status domain.BookingStatus `json:"status"`

	Flights []domain.Flight `json:"flights"`
	Hotels  []domain.Hotel  `json:"hotels"`

	SelectedFlightID string `json:"selected_flight_id,omitempty"`
	SelectedHotelID  string `json:"selected_hotel_id,omitempty"`

	Error string `json:"error,omitempty"`
}

// UpdateInputRequest is the body of PUT /booking/input.
type UpdateInputRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SelectRequest is the body of PUT /booking/flight and PUT /booking/hotel.
type SelectRequest struct {
	ID string `json:"id"`
}

// GetBooking handles GET /booking.
func (s *Server) GetBooking(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, bookingToResponse(s.booking.Snapshot()))
}

// UpdateBookingInput handles PUT /booking/input. Completing the
// destination/start/end triple starts the search sequence as a side effect of
// the dispatch; the response reflects the immediate transition, and the page
// polls GET /booking for the search results.
func (s *Server) UpdateBookingInput(w http.ResponseWriter, r *http.Request) {
	var req UpdateInputRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	field := booking.InputField(req.Field)
	switch field {
	case booking.FieldDestination, booking.FieldStartDate, booking.FieldEndDate:
	default:
		writeValidationError(w, "unknown input field")
		return
	}

	state := s.booking.Dispatch(booking.InputUpdated{Field: field, Value: req.Value})
	writeJSON(w, http.StatusOK, bookingToResponse(state))
}

// SelectFlight handles PUT /booking/flight: the user's explicit choice
// overriding the cheapest-wins auto-selection.
func (s *Server) SelectFlight(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	if req.ID == "" {
		writeValidationError(w, "id is required")
		return
	}

	state := s.booking.Dispatch(booking.FlightSelected{ID: req.ID})
	if state.SelectedFlightID != req.ID {
		writeNotFound(w, "flight not found")
		return
	}
	writeJSON(w, http.StatusOK, bookingToResponse(state))
}

// SelectHotel handles PUT /booking/hotel.
func (s *Server) SelectHotel(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	if req.ID == "" {
		writeValidationError(w, "id is required")
		return
	}

	state := s.booking.Dispatch(booking.HotelSelected{ID: req.ID})
	if state.SelectedHotelID != req.ID {
		writeNotFound(w, "hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, bookingToResponse(state))
}

// bookingToResponse maps a snapshot to the wire shape. Result slices are
// never null in JSON so the page can always range over them.
func bookingToResponse(state *booking.State) BookingResponse {
	resp := BookingResponse{
		Destination:      state.Destination,
		StartDate:        state.StartDate,
		EndDate:          state.EndDate,
		Status:           state.Status,
		Flights:          state.Flights,
		Hotels:           state.Hotels,
		SelectedFlightID: state.SelectedFlightID,
		SelectedHotelID:  state.SelectedHotelID,
		Error:            state.Err,
	}
	if resp.Flights == nil {
		resp.Flights = []domain.Flight{}
	}
	if resp.Hotels == nil {
		resp.Hotels = []domain.Hotel{}
	}
	return resp
}
