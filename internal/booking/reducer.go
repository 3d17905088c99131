// Package booking implements the trip-search state machine: a linear
// idle → searching_flights → searching_hotels → idle/error sequence with two
// asynchronous search steps. Apply is the pure transition function; Machine
// owns the current snapshot and runs the search effects.
package booking

import (
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
)

// InputField names one of the three search inputs.
type InputField string

const (
	FieldDestination InputField = "destination"
	FieldStartDate   InputField = "start_date"
	FieldEndDate     InputField = "end_date"
)

// State is a snapshot of the trip-search machine. Treat it as immutable —
// Apply never modifies its input.
//
// SelectedFlightID and SelectedHotelID, when non-empty, always name an id
// present in the corresponding result slice.
type State struct {
	Destination string
	StartDate   string
	EndDate     string

	Status domain.BookingStatus

	Flights []domain.Flight
	Hotels  []domain.Hotel

	SelectedFlightID string
	SelectedHotelID  string

	// Err is the failure message shown to the user; set only in StatusError.
	Err string
}

// NewState returns the initial idle state.
func NewState() *State {
	return &State{Status: domain.StatusIdle}
}

// Action is a marker interface implemented by the six booking actions.
type Action interface {
	isBookingAction()
}

// InputUpdated stores one trimmed input value. When the update leaves the
// destination/start/end triple complete, the status moves to
// searching_flights and previous results are cleared — also when a search is
// already in progress, in which case the running search is superseded.
// The error state is terminal: inputs are stored but never restart a search.
type InputUpdated struct {
	Field InputField
	Value string
}

// FlightsLoaded delivers flight search results. Only honored in
// searching_flights; a completion arriving in any other status is dropped.
type FlightsLoaded struct {
	Flights []domain.Flight
}

// HotelsLoaded delivers hotel search results. Only honored in
// searching_hotels.
type HotelsLoaded struct {
	Hotels []domain.Hotel
}

// SearchFailed moves the machine to the terminal error state. Only honored
// while a search is in progress.
type SearchFailed struct {
	Message string
}

// FlightSelected overrides the auto-selected flight with the user's choice.
// Ignored when the id is not in the loaded results.
type FlightSelected struct {
	ID string
}

// HotelSelected overrides the auto-selected hotel with the user's choice.
type HotelSelected struct {
	ID string
}

func (InputUpdated) isBookingAction()   {}
func (FlightsLoaded) isBookingAction()  {}
func (HotelsLoaded) isBookingAction()   {}
func (SearchFailed) isBookingAction()   {}
func (FlightSelected) isBookingAction() {}
func (HotelSelected) isBookingAction()  {}

// Apply computes the next state from the current state and an action.
// The input state is never mutated. Unrecognized actions, actions arriving in
// a status that does not accept them, and recognized no-ops all return the
// input pointer unchanged.
func Apply(s *State, action Action) *State {
	switch a := action.(type) {
	case InputUpdated:
		next := *s
		value := strings.TrimSpace(a.Value)
		switch a.Field {
		case FieldDestination:
			next.Destination = value
		case FieldStartDate:
			next.StartDate = value
		case FieldEndDate:
			next.EndDate = value
		default:
			return s
		}
		if next.Status != domain.StatusError && tripleComplete(&next) {
			next.Status = domain.StatusSearchingFlights
			next.Flights = nil
			next.Hotels = nil
			next.SelectedFlightID = ""
			next.SelectedHotelID = ""
			next.Err = ""
		}
		return &next

	case FlightsLoaded:
		if s.Status != domain.StatusSearchingFlights {
			return s
		}
		if len(a.Flights) == 0 {
			return fail(s, "no flights found")
		}
		next := *s
		next.Flights = a.Flights
		next.SelectedFlightID = cheapestFlight(a.Flights).ID
		next.Status = domain.StatusSearchingHotels
		return &next

	case HotelsLoaded:
		if s.Status != domain.StatusSearchingHotels {
			return s
		}
		if len(a.Hotels) == 0 {
			return fail(s, "no hotels found")
		}
		next := *s
		next.Hotels = a.Hotels
		next.SelectedHotelID = bestHotel(a.Hotels).ID
		next.Status = domain.StatusIdle
		return &next

	case SearchFailed:
		if s.Status != domain.StatusSearchingFlights && s.Status != domain.StatusSearchingHotels {
			return s
		}
		return fail(s, a.Message)

	case FlightSelected:
		if !flightExists(s.Flights, a.ID) {
			return s
		}
		next := *s
		next.SelectedFlightID = a.ID
		return &next

	case HotelSelected:
		if !hotelExists(s.Hotels, a.ID) {
			return s
		}
		next := *s
		next.SelectedHotelID = a.ID
		return &next

	default:
		return s
	}
}

func fail(s *State, message string) *State {
	next := *s
	next.Status = domain.StatusError
	next.Err = message
	return &next
}

// cheapestFlight returns the minimum-price flight. Strict < keeps the first
// element on ties. Callers guarantee a non-empty slice.
func cheapestFlight(flights []domain.Flight) domain.Flight {
	best := flights[0]
	for _, f := range flights[1:] {
		if f.Price < best.Price {
			best = f
		}
	}
	return best
}

// bestHotel returns the maximum-rating hotel. Strict > keeps the first
// element on ties.
func bestHotel(hotels []domain.Hotel) domain.Hotel {
	best := hotels[0]
	for _, h := range hotels[1:] {
		if h.Rating > best.Rating {
			best = h
		}
	}
	return best
}

func flightExists(flights []domain.Flight, id string) bool {
	for _, f := range flights {
		if f.ID == id {
			return true
		}
	}
	return false
}

func hotelExists(hotels []domain.Hotel, id string) bool {
	for _, h := range hotels {
		if h.ID == id {
			return true
		}
	}
	return false
}
