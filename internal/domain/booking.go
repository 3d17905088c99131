package domain

// BookingStatus is the phase of the trip-search machine.
type BookingStatus string

const (
	// StatusIdle is both the initial state and the terminal "results ready"
	// state once flights and hotels have been loaded.
	StatusIdle BookingStatus = "idle"
	// StatusSearchingFlights means a flight search is in flight.
	StatusSearchingFlights BookingStatus = "searching_flights"
	// StatusSearchingHotels means a hotel search is in flight.
	StatusSearchingHotels BookingStatus = "searching_hotels"
	// StatusError is terminal — there is no retry path out of it.
	StatusError BookingStatus = "error"
)
