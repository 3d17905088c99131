package domain

// Flight is an immutable value record produced by a flight search.
// IDs are search-provider identifiers, not UUIDs — they only need to be
// unique within a single result set.
type Flight struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	Price         float64 `json:"price"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
}
