// Package search provides the demo search backends: fixed flight and hotel
// catalogs returned after a fixed simulated latency. A real deployment would
// replace these with network-backed searchers implementing the same
// interfaces, keeping the "exactly one result or error per search" contract.
package search

import (
	"context"
	"time"

	"github.com/pkordes/trip-planner/internal/booking"
	"github.com/pkordes/trip-planner/internal/domain"
)

// StaticFlights returns the same three flights for every query after a fixed
// delay. Implements booking.FlightSearcher.
type StaticFlights struct {
	Delay time.Duration
}

// StaticHotels returns the same three hotels for every query after a fixed
// delay. Implements booking.HotelSearcher.
type StaticHotels struct {
	Delay time.Duration
}

var (
	_ booking.FlightSearcher = StaticFlights{}
	_ booking.HotelSearcher  = StaticHotels{}
)

// SearchFlights waits for the configured delay, then returns the catalog.
// Returns ctx.Err() if the context is cancelled first.
func (s StaticFlights) SearchFlights(ctx context.Context, _ booking.Query) ([]domain.Flight, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return nil, err
	}
	return []domain.Flight{
		{ID: "1", Airline: "SkyWings", Price: 299, DepartureTime: "08:00", ArrivalTime: "11:30"},
		{ID: "2", Airline: "AeroJet", Price: 349, DepartureTime: "12:15", ArrivalTime: "15:45"},
		{ID: "3", Airline: "CloudAir", Price: 399, DepartureTime: "18:30", ArrivalTime: "22:00"},
	}, nil
}

// SearchHotels waits for the configured delay, then returns the catalog.
func (s StaticHotels) SearchHotels(ctx context.Context, _ booking.Query) ([]domain.Hotel, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return nil, err
	}
	return []domain.Hotel{
		{ID: "1", Name: "Grand Plaza Hotel", Price: 145, Rating: 4.5},
		{ID: "2", Name: "Harbor View Inn", Price: 98, Rating: 4.1},
		{ID: "3", Name: "City Center Suites", Price: 175, Rating: 4.3},
	}, nil
}

// sleep blocks for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
