package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/booking"
	"github.com/pkordes/trip-planner/internal/search"
)

func TestStaticFlights_returnsCatalog(t *testing.T) {
	s := search.StaticFlights{}

	flights, err := s.SearchFlights(context.Background(), booking.Query{Destination: "Lisbon"})

	require.NoError(t, err)
	require.Len(t, flights, 3)
	assert.Equal(t, "SkyWings", flights[0].Airline)
	// IDs must be unique within the result set — selections reference them.
	seen := map[string]bool{}
	for _, f := range flights {
		assert.False(t, seen[f.ID], "duplicate flight id %q", f.ID)
		seen[f.ID] = true
	}
}

func TestStaticHotels_returnsCatalog(t *testing.T) {
	s := search.StaticHotels{}

	hotels, err := s.SearchHotels(context.Background(), booking.Query{Destination: "Lisbon"})

	require.NoError(t, err)
	require.Len(t, hotels, 3)
	assert.Equal(t, "Grand Plaza Hotel", hotels[0].Name)
}

func TestStaticFlights_respectsDelay(t *testing.T) {
	s := search.StaticFlights{Delay: 30 * time.Millisecond}

	start := time.Now()
	_, err := s.SearchFlights(context.Background(), booking.Query{})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestStaticFlights_cancellationStopsTheWait(t *testing.T) {
	s := search.StaticFlights{Delay: 10 * time.Second}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := s.SearchFlights(ctx, booking.Query{})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("search did not return after cancellation")
	}
}
