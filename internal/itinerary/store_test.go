package itinerary_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/itinerary"
)

func TestStore_dispatchAdvancesSnapshot(t *testing.T) {
	store := itinerary.NewStore(nil)

	next := store.Dispatch(itinerary.AddDestination{})

	require.Len(t, next.Destinations, 1)
	assert.Same(t, next, store.Snapshot())
}

func TestStore_hookReceivesActionNames(t *testing.T) {
	var mu sync.Mutex
	var names []string
	store := itinerary.NewStore(func(action string) {
		mu.Lock()
		names = append(names, action)
		mu.Unlock()
	})

	s := store.Dispatch(itinerary.AddDestination{})
	dest := s.DestinationOrder[0]
	store.Dispatch(itinerary.AddTodo{DestinationID: dest, Text: "x"})
	store.Dispatch(itinerary.DeleteDestination{ID: dest})

	assert.Equal(t, []string{"add_destination", "add_todo", "delete_destination"}, names)
}

// TestStore_concurrentDispatches checks that dispatches are serialized: every
// add lands, none is lost to a racing writer.
func TestStore_concurrentDispatches(t *testing.T) {
	store := itinerary.NewStore(nil)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			store.Dispatch(itinerary.AddDestination{})
		}()
	}
	wg.Wait()

	assert.Len(t, store.Snapshot().Destinations, n)
	assert.Len(t, store.Snapshot().DestinationOrder, n)
}
