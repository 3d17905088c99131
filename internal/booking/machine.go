package booking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Query carries the search inputs to a searcher.
type Query struct {
	Destination string
	StartDate   string
	EndDate     string
}

// FlightSearcher performs a flight search. Implementations must return either
// results or an error exactly once, and should honor ctx cancellation.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, q Query) ([]domain.Flight, error)
}

// HotelSearcher performs a hotel search.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, q Query) ([]domain.Hotel, error)
}

// Hook is called after every applied action with a short action name.
// It runs with the machine's lock held so hooks observe actions in apply
// order; a hook must not dispatch back into the machine.
type Hook func(action string)

// SearchObserver is called once per finished search task with its kind
// ("flights" or "hotels") and duration in seconds.
type SearchObserver func(kind string, seconds float64)

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) { m.logger = logger }
}

// WithHook sets the per-action hook.
func WithHook(hook Hook) Option {
	return func(m *Machine) { m.hook = hook }
}

// WithSearchObserver sets the per-search duration observer.
func WithSearchObserver(obs SearchObserver) Option {
	return func(m *Machine) { m.observe = obs }
}

// Machine owns the trip-search snapshot and runs the two search effects.
// Dispatches are serialized under a mutex; each entry into a searching status
// spawns exactly one search task.
//
// Every task is stamped with a generation number taken at spawn time, and
// spawning a new task cancels the previous one. A completion whose generation
// no longer matches the machine's is dropped, so a stale search can never
// commit results after a newer one has started.
type Machine struct {
	flights FlightSearcher
	hotels  HotelSearcher
	logger  *slog.Logger
	hook    Hook
	observe SearchObserver

	mu     sync.Mutex
	state  *State
	gen    uint64
	cancel context.CancelFunc

	base     context.Context
	shutdown context.CancelFunc
	wg       sync.WaitGroup
}

// NewMachine constructs a Machine in the idle state.
func NewMachine(flights FlightSearcher, hotels HotelSearcher, opts ...Option) *Machine {
	base, shutdown := context.WithCancel(context.Background())
	m := &Machine{
		flights:  flights,
		hotels:   hotels,
		logger:   slog.Default(),
		state:    NewState(),
		base:     base,
		shutdown: shutdown,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dispatch applies the action, triggers any search effect the resulting
// transition calls for, and returns the new snapshot.
func (m *Machine) Dispatch(action Action) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.applyLocked(action)
	if m.hook != nil {
		m.hook(actionName(action))
	}
	return next
}

// Snapshot returns the current state. The snapshot is immutable.
func (m *Machine) Snapshot() *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close cancels any in-flight search task and waits for it to exit.
// After Close the machine must not be dispatched to.
func (m *Machine) Close() {
	m.shutdown()
	m.wg.Wait()
}

// applyLocked runs the reducer and spawns a search task when the transition
// calls for one. Caller holds m.mu.
//
// An InputUpdated that leaves the machine in searching_flights always starts
// a fresh search, even if the status was already searching_flights — that is
// the restart case, where the new search supersedes the running one.
func (m *Machine) applyLocked(action Action) *State {
	prev := m.state
	m.state = Apply(prev, action)
	if m.state == prev {
		return m.state
	}

	// A restart only happens when the edit left the triple complete; an edit
	// that blanks a field mid-search changes the state but spawns nothing.
	_, inputUpdated := action.(InputUpdated)
	restarted := inputUpdated && tripleComplete(m.state)

	switch {
	case m.state.Status == domain.StatusSearchingFlights &&
		(prev.Status != domain.StatusSearchingFlights || restarted):
		m.spawnLocked("flights", m.searchFlights)
	case m.state.Status == domain.StatusSearchingHotels &&
		prev.Status != domain.StatusSearchingHotels:
		m.spawnLocked("hotels", m.searchHotels)
	}
	return m.state
}

func tripleComplete(s *State) bool {
	return s.Destination != "" && s.StartDate != "" && s.EndDate != ""
}

// spawnLocked starts one search task stamped with a fresh generation,
// cancelling whatever task came before it. Caller holds m.mu.
func (m *Machine) spawnLocked(kind string, search func(ctx context.Context, gen uint64, q Query)) {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(m.base)
	m.cancel = cancel
	m.gen++

	gen := m.gen
	q := Query{
		Destination: m.state.Destination,
		StartDate:   m.state.StartDate,
		EndDate:     m.state.EndDate,
	}
	m.logger.Debug("search started", "kind", kind, "generation", gen, "destination", q.Destination)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		search(ctx, gen, q)
	}()
}

func (m *Machine) searchFlights(ctx context.Context, gen uint64, q Query) {
	start := time.Now()
	flights, err := m.flights.SearchFlights(ctx, q)
	m.finish("flights", start)
	if err != nil {
		m.complete(gen, SearchFailed{Message: err.Error()})
		return
	}
	m.complete(gen, FlightsLoaded{Flights: flights})
}

func (m *Machine) searchHotels(ctx context.Context, gen uint64, q Query) {
	start := time.Now()
	hotels, err := m.hotels.SearchHotels(ctx, q)
	m.finish("hotels", start)
	if err != nil {
		m.complete(gen, SearchFailed{Message: err.Error()})
		return
	}
	m.complete(gen, HotelsLoaded{Hotels: hotels})
}

func (m *Machine) finish(kind string, start time.Time) {
	if m.observe != nil {
		m.observe(kind, time.Since(start).Seconds())
	}
}

// complete applies a search result unless the task's generation has been
// superseded. A FlightsLoaded completion transitions into searching_hotels,
// so applyLocked may spawn the hotel task from here.
func (m *Machine) complete(gen uint64, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		m.logger.Debug("stale search result dropped", "generation", gen)
		return
	}
	m.applyLocked(action)
	if m.hook != nil {
		m.hook(actionName(action))
	}
}

func actionName(action Action) string {
	switch action.(type) {
	case InputUpdated:
		return "input_updated"
	case FlightsLoaded:
		return "flights_loaded"
	case HotelsLoaded:
		return "hotels_loaded"
	case SearchFailed:
		return "search_failed"
	case FlightSelected:
		return "flight_selected"
	case HotelSelected:
		return "hotel_selected"
	default:
		return "unknown"
	}
}
