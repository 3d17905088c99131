package itinerary

import "sync"

// Hook is called after every dispatched action with a short action name
// ("add_destination", "delete_todo", ...). Used to wire metrics counters
// without coupling the store to an instrumentation library.
// It runs with the store's lock held; a hook must not dispatch.
type Hook func(action string)

// Store owns the current itinerary snapshot and applies actions sequentially.
// There is exactly one Store per page instance; the mutex makes dispatches
// atomic with respect to each other, and because Apply is copy-on-write the
// returned snapshots are safe to read concurrently without the lock.
type Store struct {
	mu    sync.RWMutex
	state *State
	hook  Hook
}

// NewStore returns a Store with an empty state.
// A nil hook disables instrumentation.
func NewStore(hook Hook) *Store {
	return &Store{state: NewState(), hook: hook}
}

// Dispatch applies the action and returns the resulting snapshot.
func (s *Store) Dispatch(action Action) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Apply(s.state, action)
	if s.hook != nil {
		s.hook(actionName(action))
	}
	return s.state
}

// Snapshot returns the current state. The snapshot is immutable.
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func actionName(action Action) string {
	switch action.(type) {
	case AddDestination:
		return "add_destination"
	case UpdateDestination:
		return "update_destination"
	case DeleteDestination:
		return "delete_destination"
	case AddTodo:
		return "add_todo"
	case DeleteTodo:
		return "delete_todo"
	default:
		return "unknown"
	}
}
