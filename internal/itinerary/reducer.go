// Package itinerary implements the normalized destination/todo store for the
// itinerary editor page. The core is a pure transition function, Apply, over
// an immutable State; Store wraps it with an owned snapshot and sequential
// dispatch so callers never share mutable state.
package itinerary

import (
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// State is a normalized snapshot of the itinerary: destinations and todos in
// flat maps keyed by id, plus parallel id slices preserving creation order
// for display. Treat a State as immutable — Apply never modifies its input,
// so snapshots handed out by Store can be read without locking.
type State struct {
	Destinations map[uuid.UUID]domain.Destination
	Todos        map[uuid.UUID]domain.TodoItem

	// DestinationOrder and TodoOrder hold ids in creation order.
	// Map iteration order is unspecified in Go, so display order needs them.
	DestinationOrder []uuid.UUID
	TodoOrder        []uuid.UUID
}

// NewState returns an empty itinerary state.
func NewState() *State {
	return &State{
		Destinations: map[uuid.UUID]domain.Destination{},
		Todos:        map[uuid.UUID]domain.TodoItem{},
	}
}

// Action is a marker interface implemented by the five itinerary actions.
// Apply ignores any other implementation.
type Action interface {
	isItineraryAction()
}

// AddDestination inserts a new destination with a freshly generated id and an
// empty name.
type AddDestination struct{}

// UpdateDestination replaces the name of an existing destination.
// If the id does not exist the action is a no-op.
type UpdateDestination struct {
	ID   uuid.UUID
	Name string
}

// DeleteDestination removes a destination together with every todo that
// references it. A missing id is tolerated.
type DeleteDestination struct {
	ID uuid.UUID
}

// AddTodo inserts a new todo under an existing destination. Text is expected
// to be trimmed and non-empty by the caller; the reducer does not validate.
// If the destination does not exist the action is a no-op, so a stored todo
// can never reference a missing destination.
type AddTodo struct {
	DestinationID uuid.UUID
	Text          string
}

// DeleteTodo removes a single todo. A missing id is tolerated.
type DeleteTodo struct {
	ID uuid.UUID
}

func (AddDestination) isItineraryAction()    {}
func (UpdateDestination) isItineraryAction() {}
func (DeleteDestination) isItineraryAction() {}
func (AddTodo) isItineraryAction()           {}
func (DeleteTodo) isItineraryAction()        {}

// Apply computes the next state from the current state and an action.
// The input state is never mutated; actions that change anything return a
// fresh State with copied maps. Unrecognized actions and recognized no-ops
// return the input pointer unchanged.
func Apply(s *State, action Action) *State {
	switch a := action.(type) {
	case AddDestination:
		next := cloneDestinations(s)
		d := domain.Destination{ID: uuid.New()}
		next.Destinations[d.ID] = d
		next.DestinationOrder = appendID(s.DestinationOrder, d.ID)
		return next

	case UpdateDestination:
		d, ok := s.Destinations[a.ID]
		if !ok {
			return s
		}
		next := cloneDestinations(s)
		d.Name = a.Name
		next.Destinations[d.ID] = d
		return next

	case DeleteDestination:
		if _, ok := s.Destinations[a.ID]; !ok {
			return s
		}
		next := clone(s)
		delete(next.Destinations, a.ID)
		next.DestinationOrder = removeID(next.DestinationOrder, a.ID)
		// Cascade: drop every todo owned by the deleted destination.
		for id, todo := range next.Todos {
			if todo.DestinationID == a.ID {
				delete(next.Todos, id)
				next.TodoOrder = removeID(next.TodoOrder, id)
			}
		}
		return next

	case AddTodo:
		if _, ok := s.Destinations[a.DestinationID]; !ok {
			return s
		}
		next := cloneTodos(s)
		t := domain.TodoItem{ID: uuid.New(), Text: a.Text, DestinationID: a.DestinationID}
		next.Todos[t.ID] = t
		next.TodoOrder = appendID(s.TodoOrder, t.ID)
		return next

	case DeleteTodo:
		if _, ok := s.Todos[a.ID]; !ok {
			return s
		}
		next := cloneTodos(s)
		delete(next.Todos, a.ID)
		next.TodoOrder = removeID(next.TodoOrder, a.ID)
		return next

	default:
		return s
	}
}

// clone returns a State with both maps copied. Order slices are shared until
// the caller replaces them — appendID/removeID always allocate.
func clone(s *State) *State {
	next := &State{
		Destinations:     make(map[uuid.UUID]domain.Destination, len(s.Destinations)),
		Todos:            make(map[uuid.UUID]domain.TodoItem, len(s.Todos)),
		DestinationOrder: s.DestinationOrder,
		TodoOrder:        s.TodoOrder,
	}
	for id, d := range s.Destinations {
		next.Destinations[id] = d
	}
	for id, t := range s.Todos {
		next.Todos[id] = t
	}
	return next
}

// cloneDestinations copies the destination map only; the todo map is shared
// because the action cannot touch it.
func cloneDestinations(s *State) *State {
	next := &State{
		Destinations:     make(map[uuid.UUID]domain.Destination, len(s.Destinations)+1),
		Todos:            s.Todos,
		DestinationOrder: s.DestinationOrder,
		TodoOrder:        s.TodoOrder,
	}
	for id, d := range s.Destinations {
		next.Destinations[id] = d
	}
	return next
}

// cloneTodos copies the todo map only.
func cloneTodos(s *State) *State {
	next := &State{
		Destinations:     s.Destinations,
		Todos:            make(map[uuid.UUID]domain.TodoItem, len(s.Todos)+1),
		DestinationOrder: s.DestinationOrder,
		TodoOrder:        s.TodoOrder,
	}
	for id, t := range s.Todos {
		next.Todos[id] = t
	}
	return next
}

// appendID returns a new slice; the input is never extended in place so
// older snapshots keep their view.
func appendID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids)+1)
	copy(out, ids)
	out[len(ids)] = id
	return out
}

// removeID returns a new slice without id, preserving order.
func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
