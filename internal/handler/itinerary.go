package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/itinerary"
)

// DestinationResponse is a destination with its todos nested in creation
// order — the denormalized view the editor page renders.
type DestinationResponse struct {
	ID    uuid.UUID      `json:"id"`
	Name  string         `json:"name"`
	Todos []TodoResponse `json:"todos"`
}

// TodoResponse is a single rendered todo.
type TodoResponse struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

// ItineraryResponse is the full itinerary snapshot.
type ItineraryResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
}

// RenameDestinationRequest is the body of PUT /itinerary/destinations/{id}.
type RenameDestinationRequest struct {
	Name string `json:"name"`
}

// CreateTodoRequest is the body of POST /itinerary/destinations/{id}/todos.
type CreateTodoRequest struct {
	Text string `json:"text"`
}

// GetItinerary handles GET /itinerary.
func (s *Server) GetItinerary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, itineraryToResponse(s.itinerary.Snapshot()))
}

// CreateDestination handles POST /itinerary/destinations.
// The new destination starts with an empty name; the id is generated by the
// store, so the created record is read back off the ordered id list.
func (s *Server) CreateDestination(w http.ResponseWriter, _ *http.Request) {
	state := s.itinerary.Dispatch(itinerary.AddDestination{})
	id := state.DestinationOrder[len(state.DestinationOrder)-1]
	writeJSON(w, http.StatusCreated, DestinationResponse{
		ID:    id,
		Name:  state.Destinations[id].Name,
		Todos: []TodoResponse{},
	})
}

// RenameDestination handles PUT /itinerary/destinations/{id}.
func (s *Server) RenameDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req RenameDestinationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	// Existence is read off the state the dispatch returns, not a prior
	// snapshot a concurrent delete could invalidate: the update no-ops on an
	// unknown id, and ids are never reused.
	state := s.itinerary.Dispatch(itinerary.UpdateDestination{ID: id, Name: req.Name})
	if _, exists := state.Destinations[id]; !exists {
		writeNotFound(w, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, destinationToResponse(state, id))
}

// DeleteDestination handles DELETE /itinerary/destinations/{id}.
// Deleting a destination cascades to every todo it owns.
func (s *Server) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if _, exists := s.itinerary.Snapshot().Destinations[id]; !exists {
		writeNotFound(w, "destination not found")
		return
	}

	s.itinerary.Dispatch(itinerary.DeleteDestination{ID: id})
	w.WriteHeader(http.StatusNoContent)
}

// CreateTodo handles POST /itinerary/destinations/{id}/todos.
// Text is trimmed here — the store performs no validation, so the boundary
// rejects empty text before dispatching.
func (s *Server) CreateTodo(w http.ResponseWriter, r *http.Request) {
	destID, ok := parseID(w, r)
	if !ok {
		return
	}
	var req CreateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeValidationError(w, "text is required")
		return
	}
	// Same post-dispatch check as RenameDestination: the add no-ops when the
	// destination is gone, and when it landed the returned snapshot's last
	// todo id is ours — the snapshot is immutable once returned.
	state := s.itinerary.Dispatch(itinerary.AddTodo{DestinationID: destID, Text: text})
	if _, exists := state.Destinations[destID]; !exists {
		writeNotFound(w, "destination not found")
		return
	}
	id := state.TodoOrder[len(state.TodoOrder)-1]
	writeJSON(w, http.StatusCreated, TodoResponse{ID: id, Text: state.Todos[id].Text})
}

// DeleteTodo handles DELETE /itinerary/todos/{id}.
func (s *Server) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if _, exists := s.itinerary.Snapshot().Todos[id]; !exists {
		writeNotFound(w, "todo not found")
		return
	}

	s.itinerary.Dispatch(itinerary.DeleteTodo{ID: id})
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// parseID reads the {id} path parameter as a UUID, writing a 422 on failure.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeValidationError(w, "invalid id")
		return uuid.UUID{}, false
	}
	return id, true
}

// itineraryToResponse denormalizes the state into destination-ordered,
// todo-ordered nested records.
func itineraryToResponse(state *itinerary.State) ItineraryResponse {
	resp := ItineraryResponse{Destinations: make([]DestinationResponse, 0, len(state.DestinationOrder))}
	for _, id := range state.DestinationOrder {
		resp.Destinations = append(resp.Destinations, destinationToResponse(state, id))
	}
	return resp
}

func destinationToResponse(state *itinerary.State, id uuid.UUID) DestinationResponse {
	d := state.Destinations[id]
	resp := DestinationResponse{ID: d.ID, Name: d.Name, Todos: []TodoResponse{}}
	for _, todoID := range state.TodoOrder {
		if t, ok := state.Todos[todoID]; ok && t.DestinationID == id {
			resp.Todos = append(resp.Todos, TodoResponse{ID: t.ID, Text: t.Text})
		}
	}
	return resp
}
