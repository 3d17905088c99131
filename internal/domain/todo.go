package domain

import "github.com/google/uuid"

// TodoItem represents a single task attached to a destination.
// DestinationID references the owning Destination; deleting a destination
// cascades to its todos, so a stored todo never dangles.
type TodoItem struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	DestinationID uuid.UUID `json:"destination_id"`
}
