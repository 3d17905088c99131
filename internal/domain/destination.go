// Package domain contains the core data types for the trip planner.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (itinerary, booking, search, handler).
package domain

import "github.com/google/uuid"

// Destination represents a single place on the itinerary.
// A destination is the top-level aggregate; todos belong to a destination.
// Name starts empty and is freely editable — an empty name is valid.
type Destination struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
