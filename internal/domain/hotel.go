package domain

// Hotel is an immutable value record produced by a hotel search.
type Hotel struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}
