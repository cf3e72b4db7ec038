package dto

import "time"

// PostingRequest is the create/update payload for postings. Price is a
// pointer so a missing price and a zero price fail different rules.
type PostingRequest struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description string     `json:"description" validate:"required"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Price       *float64   `json:"price" validate:"required,gt=0"`
	Status      string     `json:"status" validate:"omitempty,oneof=open expired accepted"`
}
