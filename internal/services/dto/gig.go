package dto

import "time"

// CreateGigRequest references the posting being accepted. The gig's owner
// is always the acting identity, never part of the payload.
type CreateGigRequest struct {
	Posting string     `json:"posting" validate:"required,uuid"`
	EndDate *time.Time `json:"end_date"`
}

// UpdateGigRequest changes the gig's progress. The posting link is set at
// creation and immutable afterwards.
type UpdateGigRequest struct {
	EndDate *time.Time `json:"end_date"`
	Status  string     `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}
