package models

type PostingStatus string
type GigStatus string

const (
	PostingStatusOpen     PostingStatus = "open"
	PostingStatusExpired  PostingStatus = "expired"
	PostingStatusAccepted PostingStatus = "accepted"

	GigStatusPending    GigStatus = "pending"
	GigStatusInProgress GigStatus = "in_progress"
	GigStatusCompleted  GigStatus = "completed"
)
