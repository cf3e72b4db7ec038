package models

import "time"

type Posting struct {
	BaseModel
	Title       string        `gorm:"size:100;not null"`
	Description string        `gorm:"not null"`
	OwnerID     string        `gorm:"type:uuid;not null;index"`
	ExpiresAt   *time.Time    `gorm:"index"`
	Price       float64       `gorm:"type:numeric(10,2);not null"`
	Status      PostingStatus `gorm:"type:varchar(20);default:'open'"`

	Owner *User `gorm:"foreignKey:OwnerID"`
}

// Expired reports whether the posting's expiry time has passed at t.
// Postings without an expiry never expire on their own.
func (p *Posting) Expired(t time.Time) bool {
	return p.ExpiresAt != nil && !p.ExpiresAt.After(t)
}

// VisibleStatus is the status reported to clients: an open posting whose
// expiry has passed reads as expired. The stored row is not touched;
// expiry is derived at read time.
func (p *Posting) VisibleStatus(t time.Time) PostingStatus {
	if p.Status == PostingStatusOpen && p.Expired(t) {
		return PostingStatusExpired
	}
	return p.Status
}
