package models

import "time"

type Gig struct {
	BaseModel
	OwnerID   string    `gorm:"type:uuid;not null;index"`
	PostingID *string   `gorm:"type:uuid;uniqueIndex"` // at most one gig per posting
	StartDate time.Time `gorm:"default:now()"`
	EndDate   *time.Time
	Status    GigStatus `gorm:"type:varchar(20);default:'pending'"`

	Owner   *User    `gorm:"foreignKey:OwnerID"`
	Posting *Posting `gorm:"foreignKey:PostingID;constraint:OnDelete:SET NULL"`
}
