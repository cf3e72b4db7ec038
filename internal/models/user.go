package models

type User struct {
	BaseModel
	FirstName   string `gorm:"size:50;not null"`
	LastName    string `gorm:"size:50;not null"`
	Email       string `gorm:"uniqueIndex;not null"`
	PhoneNumber string `gorm:"size:15"`
	Address     string

	// Relations
	Postings []Posting `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Gigs     []Gig     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
