package services

import (
	"time"

	"gigwork_backend/internal/filter"
	"gigwork_backend/internal/models"
)

// Field whitelists accepted for equality filtering, one per resource.
// Membership is checked before any restriction is built; caller-supplied
// field names outside these sets are never applied.
var (
	UserFilterFields    = filter.Whitelist{"first_name", "last_name", "email", "phone_number", "address"}
	PostingFilterFields = filter.Whitelist{"title", "description", "owner", "created_at", "expires_at", "price", "status"}
	GigFilterFields     = filter.Whitelist{"owner", "posting", "start_date", "end_date", "status"}
)

// userRep is the owner-visible user representation.
func userRep(u *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":           u.ID,
		"first_name":   u.FirstName,
		"last_name":    u.LastName,
		"email":        u.Email,
		"phone_number": u.PhoneNumber,
		"address":      u.Address,
	}
}

// publicUserRep carries only the fields exposed to other users. Nested
// into posting and gig representations as "owner".
func publicUserRep(u *models.User) map[string]interface{} {
	if u == nil {
		return nil
	}
	return map[string]interface{}{
		"id":         u.ID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
	}
}

func postingRep(p *models.Posting, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"owner":       publicUserRep(p.Owner),
		"created_at":  p.CreatedAt,
		"expires_at":  p.ExpiresAt,
		"price":       p.Price,
		"status":      string(p.VisibleStatus(now)),
	}
}

// gigRep derives the descriptive fields from the linked posting; gigs
// store none of their own.
func gigRep(g *models.Gig) map[string]interface{} {
	rep := map[string]interface{}{
		"id":         g.ID,
		"owner":      publicUserRep(g.Owner),
		"posting":    nil,
		"start_date": g.StartDate,
		"end_date":   g.EndDate,
		"status":     string(g.Status),
	}
	if g.PostingID != nil {
		rep["posting"] = *g.PostingID
	}
	if g.Posting != nil {
		rep["title"] = g.Posting.Title
		rep["description"] = g.Posting.Description
		rep["price"] = g.Posting.Price
	}
	return rep
}
