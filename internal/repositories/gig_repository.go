package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gigwork_backend/internal/models"
)

var (
	ErrGigNotFound    = errors.New("gig not found")
	ErrPostingNotOpen = errors.New("posting is not open")
	ErrPostingHasGig  = errors.New("posting already has a gig")
)

type GigRepository interface {
	FindByID(id string) (*models.Gig, error)
	FindByPosting(postingID string) (*models.Gig, error)
	FindAll() ([]models.Gig, error)
	CreateWithPostingAccept(gig *models.Gig) error
	Update(gig *models.Gig) error
	Delete(id string) error
}

type GigRepositoryImpl struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) GigRepository {
	return &GigRepositoryImpl{db: db}
}

func (r *GigRepositoryImpl) FindByID(id string) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.Preload("Owner").Preload("Posting").First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepositoryImpl) FindByPosting(postingID string) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.First(&gig, "posting_id = ?", postingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepositoryImpl) FindAll() ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.Preload("Owner").Preload("Posting").Order("created_at, id").Find(&gigs).Error
	return gigs, err
}

// CreateWithPostingAccept inserts the gig and flips the referenced posting
// to accepted in one transaction. Concurrent readers never observe a gig
// whose posting is still open, and a second gig against the same posting
// loses the race on the unique posting_id index.
func (r *GigRepositoryImpl) CreateWithPostingAccept(gig *models.Gig) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if gig.PostingID == nil {
			return ErrPostingNotFound
		}

		var posting models.Posting
		if err := tx.First(&posting, "id = ?", *gig.PostingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostingNotFound
			}
			return err
		}

		if posting.Status != models.PostingStatusOpen {
			return ErrPostingNotOpen
		}

		var existing models.Gig
		if err := tx.First(&existing, "posting_id = ?", *gig.PostingID).Error; err == nil {
			return ErrPostingHasGig
		}

		if err := tx.Create(gig).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Posting{}).Where("id = ?", *gig.PostingID).Updates(map[string]interface{}{
			"status":     models.PostingStatusAccepted,
			"updated_at": time.Now(),
		})
		if result.Error != nil {
			return fmt.Errorf("accepting posting %s: %w", *gig.PostingID, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("accepting posting %s: %w", *gig.PostingID, ErrPostingNotFound)
		}
		return nil
	})
}

func (r *GigRepositoryImpl) Update(gig *models.Gig) error {
	result := r.db.Model(gig).Updates(map[string]interface{}{
		"end_date":   gig.EndDate,
		"status":     gig.Status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}

func (r *GigRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Gig{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}
