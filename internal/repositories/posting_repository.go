package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gigwork_backend/internal/models"
)

var ErrPostingNotFound = errors.New("posting not found")

type PostingRepository interface {
	FindByID(id string) (*models.Posting, error)
	FindAll() ([]models.Posting, error)
	Create(posting *models.Posting) error
	Update(posting *models.Posting) error
	Delete(id string) error
}

type PostingRepositoryImpl struct {
	db *gorm.DB
}

func NewPostingRepository(db *gorm.DB) PostingRepository {
	return &PostingRepositoryImpl{db: db}
}

func (r *PostingRepositoryImpl) FindByID(id string) (*models.Posting, error) {
	var posting models.Posting
	err := r.db.Preload("Owner").First(&posting, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, err
	}
	return &posting, nil
}

func (r *PostingRepositoryImpl) FindAll() ([]models.Posting, error) {
	var postings []models.Posting
	err := r.db.Preload("Owner").Order("created_at, id").Find(&postings).Error
	return postings, err
}

func (r *PostingRepositoryImpl) Create(posting *models.Posting) error {
	return r.db.Create(posting).Error
}

func (r *PostingRepositoryImpl) Update(posting *models.Posting) error {
	result := r.db.Model(posting).Updates(map[string]interface{}{
		"title":       posting.Title,
		"description": posting.Description,
		"expires_at":  posting.ExpiresAt,
		"price":       posting.Price,
		"status":      posting.Status,
		"updated_at":  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostingNotFound
	}
	return nil
}

func (r *PostingRepositoryImpl) Delete(id string) error {
	// Gigs keep existing with a null posting reference.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Gig{}).Where("posting_id = ?", id).
			Update("posting_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Posting{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPostingNotFound
		}
		return nil
	})
}
