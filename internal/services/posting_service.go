package services

import (
	"time"

	"gigwork_backend/internal/filter"
	"gigwork_backend/internal/models"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"
)

type PostingService interface {
	List(criteria []filter.Criterion) ([]map[string]interface{}, error)
	Get(id string) (map[string]interface{}, error)
	Create(ownerID string, req *dto.PostingRequest) (map[string]interface{}, error)
	Update(actorID, id string, req *dto.PostingRequest) (map[string]interface{}, error)
	Delete(actorID, id string) error
}

type PostingServiceImpl struct {
	postingRepo repositories.PostingRepository
	userRepo    repositories.UserRepository
}

func NewPostingService(postingRepo repositories.PostingRepository, userRepo repositories.UserRepository) PostingService {
	return &PostingServiceImpl{
		postingRepo: postingRepo,
		userRepo:    userRepo,
	}
}

func (s *PostingServiceImpl) List(criteria []filter.Criterion) ([]map[string]interface{}, error) {
	postings, err := s.postingRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	reps := make([]map[string]interface{}, 0, len(postings))
	for i := range postings {
		reps = append(reps, postingRep(&postings[i], now))
	}
	return filter.Apply(reps, criteria), nil
}

func (s *PostingServiceImpl) Get(id string) (map[string]interface{}, error) {
	posting, err := s.findPosting(id)
	if err != nil {
		return nil, err
	}
	return postingRep(posting, time.Now()), nil
}

func (s *PostingServiceImpl) Create(ownerID string, req *dto.PostingRequest) (map[string]interface{}, error) {
	owner, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Acting user does not exist")
		}
		return nil, apperrors.InternalError(err)
	}

	posting := &models.Posting{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     owner.ID,
		ExpiresAt:   req.ExpiresAt,
		Price:       *req.Price,
		Status:      models.PostingStatusOpen,
	}
	if req.Status != "" {
		posting.Status = models.PostingStatus(req.Status)
	}

	if err := s.postingRepo.Create(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	posting.Owner = owner
	return postingRep(posting, time.Now()), nil
}

func (s *PostingServiceImpl) Update(actorID, id string, req *dto.PostingRequest) (map[string]interface{}, error) {
	posting, err := s.findPosting(id)
	if err != nil {
		return nil, err
	}

	if posting.OwnerID != actorID {
		return nil, apperrors.NewForbiddenError("Only the posting owner can modify it")
	}

	posting.Title = req.Title
	posting.Description = req.Description
	posting.ExpiresAt = req.ExpiresAt
	posting.Price = *req.Price
	if req.Status != "" {
		posting.Status = models.PostingStatus(req.Status)
	}

	if err := s.postingRepo.Update(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return postingRep(posting, time.Now()), nil
}

func (s *PostingServiceImpl) Delete(actorID, id string) error {
	posting, err := s.findPosting(id)
	if err != nil {
		return err
	}

	if posting.OwnerID != actorID {
		return apperrors.NewForbiddenError("Only the posting owner can delete it")
	}

	if err := s.postingRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PostingServiceImpl) findPosting(id string) (*models.Posting, error) {
	posting, err := s.postingRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostingNotFound) {
			return nil, apperrors.NewNotFoundError("posting", "Posting not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}
