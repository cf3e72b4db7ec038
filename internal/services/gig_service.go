package services

import (
	"gigwork_backend/internal/filter"
	"gigwork_backend/internal/models"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"
)

type GigService interface {
	List(criteria []filter.Criterion) ([]map[string]interface{}, error)
	Get(id string) (map[string]interface{}, error)
	Create(actorID string, req *dto.CreateGigRequest) (map[string]interface{}, error)
	Update(actorID, id string, req *dto.UpdateGigRequest) (map[string]interface{}, error)
	Delete(actorID, id string) error
}

type GigServiceImpl struct {
	gigRepo  repositories.GigRepository
	userRepo repositories.UserRepository
}

func NewGigService(gigRepo repositories.GigRepository, userRepo repositories.UserRepository) GigService {
	return &GigServiceImpl{
		gigRepo:  gigRepo,
		userRepo: userRepo,
	}
}

func (s *GigServiceImpl) List(criteria []filter.Criterion) ([]map[string]interface{}, error) {
	gigs, err := s.gigRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	reps := make([]map[string]interface{}, 0, len(gigs))
	for i := range gigs {
		reps = append(reps, gigRep(&gigs[i]))
	}
	return filter.Apply(reps, criteria), nil
}

func (s *GigServiceImpl) Get(id string) (map[string]interface{}, error) {
	gig, err := s.findGig(id)
	if err != nil {
		return nil, err
	}
	return gigRep(gig), nil
}

// Create accepts a posting: the new gig is owned by the acting identity
// and the referenced posting flips to accepted in the same transaction.
// A failure of the posting update rolls the gig back and surfaces as a
// server error, never a half-applied state.
func (s *GigServiceImpl) Create(actorID string, req *dto.CreateGigRequest) (map[string]interface{}, error) {
	owner, err := s.userRepo.FindByID(actorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Acting user does not exist")
		}
		return nil, apperrors.InternalError(err)
	}

	postingID := req.Posting
	gig := &models.Gig{
		OwnerID:   owner.ID,
		PostingID: &postingID,
		EndDate:   req.EndDate,
		Status:    models.GigStatusPending,
	}

	if err := s.gigRepo.CreateWithPostingAccept(gig); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrPostingNotFound):
			return nil, apperrors.ValidationError(map[string]string{"posting": "Posting does not exist"})
		case apperrors.Is(err, repositories.ErrPostingNotOpen):
			return nil, apperrors.ValidationError(map[string]string{"posting": "Posting is not open"})
		case apperrors.Is(err, repositories.ErrPostingHasGig):
			return nil, apperrors.ValidationError(map[string]string{"posting": "Posting already has a gig"})
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	// re-read with relations so the representation carries the
	// posting-derived fields
	created, err := s.gigRepo.FindByID(gig.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gigRep(created), nil
}

func (s *GigServiceImpl) Update(actorID, id string, req *dto.UpdateGigRequest) (map[string]interface{}, error) {
	gig, err := s.findGig(id)
	if err != nil {
		return nil, err
	}

	if gig.OwnerID != actorID {
		return nil, apperrors.NewForbiddenError("Only the gig owner can modify it")
	}

	if req.EndDate != nil {
		gig.EndDate = req.EndDate
	}
	if req.Status != "" {
		gig.Status = models.GigStatus(req.Status)
	}

	if err := s.gigRepo.Update(gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gigRep(gig), nil
}

func (s *GigServiceImpl) Delete(actorID, id string) error {
	gig, err := s.findGig(id)
	if err != nil {
		return err
	}

	if gig.OwnerID != actorID {
		return apperrors.NewForbiddenError("Only the gig owner can delete it")
	}

	if err := s.gigRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *GigServiceImpl) findGig(id string) (*models.Gig, error) {
	gig, err := s.gigRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.NewNotFoundError("gig", "Gig not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}
