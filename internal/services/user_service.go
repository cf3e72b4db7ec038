package services

import (
	"gigwork_backend/internal/auth"
	"gigwork_backend/internal/filter"
	"gigwork_backend/internal/models"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"
)

type UserService interface {
	List(criteria []filter.Criterion) ([]map[string]interface{}, error)
	Get(id string) (map[string]interface{}, error)
	Create(req *dto.CreateUserRequest) (*dto.SignupResponse, error)
	Update(actorID, id string, req *dto.UpdateUserRequest) (map[string]interface{}, error)
	Delete(actorID, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List(criteria []filter.Criterion) ([]map[string]interface{}, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	reps := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		reps = append(reps, userRep(&users[i]))
	}
	return filter.Apply(reps, criteria), nil
}

func (s *UserServiceImpl) Get(id string) (map[string]interface{}, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return userRep(user), nil
}

// Create registers a new user and issues a fresh credential token bound
// to it.
func (s *UserServiceImpl) Create(req *dto.CreateUserRequest) (*dto.SignupResponse, error) {
	user := &models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ValidationError(map[string]string{"email": "A user with this email already exists"})
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.IssueToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SignupResponse{Token: token, User: userRep(user)}, nil
}

func (s *UserServiceImpl) Update(actorID, id string, req *dto.UpdateUserRequest) (map[string]interface{}, error) {
	if err := s.authorizeSelf(actorID, id); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.PhoneNumber = req.PhoneNumber
	user.Address = req.Address

	if err := s.userRepo.Update(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ValidationError(map[string]string{"email": "A user with this email already exists"})
		}
		return nil, apperrors.InternalError(err)
	}
	return userRep(user), nil
}

func (s *UserServiceImpl) Delete(actorID, id string) error {
	if err := s.authorizeSelf(actorID, id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// authorizeSelf enforces the self-or-read-only rule: a user record is
// writable only by the matching identity.
func (s *UserServiceImpl) authorizeSelf(actorID, id string) error {
	if actorID != id {
		return apperrors.NewForbiddenError("You can only modify your own user record")
	}
	return nil
}
