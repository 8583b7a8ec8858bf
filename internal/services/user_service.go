package services

import (
	"context"
	"strings"

	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"
)

// UserService covers self-service profile management: reading the own
// profile, partial updates and skill set edits.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)

	AddSkillOffered(ctx context.Context, userID string, req *dto.SkillRequest) (*dto.UserResponse, error)
	AddSkillWanted(ctx context.Context, userID string, req *dto.SkillRequest) (*dto.UserResponse, error)
	RemoveSkillOffered(ctx context.Context, userID, name string) (*dto.UserResponse, error)
	RemoveSkillWanted(ctx context.Context, userID, name string) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile applies only the fields present in the request; nil pointers
// leave the stored value untouched.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		user.Location = strings.TrimSpace(*req.Location)
	}
	if req.ProfilePhoto != nil {
		user.ProfilePhoto = *req.ProfilePhoto
	}
	if req.Availability != nil {
		user.Availability = req.Availability
	}
	if req.IsPublic != nil {
		user.IsPublic = *req.IsPublic
	}

	if user.Name == "" {
		return nil, apperrors.ValidationError(map[string]string{"name": "name cannot be empty"})
	}

	return s.saveAndRespond(ctx, user)
}

func (s *UserServiceImpl) AddSkillOffered(ctx context.Context, userID string, req *dto.SkillRequest) (*dto.UserResponse, error) {
	return s.addSkill(ctx, userID, req, false)
}

func (s *UserServiceImpl) AddSkillWanted(ctx context.Context, userID string, req *dto.SkillRequest) (*dto.UserResponse, error) {
	return s.addSkill(ctx, userID, req, true)
}

func (s *UserServiceImpl) RemoveSkillOffered(ctx context.Context, userID, name string) (*dto.UserResponse, error) {
	return s.removeSkill(ctx, userID, name, false)
}

func (s *UserServiceImpl) RemoveSkillWanted(ctx context.Context, userID, name string) (*dto.UserResponse, error) {
	return s.removeSkill(ctx, userID, name, true)
}

func (s *UserServiceImpl) addSkill(ctx context.Context, userID string, req *dto.SkillRequest, wanted bool) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ValidationError(map[string]string{"name": "skill name cannot be empty"})
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var added bool
	if wanted {
		user.SkillsWanted, added = models.AppendSkill(user.SkillsWanted, name)
	} else {
		user.SkillsOffered, added = models.AppendSkill(user.SkillsOffered, name)
	}
	if !added {
		return nil, apperrors.ValidationError(map[string]string{"name": "skill is already in the list"})
	}

	return s.saveAndRespond(ctx, user)
}

func (s *UserServiceImpl) removeSkill(ctx context.Context, userID, name string, wanted bool) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var removed bool
	if wanted {
		user.SkillsWanted, removed = models.RemoveSkill(user.SkillsWanted, name)
	} else {
		user.SkillsOffered, removed = models.RemoveSkill(user.SkillsOffered, name)
	}
	if !removed {
		return nil, apperrors.ErrSkillNotFound
	}

	return s.saveAndRespond(ctx, user)
}

func (s *UserServiceImpl) loadUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) saveAndRespond(ctx context.Context, user *models.User) (*dto.UserResponse, error) {
	if err := s.userRepo.Update(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}
	return dto.NewUserResponse(user), nil
}
