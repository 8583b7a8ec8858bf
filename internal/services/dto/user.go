package dto

import (
	"time"

	"skillswap_backend/internal/models"
)

// UserResponse is the owner's view of a user record.
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	ProfilePhoto  string    `json:"profile_photo,omitempty"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
	Availability  []string  `json:"availability"`
	IsPublic      bool      `json:"is_public"`
	IsBanned      bool      `json:"is_banned"`
	Role          string    `json:"role"`
	Rating        float64   `json:"rating"`
	TotalSwaps    int       `json:"total_swaps"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Location:      user.Location,
		ProfilePhoto:  user.ProfilePhoto,
		SkillsOffered: user.SkillsOffered,
		SkillsWanted:  user.SkillsWanted,
		Availability:  user.Availability,
		IsPublic:      user.IsPublic,
		IsBanned:      user.IsBanned,
		Role:          string(user.Role),
		Rating:        user.Rating,
		TotalSwaps:    user.TotalSwaps,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

type UpdateProfileRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=100"`
	ProfilePhoto *string  `json:"profile_photo,omitempty" validate:"omitempty,url"`
	Availability []string `json:"availability,omitempty" validate:"omitempty,dive,availability_slot"`
	IsPublic     *bool    `json:"is_public,omitempty"`
}

type SkillRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
