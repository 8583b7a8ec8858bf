package dto

import (
	"time"

	"skillswap_backend/internal/models"
)

type CreateSwapRequest struct {
	ToUserID     string `json:"to_user_id" validate:"required"`
	SkillOffered string `json:"skill_offered" validate:"required"`
	SkillWanted  string `json:"skill_wanted" validate:"required"`
	Message      string `json:"message" validate:"required,max=500"`
}

type SwapRequestResponse struct {
	ID           string    `json:"id"`
	FromUserID   string    `json:"from_user_id"`
	ToUserID     string    `json:"to_user_id"`
	FromUserName string    `json:"from_user_name,omitempty"`
	ToUserName   string    `json:"to_user_name,omitempty"`
	SkillOffered string    `json:"skill_offered"`
	SkillWanted  string    `json:"skill_wanted"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewSwapRequestResponse(request *models.SwapRequest) *SwapRequestResponse {
	resp := &SwapRequestResponse{
		ID:           request.ID,
		FromUserID:   request.FromUserID,
		ToUserID:     request.ToUserID,
		SkillOffered: request.SkillOffered,
		SkillWanted:  request.SkillWanted,
		Message:      request.Message,
		Status:       string(request.Status),
		CreatedAt:    request.CreatedAt,
		UpdatedAt:    request.UpdatedAt,
	}
	if request.FromUser != nil {
		resp.FromUserName = request.FromUser.Name
	}
	if request.ToUser != nil {
		resp.ToUserName = request.ToUser.Name
	}
	return resp
}
