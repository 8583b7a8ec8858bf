package handlers

import (
	"context"
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/users/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.GetProfile)
		me.PUT("", h.UpdateProfile)

		me.POST("/skills/offered", h.AddSkillOffered)
		me.DELETE("/skills/offered/:name", h.RemoveSkillOffered)
		me.POST("/skills/wanted", h.AddSkillWanted)
		me.DELETE("/skills/wanted/:name", h.RemoveSkillWanted)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) AddSkillOffered(c *gin.Context) {
	h.addSkill(c, h.userService.AddSkillOffered)
}

func (h *UserHandler) AddSkillWanted(c *gin.Context) {
	h.addSkill(c, h.userService.AddSkillWanted)
}

func (h *UserHandler) RemoveSkillOffered(c *gin.Context) {
	h.removeSkill(c, h.userService.RemoveSkillOffered)
}

func (h *UserHandler) RemoveSkillWanted(c *gin.Context) {
	h.removeSkill(c, h.userService.RemoveSkillWanted)
}

type addSkillFunc func(ctx context.Context, userID string, req *dto.SkillRequest) (*dto.UserResponse, error)
type removeSkillFunc func(ctx context.Context, userID, name string) (*dto.UserResponse, error)

func (h *UserHandler) addSkill(c *gin.Context, fn addSkillFunc) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := fn(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) removeSkill(c *gin.Context, fn removeSkillFunc) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	name := c.Param("name")

	resp, err := fn(c.Request.Context(), userID, name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
