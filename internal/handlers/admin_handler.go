package handlers

import (
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Active broadcast messages are visible to every signed-in user.
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.GET("", h.ListActiveMessages)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/stats", h.PlatformStats)
		admin.GET("/skills/top", h.TopSkills)
		admin.GET("/users", h.ListUsers)
		admin.GET("/swaps", h.ListSwaps)

		admin.POST("/users/:id/ban", h.BanUser)
		admin.POST("/users/:id/unban", h.UnbanUser)

		admin.GET("/export/users", h.ExportUsers)
		admin.GET("/export/swaps", h.ExportSwaps)
		admin.GET("/export/activity", h.ExportActivity)

		admin.POST("/messages", h.CreateMessage)
		admin.GET("/messages", h.ListMessages)
		admin.PUT("/messages/:id/active", h.SetMessageActive)
		admin.DELETE("/messages/:id", h.DeleteMessage)
	}
}

func (h *AdminHandler) PlatformStats(c *gin.Context) {
	stats, err := h.adminService.PlatformStats(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) TopSkills(c *gin.Context) {
	n := ParseQueryInt(c, "limit", 10)

	ranking, err := h.adminService.TopSkills(c.Request.Context(), n)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": ranking})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) ListSwaps(c *gin.Context) {
	var query dto.AdminSwapsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	swaps, err := h.adminService.ListSwaps(c.Request.Context(), models.SwapRequestStatus(query.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"swaps": swaps})
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.adminService.BanUser(c.Request.Context(), adminID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) UnbanUser(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.adminService.UnbanUser(c.Request.Context(), adminID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// The export endpoints stream the snapshot as a JSON attachment.

func (h *AdminHandler) ExportUsers(c *gin.Context) {
	records, err := h.adminService.ExportUsers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="users.json"`)
	c.JSON(http.StatusOK, records)
}

func (h *AdminHandler) ExportSwaps(c *gin.Context) {
	records, err := h.adminService.ExportSwaps(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="swaps.json"`)
	c.JSON(http.StatusOK, records)
}

func (h *AdminHandler) ExportActivity(c *gin.Context) {
	report, err := h.adminService.ExportActivity(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="activity.json"`)
	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateAdminMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.adminService.CreateMessage(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *AdminHandler) ListMessages(c *gin.Context) {
	messages, err := h.adminService.ListMessages(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *AdminHandler) ListActiveMessages(c *gin.Context) {
	messages, err := h.adminService.ListActiveMessages(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

func (h *AdminHandler) SetMessageActive(c *gin.Context) {
	var req setActiveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	if req.IsActive == nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("is_active is required"))
		return
	}

	if err := h.adminService.SetMessageActive(c.Request.Context(), c.Param("id"), *req.IsActive); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message updated"})
}

func (h *AdminHandler) DeleteMessage(c *gin.Context) {
	if err := h.adminService.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
