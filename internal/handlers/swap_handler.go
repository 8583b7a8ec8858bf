package handlers

import (
	"context"
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SwapHandler struct {
	*BaseHandler
	swapService services.SwapService
}

func NewSwapHandler(base *BaseHandler, swapService services.SwapService) *SwapHandler {
	return &SwapHandler{
		BaseHandler: base,
		swapService: swapService,
	}
}

func (h *SwapHandler) RegisterRoutes(r *gin.RouterGroup) {
	swaps := r.Group("/swaps")
	swaps.Use(middleware.AuthMiddleware())
	{
		swaps.POST("", h.CreateRequest)
		swaps.GET("", h.ListOwn)
		swaps.GET("/:id", h.GetRequest)
		swaps.POST("/:id/accept", h.Accept)
		swaps.POST("/:id/reject", h.Reject)
		swaps.POST("/:id/cancel", h.Cancel)
		swaps.POST("/:id/complete", h.Complete)
		swaps.DELETE("/:id", h.DeleteRequest)
	}
}

func (h *SwapHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSwapRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.swapService.CreateRequest(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SwapHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.swapService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SwapHandler) GetRequest(c *gin.Context) {
	h.handleRead(c, h.swapService.GetRequest)
}

func (h *SwapHandler) Accept(c *gin.Context) {
	h.handleTransition(c, h.swapService.Accept)
}

func (h *SwapHandler) Reject(c *gin.Context) {
	h.handleTransition(c, h.swapService.Reject)
}

func (h *SwapHandler) Cancel(c *gin.Context) {
	h.handleTransition(c, h.swapService.Cancel)
}

func (h *SwapHandler) Complete(c *gin.Context) {
	h.handleTransition(c, h.swapService.Complete)
}

func (h *SwapHandler) DeleteRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.swapService.DeleteRequest(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Swap request deleted"})
}

type swapOpFunc func(ctx context.Context, requestID, actingUserID string) (*dto.SwapRequestResponse, error)

func (h *SwapHandler) handleRead(c *gin.Context, fn swapOpFunc) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := fn(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SwapHandler) handleTransition(c *gin.Context, fn swapOpFunc) {
	h.handleRead(c, fn)
}
