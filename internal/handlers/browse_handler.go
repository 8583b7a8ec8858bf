package handlers

import (
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BrowseHandler struct {
	*BaseHandler
	browseService services.BrowseService
}

func NewBrowseHandler(base *BaseHandler, browseService services.BrowseService) *BrowseHandler {
	return &BrowseHandler{
		BaseHandler:   base,
		browseService: browseService,
	}
}

func (h *BrowseHandler) RegisterRoutes(r *gin.RouterGroup) {
	// The category list is public; browsing needs a viewer identity so the
	// viewer can be excluded from their own results.
	r.GET("/browse/categories", h.Categories)

	browse := r.Group("/browse")
	browse.Use(middleware.AuthMiddleware())
	{
		browse.GET("", h.Browse)
	}
}

func (h *BrowseHandler) Browse(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.BrowseQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.browseService.Browse(c.Request.Context(), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BrowseHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.browseService.Categories()})
}
