package handlers

import (
	"net/http"

	"tunzacare_backend/internal/services"
	"tunzacare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	*BaseHandler
	discoveryService services.DiscoveryService
	reviewService    services.ReviewService
}

func NewDiscoveryHandler(base *BaseHandler, discoveryService services.DiscoveryService, reviewService services.ReviewService) *DiscoveryHandler {
	return &DiscoveryHandler{
		BaseHandler:      base,
		discoveryService: discoveryService,
		reviewService:    reviewService,
	}
}

// Discovery is public: browsing caregivers requires no account.
func (h *DiscoveryHandler) RegisterRoutes(r *gin.RouterGroup) {
	caregivers := r.Group("/caregivers")
	{
		caregivers.GET("", h.FindCaregivers)
		caregivers.GET("/:caregiverId", h.GetCaregiver)
		caregivers.GET("/:caregiverId/reviews", h.GetCaregiverReviews)
	}
}

func (h *DiscoveryHandler) FindCaregivers(c *gin.Context) {
	var req dto.DiscoverCaregiversRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.discoveryService.FindCaregivers(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DiscoveryHandler) GetCaregiver(c *gin.Context) {
	caregiverID := c.Param("caregiverId")

	resp, err := h.discoveryService.GetCaregiver(c.Request.Context(), h.GetDB(c), caregiverID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DiscoveryHandler) GetCaregiverReviews(c *gin.Context) {
	caregiverID := c.Param("caregiverId")
	page, pageSize := ParsePagination(c)

	resp, err := h.reviewService.ListCaregiverReviews(c.Request.Context(), h.GetDB(c), caregiverID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
