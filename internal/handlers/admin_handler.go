package handlers

import (
	"net/http"

	"tunzacare_backend/internal/middleware"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/services"
	"tunzacare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, adminService: adminService}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/verifications", h.ListPendingVerifications)
		admin.PATCH("/verifications/:profileId", h.DecideVerification)
		admin.PATCH("/users/:userId/active", h.SetUserActive)
		admin.GET("/stats", h.PlatformStats)
		admin.GET("/activity", h.RecentActivity)
		admin.GET("/subscriptions", h.ListSubscriptions)
	}
}

func (h *AdminHandler) ListPendingVerifications(c *gin.Context) {
	resp, err := h.adminService.ListPendingVerifications(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DecideVerification(c *gin.Context) {
	profileID := c.Param("profileId")

	var req dto.VerificationDecisionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adminService.DecideVerification(c.Request.Context(), h.GetDB(c), profileID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetUserActive(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.SetUserActiveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.SetUserActive(c.Request.Context(), h.GetDB(c), userID, req.IsActive); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "is_active": req.IsActive})
}

func (h *AdminHandler) RecentActivity(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 20)

	resp, err := h.adminService.RecentActivity(c.Request.Context(), h.GetDB(c), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListSubscriptions(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 50)

	resp, err := h.adminService.ListSubscriptions(c.Request.Context(), h.GetDB(c), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) PlatformStats(c *gin.Context) {
	resp, err := h.adminService.PlatformStats(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
