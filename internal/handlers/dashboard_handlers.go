package handlers

import (
	"net/http"

	"repair_shop_backend/internal/services"
	"repair_shop_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetStats handles the headline dashboard numbers.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		utils.LogError(err, "GetStats: Error from dashboardService.GetStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dashboard stats.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetWorkOrdersByStatus handles the status breakdown of all work orders.
func (h *DashboardHandler) GetWorkOrdersByStatus(c *gin.Context) {
	counts, err := h.dashboardService.GetWorkOrdersByStatus()
	if err != nil {
		utils.LogError(err, "GetWorkOrdersByStatus: Error from dashboardService.GetWorkOrdersByStatus")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to group work orders by status.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GetWorkOrdersByPriority handles the priority breakdown of all work orders.
func (h *DashboardHandler) GetWorkOrdersByPriority(c *gin.Context) {
	counts, err := h.dashboardService.GetWorkOrdersByPriority()
	if err != nil {
		utils.LogError(err, "GetWorkOrdersByPriority: Error from dashboardService.GetWorkOrdersByPriority")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to group work orders by priority.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GetDailySales handles the trailing daily sales series.
func (h *DashboardHandler) GetDailySales(c *gin.Context) {
	series, err := h.dashboardService.GetDailySales()
	if err != nil {
		utils.LogError(err, "GetDailySales: Error from dashboardService.GetDailySales")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute daily sales.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetRecentPurchases handles the recent purchases feed.
func (h *DashboardHandler) GetRecentPurchases(c *gin.Context) {
	purchases, err := h.dashboardService.GetRecentPurchases()
	if err != nil {
		utils.LogError(err, "GetRecentPurchases: Error from dashboardService.GetRecentPurchases")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch recent purchases.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// GetRecentRepairs handles the recent repairs feed.
func (h *DashboardHandler) GetRecentRepairs(c *gin.Context) {
	repairs, err := h.dashboardService.GetRecentRepairs()
	if err != nil {
		utils.LogError(err, "GetRecentRepairs: Error from dashboardService.GetRecentRepairs")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch recent repairs.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, repairs)
}

// GetTechnicianStats handles the logged-in staff member's personal workload
// numbers. The identity comes from the session token, not the URL.
func (h *DashboardHandler) GetTechnicianStats(c *gin.Context) {
	staffIDVal, exists := c.Get("staffID")
	if !exists {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Staff identity not found in session.", "Missing staffID in context"))
		return
	}
	staffID, ok := staffIDVal.(int64)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to resolve staff identity.", "Invalid staffID type in context"))
		return
	}

	stats, err := h.dashboardService.GetTechnicianStats(staffID)
	if err != nil {
		utils.LogError(err, "GetTechnicianStats: Error from dashboardService.GetTechnicianStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute technician stats.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetInventoryStats handles the inventory overview panel.
func (h *DashboardHandler) GetInventoryStats(c *gin.Context) {
	stats, err := h.dashboardService.GetInventoryStats()
	if err != nil {
		utils.LogError(err, "GetInventoryStats: Error from dashboardService.GetInventoryStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute inventory stats.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}
