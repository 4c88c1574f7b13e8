package router

import (
	"repair_shop_backend/internal/handlers"
	"repair_shop_backend/internal/middleware"
	"repair_shop_backend/internal/permissions"

	"github.com/gin-gonic/gin"
)

// SetupClientRoutes sets up the client routes, including the per-client
// repair and purchase history views.
func SetupClientRoutes(
	authenticatedGroup *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	repairHandler *handlers.RepairHandler,
	purchaseHandler *handlers.PurchaseHandler,
) {
	clientRoutes := authenticatedGroup.Group("/clients")
	{
		clientRoutes.POST("", middleware.RequirePermission(permissions.ClientsManage), clientHandler.CreateClient)
		clientRoutes.GET("", middleware.RequirePermission(permissions.ClientsView), clientHandler.GetClients)
		clientRoutes.GET("/:id", middleware.RequirePermission(permissions.ClientsView), clientHandler.GetClientByID)
		clientRoutes.PUT("/:id", middleware.RequirePermission(permissions.ClientsManage), clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", middleware.RequirePermission(permissions.ClientsManage), clientHandler.DeleteClient)

		clientRoutes.GET("/:id/repairs", middleware.RequirePermission(permissions.RepairsView), repairHandler.GetRepairsForClient)
		clientRoutes.GET("/:id/purchases", middleware.RequirePermission(permissions.PurchasesView), purchaseHandler.GetPurchasesForClient)
	}
}

// SetupProductRoutes sets up the product routes.
func SetupProductRoutes(authenticatedGroup *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	productRoutes := authenticatedGroup.Group("/products")
	{
		productRoutes.POST("", middleware.RequirePermission(permissions.ProductsManage), productHandler.CreateProduct)
		productRoutes.GET("", middleware.RequirePermission(permissions.ProductsView), productHandler.GetProducts)
		productRoutes.GET("/:id", middleware.RequirePermission(permissions.ProductsView), productHandler.GetProductByID)
		productRoutes.PUT("/:id", middleware.RequirePermission(permissions.ProductsManage), productHandler.UpdateProduct)
		productRoutes.DELETE("/:id", middleware.RequirePermission(permissions.ProductsManage), productHandler.DeleteProduct)
	}
}

// SetupStaffRoutes sets up the staff routes.
func SetupStaffRoutes(authenticatedGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	staffRoutes := authenticatedGroup.Group("/staff")
	{
		staffRoutes.POST("", middleware.RequirePermission(permissions.StaffManage), staffHandler.CreateStaffMember)
		staffRoutes.GET("", middleware.RequirePermission(permissions.StaffView), staffHandler.GetStaffMembers)
		staffRoutes.GET("/:id", middleware.RequirePermission(permissions.StaffView), staffHandler.GetStaffMemberByID)
		staffRoutes.PUT("/:id", middleware.RequirePermission(permissions.StaffManage), staffHandler.UpdateStaffMember)
		staffRoutes.DELETE("/:id", middleware.RequirePermission(permissions.StaffManage), staffHandler.DeleteStaffMember)
	}
}

// SetupRepairRoutes sets up the work order routes.
func SetupRepairRoutes(authenticatedGroup *gin.RouterGroup, repairHandler *handlers.RepairHandler) {
	repairRoutes := authenticatedGroup.Group("/repairs")
	{
		repairRoutes.POST("", middleware.RequirePermission(permissions.RepairsManage), repairHandler.CreateRepair)
		repairRoutes.GET("", middleware.RequirePermission(permissions.RepairsView), repairHandler.GetRepairs)
		repairRoutes.GET("/:id", middleware.RequirePermission(permissions.RepairsView), repairHandler.GetRepairByID)
		repairRoutes.PUT("/:id", middleware.RequirePermission(permissions.RepairsManage), repairHandler.UpdateRepair)
		repairRoutes.DELETE("/:id", middleware.RequirePermission(permissions.RepairsManage), repairHandler.DeleteRepair)
	}
}

// SetupPurchaseRoutes sets up the purchase routes.
func SetupPurchaseRoutes(authenticatedGroup *gin.RouterGroup, purchaseHandler *handlers.PurchaseHandler) {
	purchaseRoutes := authenticatedGroup.Group("/purchases")
	{
		purchaseRoutes.POST("", middleware.RequirePermission(permissions.PurchasesCreate), purchaseHandler.CreatePurchase)
	}
}

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	dashboardRoutes.Use(middleware.RequirePermission(permissions.DashboardView))
	{
		dashboardRoutes.GET("/stats", dashboardHandler.GetStats)
		dashboardRoutes.GET("/work-orders/by-status", dashboardHandler.GetWorkOrdersByStatus)
		dashboardRoutes.GET("/work-orders/by-priority", dashboardHandler.GetWorkOrdersByPriority)
		dashboardRoutes.GET("/daily-sales", dashboardHandler.GetDailySales)
		dashboardRoutes.GET("/recent-purchases", dashboardHandler.GetRecentPurchases)
		dashboardRoutes.GET("/recent-repairs", dashboardHandler.GetRecentRepairs)
		dashboardRoutes.GET("/technician-stats", dashboardHandler.GetTechnicianStats)
		dashboardRoutes.GET("/inventory-stats", dashboardHandler.GetInventoryStats)
	}
}

// SetupHistoryRoutes sets up the activity feed route.
func SetupHistoryRoutes(authenticatedGroup *gin.RouterGroup, historyHandler *handlers.HistoryHandler) {
	historyRoutes := authenticatedGroup.Group("/history")
	{
		historyRoutes.GET("", middleware.RequirePermission(permissions.HistoryView), historyHandler.GetHistory)
	}
}
