package router

import (
	"database/sql"

	"repair_shop_backend/internal/handlers"
	"repair_shop_backend/internal/middleware"
	"repair_shop_backend/internal/repositories"
	"repair_shop_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	clientRepo := repositories.NewClientRepository(db)
	productRepo := repositories.NewProductRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	repairRepo := repositories.NewRepairRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)

	// Initialize Services
	clientService := services.NewClientService(clientRepo, db)
	productService := services.NewProductService(productRepo, db)
	staffService := services.NewStaffService(staffRepo, db)
	repairService := services.NewRepairService(repairRepo, db)
	purchaseService := services.NewPurchaseService(purchaseRepo, productRepo, db)
	dashboardService := services.NewDashboardService(dashboardRepo)
	historyService := services.NewHistoryService(historyRepo)
	authService := services.NewAuthService(staffRepo)

	// Initialize Handlers
	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)
	staffHandler := handlers.NewStaffHandler(staffService)
	repairHandler := handlers.NewRepairHandler(repairService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	authHandler := handlers.NewAuthHandler(authService)

	apiV1 := engine.Group("/api/v1")

	// Public routes: only sign-in lives outside the session gate.
	publicAuthRoutes := apiV1.Group("/auth")
	publicAuthRoutes.POST("/login", authHandler.Login)

	// Everything else requires a valid session token.
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupClientRoutes(authenticated, clientHandler, repairHandler, purchaseHandler)
		SetupProductRoutes(authenticated, productHandler)
		SetupStaffRoutes(authenticated, staffHandler)
		SetupRepairRoutes(authenticated, repairHandler)
		SetupPurchaseRoutes(authenticated, purchaseHandler)
		SetupDashboardRoutes(authenticated, dashboardHandler)
		SetupHistoryRoutes(authenticated, historyHandler)
	}
}

// SetupAuthenticatedAuthRoutes wires the session-scoped auth endpoints.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
	group.GET("/permissions", authHandler.GetPermissions)
}
