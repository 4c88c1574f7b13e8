package services

import (
	"fmt"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"
)

// Reporting tunables. The UI treats these as fixed product behavior, so they
// are constants rather than runtime configuration.
const (
	// LowStockThreshold is the quantity at or below which a product counts
	// as low stock.
	LowStockThreshold = 5
	// SalesWindowDays is the trailing window (including today) of the daily
	// sales series.
	SalesWindowDays = 7
	// RecentFeedLimit is the number of rows in each "recent" dashboard feed.
	RecentFeedLimit = 5
)

// --- DashboardService Interface ---
type DashboardService interface {
	GetStats() (*models.DashboardStats, error)
	GetWorkOrdersByStatus() ([]models.StatusCount, error)
	GetWorkOrdersByPriority() ([]models.PriorityCount, error)
	GetDailySales() ([]models.DailySales, error)
	GetRecentPurchases() ([]models.RecentPurchase, error)
	GetRecentRepairs() ([]models.RecentRepair, error)
	GetTechnicianStats(staffID int64) (*models.TechnicianStats, error)
	GetInventoryStats() (*models.InventoryStats, error)
}

// --- dashboardService Implementation ---
type dashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: repo}
}

func (s *dashboardService) GetStats() (*models.DashboardStats, error) {
	stats, err := s.dashboardRepo.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return stats, nil
}

func (s *dashboardService) GetWorkOrdersByStatus() ([]models.StatusCount, error) {
	counts, err := s.dashboardRepo.GetRepairCountsByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to group work orders by status: %w", err)
	}
	return counts, nil
}

func (s *dashboardService) GetWorkOrdersByPriority() ([]models.PriorityCount, error) {
	counts, err := s.dashboardRepo.GetRepairCountsByPriority()
	if err != nil {
		return nil, fmt.Errorf("failed to group work orders by priority: %w", err)
	}
	return counts, nil
}

func (s *dashboardService) GetDailySales() ([]models.DailySales, error) {
	series, err := s.dashboardRepo.GetDailySales(SalesWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily sales: %w", err)
	}
	return series, nil
}

func (s *dashboardService) GetRecentPurchases() ([]models.RecentPurchase, error) {
	purchases, err := s.dashboardRepo.GetRecentPurchases(RecentFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent purchases: %w", err)
	}
	return purchases, nil
}

func (s *dashboardService) GetRecentRepairs() ([]models.RecentRepair, error) {
	repairs, err := s.dashboardRepo.GetRecentRepairs(RecentFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent repairs: %w", err)
	}
	return repairs, nil
}

func (s *dashboardService) GetTechnicianStats(staffID int64) (*models.TechnicianStats, error) {
	stats, err := s.dashboardRepo.GetTechnicianStats(staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute technician stats for staff %d: %w", staffID, err)
	}
	return stats, nil
}

func (s *dashboardService) GetInventoryStats() (*models.InventoryStats, error) {
	stats, err := s.dashboardRepo.GetInventoryStats(LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to compute inventory stats: %w", err)
	}
	return stats, nil
}
