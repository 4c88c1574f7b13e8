package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"repair_shop_backend/internal/models"
)

// DashboardRepository holds the read-only aggregation queries behind the
// dashboards. Each role-scoped variant is its own query; nothing is filtered
// application-side from a full dataset.
type DashboardRepository interface {
	GetStats() (*models.DashboardStats, error)
	GetRepairCountsByStatus() ([]models.StatusCount, error)
	GetRepairCountsByPriority() ([]models.PriorityCount, error)
	GetDailySales(windowDays int) ([]models.DailySales, error)
	GetRecentPurchases(limit int) ([]models.RecentPurchase, error)
	GetRecentRepairs(limit int) ([]models.RecentRepair, error)
	GetTechnicianStats(staffID int64) (*models.TechnicianStats, error)
	GetInventoryStats(lowStockThreshold int) (*models.InventoryStats, error)
}

type dashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository.
func NewDashboardRepository(db *sql.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetStats computes the global KPI block. Every sum goes through COALESCE so
// an empty table yields numeric zero, and the stock/sales ratio is defined as
// zero when there are no sales.
func (r *dashboardRepository) GetStats() (*models.DashboardStats, error) {
	var stats models.DashboardStats

	if err := r.db.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&stats.TotalClients); err != nil {
		return nil, fmt.Errorf("%w: counting clients: %v", ErrDatabaseError, err)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM staff_members`).Scan(&stats.TotalStaff); err != nil {
		return nil, fmt.Errorf("%w: counting staff: %v", ErrDatabaseError, err)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM repairs`).Scan(&stats.TotalRepairs); err != nil {
		return nil, fmt.Errorf("%w: counting repairs: %v", ErrDatabaseError, err)
	}
	if err := r.db.QueryRow(`SELECT COALESCE(SUM(total_price), 0) FROM purchases`).Scan(&stats.TotalSales); err != nil {
		return nil, fmt.Errorf("%w: summing sales: %v", ErrDatabaseError, err)
	}
	if err := r.db.QueryRow(`SELECT COALESCE(SUM(quantity * price), 0) FROM products`).Scan(&stats.StockValue); err != nil {
		return nil, fmt.Errorf("%w: summing stock value: %v", ErrDatabaseError, err)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM products WHERE quantity = 0`).Scan(&stats.OutOfStockCount); err != nil {
		return nil, fmt.Errorf("%w: counting out-of-stock products: %v", ErrDatabaseError, err)
	}

	if stats.TotalSales > 0 {
		stats.StockToSalesRatio = stats.StockValue / stats.TotalSales
	}
	return &stats, nil
}

// GetRepairCountsByStatus groups work orders by status.
func (r *dashboardRepository) GetRepairCountsByStatus() ([]models.StatusCount, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM repairs GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("%w: grouping repairs by status: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	counts := []models.StatusCount{}
	for rows.Next() {
		var sc models.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("%w: scanning status count: %v", ErrDatabaseError, err)
		}
		counts = append(counts, sc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating status counts: %v", ErrDatabaseError, err)
	}
	return counts, nil
}

// GetRepairCountsByPriority groups work orders by priority.
func (r *dashboardRepository) GetRepairCountsByPriority() ([]models.PriorityCount, error) {
	rows, err := r.db.Query(`SELECT priority, COUNT(*) FROM repairs GROUP BY priority ORDER BY priority`)
	if err != nil {
		return nil, fmt.Errorf("%w: grouping repairs by priority: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	counts := []models.PriorityCount{}
	for rows.Next() {
		var pc models.PriorityCount
		if err := rows.Scan(&pc.Priority, &pc.Count); err != nil {
			return nil, fmt.Errorf("%w: scanning priority count: %v", ErrDatabaseError, err)
		}
		counts = append(counts, pc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating priority counts: %v", ErrDatabaseError, err)
	}
	return counts, nil
}

// GetDailySales returns per-day sales totals for the trailing window
// (including today), ascending by date. Only the date portion of the
// purchase timestamp matters; days without purchases produce no row.
func (r *dashboardRepository) GetDailySales(windowDays int) ([]models.DailySales, error) {
	cutoff := time.Now().AddDate(0, 0, -(windowDays - 1)).Format("2006-01-02")

	query := `
		SELECT date(purchase_date) AS day, SUM(total_price)
		FROM purchases
		WHERE date(purchase_date) >= ?
		GROUP BY day
		ORDER BY day ASC`

	rows, err := r.db.Query(query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: querying daily sales: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	series := []models.DailySales{}
	for rows.Next() {
		var ds models.DailySales
		if err := rows.Scan(&ds.Date, &ds.Total); err != nil {
			return nil, fmt.Errorf("%w: scanning daily sales: %v", ErrDatabaseError, err)
		}
		series = append(series, ds)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating daily sales rows: %v", ErrDatabaseError, err)
	}
	return series, nil
}

// GetRecentPurchases returns the newest purchases with a concatenated
// product-name summary per row.
func (r *dashboardRepository) GetRecentPurchases(limit int) ([]models.RecentPurchase, error) {
	query := `
		SELECT p.id, c.name, p.purchase_date, p.total_price,
		       COALESCE((
		           SELECT GROUP_CONCAT(COALESCE(pr.name, 'Deleted product'), ', ')
		           FROM purchase_items pi
		           LEFT JOIN products pr ON pi.product_id = pr.id
		           WHERE pi.purchase_id = p.id
		       ), '')
		FROM purchases p
		JOIN clients c ON p.client_id = c.id
		ORDER BY p.purchase_date DESC
		LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying recent purchases: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	purchases := []models.RecentPurchase{}
	for rows.Next() {
		var rp models.RecentPurchase
		if err := rows.Scan(&rp.ID, &rp.ClientName, &rp.PurchaseDate, &rp.TotalPrice, &rp.ProductSummary); err != nil {
			return nil, fmt.Errorf("%w: scanning recent purchase: %v", ErrDatabaseError, err)
		}
		purchases = append(purchases, rp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating recent purchase rows: %v", ErrDatabaseError, err)
	}
	return purchases, nil
}

// GetRecentRepairs returns the newest work orders.
func (r *dashboardRepository) GetRecentRepairs(limit int) ([]models.RecentRepair, error) {
	query := `
		SELECT r.id, r.description, r.status, r.priority, r.request_date, c.name
		FROM repairs r
		JOIN clients c ON r.client_id = c.id
		ORDER BY r.request_date DESC
		LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying recent repairs: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	repairs := []models.RecentRepair{}
	for rows.Next() {
		var rr models.RecentRepair
		if err := rows.Scan(&rr.ID, &rr.Description, &rr.Status, &rr.Priority, &rr.RequestDate, &rr.ClientName); err != nil {
			return nil, fmt.Errorf("%w: scanning recent repair: %v", ErrDatabaseError, err)
		}
		repairs = append(repairs, rr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating recent repair rows: %v", ErrDatabaseError, err)
	}
	return repairs, nil
}

// GetTechnicianStats computes the technician-scoped counters: open work
// orders assigned to them, overdue ones (due date passed, not completed),
// and their lifetime completed total.
func (r *dashboardRepository) GetTechnicianStats(staffID int64) (*models.TechnicianStats, error) {
	var stats models.TechnicianStats
	now := time.Now().Format(sqliteTimeLayout)

	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM repairs WHERE staff_id = ? AND status != ?`,
		staffID, models.StatusCompleted,
	).Scan(&stats.ActiveAssigned)
	if err != nil {
		return nil, fmt.Errorf("%w: counting active assigned repairs: %v", ErrDatabaseError, err)
	}

	err = r.db.QueryRow(
		`SELECT COUNT(*) FROM repairs WHERE staff_id = ? AND status != ? AND due_date IS NOT NULL AND due_date < ?`,
		staffID, models.StatusCompleted, now,
	).Scan(&stats.Overdue)
	if err != nil {
		return nil, fmt.Errorf("%w: counting overdue repairs: %v", ErrDatabaseError, err)
	}

	err = r.db.QueryRow(
		`SELECT COUNT(*) FROM repairs WHERE staff_id = ? AND status = ?`,
		staffID, models.StatusCompleted,
	).Scan(&stats.TotalCompleted)
	if err != nil {
		return nil, fmt.Errorf("%w: counting completed repairs: %v", ErrDatabaseError, err)
	}

	return &stats, nil
}

// GetInventoryStats computes the inventory-scoped counters and the list of
// products at or below the low-stock threshold.
func (r *dashboardRepository) GetInventoryStats(lowStockThreshold int) (*models.InventoryStats, error) {
	var stats models.InventoryStats

	err := r.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(quantity), 0) FROM products`).
		Scan(&stats.SKUCount, &stats.TotalUnits)
	if err != nil {
		return nil, fmt.Errorf("%w: counting products: %v", ErrDatabaseError, err)
	}

	rows, err := r.db.Query(
		`SELECT id, name, quantity, price FROM products WHERE quantity <= ? ORDER BY quantity ASC, name ASC`,
		lowStockThreshold,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying low-stock products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	stats.LowStockProducts = []models.Product{}
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Quantity, &product.Price); err != nil {
			return nil, fmt.Errorf("%w: scanning low-stock product: %v", ErrDatabaseError, err)
		}
		stats.LowStockProducts = append(stats.LowStockProducts, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating low-stock rows: %v", ErrDatabaseError, err)
	}
	stats.LowStockCount = len(stats.LowStockProducts)

	return &stats, nil
}
