package repositories

import (
	"database/sql"
	"fmt"

	"repair_shop_backend/internal/models"
)

// HistoryRepository produces the merged purchase/repair event feed. The
// merge happens in SQL: both event shapes are normalized in a UNION ALL and
// ordered by event date across the combined set.
type HistoryRepository interface {
	GetHistory() ([]models.HistoryEvent, error)
}

type historyRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new instance of HistoryRepository.
func NewHistoryRepository(db *sql.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// GetHistory returns all purchase and repair events newest-first. Purchase
// detail is the "qty x product" line summary; repair detail is the work
// order description with the assigned staff name as secondary detail.
func (r *historyRepository) GetHistory() ([]models.HistoryEvent, error) {
	query := `
		SELECT 'purchase' AS event_type, p.id, p.purchase_date AS event_date, c.name AS client_name,
		       COALESCE((
		           SELECT GROUP_CONCAT(pi.quantity_purchased || ' x ' || COALESCE(pr.name, 'Deleted product'), ', ')
		           FROM purchase_items pi
		           LEFT JOIN products pr ON pi.product_id = pr.id
		           WHERE pi.purchase_id = p.id
		       ), '') AS detail,
		       NULL AS staff_name, p.total_price
		FROM purchases p
		JOIN clients c ON p.client_id = c.id
		UNION ALL
		SELECT 'repair', r.id, r.request_date, c.name, r.description, s.name, r.total_price
		FROM repairs r
		JOIN clients c ON r.client_id = c.id
		LEFT JOIN staff_members s ON r.staff_id = s.id
		ORDER BY event_date DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying history feed: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	events := []models.HistoryEvent{}
	for rows.Next() {
		var event models.HistoryEvent
		var staffName sql.NullString
		var totalPrice sql.NullFloat64
		if err := rows.Scan(
			&event.Type, &event.ID, &event.EventDate, &event.ClientName,
			&event.Detail, &staffName, &totalPrice,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning history event: %v", ErrDatabaseError, err)
		}
		if staffName.Valid {
			event.StaffName = &staffName.String
		}
		if totalPrice.Valid {
			event.TotalPrice = &totalPrice.Float64
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating history rows: %v", ErrDatabaseError, err)
	}
	return events, nil
}
