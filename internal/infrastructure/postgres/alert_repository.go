package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta de stock bajo.
func (r *AlertRepo) Create(alert *entity.LowStockAlert) error {
	query := `
		INSERT INTO low_stock_alerts (id, product_id, warehouse_id, quantity, reorder_level, acknowledged, acknowledged_by, acknowledged_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductID, alert.WarehouseID, alert.Quantity, alert.ReorderLevel,
		alert.Acknowledged, alert.AcknowledgedBy, alert.AcknowledgedAt, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertRepo) GetByID(id string) (*entity.LowStockAlert, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, reorder_level, acknowledged, acknowledged_by, acknowledged_at, created_at
		FROM low_stock_alerts WHERE id = $1`
	var a entity.LowStockAlert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ProductID, &a.WarehouseID, &a.Quantity, &a.ReorderLevel,
		&a.Acknowledged, &a.AcknowledgedBy, &a.AcknowledgedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// ExistsUnacknowledged indica si hay una alerta sin reconocer para el par (producto, bodega).
func (r *AlertRepo) ExistsUnacknowledged(productID, warehouseID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM low_stock_alerts
			WHERE product_id = $1 AND warehouse_id = $2 AND acknowledged = false
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists unacknowledged alert: %w", err)
	}
	return exists, nil
}

// Acknowledge marca la alerta como reconocida con un UPDATE condicionado.
// RowsAffected == 0 significa que no existe o ya estaba reconocida.
func (r *AlertRepo) Acknowledge(id, acknowledgedBy string, at time.Time) (bool, error) {
	query := `
		UPDATE low_stock_alerts SET acknowledged = true, acknowledged_by = $2, acknowledged_at = $3
		WHERE id = $1 AND acknowledged = false`
	cmd, err := r.q.Exec(context.Background(), query, id, acknowledgedBy, at)
	if err != nil {
		return false, fmt.Errorf("acknowledge alert: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista alertas; con onlyOpen solo las no reconocidas.
func (r *AlertRepo) List(onlyOpen bool, limit, offset int) ([]*entity.LowStockAlert, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, reorder_level, acknowledged, acknowledged_by, acknowledged_at, created_at
		FROM low_stock_alerts
		WHERE ($1 = false OR acknowledged = false)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, onlyOpen, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.LowStockAlert
	for rows.Next() {
		var a entity.LowStockAlert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.WarehouseID, &a.Quantity, &a.ReorderLevel,
			&a.Acknowledged, &a.AcknowledgedBy, &a.AcknowledgedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
