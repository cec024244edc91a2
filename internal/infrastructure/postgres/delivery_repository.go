package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.DeliveryOrderRepository = (*DeliveryOrderRepo)(nil)

// DeliveryOrderRepo implementación del puerto DeliveryOrderRepository sobre PostgreSQL.
type DeliveryOrderRepo struct {
	q Querier
}

// NewDeliveryOrderRepository construye el adaptador de órdenes de entrega. Pasar pool o tx (Querier).
func NewDeliveryOrderRepository(q Querier) *DeliveryOrderRepo {
	return &DeliveryOrderRepo{q: q}
}

// Create persiste una nueva orden de entrega (picked).
func (r *DeliveryOrderRepo) Create(order *entity.DeliveryOrder) error {
	query := `
		INSERT INTO delivery_orders (id, delivery_number, product_id, warehouse_id, quantity, status, notes, picked_at, packed_at, delivered_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.DeliveryNumber, order.ProductID, order.WarehouseID,
		order.Quantity, order.Status, order.Notes,
		order.PickedAt, order.PackedAt, order.DeliveredAt, order.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert delivery order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de entrega por ID.
func (r *DeliveryOrderRepo) GetByID(id string) (*entity.DeliveryOrder, error) {
	query := `
		SELECT id, delivery_number, product_id, warehouse_id, quantity, status, notes, picked_at, packed_at, delivered_at, created_by
		FROM delivery_orders WHERE id = $1`
	var d entity.DeliveryOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.DeliveryNumber, &d.ProductID, &d.WarehouseID, &d.Quantity,
		&d.Status, &d.Notes, &d.PickedAt, &d.PackedAt, &d.DeliveredAt, &d.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery order: %w", err)
	}
	return &d, nil
}

// TransitionStatus mueve la orden de fromStatus a toStatus con un UPDATE condicionado
// al estado actual, registrando el timestamp de la etapa alcanzada. RowsAffected == 0
// significa que la orden no estaba en fromStatus (o no existe): la transición no aplica.
func (r *DeliveryOrderRepo) TransitionStatus(id, fromStatus, toStatus string, at time.Time) (bool, error) {
	var column string
	switch toStatus {
	case entity.DeliveryStatusPacked:
		column = "packed_at"
	case entity.DeliveryStatusDelivered:
		column = "delivered_at"
	default:
		return false, fmt.Errorf("transition delivery order: estado destino desconocido %q", toStatus)
	}
	query := fmt.Sprintf(`
		UPDATE delivery_orders SET status = $3, %s = $4
		WHERE id = $1 AND status = $2`, column)
	cmd, err := r.q.Exec(context.Background(), query, id, fromStatus, toStatus, at)
	if err != nil {
		return false, fmt.Errorf("transition delivery order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeleteIfNotDelivered elimina la orden solo si aún no fue entregada.
func (r *DeliveryOrderRepo) DeleteIfNotDelivered(id string) (bool, error) {
	query := `DELETE FROM delivery_orders WHERE id = $1 AND status <> $2`
	cmd, err := r.q.Exec(context.Background(), query, id, entity.DeliveryStatusDelivered)
	if err != nil {
		return false, fmt.Errorf("delete delivery order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista órdenes de entrega, opcionalmente filtradas por estado (vacío = todas).
func (r *DeliveryOrderRepo) List(status string, limit, offset int) ([]*entity.DeliveryOrder, error) {
	query := `
		SELECT id, delivery_number, product_id, warehouse_id, quantity, status, notes, picked_at, packed_at, delivered_at, created_by
		FROM delivery_orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY picked_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list delivery orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryOrder
	for rows.Next() {
		var d entity.DeliveryOrder
		if err := rows.Scan(&d.ID, &d.DeliveryNumber, &d.ProductID, &d.WarehouseID, &d.Quantity,
			&d.Status, &d.Notes, &d.PickedAt, &d.PackedAt, &d.DeliveredAt, &d.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan delivery order: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
