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

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de recepciones. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste una nueva recepción (pending).
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, receipt_number, product_id, warehouse_id, quantity, status, reference, notes, created_at, completed_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.ReceiptNumber, receipt.ProductID, receipt.WarehouseID,
		receipt.Quantity, receipt.Status, receipt.Reference, receipt.Notes,
		receipt.CreatedAt, receipt.CompletedAt, receipt.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción por ID.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `
		SELECT id, receipt_number, product_id, warehouse_id, quantity, status, reference, notes, created_at, completed_at, created_by
		FROM receipts WHERE id = $1`
	var rc entity.Receipt
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rc.ID, &rc.ReceiptNumber, &rc.ProductID, &rc.WarehouseID, &rc.Quantity,
		&rc.Status, &rc.Reference, &rc.Notes, &rc.CreatedAt, &rc.CompletedAt, &rc.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rc, nil
}

// CompleteIfPending pasa la recepción de pending a completed con un UPDATE condicionado
// al estado actual. RowsAffected == 0 significa que no estaba pending (o no existe):
// así dos completaciones concurrentes no aplican el efecto dos veces.
func (r *ReceiptRepo) CompleteIfPending(id string, at time.Time) (bool, error) {
	query := `
		UPDATE receipts SET status = $3, completed_at = $2
		WHERE id = $1 AND status = $4`
	cmd, err := r.q.Exec(context.Background(), query, id, at, entity.ReceiptStatusCompleted, entity.ReceiptStatusPending)
	if err != nil {
		return false, fmt.Errorf("complete receipt: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista recepciones, opcionalmente filtradas por estado (vacío = todas).
func (r *ReceiptRepo) List(status string, limit, offset int) ([]*entity.Receipt, error) {
	query := `
		SELECT id, receipt_number, product_id, warehouse_id, quantity, status, reference, notes, created_at, completed_at, created_by
		FROM receipts
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rc entity.Receipt
		if err := rows.Scan(&rc.ID, &rc.ReceiptNumber, &rc.ProductID, &rc.WarehouseID, &rc.Quantity,
			&rc.Status, &rc.Reference, &rc.Notes, &rc.CreatedAt, &rc.CompletedAt, &rc.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rc)
	}
	return list, rows.Err()
}
