package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	stockdomain "github.com/jhoicas/bodega-api/internal/domain/stock"
	"github.com/jhoicas/bodega-api/pkg/metrics"
)

// Helpers compartidos del motor de inventario. Cada helper se invoca SIEMPRE dentro de
// una transacción (TxRepos): bloquea la fila de saldo, la muta, escribe el asiento con
// el saldo devuelto por la mutación (nunca una relectura) y evalúa la alerta.

// applyCredit suma qty al saldo del par (producto, bodega). Sin piso: las entradas
// se aplican incondicionalmente.
func applyCredit(r TxRepos, product *entity.Product, warehouseID string, qty decimal.Decimal, ledgerType, reference, userID string, now time.Time) (decimal.Decimal, error) {
	st, err := r.Stock.GetForUpdate(product.ID, warehouseID)
	if err != nil {
		return decimal.Zero, err
	}
	newQty := st.Quantity.Add(qty)
	st.Quantity = newQty
	st.UpdatedAt = now
	if err := r.Stock.Upsert(st); err != nil {
		return decimal.Zero, err
	}
	if err := appendLedger(r, product.ID, warehouseID, qty, newQty, ledgerType, reference, userID, now); err != nil {
		return decimal.Zero, err
	}
	if err := evaluateAlert(r, product, warehouseID, newQty, now); err != nil {
		return decimal.Zero, err
	}
	return newQty, nil
}

// applyDebit resta qty del saldo. Verifica disponibilidad bajo el lock de fila y, aun
// así, recorta en cero al persistir: nunca queda un saldo negativo almacenado.
func applyDebit(r TxRepos, product *entity.Product, warehouseID string, qty decimal.Decimal, ledgerType, reference, userID string, now time.Time) (decimal.Decimal, error) {
	st, err := r.Stock.GetForUpdate(product.ID, warehouseID)
	if err != nil {
		return decimal.Zero, err
	}
	if st.Quantity.LessThan(qty) {
		return decimal.Zero, &InsufficientStockError{Available: st.Quantity}
	}
	newQty, applied := stockdomain.SubtractClamped(st.Quantity, qty)
	st.Quantity = newQty
	st.UpdatedAt = now
	if err := r.Stock.Upsert(st); err != nil {
		return decimal.Zero, err
	}
	if err := appendLedger(r, product.ID, warehouseID, applied, newQty, ledgerType, reference, userID, now); err != nil {
		return decimal.Zero, err
	}
	if err := evaluateAlert(r, product, warehouseID, newQty, now); err != nil {
		return decimal.Zero, err
	}
	return newQty, nil
}

// appendLedger escribe un asiento inmutable con el delta aplicado y el saldo resultante.
func appendLedger(r TxRepos, productID, warehouseID string, change, after decimal.Decimal, ledgerType, reference, userID string, now time.Time) error {
	entry := &entity.LedgerEntry{
		ID:             uuid.New().String(),
		ProductID:      productID,
		WarehouseID:    warehouseID,
		Type:           ledgerType,
		QuantityChange: change,
		QuantityAfter:  after,
		Reference:      reference,
		CreatedAt:      now,
		CreatedBy:      userID,
	}
	if err := r.Ledger.Create(entry); err != nil {
		return err
	}
	metrics.StockMovements.WithLabelValues(ledgerType).Inc()
	return nil
}

// evaluateAlert crea una alerta de stock bajo si el saldo resultante queda en o bajo el
// umbral de reorden del producto. Deduplica: no inserta mientras exista otra sin reconocer
// para el mismo par.
func evaluateAlert(r TxRepos, product *entity.Product, warehouseID string, newQty decimal.Decimal, now time.Time) error {
	if !stockdomain.ShouldAlert(newQty, product.ReorderLevel) {
		return nil
	}
	exists, err := r.Alerts.ExistsUnacknowledged(product.ID, warehouseID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	alert := &entity.LowStockAlert{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		WarehouseID:  warehouseID,
		Quantity:     newQty,
		ReorderLevel: product.ReorderLevel,
		CreatedAt:    now,
	}
	if err := r.Alerts.Create(alert); err != nil {
		return err
	}
	metrics.LowStockAlerts.Inc()
	return nil
}
