package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// LedgerRepository define el puerto del libro de inventario. Solo inserta y consulta:
// los asientos nunca se modifican ni se borran.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	// ListRecent lista asientos del más reciente al más antiguo. productID y warehouseID
	// vacíos significan sin filtro.
	ListRecent(productID, warehouseID string, limit, offset int) ([]*entity.LedgerEntry, error)
	// SumChanges suma quantity_change para un par (producto, bodega); debe coincidir con
	// el saldo actual en stock (ley de conciliación).
	SumChanges(productID, warehouseID string) (decimal.Decimal, error)
}
