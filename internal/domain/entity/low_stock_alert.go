package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockAlert registra que una mutación dejó el saldo en o bajo el umbral de reorden.
// No se inserta una nueva mientras exista otra sin reconocer para el mismo (producto, bodega).
type LowStockAlert struct {
	ID             string
	ProductID      string
	WarehouseID    string
	Quantity       decimal.Decimal // saldo al momento de disparar
	ReorderLevel   decimal.Decimal // umbral configurado del producto
	Acknowledged   bool
	AcknowledgedBy string
	AcknowledgedAt *time.Time
	CreatedAt      time.Time
}
