package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer representa un traslado de stock entre bodegas. Ambas piernas (salida en
// origen, entrada en destino) y sus dos asientos se aplican en una sola transacción.
type Transfer struct {
	ID              string
	TransferNumber  string // único, legible (TR-...)
	ProductID       string
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        decimal.Decimal
	Notes           string
	CreatedAt       time.Time
	CreatedBy       string
}
