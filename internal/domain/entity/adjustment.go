package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment representa un ajuste manual de inventario con razón obligatoria para auditoría.
// Quantity es el delta firmado solicitado; AppliedChange es el delta efectivamente aplicado
// (puede diferir cuando la política de piso recorta el saldo en cero).
type Adjustment struct {
	ID               string
	AdjustmentNumber string // único, legible (AJ-...)
	ProductID        string
	WarehouseID      string
	Quantity         decimal.Decimal
	AppliedChange    decimal.Decimal
	Reason           string
	CreatedAt        time.Time
	CreatedBy        string
}
