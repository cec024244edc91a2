package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una recepción.
const (
	ReceiptStatusPending   = "pending"
	ReceiptStatusCompleted = "completed"
)

// Receipt representa una recepción de mercancía en dos fases: se crea como pending y
// una completación posterior aplica el efecto sobre el saldo y el libro exactamente una vez.
type Receipt struct {
	ID            string
	ReceiptNumber string // único, legible (RC-...)
	ProductID     string
	WarehouseID   string
	Quantity      decimal.Decimal
	Status        string
	Reference     string // documento externo (orden de compra, remisión)
	Notes         string
	CreatedAt     time.Time
	CompletedAt   *time.Time
	CreatedBy     string
}
