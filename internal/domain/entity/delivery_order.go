package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del flujo de entrega. El stock solo se descuenta en la transición final.
const (
	DeliveryStatusPicked    = "picked"
	DeliveryStatusPacked    = "packed"
	DeliveryStatusDelivered = "delivered"
)

// DeliveryOrder representa una orden de entrega con flujo picked → packed → delivered.
// La creación valida saldo disponible pero no lo reserva; el descuento ocurre al entregar.
type DeliveryOrder struct {
	ID             string
	DeliveryNumber string // único, legible (DL-...)
	ProductID      string
	WarehouseID    string
	Quantity       decimal.Decimal
	Status         string
	Notes          string
	PickedAt       time.Time
	PackedAt       *time.Time
	DeliveredAt    *time.Time
	CreatedBy      string
}
