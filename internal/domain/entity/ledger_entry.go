package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento en el libro de inventario.
const (
	LedgerTypeReceipt     = "receipt"      // entrada por recepción
	LedgerTypeDelivery    = "delivery"     // salida por entrega
	LedgerTypeTransferIn  = "transfer_in"  // entrada por traslado
	LedgerTypeTransferOut = "transfer_out" // salida por traslado
	LedgerTypeAdjustment  = "adjustment"   // ajuste manual
)

// LedgerEntry es un asiento inmutable del libro de inventario: un registro por cada
// mutación de saldo, con el delta firmado y el saldo resultante en ese instante.
// QuantityAfter debe coincidir con Stock.Quantity al momento de crearse; por eso el
// asiento siempre se escribe en la misma transacción que la mutación, con el valor
// devuelto por ella y nunca con una relectura.
type LedgerEntry struct {
	ID             string
	ProductID      string
	WarehouseID    string
	Type           string
	QuantityChange decimal.Decimal // firmado: positivo entrada, negativo salida
	QuantityAfter  decimal.Decimal // saldo resultante tras aplicar el delta
	Reference      string          // número de documento que originó el asiento
	CreatedAt      time.Time
	CreatedBy      string
}
