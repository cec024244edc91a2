package stock

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD. El motor de
// inventario ejecuta el efecto completo de cada operación (mutación de saldo, asiento
// en el libro, evaluación de alerta y documento) contra este conjunto.
type TxRepos struct {
	Stock       repository.StockRepository
	Ledger      repository.LedgerRepository
	Alerts      repository.AlertRepository
	Receipts    repository.ReceiptRepository
	Deliveries  repository.DeliveryOrderRepository
	Transfers   repository.TransferRepository
	Adjustments repository.AdjustmentRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// LedgerExporter genera un archivo exportable (xlsx) a partir de asientos del libro.
type LedgerExporter interface {
	Export(entries []*entity.LedgerEntry) ([]byte, error)
}
