package stock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain"
)

// InsufficientStockError envuelve domain.ErrInsufficientStock exponiendo el saldo
// disponible al momento de la validación, para que el handler lo devuelva al caller.
type InsufficientStockError struct {
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %s", e.Available.String())
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error {
	return domain.ErrInsufficientStock
}
