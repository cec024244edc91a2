package repository

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ReceiptRepository define el puerto de persistencia para recepciones.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	// CompleteIfPending pasa la recepción de pending a completed de forma atómica
	// (UPDATE condicionado al estado). Devuelve false si no estaba pending: ese es el
	// guard contra la doble completación.
	CompleteIfPending(id string, at time.Time) (bool, error)
	// List filtra por estado; status vacío lista todas.
	List(status string, limit, offset int) ([]*entity.Receipt, error)
}
