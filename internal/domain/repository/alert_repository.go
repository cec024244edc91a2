package repository

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// AlertRepository define el puerto de persistencia para alertas de stock bajo.
type AlertRepository interface {
	Create(alert *entity.LowStockAlert) error
	GetByID(id string) (*entity.LowStockAlert, error)
	// ExistsUnacknowledged indica si ya hay una alerta sin reconocer para el par; la
	// evaluación de alertas la usa para deduplicar antes de insertar.
	ExistsUnacknowledged(productID, warehouseID string) (bool, error)
	// Acknowledge marca la alerta como reconocida. Devuelve false si no existe o ya estaba reconocida.
	Acknowledge(id, acknowledgedBy string, at time.Time) (bool, error)
	// List lista alertas; con onlyOpen solo las no reconocidas.
	List(onlyOpen bool, limit, offset int) ([]*entity.LowStockAlert, error)
}
