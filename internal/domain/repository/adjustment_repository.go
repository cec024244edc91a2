package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// AdjustmentRepository define el puerto de persistencia para ajustes de inventario.
type AdjustmentRepository interface {
	Create(adjustment *entity.Adjustment) error
	GetByID(id string) (*entity.Adjustment, error)
	List(limit, offset int) ([]*entity.Adjustment, error)
}
