package repository

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// DeliveryOrderRepository define el puerto de persistencia para órdenes de entrega.
type DeliveryOrderRepository interface {
	Create(order *entity.DeliveryOrder) error
	GetByID(id string) (*entity.DeliveryOrder, error)
	// TransitionStatus mueve la orden de fromStatus a toStatus de forma atómica
	// (UPDATE condicionado al estado actual) registrando el timestamp de la etapa.
	// Devuelve false si la orden no estaba en fromStatus.
	TransitionStatus(id, fromStatus, toStatus string, at time.Time) (bool, error)
	// DeleteIfNotDelivered elimina la orden solo si aún no fue entregada.
	// Devuelve false si la orden está delivered (o no existe).
	DeleteIfNotDelivered(id string) (bool, error)
	// List filtra por estado; status vacío lista todas.
	List(status string, limit, offset int) ([]*entity.DeliveryOrder, error)
}
