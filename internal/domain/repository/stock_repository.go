package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar saldos por producto+bodega.
// Get y GetForUpdate devuelven un saldo cero implícito si la fila no existe aún.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar solo dentro de una tx.
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Stock, error)
}
