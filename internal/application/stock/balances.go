package stock

import (
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// BalanceUseCase consultas de solo lectura sobre saldos.
type BalanceUseCase struct {
	stockRepo repository.StockRepository
}

// NewBalanceUseCase construye el caso de uso.
func NewBalanceUseCase(stockRepo repository.StockRepository) *BalanceUseCase {
	return &BalanceUseCase{stockRepo: stockRepo}
}

// Get devuelve el saldo de un par (producto, bodega); cero implícito si no hay fila.
func (uc *BalanceUseCase) Get(productID, warehouseID string) (*dto.StockResponse, error) {
	st, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return toStockResponse(st), nil
}

// ListByWarehouse lista saldos de una bodega.
func (uc *BalanceUseCase) ListByWarehouse(warehouseID string, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.stockRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockListResponse(list, limit, offset), nil
}

// ListByProduct lista saldos de un producto en todas las bodegas.
func (uc *BalanceUseCase) ListByProduct(productID string, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.stockRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockListResponse(list, limit, offset), nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ProductID:   s.ProductID,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toStockListResponse(list []*entity.Stock, limit, offset int) *dto.StockListResponse {
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
