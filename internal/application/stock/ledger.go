package stock

import (
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// LedgerUseCase consultas de solo lectura sobre el libro de inventario.
type LedgerUseCase struct {
	ledgerRepo repository.LedgerRepository
	exporter   LedgerExporter
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(ledgerRepo repository.LedgerRepository, exporter LedgerExporter) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo, exporter: exporter}
}

// List lista asientos del más reciente al más antiguo, con filtros opcionales.
func (uc *LedgerUseCase) List(productID, warehouseID string, limit, offset int) (*dto.LedgerListResponse, error) {
	list, err := uc.ledgerRepo.ListRecent(productID, warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toLedgerEntryResponse(e))
	}
	return &dto.LedgerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Export genera el libro filtrado como archivo xlsx.
func (uc *LedgerUseCase) Export(productID, warehouseID string, limit int) ([]byte, error) {
	list, err := uc.ledgerRepo.ListRecent(productID, warehouseID, limit, 0)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(list)
}

func toLedgerEntryResponse(e *entity.LedgerEntry) *dto.LedgerEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.LedgerEntryResponse{
		ID:             e.ID,
		ProductID:      e.ProductID,
		WarehouseID:    e.WarehouseID,
		Type:           e.Type,
		QuantityChange: e.QuantityChange,
		QuantityAfter:  e.QuantityAfter,
		Reference:      e.Reference,
		CreatedAt:      e.CreatedAt,
	}
}
