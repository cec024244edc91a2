package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	stockdomain "github.com/jhoicas/bodega-api/internal/domain/stock"
)

// ReceiptUseCase maneja recepciones en dos fases: crear (pending) y completar.
// Solo la completación toca el saldo y el libro, y lo hace exactamente una vez.
type ReceiptUseCase struct {
	txRunner      TxRunner
	receiptRepo   repository.ReceiptRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	txRunner TxRunner,
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRunner:      txRunner,
		receiptRepo:   receiptRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create registra la recepción en estado pending, sin efecto sobre el saldo.
func (uc *ReceiptUseCase) Create(userID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := checkCatalog(uc.productRepo, uc.warehouseRepo, in.ProductID, in.WarehouseID); err != nil {
		return nil, err
	}
	now := time.Now()
	receipt := &entity.Receipt{
		ID:            uuid.New().String(),
		ReceiptNumber: stockdomain.NewDocumentNumber(stockdomain.PrefixReceipt),
		ProductID:     in.ProductID,
		WarehouseID:   in.WarehouseID,
		Quantity:      in.Quantity,
		Status:        entity.ReceiptStatusPending,
		Reference:     in.Reference,
		Notes:         in.Notes,
		CreatedAt:     now,
		CreatedBy:     userID,
	}
	if err := uc.receiptRepo.Create(receipt); err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

// Complete aplica el efecto de la recepción: suma al saldo y asienta `receipt` en el
// libro, dentro de una transacción. El guard CompleteIfPending hace que una segunda
// completación falle con ErrInvalidState sin acreditar dos veces.
func (uc *ReceiptUseCase) Complete(ctx context.Context, id, userID string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(receipt.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		ok, err := r.Receipts.CompleteIfPending(id, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidState
		}
		_, err = applyCredit(r, product, receipt.WarehouseID, receipt.Quantity,
			entity.LedgerTypeReceipt, receipt.ReceiptNumber, userID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	receipt.Status = entity.ReceiptStatusCompleted
	receipt.CompletedAt = &now
	return toReceiptResponse(receipt), nil
}

// GetByID obtiene una recepción por ID.
func (uc *ReceiptUseCase) GetByID(id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}
	return toReceiptResponse(receipt), nil
}

// List lista recepciones, opcionalmente filtradas por estado.
func (uc *ReceiptUseCase) List(status string, limit, offset int) (*dto.ReceiptListResponse, error) {
	list, err := uc.receiptRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiptResponse, 0, len(list))
	for _, rc := range list {
		items = append(items, *toReceiptResponse(rc))
	}
	return &dto.ReceiptListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// checkCatalog valida que el producto y la bodega existan.
func checkCatalog(productRepo repository.ProductRepository, warehouseRepo repository.WarehouseRepository, productID, warehouseID string) error {
	product, err := productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	warehouse, err := warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	if r == nil {
		return nil
	}
	return &dto.ReceiptResponse{
		ID:            r.ID,
		ReceiptNumber: r.ReceiptNumber,
		ProductID:     r.ProductID,
		WarehouseID:   r.WarehouseID,
		Quantity:      r.Quantity,
		Status:        r.Status,
		Reference:     r.Reference,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		CompletedAt:   r.CompletedAt,
	}
}
