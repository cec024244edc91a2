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

// TransferUseCase traslada stock entre bodegas: resta en origen, suma en destino y
// escribe los asientos transfer_out/transfer_in, todo dentro de una sola transacción.
// Si cualquier pierna falla no queda efecto parcial.
type TransferUseCase struct {
	txRunner      TxRunner
	transferRepo  repository.TransferRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		transferRepo:  transferRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create ejecuta el traslado de forma síncrona.
func (uc *TransferUseCase) Create(ctx context.Context, userID string, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if in.ProductID == "" || in.FromWarehouseID == "" || in.ToWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FromWarehouseID == in.ToWarehouseID || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	fromWh, err := uc.warehouseRepo.GetByID(in.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	toWh, err := uc.warehouseRepo.GetByID(in.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	if fromWh == nil || toWh == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	transfer := &entity.Transfer{
		ID:              uuid.New().String(),
		TransferNumber:  stockdomain.NewDocumentNumber(stockdomain.PrefixTransfer),
		ProductID:       in.ProductID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Quantity:        in.Quantity,
		Notes:           in.Notes,
		CreatedAt:       now,
		CreatedBy:       userID,
	}

	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		// Pierna de salida: valida disponibilidad bajo lock y descuenta en origen.
		if _, err := applyDebit(r, product, in.FromWarehouseID, in.Quantity,
			entity.LedgerTypeTransferOut, transfer.TransferNumber, userID, now); err != nil {
			return err
		}
		// Pierna de entrada: acredita en destino. Misma transacción: o ambas o ninguna.
		if _, err := applyCredit(r, product, in.ToWarehouseID, in.Quantity,
			entity.LedgerTypeTransferIn, transfer.TransferNumber, userID, now); err != nil {
			return err
		}
		return r.Transfers.Create(transfer)
	})
	if err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// GetByID obtiene un traslado por ID.
func (uc *TransferUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, nil
	}
	return toTransferResponse(transfer), nil
}

// List lista traslados con paginación.
func (uc *TransferUseCase) List(limit, offset int) (*dto.TransferListResponse, error) {
	list, err := uc.transferRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	return &dto.TransferResponse{
		ID:              t.ID,
		TransferNumber:  t.TransferNumber,
		ProductID:       t.ProductID,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Quantity:        t.Quantity,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}
