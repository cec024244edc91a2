package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	stockdomain "github.com/jhoicas/bodega-api/internal/domain/stock"
)

// AdjustmentUseCase aplica ajustes manuales con delta firmado y razón obligatoria.
// La política de piso es configurable: por defecto el saldo se recorta en cero como en
// las entregas; con allowNegative el delta se aplica tal cual y el saldo puede quedar
// bajo cero.
type AdjustmentUseCase struct {
	txRunner       TxRunner
	adjustmentRepo repository.AdjustmentRepository
	productRepo    repository.ProductRepository
	warehouseRepo  repository.WarehouseRepository
	allowNegative  bool
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(
	txRunner TxRunner,
	adjustmentRepo repository.AdjustmentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	allowNegative bool,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{
		txRunner:       txRunner,
		adjustmentRepo: adjustmentRepo,
		productRepo:    productRepo,
		warehouseRepo:  warehouseRepo,
		allowNegative:  allowNegative,
	}
}

// Create aplica el ajuste: muta el saldo, asienta `adjustment` con el delta efectivamente
// aplicado y guarda el documento con su razón, todo en una transacción.
func (uc *AdjustmentUseCase) Create(ctx context.Context, userID string, in dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.Quantity.IsZero() || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	adjustment := &entity.Adjustment{
		ID:               uuid.New().String(),
		AdjustmentNumber: stockdomain.NewDocumentNumber(stockdomain.PrefixAdjustment),
		ProductID:        in.ProductID,
		WarehouseID:      in.WarehouseID,
		Quantity:         in.Quantity,
		Reason:           in.Reason,
		CreatedAt:        now,
		CreatedBy:        userID,
	}

	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		st, err := r.Stock.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		newQty, applied := stockdomain.AddDelta(st.Quantity, in.Quantity, !uc.allowNegative)
		st.Quantity = newQty
		st.UpdatedAt = now
		if err := r.Stock.Upsert(st); err != nil {
			return err
		}
		if err := appendLedger(r, in.ProductID, in.WarehouseID, applied, newQty,
			entity.LedgerTypeAdjustment, adjustment.AdjustmentNumber, userID, now); err != nil {
			return err
		}
		if err := evaluateAlert(r, product, in.WarehouseID, newQty, now); err != nil {
			return err
		}
		adjustment.AppliedChange = applied
		return r.Adjustments.Create(adjustment)
	})
	if err != nil {
		return nil, err
	}
	return toAdjustmentResponse(adjustment), nil
}

// GetByID obtiene un ajuste por ID.
func (uc *AdjustmentUseCase) GetByID(id string) (*dto.AdjustmentResponse, error) {
	adjustment, err := uc.adjustmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, nil
	}
	return toAdjustmentResponse(adjustment), nil
}

// List lista ajustes con paginación.
func (uc *AdjustmentUseCase) List(limit, offset int) (*dto.AdjustmentListResponse, error) {
	list, err := uc.adjustmentRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAdjustmentResponse(a))
	}
	return &dto.AdjustmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toAdjustmentResponse(a *entity.Adjustment) *dto.AdjustmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AdjustmentResponse{
		ID:               a.ID,
		AdjustmentNumber: a.AdjustmentNumber,
		ProductID:        a.ProductID,
		WarehouseID:      a.WarehouseID,
		Quantity:         a.Quantity,
		AppliedChange:    a.AppliedChange,
		Reason:           a.Reason,
		CreatedAt:        a.CreatedAt,
	}
}
