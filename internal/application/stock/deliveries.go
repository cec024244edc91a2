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

// DeliveryUseCase maneja el flujo de entrega picked → packed → delivered.
// La creación valida saldo disponible sin reservarlo; el descuento de stock y el asiento
// `delivery` ocurren solo en la transición final, dentro de una transacción.
type DeliveryUseCase struct {
	txRunner      TxRunner
	deliveryRepo  repository.DeliveryOrderRepository
	stockRepo     repository.StockRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	txRunner TxRunner,
	deliveryRepo repository.DeliveryOrderRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		txRunner:      txRunner,
		deliveryRepo:  deliveryRepo,
		stockRepo:     stockRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create crea la orden en estado picked. Verifica que haya saldo suficiente al momento
// de crear (chequeo no vinculante: el saldo no queda reservado).
func (uc *DeliveryUseCase) Create(userID string, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := checkCatalog(uc.productRepo, uc.warehouseRepo, in.ProductID, in.WarehouseID); err != nil {
		return nil, err
	}
	st, err := uc.stockRepo.Get(in.ProductID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if st.Quantity.LessThan(in.Quantity) {
		return nil, &InsufficientStockError{Available: st.Quantity}
	}
	now := time.Now()
	order := &entity.DeliveryOrder{
		ID:             uuid.New().String(),
		DeliveryNumber: stockdomain.NewDocumentNumber(stockdomain.PrefixDelivery),
		ProductID:      in.ProductID,
		WarehouseID:    in.WarehouseID,
		Quantity:       in.Quantity,
		Status:         entity.DeliveryStatusPicked,
		Notes:          in.Notes,
		PickedAt:       now,
		CreatedBy:      userID,
	}
	if err := uc.deliveryRepo.Create(order); err != nil {
		return nil, err
	}
	return toDeliveryResponse(order), nil
}

// Pack mueve la orden de picked a packed. Sin efecto sobre el saldo.
func (uc *DeliveryUseCase) Pack(id string) (*dto.DeliveryResponse, error) {
	now := time.Now()
	ok, err := uc.deliveryRepo.TransitionStatus(id, entity.DeliveryStatusPicked, entity.DeliveryStatusPacked, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, uc.transitionFailure(id)
	}
	return uc.GetByID(id)
}

// Deliver ejecuta la transición final packed → delivered: revalida el saldo bajo lock,
// descuenta (recorte en cero) y asienta `delivery` en el libro, todo en una transacción.
// Si cualquier paso falla la transición de estado también se revierte.
func (uc *DeliveryUseCase) Deliver(ctx context.Context, id, userID string) (*dto.DeliveryResponse, error) {
	order, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(order.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		ok, err := r.Deliveries.TransitionStatus(id, entity.DeliveryStatusPacked, entity.DeliveryStatusDelivered, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidState
		}
		_, err = applyDebit(r, product, order.WarehouseID, order.Quantity,
			entity.LedgerTypeDelivery, order.DeliveryNumber, userID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	order.Status = entity.DeliveryStatusDelivered
	order.DeliveredAt = &now
	return toDeliveryResponse(order), nil
}

// Delete elimina la orden solo si aún no fue entregada (ninguna orden entregada se borra:
// su efecto sobre el saldo y el libro ya existe).
func (uc *DeliveryUseCase) Delete(id string) error {
	ok, err := uc.deliveryRepo.DeleteIfNotDelivered(id)
	if err != nil {
		return err
	}
	if !ok {
		return uc.transitionFailure(id)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (uc *DeliveryUseCase) GetByID(id string) (*dto.DeliveryResponse, error) {
	order, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toDeliveryResponse(order), nil
}

// List lista órdenes, opcionalmente filtradas por estado.
func (uc *DeliveryUseCase) List(status string, limit, offset int) (*dto.DeliveryListResponse, error) {
	list, err := uc.deliveryRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toDeliveryResponse(o))
	}
	return &dto.DeliveryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// transitionFailure distingue orden inexistente (404) de estado incorrecto (409).
func (uc *DeliveryUseCase) transitionFailure(id string) error {
	order, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return domain.ErrInvalidState
}

func toDeliveryResponse(o *entity.DeliveryOrder) *dto.DeliveryResponse {
	if o == nil {
		return nil
	}
	return &dto.DeliveryResponse{
		ID:             o.ID,
		DeliveryNumber: o.DeliveryNumber,
		ProductID:      o.ProductID,
		WarehouseID:    o.WarehouseID,
		Quantity:       o.Quantity,
		Status:         o.Status,
		Notes:          o.Notes,
		PickedAt:       o.PickedAt,
		PackedAt:       o.PackedAt,
		DeliveredAt:    o.DeliveredAt,
	}
}
