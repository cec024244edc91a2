package stock

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// AlertUseCase listado y reconocimiento de alertas de stock bajo. El reconocimiento
// no toca saldo ni libro; solo marca la alerta y registra quién y cuándo.
type AlertUseCase struct {
	alertRepo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(alertRepo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{alertRepo: alertRepo}
}

// List lista alertas; con onlyOpen solo las no reconocidas.
func (uc *AlertUseCase) List(onlyOpen bool, limit, offset int) (*dto.AlertListResponse, error) {
	list, err := uc.alertRepo.List(onlyOpen, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAlertResponse(a))
	}
	return &dto.AlertListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Acknowledge marca la alerta como reconocida. Devuelve ErrNotFound si no existe y
// ErrInvalidState si ya estaba reconocida.
func (uc *AlertUseCase) Acknowledge(id, acknowledgedBy string) (*dto.AlertResponse, error) {
	if acknowledgedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ok, err := uc.alertRepo.Acknowledge(id, acknowledgedBy, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		alert, err := uc.alertRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if alert == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInvalidState
	}
	alert, err := uc.alertRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

func toAlertResponse(a *entity.LowStockAlert) *dto.AlertResponse {
	if a == nil {
		return nil
	}
	return &dto.AlertResponse{
		ID:             a.ID,
		ProductID:      a.ProductID,
		WarehouseID:    a.WarehouseID,
		Quantity:       a.Quantity,
		ReorderLevel:   a.ReorderLevel,
		Acknowledged:   a.Acknowledged,
		AcknowledgedBy: a.AcknowledgedBy,
		AcknowledgedAt: a.AcknowledgedAt,
		CreatedAt:      a.CreatedAt,
	}
}
