package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// ReorderLevel es el umbral de stock bajo: saldo <= ReorderLevel (y ReorderLevel > 0) dispara alerta.
type Product struct {
	ID           string
	CategoryID   string // vacío si no tiene categoría
	SKU          string // código único
	Name         string
	Description  string
	UnitMeasure  string
	ReorderLevel decimal.Decimal // umbral no negativo; 0 = sin alertas
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
