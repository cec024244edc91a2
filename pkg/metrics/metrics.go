package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del motor de inventario. Se registran en el registry global de Prometheus;
// el endpoint /metrics se monta en cmd/api según METRICS_ENABLED.
var (
	// StockMovements cuenta movimientos de stock aplicados, por tipo de asiento
	// (receipt, delivery, transfer_in, transfer_out, adjustment).
	StockMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_movements_total",
		Help: "Movimientos de inventario aplicados, por tipo de asiento en el libro.",
	}, []string{"type"})

	// LowStockAlerts cuenta alertas de stock bajo generadas (no incluye las deduplicadas).
	LowStockAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "low_stock_alerts_total",
		Help: "Alertas de stock bajo creadas.",
	})
)
