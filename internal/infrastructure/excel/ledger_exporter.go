package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/bodega-api/internal/application/stock"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

var _ stock.LedgerExporter = (*LedgerExporter)(nil)

// LedgerExporter genera un archivo xlsx con asientos del libro de inventario.
type LedgerExporter struct{}

// NewLedgerExporter construye el exportador.
func NewLedgerExporter() *LedgerExporter {
	return &LedgerExporter{}
}

// Export escribe los asientos en una hoja xlsx, un asiento por fila.
func (e *LedgerExporter) Export(entries []*entity.LedgerEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id",
		"product_id",
		"warehouse_id",
		"type",
		"quantity_change",
		"quantity_after",
		"reference",
		"created_at",
		"created_by",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	row := 2
	for _, entry := range entries {
		excelRow := []interface{}{
			entry.ID,
			entry.ProductID,
			entry.WarehouseID,
			entry.Type,
			entry.QuantityChange.String(),
			entry.QuantityAfter.String(),
			entry.Reference,
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.CreatedBy,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("calcular celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("escribir fila: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
