// Package stock contiene las reglas puras del motor de inventario: política de piso
// para decrementos y predicado de stock bajo. Sin dependencias de persistencia.
package stock

import "github.com/shopspring/decimal"

// SubtractClamped resta qty del saldo actual recortando en cero: nunca produce saldo
// negativo. Devuelve el saldo resultante y el delta efectivamente aplicado (firmado).
// Con bloqueo de fila la validación previa hace que el recorte no llegue a actuar,
// pero la política se mantiene como última línea frente a una carrera.
func SubtractClamped(current, qty decimal.Decimal) (newQty, applied decimal.Decimal) {
	newQty = current.Sub(qty)
	if newQty.IsNegative() {
		newQty = decimal.Zero
	}
	return newQty, newQty.Sub(current)
}

// AddDelta aplica un delta firmado. Si floor es true el resultado se recorta en cero
// (política de ajustes conservadora); si es false el delta se aplica tal cual.
func AddDelta(current, delta decimal.Decimal, floor bool) (newQty, applied decimal.Decimal) {
	newQty = current.Add(delta)
	if floor && newQty.IsNegative() {
		newQty = decimal.Zero
	}
	return newQty, newQty.Sub(current)
}

// ShouldAlert indica si un saldo resultante dispara alerta de stock bajo:
// saldo <= umbral de reorden y umbral > 0 (umbral cero desactiva las alertas).
func ShouldAlert(newQuantity, reorderLevel decimal.Decimal) bool {
	return reorderLevel.GreaterThan(decimal.Zero) && newQuantity.LessThanOrEqual(reorderLevel)
}
