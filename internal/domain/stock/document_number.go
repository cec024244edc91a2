package stock

import (
	"strings"

	"github.com/google/uuid"
)

// Prefijos de números de documento por tipo de operación.
const (
	PrefixReceipt    = "RC"
	PrefixDelivery   = "DL"
	PrefixTransfer   = "TR"
	PrefixAdjustment = "AJ"
)

// NewDocumentNumber genera un número de documento legible y único: PREFIJO-XXXXXXXX,
// donde el sufijo son los primeros 8 caracteres de un UUID en mayúsculas. La unicidad
// real la garantiza el constraint único en la tabla correspondiente.
func NewDocumentNumber(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return prefix + "-" + id[:8]
}
