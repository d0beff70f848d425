package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transito es una unidad en camino desde China que todavía no ingresa a
// bodega. Las filas de la hoja de tránsito no traen fecha, así que la carga
// les asigna la fecha de proceso; el análisis agrega además los tránsitos
// derivados del workflow (confirmados, fabricados y embarcados).
type Transito struct {
	ID           string
	SKU          string
	Unidades     decimal.Decimal
	Estado       string
	FechaLlegada time.Time
	CreatedAt    time.Time
}
