package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra es una llegada de mercadería a bodega. FechaLlegadaReal ancla la
// ventana del estimador de venta diaria y también se usa para descartar
// tránsitos que llegarían después del plazo de entrega.
type Compra struct {
	ID               string
	SKU              string
	FechaLlegadaReal time.Time
	Cantidad         decimal.Decimal
	Origen           string // "excel" o "contenedor"
	CreatedAt        time.Time
}
