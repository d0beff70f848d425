package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock es la foto de inventario por SKU distribuida en bodegas físicas.
// La carga masiva la reemplaza completa en cada proceso; StockActual del
// producto se sincroniza con Total().
type Stock struct {
	ID          string
	SKU         string
	Descripcion string
	Bodega1     decimal.Decimal
	Bodega2     decimal.Decimal
	Bodega3     decimal.Decimal
	Bodega4     decimal.Decimal
	Bodega5     decimal.Decimal
	Bodega6     decimal.Decimal
	CreatedAt   time.Time
}

// Total suma las existencias de todas las bodegas.
func (s Stock) Total() decimal.Decimal {
	return s.Bodega1.Add(s.Bodega2).Add(s.Bodega3).
		Add(s.Bodega4).Add(s.Bodega5).Add(s.Bodega6)
}
