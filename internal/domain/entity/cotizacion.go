package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cotizacion es una oferta de proveedor para un SKU, registrada fuera del
// detalle embebido del workflow para poder comparar varias ofertas antes de
// responder la cotización del producto.
type Cotizacion struct {
	ID              string
	SKU             string
	Proveedor       string
	PrecioUnitario  decimal.Decimal
	Moneda          string // "RMB" | "USD"
	UnidadesPorCaja decimal.Decimal
	CBMPorCaja      decimal.Decimal
	DiasProduccion  int
	Notas           string
	Seleccionada    bool
	CreatedAt       time.Time
}
