package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// CrearCotizacionRequest entrada para registrar una oferta de proveedor.
type CrearCotizacionRequest struct {
	SKU             string          `json:"sku" validate:"required"`
	Proveedor       string          `json:"proveedor" validate:"required"`
	PrecioUnitario  decimal.Decimal `json:"unitPrice" validate:"required"`
	Moneda          string          `json:"currency" validate:"required,oneof=RMB USD"`
	UnidadesPorCaja decimal.Decimal `json:"unitsPerBox"`
	CBMPorCaja      decimal.Decimal `json:"cbmPerBox"`
	DiasProduccion  int             `json:"productionDays"`
	Notas           string          `json:"notas"`
}

// CotizacionResponse salida de una oferta de proveedor.
type CotizacionResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Proveedor       string          `json:"proveedor"`
	PrecioUnitario  decimal.Decimal `json:"unitPrice"`
	Moneda          string          `json:"currency"`
	UnidadesPorCaja decimal.Decimal `json:"unitsPerBox"`
	CBMPorCaja      decimal.Decimal `json:"cbmPerBox"`
	DiasProduccion  int             `json:"productionDays"`
	Notas           string          `json:"notas,omitempty"`
	Seleccionada    bool            `json:"seleccionada"`
	CreatedAt       time.Time       `json:"created_at"`
}

// FromCotizacion mapea la entidad al DTO de salida.
func FromCotizacion(c *entity.Cotizacion) CotizacionResponse {
	return CotizacionResponse{
		ID:              c.ID,
		SKU:             c.SKU,
		Proveedor:       c.Proveedor,
		PrecioUnitario:  c.PrecioUnitario,
		Moneda:          c.Moneda,
		UnidadesPorCaja: c.UnidadesPorCaja,
		CBMPorCaja:      c.CBMPorCaja,
		DiasProduccion:  c.DiasProduccion,
		Notas:           c.Notas,
		Seleccionada:    c.Seleccionada,
		CreatedAt:       c.CreatedAt,
	}
}
