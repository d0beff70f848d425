package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// VentaResponse una fila del histórico de ventas.
type VentaResponse struct {
	ID       string          `json:"id"`
	Empresa  string          `json:"empresa"`
	Canal    string          `json:"canal"`
	SKU      string          `json:"sku"`
	Fecha    time.Time       `json:"fecha"`
	Unidades decimal.Decimal `json:"unidades"`
	MLC      string          `json:"mlc,omitempty"`
	Precio   decimal.Decimal `json:"precio"`
}

// FromVenta mapea la entidad al DTO de salida.
func FromVenta(v *entity.Venta) VentaResponse {
	return VentaResponse{
		ID: v.ID, Empresa: v.Empresa, Canal: v.Canal, SKU: v.SKU,
		Fecha: v.Fecha, Unidades: v.Unidades, MLC: v.MLC, Precio: v.Precio,
	}
}

// CompraResponse una llegada a bodega.
type CompraResponse struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku"`
	FechaLlegadaReal time.Time       `json:"fechaLlegadaReal"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Origen           string          `json:"origen"`
}

// FromCompra mapea la entidad al DTO de salida.
func FromCompra(c *entity.Compra) CompraResponse {
	return CompraResponse{ID: c.ID, SKU: c.SKU, FechaLlegadaReal: c.FechaLlegadaReal, Cantidad: c.Cantidad, Origen: c.Origen}
}

// TransitoResponse una fila de tránsito cargada por Excel.
type TransitoResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Unidades     decimal.Decimal `json:"unidades"`
	Estado       string          `json:"estado,omitempty"`
	FechaLlegada time.Time       `json:"fechaLlegada"`
}

// FromTransito mapea la entidad al DTO de salida.
func FromTransito(t *entity.Transito) TransitoResponse {
	return TransitoResponse{ID: t.ID, SKU: t.SKU, Unidades: t.Unidades, Estado: t.Estado, FechaLlegada: t.FechaLlegada}
}

// PackResponse un componente de un pack.
type PackResponse struct {
	SKUPack       string          `json:"skuPack"`
	SKUComponente string          `json:"skuComponente"`
	Cantidad      decimal.Decimal `json:"cantidad"`
}

// FromPack mapea la entidad al DTO de salida.
func FromPack(p *entity.Pack) PackResponse {
	return PackResponse{SKUPack: p.SKUPack, SKUComponente: p.SKUComponente, Cantidad: p.Cantidad}
}

// LlegadaManualRequest entrada para registrar una llegada a mano.
type LlegadaManualRequest struct {
	SKU      string          `json:"sku" validate:"required"`
	Fecha    time.Time       `json:"fecha" validate:"required"`
	Cantidad decimal.Decimal `json:"cantidad" validate:"required"`
}
