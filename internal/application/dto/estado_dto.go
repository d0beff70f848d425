package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransicionRequest entrada para avanzar el workflow de un producto. Cada
// etapa usa su subconjunto de campos; los demás se ignoran.
type TransicionRequest struct {
	SKU             string `json:"sku" validate:"required"`
	SiguienteEstado string `json:"nextStatus" validate:"required"`

	// Solicitud de cotización.
	CantidadACotizar decimal.Decimal `json:"quantityToQuote"`

	// Respuesta de cotización.
	PrecioUnitario  decimal.Decimal `json:"unitPrice"`
	Moneda          string          `json:"currency" validate:"omitempty,oneof=RMB USD"`
	UnidadesPorCaja decimal.Decimal `json:"unitsPerBox"`
	CBMPorCaja      decimal.Decimal `json:"cbmPerBox"`
	DiasProduccion  int             `json:"productionDays"`

	// Paso a análisis.
	PrecioVenta decimal.Decimal `json:"sellingPrice"`

	// Aprobación de compra.
	CantidadAprobada decimal.Decimal `json:"approvedQuantity"`
	NuevoSKU         string          `json:"newSku"`

	// Confirmación de compra.
	CantidadConfirmada   decimal.Decimal `json:"confirmedQuantity"`
	FechaEntregaEstimada *time.Time      `json:"estimatedDeliveryDate"`

	// Fabricación.
	CantidadFabricada decimal.Decimal `json:"manufacturedQuantity"`

	// Embarque.
	CantidadEmbarcada decimal.Decimal `json:"shippedQuantity"`
	ETA               *time.Time      `json:"eta"`
	NumeroContenedor  string          `json:"containerNumber"`

	Comentarios string `json:"comments"`
}

// TransicionResponse salida de una transición aplicada.
type TransicionResponse struct {
	Mensaje  string `json:"message"`
	SKU      string `json:"sku"`
	Estado   string `json:"status"`
	NuevoSKU string `json:"newSku,omitempty"`
}
