package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetaTransicion acompaña a cada blob de detalle con el contexto de la
// transición que lo generó.
type MetaTransicion struct {
	Timestamp      time.Time `json:"timestamp"`
	EstadoAnterior string    `json:"previousStatus"`
	EstadoNuevo    string    `json:"nextStatus"`
}

// DetalleSolicitud se registra al pasar de NEEDS_REPLENISHMENT a QUOTE_REQUESTED.
type DetalleSolicitud struct {
	MetaTransicion
	CantidadACotizar decimal.Decimal `json:"quantityToQuote"`
	Comentarios      string          `json:"comments,omitempty"`
}

// DetalleCotizacion se registra cuando el proveedor responde la cotización
// (QUOTE_REQUESTED → QUOTED, o re-cotización tras QUOTE_REJECTED). Incluye
// los valores derivados y un snapshot de los tipos de cambio usados, para que
// el análisis posterior sea auditable aunque la configuración cambie.
type DetalleCotizacion struct {
	MetaTransicion
	PrecioUnitario  decimal.Decimal `json:"unitPrice"`
	Moneda          string          `json:"currency"` // "RMB" | "USD"
	UnidadesPorCaja decimal.Decimal `json:"unitsPerBox"`
	CBMPorCaja      decimal.Decimal `json:"cbmPerBox"`
	DiasProduccion  int             `json:"productionDays"`
	Comentarios     string          `json:"comments,omitempty"`

	PrecioUnitarioUSD decimal.Decimal `json:"unitPriceUSD"`
	CBMPorUnidad      decimal.Decimal `json:"cbmPerUnit"`
	SnapshotCambio    *SnapshotCambio `json:"configSnapshot,omitempty"`
}

// SnapshotCambio congela los tipos de cambio vigentes al cotizar.
type SnapshotCambio struct {
	RmbToUsd decimal.Decimal `json:"rmbToUsd"`
	UsdToClp decimal.Decimal `json:"usdToClp"`
}

// DetalleAnalisis se registra al pasar de QUOTED a ANALYZING; el precio de
// venta elegido alimenta el cálculo de margen del análisis por catálogo.
type DetalleAnalisis struct {
	MetaTransicion
	PrecioVenta      decimal.Decimal `json:"sellingPrice"`
	StockAlAnalizar  decimal.Decimal `json:"currentStock"`
	CBMAlAnalizar    decimal.Decimal `json:"currentCbm"`
	FobRMBAlAnalizar decimal.Decimal `json:"currentFobRmb"`
	Comentarios      string          `json:"comments,omitempty"`
}

// DetalleAprobacion se registra al aprobar la compra (ANALYZING → PURCHASE_APPROVED).
type DetalleAprobacion struct {
	MetaTransicion
	CantidadAprobada decimal.Decimal `json:"approvedQuantity"`
	Comentarios      string          `json:"comments,omitempty"`
	CambioSKU        *CambioSKU      `json:"skuChanged,omitempty"`
}

// CambioSKU documenta el renombre de un SKU auto-generado al aprobarlo.
type CambioSKU struct {
	Desde     string    `json:"from"`
	Hacia     string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
}

// DetalleCompra se registra al confirmar la compra con el proveedor.
type DetalleCompra struct {
	MetaTransicion
	CantidadConfirmada   decimal.Decimal `json:"confirmedQuantity"`
	FechaEntregaEstimada *time.Time      `json:"estimatedDeliveryDate,omitempty"`
	Comentarios          string          `json:"comments,omitempty"`
}

// DetalleFabricacion se registra cuando el proveedor termina la producción.
type DetalleFabricacion struct {
	MetaTransicion
	CantidadFabricada decimal.Decimal `json:"manufacturedQuantity"`
	Comentarios       string          `json:"comments,omitempty"`
}

// DetalleEnvio se registra al embarcar y se completa al llegar el contenedor.
type DetalleEnvio struct {
	MetaTransicion
	CantidadEmbarcada decimal.Decimal `json:"shippedQuantity"`
	ETA               *time.Time      `json:"eta,omitempty"`
	NumeroContenedor  string          `json:"containerNumber,omitempty"`
	Comentarios       string          `json:"comments,omitempty"`

	Llegado      bool       `json:"arrived,omitempty"`
	FechaLlegada *time.Time `json:"arrival_date,omitempty"`
}
