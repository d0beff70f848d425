package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

// Producto representa un SKU del catálogo de importación.
// SKU es la única clave de cruce entre entidades: se almacena recortado de
// espacios y se compara sensible a mayúsculas.
type Producto struct {
	ID                   string
	SKU                  string
	Descripcion          string
	Link                 string
	CostoFobRMB          decimal.Decimal // costo FOB unitario en RMB
	CBM                  decimal.Decimal // volumen unitario en metros cúbicos
	StockActual          decimal.Decimal
	Status               workflow.Estado
	FechaLlegadaEstimada *time.Time

	// Desconsiderado excluye el SKU del análisis de reposición.
	// WorkflowCompleted marca productos cuyo ciclo terminó (llegó el contenedor).
	Desconsiderado    bool
	WorkflowCompleted bool
	CompletedAt       *time.Time

	// Líneas de reposición adicional creadas por el análisis cuando la
	// cobertura proyectada cae bajo el umbral configurado.
	SKUOriginal         string
	ReposicionAdicional bool

	// Detalle registrado en cada transición del workflow.
	RequestDetails       *DetalleSolicitud
	QuoteDetails         *DetalleCotizacion
	AnalysisDetails      *DetalleAnalisis
	ApprovalDetails      *DetalleAprobacion
	PurchaseDetails      *DetalleCompra
	ManufacturingDetails *DetalleFabricacion
	ShippingDetails      *DetalleEnvio

	CreatedAt time.Time
	UpdatedAt time.Time
}
