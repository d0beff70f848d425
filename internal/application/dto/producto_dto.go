package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// CrearProductoRequest entrada para alta manual de un producto del catálogo.
type CrearProductoRequest struct {
	SKU         string          `json:"sku" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Link        string          `json:"link"`
	CostoFobRMB decimal.Decimal `json:"costoFobRmb"`
	CBM         decimal.Decimal `json:"cbm"`
}

// EditarProductoRequest entrada para editar datos comerciales. Punteros en nil
// no tocan el campo.
type EditarProductoRequest struct {
	Descripcion *string          `json:"descripcion"`
	Link        *string          `json:"link"`
	CostoFobRMB *decimal.Decimal `json:"costoFobRmb"`
	CBM         *decimal.Decimal `json:"cbm"`
}

// ProductoResponse salida de un producto con sus detalles de workflow.
type ProductoResponse struct {
	ID                   string          `json:"id"`
	SKU                  string          `json:"sku"`
	Descripcion          string          `json:"descripcion"`
	Link                 string          `json:"link,omitempty"`
	CostoFobRMB          decimal.Decimal `json:"costoFobRmb"`
	CBM                  decimal.Decimal `json:"cbm"`
	StockActual          decimal.Decimal `json:"stockActual"`
	Status               string          `json:"status"`
	FechaLlegadaEstimada *time.Time      `json:"estimatedArrivalDate,omitempty"`
	Desconsiderado       bool            `json:"desconsiderado"`
	WorkflowCompleted    bool            `json:"workflowCompleted"`
	CompletedAt          *time.Time      `json:"completedAt,omitempty"`
	SKUOriginal          string          `json:"originalSku,omitempty"`
	ReposicionAdicional  bool            `json:"reposicionAdicional,omitempty"`

	RequestDetails       *entity.DetalleSolicitud   `json:"requestDetails,omitempty"`
	QuoteDetails         *entity.DetalleCotizacion  `json:"quoteDetails,omitempty"`
	AnalysisDetails      *entity.DetalleAnalisis    `json:"analysisDetails,omitempty"`
	ApprovalDetails      *entity.DetalleAprobacion  `json:"approvalDetails,omitempty"`
	PurchaseDetails      *entity.DetalleCompra      `json:"purchaseDetails,omitempty"`
	ManufacturingDetails *entity.DetalleFabricacion `json:"manufacturingDetails,omitempty"`
	ShippingDetails      *entity.DetalleEnvio       `json:"shippingDetails,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromProducto mapea la entidad al DTO de salida.
func FromProducto(p *entity.Producto) ProductoResponse {
	return ProductoResponse{
		ID:                   p.ID,
		SKU:                  p.SKU,
		Descripcion:          p.Descripcion,
		Link:                 p.Link,
		CostoFobRMB:          p.CostoFobRMB,
		CBM:                  p.CBM,
		StockActual:          p.StockActual,
		Status:               string(p.Status),
		FechaLlegadaEstimada: p.FechaLlegadaEstimada,
		Desconsiderado:       p.Desconsiderado,
		WorkflowCompleted:    p.WorkflowCompleted,
		CompletedAt:          p.CompletedAt,
		SKUOriginal:          p.SKUOriginal,
		ReposicionAdicional:  p.ReposicionAdicional,
		RequestDetails:       p.RequestDetails,
		QuoteDetails:         p.QuoteDetails,
		AnalysisDetails:      p.AnalysisDetails,
		ApprovalDetails:      p.ApprovalDetails,
		PurchaseDetails:      p.PurchaseDetails,
		ManufacturingDetails: p.ManufacturingDetails,
		ShippingDetails:      p.ShippingDetails,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// ProductoListResponse listado paginado del catálogo.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ExcluirRequest entrada para excluir o reincorporar un SKU del análisis.
type ExcluirRequest struct {
	Excluir bool `json:"excluir"`
}
