// Package estado aplica las transiciones del workflow de reposición sobre un
// producto, registrando el detalle de cada etapa.
package estado

import (
	"fmt"
	"strings"
	"time"

	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

// Usecase avanza productos por el workflow validando cada transición contra
// la tabla del dominio.
type Usecase struct {
	productos repository.ProductoRepository
	config    repository.ConfiguracionRepository
	ahora     func() time.Time
}

// NewUsecase construye el caso de uso. ahora puede ser nil y usa time.Now.
func NewUsecase(productos repository.ProductoRepository, config repository.ConfiguracionRepository, ahora func() time.Time) *Usecase {
	if ahora == nil {
		ahora = time.Now
	}
	return &Usecase{productos: productos, config: config, ahora: ahora}
}

// Transicionar valida y aplica la transición pedida, registrando el detalle
// de la etapa que se abandona. Devuelve el producto actualizado; si la
// aprobación renombró el SKU, el producto devuelto ya trae el nuevo.
func (uc *Usecase) Transicionar(in dto.TransicionRequest) (*entity.Producto, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" || !workflow.EsValido(in.SiguienteEstado) {
		return nil, domain.ErrInvalidInput
	}
	siguiente := workflow.Estado(in.SiguienteEstado)

	p, err := uc.productos.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNotFound
	}
	if err := workflow.Validar(p.Status, siguiente); err != nil {
		return nil, err
	}

	meta := entity.MetaTransicion{
		Timestamp:      uc.ahora(),
		EstadoAnterior: string(p.Status),
		EstadoNuevo:    string(siguiente),
	}

	switch p.Status {
	case workflow.NecesitaReposicion:
		p.RequestDetails = &entity.DetalleSolicitud{
			MetaTransicion:   meta,
			CantidadACotizar: in.CantidadACotizar,
			Comentarios:      in.Comentarios,
		}

	case workflow.CotizacionPedida, workflow.CotizacionRechazada:
		if err := uc.registrarCotizacion(p, in, meta); err != nil {
			return nil, err
		}

	case workflow.Cotizado:
		p.AnalysisDetails = &entity.DetalleAnalisis{
			MetaTransicion:   meta,
			PrecioVenta:      in.PrecioVenta,
			StockAlAnalizar:  p.StockActual,
			CBMAlAnalizar:    p.CBM,
			FobRMBAlAnalizar: p.CostoFobRMB,
			Comentarios:      in.Comentarios,
		}

	case workflow.EnAnalisis:
		if siguiente == workflow.CompraAprobada {
			if err := uc.registrarAprobacion(p, in, meta); err != nil {
				return nil, err
			}
		}

	case workflow.CompraAprobada:
		p.PurchaseDetails = &entity.DetalleCompra{
			MetaTransicion:       meta,
			CantidadConfirmada:   in.CantidadConfirmada,
			FechaEntregaEstimada: in.FechaEntregaEstimada,
			Comentarios:          in.Comentarios,
		}

	case workflow.CompraConfirmada:
		cantidad := in.CantidadFabricada
		if cantidad.IsZero() && p.PurchaseDetails != nil {
			cantidad = p.PurchaseDetails.CantidadConfirmada
		}
		p.ManufacturingDetails = &entity.DetalleFabricacion{
			MetaTransicion:    meta,
			CantidadFabricada: cantidad,
			Comentarios:       in.Comentarios,
		}

	case workflow.Fabricado:
		p.ShippingDetails = &entity.DetalleEnvio{
			MetaTransicion:    meta,
			CantidadEmbarcada: in.CantidadEmbarcada,
			ETA:               in.ETA,
			NumeroContenedor:  strings.TrimSpace(in.NumeroContenedor),
			Comentarios:       in.Comentarios,
		}
		p.FechaLlegadaEstimada = in.ETA
	}

	p.Status = siguiente
	p.UpdatedAt = uc.ahora()
	if err := uc.productos.Update(p); err != nil {
		return nil, fmt.Errorf("actualizar %s: %w", sku, err)
	}
	return p, nil
}

// registrarCotizacion guarda la respuesta del proveedor y actualiza el costo
// FOB y el CBM unitario del producto a partir de lo cotizado. Los tipos de
// cambio vigentes quedan congelados en el detalle.
func (uc *Usecase) registrarCotizacion(p *entity.Producto, in dto.TransicionRequest, meta entity.MetaTransicion) error {
	cfg, err := uc.config.Get()
	if err != nil {
		return err
	}

	detalle := &entity.DetalleCotizacion{
		MetaTransicion:  meta,
		PrecioUnitario:  in.PrecioUnitario,
		Moneda:          in.Moneda,
		UnidadesPorCaja: in.UnidadesPorCaja,
		CBMPorCaja:      in.CBMPorCaja,
		DiasProduccion:  in.DiasProduccion,
		Comentarios:     in.Comentarios,
		SnapshotCambio: &entity.SnapshotCambio{
			RmbToUsd: cfg.RmbToUsd,
			UsdToClp: cfg.UsdToClp,
		},
	}

	if in.PrecioUnitario.IsPositive() && in.Moneda != "" && cfg.RmbToUsd.IsPositive() {
		precioUSD := in.PrecioUnitario
		if in.Moneda == "RMB" {
			precioUSD = in.PrecioUnitario.Mul(cfg.RmbToUsd)
		}
		detalle.PrecioUnitarioUSD = precioUSD
		p.CostoFobRMB = precioUSD.Div(cfg.RmbToUsd)
	}
	if in.CBMPorCaja.IsPositive() && in.UnidadesPorCaja.IsPositive() {
		detalle.CBMPorUnidad = in.CBMPorCaja.Div(in.UnidadesPorCaja)
		p.CBM = detalle.CBMPorUnidad
	}

	p.QuoteDetails = detalle
	return nil
}

// registrarAprobacion guarda la aprobación y, si viene un SKU nuevo, lo
// renombra verificando unicidad. El renombre existe para las líneas de
// reposición adicional, que nacen con SKU sintético.
func (uc *Usecase) registrarAprobacion(p *entity.Producto, in dto.TransicionRequest, meta entity.MetaTransicion) error {
	detalle := &entity.DetalleAprobacion{
		MetaTransicion:   meta,
		CantidadAprobada: in.CantidadAprobada,
		Comentarios:      in.Comentarios,
	}

	nuevoSKU := strings.TrimSpace(in.NuevoSKU)
	if nuevoSKU != "" && nuevoSKU != p.SKU {
		existe, err := uc.productos.ExistsSKU(nuevoSKU)
		if err != nil {
			return err
		}
		if existe {
			return domain.ErrSKUYaExiste
		}
		detalle.CambioSKU = &entity.CambioSKU{
			Desde:     p.SKU,
			Hacia:     nuevoSKU,
			Timestamp: meta.Timestamp,
		}
		p.SKU = nuevoSKU
	}

	p.ApprovalDetails = detalle
	return nil
}

// Excluir marca o desmarca un SKU del análisis de reposición.
func (uc *Usecase) Excluir(sku string, desconsiderado bool) (*entity.Producto, error) {
	p, err := uc.productos.GetBySKU(strings.TrimSpace(sku))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNotFound
	}
	p.Desconsiderado = desconsiderado
	p.UpdatedAt = uc.ahora()
	if err := uc.productos.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}
