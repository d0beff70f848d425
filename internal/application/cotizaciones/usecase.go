// Package cotizaciones registra y compara ofertas de proveedor por SKU antes
// de responder la cotización del workflow.
package cotizaciones

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

// Usecase casos de uso CRUD para cotizaciones de proveedor.
type Usecase struct {
	cotizaciones repository.CotizacionRepository
	productos    repository.ProductoRepository
	ahora        func() time.Time
}

// NewUsecase construye el caso de uso. ahora puede ser nil y usa time.Now.
func NewUsecase(cotizaciones repository.CotizacionRepository, productos repository.ProductoRepository, ahora func() time.Time) *Usecase {
	if ahora == nil {
		ahora = time.Now
	}
	return &Usecase{cotizaciones: cotizaciones, productos: productos, ahora: ahora}
}

// NuevaCotizacion entrada para registrar una oferta.
type NuevaCotizacion struct {
	SKU             string
	Proveedor       string
	PrecioUnitario  decimal.Decimal
	Moneda          string
	UnidadesPorCaja decimal.Decimal
	CBMPorCaja      decimal.Decimal
	DiasProduccion  int
	Notas           string
}

// Crear registra una oferta para un SKU existente.
func (uc *Usecase) Crear(in NuevaCotizacion) (*entity.Cotizacion, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" || in.Proveedor == "" || !in.PrecioUnitario.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Moneda != "RMB" && in.Moneda != "USD" {
		return nil, domain.ErrInvalidInput
	}
	existe, err := uc.productos.ExistsSKU(sku)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, domain.ErrProductoNotFound
	}

	c := &entity.Cotizacion{
		ID:              uuid.New().String(),
		SKU:             sku,
		Proveedor:       strings.TrimSpace(in.Proveedor),
		PrecioUnitario:  in.PrecioUnitario,
		Moneda:          in.Moneda,
		UnidadesPorCaja: in.UnidadesPorCaja,
		CBMPorCaja:      in.CBMPorCaja,
		DiasProduccion:  in.DiasProduccion,
		Notas:           in.Notas,
		CreatedAt:       uc.ahora(),
	}
	if err := uc.cotizaciones.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListarPorSKU devuelve las ofertas registradas para un SKU.
func (uc *Usecase) ListarPorSKU(sku string) ([]*entity.Cotizacion, error) {
	return uc.cotizaciones.ListBySKU(strings.TrimSpace(sku))
}

// Seleccionar marca una oferta como la elegida y desmarca las demás del SKU.
func (uc *Usecase) Seleccionar(id string) (*entity.Cotizacion, error) {
	elegida, err := uc.cotizaciones.GetByID(id)
	if err != nil {
		return nil, err
	}
	if elegida == nil {
		return nil, domain.ErrNotFound
	}
	hermanas, err := uc.cotizaciones.ListBySKU(elegida.SKU)
	if err != nil {
		return nil, err
	}
	for _, c := range hermanas {
		marcada := c.ID == elegida.ID
		if c.Seleccionada == marcada {
			continue
		}
		c.Seleccionada = marcada
		if err := uc.cotizaciones.Update(c); err != nil {
			return nil, err
		}
	}
	elegida.Seleccionada = true
	return elegida, nil
}

// Eliminar borra una oferta.
func (uc *Usecase) Eliminar(id string) error {
	c, err := uc.cotizaciones.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.cotizaciones.Delete(id)
}
