package repository

import "github.com/tlt-imports/reposicion-api/internal/domain/entity"

// CotizacionRepository define el puerto de persistencia para cotizaciones de
// proveedor (DIP).
type CotizacionRepository interface {
	Create(c *entity.Cotizacion) error
	GetByID(id string) (*entity.Cotizacion, error)
	ListBySKU(sku string) ([]*entity.Cotizacion, error)
	Update(c *entity.Cotizacion) error
	Delete(id string) error
}
