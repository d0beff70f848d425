package repository

import (
	"time"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// CompraRepository define el puerto de persistencia para llegadas a bodega (DIP).
type CompraRepository interface {
	Create(c *entity.Compra) error
	ReplaceAll(compras []*entity.Compra) error
	ListBySKU(sku string, limit, offset int) ([]*entity.Compra, error)
	// UltimaLlegadaHasta devuelve la llegada real más reciente del SKU con
	// fecha menor o igual a la indicada, o nil si no hay ninguna.
	UltimaLlegadaHasta(sku string, hasta time.Time) (*time.Time, error)
}
