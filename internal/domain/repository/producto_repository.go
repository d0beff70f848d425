package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

// FiltroProductos acota el listado del catálogo.
type FiltroProductos struct {
	Status             workflow.Estado
	IncluirCompletados bool
	SoloEnWorkflow     bool // estados distintos de NO_REPLENISHMENT_NEEDED
	Busqueda           string
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetBySKU(sku string) (*entity.Producto, error)
	ExistsSKU(sku string) (bool, error)
	Update(p *entity.Producto) error
	List(filtro FiltroProductos, limit, offset int) ([]*entity.Producto, error)
	ListByStatus(estados ...workflow.Estado) ([]*entity.Producto, error)
	Delete(id string) error
	// UpsertDesdeStock crea el producto si no existe y sincroniza stock y
	// descripción desde la foto de bodegas cargada por Excel.
	UpsertDesdeStock(sku, descripcion string, stock entity.Stock) error
	// IncrementarStock suma unidades llegadas al stock actual.
	IncrementarStock(sku string, unidades decimal.Decimal) error
	// SincronizarDesconsiderados marca los SKU listados como excluidos del
	// análisis y desmarca el resto.
	SincronizarDesconsiderados(skus []string) error
}
