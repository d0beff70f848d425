package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

// HistoricoUseCase consultas sobre el histórico de ventas, llegadas y
// tránsito de un SKU, más el alta manual de llegadas.
type HistoricoUseCase struct {
	ventas    repository.VentaRepository
	compras   repository.CompraRepository
	transitos repository.TransitoRepository
	packs     repository.PackRepository
	productos repository.ProductoRepository
}

// NewHistoricoUseCase construye el caso de uso.
func NewHistoricoUseCase(
	ventas repository.VentaRepository,
	compras repository.CompraRepository,
	transitos repository.TransitoRepository,
	packs repository.PackRepository,
	productos repository.ProductoRepository,
) *HistoricoUseCase {
	return &HistoricoUseCase{
		ventas:    ventas,
		compras:   compras,
		transitos: transitos,
		packs:     packs,
		productos: productos,
	}
}

// VentasPorSKU devuelve el histórico de ventas de un SKU.
func (uc *HistoricoUseCase) VentasPorSKU(sku string, limit, offset int) ([]*entity.Venta, error) {
	return uc.ventas.ListBySKU(strings.TrimSpace(sku), limit, offset)
}

// ComprasPorSKU devuelve las llegadas registradas de un SKU.
func (uc *HistoricoUseCase) ComprasPorSKU(sku string, limit, offset int) ([]*entity.Compra, error) {
	return uc.compras.ListBySKU(strings.TrimSpace(sku), limit, offset)
}

// TransitoPorSKU devuelve las unidades en tránsito cargadas por Excel.
func (uc *HistoricoUseCase) TransitoPorSKU(sku string) ([]*entity.Transito, error) {
	return uc.transitos.ListBySKU(strings.TrimSpace(sku))
}

// ComposicionPack devuelve los componentes de un pack.
func (uc *HistoricoUseCase) ComposicionPack(skuPack string) ([]*entity.Pack, error) {
	return uc.packs.ListByPack(strings.TrimSpace(skuPack))
}

// RegistrarLlegada da de alta una llegada manual a bodega, para mercadería
// que no vino ni del Excel ni de un contenedor del sistema. Si el SKU no
// existe en el catálogo crea un producto provisorio con costos placeholder
// para que el análisis lo levante en la siguiente pasada.
func (uc *HistoricoUseCase) RegistrarLlegada(sku string, fecha time.Time, cantidad decimal.Decimal) (*entity.Compra, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" || fecha.IsZero() || !cantidad.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productos.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		ahora := time.Now()
		nuevo := &entity.Producto{
			ID:          uuid.New().String(),
			SKU:         sku,
			CostoFobRMB: decimal.NewFromInt(1),
			CBM:         decimal.NewFromFloat(0.01),
			StockActual: decimal.Zero,
			Status:      workflow.NecesitaReposicion,
			CreatedAt:   ahora,
			UpdatedAt:   ahora,
		}
		if err := uc.productos.Create(nuevo); err != nil {
			return nil, err
		}
	}
	c := &entity.Compra{
		ID:               uuid.New().String(),
		SKU:              sku,
		FechaLlegadaReal: fecha,
		Cantidad:         cantidad,
		Origen:           "manual",
		CreatedAt:        time.Now(),
	}
	if err := uc.compras.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}
