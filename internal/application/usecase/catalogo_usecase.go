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

// CatalogoUseCase casos de uso CRUD sobre el catálogo de productos. El stock
// no se edita aquí: lo gobiernan la carga masiva y las llegadas de
// contenedor.
type CatalogoUseCase struct {
	productos repository.ProductoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(productos repository.ProductoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{productos: productos}
}

// NuevoProducto entrada para alta manual de un producto.
type NuevoProducto struct {
	SKU         string
	Descripcion string
	Link        string
	CostoFobRMB decimal.Decimal
	CBM         decimal.Decimal
}

// Crear registra un producto nuevo en estado sin reposición.
func (uc *CatalogoUseCase) Crear(in NuevoProducto) (*entity.Producto, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		return nil, domain.ErrInvalidInput
	}
	existe, err := uc.productos.ExistsSKU(sku)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrSKUYaExiste
	}
	now := time.Now()
	p := &entity.Producto{
		ID:          uuid.New().String(),
		SKU:         sku,
		Descripcion: strings.TrimSpace(in.Descripcion),
		Link:        strings.TrimSpace(in.Link),
		CostoFobRMB: in.CostoFobRMB,
		CBM:         in.CBM,
		StockActual: decimal.Zero,
		Status:      workflow.SinReposicion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productos.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Listar devuelve el catálogo filtrado.
func (uc *CatalogoUseCase) Listar(filtro repository.FiltroProductos, limit, offset int) ([]*entity.Producto, error) {
	return uc.productos.List(filtro, limit, offset)
}

// Obtener devuelve un producto por SKU.
func (uc *CatalogoUseCase) Obtener(sku string) (*entity.Producto, error) {
	p, err := uc.productos.GetBySKU(strings.TrimSpace(sku))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNotFound
	}
	return p, nil
}

// EdicionProducto campos editables a mano. Punteros en nil no tocan el campo.
type EdicionProducto struct {
	Descripcion *string
	Link        *string
	CostoFobRMB *decimal.Decimal
	CBM         *decimal.Decimal
}

// Editar modifica los datos comerciales de un producto.
func (uc *CatalogoUseCase) Editar(sku string, in EdicionProducto) (*entity.Producto, error) {
	p, err := uc.Obtener(sku)
	if err != nil {
		return nil, err
	}
	if in.Descripcion != nil {
		p.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	if in.Link != nil {
		p.Link = strings.TrimSpace(*in.Link)
	}
	if in.CostoFobRMB != nil {
		if in.CostoFobRMB.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.CostoFobRMB = *in.CostoFobRMB
	}
	if in.CBM != nil {
		if in.CBM.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.CBM = *in.CBM
	}
	p.UpdatedAt = time.Now()
	if err := uc.productos.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Eliminar borra un producto que no esté en medio del workflow.
func (uc *CatalogoUseCase) Eliminar(sku string) error {
	p, err := uc.Obtener(sku)
	if err != nil {
		return err
	}
	switch p.Status {
	case workflow.SinReposicion, workflow.NecesitaReposicion:
		return uc.productos.Delete(p.ID)
	}
	return domain.ErrInvalidInput
}
