package cotizaciones

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

type cotizacionesFake struct {
	porID   map[string]*entity.Cotizacion
	updates int
}

func nuevasCotizacionesFake(cs ...*entity.Cotizacion) *cotizacionesFake {
	f := &cotizacionesFake{porID: map[string]*entity.Cotizacion{}}
	for _, c := range cs {
		f.porID[c.ID] = c
	}
	return f
}

func (f *cotizacionesFake) Create(c *entity.Cotizacion) error {
	f.porID[c.ID] = c
	return nil
}
func (f *cotizacionesFake) GetByID(id string) (*entity.Cotizacion, error) {
	return f.porID[id], nil
}
func (f *cotizacionesFake) ListBySKU(sku string) ([]*entity.Cotizacion, error) {
	var out []*entity.Cotizacion
	for _, c := range f.porID {
		if c.SKU == sku {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *cotizacionesFake) Update(c *entity.Cotizacion) error {
	f.updates++
	f.porID[c.ID] = c
	return nil
}
func (f *cotizacionesFake) Delete(id string) error {
	delete(f.porID, id)
	return nil
}

type productosFake struct{ skus map[string]bool }

func (f *productosFake) Create(*entity.Producto) error                                         { return nil }
func (f *productosFake) GetByID(string) (*entity.Producto, error)                              { return nil, nil }
func (f *productosFake) GetBySKU(string) (*entity.Producto, error)                             { return nil, nil }
func (f *productosFake) ExistsSKU(sku string) (bool, error)                                    { return f.skus[sku], nil }
func (f *productosFake) Update(*entity.Producto) error                                         { return nil }
func (f *productosFake) List(repository.FiltroProductos, int, int) ([]*entity.Producto, error) {
	return nil, nil
}
func (f *productosFake) ListByStatus(...workflow.Estado) ([]*entity.Producto, error) {
	return nil, nil
}
func (f *productosFake) Delete(string) error                                 { return nil }
func (f *productosFake) UpsertDesdeStock(string, string, entity.Stock) error { return nil }
func (f *productosFake) IncrementarStock(string, decimal.Decimal) error      { return nil }
func (f *productosFake) SincronizarDesconsiderados([]string) error           { return nil }

var ahoraTest = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func nuevoUsecase(repo *cotizacionesFake, skus ...string) *Usecase {
	conocidos := map[string]bool{}
	for _, s := range skus {
		conocidos[s] = true
	}
	return NewUsecase(repo, &productosFake{skus: conocidos}, func() time.Time { return ahoraTest })
}

func oferta(id, sku, proveedor string, seleccionada bool) *entity.Cotizacion {
	return &entity.Cotizacion{
		ID:             id,
		SKU:            sku,
		Proveedor:      proveedor,
		PrecioUnitario: decimal.NewFromInt(10),
		Moneda:         "USD",
		Seleccionada:   seleccionada,
	}
}

func TestCrear(t *testing.T) {
	repo := nuevasCotizacionesFake()
	uc := nuevoUsecase(repo, "649701")

	c, err := uc.Crear(NuevaCotizacion{
		SKU:            " 649701 ",
		Proveedor:      "Yiwu Trading",
		PrecioUnitario: decimal.NewFromFloat(35.5),
		Moneda:         "RMB",
	})

	require.NoError(t, err)
	assert.Equal(t, "649701", c.SKU)
	assert.Equal(t, ahoraTest, c.CreatedAt)
	assert.False(t, c.Seleccionada)
	assert.Len(t, repo.porID, 1)
}

func TestCrear_SKUInexistente(t *testing.T) {
	uc := nuevoUsecase(nuevasCotizacionesFake())

	_, err := uc.Crear(NuevaCotizacion{
		SKU:            "NO-EXISTE",
		Proveedor:      "Yiwu Trading",
		PrecioUnitario: decimal.NewFromInt(5),
		Moneda:         "USD",
	})

	assert.ErrorIs(t, err, domain.ErrProductoNotFound)
}

func TestCrear_MonedaDesconocida(t *testing.T) {
	uc := nuevoUsecase(nuevasCotizacionesFake(), "649701")

	_, err := uc.Crear(NuevaCotizacion{
		SKU:            "649701",
		Proveedor:      "Yiwu Trading",
		PrecioUnitario: decimal.NewFromInt(5),
		Moneda:         "CLP",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSeleccionar_DesmarcaLasDemasDelSKU(t *testing.T) {
	repo := nuevasCotizacionesFake(
		oferta("a", "649701", "Proveedor A", true),
		oferta("b", "649701", "Proveedor B", false),
		oferta("c", "OTRO", "Proveedor C", true),
	)
	uc := nuevoUsecase(repo)

	c, err := uc.Seleccionar("b")

	require.NoError(t, err)
	assert.True(t, c.Seleccionada)
	assert.False(t, repo.porID["a"].Seleccionada)
	assert.True(t, repo.porID["b"].Seleccionada)
	assert.True(t, repo.porID["c"].Seleccionada, "otras SKU no se tocan")
	assert.Equal(t, 2, repo.updates, "solo se actualizan las que cambian")
}

func TestSeleccionar_Idempotente(t *testing.T) {
	repo := nuevasCotizacionesFake(oferta("a", "649701", "Proveedor A", true))
	uc := nuevoUsecase(repo)

	c, err := uc.Seleccionar("a")

	require.NoError(t, err)
	assert.True(t, c.Seleccionada)
	assert.Equal(t, 0, repo.updates)
}

func TestSeleccionar_Inexistente(t *testing.T) {
	uc := nuevoUsecase(nuevasCotizacionesFake())

	_, err := uc.Seleccionar("nada")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminar(t *testing.T) {
	repo := nuevasCotizacionesFake(oferta("a", "649701", "Proveedor A", false))
	uc := nuevoUsecase(repo)

	require.NoError(t, uc.Eliminar("a"))
	assert.Empty(t, repo.porID)
	assert.ErrorIs(t, uc.Eliminar("a"), domain.ErrNotFound)
}
