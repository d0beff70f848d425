package estado

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

type productosFake struct {
	porSKU map[string]*entity.Producto
}

func nuevosProductosFake(ps ...*entity.Producto) *productosFake {
	f := &productosFake{porSKU: map[string]*entity.Producto{}}
	for _, p := range ps {
		f.porSKU[p.SKU] = p
	}
	return f
}

func (f *productosFake) Create(p *entity.Producto) error {
	f.porSKU[p.SKU] = p
	return nil
}
func (f *productosFake) GetByID(string) (*entity.Producto, error) { return nil, nil }
func (f *productosFake) GetBySKU(sku string) (*entity.Producto, error) {
	return f.porSKU[sku], nil
}
func (f *productosFake) ExistsSKU(sku string) (bool, error) {
	_, ok := f.porSKU[sku]
	return ok, nil
}
func (f *productosFake) Update(p *entity.Producto) error { return nil }
func (f *productosFake) List(repository.FiltroProductos, int, int) ([]*entity.Producto, error) {
	return nil, nil
}
func (f *productosFake) ListByStatus(...workflow.Estado) ([]*entity.Producto, error) {
	return nil, nil
}
func (f *productosFake) Delete(string) error { return nil }
func (f *productosFake) UpsertDesdeStock(string, string, entity.Stock) error {
	return nil
}
func (f *productosFake) IncrementarStock(string, decimal.Decimal) error { return nil }
func (f *productosFake) SincronizarDesconsiderados([]string) error      { return nil }

type configFake struct{ cfg entity.Configuracion }

func (f *configFake) Get() (*entity.Configuracion, error) {
	c := f.cfg
	return &c, nil
}
func (f *configFake) Save(*entity.Configuracion) error { return nil }

var ahoraTest = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func nuevoUsecase(ps ...*entity.Producto) (*Usecase, *productosFake) {
	repo := nuevosProductosFake(ps...)
	cfg := &configFake{cfg: entity.ConfiguracionPorDefecto()}
	return NewUsecase(repo, cfg, func() time.Time { return ahoraTest }), repo
}

func producto(sku string, estado workflow.Estado) *entity.Producto {
	return &entity.Producto{
		ID:          "id-" + sku,
		SKU:         sku,
		Descripcion: "producto " + sku,
		StockActual: decimal.NewFromInt(10),
		Status:      estado,
	}
}

func TestTransicionar_SolicitudDeCotizacion(t *testing.T) {
	uc, _ := nuevoUsecase(producto("649701", workflow.NecesitaReposicion))

	p, err := uc.Transicionar(dto.TransicionRequest{
		SKU:              "649701",
		SiguienteEstado:  string(workflow.CotizacionPedida),
		CantidadACotizar: decimal.NewFromInt(300),
		Comentarios:      "urgente",
	})

	require.NoError(t, err)
	assert.Equal(t, workflow.CotizacionPedida, p.Status)
	require.NotNil(t, p.RequestDetails)
	assert.True(t, p.RequestDetails.CantidadACotizar.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, string(workflow.NecesitaReposicion), p.RequestDetails.EstadoAnterior)
	assert.Equal(t, string(workflow.CotizacionPedida), p.RequestDetails.EstadoNuevo)
	assert.Equal(t, ahoraTest, p.RequestDetails.Timestamp)
}

func TestTransicionar_CotizacionEnRMBActualizaCostoYCBM(t *testing.T) {
	uc, _ := nuevoUsecase(producto("649701", workflow.CotizacionPedida))

	p, err := uc.Transicionar(dto.TransicionRequest{
		SKU:             "649701",
		SiguienteEstado: string(workflow.Cotizado),
		PrecioUnitario:  decimal.NewFromFloat(35.5),
		Moneda:          "RMB",
		UnidadesPorCaja: decimal.NewFromInt(20),
		CBMPorCaja:      decimal.NewFromInt(1),
	})

	require.NoError(t, err)
	require.NotNil(t, p.QuoteDetails)

	// 35.5 RMB a 0.14 = 4.97 USD; el FOB en RMB queda igual a lo cotizado.
	assert.True(t, p.QuoteDetails.PrecioUnitarioUSD.Equal(decimal.NewFromFloat(4.97)))
	assert.True(t, p.CostoFobRMB.Equal(decimal.NewFromFloat(35.5)), "costoFobRMB = %s", p.CostoFobRMB)
	assert.True(t, p.CBM.Equal(decimal.NewFromFloat(0.05)), "cbm = %s", p.CBM)

	require.NotNil(t, p.QuoteDetails.SnapshotCambio)
	assert.True(t, p.QuoteDetails.SnapshotCambio.RmbToUsd.Equal(decimal.NewFromFloat(0.14)))
}

func TestTransicionar_CotizacionEnUSDNoConvierte(t *testing.T) {
	uc, _ := nuevoUsecase(producto("X", workflow.CotizacionPedida))

	p, err := uc.Transicionar(dto.TransicionRequest{
		SKU:             "X",
		SiguienteEstado: string(workflow.Cotizado),
		PrecioUnitario:  decimal.NewFromInt(7),
		Moneda:          "USD",
	})

	require.NoError(t, err)
	assert.True(t, p.QuoteDetails.PrecioUnitarioUSD.Equal(decimal.NewFromInt(7)))
	// FOB RMB = 7 / 0.14 = 50.
	assert.True(t, p.CostoFobRMB.Equal(decimal.NewFromInt(50)), "costoFobRMB = %s", p.CostoFobRMB)
}

func TestTransicionar_RecotizacionTrasRechazo(t *testing.T) {
	uc, _ := nuevoUsecase(producto("X", workflow.CotizacionRechazada))

	p, err := uc.Transicionar(dto.TransicionRequest{
		SKU:             "X",
		SiguienteEstado: string(workflow.Cotizado),
		PrecioUnitario:  decimal.NewFromInt(5),
		Moneda:          "USD",
	})

	require.NoError(t, err)
	assert.Equal(t, workflow.Cotizado, p.Status)
	assert.Equal(t, string(workflow.CotizacionRechazada), p.QuoteDetails.EstadoAnterior)
}

func TestTransicionar_AprobacionConRenombreDeSKU(t *testing.T) {
	original := producto("649701-REP-1717243200000", workflow.EnAnalisis)
	original.ReposicionAdicional = true
	uc, repo := nuevoUsecase(original)

	p, err := uc.Transicionar(dto.TransicionRequest{
		SKU:              original.SKU,
		SiguienteEstado:  string(workflow.CompraAprobada),
		CantidadAprobada: decimal.NewFromInt(500),
		NuevoSKU:         "649702",
	})

	require.NoError(t, err)
	assert.Equal(t, "649702", p.SKU)
	require.NotNil(t, p.ApprovalDetails)
	require.NotNil(t, p.ApprovalDetails.CambioSKU)
	assert.Equal(t, "649701-REP-1717243200000", p.ApprovalDetails.CambioSKU.Desde)
	assert.Equal(t, "649702", p.ApprovalDetails.CambioSKU.Hacia)
	_ = repo
}

func TestTransicionar_RenombreASKUExistenteFalla(t *testing.T) {
	uc, _ := nuevoUsecase(
		producto("A-REP-1", workflow.EnAnalisis),
		producto("649701", workflow.SinReposicion),
	)

	_, err := uc.Transicionar(dto.TransicionRequest{
		SKU:             "A-REP-1",
		SiguienteEstado: string(workflow.CompraAprobada),
		NuevoSKU:        "649701",
	})

	assert.ErrorIs(t, err, domain.ErrSKUYaExiste)
}

func TestTransicionar_RechazoDesdeAnalisisNoRegistraAprobacion(t *testing.T) {
	uc, _ := nuevoUsecase(producto("X", workflow.EnAnalisis))

	p, err := uc.Transicionar(dto.TransicionRequest{
		SKU:             "X",
		SiguienteEstado: string(workflow.CotizacionRechazada),
	})

	require.NoError(t, err)
	assert.Equal(t, workflow.CotizacionRechazada, p.Status)
	assert.Nil(t, p.ApprovalDetails)
}

func TestTransicionar_EmbarqueGuardaETAYContenedor(t *testing.T) {
	eta := ahoraTest.AddDate(0, 0, 35)
	uc, _ := nuevoUsecase(producto("X", workflow.Fabricado))

	p, err := uc.Transicionar(dto.TransicionRequest{
		SKU:               "X",
		SiguienteEstado:   string(workflow.Embarcado),
		CantidadEmbarcada: decimal.NewFromInt(480),
		ETA:               &eta,
		NumeroContenedor:  " MSKU1234567 ",
	})

	require.NoError(t, err)
	require.NotNil(t, p.ShippingDetails)
	assert.Equal(t, "MSKU1234567", p.ShippingDetails.NumeroContenedor)
	require.NotNil(t, p.FechaLlegadaEstimada)
	assert.Equal(t, eta, *p.FechaLlegadaEstimada)
}

func TestTransicionar_FabricadoHeredaCantidadConfirmada(t *testing.T) {
	p0 := producto("X", workflow.CompraConfirmada)
	p0.PurchaseDetails = &entity.DetalleCompra{CantidadConfirmada: decimal.NewFromInt(500)}
	uc, _ := nuevoUsecase(p0)

	p, err := uc.Transicionar(dto.TransicionRequest{
		SKU:             "X",
		SiguienteEstado: string(workflow.Fabricado),
	})

	require.NoError(t, err)
	assert.True(t, p.ManufacturingDetails.CantidadFabricada.Equal(decimal.NewFromInt(500)))
}

func TestTransicionar_TransicionInvalida(t *testing.T) {
	uc, _ := nuevoUsecase(producto("X", workflow.Embarcado))

	_, err := uc.Transicionar(dto.TransicionRequest{
		SKU:             "X",
		SiguienteEstado: string(workflow.NecesitaReposicion),
	})

	var te *workflow.ErrorTransicion
	require.ErrorAs(t, err, &te)
	assert.Equal(t, workflow.Embarcado, te.Actual)
}

func TestTransicionar_ProductoInexistente(t *testing.T) {
	uc, _ := nuevoUsecase()

	_, err := uc.Transicionar(dto.TransicionRequest{
		SKU:             "NO-EXISTE",
		SiguienteEstado: string(workflow.Cotizado),
	})

	assert.ErrorIs(t, err, domain.ErrProductoNotFound)
}

func TestTransicionar_EstadoDesconocido(t *testing.T) {
	uc, _ := nuevoUsecase(producto("X", workflow.SinReposicion))

	_, err := uc.Transicionar(dto.TransicionRequest{SKU: "X", SiguienteEstado: "PENDING"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExcluir(t *testing.T) {
	uc, _ := nuevoUsecase(producto("X", workflow.SinReposicion))

	p, err := uc.Excluir("X", true)
	require.NoError(t, err)
	assert.True(t, p.Desconsiderado)

	p, err = uc.Excluir("X", false)
	require.NoError(t, err)
	assert.False(t, p.Desconsiderado)
}
