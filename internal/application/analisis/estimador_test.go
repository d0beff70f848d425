package analisis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

type ventasFake struct {
	primera *time.Time
	ultima  *time.Time
	suma    decimal.Decimal

	sumaDesde, sumaHasta time.Time
}

func (f *ventasFake) ReplaceAll([]*entity.Venta) error { return nil }
func (f *ventasFake) ListBySKU(string, int, int) ([]*entity.Venta, error) {
	return nil, nil
}
func (f *ventasFake) SumUnidades(_ string, desde, hasta time.Time) (decimal.Decimal, error) {
	f.sumaDesde, f.sumaHasta = desde, hasta
	return f.suma, nil
}
func (f *ventasFake) PrimeraFecha(string) (*time.Time, error) { return f.primera, nil }
func (f *ventasFake) UltimaFecha(string) (*time.Time, error)  { return f.ultima, nil }

type comprasFake struct {
	llegada *time.Time
	hasta   time.Time
}

func (f *comprasFake) Create(*entity.Compra) error       { return nil }
func (f *comprasFake) ReplaceAll([]*entity.Compra) error { return nil }
func (f *comprasFake) ListBySKU(string, int, int) ([]*entity.Compra, error) {
	return nil, nil
}
func (f *comprasFake) UltimaLlegadaHasta(_ string, hasta time.Time) (*time.Time, error) {
	f.hasta = hasta
	return f.llegada, nil
}

var ahoraTest = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fecha(diasAtras int) *time.Time {
	t := ahoraTest.AddDate(0, 0, -diasAtras)
	return &t
}

func TestVentaDiaria_VentanaAncladaEnLlegadaConQuiebre(t *testing.T) {
	// Última llegada hace 40 días, quiebre de stock con última venta hace 10
	// días: la ventana son esos 30 días, no los 40 hasta hoy.
	ventas := &ventasFake{ultima: fecha(10), suma: decimal.NewFromInt(90)}
	compras := &comprasFake{llegada: fecha(40)}
	e := NewEstimador(ventas, compras, func() time.Time { return ahoraTest })

	tasa, ventana, err := e.VentaDiaria("649701", decimal.Zero)

	require.NoError(t, err)
	require.NotNil(t, ventana)
	assert.Equal(t, 30, ventana.DiasPeriodo)
	assert.Equal(t, *fecha(40), ventana.FechaInicio)
	assert.Equal(t, *fecha(10), ventana.FechaFin)
	assert.True(t, tasa.Equal(decimal.NewFromInt(3)), "tasa = %s", tasa)

	// El corte de llegadas antiguas debe quedar 30 días atrás.
	assert.Equal(t, ahoraTest.AddDate(0, 0, -30), compras.hasta)
}

func TestVentaDiaria_ConStockLaVentanaTerminaHoy(t *testing.T) {
	ventas := &ventasFake{ultima: fecha(10), suma: decimal.NewFromInt(120)}
	compras := &comprasFake{llegada: fecha(60)}
	e := NewEstimador(ventas, compras, func() time.Time { return ahoraTest })

	tasa, ventana, err := e.VentaDiaria("649701", decimal.NewFromInt(50))

	require.NoError(t, err)
	require.NotNil(t, ventana)
	assert.Equal(t, 60, ventana.DiasPeriodo)
	assert.Equal(t, ahoraTest, ventana.FechaFin)
	assert.True(t, tasa.Equal(decimal.NewFromInt(2)), "tasa = %s", tasa)
}

func TestVentaDiaria_SinLlegadaAntiguaUsaPrimeraVenta(t *testing.T) {
	// La llegada de hace 15 días no califica como ancla; se cae a la primera
	// venta del histórico.
	ventas := &ventasFake{primera: fecha(20), suma: decimal.NewFromInt(40)}
	compras := &comprasFake{}
	e := NewEstimador(ventas, compras, func() time.Time { return ahoraTest })

	tasa, ventana, err := e.VentaDiaria("X", decimal.NewFromInt(5))

	require.NoError(t, err)
	require.NotNil(t, ventana)
	assert.Equal(t, 20, ventana.DiasPeriodo)
	assert.True(t, tasa.Equal(decimal.NewFromInt(2)), "tasa = %s", tasa)
}

func TestVentaDiaria_SinHistoricoDevuelveCero(t *testing.T) {
	e := NewEstimador(&ventasFake{}, &comprasFake{}, func() time.Time { return ahoraTest })

	tasa, ventana, err := e.VentaDiaria("NUEVO", decimal.Zero)

	require.NoError(t, err)
	assert.Nil(t, ventana)
	assert.True(t, tasa.IsZero())
}

func TestVentaDiaria_SinVentasEnVentanaDevuelveCero(t *testing.T) {
	ventas := &ventasFake{suma: decimal.Zero}
	compras := &comprasFake{llegada: fecha(45)}
	e := NewEstimador(ventas, compras, func() time.Time { return ahoraTest })

	tasa, ventana, err := e.VentaDiaria("649701", decimal.NewFromInt(10))

	require.NoError(t, err)
	assert.Nil(t, ventana)
	assert.True(t, tasa.IsZero())
}

func TestVentaDiaria_VentanaMinimaDeUnDia(t *testing.T) {
	// Llegada y última venta el mismo día: el divisor queda en 1.
	ventas := &ventasFake{ultima: fecha(35), suma: decimal.NewFromInt(7)}
	compras := &comprasFake{llegada: fecha(35)}
	e := NewEstimador(ventas, compras, func() time.Time { return ahoraTest })

	tasa, ventana, err := e.VentaDiaria("649701", decimal.Zero)

	require.NoError(t, err)
	require.NotNil(t, ventana)
	assert.Equal(t, 1, ventana.DiasPeriodo)
	assert.True(t, tasa.Equal(decimal.NewFromInt(7)), "tasa = %s", tasa)
}
