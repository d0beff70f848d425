package costeo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

func entradaBase() Entrada {
	return Entrada{
		SKU:         "649701",
		CostoFobRMB: decimal.NewFromFloat(35.5),
		CBM:         decimal.NewFromFloat(0.05),
		StockActual: decimal.NewFromInt(270),
		VentaDiaria: decimal.NewFromInt(3),
		Config:      entity.ConfiguracionPorDefecto(),
		Ahora:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAnalizar_CantidadSugeridaSinTransito(t *testing.T) {
	// Con venta diaria 3, objetivo de 90 días y lead time de 90 días el
	// consumo agota exactamente el stock, por lo que se sugiere el objetivo
	// completo.
	r := Analizar(entradaBase())

	assert.True(t, r.CantidadSugerida.Equal(decimal.NewFromInt(270)),
		"cantidadSugerida = %s", r.CantidadSugerida)
	assert.True(t, r.Desglose.StockFinalProyectado.IsZero(),
		"stockFinalProyectado = %s", r.Desglose.StockFinalProyectado)
	assert.True(t, r.Desglose.StockObjetivo.Equal(decimal.NewFromInt(270)))
}

func TestAnalizar_TransitoDentroDeVentanaReduceSugerida(t *testing.T) {
	in := entradaBase()
	in.Transitos = []EnTransito{
		{SKU: "649701", Cantidad: decimal.NewFromInt(100), FechaLlegada: in.Ahora.AddDate(0, 0, 30)},
		{SKU: "649701", Cantidad: decimal.NewFromInt(50), FechaLlegada: in.Ahora.AddDate(0, 0, 120)},
		{SKU: "OTRO", Cantidad: decimal.NewFromInt(999), FechaLlegada: in.Ahora.AddDate(0, 0, 10)},
	}

	r := Analizar(in)

	// Solo cuentan las 100 unidades que llegan dentro del lead time de 90
	// días; las 50 tardías suman al total en tránsito pero no a la proyección.
	assert.True(t, r.Desglose.StockEnTransitoQueLlega.Equal(decimal.NewFromInt(100)))
	assert.True(t, r.EnTransitoTotal.Equal(decimal.NewFromInt(150)))
	assert.True(t, r.CantidadSugerida.Equal(decimal.NewFromInt(170)),
		"cantidadSugerida = %s", r.CantidadSugerida)
}

func TestAnalizar_SugeridaNuncaNegativa(t *testing.T) {
	in := entradaBase()
	in.StockActual = decimal.NewFromInt(10000)

	r := Analizar(in)

	assert.True(t, r.CantidadSugerida.IsZero(), "cantidadSugerida = %s", r.CantidadSugerida)
	assert.True(t, r.Desglose.DiasCoberturaLlegada.IsPositive())
}

func TestAnalizar_CostosDeVentaPorTramo(t *testing.T) {
	casos := []struct {
		nombre  string
		precio  int64
		recargo int64
	}{
		{"sobre umbral de envío", 29990, 3500},
		{"tramo medio", 9990, 1000},
		{"tramo bajo", 500, 700},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := entradaBase()
			in.PrecioVenta = decimal.NewFromInt(c.precio)

			r := Analizar(in)

			esperado := decimal.NewFromInt(c.precio).
				Mul(decimal.NewFromFloat(0.16)).
				Add(decimal.NewFromInt(c.recargo))
			assert.True(t, r.CostosVentaCLP.Equal(esperado),
				"costosVenta = %s, esperado %s", r.CostosVentaCLP, esperado)
		})
	}
}

func TestAnalizar_PrecioCeroSinRecargoNiMargen(t *testing.T) {
	r := Analizar(entradaBase())

	assert.True(t, r.CostosVentaCLP.IsZero())
	assert.True(t, r.MargenPct.IsZero())
	assert.True(t, r.GananciaNetaCLP.IsNegative(), "con precio 0 la ganancia es el costo en negativo")
}

func TestAnalizar_CadenaDeCostos(t *testing.T) {
	in := entradaBase()
	r := Analizar(in)

	// FOB 35.5 RMB a 0.14 = 4.97 USD; comisión China 3%.
	require.True(t, r.Desglose.CostoFobUSD.Equal(decimal.NewFromFloat(4.97)),
		"costoFobUSD = %s", r.Desglose.CostoFobUSD)
	assert.True(t, r.Desglose.ComisionChinaUSD.Equal(decimal.NewFromFloat(0.1491)))

	// Flete: 3000 USD por contenedor de 68 CBM, prorrateado a 0.05 CBM.
	esperadoFlete := decimal.NewFromInt(3000).
		Div(decimal.NewFromInt(68)).
		Mul(decimal.NewFromFloat(0.05))
	assert.True(t, r.Desglose.FleteUSD.Equal(esperadoFlete))

	// CIF debe ser la suma de sus componentes y el costo final siempre
	// mayor que el CIF nacionalizado.
	cif := r.Desglose.CostoFobUSD.
		Add(r.Desglose.ComisionChinaUSD).
		Add(r.Desglose.FleteUSD).
		Add(r.Desglose.SeguroUSD)
	assert.True(t, r.Desglose.ValorCifUSD.Equal(cif))
	assert.True(t, r.CostoFinalBodegaCLP.GreaterThan(r.Desglose.ValorCifCLP))
}

func TestAnalizar_ConfiguracionVaciaNoRevienta(t *testing.T) {
	in := Entrada{
		SKU:         "X",
		CostoFobRMB: decimal.NewFromInt(10),
		CBM:         decimal.NewFromFloat(0.2),
		StockActual: decimal.NewFromInt(5),
		VentaDiaria: decimal.Zero,
		Config:      entity.Configuracion{},
	}

	r := Analizar(in)

	assert.True(t, r.CantidadSugerida.IsZero())
	assert.True(t, r.Desglose.DiasCoberturaLlegada.IsZero(),
		"sin venta diaria la cobertura se informa como 0")
	assert.True(t, r.CostoFinalBodegaCLP.IsZero())
}

func TestAnalizar_VentanaNominalCuandoNoHayFechas(t *testing.T) {
	in := entradaBase()
	r := Analizar(in)

	assert.Equal(t, 60, r.Desglose.Ventana.DiasPeriodo)
	assert.Equal(t, in.Ahora, r.Desglose.Ventana.FechaFin)
	assert.True(t, r.Desglose.Ventana.UnidadesVendidas.Equal(decimal.NewFromInt(180)))
}

func TestAnalizar_VentanaRealSeRespeta(t *testing.T) {
	in := entradaBase()
	in.Ventana = &VentanaVentas{
		FechaInicio:      in.Ahora.AddDate(0, 0, -40),
		FechaFin:         in.Ahora.AddDate(0, 0, -10),
		DiasPeriodo:      30,
		UnidadesVendidas: decimal.NewFromInt(90),
	}

	r := Analizar(in)

	assert.Equal(t, 30, r.Desglose.Ventana.DiasPeriodo)
	assert.True(t, r.Desglose.Ventana.UnidadesVendidas.Equal(decimal.NewFromInt(90)))
}
