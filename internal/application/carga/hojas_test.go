package carga

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ahoraCarga = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fechaISO(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func filaVenta(empresa, canal, fecha, sku, unidades, mlc, desc, precio string) []string {
	fila := make([]string, 24)
	fila[0] = empresa
	fila[1] = canal
	fila[5] = fecha
	fila[10] = unidades
	fila[19] = sku
	fila[20] = mlc
	fila[21] = desc
	fila[23] = precio
	return fila
}

func TestParseVentas_FiltraEmpresaYCanal(t *testing.T) {
	filas := [][]string{
		{"encabezado"},
		filaVenta("TLT", "MELI", "2025-03-01", "649701", "3", "MLC1", "Producto", "19990"),
		filaVenta("OTRA", "MELI", "2025-03-01", "649701", "5", "", "", ""),
		filaVenta("TLT", "FALABELLA", "2025-03-01", "649701", "7", "", "", ""),
		filaVenta("tlt", "meli", "2025-03-02", "649702", "2", "", "", ""),
	}

	ventas, saltadas := parseVentas(filas, fechaISO, ahoraCarga)

	require.Len(t, ventas, 2, "solo TLT por MELI, sin distinguir mayúsculas")
	assert.Equal(t, 0, saltadas)
	assert.Equal(t, "649701", ventas[0].SKU)
	assert.Equal(t, "649702", ventas[1].SKU)
}

func TestParseVentas_ConsolidaDuplicadosSumandoUnidades(t *testing.T) {
	filas := [][]string{
		{"encabezado"},
		filaVenta("TLT", "MELI", "2025-03-01", "649701", "3", "MLC1", "Producto", "19990"),
		filaVenta("TLT", "MELI", "2025-03-01", "649701", "5", "MLC1", "Producto", "19990"),
		filaVenta("TLT", "MELI", "2025-03-02", "649701", "4", "MLC1", "Producto", "19990"),
	}

	ventas, saltadas := parseVentas(filas, fechaISO, ahoraCarga)

	require.Len(t, ventas, 2)
	assert.Equal(t, 0, saltadas)
	assert.True(t, ventas[0].Unidades.Equal(decimal.NewFromInt(8)),
		"mismo día consolidado: unidades = %s", ventas[0].Unidades)
	assert.True(t, ventas[1].Unidades.Equal(decimal.NewFromInt(4)))
}

func TestParseVentas_SaltaFilasInvalidas(t *testing.T) {
	filas := [][]string{
		{"encabezado"},
		filaVenta("TLT", "MELI", "2025-03-01", "", "3", "", "", ""),
		filaVenta("TLT", "MELI", "sin fecha", "649701", "3", "", "", ""),
		filaVenta("TLT", "MELI", "2025-03-01", "649701", "0", "", "", ""),
		filaVenta("TLT", "MELI", "2025-03-01", "649701", "2", "", "", ""),
	}

	ventas, saltadas := parseVentas(filas, fechaISO, ahoraCarga)

	require.Len(t, ventas, 1)
	assert.Equal(t, 3, saltadas)
}

func TestParseVentas_FilasCortasNoRevientan(t *testing.T) {
	filas := [][]string{
		{"encabezado"},
		{"TLT", "MELI"},
	}

	ventas, saltadas := parseVentas(filas, fechaISO, ahoraCarga)

	assert.Empty(t, ventas)
	assert.Equal(t, 1, saltadas)
}

func filaCompra(sku, cantidad, fecha string) []string {
	return []string{sku, cantidad, "", fecha}
}

func TestParseCompras_DeduplicaConservandoLaPrimera(t *testing.T) {
	filas := [][]string{
		{"encabezado"},
		filaCompra("649701", "100", "2025-02-01"),
		filaCompra("649701", "250", "2025-02-01"),
		filaCompra("649701", "80", "2025-04-01"),
	}

	compras, saltadas := parseCompras(filas, fechaISO, ahoraCarga)

	require.Len(t, compras, 2)
	assert.Equal(t, 0, saltadas)
	assert.True(t, compras[0].Cantidad.Equal(decimal.NewFromInt(100)),
		"ante duplicados gana la primera fila")
	assert.Equal(t, "excel", compras[0].Origen)
}

func TestParseCompras_SinFechaSeSalta(t *testing.T) {
	filas := [][]string{
		{"encabezado"},
		filaCompra("649701", "100", ""),
		filaCompra("", "100", "2025-02-01"),
	}

	compras, saltadas := parseCompras(filas, fechaISO, ahoraCarga)

	assert.Empty(t, compras)
	assert.Equal(t, 2, saltadas)
}

func TestParseStock_BodegasEnColumnasFijas(t *testing.T) {
	fila := make([]string, 10)
	fila[0] = "649701"
	fila[1] = "Silla plegable"
	fila[2] = "10"
	fila[3] = "20"
	fila[4] = "0"
	fila[5] = "5"
	fila[7] = "30"
	fila[9] = "15"
	filas := [][]string{{"encabezado"}, fila}

	stocks, saltadas := parseStock(filas, ahoraCarga)

	require.Len(t, stocks, 1)
	assert.Equal(t, 0, saltadas)
	assert.True(t, stocks[0].Total().Equal(decimal.NewFromInt(80)),
		"total = %s", stocks[0].Total())
	assert.Equal(t, "Silla plegable", stocks[0].Descripcion)
}

func TestParseTransito_SkuYUnidadesEnColumnasFijas(t *testing.T) {
	fila := make([]string, 8)
	fila[3] = "649701"
	fila[7] = "400"
	vacia := make([]string, 8)
	vacia[3] = "649702"
	filas := [][]string{{"encabezado"}, fila, vacia}

	transitos, saltadas := parseTransito(filas, ahoraCarga)

	require.Len(t, transitos, 1)
	assert.Equal(t, 1, saltadas, "sin unidades positivas la fila se descarta")
	assert.Equal(t, "en_transito", transitos[0].Estado)
	assert.Equal(t, ahoraCarga, transitos[0].FechaLlegada)
}

func TestParsePacks_CantidadPorDefectoUno(t *testing.T) {
	filas := [][]string{
		{"encabezado"},
		{"PACK-1", "649701", "2"},
		{"PACK-1", "649702", ""},
		{"PACK-2", "", "3"},
	}

	packs, saltadas := parsePacks(filas)

	require.Len(t, packs, 2)
	assert.Equal(t, 1, saltadas)
	assert.True(t, packs[0].Cantidad.Equal(decimal.NewFromInt(2)))
	assert.True(t, packs[1].Cantidad.Equal(decimal.NewFromInt(1)))
}

func TestParseDesconsiderar_Deduplica(t *testing.T) {
	filas := [][]string{
		{"encabezado"},
		{"649701"},
		{" 649701 "},
		{"649702"},
		{""},
	}

	skus := parseDesconsiderar(filas)

	assert.Equal(t, []string{"649701", "649702"}, skus)
}
