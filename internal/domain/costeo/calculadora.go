// Package costeo implementa el análisis de reposición por SKU: cadena de
// costos de importación FOB → CIF → bodega, rentabilidad en el canal y
// cantidad sugerida de compra a partir del stock proyectado.
package costeo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

var (
	cien          = decimal.NewFromInt(100)
	cbmPorDefecto = decimal.NewFromInt(68)
	horasPorDia   = 24
)

// EnTransito es una partida en camino considerada por el análisis, venga de
// la tabla de tránsito o derivada del workflow (confirmada, fabricada o
// embarcada).
type EnTransito struct {
	SKU          string
	Cantidad     decimal.Decimal
	FechaLlegada time.Time
}

// VentanaVentas describe el período real usado para estimar la venta diaria.
type VentanaVentas struct {
	FechaInicio      time.Time
	FechaFin         time.Time
	DiasPeriodo      int
	UnidadesVendidas decimal.Decimal
}

// Entrada reúne todo lo que el cálculo necesita; la calculadora no toca la
// base de datos.
type Entrada struct {
	SKU         string
	CostoFobRMB decimal.Decimal
	CBM         decimal.Decimal
	StockActual decimal.Decimal
	PrecioVenta decimal.Decimal

	VentaDiaria decimal.Decimal
	Ventana     *VentanaVentas
	Transitos   []EnTransito

	Config entity.Configuracion
	Ahora  time.Time
}

// Desglose expone cada paso intermedio del cálculo para la vista de detalle.
type Desglose struct {
	CostoFobUSD       decimal.Decimal `json:"costoFobUSD"`
	ComisionChinaUSD  decimal.Decimal `json:"comisionChinaUSD"`
	FleteUSD          decimal.Decimal `json:"fleteUSD"`
	SeguroUSD         decimal.Decimal `json:"seguroUSD"`
	ValorCifUSD       decimal.Decimal `json:"valorCifUSD"`
	ValorCifCLP       decimal.Decimal `json:"valorCifCLP"`
	AdValoremCLP      decimal.Decimal `json:"adValoremCLP"`
	IvaCLP            decimal.Decimal `json:"ivaCLP"`
	CostoLogisticoCLP decimal.Decimal `json:"costoLogisticoCLP"`

	ComisionCanalCLP decimal.Decimal `json:"comisionCanalCLP"`
	RecargoCanalCLP  decimal.Decimal `json:"recargoCanalCLP"`

	StockObjetivo           decimal.Decimal `json:"stockObjetivo"`
	StockActual             decimal.Decimal `json:"stockActual"`
	StockEnTransitoQueLlega decimal.Decimal `json:"stockEnTransitoQueLlega"`
	ConsumoDuranteLeadTime  decimal.Decimal `json:"consumoDuranteLeadTime"`
	StockFinalProyectado    decimal.Decimal `json:"stockFinalProyectado"`
	TiempoEntrega           int             `json:"tiempoEntrega"`
	DiasCoberturaLlegada    decimal.Decimal `json:"diasCoberturaLlegada"`

	Ventana VentanaVentas `json:"ventanaVentas"`
}

// Resultado es la salida completa del análisis de un SKU.
type Resultado struct {
	SKU              string          `json:"sku"`
	VentaDiaria      decimal.Decimal `json:"ventaDiaria"`
	EnTransitoTotal  decimal.Decimal `json:"enTransito"`
	CantidadSugerida decimal.Decimal `json:"cantidadSugerida"`

	CostoFinalBodegaCLP decimal.Decimal `json:"costoFinalBodega"`
	CostosVentaCLP      decimal.Decimal `json:"costosVenta"`
	GananciaNetaCLP     decimal.Decimal `json:"gananciaNeta"`
	MargenPct           decimal.Decimal `json:"margen"`

	Desglose Desglose `json:"breakdown"`
}

// Analizar ejecuta el análisis completo de un SKU. Es una función pura:
// siempre devuelve un Resultado numérico, sin importar cuán incompleta venga
// la configuración (divisores en cero se sustituyen por valores seguros).
func Analizar(in Entrada) Resultado {
	cfg := in.Config

	containerCBM := cfg.ContainerCBM
	if containerCBM.IsZero() {
		containerCBM = cbmPorDefecto
	}
	usdToClp := cfg.UsdToClp
	if usdToClp.IsZero() {
		usdToClp = decimal.NewFromInt(1)
	}

	// Cadena FOB → CIF en USD.
	costoFobUSD := in.CostoFobRMB.Mul(cfg.RmbToUsd)
	comisionChinaUSD := costoFobUSD.Mul(cfg.CostosVariablesPct.ComisionChina)
	fobMasComisionUSD := costoFobUSD.Add(comisionChinaUSD)
	fleteUSD := cfg.CostosFijosUSD.FleteMaritimo.Div(containerCBM).Mul(in.CBM)
	seguroUSD := fobMasComisionUSD.Add(fleteUSD).Mul(cfg.CostosVariablesPct.SeguroContenedor)
	valorCifUSD := fobMasComisionUSD.Add(fleteUSD).Add(seguroUSD)

	// Costos fijos del contenedor prorrateados por CBM. El flete marítimo ya
	// se asignó arriba, así que aquí se excluye.
	fijosUSD := cfg.CostosFijosCLP.Total().Div(usdToClp).
		Add(cfg.CostosFijosUSD.TotalSinFlete())
	logisticoUSD := fijosUSD.Div(containerCBM).Mul(in.CBM)

	// Nacionalización en CLP.
	valorCifCLP := valorCifUSD.Mul(usdToClp)
	adValoremCLP := valorCifCLP.Mul(cfg.CostosVariablesPct.DerechosAdValorem)
	ivaCLP := valorCifCLP.Add(adValoremCLP).Mul(cfg.CostosVariablesPct.IVA)
	logisticoCLP := logisticoUSD.Mul(usdToClp)
	costoFinalBodegaCLP := valorCifCLP.Add(adValoremCLP).Add(ivaCLP).Add(logisticoCLP)

	// Costos del canal de venta.
	ml := cfg.MercadoLibre
	comisionCanal := in.PrecioVenta.Mul(ml.ComisionPct)
	var recargoCanal decimal.Decimal
	switch {
	case in.PrecioVenta.GreaterThanOrEqual(ml.EnvioUmbral):
		recargoCanal = ml.CostoEnvio
	case in.PrecioVenta.GreaterThanOrEqual(ml.CargoFijoMedioUmbral):
		recargoCanal = ml.CargoFijoMedio
	case in.PrecioVenta.IsPositive():
		recargoCanal = ml.CargoFijoBajo
	}
	costosVenta := comisionCanal.Add(recargoCanal)
	gananciaNeta := in.PrecioVenta.Sub(costoFinalBodegaCLP).Sub(costosVenta)
	var margen decimal.Decimal
	if in.PrecioVenta.IsPositive() {
		margen = gananciaNeta.Div(in.PrecioVenta).Mul(cien)
	}

	// Proyección de stock al llegar un pedido nuevo. Solo cuentan los
	// tránsitos del mismo SKU que llegarían antes que ese pedido.
	ahora := in.Ahora
	if ahora.IsZero() {
		ahora = time.Now()
	}
	llegadaPedidoNuevo := ahora.Add(time.Duration(cfg.TiempoEntrega*horasPorDia) * time.Hour)
	var transitoQueLlega, transitoTotal decimal.Decimal
	for _, t := range in.Transitos {
		if t.SKU != in.SKU {
			continue
		}
		transitoTotal = transitoTotal.Add(t.Cantidad)
		if t.FechaLlegada.Before(llegadaPedidoNuevo) {
			transitoQueLlega = transitoQueLlega.Add(t.Cantidad)
		}
	}

	consumoLeadTime := in.VentaDiaria.Mul(decimal.NewFromInt(int64(cfg.TiempoEntrega)))
	stockProyectado := in.StockActual.Add(transitoQueLlega).Sub(consumoLeadTime)
	stockObjetivo := in.VentaDiaria.Mul(decimal.NewFromInt(int64(cfg.StockSaludableMinDias)))

	// Un proyectado negativo se trata como cero: el faltante ya se refleja en
	// pedir el stock objetivo completo.
	proyectadoParaCalculo := stockProyectado
	if proyectadoParaCalculo.IsNegative() {
		proyectadoParaCalculo = decimal.Zero
	}
	cantidadSugerida := stockObjetivo.Sub(proyectadoParaCalculo).Round(0)
	if cantidadSugerida.IsNegative() {
		cantidadSugerida = decimal.Zero
	}

	var diasCobertura decimal.Decimal
	if in.VentaDiaria.IsPositive() {
		diasCobertura = stockProyectado.Div(in.VentaDiaria)
	}

	ventana := ventanaEfectiva(in, ahora)

	return Resultado{
		SKU:              in.SKU,
		VentaDiaria:      in.VentaDiaria,
		EnTransitoTotal:  transitoTotal,
		CantidadSugerida: cantidadSugerida,

		CostoFinalBodegaCLP: costoFinalBodegaCLP,
		CostosVentaCLP:      costosVenta,
		GananciaNetaCLP:     gananciaNeta,
		MargenPct:           margen,

		Desglose: Desglose{
			CostoFobUSD:       costoFobUSD,
			ComisionChinaUSD:  comisionChinaUSD,
			FleteUSD:          fleteUSD,
			SeguroUSD:         seguroUSD,
			ValorCifUSD:       valorCifUSD,
			ValorCifCLP:       valorCifCLP,
			AdValoremCLP:      adValoremCLP,
			IvaCLP:            ivaCLP,
			CostoLogisticoCLP: logisticoCLP,

			ComisionCanalCLP: comisionCanal,
			RecargoCanalCLP:  recargoCanal,

			StockObjetivo:           stockObjetivo,
			StockActual:             in.StockActual,
			StockEnTransitoQueLlega: transitoQueLlega,
			ConsumoDuranteLeadTime:  consumoLeadTime,
			StockFinalProyectado:    stockProyectado,
			TiempoEntrega:           cfg.TiempoEntrega,
			DiasCoberturaLlegada:    diasCobertura,

			Ventana: ventana,
		},
	}
}

// ventanaEfectiva usa el período real del estimador si viene informado; si no,
// reconstruye una ventana nominal de 60 días hacia atrás.
func ventanaEfectiva(in Entrada, ahora time.Time) VentanaVentas {
	if in.Ventana != nil && !in.Ventana.FechaInicio.IsZero() && !in.Ventana.FechaFin.IsZero() {
		return *in.Ventana
	}
	const diasNominales = 60
	return VentanaVentas{
		FechaInicio:      ahora.AddDate(0, 0, -diasNominales),
		FechaFin:         ahora,
		DiasPeriodo:      diasNominales,
		UnidadesVendidas: in.VentaDiaria.Mul(decimal.NewFromInt(diasNominales)).Round(0),
	}
}
