package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuracion agrupa los parámetros globales del negocio: ventanas de
// stock, tipos de cambio, costos de importación y comisiones del canal.
// Los campos en cero se consideran valores reales; los valores por defecto
// se aplican una sola vez al crear la fila, nunca al leerla.
type Configuracion struct {
	TiempoEntrega             int `json:"tiempoEntrega"`             // días puerta a puerta
	StockSaludableMinDias     int `json:"stockSaludableMinDias"`
	StockSaludableMaxDias     int `json:"stockSaludableMaxDias"`
	TiempoPromedioFabricacion int `json:"tiempoPromedioFabricacion"` // días
	DiasUmbralNuevaReposicion int `json:"diasUmbralNuevaReposicion"`

	RmbToUsd decimal.Decimal `json:"rmbToUsd"`
	UsdToClp decimal.Decimal `json:"usdToClp"`

	ContainerCBM decimal.Decimal `json:"containerCBM"`

	CostosFijosUSD     CostosFijosUSD     `json:"costosFijosUSD"`
	CostosFijosCLP     CostosFijosCLP     `json:"costosFijosCLP"`
	CostosVariablesPct CostosVariablesPct `json:"costosVariablesPct"`
	MercadoLibre       MercadoLibre       `json:"mercadoLibre"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// CostosFijosUSD son los costos fijos por contenedor expresados en dólares.
type CostosFijosUSD struct {
	EnvioOtraBodega    decimal.Decimal `json:"envioOtraBodega"`
	FleteMaritimo      decimal.Decimal `json:"fleteMaritimo"`
	THCD               decimal.Decimal `json:"thcd"`
	BL                 decimal.Decimal `json:"bl"`
	GateInComodato     decimal.Decimal `json:"gateInComodato"`
	AperturaManifiesto decimal.Decimal `json:"aperturaManifiesto"`
	Honorarios         decimal.Decimal `json:"honorarios"`
}

// Total suma todos los costos fijos USD, incluido el flete marítimo.
func (c CostosFijosUSD) Total() decimal.Decimal {
	return c.EnvioOtraBodega.Add(c.FleteMaritimo).Add(c.THCD).Add(c.BL).
		Add(c.GateInComodato).Add(c.AperturaManifiesto).Add(c.Honorarios)
}

// TotalSinFlete suma los costos fijos USD excluyendo el flete marítimo, que
// se prorratea aparte por CBM.
func (c CostosFijosUSD) TotalSinFlete() decimal.Decimal {
	return c.Total().Sub(c.FleteMaritimo)
}

// CostosFijosCLP son los costos fijos por contenedor expresados en pesos.
type CostosFijosCLP struct {
	ComisionBancaria     decimal.Decimal `json:"comisionBancaria"`
	Peonetas             decimal.Decimal `json:"peonetas"`
	GastosDespacho       decimal.Decimal `json:"gastosDespacho"`
	MovilizacionNacional decimal.Decimal `json:"movilizacionNacional"`
	MovilizacionPuerto   decimal.Decimal `json:"movilizacionPuerto"`
	Aforo                decimal.Decimal `json:"aforo"`
}

// Total suma todos los costos fijos CLP.
func (c CostosFijosCLP) Total() decimal.Decimal {
	return c.ComisionBancaria.Add(c.Peonetas).Add(c.GastosDespacho).
		Add(c.MovilizacionNacional).Add(c.MovilizacionPuerto).Add(c.Aforo)
}

// CostosVariablesPct son porcentajes aplicados sobre valores de la cadena CIF,
// expresados como fracción (0.03 = 3%).
type CostosVariablesPct struct {
	ComisionChina     decimal.Decimal `json:"comisionChina"`
	SeguroContenedor  decimal.Decimal `json:"seguroContenedor"`
	DerechosAdValorem decimal.Decimal `json:"derechosAdValorem"`
	IVA               decimal.Decimal `json:"iva"`
}

// MercadoLibre parametriza la comisión y los recargos del canal de venta.
// Los umbrales y montos están en CLP.
type MercadoLibre struct {
	ComisionPct          decimal.Decimal `json:"comisionPct"`
	EnvioUmbral          decimal.Decimal `json:"envioUmbral"`
	CostoEnvio           decimal.Decimal `json:"costoEnvio"`
	CargoFijoMedioUmbral decimal.Decimal `json:"cargoFijoMedioUmbral"`
	CargoFijoMedio       decimal.Decimal `json:"cargoFijoMedio"`
	CargoFijoBajo        decimal.Decimal `json:"cargoFijoBajo"`
}

// ConfiguracionPorDefecto devuelve la configuración inicial con la que se
// siembra la fila única al arrancar por primera vez.
func ConfiguracionPorDefecto() Configuracion {
	return Configuracion{
		TiempoEntrega:             90,
		StockSaludableMinDias:     90,
		StockSaludableMaxDias:     120,
		TiempoPromedioFabricacion: 30,
		DiasUmbralNuevaReposicion: 30,
		RmbToUsd:                  decimal.NewFromFloat(0.14),
		UsdToClp:                  decimal.NewFromInt(980),
		ContainerCBM:              decimal.NewFromInt(68),
		CostosFijosUSD: CostosFijosUSD{
			EnvioOtraBodega:    decimal.NewFromInt(1400),
			FleteMaritimo:      decimal.NewFromInt(3000),
			THCD:               decimal.NewFromInt(150),
			BL:                 decimal.NewFromInt(60),
			GateInComodato:     decimal.NewFromInt(420),
			AperturaManifiesto: decimal.NewFromInt(55),
			Honorarios:         decimal.NewFromInt(578),
		},
		CostosFijosCLP: CostosFijosCLP{
			ComisionBancaria:     decimal.NewFromInt(578000),
			Peonetas:             decimal.NewFromInt(120000),
			GastosDespacho:       decimal.NewFromInt(45000),
			MovilizacionNacional: decimal.NewFromInt(330000),
			MovilizacionPuerto:   decimal.NewFromInt(35700),
			Aforo:                decimal.NewFromInt(1500000),
		},
		CostosVariablesPct: CostosVariablesPct{
			ComisionChina:     decimal.NewFromFloat(0.03),
			SeguroContenedor:  decimal.NewFromFloat(0.02),
			DerechosAdValorem: decimal.Zero,
			IVA:               decimal.NewFromFloat(0.19),
		},
		MercadoLibre: MercadoLibre{
			ComisionPct:          decimal.NewFromFloat(0.16),
			EnvioUmbral:          decimal.NewFromInt(19990),
			CostoEnvio:           decimal.NewFromInt(3500),
			CargoFijoMedioUmbral: decimal.NewFromInt(9990),
			CargoFijoMedio:       decimal.NewFromInt(1000),
			CargoFijoBajo:        decimal.NewFromInt(700),
		},
	}
}
