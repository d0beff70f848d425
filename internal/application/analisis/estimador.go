// Package analisis orquesta el análisis de reposición: estima la venta diaria
// desde el histórico, arma el conjunto de tránsitos y ejecuta la calculadora
// de costeo para un SKU o para el catálogo completo.
package analisis

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/costeo"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

// diasCarencia separa las llegadas recientes del ancla de la ventana: una
// compra que llegó hace menos de 30 días distorsionaría la tasa porque el
// stock nuevo todavía no refleja ventas estables.
const diasCarencia = 30

// Estimador calcula la venta diaria de un SKU a partir del histórico de
// ventas y las llegadas reales a bodega.
type Estimador struct {
	ventas  repository.VentaRepository
	compras repository.CompraRepository
	ahora   func() time.Time
}

// NewEstimador construye el estimador. ahora puede ser nil y usa time.Now.
func NewEstimador(ventas repository.VentaRepository, compras repository.CompraRepository, ahora func() time.Time) *Estimador {
	if ahora == nil {
		ahora = time.Now
	}
	return &Estimador{ventas: ventas, compras: compras, ahora: ahora}
}

// VentaDiaria estima la tasa de venta diaria del SKU.
//
// La ventana arranca en la última llegada real con al menos 30 días de
// antigüedad; si no hay llegadas antiguas, en la primera venta registrada.
// Termina hoy, salvo que el stock esté en cero, en cuyo caso termina en la
// última venta (el quiebre de stock no debe diluir la tasa con días sin
// inventario). Sin histórico alguno devuelve tasa 0 y ventana nil.
func (e *Estimador) VentaDiaria(sku string, stockActual decimal.Decimal) (decimal.Decimal, *costeo.VentanaVentas, error) {
	ahora := e.ahora()

	inicio, err := e.inicioVentana(sku, ahora)
	if err != nil {
		return decimal.Zero, nil, err
	}
	if inicio == nil {
		return decimal.Zero, nil, nil
	}

	fin := ahora
	if stockActual.IsZero() {
		ultima, err := e.ventas.UltimaFecha(sku)
		if err != nil {
			return decimal.Zero, nil, fmt.Errorf("última venta de %s: %w", sku, err)
		}
		if ultima != nil {
			fin = *ultima
		}
	}

	dias := diasEntre(*inicio, fin)

	vendidas, err := e.ventas.SumUnidades(sku, *inicio, fin)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("ventas de %s en ventana: %w", sku, err)
	}
	if vendidas.IsZero() {
		return decimal.Zero, nil, nil
	}

	tasa := vendidas.Div(decimal.NewFromInt(int64(dias)))
	return tasa, &costeo.VentanaVentas{
		FechaInicio:      *inicio,
		FechaFin:         fin,
		DiasPeriodo:      dias,
		UnidadesVendidas: vendidas,
	}, nil
}

func (e *Estimador) inicioVentana(sku string, ahora time.Time) (*time.Time, error) {
	corte := ahora.AddDate(0, 0, -diasCarencia)
	llegada, err := e.compras.UltimaLlegadaHasta(sku, corte)
	if err != nil {
		return nil, fmt.Errorf("llegadas de %s: %w", sku, err)
	}
	if llegada != nil {
		return llegada, nil
	}
	primera, err := e.ventas.PrimeraFecha(sku)
	if err != nil {
		return nil, fmt.Errorf("primera venta de %s: %w", sku, err)
	}
	return primera, nil
}

// diasEntre redondea hacia arriba la diferencia en días, con mínimo 1 para
// que la tasa nunca divida por cero.
func diasEntre(inicio, fin time.Time) int {
	horas := fin.Sub(inicio).Hours()
	dias := int(math.Ceil(horas / 24))
	if dias < 1 {
		return 1
	}
	return dias
}
