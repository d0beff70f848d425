package analisis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/costeo"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

// ResultadoProducto es una línea del análisis: el producto con su cálculo
// completo. ReposicionNueva marca las líneas adicionales creadas en esta
// misma corrida.
type ResultadoProducto struct {
	Producto        *entity.Producto
	Analisis        costeo.Resultado
	ReposicionNueva bool
}

// Usecase orquesta el análisis de reposición sobre el catálogo.
type Usecase struct {
	productos repository.ProductoRepository
	transitos repository.TransitoRepository
	config    repository.ConfiguracionRepository
	estimador *Estimador
	ahora     func() time.Time
}

// NewUsecase construye el caso de uso. ahora puede ser nil y usa time.Now.
func NewUsecase(
	productos repository.ProductoRepository,
	transitos repository.TransitoRepository,
	config repository.ConfiguracionRepository,
	estimador *Estimador,
	ahora func() time.Time,
) *Usecase {
	if ahora == nil {
		ahora = time.Now
	}
	return &Usecase{
		productos: productos,
		transitos: transitos,
		config:    config,
		estimador: estimador,
		ahora:     ahora,
	}
}

// AnalizarSKU analiza un solo SKU con un precio de venta opcional. A
// diferencia del análisis por catálogo no salta productos desconsiderados:
// la vista de detalle siempre responde.
func (uc *Usecase) AnalizarSKU(sku string, precioVenta decimal.Decimal) (*ResultadoProducto, *entity.Configuracion, error) {
	cfg, err := uc.config.Get()
	if err != nil {
		return nil, nil, err
	}
	p, err := uc.productos.GetBySKU(sku)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, domain.ErrProductoNotFound
	}
	transitos, err := uc.armarTransitos(*cfg)
	if err != nil {
		return nil, nil, err
	}

	res, err := uc.analizarProducto(p, *cfg, transitos, precioVenta)
	if err != nil {
		return nil, nil, err
	}
	return res, cfg, nil
}

// AnalizarCatalogo corre el análisis completo: estima la venta diaria de cada
// producto activo, calcula su reposición y aplica los ajustes automáticos de
// estado. Devuelve también las líneas de reposición adicional que haya creado.
func (uc *Usecase) AnalizarCatalogo() ([]*ResultadoProducto, *entity.Configuracion, error) {
	cfg, err := uc.config.Get()
	if err != nil {
		return nil, nil, err
	}
	transitos, err := uc.armarTransitos(*cfg)
	if err != nil {
		return nil, nil, err
	}
	productos, err := uc.productos.List(repository.FiltroProductos{}, 0, 0)
	if err != nil {
		return nil, nil, err
	}

	var resultados []*ResultadoProducto
	for _, p := range productos {
		if p.Desconsiderado || p.WorkflowCompleted {
			continue
		}
		var precio decimal.Decimal
		if p.AnalysisDetails != nil {
			precio = p.AnalysisDetails.PrecioVenta
		}
		res, err := uc.analizarProducto(p, *cfg, transitos, precio)
		if err != nil {
			return nil, nil, err
		}

		adicional, err := uc.ajustarEstado(p, res, *cfg)
		if err != nil {
			return nil, nil, err
		}
		resultados = append(resultados, res)
		if adicional != nil {
			// La línea nueva hereda la tasa del SKU original; con su propio
			// SKU sintético no tendría histórico.
			ventana := res.Analisis.Desglose.Ventana
			resultados = append(resultados, &ResultadoProducto{
				Producto: adicional,
				Analisis: costeo.Analizar(costeo.Entrada{
					SKU:         adicional.SKU,
					CostoFobRMB: adicional.CostoFobRMB,
					CBM:         adicional.CBM,
					StockActual: adicional.StockActual,
					VentaDiaria: res.Analisis.VentaDiaria,
					Ventana:     &ventana,
					Transitos:   transitos,
					Config:      *cfg,
					Ahora:       uc.ahora(),
				}),
				ReposicionNueva: true,
			})
		}
	}
	return resultados, cfg, nil
}

func (uc *Usecase) analizarProducto(p *entity.Producto, cfg entity.Configuracion, transitos []costeo.EnTransito, precioVenta decimal.Decimal) (*ResultadoProducto, error) {
	tasa, ventana, err := uc.estimador.VentaDiaria(p.SKU, p.StockActual)
	if err != nil {
		return nil, err
	}
	res := costeo.Analizar(costeo.Entrada{
		SKU:         p.SKU,
		CostoFobRMB: p.CostoFobRMB,
		CBM:         p.CBM,
		StockActual: p.StockActual,
		PrecioVenta: precioVenta,
		VentaDiaria: tasa,
		Ventana:     ventana,
		Transitos:   transitos,
		Config:      cfg,
		Ahora:       uc.ahora(),
	})
	return &ResultadoProducto{Producto: p, Analisis: res}, nil
}

// armarTransitos reúne todo lo que viene en camino: la tabla de tránsito
// cargada por Excel más lo que el workflow tiene confirmado, fabricado o
// embarcado.
func (uc *Usecase) armarTransitos(cfg entity.Configuracion) ([]costeo.EnTransito, error) {
	ahora := uc.ahora()

	filas, err := uc.transitos.ListAll()
	if err != nil {
		return nil, err
	}
	transitos := make([]costeo.EnTransito, 0, len(filas))
	for _, t := range filas {
		transitos = append(transitos, costeo.EnTransito{
			SKU:          t.SKU,
			Cantidad:     t.Unidades,
			FechaLlegada: t.FechaLlegada,
		})
	}

	enCamino, err := uc.productos.ListByStatus(
		workflow.CompraConfirmada, workflow.Fabricado, workflow.Embarcado,
	)
	if err != nil {
		return nil, err
	}
	for _, p := range enCamino {
		var cantidad decimal.Decimal
		llegada := ahora

		switch p.Status {
		case workflow.CompraConfirmada:
			if p.PurchaseDetails != nil {
				cantidad = p.PurchaseDetails.CantidadConfirmada
				if p.PurchaseDetails.FechaEntregaEstimada != nil {
					llegada = *p.PurchaseDetails.FechaEntregaEstimada
				} else {
					llegada = ahora.AddDate(0, 0, cfg.TiempoEntrega)
				}
			}
		case workflow.Fabricado:
			if p.ManufacturingDetails != nil {
				cantidad = p.ManufacturingDetails.CantidadFabricada
			}
			if cantidad.IsZero() && p.PurchaseDetails != nil {
				cantidad = p.PurchaseDetails.CantidadConfirmada
			}
			llegada = ahora.AddDate(0, 0, cfg.TiempoPromedioFabricacion+cfg.TiempoEntrega)
		case workflow.Embarcado:
			if p.ShippingDetails != nil {
				cantidad = p.ShippingDetails.CantidadEmbarcada
				if p.ShippingDetails.ETA != nil {
					llegada = *p.ShippingDetails.ETA
				} else if p.FechaLlegadaEstimada != nil {
					llegada = *p.FechaLlegadaEstimada
				}
			}
		}
		if cantidad.IsZero() {
			continue
		}
		transitos = append(transitos, costeo.EnTransito{
			SKU:          p.SKU,
			Cantidad:     cantidad,
			FechaLlegada: llegada,
		})
	}
	return transitos, nil
}

// ajustarEstado aplica los movimientos automáticos del análisis por catálogo:
// sin cantidad sugerida el producto vuelve a SIN reposición, con cantidad
// sugerida sale de ella, y si la cobertura proyectada cae bajo el umbral
// mientras el SKU ya avanza por el workflow se crea una línea de reposición
// adicional. Devuelve la línea nueva cuando corresponde.
func (uc *Usecase) ajustarEstado(p *entity.Producto, res *ResultadoProducto, cfg entity.Configuracion) (*entity.Producto, error) {
	sugerida := res.Analisis.CantidadSugerida
	ahora := uc.ahora()

	switch {
	case sugerida.IsZero() && p.Status != workflow.SinReposicion && p.Status != workflow.Embarcado:
		p.Status = workflow.SinReposicion
		p.UpdatedAt = ahora
		if err := uc.productos.Update(p); err != nil {
			return nil, fmt.Errorf("reclasificar %s: %w", p.SKU, err)
		}

	case sugerida.IsPositive() && p.Status == workflow.SinReposicion:
		p.Status = workflow.NecesitaReposicion
		p.UpdatedAt = ahora
		if err := uc.productos.Update(p); err != nil {
			return nil, fmt.Errorf("reclasificar %s: %w", p.SKU, err)
		}

	case sugerida.IsPositive() &&
		res.Analisis.Desglose.DiasCoberturaLlegada.LessThan(decimal.NewFromInt(int64(cfg.DiasUmbralNuevaReposicion))) &&
		enMedioDelWorkflow(p.Status):
		return uc.crearReposicionAdicional(p, ahora)
	}
	return nil, nil
}

func enMedioDelWorkflow(e workflow.Estado) bool {
	switch e {
	case workflow.SinReposicion, workflow.NecesitaReposicion, workflow.Embarcado:
		return false
	}
	return true
}

func (uc *Usecase) crearReposicionAdicional(original *entity.Producto, ahora time.Time) (*entity.Producto, error) {
	nuevo := &entity.Producto{
		ID:                  uuid.New().String(),
		SKU:                 fmt.Sprintf("%s-REP-%d", original.SKU, ahora.UnixMilli()),
		Descripcion:         original.Descripcion + " (Reposición Adicional)",
		Link:                original.Link,
		CostoFobRMB:         original.CostoFobRMB,
		CBM:                 original.CBM,
		StockActual:         decimal.Zero,
		Status:              workflow.NecesitaReposicion,
		SKUOriginal:         original.SKU,
		ReposicionAdicional: true,
		CreatedAt:           ahora,
		UpdatedAt:           ahora,
	}
	if err := uc.productos.Create(nuevo); err != nil {
		return nil, fmt.Errorf("crear reposición adicional de %s: %w", original.SKU, err)
	}
	return nuevo, nil
}
