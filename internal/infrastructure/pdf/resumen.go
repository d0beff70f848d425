// Package pdf genera el resumen imprimible del análisis de reposición: una
// tabla por SKU con tasa de venta, proyección de stock y cantidad sugerida.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tlt-imports/reposicion-api/internal/application/analisis"
)

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// GeneradorResumen produce el PDF del análisis con Maroto v2.
type GeneradorResumen struct{}

// NewGeneradorResumen construye el generador.
func NewGeneradorResumen() *GeneradorResumen { return &GeneradorResumen{} }

// Generar arma el PDF y devuelve sus bytes.
func (g *GeneradorResumen) Generar(resultados []*analisis.ResultadoProducto, generado time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Análisis de Reposición", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(encabezado(generado, len(resultados)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(filaTituloTabla())
	for _, r := range resultados {
		m.AddRows(filaResultado(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func encabezado(generado time.Time, total int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Análisis de Reposición TLT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New(fmt.Sprintf("%d SKU analizados", total), props.Text{
				Size: 9, Top: 9, Color: colorGris,
			}),
		),
		col.New(4).Add(
			text.New(generado.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 2, Align: align.Right, Color: colorGris,
			}),
		),
	)
}

func filaTituloTabla() core.Row {
	titulos := []struct {
		texto string
		ancho int
	}{
		{"SKU", 2}, {"Descripción", 3}, {"V. diaria", 1}, {"Stock", 1},
		{"Tránsito", 1}, {"Proyectado", 1}, {"Sugerido", 1}, {"Cobertura", 1}, {"Margen %", 1},
	}
	cols := make([]core.Col, 0, len(titulos))
	for _, t := range titulos {
		cols = append(cols, col.New(t.ancho).Add(
			text.New(t.texto, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimario}),
		))
	}
	return row.New(6).Add(cols...)
}

func filaResultado(r *analisis.ResultadoProducto) core.Row {
	a := r.Analisis
	d := a.Desglose

	sku := r.Producto.SKU
	if r.ReposicionNueva {
		sku += " *"
	}
	colorSugerido := colorGris
	estiloSugerido := fontstyle.Normal
	if a.CantidadSugerida.IsPositive() {
		colorSugerido = colorAlerta
		estiloSugerido = fontstyle.Bold
	}

	return row.New(5).Add(
		col.New(2).Add(text.New(sku, props.Text{Size: 7})),
		col.New(3).Add(text.New(recortar(r.Producto.Descripcion, 40), props.Text{Size: 7})),
		col.New(1).Add(text.New(a.VentaDiaria.StringFixed(2), props.Text{Size: 7, Align: align.Right})),
		col.New(1).Add(text.New(d.StockActual.StringFixed(0), props.Text{Size: 7, Align: align.Right})),
		col.New(1).Add(text.New(a.EnTransitoTotal.StringFixed(0), props.Text{Size: 7, Align: align.Right})),
		col.New(1).Add(text.New(d.StockFinalProyectado.StringFixed(0), props.Text{Size: 7, Align: align.Right})),
		col.New(1).Add(text.New(a.CantidadSugerida.StringFixed(0), props.Text{
			Size: 7, Align: align.Right, Color: colorSugerido, Style: estiloSugerido,
		})),
		col.New(1).Add(text.New(d.DiasCoberturaLlegada.StringFixed(0), props.Text{Size: 7, Align: align.Right})),
		col.New(1).Add(text.New(a.MargenPct.StringFixed(1), props.Text{Size: 7, Align: align.Right})),
	)
}

func recortar(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
