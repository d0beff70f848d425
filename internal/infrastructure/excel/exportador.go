package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/analisis"
)

// Exportador genera el libro XLSX con el resultado del análisis, para que el
// equipo trabaje la orden de compra fuera del panel.
type Exportador struct{}

// NewExportador construye el exportador.
func NewExportador() *Exportador { return &Exportador{} }

var columnasExport = []string{
	"SKU", "Descripción", "Estado", "Venta diaria", "Stock actual",
	"En tránsito", "Stock proyectado", "Cantidad sugerida",
	"Cobertura (días)", "Costo bodega CLP", "Ganancia neta CLP", "Margen %",
}

// Exportar arma el libro con una hoja de resultados y devuelve sus bytes.
func (e *Exportador) Exportar(resultados []*analisis.ResultadoProducto, generado time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const hoja = "analisis"
	f.SetSheetName("Sheet1", hoja)

	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("exportar: estilo: %w", err)
	}

	for i, titulo := range columnasExport {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(hoja, celda, titulo); err != nil {
			return nil, fmt.Errorf("exportar: encabezado: %w", err)
		}
	}
	fin, _ := excelize.CoordinatesToCellName(len(columnasExport), 1)
	_ = f.SetCellStyle(hoja, "A1", fin, negrita)

	for i, r := range resultados {
		a := r.Analisis
		d := a.Desglose
		valores := []interface{}{
			r.Producto.SKU,
			r.Producto.Descripcion,
			string(r.Producto.Status),
			a.VentaDiaria.InexactFloat64(),
			d.StockActual.InexactFloat64(),
			a.EnTransitoTotal.InexactFloat64(),
			d.StockFinalProyectado.InexactFloat64(),
			a.CantidadSugerida.InexactFloat64(),
			d.DiasCoberturaLlegada.InexactFloat64(),
			a.CostoFinalBodegaCLP.InexactFloat64(),
			a.GananciaNetaCLP.InexactFloat64(),
			a.MargenPct.InexactFloat64(),
		}
		for j, v := range valores {
			celda, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(hoja, celda, v); err != nil {
				return nil, fmt.Errorf("exportar: fila %d: %w", i+2, err)
			}
		}
	}

	comentario := fmt.Sprintf("Generado %s", generado.Format("2006-01-02 15:04"))
	_ = f.SetCellValue(hoja, "N1", comentario)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("exportar: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
