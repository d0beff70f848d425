// Package excel adapta excelize a la carga masiva: lectura de hojas como
// matrices de texto crudo y parsing de fechas de celda.
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Lector abre libros XLSX y expone sus hojas como filas de texto crudo. Las
// celdas se piden sin formato para que las fechas lleguen como número de
// serie y los montos sin separadores de miles.
type Lector struct{}

// NewLector construye el lector.
func NewLector() *Lector { return &Lector{} }

// Hojas lee el libro completo y devuelve cada hoja por nombre normalizado
// (NFC, sin espacios en los bordes). Los nombres de hoja de archivos
// generados en macOS suelen venir en NFD y no matchearían de otro modo.
func (l *Lector) Hojas(r io.Reader) (map[string][][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	hojas := make(map[string][][]string)
	for _, nombre := range f.GetSheetList() {
		filas, err := f.GetRows(nombre, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("leer hoja %q: %w", nombre, err)
		}
		for i, fila := range filas {
			for j, celda := range fila {
				filas[i][j] = norm.NFC.String(celda)
			}
		}
		clave := strings.TrimSpace(norm.NFC.String(nombre))
		hojas[clave] = filas
	}
	return hojas, nil
}
