package excel

import (
	"strconv"
	"strings"
	"time"
)

// Base del calendario de Excel: días transcurridos entre 1900-01-00 y la
// época Unix.
const serialEpoca = 25569

var formatosFecha = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"1/2/06 15:04",
}

// ParseFecha interpreta el valor crudo de una celda como fecha. Acepta el
// número de serie de Excel o un texto en los formatos habituales; devuelve la
// fecha truncada a día en UTC, o nil si no se pudo interpretar.
func ParseFecha(valor string) *time.Time {
	s := strings.TrimSpace(valor)
	if s == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		segundos := (serial - serialEpoca) * 86400
		t := time.Unix(int64(segundos), 0).UTC()
		return truncarADia(t)
	}

	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return truncarADia(t.UTC())
		}
	}
	return nil
}

func truncarADia(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
