// Package carga implementa la ingesta masiva del Excel operacional: seis
// hojas con formatos fijos que reemplazan por completo el histórico de
// ventas, compras, stock, tránsito, packs y exclusiones.
package carga

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// Nombres de hoja esperados en el libro. Vienen así del Excel operacional,
// con mayúsculas inconsistentes incluidas.
const (
	HojaVentas        = "ventas"
	HojaStock         = "Stock"
	HojaTransito      = "transito china"
	HojaCompras       = "compras"
	HojaPacks         = "Packs"
	HojaDesconsiderar = "desconsiderar"
)

// ParserFecha interpreta el valor crudo de una celda como fecha.
type ParserFecha func(string) *time.Time

// celda devuelve la columna i recortada, o vacío si la fila es corta.
func celda(fila []string, i int) string {
	if i >= len(fila) {
		return ""
	}
	return strings.TrimSpace(fila[i])
}

// numero interpreta la columna i como número; celdas vacías o no numéricas
// valen cero.
func numero(fila []string, i int) decimal.Decimal {
	s := celda(fila, i)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseVentas procesa la hoja de ventas: solo filas de la empresa TLT por el
// canal MELI, consolidando duplicados de (empresa, canal, fecha, sku) con la
// suma de unidades. Devuelve además cuántas filas del canal se descartaron
// por datos inválidos.
func parseVentas(filas [][]string, fecha ParserFecha, ahora time.Time) (ventas []*entity.Venta, saltadas int) {
	indice := make(map[string]*entity.Venta)

	for _, fila := range filas[min(1, len(filas)):] {
		empresa := celda(fila, 0)
		canal := celda(fila, 1)
		if !strings.EqualFold(empresa, "TLT") || !strings.EqualFold(canal, "MELI") {
			continue
		}

		sku := celda(fila, 19)
		unidades := numero(fila, 10)
		f := fecha(celda(fila, 5))
		if sku == "" || !unidades.IsPositive() || f == nil {
			saltadas++
			continue
		}

		clave := fmt.Sprintf("%s|%s|%s|%s", empresa, canal, f.Format("2006-01-02"), sku)
		if existente, ok := indice[clave]; ok {
			existente.Unidades = existente.Unidades.Add(unidades)
			continue
		}
		v := &entity.Venta{
			ID:          uuid.New().String(),
			Empresa:     empresa,
			Canal:       canal,
			SKU:         sku,
			Fecha:       *f,
			Unidades:    unidades,
			MLC:         celda(fila, 20),
			Descripcion: celda(fila, 21),
			Precio:      numero(fila, 23),
			CreatedAt:   ahora,
		}
		indice[clave] = v
		ventas = append(ventas, v)
	}
	return ventas, saltadas
}

// parseCompras procesa la hoja de compras deduplicando por (sku, fecha); ante
// duplicados se conserva la primera fila.
func parseCompras(filas [][]string, fecha ParserFecha, ahora time.Time) (compras []*entity.Compra, saltadas int) {
	vistas := make(map[string]struct{})

	for _, fila := range filas[min(1, len(filas)):] {
		sku := celda(fila, 0)
		f := fecha(celda(fila, 3))
		if sku == "" || f == nil {
			if sku != "" || celda(fila, 3) != "" {
				saltadas++
			}
			continue
		}

		clave := sku + "|" + f.Format("2006-01-02")
		if _, ok := vistas[clave]; ok {
			continue
		}
		vistas[clave] = struct{}{}
		compras = append(compras, &entity.Compra{
			ID:               uuid.New().String(),
			SKU:              sku,
			FechaLlegadaReal: *f,
			Cantidad:         numero(fila, 1),
			Origen:           "excel",
			CreatedAt:        ahora,
		})
	}
	return compras, saltadas
}

// parseStock procesa la foto de inventario. Las bodegas vienen en columnas
// fijas no contiguas del reporte.
func parseStock(filas [][]string, ahora time.Time) (stocks []*entity.Stock, saltadas int) {
	for _, fila := range filas[min(1, len(filas)):] {
		sku := celda(fila, 0)
		if sku == "" {
			saltadas++
			continue
		}
		stocks = append(stocks, &entity.Stock{
			ID:          uuid.New().String(),
			SKU:         sku,
			Descripcion: celda(fila, 1),
			Bodega1:     numero(fila, 2),
			Bodega2:     numero(fila, 3),
			Bodega3:     numero(fila, 4),
			Bodega4:     numero(fila, 5),
			Bodega5:     numero(fila, 7),
			Bodega6:     numero(fila, 9),
			CreatedAt:   ahora,
		})
	}
	return stocks, saltadas
}

// parseTransito procesa la hoja de tránsito desde China. La hoja no trae
// fecha de llegada, así que toda fila queda fechada al momento de la carga.
func parseTransito(filas [][]string, ahora time.Time) (transitos []*entity.Transito, saltadas int) {
	for _, fila := range filas[min(1, len(filas)):] {
		sku := celda(fila, 3)
		unidades := numero(fila, 7)
		if sku == "" || !unidades.IsPositive() {
			saltadas++
			continue
		}
		transitos = append(transitos, &entity.Transito{
			ID:           uuid.New().String(),
			SKU:          sku,
			Unidades:     unidades,
			Estado:       "en_transito",
			FechaLlegada: ahora,
			CreatedAt:    ahora,
		})
	}
	return transitos, saltadas
}

// parsePacks procesa la composición de packs; sin cantidad explícita el
// componente cuenta una vez.
func parsePacks(filas [][]string) (packs []*entity.Pack, saltadas int) {
	for _, fila := range filas[min(1, len(filas)):] {
		skuPack := celda(fila, 0)
		skuComp := celda(fila, 1)
		if skuPack == "" || skuComp == "" {
			saltadas++
			continue
		}
		cantidad := numero(fila, 2)
		if cantidad.IsZero() {
			cantidad = decimal.NewFromInt(1)
		}
		packs = append(packs, &entity.Pack{
			ID:            uuid.New().String(),
			SKUPack:       skuPack,
			SKUComponente: skuComp,
			Cantidad:      cantidad,
		})
	}
	return packs, saltadas
}

// parseDesconsiderar procesa la lista de SKU excluidos del análisis.
func parseDesconsiderar(filas [][]string) (skus []string) {
	vistos := make(map[string]struct{})
	for _, fila := range filas[min(1, len(filas)):] {
		sku := celda(fila, 0)
		if sku == "" {
			continue
		}
		if _, ok := vistos[sku]; ok {
			continue
		}
		vistos[sku] = struct{}{}
		skus = append(skus, sku)
	}
	return skus
}
