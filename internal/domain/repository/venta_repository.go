package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para el histórico de
// ventas (DIP). La carga masiva reemplaza la tabla completa.
type VentaRepository interface {
	ReplaceAll(ventas []*entity.Venta) error
	ListBySKU(sku string, limit, offset int) ([]*entity.Venta, error)
	// SumUnidades suma las unidades vendidas del SKU en [desde, hasta].
	SumUnidades(sku string, desde, hasta time.Time) (decimal.Decimal, error)
	// PrimeraFecha devuelve la fecha de la primera venta del SKU, o nil si
	// no hay histórico.
	PrimeraFecha(sku string) (*time.Time, error)
	// UltimaFecha devuelve la fecha de la última venta del SKU, o nil si no
	// hay histórico.
	UltimaFecha(sku string) (*time.Time, error)
}
