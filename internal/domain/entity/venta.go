package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta es una línea del histórico de ventas diarias por SKU.
// La carga masiva deduplica por (Empresa, Canal, Fecha, SKU) sumando unidades,
// por lo que aquí cada fila representa el total del día para esa combinación.
type Venta struct {
	ID          string
	Empresa     string
	Canal       string
	SKU         string
	Fecha       time.Time
	Unidades    decimal.Decimal
	MLC         string
	Descripcion string
	Precio      decimal.Decimal
	CreatedAt   time.Time
}
