package entity

import "github.com/shopspring/decimal"

// Pack mapea un SKU de pack a uno de sus componentes con su multiplicador.
// Un pack con dos componentes ocupa dos filas.
type Pack struct {
	ID            string
	SKUPack       string
	SKUComponente string
	Cantidad      decimal.Decimal
}
