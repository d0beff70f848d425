package repository

import "github.com/tlt-imports/reposicion-api/internal/domain/entity"

// StockBodegaRepository define el puerto de persistencia para la foto de
// inventario por bodega (DIP).
type StockBodegaRepository interface {
	ReplaceAll(stocks []*entity.Stock) error
	GetBySKU(sku string) (*entity.Stock, error)
	List(limit, offset int) ([]*entity.Stock, error)
}
