package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

var _ repository.StockBodegaRepository = (*StockBodegaRepo)(nil)

// StockBodegaRepo implementación del puerto StockBodegaRepository sobre PostgreSQL (usable con pool o tx).
type StockBodegaRepo struct {
	q Querier
}

// NewStockBodegaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockBodegaRepository(q Querier) *StockBodegaRepo {
	return &StockBodegaRepo{q: q}
}

const columnasStock = `id, sku, descripcion, bodega_1, bodega_2, bodega_3, bodega_4, bodega_5, bodega_6, created_at`

// ReplaceAll vacía la foto de bodegas y la reemplaza por las filas dadas.
// Debe ejecutarse dentro de una transacción (TxRunner).
func (r *StockBodegaRepo) ReplaceAll(stocks []*entity.Stock) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_bodegas`); err != nil {
		return fmt.Errorf("vaciar stock_bodegas: %w", err)
	}
	batch := &pgx.Batch{}
	for _, s := range stocks {
		batch.Queue(`
			INSERT INTO stock_bodegas (`+columnasStock+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			s.ID, s.SKU, s.Descripcion, s.Bodega1, s.Bodega2, s.Bodega3, s.Bodega4, s.Bodega5, s.Bodega6, s.CreatedAt,
		)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insertar stock_bodegas: %w", err)
	}
	return nil
}

// GetBySKU devuelve la foto de bodegas de un SKU.
func (r *StockBodegaRepo) GetBySKU(sku string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(),
		`SELECT `+columnasStock+` FROM stock_bodegas WHERE sku = $1`, sku,
	).Scan(&s.ID, &s.SKU, &s.Descripcion, &s.Bodega1, &s.Bodega2, &s.Bodega3,
		&s.Bodega4, &s.Bodega5, &s.Bodega6, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// List devuelve la foto completa con paginación.
func (r *StockBodegaRepo) List(limit, offset int) ([]*entity.Stock, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+columnasStock+` FROM stock_bodegas ORDER BY sku LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.SKU, &s.Descripcion, &s.Bodega1, &s.Bodega2, &s.Bodega3,
			&s.Bodega4, &s.Bodega5, &s.Bodega6, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
