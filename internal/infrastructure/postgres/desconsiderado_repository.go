package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

var _ repository.DesconsideradoRepository = (*DesconsideradoRepo)(nil)

// DesconsideradoRepo implementación del puerto DesconsideradoRepository sobre PostgreSQL (usable con pool o tx).
type DesconsideradoRepo struct {
	q Querier
}

// NewDesconsideradoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDesconsideradoRepository(q Querier) *DesconsideradoRepo {
	return &DesconsideradoRepo{q: q}
}

// ReplaceAll vacía la lista de excluidos y la reemplaza por los SKU dados.
// Debe ejecutarse dentro de una transacción (TxRunner).
func (r *DesconsideradoRepo) ReplaceAll(skus []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM desconsiderados`); err != nil {
		return fmt.Errorf("vaciar desconsiderados: %w", err)
	}
	batch := &pgx.Batch{}
	for _, sku := range skus {
		batch.Queue(`INSERT INTO desconsiderados (sku) VALUES ($1) ON CONFLICT (sku) DO NOTHING`, sku)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insertar desconsiderados: %w", err)
	}
	return nil
}

// List devuelve todos los SKU excluidos del análisis.
func (r *DesconsideradoRepo) List() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT sku FROM desconsiderados ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("list desconsiderados: %w", err)
	}
	defer rows.Close()
	var skus []string
	for rows.Next() {
		var sku string
		if err := rows.Scan(&sku); err != nil {
			return nil, fmt.Errorf("scan desconsiderado: %w", err)
		}
		skus = append(skus, sku)
	}
	return skus, rows.Err()
}

// Add excluye un SKU del análisis. Es idempotente.
func (r *DesconsideradoRepo) Add(sku string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO desconsiderados (sku) VALUES ($1) ON CONFLICT (sku) DO NOTHING`, sku)
	if err != nil {
		return fmt.Errorf("insert desconsiderado: %w", err)
	}
	return nil
}

// Remove reincorpora un SKU al análisis.
func (r *DesconsideradoRepo) Remove(sku string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM desconsiderados WHERE sku = $1`, sku)
	if err != nil {
		return fmt.Errorf("delete desconsiderado: %w", err)
	}
	return nil
}

// Contains indica si el SKU está excluido.
func (r *DesconsideradoRepo) Contains(sku string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM desconsiderados WHERE sku = $1)`, sku,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("contains desconsiderado: %w", err)
	}
	return existe, nil
}
