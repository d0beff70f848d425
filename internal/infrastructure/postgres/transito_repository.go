package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

var _ repository.TransitoRepository = (*TransitoRepo)(nil)

// TransitoRepo implementación del puerto TransitoRepository sobre PostgreSQL (usable con pool o tx).
type TransitoRepo struct {
	q Querier
}

// NewTransitoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransitoRepository(q Querier) *TransitoRepo {
	return &TransitoRepo{q: q}
}

// ReplaceAll vacía la tabla de tránsito y la reemplaza por las filas dadas.
// Debe ejecutarse dentro de una transacción (TxRunner).
func (r *TransitoRepo) ReplaceAll(transitos []*entity.Transito) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM transitos`); err != nil {
		return fmt.Errorf("vaciar transitos: %w", err)
	}
	batch := &pgx.Batch{}
	for _, t := range transitos {
		batch.Queue(`
			INSERT INTO transitos (id, sku, unidades, estado, fecha_llegada, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			t.ID, t.SKU, t.Unidades, t.Estado, t.FechaLlegada, t.CreatedAt,
		)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insertar transitos: %w", err)
	}
	return nil
}

// ListAll devuelve todas las unidades en tránsito cargadas por Excel.
func (r *TransitoRepo) ListAll() ([]*entity.Transito, error) {
	return r.listar(`SELECT id, sku, unidades, estado, fecha_llegada, created_at FROM transitos ORDER BY sku`)
}

// ListBySKU devuelve las unidades en tránsito de un SKU.
func (r *TransitoRepo) ListBySKU(sku string) ([]*entity.Transito, error) {
	return r.listar(`SELECT id, sku, unidades, estado, fecha_llegada, created_at FROM transitos WHERE sku = $1`, sku)
}

func (r *TransitoRepo) listar(query string, args ...any) ([]*entity.Transito, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transitos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transito
	for rows.Next() {
		var t entity.Transito
		if err := rows.Scan(&t.ID, &t.SKU, &t.Unidades, &t.Estado, &t.FechaLlegada, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transito: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
