package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación del puerto CompraRepository sobre PostgreSQL (usable con pool o tx).
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// Create registra una llegada individual (manual o de contenedor).
func (r *CompraRepo) Create(c *entity.Compra) error {
	query := `
		INSERT INTO compras (id, sku, fecha_llegada_real, cantidad, origen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.SKU, c.FechaLlegadaReal, c.Cantidad, c.Origen, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCompraDuplicada
		}
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// ReplaceAll vacía el histórico de llegadas y lo reemplaza por las filas dadas.
// Debe ejecutarse dentro de una transacción (TxRunner).
func (r *CompraRepo) ReplaceAll(compras []*entity.Compra) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM compras`); err != nil {
		return fmt.Errorf("vaciar compras: %w", err)
	}
	batch := &pgx.Batch{}
	for _, c := range compras {
		batch.Queue(`
			INSERT INTO compras (id, sku, fecha_llegada_real, cantidad, origen, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, c.SKU, c.FechaLlegadaReal, c.Cantidad, c.Origen, c.CreatedAt,
		)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insertar compras: %w", err)
	}
	return nil
}

// ListBySKU devuelve las llegadas del SKU, más reciente primero.
func (r *CompraRepo) ListBySKU(sku string, limit, offset int) ([]*entity.Compra, error) {
	query := `
		SELECT id, sku, fecha_llegada_real, cantidad, origen, created_at
		FROM compras WHERE sku = $1 ORDER BY fecha_llegada_real DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, sku, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Compra
	for rows.Next() {
		var c entity.Compra
		if err := rows.Scan(&c.ID, &c.SKU, &c.FechaLlegadaReal, &c.Cantidad, &c.Origen, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UltimaLlegadaHasta devuelve la llegada real más reciente del SKU con fecha
// menor o igual a la indicada, o nil si no hay ninguna.
func (r *CompraRepo) UltimaLlegadaHasta(sku string, hasta time.Time) (*time.Time, error) {
	var fecha time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT fecha_llegada_real FROM compras
		 WHERE sku = $1 AND fecha_llegada_real <= $2
		 ORDER BY fecha_llegada_real DESC LIMIT 1`,
		sku, hasta,
	).Scan(&fecha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("última llegada: %w", err)
	}
	return &fecha, nil
}
