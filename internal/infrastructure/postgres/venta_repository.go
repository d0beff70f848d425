package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// ReplaceAll vacía el histórico de ventas y lo reemplaza por las filas dadas.
// Debe ejecutarse dentro de una transacción (TxRunner).
func (r *VentaRepo) ReplaceAll(ventas []*entity.Venta) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM ventas`); err != nil {
		return fmt.Errorf("vaciar ventas: %w", err)
	}
	batch := &pgx.Batch{}
	for _, v := range ventas {
		batch.Queue(`
			INSERT INTO ventas (id, empresa, canal, sku, fecha, unidades, mlc, descripcion, precio, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			v.ID, v.Empresa, v.Canal, v.SKU, v.Fecha, v.Unidades, v.MLC, v.Descripcion, v.Precio, v.CreatedAt,
		)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insertar ventas: %w", err)
	}
	return nil
}

// ListBySKU devuelve el histórico de ventas de un SKU, más reciente primero.
func (r *VentaRepo) ListBySKU(sku string, limit, offset int) ([]*entity.Venta, error) {
	query := `
		SELECT id, empresa, canal, sku, fecha, unidades, mlc, descripcion, precio, created_at
		FROM ventas WHERE sku = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, sku, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.Empresa, &v.Canal, &v.SKU, &v.Fecha, &v.Unidades,
			&v.MLC, &v.Descripcion, &v.Precio, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// SumUnidades suma las unidades vendidas del SKU en [desde, hasta].
func (r *VentaRepo) SumUnidades(sku string, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(unidades), 0) FROM ventas WHERE sku = $1 AND fecha BETWEEN $2 AND $3`,
		sku, desde, hasta,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum unidades: %w", err)
	}
	return total, nil
}

// PrimeraFecha devuelve la fecha de la primera venta del SKU, o nil si no hay histórico.
func (r *VentaRepo) PrimeraFecha(sku string) (*time.Time, error) {
	var fecha *time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT MIN(fecha) FROM ventas WHERE sku = $1`, sku,
	).Scan(&fecha)
	if err != nil {
		return nil, fmt.Errorf("primera fecha de venta: %w", err)
	}
	return fecha, nil
}

// UltimaFecha devuelve la fecha de la última venta del SKU, o nil si no hay histórico.
func (r *VentaRepo) UltimaFecha(sku string) (*time.Time, error) {
	var fecha *time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT MAX(fecha) FROM ventas WHERE sku = $1`, sku,
	).Scan(&fecha)
	if err != nil {
		return nil, fmt.Errorf("última fecha de venta: %w", err)
	}
	return fecha, nil
}
