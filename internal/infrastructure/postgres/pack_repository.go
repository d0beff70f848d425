package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

var _ repository.PackRepository = (*PackRepo)(nil)

// PackRepo implementación del puerto PackRepository sobre PostgreSQL (usable con pool o tx).
type PackRepo struct {
	q Querier
}

// NewPackRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackRepository(q Querier) *PackRepo {
	return &PackRepo{q: q}
}

// ReplaceAll vacía la composición de packs y la reemplaza por las filas dadas.
// Debe ejecutarse dentro de una transacción (TxRunner).
func (r *PackRepo) ReplaceAll(packs []*entity.Pack) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM packs`); err != nil {
		return fmt.Errorf("vaciar packs: %w", err)
	}
	batch := &pgx.Batch{}
	for _, p := range packs {
		batch.Queue(`
			INSERT INTO packs (id, sku_pack, sku_componente, cantidad)
			VALUES ($1, $2, $3, $4)`,
			p.ID, p.SKUPack, p.SKUComponente, p.Cantidad,
		)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insertar packs: %w", err)
	}
	return nil
}

// ListByPack devuelve los componentes de un pack.
func (r *PackRepo) ListByPack(skuPack string) ([]*entity.Pack, error) {
	return r.listar(`SELECT id, sku_pack, sku_componente, cantidad FROM packs WHERE sku_pack = $1`, skuPack)
}

// ListAll devuelve la composición completa.
func (r *PackRepo) ListAll() ([]*entity.Pack, error) {
	return r.listar(`SELECT id, sku_pack, sku_componente, cantidad FROM packs ORDER BY sku_pack`)
}

func (r *PackRepo) listar(query string, args ...any) ([]*entity.Pack, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list packs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pack
	for rows.Next() {
		var p entity.Pack
		if err := rows.Scan(&p.ID, &p.SKUPack, &p.SKUComponente, &p.Cantidad); err != nil {
			return nil, fmt.Errorf("scan pack: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
