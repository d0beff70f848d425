package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

var _ repository.CotizacionRepository = (*CotizacionRepo)(nil)

// CotizacionRepo implementación del puerto CotizacionRepository sobre PostgreSQL (usable con pool o tx).
type CotizacionRepo struct {
	q Querier
}

// NewCotizacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCotizacionRepository(q Querier) *CotizacionRepo {
	return &CotizacionRepo{q: q}
}

const columnasCotizacion = `
	id, sku, proveedor, precio_unitario, moneda, unidades_por_caja, cbm_por_caja,
	dias_produccion, notas, seleccionada, created_at`

func escanearCotizacion(row filaScan) (*entity.Cotizacion, error) {
	var c entity.Cotizacion
	err := row.Scan(&c.ID, &c.SKU, &c.Proveedor, &c.PrecioUnitario, &c.Moneda,
		&c.UnidadesPorCaja, &c.CBMPorCaja, &c.DiasProduccion, &c.Notas, &c.Seleccionada, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create registra una oferta de proveedor.
func (r *CotizacionRepo) Create(c *entity.Cotizacion) error {
	query := `
		INSERT INTO cotizaciones (id, sku, proveedor, precio_unitario, moneda, unidades_por_caja,
			cbm_por_caja, dias_produccion, notas, seleccionada, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.SKU, c.Proveedor, c.PrecioUnitario, c.Moneda, c.UnidadesPorCaja,
		c.CBMPorCaja, c.DiasProduccion, c.Notas, c.Seleccionada, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cotizacion: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID.
func (r *CotizacionRepo) GetByID(id string) (*entity.Cotizacion, error) {
	c, err := escanearCotizacion(r.q.QueryRow(context.Background(),
		`SELECT `+columnasCotizacion+` FROM cotizaciones WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cotizacion: %w", err)
	}
	return c, nil
}

// ListBySKU devuelve las ofertas registradas para un SKU, más reciente primero.
func (r *CotizacionRepo) ListBySKU(sku string) ([]*entity.Cotizacion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+columnasCotizacion+` FROM cotizaciones WHERE sku = $1 ORDER BY created_at DESC`, sku)
	if err != nil {
		return nil, fmt.Errorf("list cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cotizacion
	for rows.Next() {
		c, err := escanearCotizacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cotizacion: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza una oferta (notas, selección).
func (r *CotizacionRepo) Update(c *entity.Cotizacion) error {
	query := `
		UPDATE cotizaciones SET proveedor = $2, precio_unitario = $3, moneda = $4,
			unidades_por_caja = $5, cbm_por_caja = $6, dias_produccion = $7,
			notas = $8, seleccionada = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Proveedor, c.PrecioUnitario, c.Moneda, c.UnidadesPorCaja,
		c.CBMPorCaja, c.DiasProduccion, c.Notas, c.Seleccionada,
	)
	if err != nil {
		return fmt.Errorf("update cotizacion: %w", err)
	}
	return nil
}

// Delete elimina una oferta por ID.
func (r *CotizacionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cotizaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cotizacion: %w", err)
	}
	return nil
}
