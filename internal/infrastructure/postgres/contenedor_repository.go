package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

var _ repository.ContenedorRepository = (*ContenedorRepo)(nil)

// ContenedorRepo implementación del puerto ContenedorRepository sobre PostgreSQL (usable con pool o tx).
type ContenedorRepo struct {
	q Querier
}

// NewContenedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContenedorRepository(q Querier) *ContenedorRepo {
	return &ContenedorRepo{q: q}
}

const columnasContenedor = `
	id, numero, naviera, fecha_salida, fecha_llegada_estimada, fecha_llegada_real,
	estado, procesado, notas, created_at, updated_at`

func escanearContenedor(row filaScan) (*entity.Contenedor, error) {
	var c entity.Contenedor
	var estado string
	err := row.Scan(&c.ID, &c.Numero, &c.Naviera, &c.FechaSalida, &c.FechaLlegadaEstimada,
		&c.FechaLlegadaReal, &estado, &c.Procesado, &c.Notas, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Estado = entity.EstadoContenedor(estado)
	return &c, nil
}

// Create registra un contenedor. El número es único.
func (r *ContenedorRepo) Create(c *entity.Contenedor) error {
	query := `
		INSERT INTO contenedores (id, numero, naviera, fecha_salida, fecha_llegada_estimada,
			fecha_llegada_real, estado, procesado, notas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Numero, c.Naviera, c.FechaSalida, c.FechaLlegadaEstimada,
		c.FechaLlegadaReal, string(c.Estado), c.Procesado, c.Notas, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrContenedorDuplicado
		}
		return fmt.Errorf("insert contenedor: %w", err)
	}
	return nil
}

// GetByID obtiene un contenedor por ID.
func (r *ContenedorRepo) GetByID(id string) (*entity.Contenedor, error) {
	c, err := escanearContenedor(r.q.QueryRow(context.Background(),
		`SELECT `+columnasContenedor+` FROM contenedores WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contenedor: %w", err)
	}
	return c, nil
}

// GetByNumero obtiene un contenedor por su número.
func (r *ContenedorRepo) GetByNumero(numero string) (*entity.Contenedor, error) {
	c, err := escanearContenedor(r.q.QueryRow(context.Background(),
		`SELECT `+columnasContenedor+` FROM contenedores WHERE numero = $1`, numero))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contenedor by numero: %w", err)
	}
	return c, nil
}

// Update actualiza el contenedor completo.
func (r *ContenedorRepo) Update(c *entity.Contenedor) error {
	query := `
		UPDATE contenedores SET numero = $2, naviera = $3, fecha_salida = $4,
			fecha_llegada_estimada = $5, fecha_llegada_real = $6, estado = $7,
			procesado = $8, notas = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Numero, c.Naviera, c.FechaSalida, c.FechaLlegadaEstimada,
		c.FechaLlegadaReal, string(c.Estado), c.Procesado, c.Notas, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrContenedorDuplicado
		}
		return fmt.Errorf("update contenedor: %w", err)
	}
	return nil
}

// List devuelve los contenedores, más reciente primero.
func (r *ContenedorRepo) List(limit, offset int) ([]*entity.Contenedor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+columnasContenedor+` FROM contenedores ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contenedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contenedor
	for rows.Next() {
		c, err := escanearContenedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contenedor: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un contenedor por ID.
func (r *ContenedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contenedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contenedor: %w", err)
	}
	return nil
}
