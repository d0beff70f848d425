package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

// querierEspia captura el SQL y los argumentos de la última consulta y
// devuelve un resultado vacío.
type querierEspia struct {
	sql  string
	args []any
}

func (q *querierEspia) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *querierEspia) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql = sql
	q.args = args
	return filasVacias{}, nil
}

func (q *querierEspia) QueryRow(context.Context, string, ...any) pgx.Row       { return nil }
func (q *querierEspia) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }

type filasVacias struct{}

func (filasVacias) Close()                                       {}
func (filasVacias) Err() error                                   { return nil }
func (filasVacias) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (filasVacias) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (filasVacias) Next() bool                                   { return false }
func (filasVacias) Scan(...any) error                            { return nil }
func (filasVacias) Values() ([]any, error)                       { return nil, nil }
func (filasVacias) RawValues() [][]byte                          { return nil }
func (filasVacias) Conn() *pgx.Conn                              { return nil }

func TestList_SinLimiteTraeElCatalogoCompleto(t *testing.T) {
	espia := &querierEspia{}
	repo := NewProductoRepository(espia)

	_, err := repo.List(repository.FiltroProductos{}, 0, 0)

	require.NoError(t, err)
	assert.NotContains(t, espia.sql, "LIMIT", "sin límite no debe paginarse el catálogo")
	assert.NotContains(t, espia.sql, "OFFSET")
	assert.Contains(t, espia.sql, "NOT workflow_completed")
	assert.Empty(t, espia.args)
}

func TestList_ConLimitePagina(t *testing.T) {
	espia := &querierEspia{}
	repo := NewProductoRepository(espia)

	_, err := repo.List(repository.FiltroProductos{IncluirCompletados: true}, 50, 100)

	require.NoError(t, err)
	assert.Contains(t, espia.sql, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{50, 100}, espia.args)
}
