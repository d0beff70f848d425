package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tlt-imports/reposicion-api/internal/application/carga"
	"github.com/tlt-imports/reposicion-api/internal/application/contenedores"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

// Ensure TxRunner implements carga.TxRunner and contenedores.TxRunner.
var _ carga.TxRunner = (*TxRunner)(nil)
var _ contenedores.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCarga inicia una transacción con los repos que reemplaza la carga masiva
// y hace Commit o Rollback. O se reemplazan todas las tablas o ninguna.
func (r *TxRunner) RunCarga(ctx context.Context, fn func(
	ventas repository.VentaRepository,
	compras repository.CompraRepository,
	transitos repository.TransitoRepository,
	stocks repository.StockBodegaRepository,
	packs repository.PackRepository,
	desconsiderados repository.DesconsideradoRepository,
	productos repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ventasRepo := NewVentaRepository(tx)
	comprasRepo := NewCompraRepository(tx)
	transitosRepo := NewTransitoRepository(tx)
	stocksRepo := NewStockBodegaRepository(tx)
	packsRepo := NewPackRepository(tx)
	desconsideradosRepo := NewDesconsideradoRepository(tx)
	productosRepo := NewProductoRepository(tx)

	if err := fn(ventasRepo, comprasRepo, transitosRepo, stocksRepo, packsRepo, desconsideradosRepo, productosRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLlegada inicia una transacción con los repos del procesamiento de
// llegadas de contenedor (compras, stock y cierre de workflow).
func (r *TxRunner) RunLlegada(ctx context.Context, fn func(
	contenedoresRepo repository.ContenedorRepository,
	productos repository.ProductoRepository,
	compras repository.CompraRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	contenedoresRepo := NewContenedorRepository(tx)
	productosRepo := NewProductoRepository(tx)
	comprasRepo := NewCompraRepository(tx)

	if err := fn(contenedoresRepo, productosRepo, comprasRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
