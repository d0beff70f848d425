package carga

import (
	"context"
	"io"

	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

// Almacen abstrae el bucket donde el panel deja el Excel subido.
type Almacen interface {
	Subir(ctx context.Context, ruta string, r io.Reader, tamano int64, contentType string) (string, error)
	Descargar(ctx context.Context, ruta string) (io.ReadCloser, error)
	Eliminar(ctx context.Context, ruta string) error
}

// LectorHojas abstrae la lectura del libro: cada hoja como filas de texto crudo.
type LectorHojas interface {
	Hojas(r io.Reader) (map[string][][]string, error)
}

// TxRunner ejecuta el reemplazo de todas las tablas de la carga dentro de una
// única transacción: o se reemplaza todo el histórico o no se toca nada.
type TxRunner interface {
	RunCarga(ctx context.Context, fn func(
		ventas repository.VentaRepository,
		compras repository.CompraRepository,
		transitos repository.TransitoRepository,
		stocks repository.StockBodegaRepository,
		packs repository.PackRepository,
		desconsiderados repository.DesconsideradoRepository,
		productos repository.ProductoRepository,
	) error) error
}
