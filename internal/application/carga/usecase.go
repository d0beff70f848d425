package carga

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/pkg/logger"
)

// Usecase procesa un libro Excel completo: descarga del bucket, parsing de
// hojas en paralelo y reemplazo transaccional de las tablas.
type Usecase struct {
	almacen Almacen
	lector  LectorHojas
	tx      TxRunner
	fecha   ParserFecha
	ahora   func() time.Time
	log     *logger.Logger
}

// NewUsecase construye el caso de uso. ahora puede ser nil y usa time.Now.
func NewUsecase(almacen Almacen, lector LectorHojas, tx TxRunner, fecha ParserFecha, ahora func() time.Time, log *logger.Logger) *Usecase {
	if ahora == nil {
		ahora = time.Now
	}
	return &Usecase{almacen: almacen, lector: lector, tx: tx, fecha: fecha, ahora: ahora, log: log}
}

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Subir guarda el libro recibido en el bucket bajo cargas/ con un nombre
// único y devuelve la ruta que luego se pasa a Procesar.
func (uc *Usecase) Subir(ctx context.Context, nombre string, r io.Reader, tamano int64) (string, error) {
	nombre = path.Base(strings.TrimSpace(nombre))
	if nombre == "." || nombre == "/" || nombre == "" {
		nombre = "carga.xlsx"
	}
	ruta := fmt.Sprintf("cargas/%d-%s", uc.ahora().UnixNano(), nombre)
	guardada, err := uc.almacen.Subir(ctx, ruta, r, tamano, contentTypeXLSX)
	if err != nil {
		return "", fmt.Errorf("subir %s: %w", ruta, err)
	}
	return guardada, nil
}

// resultadoHojas acumula lo parseado de cada hoja antes de tocar la base.
type resultadoHojas struct {
	ventas    []*entity.Venta
	compras   []*entity.Compra
	stocks    []*entity.Stock
	transitos []*entity.Transito
	packs     []*entity.Pack
	excluidos []string

	resumen dto.CargaResponse
}

// Procesar descarga el archivo, parsea todas las hojas presentes y reemplaza
// el contenido de sus tablas en una sola transacción. Si cualquier hoja o
// reemplazo falla, la base queda como estaba. El archivo se elimina del
// bucket solo tras confirmar.
func (uc *Usecase) Procesar(ctx context.Context, ruta string) (*dto.CargaResponse, error) {
	rc, err := uc.almacen.Descargar(ctx, ruta)
	if err != nil {
		return nil, fmt.Errorf("descargar %s: %w", ruta, err)
	}
	hojas, err := uc.leerHojas(rc)
	if err != nil {
		return nil, err
	}

	res, err := uc.parsearHojas(ctx, hojas)
	if err != nil {
		return nil, err
	}

	if err := uc.reemplazarTablas(ctx, res); err != nil {
		return nil, err
	}

	if err := uc.almacen.Eliminar(ctx, ruta); err != nil {
		uc.log.Warn().Err(err).Str("ruta", ruta).Msg("no se pudo eliminar el archivo procesado")
	}
	return &res.resumen, nil
}

func (uc *Usecase) leerHojas(rc io.ReadCloser) (map[string][][]string, error) {
	defer rc.Close()
	hojas, err := uc.lector.Hojas(rc)
	if err != nil {
		return nil, fmt.Errorf("leer libro: %w", err)
	}
	return hojas, nil
}

// parsearHojas corre los parsers de las hojas presentes en paralelo; cada
// parser escribe en su propio campo del resultado, así que no comparten
// estado.
func (uc *Usecase) parsearHojas(ctx context.Context, hojas map[string][][]string) (*resultadoHojas, error) {
	res := &resultadoHojas{}
	ahora := uc.ahora()

	g, _ := errgroup.WithContext(ctx)

	if filas, ok := hojas[HojaVentas]; ok {
		res.resumen.Ventas.Procesada = true
		g.Go(func() error {
			res.ventas, res.resumen.Ventas.Saltadas = parseVentas(filas, uc.fecha, ahora)
			res.resumen.Ventas.Cargadas = len(res.ventas)
			return nil
		})
	}
	if filas, ok := hojas[HojaCompras]; ok {
		res.resumen.Compras.Procesada = true
		g.Go(func() error {
			res.compras, res.resumen.Compras.Saltadas = parseCompras(filas, uc.fecha, ahora)
			res.resumen.Compras.Cargadas = len(res.compras)
			return nil
		})
	}
	if filas, ok := hojas[HojaStock]; ok {
		res.resumen.Stock.Procesada = true
		g.Go(func() error {
			res.stocks, res.resumen.Stock.Saltadas = parseStock(filas, ahora)
			res.resumen.Stock.Cargadas = len(res.stocks)
			return nil
		})
	}
	if filas, ok := hojas[HojaTransito]; ok {
		res.resumen.Transito.Procesada = true
		g.Go(func() error {
			res.transitos, res.resumen.Transito.Saltadas = parseTransito(filas, ahora)
			res.resumen.Transito.Cargadas = len(res.transitos)
			return nil
		})
	}
	if filas, ok := hojas[HojaPacks]; ok {
		res.resumen.Packs.Procesada = true
		g.Go(func() error {
			res.packs, res.resumen.Packs.Saltadas = parsePacks(filas)
			res.resumen.Packs.Cargadas = len(res.packs)
			return nil
		})
	}
	if filas, ok := hojas[HojaDesconsiderar]; ok {
		res.resumen.Desconsiderar.Procesada = true
		g.Go(func() error {
			res.excluidos = parseDesconsiderar(filas)
			res.resumen.Desconsiderar.Cargadas = len(res.excluidos)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// reemplazarTablas aplica la carga dentro de una transacción. Una hoja
// presente pero vacía no borra el histórico existente.
func (uc *Usecase) reemplazarTablas(ctx context.Context, res *resultadoHojas) error {
	return uc.tx.RunCarga(ctx, func(
		ventas repository.VentaRepository,
		compras repository.CompraRepository,
		transitos repository.TransitoRepository,
		stocks repository.StockBodegaRepository,
		packs repository.PackRepository,
		desconsiderados repository.DesconsideradoRepository,
		productos repository.ProductoRepository,
	) error {
		if len(res.ventas) > 0 {
			if err := ventas.ReplaceAll(res.ventas); err != nil {
				return fmt.Errorf("reemplazar ventas: %w", err)
			}
		}
		if len(res.compras) > 0 {
			if err := compras.ReplaceAll(res.compras); err != nil {
				return fmt.Errorf("reemplazar compras: %w", err)
			}
		}
		if len(res.transitos) > 0 {
			if err := transitos.ReplaceAll(res.transitos); err != nil {
				return fmt.Errorf("reemplazar tránsito: %w", err)
			}
		}
		if len(res.stocks) > 0 {
			if err := stocks.ReplaceAll(res.stocks); err != nil {
				return fmt.Errorf("reemplazar stock: %w", err)
			}
			// El catálogo se sincroniza con la foto: productos nuevos se
			// crean y los existentes actualizan stock y descripción.
			for _, s := range res.stocks {
				if err := productos.UpsertDesdeStock(s.SKU, s.Descripcion, *s); err != nil {
					return fmt.Errorf("sincronizar producto %s: %w", s.SKU, err)
				}
			}
		}
		if len(res.packs) > 0 {
			if err := packs.ReplaceAll(res.packs); err != nil {
				return fmt.Errorf("reemplazar packs: %w", err)
			}
		}
		if len(res.excluidos) > 0 {
			if err := desconsiderados.ReplaceAll(res.excluidos); err != nil {
				return fmt.Errorf("reemplazar desconsiderados: %w", err)
			}
			if err := productos.SincronizarDesconsiderados(res.excluidos); err != nil {
				return fmt.Errorf("sincronizar desconsiderados: %w", err)
			}
		}
		return nil
	})
}
