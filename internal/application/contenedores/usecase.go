// Package contenedores administra los contenedores embarcados y procesa sus
// llegadas: al registrar la fecha real de arribo se cierran los workflows de
// los productos que viajaban en él.
package contenedores

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

// TxRunner ejecuta el procesamiento de una llegada en una transacción: o se
// registran todas las compras, stocks y cierres de workflow, o ninguno.
type TxRunner interface {
	RunLlegada(ctx context.Context, fn func(
		contenedores repository.ContenedorRepository,
		productos repository.ProductoRepository,
		compras repository.CompraRepository,
	) error) error
}

// Usecase casos de uso de contenedores.
type Usecase struct {
	contenedores repository.ContenedorRepository
	tx           TxRunner
	ahora        func() time.Time
}

// NewUsecase construye el caso de uso. ahora puede ser nil y usa time.Now.
func NewUsecase(contenedores repository.ContenedorRepository, tx TxRunner, ahora func() time.Time) *Usecase {
	if ahora == nil {
		ahora = time.Now
	}
	return &Usecase{contenedores: contenedores, tx: tx, ahora: ahora}
}

// Crear registra un contenedor nuevo. El número es único.
func (uc *Usecase) Crear(numero, naviera, notas string, salida, eta *time.Time) (*entity.Contenedor, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.contenedores.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrContenedorDuplicado
	}
	ahora := uc.ahora()
	c := &entity.Contenedor{
		ID:                   uuid.New().String(),
		Numero:               numero,
		Naviera:              strings.TrimSpace(naviera),
		FechaSalida:          salida,
		FechaLlegadaEstimada: eta,
		Estado:               entity.ContenedorEnTransito,
		Notas:                notas,
		CreatedAt:            ahora,
		UpdatedAt:            ahora,
	}
	if err := uc.contenedores.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Listar devuelve los contenedores registrados.
func (uc *Usecase) Listar(limit, offset int) ([]*entity.Contenedor, error) {
	return uc.contenedores.List(limit, offset)
}

// Obtener devuelve un contenedor por ID.
func (uc *Usecase) Obtener(id string) (*entity.Contenedor, error) {
	c, err := uc.contenedores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// ActualizacionContenedor campos editables de un contenedor. Los punteros en
// nil no modifican el campo.
type ActualizacionContenedor struct {
	Naviera          *string
	Estado           *entity.EstadoContenedor
	FechaSalida      *time.Time
	ETA              *time.Time
	FechaLlegadaReal *time.Time
	Notas            *string
}

// Actualizar modifica un contenedor. Registrar la fecha de llegada real
// dispara el procesamiento de la llegada si aún no se hizo.
func (uc *Usecase) Actualizar(ctx context.Context, id string, in ActualizacionContenedor) (*entity.Contenedor, error) {
	c, err := uc.contenedores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.Naviera != nil {
		c.Naviera = strings.TrimSpace(*in.Naviera)
	}
	if in.Estado != nil {
		c.Estado = *in.Estado
	}
	if in.FechaSalida != nil {
		c.FechaSalida = in.FechaSalida
	}
	if in.ETA != nil {
		c.FechaLlegadaEstimada = in.ETA
	}
	if in.Notas != nil {
		c.Notas = *in.Notas
	}

	if in.FechaLlegadaReal != nil && !c.Procesado {
		return uc.procesarLlegada(ctx, c, *in.FechaLlegadaReal)
	}

	c.UpdatedAt = uc.ahora()
	if err := uc.contenedores.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Eliminar borra un contenedor no procesado.
func (uc *Usecase) Eliminar(id string) error {
	c, err := uc.contenedores.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if c.Procesado {
		return domain.ErrInvalidInput
	}
	return uc.contenedores.Delete(id)
}

// procesarLlegada cierra la llegada del contenedor: por cada producto
// embarcado con este número inserta la compra con la fecha real, incrementa
// su stock y completa el workflow. Todo dentro de una transacción.
func (uc *Usecase) procesarLlegada(ctx context.Context, c *entity.Contenedor, llegada time.Time) (*entity.Contenedor, error) {
	ahora := uc.ahora()

	err := uc.tx.RunLlegada(ctx, func(
		contenedores repository.ContenedorRepository,
		productos repository.ProductoRepository,
		compras repository.CompraRepository,
	) error {
		embarcados, err := productos.ListByStatus(workflow.Embarcado)
		if err != nil {
			return err
		}
		for _, p := range embarcados {
			if p.ShippingDetails == nil || p.ShippingDetails.NumeroContenedor != c.Numero {
				continue
			}
			cantidad := p.ShippingDetails.CantidadEmbarcada

			if err := compras.Create(&entity.Compra{
				ID:               uuid.New().String(),
				SKU:              p.SKU,
				FechaLlegadaReal: llegada,
				Cantidad:         cantidad,
				Origen:           "contenedor",
				CreatedAt:        ahora,
			}); err != nil {
				return fmt.Errorf("registrar llegada de %s: %w", p.SKU, err)
			}
			if err := productos.IncrementarStock(p.SKU, cantidad); err != nil {
				return fmt.Errorf("incrementar stock de %s: %w", p.SKU, err)
			}

			p.WorkflowCompleted = true
			p.CompletedAt = &ahora
			p.ShippingDetails.Llegado = true
			p.ShippingDetails.FechaLlegada = &llegada
			p.UpdatedAt = ahora
			if err := productos.Update(p); err != nil {
				return fmt.Errorf("cerrar workflow de %s: %w", p.SKU, err)
			}
		}

		c.FechaLlegadaReal = &llegada
		c.Estado = entity.ContenedorEntregado
		c.Procesado = true
		c.UpdatedAt = ahora
		return contenedores.Update(c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
