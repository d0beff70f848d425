package entity

import (
	"time"
)

// EstadoContenedor describe la etapa logística de un contenedor.
type EstadoContenedor string

const (
	ContenedorEnTransito EstadoContenedor = "IN_TRANSIT"
	ContenedorEnPuerto   EstadoContenedor = "AT_PORT"
	ContenedorEnAduana   EstadoContenedor = "CUSTOMS"
	ContenedorEntregado  EstadoContenedor = "DELIVERED"
)

// Contenedor agrupa los productos embarcados bajo un mismo número de
// contenedor. Al registrar la fecha de llegada real se procesan las llegadas:
// se insertan compras, se incrementa stock y se cierra el workflow de cada
// producto embarcado con ese número.
type Contenedor struct {
	ID                   string
	Numero               string
	Naviera              string
	FechaSalida          *time.Time
	FechaLlegadaEstimada *time.Time
	FechaLlegadaReal     *time.Time
	Estado               EstadoContenedor
	Procesado            bool
	Notas                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
