package dto

import (
	"time"

	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// CrearContenedorRequest entrada para registrar un contenedor.
type CrearContenedorRequest struct {
	Numero               string     `json:"numero" validate:"required"`
	Naviera              string     `json:"naviera"`
	FechaSalida          *time.Time `json:"departure_date"`
	FechaLlegadaEstimada *time.Time `json:"estimated_arrival_date"`
	Notas                string     `json:"notas"`
}

// ActualizarContenedorRequest entrada para actualizar un contenedor. Punteros
// en nil no tocan el campo. Registrar actual_arrival_date dispara el
// procesamiento de la llegada.
type ActualizarContenedorRequest struct {
	Naviera              *string    `json:"naviera"`
	Estado               *string    `json:"estado" validate:"omitempty,oneof=IN_TRANSIT AT_PORT CUSTOMS DELIVERED"`
	FechaSalida          *time.Time `json:"departure_date"`
	FechaLlegadaEstimada *time.Time `json:"estimated_arrival_date"`
	FechaLlegadaReal     *time.Time `json:"actual_arrival_date"`
	Notas                *string    `json:"notas"`
}

// ContenedorResponse salida de un contenedor.
type ContenedorResponse struct {
	ID                   string     `json:"id"`
	Numero               string     `json:"numero"`
	Naviera              string     `json:"naviera,omitempty"`
	FechaSalida          *time.Time `json:"departure_date,omitempty"`
	FechaLlegadaEstimada *time.Time `json:"estimated_arrival_date,omitempty"`
	FechaLlegadaReal     *time.Time `json:"actual_arrival_date,omitempty"`
	Estado               string     `json:"estado"`
	Procesado            bool       `json:"procesado"`
	Notas                string     `json:"notas,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// FromContenedor mapea la entidad al DTO de salida.
func FromContenedor(c *entity.Contenedor) ContenedorResponse {
	return ContenedorResponse{
		ID:                   c.ID,
		Numero:               c.Numero,
		Naviera:              c.Naviera,
		FechaSalida:          c.FechaSalida,
		FechaLlegadaEstimada: c.FechaLlegadaEstimada,
		FechaLlegadaReal:     c.FechaLlegadaReal,
		Estado:               string(c.Estado),
		Procesado:            c.Procesado,
		Notas:                c.Notas,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
