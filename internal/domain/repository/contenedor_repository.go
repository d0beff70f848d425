package repository

import "github.com/tlt-imports/reposicion-api/internal/domain/entity"

// ContenedorRepository define el puerto de persistencia para contenedores (DIP).
type ContenedorRepository interface {
	Create(c *entity.Contenedor) error
	GetByID(id string) (*entity.Contenedor, error)
	GetByNumero(numero string) (*entity.Contenedor, error)
	Update(c *entity.Contenedor) error
	List(limit, offset int) ([]*entity.Contenedor, error)
	Delete(id string) error
}
