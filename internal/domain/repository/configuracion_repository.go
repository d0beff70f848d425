package repository

import "github.com/tlt-imports/reposicion-api/internal/domain/entity"

// ConfiguracionRepository define el puerto para la fila única de
// configuración (DIP). Get devuelve domain.ErrConfigNoCargada si la fila aún
// no existe.
type ConfiguracionRepository interface {
	Get() (*entity.Configuracion, error)
	Save(c *entity.Configuracion) error
}
