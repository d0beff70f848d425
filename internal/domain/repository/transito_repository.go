package repository

import "github.com/tlt-imports/reposicion-api/internal/domain/entity"

// TransitoRepository define el puerto de persistencia para unidades en
// tránsito cargadas por Excel (DIP).
type TransitoRepository interface {
	ReplaceAll(transitos []*entity.Transito) error
	ListAll() ([]*entity.Transito, error)
	ListBySKU(sku string) ([]*entity.Transito, error)
}
