package repository

import "github.com/tlt-imports/reposicion-api/internal/domain/entity"

// PackRepository define el puerto de persistencia para la composición de
// packs (DIP).
type PackRepository interface {
	ReplaceAll(packs []*entity.Pack) error
	ListByPack(skuPack string) ([]*entity.Pack, error)
	ListAll() ([]*entity.Pack, error)
}
