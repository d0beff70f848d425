package repository

import "github.com/tlt-imports/reposicion-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para usuarios (DIP).
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	List(limit, offset int) ([]*entity.Usuario, error)
	Delete(id string) error
}
