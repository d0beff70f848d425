// Package auth implementa registro, login y administración de usuarios del
// panel con bcrypt y JWT.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y usuarios.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailYaExiste si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 || !entity.RolValido(in.Rol) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailYaExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		nombre = email
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        email,
		Nombre:       nombre,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarios.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login verifica email y password, genera el JWT y retorna token más usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: *toUsuarioResponse(u)}, nil
}

// List devuelve los usuarios registrados.
func (uc *AuthUseCase) List(limit, offset int) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarios.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, *toUsuarioResponse(u))
	}
	return out, nil
}

// Update modifica nombre, rol, estado o password de un usuario.
func (uc *AuthUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	if in.Nombre != nil {
		u.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Rol != nil {
		if !entity.RolValido(*in.Rol) {
			return nil, domain.ErrInvalidInput
		}
		u.Rol = *in.Rol
	}
	if in.Activo != nil {
		u.Activo = *in.Activo
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = time.Now()
	if err := uc.usuarios.Update(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Delete elimina un usuario.
func (uc *AuthUseCase) Delete(id string) error {
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUsuarioNotFound
	}
	return uc.usuarios.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
