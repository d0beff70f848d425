package dto

import "time"

// RegisterRequest entrada para crear un usuario.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol" validate:"required,oneof=admin chile china"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida de un usuario, sin hash.
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token más el usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// UpdateUsuarioRequest entrada para modificar un usuario. Punteros en nil no
// tocan el campo.
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre"`
	Rol      *string `json:"rol" validate:"omitempty,oneof=admin chile china"`
	Activo   *bool   `json:"activo"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}
