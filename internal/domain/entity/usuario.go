package entity

import "time"

// Roles de la aplicación. El rol china solo ve el flujo de cotización y
// fabricación; chile opera el análisis y las cargas; admin administra usuarios
// y configuración.
const (
	RolAdmin = "admin"
	RolChile = "chile"
	RolChina = "china"
)

// Usuario es una cuenta de acceso al panel.
type Usuario struct {
	ID           string
	Email        string
	Nombre       string
	PasswordHash string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RolValido indica si el rol es uno de los conocidos.
func RolValido(rol string) bool {
	return rol == RolAdmin || rol == RolChile || rol == RolChina
}
