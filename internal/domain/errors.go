package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrProductoNotFound    = errors.New("producto no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrSKUYaExiste         = errors.New("el SKU ya existe en el sistema")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrUsuarioNotFound     = errors.New("usuario no encontrado")
	ErrEmailYaExiste       = errors.New("el email ya está registrado")
	ErrConfigNoCargada     = errors.New("no se pudo cargar la configuración")
	ErrCompraDuplicada     = errors.New("ya existe una compra para ese SKU y fecha")
	ErrContenedorDuplicado = errors.New("ya existe un contenedor con ese número")
)
