package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrInsufficientStock    = errors.New("no hay suficiente stock")
	ErrInsufficientFunds    = errors.New("no hay suficiente dinero en caja")
	ErrConfirmationRequired = errors.New("se requiere confirmación explícita")
	ErrSessionNotFound      = errors.New("sesión expirada o cerrada")
)
