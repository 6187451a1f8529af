package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidFile     = errors.New("archivo inválido")
	ErrEmptyCollection = errors.New("no hay datos para exportar")
	ErrUnauthorized    = errors.New("no autorizado")
)
