package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
)
