package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidReversal    = errors.New("reversa inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)
