package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrNoFeasibleSource = errors.New("ningún stockyard tiene inventario suficiente para el pedido")
	ErrMissingReference = errors.New("referencia de datos inexistente en el snapshot")
)
