package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrStoreNotFound   = errors.New("tienda no encontrada")
	ErrStockNotFound   = errors.New("stock no encontrado")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrNotAssociated   = errors.New("el stock no está asociado a la tienda")
	ErrAlreadyLinked   = errors.New("el stock ya está asociado a la tienda")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrEmailExists     = errors.New("el email ya está registrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
)
