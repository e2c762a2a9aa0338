package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Type agrupa productos (p. ej. "bebidas")
// y es, junto con Name, criterio de búsqueda.
type Product struct {
	ID          string
	Name        string
	Type        string
	Description string
	Price       decimal.Decimal // precio de venta, nunca negativo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
