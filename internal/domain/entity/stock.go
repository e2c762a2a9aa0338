package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa un almacén de productos que puede asociarse a una o varias tiendas.
type Stock struct {
	ID        string
	Name      string
	Address   string
	Capacity  decimal.Decimal // m³ disponibles
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreStock es la fila de la tabla intermedia store_stocks (relación muchos a muchos).
type StoreStock struct {
	StoreID   string
	StockID   string
	CreatedAt time.Time
}
