package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest entrada para crear un stock.
type CreateStockRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Address  string          `json:"address"`
	Capacity decimal.Decimal `json:"capacity"`
}

// StockResponse salida de un stock. Es también el modelo que consume la vista de gestión.
type StockResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Capacity  decimal.Decimal `json:"capacity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockListResponse lista paginada de stocks.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
