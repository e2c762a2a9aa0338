package repository

import (
	"context"

	"github.com/jhoicas/storemanage/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para Stock.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	// GetByID devuelve (nil, nil) si el stock no existe.
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Stock, error)
	// ListAll devuelve todos los stocks ordenados por nombre, sin paginar.
	ListAll(ctx context.Context) ([]*entity.Stock, error)
	Delete(ctx context.Context, id string) error
}
