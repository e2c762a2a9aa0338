package repository

import (
	"context"

	"github.com/jhoicas/storemanage/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// ListByName y ListByType comparan sin distinguir mayúsculas; orden por nombre e id.
	ListByName(ctx context.Context, name string) ([]*entity.Product, error)
	ListByType(ctx context.Context, productType string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
