package repository

import (
	"context"

	"github.com/jhoicas/storemanage/internal/domain/entity"
)

// StoreStockRepository define el puerto para la relación muchos a muchos tienda-stock.
// Usado dentro de transacciones para validar existencia y asociar en un solo paso.
type StoreStockRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]*entity.Stock, error)
	Exists(ctx context.Context, storeID, stockID string) (bool, error)
	Add(ctx context.Context, link *entity.StoreStock) error
	// Remove devuelve domain.ErrNotAssociated si no había fila que borrar.
	Remove(ctx context.Context, storeID, stockID string) error
}
