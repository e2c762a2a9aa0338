package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/storemanage/internal/domain"
	"github.com/jhoicas/storemanage/internal/domain/entity"
	"github.com/jhoicas/storemanage/internal/domain/repository"
)

var _ repository.StoreStockRepository = (*StoreStockRepo)(nil)

// StoreStockRepo implementación de StoreStockRepository sobre la tabla store_stocks.
type StoreStockRepo struct {
	q Querier
}

// NewStoreStockRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStoreStockRepository(q Querier) *StoreStockRepo {
	return &StoreStockRepo{q: q}
}

// ListByStore devuelve los stocks asociados a la tienda, en el mismo orden que StockRepo.ListAll.
func (r *StoreStockRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.Stock, error) {
	query := `
		SELECT s.id, s.name, s.address, s.capacity, s.created_at, s.updated_at
		FROM stocks s
		JOIN store_stocks ss ON ss.stock_id = s.id
		WHERE ss.store_id = $1
		ORDER BY s.name, s.id`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store stocks: %w", err)
	}
	return collectStocks(rows)
}

// Exists indica si la asociación tienda-stock ya existe.
func (r *StoreStockRepo) Exists(ctx context.Context, storeID, stockID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM store_stocks WHERE store_id = $1 AND stock_id = $2)`,
		storeID, stockID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists store stock: %w", err)
	}
	return exists, nil
}

// Add inserta la asociación. Mapea PK duplicada a ErrAlreadyLinked y FK rota a ErrNotFound.
func (r *StoreStockRepo) Add(ctx context.Context, link *entity.StoreStock) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO store_stocks (store_id, stock_id, created_at) VALUES ($1, $2, $3)`,
		link.StoreID, link.StockID, link.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrAlreadyLinked
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert store stock: %w", err)
	}
	return nil
}

// Remove borra la asociación.
func (r *StoreStockRepo) Remove(ctx context.Context, storeID, stockID string) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM store_stocks WHERE store_id = $1 AND stock_id = $2`,
		storeID, stockID,
	)
	if err != nil {
		return fmt.Errorf("delete store stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotAssociated
	}
	return nil
}
