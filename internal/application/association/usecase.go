package association

import (
	"context"
	"time"

	"github.com/jhoicas/storemanage/internal/application/dto"
	"github.com/jhoicas/storemanage/internal/application/usecase"
	"github.com/jhoicas/storemanage/internal/domain"
	"github.com/jhoicas/storemanage/internal/domain/entity"
	"github.com/jhoicas/storemanage/internal/domain/repository"
)

// UseCase gestiona la relación muchos a muchos entre tiendas y stocks.
type UseCase struct {
	tx     TxRunner
	stores repository.StoreRepository
	links  repository.StoreStockRepository
	now    func() time.Time
}

// NewUseCase construye el caso de uso. stores y links se usan para lecturas fuera de transacción.
func NewUseCase(tx TxRunner, stores repository.StoreRepository, links repository.StoreStockRepository) *UseCase {
	return &UseCase{
		tx:     tx,
		stores: stores,
		links:  links,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ListStocks devuelve los stocks asociados a la tienda. ErrStoreNotFound si la tienda no existe.
func (uc *UseCase) ListStocks(ctx context.Context, storeID string) ([]dto.StockResponse, error) {
	if storeID == "" {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	list, err := uc.links.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return usecase.ToStockResponses(list), nil
}

// AddStock asocia el stock a la tienda.
// Errores: ErrStoreNotFound, ErrStockNotFound, ErrAlreadyLinked.
func (uc *UseCase) AddStock(ctx context.Context, storeID, stockID string) error {
	if storeID == "" || stockID == "" {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(
		stores repository.StoreRepository,
		stocks repository.StockRepository,
		links repository.StoreStockRepository,
	) error {
		if err := ensureBoth(ctx, stores, stocks, storeID, stockID); err != nil {
			return err
		}
		linked, err := links.Exists(ctx, storeID, stockID)
		if err != nil {
			return err
		}
		if linked {
			return domain.ErrAlreadyLinked
		}
		return links.Add(ctx, &entity.StoreStock{
			StoreID:   storeID,
			StockID:   stockID,
			CreatedAt: uc.now(),
		})
	})
}

// RemoveStock elimina la asociación. ErrNotAssociated si no existía.
func (uc *UseCase) RemoveStock(ctx context.Context, storeID, stockID string) error {
	if storeID == "" || stockID == "" {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(
		stores repository.StoreRepository,
		stocks repository.StockRepository,
		links repository.StoreStockRepository,
	) error {
		if err := ensureBoth(ctx, stores, stocks, storeID, stockID); err != nil {
			return err
		}
		return links.Remove(ctx, storeID, stockID)
	})
}

func ensureBoth(ctx context.Context, stores repository.StoreRepository, stocks repository.StockRepository, storeID, stockID string) error {
	store, err := stores.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	stock, err := stocks.GetByID(ctx, stockID)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrStockNotFound
	}
	return nil
}
