package association

import (
	"context"

	"github.com/jhoicas/storemanage/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// La validación de existencia y el alta/baja de la asociación ocurren en la misma tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stores repository.StoreRepository,
		stocks repository.StockRepository,
		links repository.StoreStockRepository,
	) error) error
}
