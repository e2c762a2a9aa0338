package association_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemanage/internal/application/association"
	"github.com/jhoicas/storemanage/internal/domain"
	"github.com/jhoicas/storemanage/internal/domain/entity"
	"github.com/jhoicas/storemanage/internal/domain/repository"
	"github.com/jhoicas/storemanage/internal/infrastructure/memory"
)

func seed(t *testing.T) (*memory.Store, *association.UseCase) {
	t.Helper()
	ctx := context.Background()
	mem := memory.New()
	now := time.Now()
	require.NoError(t, mem.Stores().Create(ctx, &entity.Store{ID: "S1", Name: "Centro", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, mem.Stocks().Create(ctx, &entity.Stock{ID: "A", Name: "Almacén A", Capacity: decimal.NewFromInt(10)}))
	require.NoError(t, mem.Stocks().Create(ctx, &entity.Stock{ID: "B", Name: "Almacén B", Capacity: decimal.NewFromInt(20)}))
	return mem, association.NewUseCase(mem, mem.Stores(), mem.Links())
}

func TestAddStock_AsociaYListaEnOrden(t *testing.T) {
	ctx := context.Background()
	_, uc := seed(t)

	require.NoError(t, uc.AddStock(ctx, "S1", "B"))
	require.NoError(t, uc.AddStock(ctx, "S1", "A"))

	list, err := uc.ListStocks(ctx, "S1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].ID, "el orden es por nombre, no por momento de alta")
	assert.Equal(t, "B", list[1].ID)
}

func TestAddStock_Duplicado_ErrAlreadyLinked(t *testing.T) {
	ctx := context.Background()
	_, uc := seed(t)

	require.NoError(t, uc.AddStock(ctx, "S1", "A"))
	err := uc.AddStock(ctx, "S1", "A")
	assert.ErrorIs(t, err, domain.ErrAlreadyLinked)
}

func TestAddStock_TiendaOStockInexistente(t *testing.T) {
	ctx := context.Background()
	_, uc := seed(t)

	assert.ErrorIs(t, uc.AddStock(ctx, "NOPE", "A"), domain.ErrStoreNotFound)
	assert.ErrorIs(t, uc.AddStock(ctx, "S1", "NOPE"), domain.ErrStockNotFound)
	assert.ErrorIs(t, uc.AddStock(ctx, "", "A"), domain.ErrInvalidInput)
}

func TestRemoveStock(t *testing.T) {
	ctx := context.Background()
	_, uc := seed(t)

	require.NoError(t, uc.AddStock(ctx, "S1", "A"))
	require.NoError(t, uc.RemoveStock(ctx, "S1", "A"))

	list, err := uc.ListStocks(ctx, "S1")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, uc.RemoveStock(ctx, "S1", "A"), domain.ErrNotAssociated,
		"borrar una asociación inexistente debe fallar")
}

func TestListStocks_TiendaInexistente(t *testing.T) {
	_, uc := seed(t)
	_, err := uc.ListStocks(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

// failingTx simula un fallo de infraestructura al abrir la transacción.
type failingTx struct{ err error }

func (f failingTx) Run(context.Context, func(repository.StoreRepository, repository.StockRepository, repository.StoreStockRepository) error) error {
	return f.err
}

func TestAddStock_ErrorDeTransaccionSePropaga(t *testing.T) {
	mem, _ := seed(t)
	boom := errors.New("begin transaction: conexión rechazada")
	uc := association.NewUseCase(failingTx{err: boom}, mem.Stores(), mem.Links())

	err := uc.AddStock(context.Background(), "S1", "A")
	assert.ErrorIs(t, err, boom)
}
