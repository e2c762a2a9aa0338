package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemanage/internal/application/association"
	"github.com/jhoicas/storemanage/internal/domain"
	"github.com/jhoicas/storemanage/internal/domain/entity"
	"github.com/jhoicas/storemanage/pkg/config"
)

func TestMigrationNames_Ordenadas(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, []string{"migrations/001_init.sql", "migrations/002_products.sql"}, names)
	assert.IsNonDecreasing(t, names)
}

func TestCodigosPg(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: codeUniqueViolation})
	fk := &pgconn.PgError{Code: codeForeignKeyViolation}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("23505")), "solo cuenta el código de PgError")
	assert.False(t, isUniqueViolation(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Integración: requiere TEST_DATABASE_URL (p. ej. postgres://postgres@localhost:5432/storemanage_test)
// ──────────────────────────────────────────────────────────────────────────────

func testPool(t *testing.T) *TxRunner {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE store_stocks, stores, stocks, users, products`)
	require.NoError(t, err)
	return NewTxRunner(pool)
}

func TestRepos_AsociacionCompleta(t *testing.T) {
	tx := testPool(t)
	ctx := context.Background()
	stores := NewStoreRepository(tx.pool)
	stocks := NewStockRepository(tx.pool)
	links := NewStoreStockRepository(tx.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	store := &entity.Store{ID: uuid.NewString(), Name: "Centro", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, stores.Create(ctx, store))
	a := &entity.Stock{ID: uuid.NewString(), Name: "Bodega A", Capacity: decimal.RequireFromString("10.125"), CreatedAt: now, UpdatedAt: now}
	b := &entity.Stock{ID: uuid.NewString(), Name: "Bodega B", Capacity: decimal.NewFromInt(5), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, stocks.Create(ctx, a))
	require.NoError(t, stocks.Create(ctx, b))

	got, err := stocks.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, a.Capacity.Equal(got.Capacity))

	missing, err := stores.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)

	uc := association.NewUseCase(tx, stores, links)
	require.NoError(t, uc.AddStock(ctx, store.ID, b.ID))
	assert.ErrorIs(t, uc.AddStock(ctx, store.ID, b.ID), domain.ErrAlreadyLinked)

	list, err := uc.ListStocks(ctx, store.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	assert.ErrorIs(t, uc.RemoveStock(ctx, store.ID, a.ID), domain.ErrNotAssociated)
	require.NoError(t, uc.RemoveStock(ctx, store.ID, b.ID))

	// Borrar la tienda arrastra sus asociaciones.
	require.NoError(t, links.Add(ctx, &entity.StoreStock{StoreID: store.ID, StockID: a.ID, CreatedAt: now}))
	require.NoError(t, stores.Delete(ctx, store.ID))
	ok, err := links.Exists(ctx, store.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, stores.Delete(ctx, store.ID), domain.ErrStoreNotFound)
}

func TestUsers_EmailSinMayusculas(t *testing.T) {
	tx := testPool(t)
	ctx := context.Background()
	users := NewUserRepository(tx.pool)
	now := time.Now().UTC()

	u := &entity.User{ID: uuid.NewString(), Email: "Admin@PMS.local", PasswordHash: "x", Role: entity.RoleAdmin, Status: entity.UserActive, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, users.Create(ctx, u))

	got, err := users.GetByEmail(ctx, "admin@pms.local")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	dup := *u
	dup.ID = uuid.NewString()
	dup.Email = "admin@pms.LOCAL"
	assert.ErrorIs(t, users.Create(ctx, &dup), domain.ErrEmailExists)

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestProducts_BusquedaPorNombreYTipo(t *testing.T) {
	tx := testPool(t)
	ctx := context.Background()
	products := NewProductRepository(tx.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mk := func(name, productType, price string) *entity.Product {
		p := &entity.Product{ID: uuid.NewString(), Name: name, Type: productType, Price: decimal.RequireFromString(price), CreatedAt: now, UpdatedAt: now}
		require.NoError(t, products.Create(ctx, p))
		return p
	}
	leche := mk("Leche", "Lacteos", "3.50")
	mk("Queso", "lacteos", "7.25")
	mk("Agua", "Bebidas", "1")

	byName, err := products.ListByName(ctx, "LECHE")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, leche.ID, byName[0].ID)
	assert.True(t, decimal.RequireFromString("3.5").Equal(byName[0].Price))

	byType, err := products.ListByType(ctx, "LACTEOS")
	require.NoError(t, err)
	require.Len(t, byType, 2)
	assert.Equal(t, "Leche", byType[0].Name)
	assert.Equal(t, "Queso", byType[1].Name)

	none, err := products.ListByType(ctx, "Ferretería")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	leche.Price = decimal.NewFromInt(4)
	require.NoError(t, products.Update(ctx, leche))
	got, err := products.GetByID(ctx, leche.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(4).Equal(got.Price))

	require.NoError(t, products.Delete(ctx, leche.ID))
	assert.ErrorIs(t, products.Delete(ctx, leche.ID), domain.ErrProductNotFound)
	assert.ErrorIs(t, products.Update(ctx, leche), domain.ErrProductNotFound)
}
