// Package memory implementa los puertos de persistencia en memoria para tests y
// entornos efímeros (STORAGE_DRIVER=memory).
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/storemanage/internal/application/association"
	"github.com/jhoicas/storemanage/internal/domain"
	"github.com/jhoicas/storemanage/internal/domain/entity"
	"github.com/jhoicas/storemanage/internal/domain/repository"
)

var (
	_ repository.StoreRepository      = (*StoreRepo)(nil)
	_ repository.StockRepository      = (*StockRepo)(nil)
	_ repository.StoreStockRepository = (*StoreStockRepo)(nil)
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.ProductRepository    = (*ProductRepo)(nil)
	_ association.TxRunner            = (*Store)(nil)
)

type linkKey struct {
	storeID string
	stockID string
}

// Store agrupa el estado compartido por todos los repositorios en memoria.
type Store struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	stores   map[string]entity.Store
	stocks   map[string]entity.Stock
	links    map[linkKey]time.Time
	users    map[string]entity.User // clave: email en minúsculas
	products map[string]entity.Product
}

// New crea un almacenamiento vacío.
func New() *Store {
	return &Store{
		stores:   make(map[string]entity.Store),
		stocks:   make(map[string]entity.Stock),
		links:    make(map[linkKey]time.Time),
		users:    make(map[string]entity.User),
		products: make(map[string]entity.Product),
	}
}

// Stores devuelve el repositorio de tiendas.
func (s *Store) Stores() *StoreRepo { return &StoreRepo{s: s} }

// Stocks devuelve el repositorio de stocks.
func (s *Store) Stocks() *StockRepo { return &StockRepo{s: s} }

// Links devuelve el repositorio de asociaciones tienda-stock.
func (s *Store) Links() *StoreStockRepo { return &StoreStockRepo{s: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Run serializa las "transacciones". No hay rollback: los callbacks de association
// validan antes de escribir y hacen una sola escritura.
func (s *Store) Run(ctx context.Context, fn func(
	stores repository.StoreRepository,
	stocks repository.StockRepository,
	links repository.StoreStockRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.Stores(), s.Stocks(), s.Links())
}

// StoreRepo tiendas en memoria.
type StoreRepo struct{ s *Store }

func (r *StoreRepo) Create(_ context.Context, store *entity.Store) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stores[store.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.stores[store.ID] = *store
	return nil
}

func (r *StoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	store, ok := r.s.stores[id]
	if !ok {
		return nil, nil
	}
	return &store, nil
}

func (r *StoreRepo) List(_ context.Context, limit, offset int) ([]*entity.Store, error) {
	r.s.mu.RLock()
	list := make([]*entity.Store, 0, len(r.s.stores))
	for _, store := range r.s.stores {
		store := store
		list = append(list, &store)
	}
	r.s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return page(list, limit, offset), nil
}

func (r *StoreRepo) Update(_ context.Context, store *entity.Store) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stores[store.ID]; !ok {
		return domain.ErrStoreNotFound
	}
	r.s.stores[store.ID] = *store
	return nil
}

func (r *StoreRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stores[id]; !ok {
		return domain.ErrStoreNotFound
	}
	delete(r.s.stores, id)
	for k := range r.s.links {
		if k.storeID == id {
			delete(r.s.links, k)
		}
	}
	return nil
}

// StockRepo stocks en memoria.
type StockRepo struct{ s *Store }

func (r *StockRepo) Create(_ context.Context, stock *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stocks[stock.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.stocks[stock.ID] = *stock
	return nil
}

func (r *StockRepo) GetByID(_ context.Context, id string) (*entity.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	stock, ok := r.s.stocks[id]
	if !ok {
		return nil, nil
	}
	return &stock, nil
}

func (r *StockRepo) List(ctx context.Context, limit, offset int) ([]*entity.Stock, error) {
	all, _ := r.ListAll(ctx)
	return page(all, limit, offset), nil
}

func (r *StockRepo) ListAll(_ context.Context) ([]*entity.Stock, error) {
	r.s.mu.RLock()
	list := make([]*entity.Stock, 0, len(r.s.stocks))
	for _, stock := range r.s.stocks {
		stock := stock
		list = append(list, &stock)
	}
	r.s.mu.RUnlock()
	sortStocks(list)
	return list, nil
}

func (r *StockRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stocks[id]; !ok {
		return domain.ErrStockNotFound
	}
	delete(r.s.stocks, id)
	for k := range r.s.links {
		if k.stockID == id {
			delete(r.s.links, k)
		}
	}
	return nil
}

// StoreStockRepo asociaciones tienda-stock en memoria.
type StoreStockRepo struct{ s *Store }

func (r *StoreStockRepo) ListByStore(_ context.Context, storeID string) ([]*entity.Stock, error) {
	r.s.mu.RLock()
	list := make([]*entity.Stock, 0)
	for k := range r.s.links {
		if k.storeID != storeID {
			continue
		}
		if stock, ok := r.s.stocks[k.stockID]; ok {
			list = append(list, &stock)
		}
	}
	r.s.mu.RUnlock()
	sortStocks(list)
	return list, nil
}

func (r *StoreStockRepo) Exists(_ context.Context, storeID, stockID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.links[linkKey{storeID: storeID, stockID: stockID}]
	return ok, nil
}

func (r *StoreStockRepo) Add(_ context.Context, link *entity.StoreStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stores[link.StoreID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.stocks[link.StockID]; !ok {
		return domain.ErrNotFound
	}
	k := linkKey{storeID: link.StoreID, stockID: link.StockID}
	if _, ok := r.s.links[k]; ok {
		return domain.ErrAlreadyLinked
	}
	r.s.links[k] = link.CreatedAt
	return nil
}

func (r *StoreStockRepo) Remove(_ context.Context, storeID, stockID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := linkKey{storeID: storeID, stockID: stockID}
	if _, ok := r.s.links[k]; !ok {
		return domain.ErrNotAssociated
	}
	delete(r.s.links, k)
	return nil
}

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, ok := r.s.users[key]; ok {
		return domain.ErrEmailExists
	}
	r.s.users[key] = *u
	return nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users), nil
}

// ProductRepo productos en memoria.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return page(r.filter(func(*entity.Product) bool { return true }), limit, offset), nil
}

func (r *ProductRepo) ListByName(_ context.Context, name string) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return strings.EqualFold(p.Name, name) }), nil
}

func (r *ProductRepo) ListByType(_ context.Context, productType string) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return strings.EqualFold(p.Type, productType) }), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.s.products, id)
	return nil
}

// filter copia los productos que cumplen keep, ordenados por nombre e id.
func (r *ProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	r.s.mu.RLock()
	list := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		p := p
		if keep(&p) {
			list = append(list, &p)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func sortStocks(list []*entity.Stock) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return list[:0]
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}
