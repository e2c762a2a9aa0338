// Package storemanage implementa la vista de gestión de una tienda: carga la tienda,
// sus stocks y el catálogo completo, calcula los stocks disponibles y permite
// asociar o desasociar stocks con notificación al usuario.
//
// Cada mutación exitosa va seguida de una recarga completa desde el servidor;
// no hay reintentos, caché ni actualizaciones optimistas.
package storemanage

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/storemanage/internal/application/dto"
	"github.com/jhoicas/storemanage/pkg/logger"
)

// Mensajes de éxito mostrados al usuario.
const (
	MsgStockAdded   = "Stock was successfully added"
	MsgStockRemoved = "Stock was successfully removed"
)

var (
	// ErrMissingStoreID se notifica cuando Initialize recibe un id vacío.
	ErrMissingStoreID = errors.New("store id is required")
	// ErrMissingStockID se notifica cuando AddStock/RemoveStock reciben un id vacío.
	ErrMissingStockID = errors.New("stock id is required")
	// ErrStoreNotLoaded se notifica al mutar o recargar sin una tienda cargada, o cuando
	// la tienda cargada ya no es la pedida en el último Initialize.
	ErrStoreNotLoaded = errors.New("store is not loaded")
)

// State es una copia de lo que la vista muestra.
type State struct {
	Store     *dto.StoreResponse
	Stocks    []dto.StockResponse
	Available []dto.StockResponse
}

// View mantiene el estado de la pantalla de gestión de una tienda.
// Es segura para uso concurrente; las cadenas de recarga no se cancelan entre sí,
// pero una cadena solo escribe estado si no empezó otra más reciente.
type View struct {
	loader   Loader
	stocks   StoreStocks
	notifier Notifier
	log      *logger.Logger

	mu        sync.RWMutex
	storeID   string
	store     *dto.StoreResponse
	stockList []dto.StockResponse
	available []dto.StockResponse
	cycle     uint64
}

// NewView construye la vista. log puede ser nil.
func NewView(loader Loader, stocks StoreStocks, notifier Notifier, log *logger.Logger) *View {
	if log == nil {
		log = logger.Nop()
	}
	return &View{
		loader:   loader,
		stocks:   stocks,
		notifier: notifier,
		log:      log.Component("storemanage"),
	}
}

// Initialize carga la tienda storeID, sus stocks y el catálogo, en ese orden.
// Ante un error lo notifica, detiene la cadena y lo devuelve; el estado queda
// con lo que se alcanzó a cargar. Si storeID cambia, el estado de la tienda
// anterior se descarta antes de empezar.
func (v *View) Initialize(ctx context.Context, storeID string) error {
	if storeID == "" {
		return v.fail(ErrMissingStoreID)
	}
	v.mu.Lock()
	if storeID != v.storeID {
		v.storeID = storeID
		v.store = nil
		v.stockList = nil
		v.available = nil
	}
	v.cycle++
	cycle := v.cycle
	v.mu.Unlock()
	return v.load(ctx, storeID, cycle)
}

// Refresh repite la cadena de Initialize para la tienda actual.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	storeID := v.storeID
	if storeID == "" {
		v.mu.Unlock()
		return v.fail(ErrStoreNotLoaded)
	}
	v.cycle++
	cycle := v.cycle
	v.mu.Unlock()
	return v.load(ctx, storeID, cycle)
}

// AddStock asocia stockID a la tienda cargada y, si el servidor acepta, recarga todo.
func (v *View) AddStock(ctx context.Context, stockID string) error {
	return v.mutate(ctx, stockID, v.stocks.AddStock, MsgStockAdded)
}

// RemoveStock desasocia stockID de la tienda cargada y, si el servidor acepta, recarga todo.
func (v *View) RemoveStock(ctx context.Context, stockID string) error {
	return v.mutate(ctx, stockID, v.stocks.RemoveStock, MsgStockRemoved)
}

// State devuelve una copia del estado actual.
func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	st := State{
		Stocks:    cloneStocks(v.stockList),
		Available: cloneStocks(v.available),
	}
	if v.store != nil {
		s := *v.store
		st.Store = &s
	}
	return st
}

func (v *View) mutate(ctx context.Context, stockID string, op func(ctx context.Context, storeID, stockID string) error, okMsg string) error {
	if stockID == "" {
		return v.fail(ErrMissingStockID)
	}
	v.mu.RLock()
	store, current := v.store, v.storeID
	v.mu.RUnlock()
	// Solo se muta la tienda que la vista muestra.
	if store == nil || store.ID != current {
		return v.fail(ErrStoreNotLoaded)
	}

	if err := op(ctx, store.ID, stockID); err != nil {
		return v.fail(err)
	}
	v.log.Info().Str("store_id", store.ID).Str("stock_id", stockID).Msg(okMsg)
	v.notifier.Success(okMsg)
	return v.Refresh(ctx)
}

// load ejecuta la cadena tienda -> stocks de la tienda -> catálogo para el ciclo dado.
func (v *View) load(ctx context.Context, storeID string, cycle uint64) error {
	store, err := v.loader.LoadStoreUnauthorized(ctx, storeID)
	if err != nil {
		return v.fail(err)
	}
	if !v.commit(cycle, func() { v.store = store }) {
		return nil
	}

	stockList, err := v.stocks.GetStocks(ctx, store.ID)
	if err != nil {
		return v.fail(err)
	}
	if !v.commit(cycle, func() { v.stockList = stockList }) {
		return nil
	}

	all, err := v.loader.LoadAllStocks(ctx)
	if err != nil {
		return v.fail(err)
	}
	available := AvailableStocks(stockList, all)
	v.commit(cycle, func() { v.available = available })

	v.log.Debug().
		Str("store_id", store.ID).
		Int("stocks", len(stockList)).
		Int("available", len(available)).
		Msg("tienda cargada")
	return nil
}

// commit aplica set bajo el lock si cycle sigue siendo la última cadena iniciada.
func (v *View) commit(cycle uint64, set func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if cycle != v.cycle {
		v.log.Debug().Uint64("cycle", cycle).Uint64("latest", v.cycle).Msg("recarga superada por otra más reciente")
		return false
	}
	set()
	return true
}

func (v *View) fail(err error) error {
	v.log.Warn().Err(err).Msg("operación fallida")
	v.notifier.Error(ErrorMessage(err))
	return err
}

func cloneStocks(in []dto.StockResponse) []dto.StockResponse {
	if in == nil {
		return nil
	}
	out := make([]dto.StockResponse, len(in))
	copy(out, in)
	return out
}
