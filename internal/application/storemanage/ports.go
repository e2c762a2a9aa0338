package storemanage

import (
	"context"

	"github.com/jhoicas/storemanage/internal/application/dto"
)

// Loader carga entidades sueltas de la API.
type Loader interface {
	// LoadStoreUnauthorized obtiene una tienda sin enviar credenciales.
	LoadStoreUnauthorized(ctx context.Context, storeID string) (*dto.StoreResponse, error)
	// LoadAllStocks obtiene el catálogo completo de stocks.
	LoadAllStocks(ctx context.Context) ([]dto.StockResponse, error)
}

// StoreStocks gestiona la asociación tienda-stock en el servidor.
type StoreStocks interface {
	GetStocks(ctx context.Context, storeID string) ([]dto.StockResponse, error)
	AddStock(ctx context.Context, storeID, stockID string) error
	RemoveStock(ctx context.Context, storeID, stockID string) error
}

// Notifier muestra mensajes al usuario.
type Notifier interface {
	Success(message string)
	Error(message string)
}
