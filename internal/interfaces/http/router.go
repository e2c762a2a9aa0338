package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemanage/internal/application/association"
	"github.com/jhoicas/storemanage/internal/application/auth"
	"github.com/jhoicas/storemanage/internal/application/usecase"
	"github.com/jhoicas/storemanage/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC       *usecase.StoreUseCase
	StockUC       *usecase.StockUseCase
	ProductUC     *usecase.ProductUseCase
	AssociationUC *association.UseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	canLink := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Stores: lectura pública, escritura solo admin
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Post("/", authn, adminOnly, storeHandler.Create)
	stores.Put("/:id", authn, adminOnly, storeHandler.Update)
	stores.Delete("/:id", authn, adminOnly, storeHandler.Delete)

	// Stocks de una tienda (protegido)
	linkHandler := NewStoreStockHandler(deps.AssociationUC)
	stores.Get("/:id/stocks", authn, linkHandler.List)
	stores.Post("/:id/stocks/:stockId", authn, canLink, linkHandler.Add)
	stores.Delete("/:id/stocks/:stockId", authn, canLink, linkHandler.Remove)

	// Stocks (protegido). /all antes de /:id.
	stocks := api.Group("/stocks", authn)
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/all", stockHandler.ListAll)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Post("/", adminOnly, stockHandler.Create)
	stocks.Delete("/:id", adminOnly, stockHandler.Delete)

	// Productos: lectura con token, escritura solo admin. Búsquedas antes de /:id.
	products := api.Group("/products", authn)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/name/:name", productHandler.ListByName)
	products.Get("/type/:type", productHandler.ListByType)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
}
