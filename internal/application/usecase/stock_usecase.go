package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storemanage/internal/application/dto"
	"github.com/jhoicas/storemanage/internal/domain"
	"github.com/jhoicas/storemanage/internal/domain/entity"
	"github.com/jhoicas/storemanage/internal/domain/repository"
)

// StockUseCase casos de uso para stocks.
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Create crea un nuevo stock. La capacidad no puede ser negativa.
func (uc *StockUseCase) Create(ctx context.Context, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Capacity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   in.Address,
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, stock); err != nil {
		return nil, err
	}
	return ToStockResponse(stock), nil
}

// GetByID obtiene un stock por ID.
func (uc *StockUseCase) GetByID(ctx context.Context, id string) (*dto.StockResponse, error) {
	stock, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrStockNotFound
	}
	return ToStockResponse(stock), nil
}

// List lista stocks con paginación.
func (uc *StockUseCase) List(ctx context.Context, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.StockListResponse{
		Items: ToStockResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListAll devuelve todos los stocks como arreglo plano (contrato loadAll de la vista).
func (uc *StockUseCase) ListAll(ctx context.Context) ([]dto.StockResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToStockResponses(list), nil
}

// Delete elimina un stock por ID.
func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ToStockResponse convierte la entidad al DTO de salida.
func ToStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Capacity:  s.Capacity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStockResponses convierte una lista; nunca devuelve nil para que el JSON sea [] y no null.
func ToStockResponses(list []*entity.Stock) []dto.StockResponse {
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToStockResponse(s))
	}
	return items
}
