package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/topcar/stock-api/internal/application/dto"
	"github.com/topcar/stock-api/internal/domain"
	"github.com/topcar/stock-api/internal/domain/entity"
	"github.com/topcar/stock-api/internal/domain/repository"
)

// UseCase gestiona el catálogo de artículos: alta validada y lecturas.
// La cantidad de un artículo NO se modifica por aquí; eso es del ledger.
type UseCase struct {
	itemRepo repository.StockItemRepository
}

// NewUseCase construye el caso de uso del catálogo.
func NewUseCase(itemRepo repository.StockItemRepository) *UseCase {
	return &UseCase{itemRepo: itemRepo}
}

// Create da de alta un artículo. Rechaza nombre vacío o cualquier campo
// numérico negativo; los numéricos no enviados quedan en 0.
func (uc *UseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinLevel < 0 || in.ReorderQty < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.StockItem{
		Name:       name,
		Quantity:   in.Quantity,
		MinLevel:   in.MinLevel,
		UnitPrice:  in.UnitPrice,
		Supplier:   strings.TrimSpace(in.Supplier),
		ReorderQty: in.ReorderQty,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *UseCase) GetByID(id int64) (*dto.StockItemResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(item), nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (uc *UseCase) List() ([]dto.StockItemResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

// ListBelowMinimum devuelve los artículos con cantidad en o bajo su nivel
// mínimo (lista de reposición), ordenados por nombre.
func (uc *UseCase) ListBelowMinimum() ([]dto.StockItemResponse, error) {
	items, err := uc.itemRepo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func toResponse(item *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		MinLevel:   item.MinLevel,
		UnitPrice:  item.UnitPrice,
		LineValue:  decimal.NewFromInt(item.Quantity).Mul(item.UnitPrice).Round(2),
		Supplier:   item.Supplier,
		ReorderQty: item.ReorderQty,
		LowStock:   item.BelowMinimum(),
	}
}

func toResponses(items []*entity.StockItem) []dto.StockItemResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toResponse(item))
	}
	return out
}
