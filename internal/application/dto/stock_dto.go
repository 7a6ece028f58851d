package dto

import "github.com/shopspring/decimal"

// CreateStockItemRequest entrada para crear un artículo del catálogo.
// Los campos numéricos no enviados quedan en 0.
type CreateStockItemRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Quantity   int64           `json:"quantity"`
	MinLevel   int64           `json:"min_level"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Supplier   string          `json:"supplier"`
	ReorderQty int64           `json:"reorder_qty"`
}

// StockItemResponse salida de un artículo del catálogo.
// LineValue = quantity × unit_price actual, redondeado a 2 decimales.
type StockItemResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	MinLevel   int64           `json:"min_level"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineValue  decimal.Decimal `json:"line_value"`
	Supplier   string          `json:"supplier"`
	ReorderQty int64           `json:"reorder_qty"`
	LowStock   bool            `json:"low_stock"`
}
