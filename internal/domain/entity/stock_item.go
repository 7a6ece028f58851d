package entity

import "github.com/shopspring/decimal"

// StockItem representa un artículo del catálogo de stock del taller.
// Quantity es el único campo que muta después de la creación, y solo
// a través del motor de ledger; los artículos nunca se eliminan.
type StockItem struct {
	ID         int64
	Name       string
	Quantity   int64
	MinLevel   int64
	UnitPrice  decimal.Decimal // precio "actual", snapshot al transaccionar
	Supplier   string
	ReorderQty int64
}

// BelowMinimum indica si el artículo está en o por debajo de su nivel mínimo.
func (s *StockItem) BelowMinimum() bool {
	return s.Quantity <= s.MinLevel
}
