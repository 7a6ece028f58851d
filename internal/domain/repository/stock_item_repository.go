package repository

import "github.com/topcar/stock-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
// GetForUpdate se usa dentro de transacciones para bloquear la fila del
// artículo (SELECT FOR UPDATE) antes de mutar su cantidad.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id int64) (*entity.StockItem, error)
	GetForUpdate(id int64) (*entity.StockItem, error)
	UpdateQuantity(id, quantity int64) error
	List() ([]*entity.StockItem, error)
	ListBelowMinimum() ([]*entity.StockItem, error)
}
