package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/topcar/stock-api/internal/domain/entity"
	"github.com/topcar/stock-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = "id, name, quantity, min_level, unit_price, supplier, reorder_qty"

// Create inserta un artículo y asigna su ID (bigserial).
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock (name, quantity, min_level, unit_price, supplier, reorder_qty)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Name, item.Quantity, item.MinLevel, item.UnitPrice, item.Supplier, item.ReorderQty,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *StockItemRepo) GetByID(id int64) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock WHERE id = $1`
	return r.scanOne(query, id, "get stock item")
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
func (r *StockItemRepo) GetForUpdate(id int64) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "get stock item for update")
}

// UpdateQuantity fija la cantidad del artículo. Quantity es el único campo
// mutable del catálogo y solo escribe por aquí el motor del ledger.
func (r *StockItemRepo) UpdateQuantity(id, quantity int64) error {
	query := `UPDATE stock SET quantity = $2 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update stock quantity: fila %d inexistente", id)
	}
	return nil
}

// List devuelve el catálogo ordenado por nombre.
func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock ORDER BY name`
	return r.scanMany(query, "list stock")
}

// ListBelowMinimum devuelve artículos con quantity <= min_level, por nombre.
func (r *StockItemRepo) ListBelowMinimum() ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock WHERE quantity <= min_level ORDER BY name`
	return r.scanMany(query, "list below minimum")
}

func (r *StockItemRepo) scanOne(query string, id int64, op string) (*entity.StockItem, error) {
	var s entity.StockItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Quantity, &s.MinLevel, &s.UnitPrice, &s.Supplier, &s.ReorderQty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *StockItemRepo) scanMany(query string, op string) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(&s.ID, &s.Name, &s.Quantity, &s.MinLevel, &s.UnitPrice, &s.Supplier, &s.ReorderQty); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
