package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/topcar/stock-api/internal/domain/entity"
	"github.com/topcar/stock-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del ledger sobre PostgreSQL (usable con
// pool o tx). Las filas solo se insertan, nunca se actualizan ni borran.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción del ledger y asigna su ID (bigserial).
// job_no vacío se guarda como NULL (entradas y sus reversas).
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (item_id, change_qty, job_no, action, unit_price, reversed_from, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	jobNo := (*string)(nil)
	if tx.JobNo != "" {
		jobNo = &tx.JobNo
	}
	err := r.q.QueryRow(context.Background(), query,
		tx.ItemID, tx.ChangeQty, jobNo, tx.Action, tx.UnitPrice, tx.ReversedFrom, tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(id int64) (*entity.Transaction, error) {
	query := `
		SELECT id, item_id, change_qty, job_no, action, unit_price, reversed_from, created_at
		FROM transactions WHERE id = $1`
	var t entity.Transaction
	var jobNo *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ItemID, &t.ChangeQty, &jobNo, &t.Action, &t.UnitPrice, &t.ReversedFrom, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if jobNo != nil {
		t.JobNo = *jobNo
	}
	return &t, nil
}

// HasReversal indica si ya existe una fila reverse apuntando a originalID.
// reversed_from es una referencia hacia atrás consultada por valor, no un
// grafo a recorrer: un índice sobre la columna resuelve la pregunta.
func (r *TransactionRepo) HasReversal(originalID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM transactions WHERE action = 'reverse' AND reversed_from = $1)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, originalID).Scan(&exists); err != nil {
		return false, fmt.Errorf("has reversal: %w", err)
	}
	return exists, nil
}

// ListByJob devuelve las filas checkout/reverse de un trabajo junto al
// nombre del artículo, en orden de inserción. La agregación por
// (artículo, precio histórico) la hace el caso de uso de reportes.
func (r *TransactionRepo) ListByJob(jobNo string) ([]repository.JobTransactionRow, error) {
	query := `
		SELECT t.item_id, s.name, t.change_qty, t.unit_price
		FROM transactions t
		JOIN stock s ON s.id = t.item_id
		WHERE t.job_no = $1 AND t.action IN ('checkout', 'reverse')
		ORDER BY t.id`
	rows, err := r.q.Query(context.Background(), query, jobNo)
	if err != nil {
		return nil, fmt.Errorf("list by job: %w", err)
	}
	defer rows.Close()

	var list []repository.JobTransactionRow
	for rows.Next() {
		var row repository.JobTransactionRow
		if err := rows.Scan(&row.ItemID, &row.ItemName, &row.ChangeQty, &row.UnitPrice); err != nil {
			return nil, fmt.Errorf("list by job scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
