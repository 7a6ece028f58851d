package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/topcar/stock-api/internal/application/ledger"
	"github.com/topcar/stock-api/internal/domain"
	"github.com/topcar/stock-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Es la unidad de trabajo del motor: o se aplican la cantidad nueva y la
// fila del ledger juntas, o no se aplica nada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un Begin/Commit fallido o un lock que excede la espera
// acotada se reportan como ErrStorageUnavailable.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewStockItemRepository(tx)
	txRepo := NewTransactionRepository(tx)

	if err := fn(itemRepo, txRepo); err != nil {
		if isLockTimeout(err) {
			return fmt.Errorf("%w: lock timeout: %v", domain.ErrStorageUnavailable, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
