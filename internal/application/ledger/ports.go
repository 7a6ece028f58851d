package ledger

import (
	"context"

	"github.com/topcar/stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada operación del ledger corre completa
// (leer → validar → mutar → insertar) dentro de un Run: Commit si fn
// devuelve nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
