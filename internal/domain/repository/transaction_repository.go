package repository

import (
	"github.com/shopspring/decimal"

	"github.com/topcar/stock-api/internal/domain/entity"
)

// JobTransactionRow es la fila de lectura para el reporte de uso por trabajo:
// una transacción checkout/reverse del trabajo junto al nombre del artículo.
type JobTransactionRow struct {
	ItemID    int64
	ItemName  string
	ChangeQty int64
	UnitPrice decimal.Decimal
}

// TransactionRepository define el puerto de persistencia para el ledger.
// Las transacciones son inmutables: solo hay inserción y lecturas.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id int64) (*entity.Transaction, error)
	// HasReversal indica si ya existe una fila reverse apuntando a originalID.
	HasReversal(originalID int64) (bool, error)
	// ListByJob devuelve las filas checkout/reverse de un trabajo.
	ListByJob(jobNo string) ([]JobTransactionRow, error)
}
