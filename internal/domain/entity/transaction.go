package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones del ledger de transacciones.
const (
	ActionCheckout = "checkout" // salida hacia un trabajo
	ActionReceive  = "receive"  // entrada de stock
	ActionReverse  = "reverse"  // anulación de una transacción previa
)

// Transaction es una entrada inmutable del ledger (append-only).
// ChangeQty es un delta con signo: negativo para salidas, positivo para entradas.
// UnitPrice es el snapshot del precio al momento de ejecutar; en una reversa se
// copia tal cual de la transacción original, nunca se vuelve a leer del catálogo.
// ReversedFrom referencia a la transacción anulada (solo en filas reverse).
type Transaction struct {
	ID           int64
	ItemID       int64
	ChangeQty    int64
	JobNo        string // vacío = NULL (receive y sus reversas)
	Action       string
	UnitPrice    decimal.Decimal
	ReversedFrom *int64
	CreatedAt    time.Time
}

// IsReversal indica si la fila es una reversa.
func (t *Transaction) IsReversal() bool {
	return t.Action == ActionReverse
}
