package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isLockTimeout verifica si un error es un lock_not_available (55P03),
// es decir, otro escritor retuvo la fila más allá de lock_timeout.
func isLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "55P03" // lock_not_available
	}
	return false
}
