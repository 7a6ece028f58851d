package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobUsageLineDTO una línea del reporte de uso por trabajo.
// Un mismo artículo aparece en varias líneas si se descargó a precios
// históricos distintos (el agrupamiento es por artículo y precio).
type JobUsageLineDTO struct {
	ItemID    int64           `json:"item_id"`
	Name      string          `json:"name"`
	NetQty    int64           `json:"net_qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// JobUsageResponse reporte de uso de un trabajo, valorado al precio
// vigente al momento de cada transacción.
type JobUsageResponse struct {
	JobNo       string            `json:"job_no"`
	GeneratedAt time.Time         `json:"generated_at"`
	TotalValue  decimal.Decimal   `json:"total_value"`
	Items       []JobUsageLineDTO `json:"items"`
}
