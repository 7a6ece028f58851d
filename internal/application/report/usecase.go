package report

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/topcar/stock-api/internal/application/dto"
	"github.com/topcar/stock-api/internal/domain"
	"github.com/topcar/stock-api/internal/domain/repository"
)

// UseCase calcula el uso por trabajo agregando el ledger, sin tocar estado:
// el reporte se deriva por completo de las filas que escribió el motor.
type UseCase struct {
	txRepo repository.TransactionRepository
	pdfGen PDFGenerator
}

// NewUseCase construye el reporteador. pdfGen puede ser nil si no se expone
// la versión imprimible.
func NewUseCase(txRepo repository.TransactionRepository, pdfGen PDFGenerator) *UseCase {
	return &UseCase{txRepo: txRepo, pdfGen: pdfGen}
}

// clave de agrupamiento: artículo + precio histórico. Un trabajo que descargó
// el mismo artículo a dos precios distintos produce dos líneas, no una; si se
// colapsaran cambiaría el redondeo de los totales reportados.
type usageKey struct {
	itemID int64
	price  string
}

type usageGroup struct {
	itemID    int64
	name      string
	unitPrice decimal.Decimal
	sumChange int64
}

// Usage devuelve el uso neto del trabajo, valorado al precio vigente al
// momento de cada transacción. Los grupos con neto 0 (totalmente anulados)
// se conservan como línea en cero; ErrNotFound solo cuando el trabajo no
// tiene ninguna fila en el ledger.
func (uc *UseCase) Usage(_ context.Context, jobNo string) (*dto.JobUsageResponse, error) {
	jobNo = strings.TrimSpace(jobNo)
	if jobNo == "" {
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.txRepo.ListByJob(jobNo)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	groups := make(map[usageKey]*usageGroup)
	var order []usageKey
	for _, row := range rows {
		key := usageKey{itemID: row.ItemID, price: row.UnitPrice.String()}
		g, ok := groups[key]
		if !ok {
			g = &usageGroup{itemID: row.ItemID, name: row.ItemName, unitPrice: row.UnitPrice}
			groups[key] = g
			order = append(order, key)
		}
		g.sumChange += row.ChangeQty
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := groups[order[i]], groups[order[j]]
		if a.name != b.name {
			return a.name < b.name
		}
		return a.unitPrice.LessThan(b.unitPrice)
	})

	items := make([]dto.JobUsageLineDTO, 0, len(order))
	total := decimal.Zero
	for _, key := range order {
		g := groups[key]
		// checkouts aportan deltas negativos (uso positivo); las reversas,
		// deltas positivos que lo reducen.
		netQty := -g.sumChange
		lineTotal := decimal.NewFromInt(netQty).Mul(g.unitPrice).Round(2)
		total = total.Add(lineTotal)
		items = append(items, dto.JobUsageLineDTO{
			ItemID:    g.itemID,
			Name:      g.name,
			NetQty:    netQty,
			UnitPrice: g.unitPrice,
			LineTotal: lineTotal,
		})
	}

	return &dto.JobUsageResponse{
		JobNo:       jobNo,
		GeneratedAt: time.Now().UTC(),
		TotalValue:  total.Round(2),
		Items:       items,
	}, nil
}

// RenderPDF genera el reporte imprimible del trabajo.
func (uc *UseCase) RenderPDF(ctx context.Context, jobNo string) ([]byte, error) {
	rep, err := uc.Usage(ctx, jobNo)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateJobUsagePDF(ctx, rep)
}
