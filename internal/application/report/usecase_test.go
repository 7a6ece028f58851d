package report_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topcar/stock-api/internal/application/report"
	"github.com/topcar/stock-api/internal/domain"
	"github.com/topcar/stock-api/internal/domain/entity"
	"github.com/topcar/stock-api/internal/domain/repository"
)

// fakeLedger entrega filas enlatadas por trabajo, como las que escribe el
// motor: checkouts con delta negativo, reversas con delta positivo.
type fakeLedger struct {
	rows map[string][]repository.JobTransactionRow
}

func (f *fakeLedger) Create(*entity.Transaction) error           { return nil }
func (f *fakeLedger) GetByID(int64) (*entity.Transaction, error) { return nil, nil }
func (f *fakeLedger) HasReversal(int64) (bool, error)            { return false, nil }

func (f *fakeLedger) ListByJob(jobNo string) ([]repository.JobTransactionRow, error) {
	return f.rows[jobNo], nil
}

func row(itemID int64, name string, changeQty int64, price string) repository.JobTransactionRow {
	return repository.JobTransactionRow{
		ItemID:    itemID,
		ItemName:  name,
		ChangeQty: changeQty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func newReporter(rows map[string][]repository.JobTransactionRow) *report.UseCase {
	return report.NewUseCase(&fakeLedger{rows: rows}, nil)
}

func TestUsage_AgrupaMismoArticuloYPrecio(t *testing.T) {
	uc := newReporter(map[string][]repository.JobTransactionRow{
		"J1": {
			row(1, "Filtro de aire", -5, "10.00"),
			row(1, "Filtro de aire", -3, "10.00"),
		},
	})

	rep, err := uc.Usage(context.Background(), "J1")
	require.NoError(t, err)

	assert.Equal(t, "J1", rep.JobNo)
	require.Len(t, rep.Items, 1)
	line := rep.Items[0]
	assert.Equal(t, int64(1), line.ItemID)
	assert.Equal(t, int64(8), line.NetQty)
	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, line.LineTotal.Equal(decimal.RequireFromString("80.00")))
	assert.True(t, rep.TotalValue.Equal(decimal.RequireFromString("80.00")))
	assert.False(t, rep.GeneratedAt.IsZero())
}

func TestUsage_PrecioHistoricoDistintoSeparaLineas(t *testing.T) {
	// El mismo artículo descargado antes y después de un cambio de precio
	// produce dos líneas, cada una valorada a su precio de época.
	uc := newReporter(map[string][]repository.JobTransactionRow{
		"J2": {
			row(1, "Bujía", -4, "4.50"),
			row(1, "Bujía", -2, "5.00"),
		},
	})

	rep, err := uc.Usage(context.Background(), "J2")
	require.NoError(t, err)

	require.Len(t, rep.Items, 2)
	assert.True(t, rep.Items[0].UnitPrice.Equal(decimal.RequireFromString("4.50")), "desempate por precio ascendente")
	assert.Equal(t, int64(4), rep.Items[0].NetQty)
	assert.True(t, rep.Items[0].LineTotal.Equal(decimal.RequireFromString("18.00")))
	assert.True(t, rep.Items[1].UnitPrice.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(t, int64(2), rep.Items[1].NetQty)
	assert.True(t, rep.Items[1].LineTotal.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, rep.TotalValue.Equal(decimal.RequireFromString("28.00")))
}

func TestUsage_GrupoTotalmenteAnuladoQuedaEnCero(t *testing.T) {
	uc := newReporter(map[string][]repository.JobTransactionRow{
		"J3": {
			row(1, "Correa", -5, "20.00"),
			row(1, "Correa", 5, "20.00"), // reversa completa
			row(2, "Radiador", -1, "200.00"),
		},
	})

	rep, err := uc.Usage(context.Background(), "J3")
	require.NoError(t, err)

	require.Len(t, rep.Items, 2, "el grupo en cero se conserva como línea")
	assert.Equal(t, "Correa", rep.Items[0].Name)
	assert.Equal(t, int64(0), rep.Items[0].NetQty)
	assert.True(t, rep.Items[0].LineTotal.Equal(decimal.Zero))
	assert.True(t, rep.TotalValue.Equal(decimal.RequireFromString("200.00")))
}

func TestUsage_SoloReversasSigueSiendoReporte(t *testing.T) {
	// Un trabajo cuyo único movimiento quedó anulado no es ErrNotFound:
	// hay filas en el ledger, el reporte sale con neto cero.
	uc := newReporter(map[string][]repository.JobTransactionRow{
		"J4": {
			row(1, "Grasa", -2, "3.00"),
			row(1, "Grasa", 2, "3.00"),
		},
	})

	rep, err := uc.Usage(context.Background(), "J4")
	require.NoError(t, err)
	require.Len(t, rep.Items, 1)
	assert.Equal(t, int64(0), rep.Items[0].NetQty)
	assert.True(t, rep.TotalValue.Equal(decimal.Zero))
}

func TestUsage_OrdenPorNombreAscendente(t *testing.T) {
	uc := newReporter(map[string][]repository.JobTransactionRow{
		"J5": {
			row(3, "Radiador", -1, "200.00"),
			row(1, "Amortiguador", -2, "120.00"),
			row(2, "Bujía", -4, "4.50"),
		},
	})

	rep, err := uc.Usage(context.Background(), "J5")
	require.NoError(t, err)

	require.Len(t, rep.Items, 3)
	assert.Equal(t, "Amortiguador", rep.Items[0].Name)
	assert.Equal(t, "Bujía", rep.Items[1].Name)
	assert.Equal(t, "Radiador", rep.Items[2].Name)
}

func TestUsage_RedondeoADosDecimales(t *testing.T) {
	uc := newReporter(map[string][]repository.JobTransactionRow{
		"J6": {
			row(1, "Tornillo", -3, "0.333"),
		},
	})

	rep, err := uc.Usage(context.Background(), "J6")
	require.NoError(t, err)

	require.Len(t, rep.Items, 1)
	assert.True(t, rep.Items[0].LineTotal.Equal(decimal.RequireFromString("1.00")),
		"3 × 0.333 = 0.999 se redondea a 1.00")
	assert.True(t, rep.TotalValue.Equal(decimal.RequireFromString("1.00")))
}

func TestUsage_TrabajoSinFilas(t *testing.T) {
	uc := newReporter(map[string][]repository.JobTransactionRow{})

	_, err := uc.Usage(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsage_JobNoVacio(t *testing.T) {
	uc := newReporter(map[string][]repository.JobTransactionRow{})

	_, err := uc.Usage(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Usage(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
