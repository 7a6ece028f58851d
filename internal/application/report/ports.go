package report

import (
	"context"

	"github.com/topcar/stock-api/internal/application/dto"
)

// PDFGenerator genera la versión imprimible del reporte de uso por trabajo.
type PDFGenerator interface {
	GenerateJobUsagePDF(ctx context.Context, report *dto.JobUsageResponse) ([]byte, error)
}
