package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/topcar/stock-api/internal/application/dto"
	"github.com/topcar/stock-api/internal/application/report"
	"github.com/topcar/stock-api/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes por trabajo (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Usage godoc
// @Summary      Uso de stock por trabajo
// @Description  Neto de salidas menos reversas, valorado al precio histórico.
// @Tags         jobs
// @Produce      json
// @Param        job_no  path  string  true  "Número de trabajo"
// @Success      200  {object}  dto.JobUsageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{job_no}/usage [get]
func (h *ReportHandler) Usage(c *fiber.Ctx) error {
	jobNo := c.Params("job_no")
	out, err := h.uc.Usage(c.Context(), jobNo)
	if err != nil {
		return reportError(c, jobNo, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Reporte imprimible del trabajo (PDF)
// @Tags         jobs
// @Produce      application/pdf
// @Param        job_no  path  string  true  "Número de trabajo"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{job_no}/report.pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	jobNo := c.Params("job_no")
	doc, err := h.uc.RenderPDF(c.Context(), jobNo)
	if err != nil {
		return reportError(c, jobNo, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", "job-"+jobNo+".pdf"))
	return c.Send(doc)
}

// reportError mapea los errores del reporteador a códigos HTTP.
func reportError(c *fiber.Ctx, jobNo string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "job_no es requerido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: fmt.Sprintf("sin uso registrado para el trabajo '%s'", jobNo)})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
