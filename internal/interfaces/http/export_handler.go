package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/analisis"
	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/infrastructure/excel"
	"github.com/tlt-imports/reposicion-api/internal/infrastructure/pdf"
)

// ExportHandler descarga el análisis de reposición en XLSX o PDF (protegido).
type ExportHandler struct {
	analisis   *analisis.Usecase
	exportador *excel.Exportador
	resumen    *pdf.GeneradorResumen
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *analisis.Usecase, exportador *excel.Exportador, resumen *pdf.GeneradorResumen) *ExportHandler {
	return &ExportHandler{analisis: uc, exportador: exportador, resumen: resumen}
}

// XLSX godoc
// @Summary      Exportar el análisis a Excel
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/export/xlsx [get]
func (h *ExportHandler) XLSX(c *fiber.Ctx) error {
	resultados, _, err := h.analisis.AnalizarCatalogo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	ahora := time.Now()
	b, err := h.exportador.Exportar(resultados, ahora)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	nombre := fmt.Sprintf("analisis-reposicion-%s.xlsx", ahora.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nombre))
	return c.Send(b)
}

// PDF godoc
// @Summary      Exportar el análisis a PDF
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	resultados, _, err := h.analisis.AnalizarCatalogo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	ahora := time.Now()
	b, err := h.resumen.Generar(resultados, ahora)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	nombre := fmt.Sprintf("analisis-reposicion-%s.pdf", ahora.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nombre))
	return c.Send(b)
}
