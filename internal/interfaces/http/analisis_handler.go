package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/application/analisis"
	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/domain"
)

// AnalisisHandler maneja las peticiones HTTP del análisis de reposición (protegido).
type AnalisisHandler struct {
	uc *analisis.Usecase
}

// NewAnalisisHandler construye el handler.
func NewAnalisisHandler(uc *analisis.Usecase) *AnalisisHandler {
	return &AnalisisHandler{uc: uc}
}

// Analizar godoc
// @Summary      Análisis de reposición del catálogo
// @Description  Sin parámetros analiza todos los SKU activos; con ?sku analiza uno solo.
// @Tags         analysis
// @Security     Bearer
// @Produce      json
// @Param        sku          query  string  false  "SKU a analizar"
// @Param        precioVenta  query  number  false  "Precio de venta para el cálculo de margen"
// @Success      200  {object}  dto.AnalisisResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/analysis [get]
func (h *AnalisisHandler) Analizar(c *fiber.Ctx) error {
	sku := c.Query("sku")
	if sku != "" {
		precio, err := decimal.NewFromString(c.Query("precioVenta", "0"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "precioVenta inválido"})
		}
		res, cfg, err := h.uc.AnalizarSKU(sku, precio)
		if err != nil {
			if errors.Is(err, domain.ErrProductoNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(dto.FromResultados([]*analisis.ResultadoProducto{res}, cfg))
	}

	resultados, cfg, err := h.uc.AnalizarCatalogo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromResultados(resultados, cfg))
}
