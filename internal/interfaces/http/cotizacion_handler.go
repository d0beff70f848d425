package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/cotizaciones"
	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/domain"
)

// CotizacionHandler maneja las ofertas de proveedor por SKU (protegido).
type CotizacionHandler struct {
	uc *cotizaciones.Usecase
}

// NewCotizacionHandler construye el handler.
func NewCotizacionHandler(uc *cotizaciones.Usecase) *CotizacionHandler {
	return &CotizacionHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar una oferta de proveedor
// @Tags         cotizaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearCotizacionRequest  true  "Datos de la oferta"
// @Success      201   {object}  dto.CotizacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cotizaciones [post]
func (h *CotizacionHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCotizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cot, err := h.uc.Crear(cotizaciones.NuevaCotizacion{
		SKU:             in.SKU,
		Proveedor:       in.Proveedor,
		PrecioUnitario:  in.PrecioUnitario,
		Moneda:          in.Moneda,
		UnidadesPorCaja: in.UnidadesPorCaja,
		CBMPorCaja:      in.CBMPorCaja,
		DiasProduccion:  in.DiasProduccion,
		Notas:           in.Notas,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku, proveedor, precio positivo y moneda RMB o USD son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCotizacion(cot))
}

// ListarPorSKU godoc
// @Summary      Ofertas registradas para un SKU
// @Tags         cotizaciones
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {array}  dto.CotizacionResponse
// @Router       /api/cotizaciones/{sku} [get]
func (h *CotizacionHandler) ListarPorSKU(c *fiber.Ctx) error {
	cots, err := h.uc.ListarPorSKU(c.Params("sku"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.CotizacionResponse, 0, len(cots))
	for _, cot := range cots {
		out = append(out, dto.FromCotizacion(cot))
	}
	return c.JSON(out)
}

// Seleccionar godoc
// @Summary      Marcar una oferta como la elegida para su SKU
// @Tags         cotizaciones
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.CotizacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/{id}/seleccionar [post]
func (h *CotizacionHandler) Seleccionar(c *fiber.Ctx) error {
	cot, err := h.uc.Seleccionar(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromCotizacion(cot))
}

// Eliminar godoc
// @Summary      Eliminar una oferta
// @Tags         cotizaciones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la oferta"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/{id} [delete]
func (h *CotizacionHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
