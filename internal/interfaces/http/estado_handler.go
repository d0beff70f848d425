package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/application/estado"
	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

// EstadoHandler maneja las transiciones del workflow de reposición (protegido).
type EstadoHandler struct {
	uc *estado.Usecase
}

// NewEstadoHandler construye el handler.
func NewEstadoHandler(uc *estado.Usecase) *EstadoHandler {
	return &EstadoHandler{uc: uc}
}

// Transicionar godoc
// @Summary      Avanzar el workflow de un producto
// @Description  Aplica una transición válida del ciclo de reposición y registra el detalle de la etapa.
// @Tags         status
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransicionRequest  true  "SKU, estado destino y datos de la etapa"
// @Success      200   {object}  dto.TransicionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/status [post]
func (h *EstadoHandler) Transicionar(c *fiber.Ctx) error {
	var in dto.TransicionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SKU == "" || in.SiguienteEstado == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku y nextStatus son requeridos"})
	}

	p, err := h.uc.Transicionar(in)
	if err != nil {
		var tr *workflow.ErrorTransicion
		switch {
		case errors.As(err, &tr):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: tr.Error()})
		case errors.Is(err, domain.ErrProductoNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrSKUYaExiste):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nuevo SKU ya existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	out := dto.TransicionResponse{
		Mensaje: "estado actualizado",
		SKU:     p.SKU,
		Estado:  string(p.Status),
	}
	if in.NuevoSKU != "" && p.SKU == in.NuevoSKU {
		out.NuevoSKU = p.SKU
	}
	return c.JSON(out)
}

// Excluir godoc
// @Summary      Excluir o reincorporar un SKU del análisis
// @Tags         status
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU"
// @Param        body  body  dto.ExcluirRequest  true  "Excluir o reincorporar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/status/{sku}/excluir [post]
func (h *EstadoHandler) Excluir(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.ExcluirRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.Excluir(sku, in.Excluir)
	if err != nil {
		if errors.Is(err, domain.ErrProductoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromProducto(p))
}
