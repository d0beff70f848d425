package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/application/usecase"
	"github.com/tlt-imports/reposicion-api/internal/domain"
)

// HistoricoHandler consultas de histórico por SKU y alta manual de llegadas (protegido).
type HistoricoHandler struct {
	uc *usecase.HistoricoUseCase
}

// NewHistoricoHandler construye el handler.
func NewHistoricoHandler(uc *usecase.HistoricoUseCase) *HistoricoHandler {
	return &HistoricoHandler{uc: uc}
}

func paginacion(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Ventas godoc
// @Summary      Histórico de ventas de un SKU
// @Tags         historico
// @Security     Bearer
// @Produce      json
// @Param        sku     path   string  true   "SKU"
// @Param        limit   query  int     false  "Límite"   default(100)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/historico/{sku}/ventas [get]
func (h *HistoricoHandler) Ventas(c *fiber.Ctx) error {
	limit, offset := paginacion(c)
	ventas, err := h.uc.VentasPorSKU(c.Params("sku"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, dto.FromVenta(v))
	}
	return c.JSON(out)
}

// Compras godoc
// @Summary      Llegadas a bodega de un SKU
// @Tags         historico
// @Security     Bearer
// @Produce      json
// @Param        sku     path   string  true   "SKU"
// @Param        limit   query  int     false  "Límite"   default(100)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.CompraResponse
// @Router       /api/historico/{sku}/compras [get]
func (h *HistoricoHandler) Compras(c *fiber.Ctx) error {
	limit, offset := paginacion(c)
	compras, err := h.uc.ComprasPorSKU(c.Params("sku"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.CompraResponse, 0, len(compras))
	for _, cp := range compras {
		out = append(out, dto.FromCompra(cp))
	}
	return c.JSON(out)
}

// Transito godoc
// @Summary      Unidades en tránsito de un SKU (carga Excel)
// @Tags         historico
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {array}  dto.TransitoResponse
// @Router       /api/historico/{sku}/transito [get]
func (h *HistoricoHandler) Transito(c *fiber.Ctx) error {
	transitos, err := h.uc.TransitoPorSKU(c.Params("sku"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.TransitoResponse, 0, len(transitos))
	for _, t := range transitos {
		out = append(out, dto.FromTransito(t))
	}
	return c.JSON(out)
}

// Packs godoc
// @Summary      Composición de un pack
// @Tags         historico
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU del pack"
// @Success      200  {array}  dto.PackResponse
// @Router       /api/historico/{sku}/packs [get]
func (h *HistoricoHandler) Packs(c *fiber.Ctx) error {
	packs, err := h.uc.ComposicionPack(c.Params("sku"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.PackResponse, 0, len(packs))
	for _, p := range packs {
		out = append(out, dto.FromPack(p))
	}
	return c.JSON(out)
}

// RegistrarLlegada godoc
// @Summary      Registrar una llegada manual a bodega
// @Tags         historico
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LlegadaManualRequest  true  "SKU, fecha y cantidad"
// @Success      201   {object}  dto.CompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/historico/llegadas [post]
func (h *HistoricoHandler) RegistrarLlegada(c *fiber.Ctx) error {
	var in dto.LlegadaManualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	compra, err := h.uc.RegistrarLlegada(in.SKU, in.Fecha, in.Cantidad)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku, fecha y cantidad positiva son requeridos"})
		}
		if errors.Is(err, domain.ErrCompraDuplicada) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCompra(compra))
}
