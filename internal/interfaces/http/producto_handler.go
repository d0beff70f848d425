package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/application/usecase"
	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

// ProductoHandler maneja las peticiones HTTP del catálogo (protegido).
type ProductoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.CatalogoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku es requerido"})
	}
	p, err := h.uc.Crear(usecase.NuevoProducto{
		SKU:         in.SKU,
		Descripcion: in.Descripcion,
		Link:        in.Link,
		CostoFobRMB: in.CostoFobRMB,
		CBM:         in.CBM,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSKUYaExiste) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el SKU ya existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProducto(p))
}

// Listar godoc
// @Summary      Listar el catálogo
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Filtrar por estado del workflow"
// @Param        busqueda     query  string  false  "Buscar por SKU o descripción"
// @Param        completados  query  bool    false  "Incluir workflows completados"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ProductoListResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	filtro := repository.FiltroProductos{
		Status:             workflow.Estado(c.Query("status")),
		IncluirCompletados: c.QueryBool("completados", false),
		SoloEnWorkflow:     c.QueryBool("enWorkflow", false),
		Busqueda:           c.Query("busqueda"),
	}
	productos, err := h.uc.Listar(filtro, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, dto.FromProducto(p))
	}
	return c.JSON(dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// Obtener godoc
// @Summary      Obtener producto por SKU
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{sku} [get]
func (h *ProductoHandler) Obtener(c *fiber.Ctx) error {
	p, err := h.uc.Obtener(c.Params("sku"))
	if err != nil {
		if errors.Is(err, domain.ErrProductoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromProducto(p))
}

// Editar godoc
// @Summary      Editar datos comerciales de un producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU"
// @Param        body  body  dto.EditarProductoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{sku} [put]
func (h *ProductoHandler) Editar(c *fiber.Ctx) error {
	var in dto.EditarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.Editar(c.Params("sku"), usecase.EdicionProducto{
		Descripcion: in.Descripcion,
		Link:        in.Link,
		CostoFobRMB: in.CostoFobRMB,
		CBM:         in.CBM,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromProducto(p))
}

// Eliminar godoc
// @Summary      Eliminar un producto fuera del workflow
// @Tags         productos
// @Security     Bearer
// @Param        sku  path  string  true  "SKU"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{sku} [delete]
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("sku")); err != nil {
		if errors.Is(err, domain.ErrProductoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el producto está en medio del workflow"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
