package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/contenedores"
	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// ContenedorHandler maneja las peticiones HTTP de contenedores (protegido).
type ContenedorHandler struct {
	uc *contenedores.Usecase
}

// NewContenedorHandler construye el handler.
func NewContenedorHandler(uc *contenedores.Usecase) *ContenedorHandler {
	return &ContenedorHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar un contenedor
// @Tags         contenedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearContenedorRequest  true  "Datos del contenedor"
// @Success      201   {object}  dto.ContenedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contenedores [post]
func (h *ContenedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearContenedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Numero == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero es requerido"})
	}
	cont, err := h.uc.Crear(in.Numero, in.Naviera, in.Notas, in.FechaSalida, in.FechaLlegadaEstimada)
	if err != nil {
		if errors.Is(err, domain.ErrContenedorDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un contenedor con ese número"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromContenedor(cont))
}

// Listar godoc
// @Summary      Listar contenedores
// @Tags         contenedores
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.ContenedorResponse
// @Router       /api/contenedores [get]
func (h *ContenedorHandler) Listar(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	conts, err := h.uc.Listar(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ContenedorResponse, 0, len(conts))
	for _, cont := range conts {
		out = append(out, dto.FromContenedor(cont))
	}
	return c.JSON(out)
}

// Obtener godoc
// @Summary      Obtener contenedor por ID
// @Tags         contenedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contenedor"
// @Success      200  {object}  dto.ContenedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contenedores/{id} [get]
func (h *ContenedorHandler) Obtener(c *fiber.Ctx) error {
	cont, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromContenedor(cont))
}

// Actualizar godoc
// @Summary      Actualizar un contenedor
// @Description  Registrar actual_arrival_date procesa la llegada: compras, stock y cierre de workflow de los productos embarcados.
// @Tags         contenedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contenedor"
// @Param        body  body  dto.ActualizarContenedorRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ContenedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contenedores/{id} [patch]
func (h *ContenedorHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarContenedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var estado *entity.EstadoContenedor
	if in.Estado != nil {
		e := entity.EstadoContenedor(*in.Estado)
		estado = &e
	}
	cont, err := h.uc.Actualizar(c.Context(), c.Params("id"), contenedores.ActualizacionContenedor{
		Naviera:          in.Naviera,
		Estado:           estado,
		FechaSalida:      in.FechaSalida,
		ETA:              in.FechaLlegadaEstimada,
		FechaLlegadaReal: in.FechaLlegadaReal,
		Notas:            in.Notas,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromContenedor(cont))
}

// Eliminar godoc
// @Summary      Eliminar un contenedor no procesado
// @Tags         contenedores
// @Security     Bearer
// @Param        id  path  string  true  "ID del contenedor"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contenedores/{id} [delete]
func (h *ContenedorHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "un contenedor procesado no se puede eliminar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
