package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/dto"
	"github.com/tlt-imports/reposicion-api/internal/application/usecase"
	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// ConfiguracionHandler maneja la configuración global del negocio (protegido, admin).
type ConfiguracionHandler struct {
	uc *usecase.ConfiguracionUseCase
}

// NewConfiguracionHandler construye el handler.
func NewConfiguracionHandler(uc *usecase.ConfiguracionUseCase) *ConfiguracionHandler {
	return &ConfiguracionHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración vigente
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.Configuracion
// @Router       /api/config [get]
func (h *ConfiguracionHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.uc.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cfg)
}

// Update godoc
// @Summary      Reemplazar la configuración completa
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Configuracion  true  "Configuración completa"
// @Success      200   {object}  entity.Configuracion
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/config [put]
func (h *ConfiguracionHandler) Update(c *fiber.Ctx) error {
	var in entity.Configuracion
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cfg, err := h.uc.Update(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cfg)
}

// Reset godoc
// @Summary      Volver a la configuración por defecto
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.Configuracion
// @Router       /api/config/reset [post]
func (h *ConfiguracionHandler) Reset(c *fiber.Ctx) error {
	cfg, err := h.uc.Reset()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cfg)
}
