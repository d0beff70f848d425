package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/carga"
	"github.com/tlt-imports/reposicion-api/internal/application/dto"
)

// CargaHandler dispara el procesamiento del Excel consolidado (protegido).
type CargaHandler struct {
	uc *carga.Usecase
}

// NewCargaHandler construye el handler.
func NewCargaHandler(uc *carga.Usecase) *CargaHandler {
	return &CargaHandler{uc: uc}
}

// Subir godoc
// @Summary      Subir un Excel de carga masiva al bucket
// @Description  Recibe el libro por multipart y devuelve la ruta en el bucket, lista para POST /api/process.
// @Tags         carga
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Libro .xlsx"
// @Success      201   {object}  dto.CargaSubidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *CargaHandler) Subir(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file es requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	ruta, err := h.uc.Subir(c.Context(), fh.Filename, f, fh.Size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CargaSubidaResponse{Ruta: ruta})
}

// Procesar godoc
// @Summary      Procesar un Excel de carga masiva
// @Description  Lee el libro ya subido al bucket, reemplaza las tablas de histórico en una sola transacción y borra el archivo.
// @Tags         carga
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CargaRequest  true  "Ruta del archivo en el bucket"
// @Success      200   {object}  dto.CargaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/process [post]
func (h *CargaHandler) Procesar(c *fiber.Ctx) error {
	var in dto.CargaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Ruta == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filePath es requerido"})
	}
	out, err := h.uc.Procesar(c.Context(), in.Ruta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
