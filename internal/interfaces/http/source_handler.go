package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/application/usecase"
)

// SourceHandler maneja el CRUD de fuentes de emisión (protegido).
type SourceHandler struct {
	uc *usecase.SourceUseCase
}

// NewSourceHandler construye el handler.
func NewSourceHandler(uc *usecase.SourceUseCase) *SourceHandler {
	return &SourceHandler{uc: uc}
}

// getOwned carga la fuente y verifica que pertenezca al tenant del token.
// Un ID de otra empresa responde 404, nunca 403, para no filtrar existencia.
func (h *SourceHandler) getOwned(c *fiber.Ctx, id string) (*dto.SourceResponse, error) {
	source, err := h.uc.GetByID(id)
	if err != nil {
		return nil, domainError(c, err)
	}
	if source == nil || source.CompanyID != GetCompanyID(c) {
		return nil, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fuente no encontrada"})
	}
	return source, nil
}

// Create godoc
// @Summary      Crear fuente de emisión
// @Tags         sources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSourceRequest  true  "fuente de emisión"
// @Success      201   {object}  dto.SourceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sources [post]
func (h *SourceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	source, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(source)
}

// GetByID godoc
// @Summary      Obtener fuente por ID
// @Tags         sources
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la fuente"
// @Success      200  {object}  dto.SourceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sources/{id} [get]
func (h *SourceHandler) GetByID(c *fiber.Ctx) error {
	source, err := h.getOwned(c, c.Params("id"))
	if source == nil {
		return err
	}
	return c.JSON(source)
}

// List godoc
// @Summary      Listar fuentes del tenant
// @Tags         sources
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.SourceListResponse
// @Router       /api/sources [get]
func (h *SourceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fuente de emisión
// @Tags         sources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID de la fuente"
// @Param        body  body  dto.UpdateSourceRequest  true  "campos a modificar"
// @Success      200   {object}  dto.SourceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sources/{id} [put]
func (h *SourceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if owned, err := h.getOwned(c, id); owned == nil {
		return err
	}
	var in dto.UpdateSourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	source, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(source)
}

// Delete godoc
// @Summary      Eliminar fuente de emisión
// @Tags         sources
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la fuente"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sources/{id} [delete]
func (h *SourceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if owned, err := h.getOwned(c, id); owned == nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
