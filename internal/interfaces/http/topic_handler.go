package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/application/usecase"
)

// TopicHandler maneja los temas materiales y la matriz de materialidad.
type TopicHandler struct {
	uc *usecase.TopicUseCase
}

// NewTopicHandler construye el handler.
func NewTopicHandler(uc *usecase.TopicUseCase) *TopicHandler {
	return &TopicHandler{uc: uc}
}

// owns verifica que el tema pertenezca al tenant del token. El caso de uso no
// expone GetByID, así que se resuelve contra el listado del tenant.
func (h *TopicHandler) owns(c *fiber.Ctx, id string) (bool, error) {
	topics, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return false, domainError(c, err)
	}
	for _, t := range topics {
		if t.ID == id {
			return true, nil
		}
	}
	return false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tema no encontrado"})
}

// Create godoc
// @Summary      Crear tema material
// @Tags         topics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTopicRequest  true  "tema material"
// @Success      201   {object}  dto.TopicResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/topics [post]
func (h *TopicHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTopicRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	topic, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(topic)
}

// List godoc
// @Summary      Listar temas materiales del tenant
// @Tags         topics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TopicResponse
// @Router       /api/topics [get]
func (h *TopicHandler) List(c *fiber.Ctx) error {
	topics, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(topics)
}

// Matrix godoc
// @Summary      Matriz de materialidad
// @Description  Temas del tenant clasificados en riesgos y oportunidades según
// @Description  sus ejes de impacto.
// @Tags         topics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MatrixResponse
// @Router       /api/topics/matrix [get]
func (h *TopicHandler) Matrix(c *fiber.Ctx) error {
	matrix, err := h.uc.Matrix(GetCompanyID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(matrix)
}

// Update godoc
// @Summary      Actualizar tema material
// @Tags         topics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID del tema"
// @Param        body  body  dto.UpdateTopicRequest  true  "campos a modificar"
// @Success      200   {object}  dto.TopicResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/topics/{id} [put]
func (h *TopicHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if ok, err := h.owns(c, id); !ok {
		return err
	}
	var in dto.UpdateTopicRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	topic, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(topic)
}

// Delete godoc
// @Summary      Eliminar tema material
// @Tags         topics
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del tema"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/topics/{id} [delete]
func (h *TopicHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if ok, err := h.owns(c, id); !ok {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
