package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/application/usecase"
)

// GoalHandler maneja el CRUD de metas de carbono (protegido).
type GoalHandler struct {
	uc *usecase.GoalUseCase
}

// NewGoalHandler construye el handler.
func NewGoalHandler(uc *usecase.GoalUseCase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

func (h *GoalHandler) getOwned(c *fiber.Ctx, id string) (*dto.GoalResponse, error) {
	goal, err := h.uc.GetByID(id)
	if err != nil {
		return nil, domainError(c, err)
	}
	if goal == nil || goal.CompanyID != GetCompanyID(c) {
		return nil, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "meta no encontrada"})
	}
	return goal, nil
}

// Create godoc
// @Summary      Crear meta de carbono
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateGoalRequest  true  "meta"
// @Success      201   {object}  dto.GoalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/goals [post]
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	goal, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

// GetByID godoc
// @Summary      Obtener meta por ID
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la meta"
// @Success      200  {object}  dto.GoalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/goals/{id} [get]
func (h *GoalHandler) GetByID(c *fiber.Ctx) error {
	goal, err := h.getOwned(c, c.Params("id"))
	if goal == nil {
		return err
	}
	return c.JSON(goal)
}

// List godoc
// @Summary      Listar metas del tenant
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.GoalListResponse
// @Router       /api/goals [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar meta de carbono
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID de la meta"
// @Param        body  body  dto.UpdateGoalRequest  true  "campos a modificar"
// @Success      200   {object}  dto.GoalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/goals/{id} [put]
func (h *GoalHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if owned, err := h.getOwned(c, id); owned == nil {
		return err
	}
	var in dto.UpdateGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	goal, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(goal)
}

// Delete godoc
// @Summary      Eliminar meta de carbono
// @Tags         goals
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la meta"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/goals/{id} [delete]
func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if owned, err := h.getOwned(c, id); owned == nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Recalculate godoc
// @Summary      Recalcular progreso de una meta
// @Description  Recalcula el avance a partir de las emisiones agregadas del año
// @Description  contra el año base de la meta.
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true  "ID de la meta"
// @Param        year  query  int     true  "año actual de reporte"
// @Success      200  {object}  dto.GoalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/goals/{id}/recalculate [post]
func (h *GoalHandler) Recalculate(c *fiber.Ctx) error {
	id := c.Params("id")
	if owned, err := h.getOwned(c, id); owned == nil {
		return err
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year inválido"})
	}
	goal, err := h.uc.RecalculateProgress(c.Context(), GetCompanyID(c), id, year)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(goal)
}
