package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/collection"
	"github.com/S-FND/esg-core-api/internal/application/dto"
)

// VerifyHandler maneja las decisiones del verificador sobre registros enviados.
type VerifyHandler struct {
	uc *collection.VerifyUseCase
}

// NewVerifyHandler construye el handler.
func NewVerifyHandler(uc *collection.VerifyUseCase) *VerifyHandler {
	return &VerifyHandler{uc: uc}
}

// Verify godoc
// @Summary      Decidir sobre un registro enviado
// @Description  Verified y Approved congelan el registro; Rejected exige
// @Description  comentario y lo devuelve al colector para reenvío.
// @Tags         verification
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.VerifyRequest  true  "entry_id, decision, comment"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/verify [post]
func (h *VerifyHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EntryID == "" || in.Decision == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entry_id y decision son requeridos"})
	}
	out, err := h.uc.Verify(c.Context(), GetCompanyID(c), GetUserID(c), GetRole(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
