package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/application/usecase"
)

// FactorHandler expone el registro estático de factores de emisión y el
// motor de conversión de unidades. Todo es de solo lectura: los factores
// viven compilados en el binario, no en la base de datos.
type FactorHandler struct {
	factors *usecase.FactorUseCase
	units   *usecase.UnitUseCase
}

// NewFactorHandler construye el handler.
func NewFactorHandler(factors *usecase.FactorUseCase, units *usecase.UnitUseCase) *FactorHandler {
	return &FactorHandler{factors: factors, units: units}
}

// unescape decodifica parámetros de ruta con caracteres acentuados
// (las categorías del registro llevan tildes, ej. "Combustión Móvil").
func unescape(s string) (string, error) {
	return url.PathUnescape(s)
}

func parseScope(c *fiber.Ctx) (int, error) {
	scope, err := strconv.Atoi(c.Params("scope"))
	if err != nil || scope < 1 || scope > 4 {
		return 0, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "scope debe ser 1, 2, 3 o 4"})
	}
	return scope, nil
}

// ByScope godoc
// @Summary      Factores de un alcance
// @Tags         factors
// @Produce      json
// @Param        scope  path  int  true  "alcance GHG (1-4)"
// @Success      200  {object}  dto.FactorListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/factors/scope/{scope} [get]
func (h *FactorHandler) ByScope(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if scope == 0 {
		return err
	}
	return c.JSON(h.factors.ByScope(scope))
}

// Categories godoc
// @Summary      Categorías de un alcance
// @Tags         factors
// @Produce      json
// @Param        scope  path  int  true  "alcance GHG (1-4)"
// @Success      200  {array}  string
// @Router       /api/factors/scope/{scope}/categories [get]
func (h *FactorHandler) Categories(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if scope == 0 {
		return err
	}
	return c.JSON(h.factors.Categories(scope))
}

// ByCategory godoc
// @Summary      Factores de una categoría dentro de un alcance
// @Tags         factors
// @Produce      json
// @Param        scope     path  int     true  "alcance GHG (1-4)"
// @Param        category  path  string  true  "categoría, ej. Combustión Móvil"
// @Success      200  {object}  dto.FactorListResponse
// @Router       /api/factors/scope/{scope}/category/{category} [get]
func (h *FactorHandler) ByCategory(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if scope == 0 {
		return err
	}
	category, err := unescape(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría inválida"})
	}
	return c.JSON(h.factors.ByCategory(scope, category))
}

// Search godoc
// @Summary      Buscar factores por nombre o descripción
// @Tags         factors
// @Produce      json
// @Param        scope  path   int     true  "alcance GHG (1-4)"
// @Param        q      query  string  true  "término de búsqueda"
// @Success      200  {object}  dto.FactorListResponse
// @Router       /api/factors/scope/{scope}/search [get]
func (h *FactorHandler) Search(c *fiber.Ctx) error {
	scope, err := parseScope(c)
	if scope == 0 {
		return err
	}
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
	}
	return c.JSON(h.factors.Search(scope, term))
}

// ByID godoc
// @Summary      Obtener un factor por ID
// @Tags         factors
// @Produce      json
// @Param        id   path      string  true  "ID del factor, ej. ef-s1-diesel"
// @Success      200  {object}  dto.EmissionFactorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/factors/{id} [get]
func (h *FactorHandler) ByID(c *fiber.Ctx) error {
	factor := h.factors.ByID(c.Params("id"))
	if factor == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factor no encontrado"})
	}
	return c.JSON(factor)
}

// Convert godoc
// @Summary      Convertir un valor entre unidades
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConvertRequest  true  "value, from_unit, to_unit"
// @Success      200  {object}  dto.ConvertResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/units/convert [post]
func (h *FactorHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FromUnit == "" || in.ToUnit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from_unit y to_unit son requeridos"})
	}
	return c.JSON(h.units.Convert(in))
}

// AvailableConversions godoc
// @Summary      Unidades alcanzables desde una unidad
// @Tags         units
// @Produce      json
// @Param        unit  path  string  true  "unidad de origen, ej. kWh"
// @Success      200  {object}  dto.AvailableConversionsResponse
// @Router       /api/units/{unit}/conversions [get]
func (h *FactorHandler) AvailableConversions(c *fiber.Ctx) error {
	unit, err := unescape(c.Params("unit"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unidad inválida"})
	}
	return c.JSON(h.units.AvailableConversions(unit))
}
