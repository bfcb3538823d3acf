package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/collection"
	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/application/usecase"
)

// CollectionHandler maneja la captura de datos de actividad: lotes, plantillas
// CSV, importaciones y borradores (protegido).
type CollectionHandler struct {
	collectUC *collection.CollectUseCase
	draftUC   *collection.DraftUseCase
	sourceUC  *usecase.SourceUseCase
}

// NewCollectionHandler construye el handler.
func NewCollectionHandler(
	collectUC *collection.CollectUseCase,
	draftUC *collection.DraftUseCase,
	sourceUC *usecase.SourceUseCase,
) *CollectionHandler {
	return &CollectionHandler{collectUC: collectUC, draftUC: draftUC, sourceUC: sourceUC}
}

// ownedSource carga la fuente del path y verifica el tenant del token.
func (h *CollectionHandler) ownedSource(c *fiber.Ctx) (*dto.SourceResponse, error) {
	source, err := h.sourceUC.GetByID(c.Params("id"))
	if err != nil {
		return nil, domainError(c, err)
	}
	if source == nil || source.CompanyID != GetCompanyID(c) {
		return nil, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fuente no encontrada"})
	}
	return source, nil
}

// yearParam lee ?year= y lo valida como año de reporte.
func yearParam(c *fiber.Ctx) (int, string, error) {
	raw := c.Query("year")
	if raw == "" {
		return 0, "", c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year es requerido"})
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		return 0, "", c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year inválido"})
	}
	return year, raw, nil
}

// Collect godoc
// @Summary      Enviar lote de datos de actividad
// @Description  Persiste los períodos del lote con sus emisiones calculadas.
// @Description  El lote es atómico: una fila inválida rechaza el lote completo.
// @Tags         collection
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CollectRequest  true  "source_id, reporting_period, entries"
// @Success      201   {object}  dto.CollectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/collect [post]
func (h *CollectionHandler) Collect(c *fiber.Ctx) error {
	var in dto.CollectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.collectUC.Collect(c.Context(), GetCompanyID(c), GetUserID(c), GetRole(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEntries godoc
// @Summary      Listar registros de una fuente en un año
// @Tags         collection
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true  "ID de la fuente"
// @Param        year  query  int     true  "año de reporte"
// @Success      200  {array}  dto.EntryResponse
// @Router       /api/sources/{id}/entries [get]
func (h *CollectionHandler) ListEntries(c *fiber.Ctx) error {
	source, err := h.ownedSource(c)
	if source == nil {
		return err
	}
	_, yearStr, err := yearParam(c)
	if yearStr == "" {
		return err
	}
	entries, err := h.collectUC.ListBySource(source.ID, yearStr)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(entries)
}

// Schedule godoc
// @Summary      Completitud de captura de una fuente
// @Description  Cuántos períodos esperados del año ya fueron enviados,
// @Description  verificados, aprobados o rechazados, y el porcentaje total.
// @Tags         collection
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true  "ID de la fuente"
// @Param        year  query  int     true  "año de reporte"
// @Success      200  {object}  dto.ScheduleResponse
// @Router       /api/sources/{id}/schedule [get]
func (h *CollectionHandler) Schedule(c *fiber.Ctx) error {
	source, err := h.ownedSource(c)
	if source == nil {
		return err
	}
	_, yearStr, err := yearParam(c)
	if yearStr == "" {
		return err
	}
	schedule, err := h.collectUC.Schedule(source.ID, yearStr)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(schedule)
}

// Template godoc
// @Summary      Descargar plantilla CSV de captura
// @Description  Una fila por período esperado según la frecuencia de la fuente,
// @Description  con la unidad de actividad prellenada.
// @Tags         collection
// @Produce      text/csv
// @Security     BearerAuth
// @Param        id    path   string  true  "ID de la fuente"
// @Param        year  query  int     true  "año de reporte"
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/sources/{id}/template [get]
func (h *CollectionHandler) Template(c *fiber.Ctx) error {
	source, err := h.ownedSource(c)
	if source == nil {
		return err
	}
	year, _, err := yearParam(c)
	if year == 0 {
		return err
	}
	csvBytes, err := collection.BuildTemplate(source.MeasurementFrequency, year, source.ActivityDataUnit)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "captura_"+source.ID+"_"+strconv.Itoa(year)+".csv"))
	return c.Send(csvBytes)
}

// Import godoc
// @Summary      Importar CSV de captura
// @Description  Valida el archivo completo contra los períodos esperados y lo
// @Description  envía como un lote normal; un mismatch rechaza el archivo entero.
// @Tags         collection
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "ID de la fuente"
// @Param        year  query     int     true  "año de reporte"
// @Param        file  formData  file    true  "CSV con columnas Periodo, Valor Actividad, Unidad, Notas"
// @Success      201   {object}  dto.CollectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sources/{id}/import [post]
func (h *CollectionHandler) Import(c *fiber.Ctx) error {
	source, err := h.ownedSource(c)
	if source == nil {
		return err
	}
	year, yearStr, err := yearParam(c)
	if year == 0 {
		return err
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	rows, err := collection.ParseImport(f, source.MeasurementFrequency, year)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.collectUC.Collect(c.Context(), GetCompanyID(c), GetUserID(c), GetRole(c), dto.CollectRequest{
		SourceID:        source.ID,
		ReportingPeriod: yearStr,
		Entries:         rows,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SaveDraft godoc
// @Summary      Guardar borrador de captura
// @Tags         drafts
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  dto.DraftRequest  true  "borrador"
// @Success      204   "sin contenido"
// @Router       /api/drafts [put]
func (h *CollectionHandler) SaveDraft(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.draftUC.Save(c.Context(), GetCompanyID(c), in); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LoadDraft godoc
// @Summary      Recuperar borrador de captura
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Param        sourceID  path   string  true  "ID de la fuente"
// @Param        month     query  string  true  "período, ej. January 2024"
// @Param        year      query  int     true  "año de reporte"
// @Success      200  {object}  dto.DraftRequest
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{sourceID} [get]
func (h *CollectionHandler) LoadDraft(c *fiber.Ctx) error {
	month := c.Query("month")
	_, yearStr, err := yearParam(c)
	if yearStr == "" {
		return err
	}
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month es requerido"})
	}
	draft, err := h.draftUC.Load(c.Context(), GetCompanyID(c), c.Params("sourceID"), month, yearStr)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(draft)
}

// DiscardDraft godoc
// @Summary      Descartar borrador de captura
// @Tags         drafts
// @Security     BearerAuth
// @Param        sourceID  path   string  true  "ID de la fuente"
// @Param        month     query  string  true  "período, ej. January 2024"
// @Param        year      query  int     true  "año de reporte"
// @Success      204  "sin contenido"
// @Router       /api/drafts/{sourceID} [delete]
func (h *CollectionHandler) DiscardDraft(c *fiber.Ctx) error {
	month := c.Query("month")
	_, yearStr, err := yearParam(c)
	if yearStr == "" {
		return err
	}
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month es requerido"})
	}
	if err := h.draftUC.Discard(c.Context(), GetCompanyID(c), c.Params("sourceID"), month, yearStr); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
