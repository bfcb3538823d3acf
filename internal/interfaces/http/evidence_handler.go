package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/application/evidence"
)

// EvidenceHandler maneja los lotes de evidencias de los registros de actividad.
type EvidenceHandler struct {
	uc *evidence.UploadUseCase
}

// NewEvidenceHandler construye el handler.
func NewEvidenceHandler(uc *evidence.UploadUseCase) *EvidenceHandler {
	return &EvidenceHandler{uc: uc}
}

// CreateBatch godoc
// @Summary      Crear lote de evidencias
// @Description  Registra los archivos del lote y devuelve una URL firmada de
// @Description  subida por archivo. Cada archivo nace en estado "uploading".
// @Tags         evidence
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEvidenceBatchRequest  true  "entry_id y metadatos de archivos"
// @Success      201   {object}  dto.EvidenceBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/evidence/batch [post]
func (h *EvidenceHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateEvidenceBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EntryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entry_id es requerido"})
	}
	batch, err := h.uc.CreateBatch(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(batch)
}

// Upload godoc
// @Summary      Subir archivos de un lote
// @Description  Multipart donde el nombre de cada campo de archivo es el ID del
// @Description  archivo creado en el lote. Corren a lo sumo tres subidas a la
// @Description  vez; un fallo individual no aborta el resto del lote.
// @Tags         evidence
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EvidenceBatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/evidence/upload [post]
func (h *EvidenceHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart inválido"})
	}

	var payloads []evidence.FilePayload
	for fileID, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		f, err := headers[0].Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo " + fileID})
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo " + fileID})
		}
		payloads = append(payloads, evidence.FilePayload{FileID: fileID, Content: content})
	}

	batch, err := h.uc.UploadBatch(c.Context(), GetCompanyID(c), payloads)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(batch)
}

// MarkUploaded godoc
// @Summary      Marcar resultado de subida de un archivo
// @Description  Para clientes que suben directo a la URL firmada y reportan el
// @Description  resultado: ok=true marca "done", ok=false marca "error".
// @Tags         evidence
// @Produce      json
// @Security     BearerAuth
// @Param        id  path   string  true  "ID del archivo"
// @Param        ok  query  bool    true  "resultado de la subida"
// @Success      200  {object}  dto.EvidenceFileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/evidence/{id}/status [patch]
func (h *EvidenceHandler) MarkUploaded(c *fiber.Ctx) error {
	file, err := h.uc.MarkUploaded(c.Context(), GetCompanyID(c), c.Params("id"), c.QueryBool("ok"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(file)
}

// ListByEntry godoc
// @Summary      Listar evidencias de un registro
// @Tags         evidence
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del registro de actividad"
// @Success      200  {object}  dto.EvidenceBatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id}/evidence [get]
func (h *EvidenceHandler) ListByEntry(c *fiber.Ctx) error {
	batch, err := h.uc.ListByEntry(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(batch)
}
