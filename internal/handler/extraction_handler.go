package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guiaflow/internal/service"
)

// ExtractionHandler handles guía extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// ExtractRequest is the upload body for guía extraction.
type ExtractRequest struct {
	FileBase64 string `json:"fileBase64"`
	FileName   string `json:"fileName"`
}

// Extract handles POST /api/v1/guides/extract
// @Summary Extract guía de remisión data from an uploaded document
// @Description Decode the uploaded PDF, spreadsheet, or image and extract shipment fields with the generative model
// @Accept json
// @Produce json
// @Success 200 "Extracted record"
// @Failure 400 "Missing fields or unsupported file type"
// @Failure 422 "Model judged the document not a valid guía de remisión"
// @Failure 500 "Extraction, gateway, or model output failure"
// @Router /guides/extract [post]
func (h *ExtractionHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "fileBase64 and fileName are required")
		return
	}

	record, err := h.extractionService.Extract(c.Request.Context(), &service.ExtractInput{
		FileName:   req.FileName,
		FileBase64: req.FileBase64,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	// The record is already a JSON object; write it through verbatim.
	c.Data(http.StatusOK, "application/json; charset=utf-8", record)
}
