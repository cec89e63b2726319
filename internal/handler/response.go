package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"guiaflow/internal/domain"
)

// RespondError sends an error response with the given status code. The wire
// shape is the single-client contract: {"error": string}.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// MapPipelineError translates pipeline errors to HTTP status codes and
// client-safe messages. Rejection by the model (422) is the only expected
// failure branch; it must stay distinguishable from bad input (4xx) and
// infrastructure failure (5xx).
func MapPipelineError(err error) (status int, msg string) {
	var rejected *domain.DocumentRejectedError
	var gateway *domain.GatewayError
	var malformed *domain.MalformedOutputError

	switch {
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, "fileBase64 and fileName are required"
	case errors.Is(err, domain.ErrInvalidPayload):
		return http.StatusBadRequest, "fileBase64 is not valid base64"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "unsupported file type; allowed: pdf, xls, xlsx, png, jpg, jpeg"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "file exceeds maximum allowed size"
	case errors.As(err, &rejected):
		return http.StatusUnprocessableEntity, rejected.Reason
	case errors.As(err, &gateway):
		return http.StatusInternalServerError, "model provider request failed: " + gateway.Err.Error()
	case errors.As(err, &malformed):
		return http.StatusInternalServerError, "model returned an unreadable response"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusInternalServerError, "document content extraction failed"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a pipeline error and sends the appropriate error
// response. 5xx causes are logged with full detail, including raw model
// output for malformed replies, which is never sent to the caller.
func HandleError(c *gin.Context, err error) {
	status, msg := MapPipelineError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		var malformed *domain.MalformedOutputError
		if errors.As(err, &malformed) {
			log.Printf("[%s] internal error: %v (raw: %s)", requestID, err, truncate(malformed.RawOutput, 500))
		} else {
			log.Printf("[%s] internal error: %v", requestID, err)
		}
	}
	RespondError(c, status, msg)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
