// Package response normalizes raw model output and discriminates the
// model's validity branch from extracted guía data. The wire shape is
// genuinely ambiguous until inspected: a single JSON object that either
// carries a reserved "error" key or is the record itself.
package response

import (
	"encoding/json"
	"strings"

	"guiaflow/internal/domain"
)

// StripCodeFences removes markdown code-fence markers anywhere in raw.
// The model is told not to emit them but sometimes does. Idempotent:
// fence-free input comes back unchanged.
func StripCodeFences(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	return strings.ReplaceAll(s, "```", "")
}

// Decode strips fences, decodes the result as strict JSON, and inspects the
// decoded object. A non-empty "error" field is a rejection; anything else
// that decoded is the extraction record, passed through with no further
// schema enforcement. Decode failure retains the raw output for diagnostics.
func Decode(raw string) (domain.ExtractionRecord, error) {
	cleaned := strings.TrimSpace(StripCodeFences(raw))

	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &domain.MalformedOutputError{Err: err, RawOutput: raw}
	}

	if probe.Error != "" {
		return nil, &domain.DocumentRejectedError{Reason: probe.Error}
	}

	return domain.ExtractionRecord(cleaned), nil
}
