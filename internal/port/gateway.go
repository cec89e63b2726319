package port

import (
	"context"

	"guiaflow/internal/domain"
)

// GenerateInput carries one prompt for the generative model. Attachment is
// nil on the text path; on the image path it is sent as a separate inline
// content part, not embedded in the prompt string.
type GenerateInput struct {
	Prompt     string
	Attachment *domain.Attachment
}

// ModelGateway abstracts the external generative model. One call per
// pipeline run; no retries. Implementations return the model's raw textual
// output untouched.
type ModelGateway interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
