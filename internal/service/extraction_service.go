package service

import (
	"context"

	"guiaflow/internal/decoder"
	"guiaflow/internal/domain"
	"guiaflow/internal/port"
	"guiaflow/internal/prompt"
	"guiaflow/internal/response"
)

// ExtractInput is the DTO for one extraction request.
type ExtractInput struct {
	FileName   string
	FileBase64 string
}

// ExtractionService runs the extraction pipeline: decode, extract content,
// build the prompt, invoke the model once, normalize and discriminate the
// reply. Each call is independent; the service holds no per-request state.
type ExtractionService interface {
	Extract(ctx context.Context, input *ExtractInput) (domain.ExtractionRecord, error)
}

type extractionService struct {
	extractor    port.ContentExtractor
	gateway      port.ModelGateway
	maxFileBytes int64
}

// NewExtractionService creates an ExtractionService implementation.
func NewExtractionService(extractor port.ContentExtractor, gateway port.ModelGateway, maxFileBytes int64) ExtractionService {
	return &extractionService{
		extractor:    extractor,
		gateway:      gateway,
		maxFileBytes: maxFileBytes,
	}
}

func (s *extractionService) Extract(ctx context.Context, input *ExtractInput) (domain.ExtractionRecord, error) {
	doc, err := decoder.Decode(input.FileName, input.FileBase64, s.maxFileBytes)
	if err != nil {
		return nil, err
	}

	content, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	var genInput port.GenerateInput
	if content.Attachment != nil {
		genInput = port.GenerateInput{
			Prompt:     prompt.ForImage(),
			Attachment: content.Attachment,
		}
	} else {
		genInput = port.GenerateInput{Prompt: prompt.ForText(content.Text)}
	}

	raw, err := s.gateway.Generate(ctx, genInput)
	if err != nil {
		return nil, err
	}

	return response.Decode(raw)
}
