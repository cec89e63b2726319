package port

import (
	"context"

	"guiaflow/internal/domain"
)

// TextExtractor turns raw document bytes of one format into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// ContentExtractor resolves an uploaded document into the content handed to
// the prompt builder: plain text for text-bearing modalities, an inline
// attachment for images.
type ContentExtractor interface {
	Extract(ctx context.Context, doc *domain.UploadedDocument) (*domain.ExtractedContent, error)
}
