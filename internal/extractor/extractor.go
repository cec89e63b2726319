// Package extractor dispatches an uploaded document to the extraction path
// its modality requires: a format-specific text adapter for PDFs and
// spreadsheets, or a byte passthrough for images.
package extractor

import (
	"context"
	"fmt"

	"guiaflow/internal/domain"
	"guiaflow/internal/port"
)

// Dispatcher routes documents to text adapters by modality and implements
// port.ContentExtractor.
type Dispatcher struct {
	pdf         port.TextExtractor
	spreadsheet port.TextExtractor
}

// New creates a Dispatcher over the given format adapters.
func New(pdf, spreadsheet port.TextExtractor) *Dispatcher {
	return &Dispatcher{pdf: pdf, spreadsheet: spreadsheet}
}

// Extract produces the content for the prompt stage. Image bytes pass
// through unchanged as an attachment; any adapter failure on a text-bearing
// modality is an extraction failure.
func (d *Dispatcher) Extract(ctx context.Context, doc *domain.UploadedDocument) (*domain.ExtractedContent, error) {
	switch doc.Modality {
	case domain.ModalityPDFText:
		text, err := d.pdf.ExtractText(ctx, doc.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}
		return &domain.ExtractedContent{Text: text}, nil

	case domain.ModalitySpreadsheetText:
		text, err := d.spreadsheet.ExtractText(ctx, doc.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}
		return &domain.ExtractedContent{Text: text}, nil

	case domain.ModalityImage:
		return &domain.ExtractedContent{
			Attachment: &domain.Attachment{Bytes: doc.Bytes, MIMEType: doc.MIMEType},
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown modality %q", domain.ErrUnsupportedFileType, doc.Modality)
	}
}
