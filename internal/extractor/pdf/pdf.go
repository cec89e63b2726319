// Package pdf extracts plain text from PDF bytes using go-fitz (MuPDF).
package pdf

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Extractor implements port.TextExtractor for PDF documents.
type Extractor struct{}

// New creates a PDF text extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractText opens the document from memory and concatenates the text of
// every page in order.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer func() { _ = doc.Close() }()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return "", errors.New("pdf has no pages")
	}

	var b strings.Builder
	for page := 0; page < pageCount; page++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		text, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", page+1, err)
		}
		b.WriteString(text)
	}

	return b.String(), nil
}
