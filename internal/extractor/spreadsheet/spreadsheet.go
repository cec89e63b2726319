// Package spreadsheet serializes workbook bytes to delimited text using
// excelize. Only the first sheet is read, matching the upstream client's
// expectation that a guía workbook carries its data on sheet one.
package spreadsheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Extractor implements port.TextExtractor for spreadsheet documents.
type Extractor struct{}

// New creates a spreadsheet text extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractText reads the workbook from memory and serializes the sheet at
// index 0 as comma-delimited rows. A workbook without sheets is a fatal
// extraction failure.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	var b strings.Builder
	for _, row := range rows {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	return b.String(), nil
}
