package domain

// Modality is the resolved content category of an uploaded document. It
// decides which extraction path runs and which prompt template is used.
type Modality string

const (
	ModalityPDFText         Modality = "pdf_text"
	ModalitySpreadsheetText Modality = "spreadsheet_text"
	ModalityImage           Modality = "image"
)

// ModalityByExtension maps lowercase file extensions (without dot) to the
// modality they resolve to. Extensions absent from this map are unsupported.
var ModalityByExtension = map[string]Modality{
	"pdf":  ModalityPDFText,
	"xls":  ModalitySpreadsheetText,
	"xlsx": ModalitySpreadsheetText,
	"png":  ModalityImage,
	"jpg":  ModalityImage,
	"jpeg": ModalityImage,
}

// ImageMIMETypes maps image extensions to their MIME type. "jpg" normalizes
// to image/jpeg.
var ImageMIMETypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
}

// IsTextBearing reports whether the modality yields plain text for the
// prompt, as opposed to an inline image attachment.
func (m Modality) IsTextBearing() bool {
	return m != ModalityImage
}
