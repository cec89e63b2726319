// Package decoder converts the transport payload into an UploadedDocument:
// it validates the declared name, resolves the modality from the file
// suffix, and decodes the base64 body. Decoding is pure; no extraction or
// network work happens here.
package decoder

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"guiaflow/internal/domain"
)

// Decode validates and decodes an upload. maxBytes limits the decoded size;
// zero means unlimited. Unsupported suffixes fail before the payload is
// decoded, so no work is spent on documents the pipeline cannot handle.
func Decode(fileName, fileBase64 string, maxBytes int64) (*domain.UploadedDocument, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: fileName", domain.ErrMissingField)
	}
	if fileBase64 == "" {
		return nil, fmt.Errorf("%w: fileBase64", domain.ErrMissingField)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	modality, ok := domain.ModalityByExtension[ext]
	if !ok {
		return nil, fmt.Errorf("%w: .%s", domain.ErrUnsupportedFileType, ext)
	}

	data, err := base64.StdEncoding.DecodeString(fileBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	return &domain.UploadedDocument{
		Name:     fileName,
		Bytes:    data,
		Modality: modality,
		MIMEType: domain.ImageMIMETypes[ext],
	}, nil
}
