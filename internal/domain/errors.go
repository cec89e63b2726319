package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidPayload      = errors.New("file payload is not valid base64")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrExtractionFailed    = errors.New("document content extraction failed")
)

// GatewayError indicates the model provider call failed: network, auth,
// quota, or an empty reply. It carries the upstream error for diagnostics.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("model gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// MalformedOutputError indicates the model replied but the reply was not
// decodable JSON. RawOutput is retained for logging and never surfaced to
// the caller.
type MalformedOutputError struct {
	Err       error
	RawOutput string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// DocumentRejectedError means the model decoded successfully but judged the
// document not to be a valid guía de remisión. This is an expected branch of
// normal operation, not an infrastructure failure; only the response
// discriminator produces it.
type DocumentRejectedError struct {
	Reason string
}

func (e *DocumentRejectedError) Error() string {
	return fmt.Sprintf("document rejected: %s", e.Reason)
}
