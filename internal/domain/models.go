package domain

// UploadedDocument is a decoded upload: raw bytes plus the modality resolved
// from the declared file name. It lives for a single pipeline run.
type UploadedDocument struct {
	Name     string
	Bytes    []byte
	Modality Modality
	MIMEType string // set only for image modalities
}

// Attachment is an inline image passed to the model alongside the prompt.
type Attachment struct {
	Bytes    []byte
	MIMEType string
}

// ExtractedContent is the result of the extraction stage. Exactly one of
// Text or Attachment is populated, matching the document's modality.
type ExtractedContent struct {
	Text       string
	Attachment *Attachment
}

// ExtractionRecord is the model-extracted guía de remisión data as a raw
// JSON object. The pipeline guarantees it decoded as JSON and carries no
// "error" key; field-level shape is the model's responsibility and passes
// through to the client untouched.
type ExtractionRecord []byte
