package entity

// Document is one input unit: file identity plus the raw OCR text produced by
// the OCR collaborator. Immutable once produced.
type Document struct {
	Filename   string `json:"filename"`
	SourcePath string `json:"source_path"`
	FileHash   string `json:"file_hash"` // "sha256:<hex>"
	OCRText    string `json:"-"`
	Pages      int    `json:"pages,omitempty"`
}
