package constants

// RunStatus is the canonical status for extraction runs. Each pipeline mode
// finishes at the last stage it ran: OCR_DONE (ocr_only), PATTERN_DONE
// (pattern_only), FALLBACK_DONE (llm_only). A full run reaches MERGED and is
// promoted to PERSISTED once its artifact is written; FAILED is the error
// terminal. PENDING is reserved for queued runs that have not started.
type RunStatus string

// Stable values (stored as-is in the run index).
const (
	RunStatusPending      RunStatus = "PENDING"
	RunStatusOCRDone      RunStatus = "OCR_DONE"
	RunStatusPatternDone  RunStatus = "PATTERN_DONE"
	RunStatusFallbackDone RunStatus = "FALLBACK_DONE"
	RunStatusMerged       RunStatus = "MERGED"
	RunStatusPersisted    RunStatus = "PERSISTED" // terminal success
	RunStatusFailed       RunStatus = "FAILED"    // terminal failure (no usable OCR text)
)

// RunStatuses holds the allowed values for the status field in ExtractionRun.
var RunStatuses = []string{
	string(RunStatusPending),
	string(RunStatusOCRDone),
	string(RunStatusPatternDone),
	string(RunStatusFallbackDone),
	string(RunStatusMerged),
	string(RunStatusPersisted),
	string(RunStatusFailed),
}
