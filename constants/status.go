package constants

// DocumentStatus is the canonical lifecycle status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocumentStatusPending    DocumentStatus = "pending"    // uploaded, extraction not started
	DocumentStatusProcessing DocumentStatus = "processing" // extraction in flight
	DocumentStatusCompleted  DocumentStatus = "completed"  // extraction finished (payload attached)
	DocumentStatusError      DocumentStatus = "error"      // terminal failure; reprocess to retry
)

var DocumentStatuses = []string{
	string(DocumentStatusPending),
	string(DocumentStatusProcessing),
	string(DocumentStatusCompleted),
	string(DocumentStatusError),
}
