package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded source PDF for data transfer between layers.
type Document struct {
	ID              uuid.UUID       `json:"id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	Name            string          `json:"name"`
	SourcePath      string          `json:"source_path"`
	ContentHash     []byte          `json:"content_hash"`
	Status          string          `json:"status"`
	DocType         string          `json:"doc_type"`
	UploadedAt      time.Time       `json:"uploaded_at"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
	ExtractionError *string         `json:"extraction_error,omitempty"`
	ExtractedJSON   json.RawMessage `json:"extracted_json,omitempty"`
}
