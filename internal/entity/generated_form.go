package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedForm represents one rendering artifact for data transfer between layers.
type GeneratedForm struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	DocumentID uuid.UUID `json:"document_id"`
	FormType   string    `json:"form_type"`
	OutputPath string    `json:"output_path"`
	CreatedAt  time.Time `json:"created_at"`
}
