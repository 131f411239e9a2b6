package entity

import (
	"time"

	"github.com/google/uuid"
)

// Person represents a canonical natural-person row for data transfer between layers.
type Person struct {
	ID              uuid.UUID `json:"id"`
	NumeroDocumento string    `json:"numero_documento"`
	TipoDocumento   string    `json:"tipo_documento"`
	Nombre          string    `json:"nombre"`
	Direccion       string    `json:"direccion"`
	Ciudad          string    `json:"ciudad"`
	Telefono        string    `json:"telefono"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
