// Code generated by ent, DO NOT EDIT.

package person

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the person type in the database.
	Label = "person"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNumeroDocumento holds the string denoting the numero_documento field in the database.
	FieldNumeroDocumento = "numero_documento"
	// FieldTipoDocumento holds the string denoting the tipo_documento field in the database.
	FieldTipoDocumento = "tipo_documento"
	// FieldNombre holds the string denoting the nombre field in the database.
	FieldNombre = "nombre"
	// FieldDireccion holds the string denoting the direccion field in the database.
	FieldDireccion = "direccion"
	// FieldCiudad holds the string denoting the ciudad field in the database.
	FieldCiudad = "ciudad"
	// FieldTelefono holds the string denoting the telefono field in the database.
	FieldTelefono = "telefono"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the person in the database.
	Table = "persons"
)

// Columns holds all SQL columns for person fields.
var Columns = []string{
	FieldID,
	FieldNumeroDocumento,
	FieldTipoDocumento,
	FieldNombre,
	FieldDireccion,
	FieldCiudad,
	FieldTelefono,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NumeroDocumentoValidator is a validator for the "numero_documento" field. It is called by the builders before save.
	NumeroDocumentoValidator func(string) error
	// TipoDocumentoValidator is a validator for the "tipo_documento" field. It is called by the builders before save.
	TipoDocumentoValidator func(string) error
	// DefaultNombre holds the default value on creation for the "nombre" field.
	DefaultNombre string
	// DefaultDireccion holds the default value on creation for the "direccion" field.
	DefaultDireccion string
	// DefaultCiudad holds the default value on creation for the "ciudad" field.
	DefaultCiudad string
	// DefaultTelefono holds the default value on creation for the "telefono" field.
	DefaultTelefono string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Person queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNumeroDocumento orders the results by the numero_documento field.
func ByNumeroDocumento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumeroDocumento, opts...).ToFunc()
}

// ByTipoDocumento orders the results by the tipo_documento field.
func ByTipoDocumento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipoDocumento, opts...).ToFunc()
}

// ByNombre orders the results by the nombre field.
func ByNombre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombre, opts...).ToFunc()
}

// ByDireccion orders the results by the direccion field.
func ByDireccion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDireccion, opts...).ToFunc()
}

// ByCiudad orders the results by the ciudad field.
func ByCiudad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCiudad, opts...).ToFunc()
}

// ByTelefono orders the results by the telefono field.
func ByTelefono(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelefono, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
