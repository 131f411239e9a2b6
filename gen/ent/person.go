// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dfmora/car2data/gen/ent/person"
	"github.com/google/uuid"
)

// Person is the model entity for the Person schema.
type Person struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// NumeroDocumento holds the value of the "numero_documento" field.
	NumeroDocumento string `json:"numero_documento,omitempty"`
	// TipoDocumento holds the value of the "tipo_documento" field.
	TipoDocumento string `json:"tipo_documento,omitempty"`
	// Nombre holds the value of the "nombre" field.
	Nombre string `json:"nombre,omitempty"`
	// Direccion holds the value of the "direccion" field.
	Direccion string `json:"direccion,omitempty"`
	// Ciudad holds the value of the "ciudad" field.
	Ciudad string `json:"ciudad,omitempty"`
	// Telefono holds the value of the "telefono" field.
	Telefono string `json:"telefono,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Person) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case person.FieldNumeroDocumento, person.FieldTipoDocumento, person.FieldNombre, person.FieldDireccion, person.FieldCiudad, person.FieldTelefono:
			values[i] = new(sql.NullString)
		case person.FieldCreatedAt, person.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case person.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Person fields.
func (_m *Person) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case person.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case person.FieldNumeroDocumento:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field numero_documento", values[i])
			} else if value.Valid {
				_m.NumeroDocumento = value.String
			}
		case person.FieldTipoDocumento:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo_documento", values[i])
			} else if value.Valid {
				_m.TipoDocumento = value.String
			}
		case person.FieldNombre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre", values[i])
			} else if value.Valid {
				_m.Nombre = value.String
			}
		case person.FieldDireccion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direccion", values[i])
			} else if value.Valid {
				_m.Direccion = value.String
			}
		case person.FieldCiudad:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ciudad", values[i])
			} else if value.Valid {
				_m.Ciudad = value.String
			}
		case person.FieldTelefono:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telefono", values[i])
			} else if value.Valid {
				_m.Telefono = value.String
			}
		case person.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case person.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Person.
// This includes values selected through modifiers, order, etc.
func (_m *Person) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Person.
// Note that you need to call Person.Unwrap() before calling this method if this Person
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Person) Update() *PersonUpdateOne {
	return NewPersonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Person entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Person) Unwrap() *Person {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Person is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Person) String() string {
	var builder strings.Builder
	builder.WriteString("Person(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("numero_documento=")
	builder.WriteString(_m.NumeroDocumento)
	builder.WriteString(", ")
	builder.WriteString("tipo_documento=")
	builder.WriteString(_m.TipoDocumento)
	builder.WriteString(", ")
	builder.WriteString("nombre=")
	builder.WriteString(_m.Nombre)
	builder.WriteString(", ")
	builder.WriteString("direccion=")
	builder.WriteString(_m.Direccion)
	builder.WriteString(", ")
	builder.WriteString("ciudad=")
	builder.WriteString(_m.Ciudad)
	builder.WriteString(", ")
	builder.WriteString("telefono=")
	builder.WriteString(_m.Telefono)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Persons is a parsable slice of Person.
type Persons []*Person
