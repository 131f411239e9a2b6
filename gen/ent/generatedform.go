// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dfmora/car2data/gen/ent/document"
	"github.com/dfmora/car2data/gen/ent/generatedform"
	"github.com/google/uuid"
)

// GeneratedForm is the model entity for the GeneratedForm schema.
type GeneratedForm struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// FormType holds the value of the "form_type" field.
	FormType string `json:"form_type,omitempty"`
	// OutputPath holds the value of the "output_path" field.
	OutputPath string `json:"output_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GeneratedFormQuery when eager-loading is set.
	Edges        GeneratedFormEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GeneratedFormEdges holds the relations/edges for other nodes in the graph.
type GeneratedFormEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedFormEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneratedForm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generatedform.FieldFormType, generatedform.FieldOutputPath:
			values[i] = new(sql.NullString)
		case generatedform.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case generatedform.FieldID, generatedform.FieldOwnerID, generatedform.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneratedForm fields.
func (_m *GeneratedForm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generatedform.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case generatedform.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case generatedform.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case generatedform.FieldFormType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field form_type", values[i])
			} else if value.Valid {
				_m.FormType = value.String
			}
		case generatedform.FieldOutputPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_path", values[i])
			} else if value.Valid {
				_m.OutputPath = value.String
			}
		case generatedform.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GeneratedForm.
// This includes values selected through modifiers, order, etc.
func (_m *GeneratedForm) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the GeneratedForm entity.
func (_m *GeneratedForm) QueryDocument() *DocumentQuery {
	return NewGeneratedFormClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this GeneratedForm.
// Note that you need to call GeneratedForm.Unwrap() before calling this method if this GeneratedForm
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneratedForm) Update() *GeneratedFormUpdateOne {
	return NewGeneratedFormClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneratedForm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneratedForm) Unwrap() *GeneratedForm {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneratedForm is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneratedForm) String() string {
	var builder strings.Builder
	builder.WriteString("GeneratedForm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("form_type=")
	builder.WriteString(_m.FormType)
	builder.WriteString(", ")
	builder.WriteString("output_path=")
	builder.WriteString(_m.OutputPath)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GeneratedForms is a parsable slice of GeneratedForm.
type GeneratedForms []*GeneratedForm
