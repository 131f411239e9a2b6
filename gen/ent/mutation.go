// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dfmora/car2data/gen/ent/document"
	"github.com/dfmora/car2data/gen/ent/generatedform"
	"github.com/dfmora/car2data/gen/ent/person"
	"github.com/dfmora/car2data/gen/ent/predicate"
	"github.com/dfmora/car2data/gen/ent/vehicle"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument      = "Document"
	TypeGeneratedForm = "GeneratedForm"
	TypePerson        = "Person"
	TypeVehicle       = "Vehicle"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	owner_id             *uuid.UUID
	name                 *string
	source_path          *string
	content_hash         *[]byte
	status               *string
	doc_type             *string
	uploaded_at          *time.Time
	processed_at         *time.Time
	extraction_error     *string
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	clearedFields        map[string]struct{}
	forms                map[uuid.UUID]struct{}
	removedforms         map[uuid.UUID]struct{}
	clearedforms         bool
	done                 bool
	oldValue             func(context.Context) (*Document, error)
	predicates           []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *DocumentMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *DocumentMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *DocumentMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetName sets the "name" field.
func (m *DocumentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DocumentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DocumentMutation) ResetName() {
	m.name = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetDocType sets the "doc_type" field.
func (m *DocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *DocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *DocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// SetExtractionError sets the "extraction_error" field.
func (m *DocumentMutation) SetExtractionError(s string) {
	m.extraction_error = &s
}

// ExtractionError returns the value of the "extraction_error" field in the mutation.
func (m *DocumentMutation) ExtractionError() (r string, exists bool) {
	v := m.extraction_error
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionError returns the old "extraction_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractionError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionError: %w", err)
	}
	return oldValue.ExtractionError, nil
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (m *DocumentMutation) ClearExtractionError() {
	m.extraction_error = nil
	m.clearedFields[document.FieldExtractionError] = struct{}{}
}

// ExtractionErrorCleared returns if the "extraction_error" field was cleared in this mutation.
func (m *DocumentMutation) ExtractionErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractionError]
	return ok
}

// ResetExtractionError resets all changes to the "extraction_error" field.
func (m *DocumentMutation) ResetExtractionError() {
	m.extraction_error = nil
	delete(m.clearedFields, document.FieldExtractionError)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *DocumentMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *DocumentMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *DocumentMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *DocumentMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *DocumentMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[document.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *DocumentMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, document.FieldExtractedJSON)
}

// AddFormIDs adds the "forms" edge to the GeneratedForm entity by ids.
func (m *DocumentMutation) AddFormIDs(ids ...uuid.UUID) {
	if m.forms == nil {
		m.forms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.forms[ids[i]] = struct{}{}
	}
}

// ClearForms clears the "forms" edge to the GeneratedForm entity.
func (m *DocumentMutation) ClearForms() {
	m.clearedforms = true
}

// FormsCleared reports if the "forms" edge to the GeneratedForm entity was cleared.
func (m *DocumentMutation) FormsCleared() bool {
	return m.clearedforms
}

// RemoveFormIDs removes the "forms" edge to the GeneratedForm entity by IDs.
func (m *DocumentMutation) RemoveFormIDs(ids ...uuid.UUID) {
	if m.removedforms == nil {
		m.removedforms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.forms, ids[i])
		m.removedforms[ids[i]] = struct{}{}
	}
}

// RemovedForms returns the removed IDs of the "forms" edge to the GeneratedForm entity.
func (m *DocumentMutation) RemovedFormsIDs() (ids []uuid.UUID) {
	for id := range m.removedforms {
		ids = append(ids, id)
	}
	return
}

// FormsIDs returns the "forms" edge IDs in the mutation.
func (m *DocumentMutation) FormsIDs() (ids []uuid.UUID) {
	for id := range m.forms {
		ids = append(ids, id)
	}
	return
}

// ResetForms resets all changes to the "forms" edge.
func (m *DocumentMutation) ResetForms() {
	m.forms = nil
	m.clearedforms = false
	m.removedforms = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.owner_id != nil {
		fields = append(fields, document.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, document.FieldName)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.doc_type != nil {
		fields = append(fields, document.FieldDocType)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.extraction_error != nil {
		fields = append(fields, document.FieldExtractionError)
	}
	if m.extracted_json != nil {
		fields = append(fields, document.FieldExtractedJSON)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldOwnerID:
		return m.OwnerID()
	case document.FieldName:
		return m.Name()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldStatus:
		return m.Status()
	case document.FieldDocType:
		return m.DocType()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	case document.FieldExtractionError:
		return m.ExtractionError()
	case document.FieldExtractedJSON:
		return m.ExtractedJSON()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case document.FieldName:
		return m.OldName(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldDocType:
		return m.OldDocType(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case document.FieldExtractionError:
		return m.OldExtractionError(ctx)
	case document.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case document.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case document.FieldExtractionError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionError(v)
		return nil
	case document.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.FieldCleared(document.FieldExtractionError) {
		fields = append(fields, document.FieldExtractionError)
	}
	if m.FieldCleared(document.FieldExtractedJSON) {
		fields = append(fields, document.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case document.FieldExtractionError:
		m.ClearExtractionError()
		return nil
	case document.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case document.FieldName:
		m.ResetName()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldDocType:
		m.ResetDocType()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case document.FieldExtractionError:
		m.ResetExtractionError()
		return nil
	case document.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.forms != nil {
		edges = append(edges, document.EdgeForms)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeForms:
		ids := make([]ent.Value, 0, len(m.forms))
		for id := range m.forms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedforms != nil {
		edges = append(edges, document.EdgeForms)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeForms:
		ids := make([]ent.Value, 0, len(m.removedforms))
		for id := range m.removedforms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedforms {
		edges = append(edges, document.EdgeForms)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeForms:
		return m.clearedforms
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeForms:
		m.ResetForms()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// GeneratedFormMutation represents an operation that mutates the GeneratedForm nodes in the graph.
type GeneratedFormMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	owner_id        *uuid.UUID
	form_type       *string
	output_path     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*GeneratedForm, error)
	predicates      []predicate.GeneratedForm
}

var _ ent.Mutation = (*GeneratedFormMutation)(nil)

// generatedformOption allows management of the mutation configuration using functional options.
type generatedformOption func(*GeneratedFormMutation)

// newGeneratedFormMutation creates new mutation for the GeneratedForm entity.
func newGeneratedFormMutation(c config, op Op, opts ...generatedformOption) *GeneratedFormMutation {
	m := &GeneratedFormMutation{
		config:        c,
		op:            op,
		typ:           TypeGeneratedForm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGeneratedFormID sets the ID field of the mutation.
func withGeneratedFormID(id uuid.UUID) generatedformOption {
	return func(m *GeneratedFormMutation) {
		var (
			err   error
			once  sync.Once
			value *GeneratedForm
		)
		m.oldValue = func(ctx context.Context) (*GeneratedForm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GeneratedForm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeneratedForm sets the old GeneratedForm of the mutation.
func withGeneratedForm(node *GeneratedForm) generatedformOption {
	return func(m *GeneratedFormMutation) {
		m.oldValue = func(context.Context) (*GeneratedForm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GeneratedFormMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GeneratedFormMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GeneratedForm entities.
func (m *GeneratedFormMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GeneratedFormMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GeneratedFormMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GeneratedForm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *GeneratedFormMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *GeneratedFormMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the GeneratedForm entity.
// If the GeneratedForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFormMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *GeneratedFormMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *GeneratedFormMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *GeneratedFormMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the GeneratedForm entity.
// If the GeneratedForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFormMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *GeneratedFormMutation) ResetDocumentID() {
	m.document = nil
}

// SetFormType sets the "form_type" field.
func (m *GeneratedFormMutation) SetFormType(s string) {
	m.form_type = &s
}

// FormType returns the value of the "form_type" field in the mutation.
func (m *GeneratedFormMutation) FormType() (r string, exists bool) {
	v := m.form_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFormType returns the old "form_type" field's value of the GeneratedForm entity.
// If the GeneratedForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFormMutation) OldFormType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormType: %w", err)
	}
	return oldValue.FormType, nil
}

// ResetFormType resets all changes to the "form_type" field.
func (m *GeneratedFormMutation) ResetFormType() {
	m.form_type = nil
}

// SetOutputPath sets the "output_path" field.
func (m *GeneratedFormMutation) SetOutputPath(s string) {
	m.output_path = &s
}

// OutputPath returns the value of the "output_path" field in the mutation.
func (m *GeneratedFormMutation) OutputPath() (r string, exists bool) {
	v := m.output_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputPath returns the old "output_path" field's value of the GeneratedForm entity.
// If the GeneratedForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFormMutation) OldOutputPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputPath: %w", err)
	}
	return oldValue.OutputPath, nil
}

// ResetOutputPath resets all changes to the "output_path" field.
func (m *GeneratedFormMutation) ResetOutputPath() {
	m.output_path = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GeneratedFormMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GeneratedFormMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GeneratedForm entity.
// If the GeneratedForm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedFormMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GeneratedFormMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *GeneratedFormMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[generatedform.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *GeneratedFormMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *GeneratedFormMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *GeneratedFormMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the GeneratedFormMutation builder.
func (m *GeneratedFormMutation) Where(ps ...predicate.GeneratedForm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GeneratedFormMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GeneratedFormMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GeneratedForm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GeneratedFormMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GeneratedFormMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GeneratedForm).
func (m *GeneratedFormMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GeneratedFormMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.owner_id != nil {
		fields = append(fields, generatedform.FieldOwnerID)
	}
	if m.document != nil {
		fields = append(fields, generatedform.FieldDocumentID)
	}
	if m.form_type != nil {
		fields = append(fields, generatedform.FieldFormType)
	}
	if m.output_path != nil {
		fields = append(fields, generatedform.FieldOutputPath)
	}
	if m.created_at != nil {
		fields = append(fields, generatedform.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GeneratedFormMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generatedform.FieldOwnerID:
		return m.OwnerID()
	case generatedform.FieldDocumentID:
		return m.DocumentID()
	case generatedform.FieldFormType:
		return m.FormType()
	case generatedform.FieldOutputPath:
		return m.OutputPath()
	case generatedform.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GeneratedFormMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generatedform.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case generatedform.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case generatedform.FieldFormType:
		return m.OldFormType(ctx)
	case generatedform.FieldOutputPath:
		return m.OldOutputPath(ctx)
	case generatedform.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GeneratedForm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedFormMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generatedform.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case generatedform.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case generatedform.FieldFormType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormType(v)
		return nil
	case generatedform.FieldOutputPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputPath(v)
		return nil
	case generatedform.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GeneratedForm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GeneratedFormMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GeneratedFormMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedFormMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GeneratedForm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GeneratedFormMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GeneratedFormMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GeneratedFormMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GeneratedForm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GeneratedFormMutation) ResetField(name string) error {
	switch name {
	case generatedform.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case generatedform.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case generatedform.FieldFormType:
		m.ResetFormType()
		return nil
	case generatedform.FieldOutputPath:
		m.ResetOutputPath()
		return nil
	case generatedform.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GeneratedForm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GeneratedFormMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, generatedform.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GeneratedFormMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case generatedform.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GeneratedFormMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GeneratedFormMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GeneratedFormMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, generatedform.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GeneratedFormMutation) EdgeCleared(name string) bool {
	switch name {
	case generatedform.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GeneratedFormMutation) ClearEdge(name string) error {
	switch name {
	case generatedform.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown GeneratedForm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GeneratedFormMutation) ResetEdge(name string) error {
	switch name {
	case generatedform.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown GeneratedForm edge %s", name)
}

// PersonMutation represents an operation that mutates the Person nodes in the graph.
type PersonMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	numero_documento *string
	tipo_documento   *string
	nombre           *string
	direccion        *string
	ciudad           *string
	telefono         *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Person, error)
	predicates       []predicate.Person
}

var _ ent.Mutation = (*PersonMutation)(nil)

// personOption allows management of the mutation configuration using functional options.
type personOption func(*PersonMutation)

// newPersonMutation creates new mutation for the Person entity.
func newPersonMutation(c config, op Op, opts ...personOption) *PersonMutation {
	m := &PersonMutation{
		config:        c,
		op:            op,
		typ:           TypePerson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonID sets the ID field of the mutation.
func withPersonID(id uuid.UUID) personOption {
	return func(m *PersonMutation) {
		var (
			err   error
			once  sync.Once
			value *Person
		)
		m.oldValue = func(ctx context.Context) (*Person, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Person.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerson sets the old Person of the mutation.
func withPerson(node *Person) personOption {
	return func(m *PersonMutation) {
		m.oldValue = func(context.Context) (*Person, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Person entities.
func (m *PersonMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Person.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNumeroDocumento sets the "numero_documento" field.
func (m *PersonMutation) SetNumeroDocumento(s string) {
	m.numero_documento = &s
}

// NumeroDocumento returns the value of the "numero_documento" field in the mutation.
func (m *PersonMutation) NumeroDocumento() (r string, exists bool) {
	v := m.numero_documento
	if v == nil {
		return
	}
	return *v, true
}

// OldNumeroDocumento returns the old "numero_documento" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldNumeroDocumento(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumeroDocumento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumeroDocumento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumeroDocumento: %w", err)
	}
	return oldValue.NumeroDocumento, nil
}

// ResetNumeroDocumento resets all changes to the "numero_documento" field.
func (m *PersonMutation) ResetNumeroDocumento() {
	m.numero_documento = nil
}

// SetTipoDocumento sets the "tipo_documento" field.
func (m *PersonMutation) SetTipoDocumento(s string) {
	m.tipo_documento = &s
}

// TipoDocumento returns the value of the "tipo_documento" field in the mutation.
func (m *PersonMutation) TipoDocumento() (r string, exists bool) {
	v := m.tipo_documento
	if v == nil {
		return
	}
	return *v, true
}

// OldTipoDocumento returns the old "tipo_documento" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldTipoDocumento(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipoDocumento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipoDocumento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipoDocumento: %w", err)
	}
	return oldValue.TipoDocumento, nil
}

// ClearTipoDocumento clears the value of the "tipo_documento" field.
func (m *PersonMutation) ClearTipoDocumento() {
	m.tipo_documento = nil
	m.clearedFields[person.FieldTipoDocumento] = struct{}{}
}

// TipoDocumentoCleared returns if the "tipo_documento" field was cleared in this mutation.
func (m *PersonMutation) TipoDocumentoCleared() bool {
	_, ok := m.clearedFields[person.FieldTipoDocumento]
	return ok
}

// ResetTipoDocumento resets all changes to the "tipo_documento" field.
func (m *PersonMutation) ResetTipoDocumento() {
	m.tipo_documento = nil
	delete(m.clearedFields, person.FieldTipoDocumento)
}

// SetNombre sets the "nombre" field.
func (m *PersonMutation) SetNombre(s string) {
	m.nombre = &s
}

// Nombre returns the value of the "nombre" field in the mutation.
func (m *PersonMutation) Nombre() (r string, exists bool) {
	v := m.nombre
	if v == nil {
		return
	}
	return *v, true
}

// OldNombre returns the old "nombre" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldNombre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombre: %w", err)
	}
	return oldValue.Nombre, nil
}

// ResetNombre resets all changes to the "nombre" field.
func (m *PersonMutation) ResetNombre() {
	m.nombre = nil
}

// SetDireccion sets the "direccion" field.
func (m *PersonMutation) SetDireccion(s string) {
	m.direccion = &s
}

// Direccion returns the value of the "direccion" field in the mutation.
func (m *PersonMutation) Direccion() (r string, exists bool) {
	v := m.direccion
	if v == nil {
		return
	}
	return *v, true
}

// OldDireccion returns the old "direccion" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldDireccion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDireccion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDireccion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDireccion: %w", err)
	}
	return oldValue.Direccion, nil
}

// ResetDireccion resets all changes to the "direccion" field.
func (m *PersonMutation) ResetDireccion() {
	m.direccion = nil
}

// SetCiudad sets the "ciudad" field.
func (m *PersonMutation) SetCiudad(s string) {
	m.ciudad = &s
}

// Ciudad returns the value of the "ciudad" field in the mutation.
func (m *PersonMutation) Ciudad() (r string, exists bool) {
	v := m.ciudad
	if v == nil {
		return
	}
	return *v, true
}

// OldCiudad returns the old "ciudad" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldCiudad(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCiudad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCiudad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCiudad: %w", err)
	}
	return oldValue.Ciudad, nil
}

// ResetCiudad resets all changes to the "ciudad" field.
func (m *PersonMutation) ResetCiudad() {
	m.ciudad = nil
}

// SetTelefono sets the "telefono" field.
func (m *PersonMutation) SetTelefono(s string) {
	m.telefono = &s
}

// Telefono returns the value of the "telefono" field in the mutation.
func (m *PersonMutation) Telefono() (r string, exists bool) {
	v := m.telefono
	if v == nil {
		return
	}
	return *v, true
}

// OldTelefono returns the old "telefono" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldTelefono(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelefono is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelefono requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelefono: %w", err)
	}
	return oldValue.Telefono, nil
}

// ResetTelefono resets all changes to the "telefono" field.
func (m *PersonMutation) ResetTelefono() {
	m.telefono = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PersonMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PersonMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PersonMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PersonMutation builder.
func (m *PersonMutation) Where(ps ...predicate.Person) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Person, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Person).
func (m *PersonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.numero_documento != nil {
		fields = append(fields, person.FieldNumeroDocumento)
	}
	if m.tipo_documento != nil {
		fields = append(fields, person.FieldTipoDocumento)
	}
	if m.nombre != nil {
		fields = append(fields, person.FieldNombre)
	}
	if m.direccion != nil {
		fields = append(fields, person.FieldDireccion)
	}
	if m.ciudad != nil {
		fields = append(fields, person.FieldCiudad)
	}
	if m.telefono != nil {
		fields = append(fields, person.FieldTelefono)
	}
	if m.created_at != nil {
		fields = append(fields, person.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, person.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case person.FieldNumeroDocumento:
		return m.NumeroDocumento()
	case person.FieldTipoDocumento:
		return m.TipoDocumento()
	case person.FieldNombre:
		return m.Nombre()
	case person.FieldDireccion:
		return m.Direccion()
	case person.FieldCiudad:
		return m.Ciudad()
	case person.FieldTelefono:
		return m.Telefono()
	case person.FieldCreatedAt:
		return m.CreatedAt()
	case person.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case person.FieldNumeroDocumento:
		return m.OldNumeroDocumento(ctx)
	case person.FieldTipoDocumento:
		return m.OldTipoDocumento(ctx)
	case person.FieldNombre:
		return m.OldNombre(ctx)
	case person.FieldDireccion:
		return m.OldDireccion(ctx)
	case person.FieldCiudad:
		return m.OldCiudad(ctx)
	case person.FieldTelefono:
		return m.OldTelefono(ctx)
	case person.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case person.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Person field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case person.FieldNumeroDocumento:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumeroDocumento(v)
		return nil
	case person.FieldTipoDocumento:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipoDocumento(v)
		return nil
	case person.FieldNombre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombre(v)
		return nil
	case person.FieldDireccion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDireccion(v)
		return nil
	case person.FieldCiudad:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCiudad(v)
		return nil
	case person.FieldTelefono:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelefono(v)
		return nil
	case person.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case person.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Person numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(person.FieldTipoDocumento) {
		fields = append(fields, person.FieldTipoDocumento)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonMutation) ClearField(name string) error {
	switch name {
	case person.FieldTipoDocumento:
		m.ClearTipoDocumento()
		return nil
	}
	return fmt.Errorf("unknown Person nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonMutation) ResetField(name string) error {
	switch name {
	case person.FieldNumeroDocumento:
		m.ResetNumeroDocumento()
		return nil
	case person.FieldTipoDocumento:
		m.ResetTipoDocumento()
		return nil
	case person.FieldNombre:
		m.ResetNombre()
		return nil
	case person.FieldDireccion:
		m.ResetDireccion()
		return nil
	case person.FieldCiudad:
		m.ResetCiudad()
		return nil
	case person.FieldTelefono:
		m.ResetTelefono()
		return nil
	case person.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case person.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Person unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Person edge %s", name)
}

// VehicleMutation represents an operation that mutates the Vehicle nodes in the graph.
type VehicleMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	placa          *string
	marca          *string
	linea          *string
	modelo         *string
	color          *string
	numero_motor   *string
	numero_chasis  *string
	numero_serie   *string
	vin            *string
	cilindraje     *string
	potencia_hp    *string
	capacidad      *string
	carroceria     *string
	clase_vehiculo *string
	combustible    *string
	servicio       *string
	puertas        *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Vehicle, error)
	predicates     []predicate.Vehicle
}

var _ ent.Mutation = (*VehicleMutation)(nil)

// vehicleOption allows management of the mutation configuration using functional options.
type vehicleOption func(*VehicleMutation)

// newVehicleMutation creates new mutation for the Vehicle entity.
func newVehicleMutation(c config, op Op, opts ...vehicleOption) *VehicleMutation {
	m := &VehicleMutation{
		config:        c,
		op:            op,
		typ:           TypeVehicle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVehicleID sets the ID field of the mutation.
func withVehicleID(id uuid.UUID) vehicleOption {
	return func(m *VehicleMutation) {
		var (
			err   error
			once  sync.Once
			value *Vehicle
		)
		m.oldValue = func(ctx context.Context) (*Vehicle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vehicle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVehicle sets the old Vehicle of the mutation.
func withVehicle(node *Vehicle) vehicleOption {
	return func(m *VehicleMutation) {
		m.oldValue = func(context.Context) (*Vehicle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VehicleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VehicleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vehicle entities.
func (m *VehicleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VehicleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VehicleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vehicle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlaca sets the "placa" field.
func (m *VehicleMutation) SetPlaca(s string) {
	m.placa = &s
}

// Placa returns the value of the "placa" field in the mutation.
func (m *VehicleMutation) Placa() (r string, exists bool) {
	v := m.placa
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaca returns the old "placa" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldPlaca(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaca is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaca requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaca: %w", err)
	}
	return oldValue.Placa, nil
}

// ResetPlaca resets all changes to the "placa" field.
func (m *VehicleMutation) ResetPlaca() {
	m.placa = nil
}

// SetMarca sets the "marca" field.
func (m *VehicleMutation) SetMarca(s string) {
	m.marca = &s
}

// Marca returns the value of the "marca" field in the mutation.
func (m *VehicleMutation) Marca() (r string, exists bool) {
	v := m.marca
	if v == nil {
		return
	}
	return *v, true
}

// OldMarca returns the old "marca" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldMarca(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarca is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarca requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarca: %w", err)
	}
	return oldValue.Marca, nil
}

// ResetMarca resets all changes to the "marca" field.
func (m *VehicleMutation) ResetMarca() {
	m.marca = nil
}

// SetLinea sets the "linea" field.
func (m *VehicleMutation) SetLinea(s string) {
	m.linea = &s
}

// Linea returns the value of the "linea" field in the mutation.
func (m *VehicleMutation) Linea() (r string, exists bool) {
	v := m.linea
	if v == nil {
		return
	}
	return *v, true
}

// OldLinea returns the old "linea" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldLinea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinea: %w", err)
	}
	return oldValue.Linea, nil
}

// ResetLinea resets all changes to the "linea" field.
func (m *VehicleMutation) ResetLinea() {
	m.linea = nil
}

// SetModelo sets the "modelo" field.
func (m *VehicleMutation) SetModelo(s string) {
	m.modelo = &s
}

// Modelo returns the value of the "modelo" field in the mutation.
func (m *VehicleMutation) Modelo() (r string, exists bool) {
	v := m.modelo
	if v == nil {
		return
	}
	return *v, true
}

// OldModelo returns the old "modelo" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldModelo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelo: %w", err)
	}
	return oldValue.Modelo, nil
}

// ResetModelo resets all changes to the "modelo" field.
func (m *VehicleMutation) ResetModelo() {
	m.modelo = nil
}

// SetColor sets the "color" field.
func (m *VehicleMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *VehicleMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ResetColor resets all changes to the "color" field.
func (m *VehicleMutation) ResetColor() {
	m.color = nil
}

// SetNumeroMotor sets the "numero_motor" field.
func (m *VehicleMutation) SetNumeroMotor(s string) {
	m.numero_motor = &s
}

// NumeroMotor returns the value of the "numero_motor" field in the mutation.
func (m *VehicleMutation) NumeroMotor() (r string, exists bool) {
	v := m.numero_motor
	if v == nil {
		return
	}
	return *v, true
}

// OldNumeroMotor returns the old "numero_motor" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldNumeroMotor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumeroMotor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumeroMotor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumeroMotor: %w", err)
	}
	return oldValue.NumeroMotor, nil
}

// ResetNumeroMotor resets all changes to the "numero_motor" field.
func (m *VehicleMutation) ResetNumeroMotor() {
	m.numero_motor = nil
}

// SetNumeroChasis sets the "numero_chasis" field.
func (m *VehicleMutation) SetNumeroChasis(s string) {
	m.numero_chasis = &s
}

// NumeroChasis returns the value of the "numero_chasis" field in the mutation.
func (m *VehicleMutation) NumeroChasis() (r string, exists bool) {
	v := m.numero_chasis
	if v == nil {
		return
	}
	return *v, true
}

// OldNumeroChasis returns the old "numero_chasis" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldNumeroChasis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumeroChasis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumeroChasis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumeroChasis: %w", err)
	}
	return oldValue.NumeroChasis, nil
}

// ResetNumeroChasis resets all changes to the "numero_chasis" field.
func (m *VehicleMutation) ResetNumeroChasis() {
	m.numero_chasis = nil
}

// SetNumeroSerie sets the "numero_serie" field.
func (m *VehicleMutation) SetNumeroSerie(s string) {
	m.numero_serie = &s
}

// NumeroSerie returns the value of the "numero_serie" field in the mutation.
func (m *VehicleMutation) NumeroSerie() (r string, exists bool) {
	v := m.numero_serie
	if v == nil {
		return
	}
	return *v, true
}

// OldNumeroSerie returns the old "numero_serie" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldNumeroSerie(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumeroSerie is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumeroSerie requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumeroSerie: %w", err)
	}
	return oldValue.NumeroSerie, nil
}

// ResetNumeroSerie resets all changes to the "numero_serie" field.
func (m *VehicleMutation) ResetNumeroSerie() {
	m.numero_serie = nil
}

// SetVin sets the "vin" field.
func (m *VehicleMutation) SetVin(s string) {
	m.vin = &s
}

// Vin returns the value of the "vin" field in the mutation.
func (m *VehicleMutation) Vin() (r string, exists bool) {
	v := m.vin
	if v == nil {
		return
	}
	return *v, true
}

// OldVin returns the old "vin" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldVin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVin: %w", err)
	}
	return oldValue.Vin, nil
}

// ResetVin resets all changes to the "vin" field.
func (m *VehicleMutation) ResetVin() {
	m.vin = nil
}

// SetCilindraje sets the "cilindraje" field.
func (m *VehicleMutation) SetCilindraje(s string) {
	m.cilindraje = &s
}

// Cilindraje returns the value of the "cilindraje" field in the mutation.
func (m *VehicleMutation) Cilindraje() (r string, exists bool) {
	v := m.cilindraje
	if v == nil {
		return
	}
	return *v, true
}

// OldCilindraje returns the old "cilindraje" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldCilindraje(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCilindraje is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCilindraje requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCilindraje: %w", err)
	}
	return oldValue.Cilindraje, nil
}

// ResetCilindraje resets all changes to the "cilindraje" field.
func (m *VehicleMutation) ResetCilindraje() {
	m.cilindraje = nil
}

// SetPotenciaHp sets the "potencia_hp" field.
func (m *VehicleMutation) SetPotenciaHp(s string) {
	m.potencia_hp = &s
}

// PotenciaHp returns the value of the "potencia_hp" field in the mutation.
func (m *VehicleMutation) PotenciaHp() (r string, exists bool) {
	v := m.potencia_hp
	if v == nil {
		return
	}
	return *v, true
}

// OldPotenciaHp returns the old "potencia_hp" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldPotenciaHp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPotenciaHp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPotenciaHp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPotenciaHp: %w", err)
	}
	return oldValue.PotenciaHp, nil
}

// ResetPotenciaHp resets all changes to the "potencia_hp" field.
func (m *VehicleMutation) ResetPotenciaHp() {
	m.potencia_hp = nil
}

// SetCapacidad sets the "capacidad" field.
func (m *VehicleMutation) SetCapacidad(s string) {
	m.capacidad = &s
}

// Capacidad returns the value of the "capacidad" field in the mutation.
func (m *VehicleMutation) Capacidad() (r string, exists bool) {
	v := m.capacidad
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacidad returns the old "capacidad" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldCapacidad(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacidad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacidad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacidad: %w", err)
	}
	return oldValue.Capacidad, nil
}

// ResetCapacidad resets all changes to the "capacidad" field.
func (m *VehicleMutation) ResetCapacidad() {
	m.capacidad = nil
}

// SetCarroceria sets the "carroceria" field.
func (m *VehicleMutation) SetCarroceria(s string) {
	m.carroceria = &s
}

// Carroceria returns the value of the "carroceria" field in the mutation.
func (m *VehicleMutation) Carroceria() (r string, exists bool) {
	v := m.carroceria
	if v == nil {
		return
	}
	return *v, true
}

// OldCarroceria returns the old "carroceria" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldCarroceria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarroceria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarroceria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarroceria: %w", err)
	}
	return oldValue.Carroceria, nil
}

// ResetCarroceria resets all changes to the "carroceria" field.
func (m *VehicleMutation) ResetCarroceria() {
	m.carroceria = nil
}

// SetClaseVehiculo sets the "clase_vehiculo" field.
func (m *VehicleMutation) SetClaseVehiculo(s string) {
	m.clase_vehiculo = &s
}

// ClaseVehiculo returns the value of the "clase_vehiculo" field in the mutation.
func (m *VehicleMutation) ClaseVehiculo() (r string, exists bool) {
	v := m.clase_vehiculo
	if v == nil {
		return
	}
	return *v, true
}

// OldClaseVehiculo returns the old "clase_vehiculo" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldClaseVehiculo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaseVehiculo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaseVehiculo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaseVehiculo: %w", err)
	}
	return oldValue.ClaseVehiculo, nil
}

// ResetClaseVehiculo resets all changes to the "clase_vehiculo" field.
func (m *VehicleMutation) ResetClaseVehiculo() {
	m.clase_vehiculo = nil
}

// SetCombustible sets the "combustible" field.
func (m *VehicleMutation) SetCombustible(s string) {
	m.combustible = &s
}

// Combustible returns the value of the "combustible" field in the mutation.
func (m *VehicleMutation) Combustible() (r string, exists bool) {
	v := m.combustible
	if v == nil {
		return
	}
	return *v, true
}

// OldCombustible returns the old "combustible" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldCombustible(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombustible is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombustible requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombustible: %w", err)
	}
	return oldValue.Combustible, nil
}

// ResetCombustible resets all changes to the "combustible" field.
func (m *VehicleMutation) ResetCombustible() {
	m.combustible = nil
}

// SetServicio sets the "servicio" field.
func (m *VehicleMutation) SetServicio(s string) {
	m.servicio = &s
}

// Servicio returns the value of the "servicio" field in the mutation.
func (m *VehicleMutation) Servicio() (r string, exists bool) {
	v := m.servicio
	if v == nil {
		return
	}
	return *v, true
}

// OldServicio returns the old "servicio" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldServicio(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServicio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServicio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServicio: %w", err)
	}
	return oldValue.Servicio, nil
}

// ResetServicio resets all changes to the "servicio" field.
func (m *VehicleMutation) ResetServicio() {
	m.servicio = nil
}

// SetPuertas sets the "puertas" field.
func (m *VehicleMutation) SetPuertas(s string) {
	m.puertas = &s
}

// Puertas returns the value of the "puertas" field in the mutation.
func (m *VehicleMutation) Puertas() (r string, exists bool) {
	v := m.puertas
	if v == nil {
		return
	}
	return *v, true
}

// OldPuertas returns the old "puertas" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldPuertas(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPuertas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPuertas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPuertas: %w", err)
	}
	return oldValue.Puertas, nil
}

// ResetPuertas resets all changes to the "puertas" field.
func (m *VehicleMutation) ResetPuertas() {
	m.puertas = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VehicleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VehicleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VehicleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VehicleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VehicleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VehicleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the VehicleMutation builder.
func (m *VehicleMutation) Where(ps ...predicate.Vehicle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VehicleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VehicleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vehicle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VehicleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VehicleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vehicle).
func (m *VehicleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VehicleMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.placa != nil {
		fields = append(fields, vehicle.FieldPlaca)
	}
	if m.marca != nil {
		fields = append(fields, vehicle.FieldMarca)
	}
	if m.linea != nil {
		fields = append(fields, vehicle.FieldLinea)
	}
	if m.modelo != nil {
		fields = append(fields, vehicle.FieldModelo)
	}
	if m.color != nil {
		fields = append(fields, vehicle.FieldColor)
	}
	if m.numero_motor != nil {
		fields = append(fields, vehicle.FieldNumeroMotor)
	}
	if m.numero_chasis != nil {
		fields = append(fields, vehicle.FieldNumeroChasis)
	}
	if m.numero_serie != nil {
		fields = append(fields, vehicle.FieldNumeroSerie)
	}
	if m.vin != nil {
		fields = append(fields, vehicle.FieldVin)
	}
	if m.cilindraje != nil {
		fields = append(fields, vehicle.FieldCilindraje)
	}
	if m.potencia_hp != nil {
		fields = append(fields, vehicle.FieldPotenciaHp)
	}
	if m.capacidad != nil {
		fields = append(fields, vehicle.FieldCapacidad)
	}
	if m.carroceria != nil {
		fields = append(fields, vehicle.FieldCarroceria)
	}
	if m.clase_vehiculo != nil {
		fields = append(fields, vehicle.FieldClaseVehiculo)
	}
	if m.combustible != nil {
		fields = append(fields, vehicle.FieldCombustible)
	}
	if m.servicio != nil {
		fields = append(fields, vehicle.FieldServicio)
	}
	if m.puertas != nil {
		fields = append(fields, vehicle.FieldPuertas)
	}
	if m.created_at != nil {
		fields = append(fields, vehicle.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vehicle.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VehicleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vehicle.FieldPlaca:
		return m.Placa()
	case vehicle.FieldMarca:
		return m.Marca()
	case vehicle.FieldLinea:
		return m.Linea()
	case vehicle.FieldModelo:
		return m.Modelo()
	case vehicle.FieldColor:
		return m.Color()
	case vehicle.FieldNumeroMotor:
		return m.NumeroMotor()
	case vehicle.FieldNumeroChasis:
		return m.NumeroChasis()
	case vehicle.FieldNumeroSerie:
		return m.NumeroSerie()
	case vehicle.FieldVin:
		return m.Vin()
	case vehicle.FieldCilindraje:
		return m.Cilindraje()
	case vehicle.FieldPotenciaHp:
		return m.PotenciaHp()
	case vehicle.FieldCapacidad:
		return m.Capacidad()
	case vehicle.FieldCarroceria:
		return m.Carroceria()
	case vehicle.FieldClaseVehiculo:
		return m.ClaseVehiculo()
	case vehicle.FieldCombustible:
		return m.Combustible()
	case vehicle.FieldServicio:
		return m.Servicio()
	case vehicle.FieldPuertas:
		return m.Puertas()
	case vehicle.FieldCreatedAt:
		return m.CreatedAt()
	case vehicle.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VehicleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vehicle.FieldPlaca:
		return m.OldPlaca(ctx)
	case vehicle.FieldMarca:
		return m.OldMarca(ctx)
	case vehicle.FieldLinea:
		return m.OldLinea(ctx)
	case vehicle.FieldModelo:
		return m.OldModelo(ctx)
	case vehicle.FieldColor:
		return m.OldColor(ctx)
	case vehicle.FieldNumeroMotor:
		return m.OldNumeroMotor(ctx)
	case vehicle.FieldNumeroChasis:
		return m.OldNumeroChasis(ctx)
	case vehicle.FieldNumeroSerie:
		return m.OldNumeroSerie(ctx)
	case vehicle.FieldVin:
		return m.OldVin(ctx)
	case vehicle.FieldCilindraje:
		return m.OldCilindraje(ctx)
	case vehicle.FieldPotenciaHp:
		return m.OldPotenciaHp(ctx)
	case vehicle.FieldCapacidad:
		return m.OldCapacidad(ctx)
	case vehicle.FieldCarroceria:
		return m.OldCarroceria(ctx)
	case vehicle.FieldClaseVehiculo:
		return m.OldClaseVehiculo(ctx)
	case vehicle.FieldCombustible:
		return m.OldCombustible(ctx)
	case vehicle.FieldServicio:
		return m.OldServicio(ctx)
	case vehicle.FieldPuertas:
		return m.OldPuertas(ctx)
	case vehicle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vehicle.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vehicle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vehicle.FieldPlaca:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaca(v)
		return nil
	case vehicle.FieldMarca:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarca(v)
		return nil
	case vehicle.FieldLinea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinea(v)
		return nil
	case vehicle.FieldModelo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelo(v)
		return nil
	case vehicle.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case vehicle.FieldNumeroMotor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumeroMotor(v)
		return nil
	case vehicle.FieldNumeroChasis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumeroChasis(v)
		return nil
	case vehicle.FieldNumeroSerie:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumeroSerie(v)
		return nil
	case vehicle.FieldVin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVin(v)
		return nil
	case vehicle.FieldCilindraje:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCilindraje(v)
		return nil
	case vehicle.FieldPotenciaHp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPotenciaHp(v)
		return nil
	case vehicle.FieldCapacidad:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacidad(v)
		return nil
	case vehicle.FieldCarroceria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarroceria(v)
		return nil
	case vehicle.FieldClaseVehiculo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaseVehiculo(v)
		return nil
	case vehicle.FieldCombustible:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombustible(v)
		return nil
	case vehicle.FieldServicio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServicio(v)
		return nil
	case vehicle.FieldPuertas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPuertas(v)
		return nil
	case vehicle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vehicle.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VehicleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VehicleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vehicle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VehicleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VehicleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VehicleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Vehicle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VehicleMutation) ResetField(name string) error {
	switch name {
	case vehicle.FieldPlaca:
		m.ResetPlaca()
		return nil
	case vehicle.FieldMarca:
		m.ResetMarca()
		return nil
	case vehicle.FieldLinea:
		m.ResetLinea()
		return nil
	case vehicle.FieldModelo:
		m.ResetModelo()
		return nil
	case vehicle.FieldColor:
		m.ResetColor()
		return nil
	case vehicle.FieldNumeroMotor:
		m.ResetNumeroMotor()
		return nil
	case vehicle.FieldNumeroChasis:
		m.ResetNumeroChasis()
		return nil
	case vehicle.FieldNumeroSerie:
		m.ResetNumeroSerie()
		return nil
	case vehicle.FieldVin:
		m.ResetVin()
		return nil
	case vehicle.FieldCilindraje:
		m.ResetCilindraje()
		return nil
	case vehicle.FieldPotenciaHp:
		m.ResetPotenciaHp()
		return nil
	case vehicle.FieldCapacidad:
		m.ResetCapacidad()
		return nil
	case vehicle.FieldCarroceria:
		m.ResetCarroceria()
		return nil
	case vehicle.FieldClaseVehiculo:
		m.ResetClaseVehiculo()
		return nil
	case vehicle.FieldCombustible:
		m.ResetCombustible()
		return nil
	case vehicle.FieldServicio:
		m.ResetServicio()
		return nil
	case vehicle.FieldPuertas:
		m.ResetPuertas()
		return nil
	case vehicle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vehicle.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VehicleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VehicleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VehicleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VehicleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VehicleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VehicleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VehicleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Vehicle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VehicleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Vehicle edge %s", name)
}
