// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfmora/car2data/gen/ent/document"
	"github.com/dfmora/car2data/gen/ent/generatedform"
	"github.com/dfmora/car2data/gen/ent/predicate"
	"github.com/google/uuid"
)

// GeneratedFormUpdate is the builder for updating GeneratedForm entities.
type GeneratedFormUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedFormMutation
}

// Where appends a list predicates to the GeneratedFormUpdate builder.
func (_u *GeneratedFormUpdate) Where(ps ...predicate.GeneratedForm) *GeneratedFormUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *GeneratedFormUpdate) SetOwnerID(v uuid.UUID) *GeneratedFormUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *GeneratedFormUpdate) SetNillableOwnerID(v *uuid.UUID) *GeneratedFormUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *GeneratedFormUpdate) SetDocumentID(v uuid.UUID) *GeneratedFormUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *GeneratedFormUpdate) SetNillableDocumentID(v *uuid.UUID) *GeneratedFormUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFormType sets the "form_type" field.
func (_u *GeneratedFormUpdate) SetFormType(v string) *GeneratedFormUpdate {
	_u.mutation.SetFormType(v)
	return _u
}

// SetNillableFormType sets the "form_type" field if the given value is not nil.
func (_u *GeneratedFormUpdate) SetNillableFormType(v *string) *GeneratedFormUpdate {
	if v != nil {
		_u.SetFormType(*v)
	}
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *GeneratedFormUpdate) SetOutputPath(v string) *GeneratedFormUpdate {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *GeneratedFormUpdate) SetNillableOutputPath(v *string) *GeneratedFormUpdate {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GeneratedFormUpdate) SetCreatedAt(v time.Time) *GeneratedFormUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GeneratedFormUpdate) SetNillableCreatedAt(v *time.Time) *GeneratedFormUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *GeneratedFormUpdate) SetDocument(v *Document) *GeneratedFormUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the GeneratedFormMutation object of the builder.
func (_u *GeneratedFormUpdate) Mutation() *GeneratedFormMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *GeneratedFormUpdate) ClearDocument() *GeneratedFormUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedFormUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedFormUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedFormUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedFormUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedFormUpdate) check() error {
	if v, ok := _u.mutation.FormType(); ok {
		if err := generatedform.FormTypeValidator(v); err != nil {
			return &ValidationError{Name: "form_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedForm.form_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputPath(); ok {
		if err := generatedform.OutputPathValidator(v); err != nil {
			return &ValidationError{Name: "output_path", err: fmt.Errorf(`ent: validator failed for field "GeneratedForm.output_path": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedForm.document"`)
	}
	return nil
}

func (_u *GeneratedFormUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedform.Table, generatedform.Columns, sqlgraph.NewFieldSpec(generatedform.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(generatedform.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FormType(); ok {
		_spec.SetField(generatedform.FieldFormType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(generatedform.FieldOutputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(generatedform.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedform.DocumentTable,
			Columns: []string{generatedform.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedform.DocumentTable,
			Columns: []string{generatedform.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedFormUpdateOne is the builder for updating a single GeneratedForm entity.
type GeneratedFormUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedFormMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *GeneratedFormUpdateOne) SetOwnerID(v uuid.UUID) *GeneratedFormUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *GeneratedFormUpdateOne) SetNillableOwnerID(v *uuid.UUID) *GeneratedFormUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *GeneratedFormUpdateOne) SetDocumentID(v uuid.UUID) *GeneratedFormUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *GeneratedFormUpdateOne) SetNillableDocumentID(v *uuid.UUID) *GeneratedFormUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFormType sets the "form_type" field.
func (_u *GeneratedFormUpdateOne) SetFormType(v string) *GeneratedFormUpdateOne {
	_u.mutation.SetFormType(v)
	return _u
}

// SetNillableFormType sets the "form_type" field if the given value is not nil.
func (_u *GeneratedFormUpdateOne) SetNillableFormType(v *string) *GeneratedFormUpdateOne {
	if v != nil {
		_u.SetFormType(*v)
	}
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *GeneratedFormUpdateOne) SetOutputPath(v string) *GeneratedFormUpdateOne {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *GeneratedFormUpdateOne) SetNillableOutputPath(v *string) *GeneratedFormUpdateOne {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GeneratedFormUpdateOne) SetCreatedAt(v time.Time) *GeneratedFormUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GeneratedFormUpdateOne) SetNillableCreatedAt(v *time.Time) *GeneratedFormUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *GeneratedFormUpdateOne) SetDocument(v *Document) *GeneratedFormUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the GeneratedFormMutation object of the builder.
func (_u *GeneratedFormUpdateOne) Mutation() *GeneratedFormMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *GeneratedFormUpdateOne) ClearDocument() *GeneratedFormUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the GeneratedFormUpdate builder.
func (_u *GeneratedFormUpdateOne) Where(ps ...predicate.GeneratedForm) *GeneratedFormUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedFormUpdateOne) Select(field string, fields ...string) *GeneratedFormUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedForm entity.
func (_u *GeneratedFormUpdateOne) Save(ctx context.Context) (*GeneratedForm, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedFormUpdateOne) SaveX(ctx context.Context) *GeneratedForm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedFormUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedFormUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedFormUpdateOne) check() error {
	if v, ok := _u.mutation.FormType(); ok {
		if err := generatedform.FormTypeValidator(v); err != nil {
			return &ValidationError{Name: "form_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedForm.form_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputPath(); ok {
		if err := generatedform.OutputPathValidator(v); err != nil {
			return &ValidationError{Name: "output_path", err: fmt.Errorf(`ent: validator failed for field "GeneratedForm.output_path": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedForm.document"`)
	}
	return nil
}

func (_u *GeneratedFormUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedForm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedform.Table, generatedform.Columns, sqlgraph.NewFieldSpec(generatedform.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedForm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedform.FieldID)
		for _, f := range fields {
			if !generatedform.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedform.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(generatedform.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FormType(); ok {
		_spec.SetField(generatedform.FieldFormType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(generatedform.FieldOutputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(generatedform.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedform.DocumentTable,
			Columns: []string{generatedform.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedform.DocumentTable,
			Columns: []string{generatedform.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GeneratedForm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
