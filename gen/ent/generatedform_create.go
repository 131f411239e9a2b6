// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfmora/car2data/gen/ent/document"
	"github.com/dfmora/car2data/gen/ent/generatedform"
	"github.com/google/uuid"
)

// GeneratedFormCreate is the builder for creating a GeneratedForm entity.
type GeneratedFormCreate struct {
	config
	mutation *GeneratedFormMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *GeneratedFormCreate) SetOwnerID(v uuid.UUID) *GeneratedFormCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *GeneratedFormCreate) SetDocumentID(v uuid.UUID) *GeneratedFormCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFormType sets the "form_type" field.
func (_c *GeneratedFormCreate) SetFormType(v string) *GeneratedFormCreate {
	_c.mutation.SetFormType(v)
	return _c
}

// SetOutputPath sets the "output_path" field.
func (_c *GeneratedFormCreate) SetOutputPath(v string) *GeneratedFormCreate {
	_c.mutation.SetOutputPath(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GeneratedFormCreate) SetCreatedAt(v time.Time) *GeneratedFormCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GeneratedFormCreate) SetNillableCreatedAt(v *time.Time) *GeneratedFormCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeneratedFormCreate) SetID(v uuid.UUID) *GeneratedFormCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GeneratedFormCreate) SetNillableID(v *uuid.UUID) *GeneratedFormCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *GeneratedFormCreate) SetDocument(v *Document) *GeneratedFormCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the GeneratedFormMutation object of the builder.
func (_c *GeneratedFormCreate) Mutation() *GeneratedFormMutation {
	return _c.mutation
}

// Save creates the GeneratedForm in the database.
func (_c *GeneratedFormCreate) Save(ctx context.Context) (*GeneratedForm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedFormCreate) SaveX(ctx context.Context) *GeneratedForm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedFormCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedFormCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedFormCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generatedform.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := generatedform.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedFormCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "GeneratedForm.owner_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "GeneratedForm.document_id"`)}
	}
	if _, ok := _c.mutation.FormType(); !ok {
		return &ValidationError{Name: "form_type", err: errors.New(`ent: missing required field "GeneratedForm.form_type"`)}
	}
	if v, ok := _c.mutation.FormType(); ok {
		if err := generatedform.FormTypeValidator(v); err != nil {
			return &ValidationError{Name: "form_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedForm.form_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutputPath(); !ok {
		return &ValidationError{Name: "output_path", err: errors.New(`ent: missing required field "GeneratedForm.output_path"`)}
	}
	if v, ok := _c.mutation.OutputPath(); ok {
		if err := generatedform.OutputPathValidator(v); err != nil {
			return &ValidationError{Name: "output_path", err: fmt.Errorf(`ent: validator failed for field "GeneratedForm.output_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GeneratedForm.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "GeneratedForm.document"`)}
	}
	return nil
}

func (_c *GeneratedFormCreate) sqlSave(ctx context.Context) (*GeneratedForm, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GeneratedFormCreate) createSpec() (*GeneratedForm, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedForm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedform.Table, sqlgraph.NewFieldSpec(generatedform.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(generatedform.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.FormType(); ok {
		_spec.SetField(generatedform.FieldFormType, field.TypeString, value)
		_node.FormType = value
	}
	if value, ok := _c.mutation.OutputPath(); ok {
		_spec.SetField(generatedform.FieldOutputPath, field.TypeString, value)
		_node.OutputPath = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generatedform.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GeneratedFormCreateBulk is the builder for creating many GeneratedForm entities in bulk.
type GeneratedFormCreateBulk struct {
	config
	err      error
	builders []*GeneratedFormCreate
}

// Save creates the GeneratedForm entities in the database.
func (_c *GeneratedFormCreateBulk) Save(ctx context.Context) ([]*GeneratedForm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedForm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedFormMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GeneratedFormCreateBulk) SaveX(ctx context.Context) []*GeneratedForm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedFormCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedFormCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
