// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfmora/car2data/gen/ent/person"
	"github.com/google/uuid"
)

// PersonCreate is the builder for creating a Person entity.
type PersonCreate struct {
	config
	mutation *PersonMutation
	hooks    []Hook
}

// SetNumeroDocumento sets the "numero_documento" field.
func (_c *PersonCreate) SetNumeroDocumento(v string) *PersonCreate {
	_c.mutation.SetNumeroDocumento(v)
	return _c
}

// SetTipoDocumento sets the "tipo_documento" field.
func (_c *PersonCreate) SetTipoDocumento(v string) *PersonCreate {
	_c.mutation.SetTipoDocumento(v)
	return _c
}

// SetNillableTipoDocumento sets the "tipo_documento" field if the given value is not nil.
func (_c *PersonCreate) SetNillableTipoDocumento(v *string) *PersonCreate {
	if v != nil {
		_c.SetTipoDocumento(*v)
	}
	return _c
}

// SetNombre sets the "nombre" field.
func (_c *PersonCreate) SetNombre(v string) *PersonCreate {
	_c.mutation.SetNombre(v)
	return _c
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_c *PersonCreate) SetNillableNombre(v *string) *PersonCreate {
	if v != nil {
		_c.SetNombre(*v)
	}
	return _c
}

// SetDireccion sets the "direccion" field.
func (_c *PersonCreate) SetDireccion(v string) *PersonCreate {
	_c.mutation.SetDireccion(v)
	return _c
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_c *PersonCreate) SetNillableDireccion(v *string) *PersonCreate {
	if v != nil {
		_c.SetDireccion(*v)
	}
	return _c
}

// SetCiudad sets the "ciudad" field.
func (_c *PersonCreate) SetCiudad(v string) *PersonCreate {
	_c.mutation.SetCiudad(v)
	return _c
}

// SetNillableCiudad sets the "ciudad" field if the given value is not nil.
func (_c *PersonCreate) SetNillableCiudad(v *string) *PersonCreate {
	if v != nil {
		_c.SetCiudad(*v)
	}
	return _c
}

// SetTelefono sets the "telefono" field.
func (_c *PersonCreate) SetTelefono(v string) *PersonCreate {
	_c.mutation.SetTelefono(v)
	return _c
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_c *PersonCreate) SetNillableTelefono(v *string) *PersonCreate {
	if v != nil {
		_c.SetTelefono(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonCreate) SetCreatedAt(v time.Time) *PersonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonCreate) SetNillableCreatedAt(v *time.Time) *PersonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PersonCreate) SetUpdatedAt(v time.Time) *PersonCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PersonCreate) SetNillableUpdatedAt(v *time.Time) *PersonCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonCreate) SetID(v uuid.UUID) *PersonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PersonCreate) SetNillableID(v *uuid.UUID) *PersonCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PersonMutation object of the builder.
func (_c *PersonCreate) Mutation() *PersonMutation {
	return _c.mutation
}

// Save creates the Person in the database.
func (_c *PersonCreate) Save(ctx context.Context) (*Person, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonCreate) SaveX(ctx context.Context) *Person {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonCreate) defaults() {
	if _, ok := _c.mutation.Nombre(); !ok {
		v := person.DefaultNombre
		_c.mutation.SetNombre(v)
	}
	if _, ok := _c.mutation.Direccion(); !ok {
		v := person.DefaultDireccion
		_c.mutation.SetDireccion(v)
	}
	if _, ok := _c.mutation.Ciudad(); !ok {
		v := person.DefaultCiudad
		_c.mutation.SetCiudad(v)
	}
	if _, ok := _c.mutation.Telefono(); !ok {
		v := person.DefaultTelefono
		_c.mutation.SetTelefono(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := person.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := person.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := person.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonCreate) check() error {
	if _, ok := _c.mutation.NumeroDocumento(); !ok {
		return &ValidationError{Name: "numero_documento", err: errors.New(`ent: missing required field "Person.numero_documento"`)}
	}
	if v, ok := _c.mutation.NumeroDocumento(); ok {
		if err := person.NumeroDocumentoValidator(v); err != nil {
			return &ValidationError{Name: "numero_documento", err: fmt.Errorf(`ent: validator failed for field "Person.numero_documento": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TipoDocumento(); ok {
		if err := person.TipoDocumentoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_documento", err: fmt.Errorf(`ent: validator failed for field "Person.tipo_documento": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Nombre(); !ok {
		return &ValidationError{Name: "nombre", err: errors.New(`ent: missing required field "Person.nombre"`)}
	}
	if _, ok := _c.mutation.Direccion(); !ok {
		return &ValidationError{Name: "direccion", err: errors.New(`ent: missing required field "Person.direccion"`)}
	}
	if _, ok := _c.mutation.Ciudad(); !ok {
		return &ValidationError{Name: "ciudad", err: errors.New(`ent: missing required field "Person.ciudad"`)}
	}
	if _, ok := _c.mutation.Telefono(); !ok {
		return &ValidationError{Name: "telefono", err: errors.New(`ent: missing required field "Person.telefono"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Person.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Person.updated_at"`)}
	}
	return nil
}

func (_c *PersonCreate) sqlSave(ctx context.Context) (*Person, error) {
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

func (_c *PersonCreate) createSpec() (*Person, *sqlgraph.CreateSpec) {
	var (
		_node = &Person{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(person.Table, sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.NumeroDocumento(); ok {
		_spec.SetField(person.FieldNumeroDocumento, field.TypeString, value)
		_node.NumeroDocumento = value
	}
	if value, ok := _c.mutation.TipoDocumento(); ok {
		_spec.SetField(person.FieldTipoDocumento, field.TypeString, value)
		_node.TipoDocumento = value
	}
	if value, ok := _c.mutation.Nombre(); ok {
		_spec.SetField(person.FieldNombre, field.TypeString, value)
		_node.Nombre = value
	}
	if value, ok := _c.mutation.Direccion(); ok {
		_spec.SetField(person.FieldDireccion, field.TypeString, value)
		_node.Direccion = value
	}
	if value, ok := _c.mutation.Ciudad(); ok {
		_spec.SetField(person.FieldCiudad, field.TypeString, value)
		_node.Ciudad = value
	}
	if value, ok := _c.mutation.Telefono(); ok {
		_spec.SetField(person.FieldTelefono, field.TypeString, value)
		_node.Telefono = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(person.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(person.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PersonCreateBulk is the builder for creating many Person entities in bulk.
type PersonCreateBulk struct {
	config
	err      error
	builders []*PersonCreate
}

// Save creates the Person entities in the database.
func (_c *PersonCreateBulk) Save(ctx context.Context) ([]*Person, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Person, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonMutation)
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
func (_c *PersonCreateBulk) SaveX(ctx context.Context) []*Person {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
