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
	"github.com/dfmora/car2data/gen/ent/person"
	"github.com/dfmora/car2data/gen/ent/predicate"
)

// PersonUpdate is the builder for updating Person entities.
type PersonUpdate struct {
	config
	hooks    []Hook
	mutation *PersonMutation
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdate) Where(ps ...predicate.Person) *PersonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNumeroDocumento sets the "numero_documento" field.
func (_u *PersonUpdate) SetNumeroDocumento(v string) *PersonUpdate {
	_u.mutation.SetNumeroDocumento(v)
	return _u
}

// SetNillableNumeroDocumento sets the "numero_documento" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableNumeroDocumento(v *string) *PersonUpdate {
	if v != nil {
		_u.SetNumeroDocumento(*v)
	}
	return _u
}

// SetTipoDocumento sets the "tipo_documento" field.
func (_u *PersonUpdate) SetTipoDocumento(v string) *PersonUpdate {
	_u.mutation.SetTipoDocumento(v)
	return _u
}

// SetNillableTipoDocumento sets the "tipo_documento" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableTipoDocumento(v *string) *PersonUpdate {
	if v != nil {
		_u.SetTipoDocumento(*v)
	}
	return _u
}

// ClearTipoDocumento clears the value of the "tipo_documento" field.
func (_u *PersonUpdate) ClearTipoDocumento() *PersonUpdate {
	_u.mutation.ClearTipoDocumento()
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *PersonUpdate) SetNombre(v string) *PersonUpdate {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableNombre(v *string) *PersonUpdate {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetDireccion sets the "direccion" field.
func (_u *PersonUpdate) SetDireccion(v string) *PersonUpdate {
	_u.mutation.SetDireccion(v)
	return _u
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableDireccion(v *string) *PersonUpdate {
	if v != nil {
		_u.SetDireccion(*v)
	}
	return _u
}

// SetCiudad sets the "ciudad" field.
func (_u *PersonUpdate) SetCiudad(v string) *PersonUpdate {
	_u.mutation.SetCiudad(v)
	return _u
}

// SetNillableCiudad sets the "ciudad" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableCiudad(v *string) *PersonUpdate {
	if v != nil {
		_u.SetCiudad(*v)
	}
	return _u
}

// SetTelefono sets the "telefono" field.
func (_u *PersonUpdate) SetTelefono(v string) *PersonUpdate {
	_u.mutation.SetTelefono(v)
	return _u
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableTelefono(v *string) *PersonUpdate {
	if v != nil {
		_u.SetTelefono(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PersonUpdate) SetCreatedAt(v time.Time) *PersonUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableCreatedAt(v *time.Time) *PersonUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonUpdate) SetUpdatedAt(v time.Time) *PersonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdate) Mutation() *PersonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := person.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdate) check() error {
	if v, ok := _u.mutation.NumeroDocumento(); ok {
		if err := person.NumeroDocumentoValidator(v); err != nil {
			return &ValidationError{Name: "numero_documento", err: fmt.Errorf(`ent: validator failed for field "Person.numero_documento": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TipoDocumento(); ok {
		if err := person.TipoDocumentoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_documento", err: fmt.Errorf(`ent: validator failed for field "Person.tipo_documento": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NumeroDocumento(); ok {
		_spec.SetField(person.FieldNumeroDocumento, field.TypeString, value)
	}
	if value, ok := _u.mutation.TipoDocumento(); ok {
		_spec.SetField(person.FieldTipoDocumento, field.TypeString, value)
	}
	if _u.mutation.TipoDocumentoCleared() {
		_spec.ClearField(person.FieldTipoDocumento, field.TypeString)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(person.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direccion(); ok {
		_spec.SetField(person.FieldDireccion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ciudad(); ok {
		_spec.SetField(person.FieldCiudad, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telefono(); ok {
		_spec.SetField(person.FieldTelefono, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(person.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(person.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonUpdateOne is the builder for updating a single Person entity.
type PersonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonMutation
}

// SetNumeroDocumento sets the "numero_documento" field.
func (_u *PersonUpdateOne) SetNumeroDocumento(v string) *PersonUpdateOne {
	_u.mutation.SetNumeroDocumento(v)
	return _u
}

// SetNillableNumeroDocumento sets the "numero_documento" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableNumeroDocumento(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetNumeroDocumento(*v)
	}
	return _u
}

// SetTipoDocumento sets the "tipo_documento" field.
func (_u *PersonUpdateOne) SetTipoDocumento(v string) *PersonUpdateOne {
	_u.mutation.SetTipoDocumento(v)
	return _u
}

// SetNillableTipoDocumento sets the "tipo_documento" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableTipoDocumento(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetTipoDocumento(*v)
	}
	return _u
}

// ClearTipoDocumento clears the value of the "tipo_documento" field.
func (_u *PersonUpdateOne) ClearTipoDocumento() *PersonUpdateOne {
	_u.mutation.ClearTipoDocumento()
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *PersonUpdateOne) SetNombre(v string) *PersonUpdateOne {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableNombre(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetDireccion sets the "direccion" field.
func (_u *PersonUpdateOne) SetDireccion(v string) *PersonUpdateOne {
	_u.mutation.SetDireccion(v)
	return _u
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableDireccion(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetDireccion(*v)
	}
	return _u
}

// SetCiudad sets the "ciudad" field.
func (_u *PersonUpdateOne) SetCiudad(v string) *PersonUpdateOne {
	_u.mutation.SetCiudad(v)
	return _u
}

// SetNillableCiudad sets the "ciudad" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableCiudad(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetCiudad(*v)
	}
	return _u
}

// SetTelefono sets the "telefono" field.
func (_u *PersonUpdateOne) SetTelefono(v string) *PersonUpdateOne {
	_u.mutation.SetTelefono(v)
	return _u
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableTelefono(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetTelefono(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PersonUpdateOne) SetCreatedAt(v time.Time) *PersonUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableCreatedAt(v *time.Time) *PersonUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonUpdateOne) SetUpdatedAt(v time.Time) *PersonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdateOne) Mutation() *PersonMutation {
	return _u.mutation
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdateOne) Where(ps ...predicate.Person) *PersonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonUpdateOne) Select(field string, fields ...string) *PersonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Person entity.
func (_u *PersonUpdateOne) Save(ctx context.Context) (*Person, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdateOne) SaveX(ctx context.Context) *Person {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := person.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdateOne) check() error {
	if v, ok := _u.mutation.NumeroDocumento(); ok {
		if err := person.NumeroDocumentoValidator(v); err != nil {
			return &ValidationError{Name: "numero_documento", err: fmt.Errorf(`ent: validator failed for field "Person.numero_documento": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TipoDocumento(); ok {
		if err := person.TipoDocumentoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_documento", err: fmt.Errorf(`ent: validator failed for field "Person.tipo_documento": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdateOne) sqlSave(ctx context.Context) (_node *Person, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Person.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, person.FieldID)
		for _, f := range fields {
			if !person.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != person.FieldID {
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
	if value, ok := _u.mutation.NumeroDocumento(); ok {
		_spec.SetField(person.FieldNumeroDocumento, field.TypeString, value)
	}
	if value, ok := _u.mutation.TipoDocumento(); ok {
		_spec.SetField(person.FieldTipoDocumento, field.TypeString, value)
	}
	if _u.mutation.TipoDocumentoCleared() {
		_spec.ClearField(person.FieldTipoDocumento, field.TypeString)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(person.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direccion(); ok {
		_spec.SetField(person.FieldDireccion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ciudad(); ok {
		_spec.SetField(person.FieldCiudad, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telefono(); ok {
		_spec.SetField(person.FieldTelefono, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(person.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(person.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Person{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
