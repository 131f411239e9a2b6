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
	"github.com/dfmora/car2data/gen/ent/predicate"
	"github.com/dfmora/car2data/gen/ent/vehicle"
)

// VehicleUpdate is the builder for updating Vehicle entities.
type VehicleUpdate struct {
	config
	hooks    []Hook
	mutation *VehicleMutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdate) Where(ps ...predicate.Vehicle) *VehicleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlaca sets the "placa" field.
func (_u *VehicleUpdate) SetPlaca(v string) *VehicleUpdate {
	_u.mutation.SetPlaca(v)
	return _u
}

// SetNillablePlaca sets the "placa" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillablePlaca(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetPlaca(*v)
	}
	return _u
}

// SetMarca sets the "marca" field.
func (_u *VehicleUpdate) SetMarca(v string) *VehicleUpdate {
	_u.mutation.SetMarca(v)
	return _u
}

// SetNillableMarca sets the "marca" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableMarca(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetMarca(*v)
	}
	return _u
}

// SetLinea sets the "linea" field.
func (_u *VehicleUpdate) SetLinea(v string) *VehicleUpdate {
	_u.mutation.SetLinea(v)
	return _u
}

// SetNillableLinea sets the "linea" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableLinea(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetLinea(*v)
	}
	return _u
}

// SetModelo sets the "modelo" field.
func (_u *VehicleUpdate) SetModelo(v string) *VehicleUpdate {
	_u.mutation.SetModelo(v)
	return _u
}

// SetNillableModelo sets the "modelo" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableModelo(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetModelo(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *VehicleUpdate) SetColor(v string) *VehicleUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableColor(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetNumeroMotor sets the "numero_motor" field.
func (_u *VehicleUpdate) SetNumeroMotor(v string) *VehicleUpdate {
	_u.mutation.SetNumeroMotor(v)
	return _u
}

// SetNillableNumeroMotor sets the "numero_motor" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableNumeroMotor(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetNumeroMotor(*v)
	}
	return _u
}

// SetNumeroChasis sets the "numero_chasis" field.
func (_u *VehicleUpdate) SetNumeroChasis(v string) *VehicleUpdate {
	_u.mutation.SetNumeroChasis(v)
	return _u
}

// SetNillableNumeroChasis sets the "numero_chasis" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableNumeroChasis(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetNumeroChasis(*v)
	}
	return _u
}

// SetNumeroSerie sets the "numero_serie" field.
func (_u *VehicleUpdate) SetNumeroSerie(v string) *VehicleUpdate {
	_u.mutation.SetNumeroSerie(v)
	return _u
}

// SetNillableNumeroSerie sets the "numero_serie" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableNumeroSerie(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetNumeroSerie(*v)
	}
	return _u
}

// SetVin sets the "vin" field.
func (_u *VehicleUpdate) SetVin(v string) *VehicleUpdate {
	_u.mutation.SetVin(v)
	return _u
}

// SetNillableVin sets the "vin" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableVin(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetVin(*v)
	}
	return _u
}

// SetCilindraje sets the "cilindraje" field.
func (_u *VehicleUpdate) SetCilindraje(v string) *VehicleUpdate {
	_u.mutation.SetCilindraje(v)
	return _u
}

// SetNillableCilindraje sets the "cilindraje" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableCilindraje(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetCilindraje(*v)
	}
	return _u
}

// SetPotenciaHp sets the "potencia_hp" field.
func (_u *VehicleUpdate) SetPotenciaHp(v string) *VehicleUpdate {
	_u.mutation.SetPotenciaHp(v)
	return _u
}

// SetNillablePotenciaHp sets the "potencia_hp" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillablePotenciaHp(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetPotenciaHp(*v)
	}
	return _u
}

// SetCapacidad sets the "capacidad" field.
func (_u *VehicleUpdate) SetCapacidad(v string) *VehicleUpdate {
	_u.mutation.SetCapacidad(v)
	return _u
}

// SetNillableCapacidad sets the "capacidad" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableCapacidad(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetCapacidad(*v)
	}
	return _u
}

// SetCarroceria sets the "carroceria" field.
func (_u *VehicleUpdate) SetCarroceria(v string) *VehicleUpdate {
	_u.mutation.SetCarroceria(v)
	return _u
}

// SetNillableCarroceria sets the "carroceria" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableCarroceria(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetCarroceria(*v)
	}
	return _u
}

// SetClaseVehiculo sets the "clase_vehiculo" field.
func (_u *VehicleUpdate) SetClaseVehiculo(v string) *VehicleUpdate {
	_u.mutation.SetClaseVehiculo(v)
	return _u
}

// SetNillableClaseVehiculo sets the "clase_vehiculo" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableClaseVehiculo(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetClaseVehiculo(*v)
	}
	return _u
}

// SetCombustible sets the "combustible" field.
func (_u *VehicleUpdate) SetCombustible(v string) *VehicleUpdate {
	_u.mutation.SetCombustible(v)
	return _u
}

// SetNillableCombustible sets the "combustible" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableCombustible(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetCombustible(*v)
	}
	return _u
}

// SetServicio sets the "servicio" field.
func (_u *VehicleUpdate) SetServicio(v string) *VehicleUpdate {
	_u.mutation.SetServicio(v)
	return _u
}

// SetNillableServicio sets the "servicio" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableServicio(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetServicio(*v)
	}
	return _u
}

// SetPuertas sets the "puertas" field.
func (_u *VehicleUpdate) SetPuertas(v string) *VehicleUpdate {
	_u.mutation.SetPuertas(v)
	return _u
}

// SetNillablePuertas sets the "puertas" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillablePuertas(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetPuertas(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VehicleUpdate) SetCreatedAt(v time.Time) *VehicleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableCreatedAt(v *time.Time) *VehicleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VehicleUpdate) SetUpdatedAt(v time.Time) *VehicleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdate) Mutation() *VehicleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VehicleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VehicleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VehicleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vehicle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VehicleUpdate) check() error {
	if v, ok := _u.mutation.Placa(); ok {
		if err := vehicle.PlacaValidator(v); err != nil {
			return &ValidationError{Name: "placa", err: fmt.Errorf(`ent: validator failed for field "Vehicle.placa": %w`, err)}
		}
	}
	return nil
}

func (_u *VehicleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Placa(); ok {
		_spec.SetField(vehicle.FieldPlaca, field.TypeString, value)
	}
	if value, ok := _u.mutation.Marca(); ok {
		_spec.SetField(vehicle.FieldMarca, field.TypeString, value)
	}
	if value, ok := _u.mutation.Linea(); ok {
		_spec.SetField(vehicle.FieldLinea, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modelo(); ok {
		_spec.SetField(vehicle.FieldModelo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(vehicle.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroMotor(); ok {
		_spec.SetField(vehicle.FieldNumeroMotor, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroChasis(); ok {
		_spec.SetField(vehicle.FieldNumeroChasis, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroSerie(); ok {
		_spec.SetField(vehicle.FieldNumeroSerie, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vin(); ok {
		_spec.SetField(vehicle.FieldVin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cilindraje(); ok {
		_spec.SetField(vehicle.FieldCilindraje, field.TypeString, value)
	}
	if value, ok := _u.mutation.PotenciaHp(); ok {
		_spec.SetField(vehicle.FieldPotenciaHp, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capacidad(); ok {
		_spec.SetField(vehicle.FieldCapacidad, field.TypeString, value)
	}
	if value, ok := _u.mutation.Carroceria(); ok {
		_spec.SetField(vehicle.FieldCarroceria, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaseVehiculo(); ok {
		_spec.SetField(vehicle.FieldClaseVehiculo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Combustible(); ok {
		_spec.SetField(vehicle.FieldCombustible, field.TypeString, value)
	}
	if value, ok := _u.mutation.Servicio(); ok {
		_spec.SetField(vehicle.FieldServicio, field.TypeString, value)
	}
	if value, ok := _u.mutation.Puertas(); ok {
		_spec.SetField(vehicle.FieldPuertas, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vehicle.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VehicleUpdateOne is the builder for updating a single Vehicle entity.
type VehicleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VehicleMutation
}

// SetPlaca sets the "placa" field.
func (_u *VehicleUpdateOne) SetPlaca(v string) *VehicleUpdateOne {
	_u.mutation.SetPlaca(v)
	return _u
}

// SetNillablePlaca sets the "placa" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillablePlaca(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetPlaca(*v)
	}
	return _u
}

// SetMarca sets the "marca" field.
func (_u *VehicleUpdateOne) SetMarca(v string) *VehicleUpdateOne {
	_u.mutation.SetMarca(v)
	return _u
}

// SetNillableMarca sets the "marca" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableMarca(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetMarca(*v)
	}
	return _u
}

// SetLinea sets the "linea" field.
func (_u *VehicleUpdateOne) SetLinea(v string) *VehicleUpdateOne {
	_u.mutation.SetLinea(v)
	return _u
}

// SetNillableLinea sets the "linea" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableLinea(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetLinea(*v)
	}
	return _u
}

// SetModelo sets the "modelo" field.
func (_u *VehicleUpdateOne) SetModelo(v string) *VehicleUpdateOne {
	_u.mutation.SetModelo(v)
	return _u
}

// SetNillableModelo sets the "modelo" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableModelo(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetModelo(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *VehicleUpdateOne) SetColor(v string) *VehicleUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableColor(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetNumeroMotor sets the "numero_motor" field.
func (_u *VehicleUpdateOne) SetNumeroMotor(v string) *VehicleUpdateOne {
	_u.mutation.SetNumeroMotor(v)
	return _u
}

// SetNillableNumeroMotor sets the "numero_motor" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableNumeroMotor(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetNumeroMotor(*v)
	}
	return _u
}

// SetNumeroChasis sets the "numero_chasis" field.
func (_u *VehicleUpdateOne) SetNumeroChasis(v string) *VehicleUpdateOne {
	_u.mutation.SetNumeroChasis(v)
	return _u
}

// SetNillableNumeroChasis sets the "numero_chasis" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableNumeroChasis(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetNumeroChasis(*v)
	}
	return _u
}

// SetNumeroSerie sets the "numero_serie" field.
func (_u *VehicleUpdateOne) SetNumeroSerie(v string) *VehicleUpdateOne {
	_u.mutation.SetNumeroSerie(v)
	return _u
}

// SetNillableNumeroSerie sets the "numero_serie" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableNumeroSerie(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetNumeroSerie(*v)
	}
	return _u
}

// SetVin sets the "vin" field.
func (_u *VehicleUpdateOne) SetVin(v string) *VehicleUpdateOne {
	_u.mutation.SetVin(v)
	return _u
}

// SetNillableVin sets the "vin" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableVin(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetVin(*v)
	}
	return _u
}

// SetCilindraje sets the "cilindraje" field.
func (_u *VehicleUpdateOne) SetCilindraje(v string) *VehicleUpdateOne {
	_u.mutation.SetCilindraje(v)
	return _u
}

// SetNillableCilindraje sets the "cilindraje" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableCilindraje(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetCilindraje(*v)
	}
	return _u
}

// SetPotenciaHp sets the "potencia_hp" field.
func (_u *VehicleUpdateOne) SetPotenciaHp(v string) *VehicleUpdateOne {
	_u.mutation.SetPotenciaHp(v)
	return _u
}

// SetNillablePotenciaHp sets the "potencia_hp" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillablePotenciaHp(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetPotenciaHp(*v)
	}
	return _u
}

// SetCapacidad sets the "capacidad" field.
func (_u *VehicleUpdateOne) SetCapacidad(v string) *VehicleUpdateOne {
	_u.mutation.SetCapacidad(v)
	return _u
}

// SetNillableCapacidad sets the "capacidad" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableCapacidad(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetCapacidad(*v)
	}
	return _u
}

// SetCarroceria sets the "carroceria" field.
func (_u *VehicleUpdateOne) SetCarroceria(v string) *VehicleUpdateOne {
	_u.mutation.SetCarroceria(v)
	return _u
}

// SetNillableCarroceria sets the "carroceria" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableCarroceria(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetCarroceria(*v)
	}
	return _u
}

// SetClaseVehiculo sets the "clase_vehiculo" field.
func (_u *VehicleUpdateOne) SetClaseVehiculo(v string) *VehicleUpdateOne {
	_u.mutation.SetClaseVehiculo(v)
	return _u
}

// SetNillableClaseVehiculo sets the "clase_vehiculo" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableClaseVehiculo(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetClaseVehiculo(*v)
	}
	return _u
}

// SetCombustible sets the "combustible" field.
func (_u *VehicleUpdateOne) SetCombustible(v string) *VehicleUpdateOne {
	_u.mutation.SetCombustible(v)
	return _u
}

// SetNillableCombustible sets the "combustible" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableCombustible(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetCombustible(*v)
	}
	return _u
}

// SetServicio sets the "servicio" field.
func (_u *VehicleUpdateOne) SetServicio(v string) *VehicleUpdateOne {
	_u.mutation.SetServicio(v)
	return _u
}

// SetNillableServicio sets the "servicio" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableServicio(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetServicio(*v)
	}
	return _u
}

// SetPuertas sets the "puertas" field.
func (_u *VehicleUpdateOne) SetPuertas(v string) *VehicleUpdateOne {
	_u.mutation.SetPuertas(v)
	return _u
}

// SetNillablePuertas sets the "puertas" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillablePuertas(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetPuertas(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VehicleUpdateOne) SetCreatedAt(v time.Time) *VehicleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableCreatedAt(v *time.Time) *VehicleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VehicleUpdateOne) SetUpdatedAt(v time.Time) *VehicleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdateOne) Mutation() *VehicleMutation {
	return _u.mutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdateOne) Where(ps ...predicate.Vehicle) *VehicleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VehicleUpdateOne) Select(field string, fields ...string) *VehicleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vehicle entity.
func (_u *VehicleUpdateOne) Save(ctx context.Context) (*Vehicle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdateOne) SaveX(ctx context.Context) *Vehicle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VehicleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VehicleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vehicle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VehicleUpdateOne) check() error {
	if v, ok := _u.mutation.Placa(); ok {
		if err := vehicle.PlacaValidator(v); err != nil {
			return &ValidationError{Name: "placa", err: fmt.Errorf(`ent: validator failed for field "Vehicle.placa": %w`, err)}
		}
	}
	return nil
}

func (_u *VehicleUpdateOne) sqlSave(ctx context.Context) (_node *Vehicle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vehicle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehicle.FieldID)
		for _, f := range fields {
			if !vehicle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vehicle.FieldID {
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
	if value, ok := _u.mutation.Placa(); ok {
		_spec.SetField(vehicle.FieldPlaca, field.TypeString, value)
	}
	if value, ok := _u.mutation.Marca(); ok {
		_spec.SetField(vehicle.FieldMarca, field.TypeString, value)
	}
	if value, ok := _u.mutation.Linea(); ok {
		_spec.SetField(vehicle.FieldLinea, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modelo(); ok {
		_spec.SetField(vehicle.FieldModelo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(vehicle.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroMotor(); ok {
		_spec.SetField(vehicle.FieldNumeroMotor, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroChasis(); ok {
		_spec.SetField(vehicle.FieldNumeroChasis, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroSerie(); ok {
		_spec.SetField(vehicle.FieldNumeroSerie, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vin(); ok {
		_spec.SetField(vehicle.FieldVin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cilindraje(); ok {
		_spec.SetField(vehicle.FieldCilindraje, field.TypeString, value)
	}
	if value, ok := _u.mutation.PotenciaHp(); ok {
		_spec.SetField(vehicle.FieldPotenciaHp, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capacidad(); ok {
		_spec.SetField(vehicle.FieldCapacidad, field.TypeString, value)
	}
	if value, ok := _u.mutation.Carroceria(); ok {
		_spec.SetField(vehicle.FieldCarroceria, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaseVehiculo(); ok {
		_spec.SetField(vehicle.FieldClaseVehiculo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Combustible(); ok {
		_spec.SetField(vehicle.FieldCombustible, field.TypeString, value)
	}
	if value, ok := _u.mutation.Servicio(); ok {
		_spec.SetField(vehicle.FieldServicio, field.TypeString, value)
	}
	if value, ok := _u.mutation.Puertas(); ok {
		_spec.SetField(vehicle.FieldPuertas, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vehicle.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Vehicle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
