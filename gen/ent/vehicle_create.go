// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfmora/car2data/gen/ent/vehicle"
	"github.com/google/uuid"
)

// VehicleCreate is the builder for creating a Vehicle entity.
type VehicleCreate struct {
	config
	mutation *VehicleMutation
	hooks    []Hook
}

// SetPlaca sets the "placa" field.
func (_c *VehicleCreate) SetPlaca(v string) *VehicleCreate {
	_c.mutation.SetPlaca(v)
	return _c
}

// SetMarca sets the "marca" field.
func (_c *VehicleCreate) SetMarca(v string) *VehicleCreate {
	_c.mutation.SetMarca(v)
	return _c
}

// SetNillableMarca sets the "marca" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableMarca(v *string) *VehicleCreate {
	if v != nil {
		_c.SetMarca(*v)
	}
	return _c
}

// SetLinea sets the "linea" field.
func (_c *VehicleCreate) SetLinea(v string) *VehicleCreate {
	_c.mutation.SetLinea(v)
	return _c
}

// SetNillableLinea sets the "linea" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableLinea(v *string) *VehicleCreate {
	if v != nil {
		_c.SetLinea(*v)
	}
	return _c
}

// SetModelo sets the "modelo" field.
func (_c *VehicleCreate) SetModelo(v string) *VehicleCreate {
	_c.mutation.SetModelo(v)
	return _c
}

// SetNillableModelo sets the "modelo" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableModelo(v *string) *VehicleCreate {
	if v != nil {
		_c.SetModelo(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *VehicleCreate) SetColor(v string) *VehicleCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableColor(v *string) *VehicleCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetNumeroMotor sets the "numero_motor" field.
func (_c *VehicleCreate) SetNumeroMotor(v string) *VehicleCreate {
	_c.mutation.SetNumeroMotor(v)
	return _c
}

// SetNillableNumeroMotor sets the "numero_motor" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableNumeroMotor(v *string) *VehicleCreate {
	if v != nil {
		_c.SetNumeroMotor(*v)
	}
	return _c
}

// SetNumeroChasis sets the "numero_chasis" field.
func (_c *VehicleCreate) SetNumeroChasis(v string) *VehicleCreate {
	_c.mutation.SetNumeroChasis(v)
	return _c
}

// SetNillableNumeroChasis sets the "numero_chasis" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableNumeroChasis(v *string) *VehicleCreate {
	if v != nil {
		_c.SetNumeroChasis(*v)
	}
	return _c
}

// SetNumeroSerie sets the "numero_serie" field.
func (_c *VehicleCreate) SetNumeroSerie(v string) *VehicleCreate {
	_c.mutation.SetNumeroSerie(v)
	return _c
}

// SetNillableNumeroSerie sets the "numero_serie" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableNumeroSerie(v *string) *VehicleCreate {
	if v != nil {
		_c.SetNumeroSerie(*v)
	}
	return _c
}

// SetVin sets the "vin" field.
func (_c *VehicleCreate) SetVin(v string) *VehicleCreate {
	_c.mutation.SetVin(v)
	return _c
}

// SetNillableVin sets the "vin" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableVin(v *string) *VehicleCreate {
	if v != nil {
		_c.SetVin(*v)
	}
	return _c
}

// SetCilindraje sets the "cilindraje" field.
func (_c *VehicleCreate) SetCilindraje(v string) *VehicleCreate {
	_c.mutation.SetCilindraje(v)
	return _c
}

// SetNillableCilindraje sets the "cilindraje" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableCilindraje(v *string) *VehicleCreate {
	if v != nil {
		_c.SetCilindraje(*v)
	}
	return _c
}

// SetPotenciaHp sets the "potencia_hp" field.
func (_c *VehicleCreate) SetPotenciaHp(v string) *VehicleCreate {
	_c.mutation.SetPotenciaHp(v)
	return _c
}

// SetNillablePotenciaHp sets the "potencia_hp" field if the given value is not nil.
func (_c *VehicleCreate) SetNillablePotenciaHp(v *string) *VehicleCreate {
	if v != nil {
		_c.SetPotenciaHp(*v)
	}
	return _c
}

// SetCapacidad sets the "capacidad" field.
func (_c *VehicleCreate) SetCapacidad(v string) *VehicleCreate {
	_c.mutation.SetCapacidad(v)
	return _c
}

// SetNillableCapacidad sets the "capacidad" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableCapacidad(v *string) *VehicleCreate {
	if v != nil {
		_c.SetCapacidad(*v)
	}
	return _c
}

// SetCarroceria sets the "carroceria" field.
func (_c *VehicleCreate) SetCarroceria(v string) *VehicleCreate {
	_c.mutation.SetCarroceria(v)
	return _c
}

// SetNillableCarroceria sets the "carroceria" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableCarroceria(v *string) *VehicleCreate {
	if v != nil {
		_c.SetCarroceria(*v)
	}
	return _c
}

// SetClaseVehiculo sets the "clase_vehiculo" field.
func (_c *VehicleCreate) SetClaseVehiculo(v string) *VehicleCreate {
	_c.mutation.SetClaseVehiculo(v)
	return _c
}

// SetNillableClaseVehiculo sets the "clase_vehiculo" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableClaseVehiculo(v *string) *VehicleCreate {
	if v != nil {
		_c.SetClaseVehiculo(*v)
	}
	return _c
}

// SetCombustible sets the "combustible" field.
func (_c *VehicleCreate) SetCombustible(v string) *VehicleCreate {
	_c.mutation.SetCombustible(v)
	return _c
}

// SetNillableCombustible sets the "combustible" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableCombustible(v *string) *VehicleCreate {
	if v != nil {
		_c.SetCombustible(*v)
	}
	return _c
}

// SetServicio sets the "servicio" field.
func (_c *VehicleCreate) SetServicio(v string) *VehicleCreate {
	_c.mutation.SetServicio(v)
	return _c
}

// SetNillableServicio sets the "servicio" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableServicio(v *string) *VehicleCreate {
	if v != nil {
		_c.SetServicio(*v)
	}
	return _c
}

// SetPuertas sets the "puertas" field.
func (_c *VehicleCreate) SetPuertas(v string) *VehicleCreate {
	_c.mutation.SetPuertas(v)
	return _c
}

// SetNillablePuertas sets the "puertas" field if the given value is not nil.
func (_c *VehicleCreate) SetNillablePuertas(v *string) *VehicleCreate {
	if v != nil {
		_c.SetPuertas(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VehicleCreate) SetCreatedAt(v time.Time) *VehicleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableCreatedAt(v *time.Time) *VehicleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VehicleCreate) SetUpdatedAt(v time.Time) *VehicleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableUpdatedAt(v *time.Time) *VehicleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VehicleCreate) SetID(v uuid.UUID) *VehicleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableID(v *uuid.UUID) *VehicleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VehicleMutation object of the builder.
func (_c *VehicleCreate) Mutation() *VehicleMutation {
	return _c.mutation
}

// Save creates the Vehicle in the database.
func (_c *VehicleCreate) Save(ctx context.Context) (*Vehicle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VehicleCreate) SaveX(ctx context.Context) *Vehicle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VehicleCreate) defaults() {
	if _, ok := _c.mutation.Marca(); !ok {
		v := vehicle.DefaultMarca
		_c.mutation.SetMarca(v)
	}
	if _, ok := _c.mutation.Linea(); !ok {
		v := vehicle.DefaultLinea
		_c.mutation.SetLinea(v)
	}
	if _, ok := _c.mutation.Modelo(); !ok {
		v := vehicle.DefaultModelo
		_c.mutation.SetModelo(v)
	}
	if _, ok := _c.mutation.Color(); !ok {
		v := vehicle.DefaultColor
		_c.mutation.SetColor(v)
	}
	if _, ok := _c.mutation.NumeroMotor(); !ok {
		v := vehicle.DefaultNumeroMotor
		_c.mutation.SetNumeroMotor(v)
	}
	if _, ok := _c.mutation.NumeroChasis(); !ok {
		v := vehicle.DefaultNumeroChasis
		_c.mutation.SetNumeroChasis(v)
	}
	if _, ok := _c.mutation.NumeroSerie(); !ok {
		v := vehicle.DefaultNumeroSerie
		_c.mutation.SetNumeroSerie(v)
	}
	if _, ok := _c.mutation.Vin(); !ok {
		v := vehicle.DefaultVin
		_c.mutation.SetVin(v)
	}
	if _, ok := _c.mutation.Cilindraje(); !ok {
		v := vehicle.DefaultCilindraje
		_c.mutation.SetCilindraje(v)
	}
	if _, ok := _c.mutation.PotenciaHp(); !ok {
		v := vehicle.DefaultPotenciaHp
		_c.mutation.SetPotenciaHp(v)
	}
	if _, ok := _c.mutation.Capacidad(); !ok {
		v := vehicle.DefaultCapacidad
		_c.mutation.SetCapacidad(v)
	}
	if _, ok := _c.mutation.Carroceria(); !ok {
		v := vehicle.DefaultCarroceria
		_c.mutation.SetCarroceria(v)
	}
	if _, ok := _c.mutation.ClaseVehiculo(); !ok {
		v := vehicle.DefaultClaseVehiculo
		_c.mutation.SetClaseVehiculo(v)
	}
	if _, ok := _c.mutation.Combustible(); !ok {
		v := vehicle.DefaultCombustible
		_c.mutation.SetCombustible(v)
	}
	if _, ok := _c.mutation.Servicio(); !ok {
		v := vehicle.DefaultServicio
		_c.mutation.SetServicio(v)
	}
	if _, ok := _c.mutation.Puertas(); !ok {
		v := vehicle.DefaultPuertas
		_c.mutation.SetPuertas(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vehicle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vehicle.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vehicle.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VehicleCreate) check() error {
	if _, ok := _c.mutation.Placa(); !ok {
		return &ValidationError{Name: "placa", err: errors.New(`ent: missing required field "Vehicle.placa"`)}
	}
	if v, ok := _c.mutation.Placa(); ok {
		if err := vehicle.PlacaValidator(v); err != nil {
			return &ValidationError{Name: "placa", err: fmt.Errorf(`ent: validator failed for field "Vehicle.placa": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Marca(); !ok {
		return &ValidationError{Name: "marca", err: errors.New(`ent: missing required field "Vehicle.marca"`)}
	}
	if _, ok := _c.mutation.Linea(); !ok {
		return &ValidationError{Name: "linea", err: errors.New(`ent: missing required field "Vehicle.linea"`)}
	}
	if _, ok := _c.mutation.Modelo(); !ok {
		return &ValidationError{Name: "modelo", err: errors.New(`ent: missing required field "Vehicle.modelo"`)}
	}
	if _, ok := _c.mutation.Color(); !ok {
		return &ValidationError{Name: "color", err: errors.New(`ent: missing required field "Vehicle.color"`)}
	}
	if _, ok := _c.mutation.NumeroMotor(); !ok {
		return &ValidationError{Name: "numero_motor", err: errors.New(`ent: missing required field "Vehicle.numero_motor"`)}
	}
	if _, ok := _c.mutation.NumeroChasis(); !ok {
		return &ValidationError{Name: "numero_chasis", err: errors.New(`ent: missing required field "Vehicle.numero_chasis"`)}
	}
	if _, ok := _c.mutation.NumeroSerie(); !ok {
		return &ValidationError{Name: "numero_serie", err: errors.New(`ent: missing required field "Vehicle.numero_serie"`)}
	}
	if _, ok := _c.mutation.Vin(); !ok {
		return &ValidationError{Name: "vin", err: errors.New(`ent: missing required field "Vehicle.vin"`)}
	}
	if _, ok := _c.mutation.Cilindraje(); !ok {
		return &ValidationError{Name: "cilindraje", err: errors.New(`ent: missing required field "Vehicle.cilindraje"`)}
	}
	if _, ok := _c.mutation.PotenciaHp(); !ok {
		return &ValidationError{Name: "potencia_hp", err: errors.New(`ent: missing required field "Vehicle.potencia_hp"`)}
	}
	if _, ok := _c.mutation.Capacidad(); !ok {
		return &ValidationError{Name: "capacidad", err: errors.New(`ent: missing required field "Vehicle.capacidad"`)}
	}
	if _, ok := _c.mutation.Carroceria(); !ok {
		return &ValidationError{Name: "carroceria", err: errors.New(`ent: missing required field "Vehicle.carroceria"`)}
	}
	if _, ok := _c.mutation.ClaseVehiculo(); !ok {
		return &ValidationError{Name: "clase_vehiculo", err: errors.New(`ent: missing required field "Vehicle.clase_vehiculo"`)}
	}
	if _, ok := _c.mutation.Combustible(); !ok {
		return &ValidationError{Name: "combustible", err: errors.New(`ent: missing required field "Vehicle.combustible"`)}
	}
	if _, ok := _c.mutation.Servicio(); !ok {
		return &ValidationError{Name: "servicio", err: errors.New(`ent: missing required field "Vehicle.servicio"`)}
	}
	if _, ok := _c.mutation.Puertas(); !ok {
		return &ValidationError{Name: "puertas", err: errors.New(`ent: missing required field "Vehicle.puertas"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vehicle.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Vehicle.updated_at"`)}
	}
	return nil
}

func (_c *VehicleCreate) sqlSave(ctx context.Context) (*Vehicle, error) {
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

func (_c *VehicleCreate) createSpec() (*Vehicle, *sqlgraph.CreateSpec) {
	var (
		_node = &Vehicle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vehicle.Table, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Placa(); ok {
		_spec.SetField(vehicle.FieldPlaca, field.TypeString, value)
		_node.Placa = value
	}
	if value, ok := _c.mutation.Marca(); ok {
		_spec.SetField(vehicle.FieldMarca, field.TypeString, value)
		_node.Marca = value
	}
	if value, ok := _c.mutation.Linea(); ok {
		_spec.SetField(vehicle.FieldLinea, field.TypeString, value)
		_node.Linea = value
	}
	if value, ok := _c.mutation.Modelo(); ok {
		_spec.SetField(vehicle.FieldModelo, field.TypeString, value)
		_node.Modelo = value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(vehicle.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := _c.mutation.NumeroMotor(); ok {
		_spec.SetField(vehicle.FieldNumeroMotor, field.TypeString, value)
		_node.NumeroMotor = value
	}
	if value, ok := _c.mutation.NumeroChasis(); ok {
		_spec.SetField(vehicle.FieldNumeroChasis, field.TypeString, value)
		_node.NumeroChasis = value
	}
	if value, ok := _c.mutation.NumeroSerie(); ok {
		_spec.SetField(vehicle.FieldNumeroSerie, field.TypeString, value)
		_node.NumeroSerie = value
	}
	if value, ok := _c.mutation.Vin(); ok {
		_spec.SetField(vehicle.FieldVin, field.TypeString, value)
		_node.Vin = value
	}
	if value, ok := _c.mutation.Cilindraje(); ok {
		_spec.SetField(vehicle.FieldCilindraje, field.TypeString, value)
		_node.Cilindraje = value
	}
	if value, ok := _c.mutation.PotenciaHp(); ok {
		_spec.SetField(vehicle.FieldPotenciaHp, field.TypeString, value)
		_node.PotenciaHp = value
	}
	if value, ok := _c.mutation.Capacidad(); ok {
		_spec.SetField(vehicle.FieldCapacidad, field.TypeString, value)
		_node.Capacidad = value
	}
	if value, ok := _c.mutation.Carroceria(); ok {
		_spec.SetField(vehicle.FieldCarroceria, field.TypeString, value)
		_node.Carroceria = value
	}
	if value, ok := _c.mutation.ClaseVehiculo(); ok {
		_spec.SetField(vehicle.FieldClaseVehiculo, field.TypeString, value)
		_node.ClaseVehiculo = value
	}
	if value, ok := _c.mutation.Combustible(); ok {
		_spec.SetField(vehicle.FieldCombustible, field.TypeString, value)
		_node.Combustible = value
	}
	if value, ok := _c.mutation.Servicio(); ok {
		_spec.SetField(vehicle.FieldServicio, field.TypeString, value)
		_node.Servicio = value
	}
	if value, ok := _c.mutation.Puertas(); ok {
		_spec.SetField(vehicle.FieldPuertas, field.TypeString, value)
		_node.Puertas = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vehicle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// VehicleCreateBulk is the builder for creating many Vehicle entities in bulk.
type VehicleCreateBulk struct {
	config
	err      error
	builders []*VehicleCreate
}

// Save creates the Vehicle entities in the database.
func (_c *VehicleCreateBulk) Save(ctx context.Context) ([]*Vehicle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vehicle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VehicleMutation)
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
func (_c *VehicleCreateBulk) SaveX(ctx context.Context) []*Vehicle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
