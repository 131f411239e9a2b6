// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dfmora/car2data/gen/ent/vehicle"
	"github.com/google/uuid"
)

// Vehicle is the model entity for the Vehicle schema.
type Vehicle struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Placa holds the value of the "placa" field.
	Placa string `json:"placa,omitempty"`
	// Marca holds the value of the "marca" field.
	Marca string `json:"marca,omitempty"`
	// Linea holds the value of the "linea" field.
	Linea string `json:"linea,omitempty"`
	// Modelo holds the value of the "modelo" field.
	Modelo string `json:"modelo,omitempty"`
	// Color holds the value of the "color" field.
	Color string `json:"color,omitempty"`
	// NumeroMotor holds the value of the "numero_motor" field.
	NumeroMotor string `json:"numero_motor,omitempty"`
	// NumeroChasis holds the value of the "numero_chasis" field.
	NumeroChasis string `json:"numero_chasis,omitempty"`
	// NumeroSerie holds the value of the "numero_serie" field.
	NumeroSerie string `json:"numero_serie,omitempty"`
	// Vin holds the value of the "vin" field.
	Vin string `json:"vin,omitempty"`
	// Cilindraje holds the value of the "cilindraje" field.
	Cilindraje string `json:"cilindraje,omitempty"`
	// PotenciaHp holds the value of the "potencia_hp" field.
	PotenciaHp string `json:"potencia_hp,omitempty"`
	// Capacidad holds the value of the "capacidad" field.
	Capacidad string `json:"capacidad,omitempty"`
	// Carroceria holds the value of the "carroceria" field.
	Carroceria string `json:"carroceria,omitempty"`
	// ClaseVehiculo holds the value of the "clase_vehiculo" field.
	ClaseVehiculo string `json:"clase_vehiculo,omitempty"`
	// Combustible holds the value of the "combustible" field.
	Combustible string `json:"combustible,omitempty"`
	// Servicio holds the value of the "servicio" field.
	Servicio string `json:"servicio,omitempty"`
	// Puertas holds the value of the "puertas" field.
	Puertas string `json:"puertas,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Vehicle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vehicle.FieldPlaca, vehicle.FieldMarca, vehicle.FieldLinea, vehicle.FieldModelo, vehicle.FieldColor, vehicle.FieldNumeroMotor, vehicle.FieldNumeroChasis, vehicle.FieldNumeroSerie, vehicle.FieldVin, vehicle.FieldCilindraje, vehicle.FieldPotenciaHp, vehicle.FieldCapacidad, vehicle.FieldCarroceria, vehicle.FieldClaseVehiculo, vehicle.FieldCombustible, vehicle.FieldServicio, vehicle.FieldPuertas:
			values[i] = new(sql.NullString)
		case vehicle.FieldCreatedAt, vehicle.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case vehicle.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Vehicle fields.
func (_m *Vehicle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vehicle.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vehicle.FieldPlaca:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field placa", values[i])
			} else if value.Valid {
				_m.Placa = value.String
			}
		case vehicle.FieldMarca:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field marca", values[i])
			} else if value.Valid {
				_m.Marca = value.String
			}
		case vehicle.FieldLinea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linea", values[i])
			} else if value.Valid {
				_m.Linea = value.String
			}
		case vehicle.FieldModelo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modelo", values[i])
			} else if value.Valid {
				_m.Modelo = value.String
			}
		case vehicle.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = value.String
			}
		case vehicle.FieldNumeroMotor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field numero_motor", values[i])
			} else if value.Valid {
				_m.NumeroMotor = value.String
			}
		case vehicle.FieldNumeroChasis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field numero_chasis", values[i])
			} else if value.Valid {
				_m.NumeroChasis = value.String
			}
		case vehicle.FieldNumeroSerie:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field numero_serie", values[i])
			} else if value.Valid {
				_m.NumeroSerie = value.String
			}
		case vehicle.FieldVin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vin", values[i])
			} else if value.Valid {
				_m.Vin = value.String
			}
		case vehicle.FieldCilindraje:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cilindraje", values[i])
			} else if value.Valid {
				_m.Cilindraje = value.String
			}
		case vehicle.FieldPotenciaHp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field potencia_hp", values[i])
			} else if value.Valid {
				_m.PotenciaHp = value.String
			}
		case vehicle.FieldCapacidad:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capacidad", values[i])
			} else if value.Valid {
				_m.Capacidad = value.String
			}
		case vehicle.FieldCarroceria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field carroceria", values[i])
			} else if value.Valid {
				_m.Carroceria = value.String
			}
		case vehicle.FieldClaseVehiculo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clase_vehiculo", values[i])
			} else if value.Valid {
				_m.ClaseVehiculo = value.String
			}
		case vehicle.FieldCombustible:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field combustible", values[i])
			} else if value.Valid {
				_m.Combustible = value.String
			}
		case vehicle.FieldServicio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field servicio", values[i])
			} else if value.Valid {
				_m.Servicio = value.String
			}
		case vehicle.FieldPuertas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field puertas", values[i])
			} else if value.Valid {
				_m.Puertas = value.String
			}
		case vehicle.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case vehicle.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Vehicle.
// This includes values selected through modifiers, order, etc.
func (_m *Vehicle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Vehicle.
// Note that you need to call Vehicle.Unwrap() before calling this method if this Vehicle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Vehicle) Update() *VehicleUpdateOne {
	return NewVehicleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Vehicle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Vehicle) Unwrap() *Vehicle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Vehicle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Vehicle) String() string {
	var builder strings.Builder
	builder.WriteString("Vehicle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("placa=")
	builder.WriteString(_m.Placa)
	builder.WriteString(", ")
	builder.WriteString("marca=")
	builder.WriteString(_m.Marca)
	builder.WriteString(", ")
	builder.WriteString("linea=")
	builder.WriteString(_m.Linea)
	builder.WriteString(", ")
	builder.WriteString("modelo=")
	builder.WriteString(_m.Modelo)
	builder.WriteString(", ")
	builder.WriteString("color=")
	builder.WriteString(_m.Color)
	builder.WriteString(", ")
	builder.WriteString("numero_motor=")
	builder.WriteString(_m.NumeroMotor)
	builder.WriteString(", ")
	builder.WriteString("numero_chasis=")
	builder.WriteString(_m.NumeroChasis)
	builder.WriteString(", ")
	builder.WriteString("numero_serie=")
	builder.WriteString(_m.NumeroSerie)
	builder.WriteString(", ")
	builder.WriteString("vin=")
	builder.WriteString(_m.Vin)
	builder.WriteString(", ")
	builder.WriteString("cilindraje=")
	builder.WriteString(_m.Cilindraje)
	builder.WriteString(", ")
	builder.WriteString("potencia_hp=")
	builder.WriteString(_m.PotenciaHp)
	builder.WriteString(", ")
	builder.WriteString("capacidad=")
	builder.WriteString(_m.Capacidad)
	builder.WriteString(", ")
	builder.WriteString("carroceria=")
	builder.WriteString(_m.Carroceria)
	builder.WriteString(", ")
	builder.WriteString("clase_vehiculo=")
	builder.WriteString(_m.ClaseVehiculo)
	builder.WriteString(", ")
	builder.WriteString("combustible=")
	builder.WriteString(_m.Combustible)
	builder.WriteString(", ")
	builder.WriteString("servicio=")
	builder.WriteString(_m.Servicio)
	builder.WriteString(", ")
	builder.WriteString("puertas=")
	builder.WriteString(_m.Puertas)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Vehicles is a parsable slice of Vehicle.
type Vehicles []*Vehicle
