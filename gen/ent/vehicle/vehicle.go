// Code generated by ent, DO NOT EDIT.

package vehicle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the vehicle type in the database.
	Label = "vehicle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlaca holds the string denoting the placa field in the database.
	FieldPlaca = "placa"
	// FieldMarca holds the string denoting the marca field in the database.
	FieldMarca = "marca"
	// FieldLinea holds the string denoting the linea field in the database.
	FieldLinea = "linea"
	// FieldModelo holds the string denoting the modelo field in the database.
	FieldModelo = "modelo"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldNumeroMotor holds the string denoting the numero_motor field in the database.
	FieldNumeroMotor = "numero_motor"
	// FieldNumeroChasis holds the string denoting the numero_chasis field in the database.
	FieldNumeroChasis = "numero_chasis"
	// FieldNumeroSerie holds the string denoting the numero_serie field in the database.
	FieldNumeroSerie = "numero_serie"
	// FieldVin holds the string denoting the vin field in the database.
	FieldVin = "vin"
	// FieldCilindraje holds the string denoting the cilindraje field in the database.
	FieldCilindraje = "cilindraje"
	// FieldPotenciaHp holds the string denoting the potencia_hp field in the database.
	FieldPotenciaHp = "potencia_hp"
	// FieldCapacidad holds the string denoting the capacidad field in the database.
	FieldCapacidad = "capacidad"
	// FieldCarroceria holds the string denoting the carroceria field in the database.
	FieldCarroceria = "carroceria"
	// FieldClaseVehiculo holds the string denoting the clase_vehiculo field in the database.
	FieldClaseVehiculo = "clase_vehiculo"
	// FieldCombustible holds the string denoting the combustible field in the database.
	FieldCombustible = "combustible"
	// FieldServicio holds the string denoting the servicio field in the database.
	FieldServicio = "servicio"
	// FieldPuertas holds the string denoting the puertas field in the database.
	FieldPuertas = "puertas"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the vehicle in the database.
	Table = "vehicles"
)

// Columns holds all SQL columns for vehicle fields.
var Columns = []string{
	FieldID,
	FieldPlaca,
	FieldMarca,
	FieldLinea,
	FieldModelo,
	FieldColor,
	FieldNumeroMotor,
	FieldNumeroChasis,
	FieldNumeroSerie,
	FieldVin,
	FieldCilindraje,
	FieldPotenciaHp,
	FieldCapacidad,
	FieldCarroceria,
	FieldClaseVehiculo,
	FieldCombustible,
	FieldServicio,
	FieldPuertas,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PlacaValidator is a validator for the "placa" field. It is called by the builders before save.
	PlacaValidator func(string) error
	// DefaultMarca holds the default value on creation for the "marca" field.
	DefaultMarca string
	// DefaultLinea holds the default value on creation for the "linea" field.
	DefaultLinea string
	// DefaultModelo holds the default value on creation for the "modelo" field.
	DefaultModelo string
	// DefaultColor holds the default value on creation for the "color" field.
	DefaultColor string
	// DefaultNumeroMotor holds the default value on creation for the "numero_motor" field.
	DefaultNumeroMotor string
	// DefaultNumeroChasis holds the default value on creation for the "numero_chasis" field.
	DefaultNumeroChasis string
	// DefaultNumeroSerie holds the default value on creation for the "numero_serie" field.
	DefaultNumeroSerie string
	// DefaultVin holds the default value on creation for the "vin" field.
	DefaultVin string
	// DefaultCilindraje holds the default value on creation for the "cilindraje" field.
	DefaultCilindraje string
	// DefaultPotenciaHp holds the default value on creation for the "potencia_hp" field.
	DefaultPotenciaHp string
	// DefaultCapacidad holds the default value on creation for the "capacidad" field.
	DefaultCapacidad string
	// DefaultCarroceria holds the default value on creation for the "carroceria" field.
	DefaultCarroceria string
	// DefaultClaseVehiculo holds the default value on creation for the "clase_vehiculo" field.
	DefaultClaseVehiculo string
	// DefaultCombustible holds the default value on creation for the "combustible" field.
	DefaultCombustible string
	// DefaultServicio holds the default value on creation for the "servicio" field.
	DefaultServicio string
	// DefaultPuertas holds the default value on creation for the "puertas" field.
	DefaultPuertas string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Vehicle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlaca orders the results by the placa field.
func ByPlaca(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaca, opts...).ToFunc()
}

// ByMarca orders the results by the marca field.
func ByMarca(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarca, opts...).ToFunc()
}

// ByLinea orders the results by the linea field.
func ByLinea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinea, opts...).ToFunc()
}

// ByModelo orders the results by the modelo field.
func ByModelo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelo, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByNumeroMotor orders the results by the numero_motor field.
func ByNumeroMotor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumeroMotor, opts...).ToFunc()
}

// ByNumeroChasis orders the results by the numero_chasis field.
func ByNumeroChasis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumeroChasis, opts...).ToFunc()
}

// ByNumeroSerie orders the results by the numero_serie field.
func ByNumeroSerie(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumeroSerie, opts...).ToFunc()
}

// ByVin orders the results by the vin field.
func ByVin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVin, opts...).ToFunc()
}

// ByCilindraje orders the results by the cilindraje field.
func ByCilindraje(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCilindraje, opts...).ToFunc()
}

// ByPotenciaHp orders the results by the potencia_hp field.
func ByPotenciaHp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPotenciaHp, opts...).ToFunc()
}

// ByCapacidad orders the results by the capacidad field.
func ByCapacidad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapacidad, opts...).ToFunc()
}

// ByCarroceria orders the results by the carroceria field.
func ByCarroceria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarroceria, opts...).ToFunc()
}

// ByClaseVehiculo orders the results by the clase_vehiculo field.
func ByClaseVehiculo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaseVehiculo, opts...).ToFunc()
}

// ByCombustible orders the results by the combustible field.
func ByCombustible(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCombustible, opts...).ToFunc()
}

// ByServicio orders the results by the servicio field.
func ByServicio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServicio, opts...).ToFunc()
}

// ByPuertas orders the results by the puertas field.
func ByPuertas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPuertas, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
