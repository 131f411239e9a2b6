// Code generated by ent, DO NOT EDIT.

package vehicle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dfmora/car2data/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldID, id))
}

// Placa applies equality check predicate on the "placa" field. It's identical to PlacaEQ.
func Placa(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPlaca, v))
}

// Marca applies equality check predicate on the "marca" field. It's identical to MarcaEQ.
func Marca(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMarca, v))
}

// Linea applies equality check predicate on the "linea" field. It's identical to LineaEQ.
func Linea(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldLinea, v))
}

// Modelo applies equality check predicate on the "modelo" field. It's identical to ModeloEQ.
func Modelo(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldModelo, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldColor, v))
}

// NumeroMotor applies equality check predicate on the "numero_motor" field. It's identical to NumeroMotorEQ.
func NumeroMotor(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldNumeroMotor, v))
}

// NumeroChasis applies equality check predicate on the "numero_chasis" field. It's identical to NumeroChasisEQ.
func NumeroChasis(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldNumeroChasis, v))
}

// NumeroSerie applies equality check predicate on the "numero_serie" field. It's identical to NumeroSerieEQ.
func NumeroSerie(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldNumeroSerie, v))
}

// Vin applies equality check predicate on the "vin" field. It's identical to VinEQ.
func Vin(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldVin, v))
}

// Cilindraje applies equality check predicate on the "cilindraje" field. It's identical to CilindrajeEQ.
func Cilindraje(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCilindraje, v))
}

// PotenciaHp applies equality check predicate on the "potencia_hp" field. It's identical to PotenciaHpEQ.
func PotenciaHp(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPotenciaHp, v))
}

// Capacidad applies equality check predicate on the "capacidad" field. It's identical to CapacidadEQ.
func Capacidad(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCapacidad, v))
}

// Carroceria applies equality check predicate on the "carroceria" field. It's identical to CarroceriaEQ.
func Carroceria(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCarroceria, v))
}

// ClaseVehiculo applies equality check predicate on the "clase_vehiculo" field. It's identical to ClaseVehiculoEQ.
func ClaseVehiculo(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldClaseVehiculo, v))
}

// Combustible applies equality check predicate on the "combustible" field. It's identical to CombustibleEQ.
func Combustible(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCombustible, v))
}

// Servicio applies equality check predicate on the "servicio" field. It's identical to ServicioEQ.
func Servicio(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldServicio, v))
}

// Puertas applies equality check predicate on the "puertas" field. It's identical to PuertasEQ.
func Puertas(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPuertas, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldUpdatedAt, v))
}

// PlacaEQ applies the EQ predicate on the "placa" field.
func PlacaEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPlaca, v))
}

// PlacaNEQ applies the NEQ predicate on the "placa" field.
func PlacaNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldPlaca, v))
}

// PlacaIn applies the In predicate on the "placa" field.
func PlacaIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldPlaca, vs...))
}

// PlacaNotIn applies the NotIn predicate on the "placa" field.
func PlacaNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldPlaca, vs...))
}

// PlacaGT applies the GT predicate on the "placa" field.
func PlacaGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldPlaca, v))
}

// PlacaGTE applies the GTE predicate on the "placa" field.
func PlacaGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldPlaca, v))
}

// PlacaLT applies the LT predicate on the "placa" field.
func PlacaLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldPlaca, v))
}

// PlacaLTE applies the LTE predicate on the "placa" field.
func PlacaLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldPlaca, v))
}

// PlacaContains applies the Contains predicate on the "placa" field.
func PlacaContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldPlaca, v))
}

// PlacaHasPrefix applies the HasPrefix predicate on the "placa" field.
func PlacaHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldPlaca, v))
}

// PlacaHasSuffix applies the HasSuffix predicate on the "placa" field.
func PlacaHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldPlaca, v))
}

// PlacaEqualFold applies the EqualFold predicate on the "placa" field.
func PlacaEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldPlaca, v))
}

// PlacaContainsFold applies the ContainsFold predicate on the "placa" field.
func PlacaContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldPlaca, v))
}

// MarcaEQ applies the EQ predicate on the "marca" field.
func MarcaEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMarca, v))
}

// MarcaNEQ applies the NEQ predicate on the "marca" field.
func MarcaNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldMarca, v))
}

// MarcaIn applies the In predicate on the "marca" field.
func MarcaIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldMarca, vs...))
}

// MarcaNotIn applies the NotIn predicate on the "marca" field.
func MarcaNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldMarca, vs...))
}

// MarcaGT applies the GT predicate on the "marca" field.
func MarcaGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldMarca, v))
}

// MarcaGTE applies the GTE predicate on the "marca" field.
func MarcaGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldMarca, v))
}

// MarcaLT applies the LT predicate on the "marca" field.
func MarcaLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldMarca, v))
}

// MarcaLTE applies the LTE predicate on the "marca" field.
func MarcaLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldMarca, v))
}

// MarcaContains applies the Contains predicate on the "marca" field.
func MarcaContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldMarca, v))
}

// MarcaHasPrefix applies the HasPrefix predicate on the "marca" field.
func MarcaHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldMarca, v))
}

// MarcaHasSuffix applies the HasSuffix predicate on the "marca" field.
func MarcaHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldMarca, v))
}

// MarcaEqualFold applies the EqualFold predicate on the "marca" field.
func MarcaEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldMarca, v))
}

// MarcaContainsFold applies the ContainsFold predicate on the "marca" field.
func MarcaContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldMarca, v))
}

// LineaEQ applies the EQ predicate on the "linea" field.
func LineaEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldLinea, v))
}

// LineaNEQ applies the NEQ predicate on the "linea" field.
func LineaNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldLinea, v))
}

// LineaIn applies the In predicate on the "linea" field.
func LineaIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldLinea, vs...))
}

// LineaNotIn applies the NotIn predicate on the "linea" field.
func LineaNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldLinea, vs...))
}

// LineaGT applies the GT predicate on the "linea" field.
func LineaGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldLinea, v))
}

// LineaGTE applies the GTE predicate on the "linea" field.
func LineaGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldLinea, v))
}

// LineaLT applies the LT predicate on the "linea" field.
func LineaLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldLinea, v))
}

// LineaLTE applies the LTE predicate on the "linea" field.
func LineaLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldLinea, v))
}

// LineaContains applies the Contains predicate on the "linea" field.
func LineaContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldLinea, v))
}

// LineaHasPrefix applies the HasPrefix predicate on the "linea" field.
func LineaHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldLinea, v))
}

// LineaHasSuffix applies the HasSuffix predicate on the "linea" field.
func LineaHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldLinea, v))
}

// LineaEqualFold applies the EqualFold predicate on the "linea" field.
func LineaEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldLinea, v))
}

// LineaContainsFold applies the ContainsFold predicate on the "linea" field.
func LineaContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldLinea, v))
}

// ModeloEQ applies the EQ predicate on the "modelo" field.
func ModeloEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldModelo, v))
}

// ModeloNEQ applies the NEQ predicate on the "modelo" field.
func ModeloNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldModelo, v))
}

// ModeloIn applies the In predicate on the "modelo" field.
func ModeloIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldModelo, vs...))
}

// ModeloNotIn applies the NotIn predicate on the "modelo" field.
func ModeloNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldModelo, vs...))
}

// ModeloGT applies the GT predicate on the "modelo" field.
func ModeloGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldModelo, v))
}

// ModeloGTE applies the GTE predicate on the "modelo" field.
func ModeloGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldModelo, v))
}

// ModeloLT applies the LT predicate on the "modelo" field.
func ModeloLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldModelo, v))
}

// ModeloLTE applies the LTE predicate on the "modelo" field.
func ModeloLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldModelo, v))
}

// ModeloContains applies the Contains predicate on the "modelo" field.
func ModeloContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldModelo, v))
}

// ModeloHasPrefix applies the HasPrefix predicate on the "modelo" field.
func ModeloHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldModelo, v))
}

// ModeloHasSuffix applies the HasSuffix predicate on the "modelo" field.
func ModeloHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldModelo, v))
}

// ModeloEqualFold applies the EqualFold predicate on the "modelo" field.
func ModeloEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldModelo, v))
}

// ModeloContainsFold applies the ContainsFold predicate on the "modelo" field.
func ModeloContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldModelo, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldColor, v))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldColor, v))
}

// NumeroMotorEQ applies the EQ predicate on the "numero_motor" field.
func NumeroMotorEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldNumeroMotor, v))
}

// NumeroMotorNEQ applies the NEQ predicate on the "numero_motor" field.
func NumeroMotorNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldNumeroMotor, v))
}

// NumeroMotorIn applies the In predicate on the "numero_motor" field.
func NumeroMotorIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldNumeroMotor, vs...))
}

// NumeroMotorNotIn applies the NotIn predicate on the "numero_motor" field.
func NumeroMotorNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldNumeroMotor, vs...))
}

// NumeroMotorGT applies the GT predicate on the "numero_motor" field.
func NumeroMotorGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldNumeroMotor, v))
}

// NumeroMotorGTE applies the GTE predicate on the "numero_motor" field.
func NumeroMotorGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldNumeroMotor, v))
}

// NumeroMotorLT applies the LT predicate on the "numero_motor" field.
func NumeroMotorLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldNumeroMotor, v))
}

// NumeroMotorLTE applies the LTE predicate on the "numero_motor" field.
func NumeroMotorLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldNumeroMotor, v))
}

// NumeroMotorContains applies the Contains predicate on the "numero_motor" field.
func NumeroMotorContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldNumeroMotor, v))
}

// NumeroMotorHasPrefix applies the HasPrefix predicate on the "numero_motor" field.
func NumeroMotorHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldNumeroMotor, v))
}

// NumeroMotorHasSuffix applies the HasSuffix predicate on the "numero_motor" field.
func NumeroMotorHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldNumeroMotor, v))
}

// NumeroMotorEqualFold applies the EqualFold predicate on the "numero_motor" field.
func NumeroMotorEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldNumeroMotor, v))
}

// NumeroMotorContainsFold applies the ContainsFold predicate on the "numero_motor" field.
func NumeroMotorContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldNumeroMotor, v))
}

// NumeroChasisEQ applies the EQ predicate on the "numero_chasis" field.
func NumeroChasisEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldNumeroChasis, v))
}

// NumeroChasisNEQ applies the NEQ predicate on the "numero_chasis" field.
func NumeroChasisNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldNumeroChasis, v))
}

// NumeroChasisIn applies the In predicate on the "numero_chasis" field.
func NumeroChasisIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldNumeroChasis, vs...))
}

// NumeroChasisNotIn applies the NotIn predicate on the "numero_chasis" field.
func NumeroChasisNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldNumeroChasis, vs...))
}

// NumeroChasisGT applies the GT predicate on the "numero_chasis" field.
func NumeroChasisGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldNumeroChasis, v))
}

// NumeroChasisGTE applies the GTE predicate on the "numero_chasis" field.
func NumeroChasisGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldNumeroChasis, v))
}

// NumeroChasisLT applies the LT predicate on the "numero_chasis" field.
func NumeroChasisLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldNumeroChasis, v))
}

// NumeroChasisLTE applies the LTE predicate on the "numero_chasis" field.
func NumeroChasisLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldNumeroChasis, v))
}

// NumeroChasisContains applies the Contains predicate on the "numero_chasis" field.
func NumeroChasisContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldNumeroChasis, v))
}

// NumeroChasisHasPrefix applies the HasPrefix predicate on the "numero_chasis" field.
func NumeroChasisHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldNumeroChasis, v))
}

// NumeroChasisHasSuffix applies the HasSuffix predicate on the "numero_chasis" field.
func NumeroChasisHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldNumeroChasis, v))
}

// NumeroChasisEqualFold applies the EqualFold predicate on the "numero_chasis" field.
func NumeroChasisEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldNumeroChasis, v))
}

// NumeroChasisContainsFold applies the ContainsFold predicate on the "numero_chasis" field.
func NumeroChasisContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldNumeroChasis, v))
}

// NumeroSerieEQ applies the EQ predicate on the "numero_serie" field.
func NumeroSerieEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldNumeroSerie, v))
}

// NumeroSerieNEQ applies the NEQ predicate on the "numero_serie" field.
func NumeroSerieNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldNumeroSerie, v))
}

// NumeroSerieIn applies the In predicate on the "numero_serie" field.
func NumeroSerieIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldNumeroSerie, vs...))
}

// NumeroSerieNotIn applies the NotIn predicate on the "numero_serie" field.
func NumeroSerieNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldNumeroSerie, vs...))
}

// NumeroSerieGT applies the GT predicate on the "numero_serie" field.
func NumeroSerieGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldNumeroSerie, v))
}

// NumeroSerieGTE applies the GTE predicate on the "numero_serie" field.
func NumeroSerieGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldNumeroSerie, v))
}

// NumeroSerieLT applies the LT predicate on the "numero_serie" field.
func NumeroSerieLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldNumeroSerie, v))
}

// NumeroSerieLTE applies the LTE predicate on the "numero_serie" field.
func NumeroSerieLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldNumeroSerie, v))
}

// NumeroSerieContains applies the Contains predicate on the "numero_serie" field.
func NumeroSerieContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldNumeroSerie, v))
}

// NumeroSerieHasPrefix applies the HasPrefix predicate on the "numero_serie" field.
func NumeroSerieHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldNumeroSerie, v))
}

// NumeroSerieHasSuffix applies the HasSuffix predicate on the "numero_serie" field.
func NumeroSerieHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldNumeroSerie, v))
}

// NumeroSerieEqualFold applies the EqualFold predicate on the "numero_serie" field.
func NumeroSerieEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldNumeroSerie, v))
}

// NumeroSerieContainsFold applies the ContainsFold predicate on the "numero_serie" field.
func NumeroSerieContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldNumeroSerie, v))
}

// VinEQ applies the EQ predicate on the "vin" field.
func VinEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldVin, v))
}

// VinNEQ applies the NEQ predicate on the "vin" field.
func VinNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldVin, v))
}

// VinIn applies the In predicate on the "vin" field.
func VinIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldVin, vs...))
}

// VinNotIn applies the NotIn predicate on the "vin" field.
func VinNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldVin, vs...))
}

// VinGT applies the GT predicate on the "vin" field.
func VinGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldVin, v))
}

// VinGTE applies the GTE predicate on the "vin" field.
func VinGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldVin, v))
}

// VinLT applies the LT predicate on the "vin" field.
func VinLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldVin, v))
}

// VinLTE applies the LTE predicate on the "vin" field.
func VinLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldVin, v))
}

// VinContains applies the Contains predicate on the "vin" field.
func VinContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldVin, v))
}

// VinHasPrefix applies the HasPrefix predicate on the "vin" field.
func VinHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldVin, v))
}

// VinHasSuffix applies the HasSuffix predicate on the "vin" field.
func VinHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldVin, v))
}

// VinEqualFold applies the EqualFold predicate on the "vin" field.
func VinEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldVin, v))
}

// VinContainsFold applies the ContainsFold predicate on the "vin" field.
func VinContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldVin, v))
}

// CilindrajeEQ applies the EQ predicate on the "cilindraje" field.
func CilindrajeEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCilindraje, v))
}

// CilindrajeNEQ applies the NEQ predicate on the "cilindraje" field.
func CilindrajeNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCilindraje, v))
}

// CilindrajeIn applies the In predicate on the "cilindraje" field.
func CilindrajeIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCilindraje, vs...))
}

// CilindrajeNotIn applies the NotIn predicate on the "cilindraje" field.
func CilindrajeNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCilindraje, vs...))
}

// CilindrajeGT applies the GT predicate on the "cilindraje" field.
func CilindrajeGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldCilindraje, v))
}

// CilindrajeGTE applies the GTE predicate on the "cilindraje" field.
func CilindrajeGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldCilindraje, v))
}

// CilindrajeLT applies the LT predicate on the "cilindraje" field.
func CilindrajeLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldCilindraje, v))
}

// CilindrajeLTE applies the LTE predicate on the "cilindraje" field.
func CilindrajeLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldCilindraje, v))
}

// CilindrajeContains applies the Contains predicate on the "cilindraje" field.
func CilindrajeContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldCilindraje, v))
}

// CilindrajeHasPrefix applies the HasPrefix predicate on the "cilindraje" field.
func CilindrajeHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldCilindraje, v))
}

// CilindrajeHasSuffix applies the HasSuffix predicate on the "cilindraje" field.
func CilindrajeHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldCilindraje, v))
}

// CilindrajeEqualFold applies the EqualFold predicate on the "cilindraje" field.
func CilindrajeEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldCilindraje, v))
}

// CilindrajeContainsFold applies the ContainsFold predicate on the "cilindraje" field.
func CilindrajeContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldCilindraje, v))
}

// PotenciaHpEQ applies the EQ predicate on the "potencia_hp" field.
func PotenciaHpEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPotenciaHp, v))
}

// PotenciaHpNEQ applies the NEQ predicate on the "potencia_hp" field.
func PotenciaHpNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldPotenciaHp, v))
}

// PotenciaHpIn applies the In predicate on the "potencia_hp" field.
func PotenciaHpIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldPotenciaHp, vs...))
}

// PotenciaHpNotIn applies the NotIn predicate on the "potencia_hp" field.
func PotenciaHpNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldPotenciaHp, vs...))
}

// PotenciaHpGT applies the GT predicate on the "potencia_hp" field.
func PotenciaHpGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldPotenciaHp, v))
}

// PotenciaHpGTE applies the GTE predicate on the "potencia_hp" field.
func PotenciaHpGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldPotenciaHp, v))
}

// PotenciaHpLT applies the LT predicate on the "potencia_hp" field.
func PotenciaHpLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldPotenciaHp, v))
}

// PotenciaHpLTE applies the LTE predicate on the "potencia_hp" field.
func PotenciaHpLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldPotenciaHp, v))
}

// PotenciaHpContains applies the Contains predicate on the "potencia_hp" field.
func PotenciaHpContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldPotenciaHp, v))
}

// PotenciaHpHasPrefix applies the HasPrefix predicate on the "potencia_hp" field.
func PotenciaHpHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldPotenciaHp, v))
}

// PotenciaHpHasSuffix applies the HasSuffix predicate on the "potencia_hp" field.
func PotenciaHpHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldPotenciaHp, v))
}

// PotenciaHpEqualFold applies the EqualFold predicate on the "potencia_hp" field.
func PotenciaHpEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldPotenciaHp, v))
}

// PotenciaHpContainsFold applies the ContainsFold predicate on the "potencia_hp" field.
func PotenciaHpContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldPotenciaHp, v))
}

// CapacidadEQ applies the EQ predicate on the "capacidad" field.
func CapacidadEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCapacidad, v))
}

// CapacidadNEQ applies the NEQ predicate on the "capacidad" field.
func CapacidadNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCapacidad, v))
}

// CapacidadIn applies the In predicate on the "capacidad" field.
func CapacidadIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCapacidad, vs...))
}

// CapacidadNotIn applies the NotIn predicate on the "capacidad" field.
func CapacidadNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCapacidad, vs...))
}

// CapacidadGT applies the GT predicate on the "capacidad" field.
func CapacidadGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldCapacidad, v))
}

// CapacidadGTE applies the GTE predicate on the "capacidad" field.
func CapacidadGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldCapacidad, v))
}

// CapacidadLT applies the LT predicate on the "capacidad" field.
func CapacidadLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldCapacidad, v))
}

// CapacidadLTE applies the LTE predicate on the "capacidad" field.
func CapacidadLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldCapacidad, v))
}

// CapacidadContains applies the Contains predicate on the "capacidad" field.
func CapacidadContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldCapacidad, v))
}

// CapacidadHasPrefix applies the HasPrefix predicate on the "capacidad" field.
func CapacidadHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldCapacidad, v))
}

// CapacidadHasSuffix applies the HasSuffix predicate on the "capacidad" field.
func CapacidadHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldCapacidad, v))
}

// CapacidadEqualFold applies the EqualFold predicate on the "capacidad" field.
func CapacidadEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldCapacidad, v))
}

// CapacidadContainsFold applies the ContainsFold predicate on the "capacidad" field.
func CapacidadContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldCapacidad, v))
}

// CarroceriaEQ applies the EQ predicate on the "carroceria" field.
func CarroceriaEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCarroceria, v))
}

// CarroceriaNEQ applies the NEQ predicate on the "carroceria" field.
func CarroceriaNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCarroceria, v))
}

// CarroceriaIn applies the In predicate on the "carroceria" field.
func CarroceriaIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCarroceria, vs...))
}

// CarroceriaNotIn applies the NotIn predicate on the "carroceria" field.
func CarroceriaNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCarroceria, vs...))
}

// CarroceriaGT applies the GT predicate on the "carroceria" field.
func CarroceriaGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldCarroceria, v))
}

// CarroceriaGTE applies the GTE predicate on the "carroceria" field.
func CarroceriaGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldCarroceria, v))
}

// CarroceriaLT applies the LT predicate on the "carroceria" field.
func CarroceriaLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldCarroceria, v))
}

// CarroceriaLTE applies the LTE predicate on the "carroceria" field.
func CarroceriaLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldCarroceria, v))
}

// CarroceriaContains applies the Contains predicate on the "carroceria" field.
func CarroceriaContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldCarroceria, v))
}

// CarroceriaHasPrefix applies the HasPrefix predicate on the "carroceria" field.
func CarroceriaHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldCarroceria, v))
}

// CarroceriaHasSuffix applies the HasSuffix predicate on the "carroceria" field.
func CarroceriaHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldCarroceria, v))
}

// CarroceriaEqualFold applies the EqualFold predicate on the "carroceria" field.
func CarroceriaEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldCarroceria, v))
}

// CarroceriaContainsFold applies the ContainsFold predicate on the "carroceria" field.
func CarroceriaContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldCarroceria, v))
}

// ClaseVehiculoEQ applies the EQ predicate on the "clase_vehiculo" field.
func ClaseVehiculoEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldClaseVehiculo, v))
}

// ClaseVehiculoNEQ applies the NEQ predicate on the "clase_vehiculo" field.
func ClaseVehiculoNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldClaseVehiculo, v))
}

// ClaseVehiculoIn applies the In predicate on the "clase_vehiculo" field.
func ClaseVehiculoIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldClaseVehiculo, vs...))
}

// ClaseVehiculoNotIn applies the NotIn predicate on the "clase_vehiculo" field.
func ClaseVehiculoNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldClaseVehiculo, vs...))
}

// ClaseVehiculoGT applies the GT predicate on the "clase_vehiculo" field.
func ClaseVehiculoGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldClaseVehiculo, v))
}

// ClaseVehiculoGTE applies the GTE predicate on the "clase_vehiculo" field.
func ClaseVehiculoGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldClaseVehiculo, v))
}

// ClaseVehiculoLT applies the LT predicate on the "clase_vehiculo" field.
func ClaseVehiculoLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldClaseVehiculo, v))
}

// ClaseVehiculoLTE applies the LTE predicate on the "clase_vehiculo" field.
func ClaseVehiculoLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldClaseVehiculo, v))
}

// ClaseVehiculoContains applies the Contains predicate on the "clase_vehiculo" field.
func ClaseVehiculoContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldClaseVehiculo, v))
}

// ClaseVehiculoHasPrefix applies the HasPrefix predicate on the "clase_vehiculo" field.
func ClaseVehiculoHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldClaseVehiculo, v))
}

// ClaseVehiculoHasSuffix applies the HasSuffix predicate on the "clase_vehiculo" field.
func ClaseVehiculoHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldClaseVehiculo, v))
}

// ClaseVehiculoEqualFold applies the EqualFold predicate on the "clase_vehiculo" field.
func ClaseVehiculoEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldClaseVehiculo, v))
}

// ClaseVehiculoContainsFold applies the ContainsFold predicate on the "clase_vehiculo" field.
func ClaseVehiculoContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldClaseVehiculo, v))
}

// CombustibleEQ applies the EQ predicate on the "combustible" field.
func CombustibleEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCombustible, v))
}

// CombustibleNEQ applies the NEQ predicate on the "combustible" field.
func CombustibleNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCombustible, v))
}

// CombustibleIn applies the In predicate on the "combustible" field.
func CombustibleIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCombustible, vs...))
}

// CombustibleNotIn applies the NotIn predicate on the "combustible" field.
func CombustibleNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCombustible, vs...))
}

// CombustibleGT applies the GT predicate on the "combustible" field.
func CombustibleGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldCombustible, v))
}

// CombustibleGTE applies the GTE predicate on the "combustible" field.
func CombustibleGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldCombustible, v))
}

// CombustibleLT applies the LT predicate on the "combustible" field.
func CombustibleLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldCombustible, v))
}

// CombustibleLTE applies the LTE predicate on the "combustible" field.
func CombustibleLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldCombustible, v))
}

// CombustibleContains applies the Contains predicate on the "combustible" field.
func CombustibleContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldCombustible, v))
}

// CombustibleHasPrefix applies the HasPrefix predicate on the "combustible" field.
func CombustibleHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldCombustible, v))
}

// CombustibleHasSuffix applies the HasSuffix predicate on the "combustible" field.
func CombustibleHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldCombustible, v))
}

// CombustibleEqualFold applies the EqualFold predicate on the "combustible" field.
func CombustibleEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldCombustible, v))
}

// CombustibleContainsFold applies the ContainsFold predicate on the "combustible" field.
func CombustibleContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldCombustible, v))
}

// ServicioEQ applies the EQ predicate on the "servicio" field.
func ServicioEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldServicio, v))
}

// ServicioNEQ applies the NEQ predicate on the "servicio" field.
func ServicioNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldServicio, v))
}

// ServicioIn applies the In predicate on the "servicio" field.
func ServicioIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldServicio, vs...))
}

// ServicioNotIn applies the NotIn predicate on the "servicio" field.
func ServicioNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldServicio, vs...))
}

// ServicioGT applies the GT predicate on the "servicio" field.
func ServicioGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldServicio, v))
}

// ServicioGTE applies the GTE predicate on the "servicio" field.
func ServicioGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldServicio, v))
}

// ServicioLT applies the LT predicate on the "servicio" field.
func ServicioLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldServicio, v))
}

// ServicioLTE applies the LTE predicate on the "servicio" field.
func ServicioLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldServicio, v))
}

// ServicioContains applies the Contains predicate on the "servicio" field.
func ServicioContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldServicio, v))
}

// ServicioHasPrefix applies the HasPrefix predicate on the "servicio" field.
func ServicioHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldServicio, v))
}

// ServicioHasSuffix applies the HasSuffix predicate on the "servicio" field.
func ServicioHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldServicio, v))
}

// ServicioEqualFold applies the EqualFold predicate on the "servicio" field.
func ServicioEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldServicio, v))
}

// ServicioContainsFold applies the ContainsFold predicate on the "servicio" field.
func ServicioContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldServicio, v))
}

// PuertasEQ applies the EQ predicate on the "puertas" field.
func PuertasEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldPuertas, v))
}

// PuertasNEQ applies the NEQ predicate on the "puertas" field.
func PuertasNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldPuertas, v))
}

// PuertasIn applies the In predicate on the "puertas" field.
func PuertasIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldPuertas, vs...))
}

// PuertasNotIn applies the NotIn predicate on the "puertas" field.
func PuertasNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldPuertas, vs...))
}

// PuertasGT applies the GT predicate on the "puertas" field.
func PuertasGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldPuertas, v))
}

// PuertasGTE applies the GTE predicate on the "puertas" field.
func PuertasGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldPuertas, v))
}

// PuertasLT applies the LT predicate on the "puertas" field.
func PuertasLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldPuertas, v))
}

// PuertasLTE applies the LTE predicate on the "puertas" field.
func PuertasLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldPuertas, v))
}

// PuertasContains applies the Contains predicate on the "puertas" field.
func PuertasContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldPuertas, v))
}

// PuertasHasPrefix applies the HasPrefix predicate on the "puertas" field.
func PuertasHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldPuertas, v))
}

// PuertasHasSuffix applies the HasSuffix predicate on the "puertas" field.
func PuertasHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldPuertas, v))
}

// PuertasEqualFold applies the EqualFold predicate on the "puertas" field.
func PuertasEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldPuertas, v))
}

// PuertasContainsFold applies the ContainsFold predicate on the "puertas" field.
func PuertasContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldPuertas, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.NotPredicates(p))
}
