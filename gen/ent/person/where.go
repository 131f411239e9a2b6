// Code generated by ent, DO NOT EDIT.

package person

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dfmora/car2data/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldID, id))
}

// NumeroDocumento applies equality check predicate on the "numero_documento" field. It's identical to NumeroDocumentoEQ.
func NumeroDocumento(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNumeroDocumento, v))
}

// TipoDocumento applies equality check predicate on the "tipo_documento" field. It's identical to TipoDocumentoEQ.
func TipoDocumento(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldTipoDocumento, v))
}

// Nombre applies equality check predicate on the "nombre" field. It's identical to NombreEQ.
func Nombre(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNombre, v))
}

// Direccion applies equality check predicate on the "direccion" field. It's identical to DireccionEQ.
func Direccion(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldDireccion, v))
}

// Ciudad applies equality check predicate on the "ciudad" field. It's identical to CiudadEQ.
func Ciudad(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCiudad, v))
}

// Telefono applies equality check predicate on the "telefono" field. It's identical to TelefonoEQ.
func Telefono(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldTelefono, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldUpdatedAt, v))
}

// NumeroDocumentoEQ applies the EQ predicate on the "numero_documento" field.
func NumeroDocumentoEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNumeroDocumento, v))
}

// NumeroDocumentoNEQ applies the NEQ predicate on the "numero_documento" field.
func NumeroDocumentoNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldNumeroDocumento, v))
}

// NumeroDocumentoIn applies the In predicate on the "numero_documento" field.
func NumeroDocumentoIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldNumeroDocumento, vs...))
}

// NumeroDocumentoNotIn applies the NotIn predicate on the "numero_documento" field.
func NumeroDocumentoNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldNumeroDocumento, vs...))
}

// NumeroDocumentoGT applies the GT predicate on the "numero_documento" field.
func NumeroDocumentoGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldNumeroDocumento, v))
}

// NumeroDocumentoGTE applies the GTE predicate on the "numero_documento" field.
func NumeroDocumentoGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldNumeroDocumento, v))
}

// NumeroDocumentoLT applies the LT predicate on the "numero_documento" field.
func NumeroDocumentoLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldNumeroDocumento, v))
}

// NumeroDocumentoLTE applies the LTE predicate on the "numero_documento" field.
func NumeroDocumentoLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldNumeroDocumento, v))
}

// NumeroDocumentoContains applies the Contains predicate on the "numero_documento" field.
func NumeroDocumentoContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldNumeroDocumento, v))
}

// NumeroDocumentoHasPrefix applies the HasPrefix predicate on the "numero_documento" field.
func NumeroDocumentoHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldNumeroDocumento, v))
}

// NumeroDocumentoHasSuffix applies the HasSuffix predicate on the "numero_documento" field.
func NumeroDocumentoHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldNumeroDocumento, v))
}

// NumeroDocumentoEqualFold applies the EqualFold predicate on the "numero_documento" field.
func NumeroDocumentoEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldNumeroDocumento, v))
}

// NumeroDocumentoContainsFold applies the ContainsFold predicate on the "numero_documento" field.
func NumeroDocumentoContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldNumeroDocumento, v))
}

// TipoDocumentoEQ applies the EQ predicate on the "tipo_documento" field.
func TipoDocumentoEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldTipoDocumento, v))
}

// TipoDocumentoNEQ applies the NEQ predicate on the "tipo_documento" field.
func TipoDocumentoNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldTipoDocumento, v))
}

// TipoDocumentoIn applies the In predicate on the "tipo_documento" field.
func TipoDocumentoIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldTipoDocumento, vs...))
}

// TipoDocumentoNotIn applies the NotIn predicate on the "tipo_documento" field.
func TipoDocumentoNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldTipoDocumento, vs...))
}

// TipoDocumentoGT applies the GT predicate on the "tipo_documento" field.
func TipoDocumentoGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldTipoDocumento, v))
}

// TipoDocumentoGTE applies the GTE predicate on the "tipo_documento" field.
func TipoDocumentoGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldTipoDocumento, v))
}

// TipoDocumentoLT applies the LT predicate on the "tipo_documento" field.
func TipoDocumentoLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldTipoDocumento, v))
}

// TipoDocumentoLTE applies the LTE predicate on the "tipo_documento" field.
func TipoDocumentoLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldTipoDocumento, v))
}

// TipoDocumentoContains applies the Contains predicate on the "tipo_documento" field.
func TipoDocumentoContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldTipoDocumento, v))
}

// TipoDocumentoHasPrefix applies the HasPrefix predicate on the "tipo_documento" field.
func TipoDocumentoHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldTipoDocumento, v))
}

// TipoDocumentoHasSuffix applies the HasSuffix predicate on the "tipo_documento" field.
func TipoDocumentoHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldTipoDocumento, v))
}

// TipoDocumentoIsNil applies the IsNil predicate on the "tipo_documento" field.
func TipoDocumentoIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldTipoDocumento))
}

// TipoDocumentoNotNil applies the NotNil predicate on the "tipo_documento" field.
func TipoDocumentoNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldTipoDocumento))
}

// TipoDocumentoEqualFold applies the EqualFold predicate on the "tipo_documento" field.
func TipoDocumentoEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldTipoDocumento, v))
}

// TipoDocumentoContainsFold applies the ContainsFold predicate on the "tipo_documento" field.
func TipoDocumentoContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldTipoDocumento, v))
}

// NombreEQ applies the EQ predicate on the "nombre" field.
func NombreEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNombre, v))
}

// NombreNEQ applies the NEQ predicate on the "nombre" field.
func NombreNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldNombre, v))
}

// NombreIn applies the In predicate on the "nombre" field.
func NombreIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldNombre, vs...))
}

// NombreNotIn applies the NotIn predicate on the "nombre" field.
func NombreNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldNombre, vs...))
}

// NombreGT applies the GT predicate on the "nombre" field.
func NombreGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldNombre, v))
}

// NombreGTE applies the GTE predicate on the "nombre" field.
func NombreGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldNombre, v))
}

// NombreLT applies the LT predicate on the "nombre" field.
func NombreLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldNombre, v))
}

// NombreLTE applies the LTE predicate on the "nombre" field.
func NombreLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldNombre, v))
}

// NombreContains applies the Contains predicate on the "nombre" field.
func NombreContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldNombre, v))
}

// NombreHasPrefix applies the HasPrefix predicate on the "nombre" field.
func NombreHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldNombre, v))
}

// NombreHasSuffix applies the HasSuffix predicate on the "nombre" field.
func NombreHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldNombre, v))
}

// NombreEqualFold applies the EqualFold predicate on the "nombre" field.
func NombreEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldNombre, v))
}

// NombreContainsFold applies the ContainsFold predicate on the "nombre" field.
func NombreContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldNombre, v))
}

// DireccionEQ applies the EQ predicate on the "direccion" field.
func DireccionEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldDireccion, v))
}

// DireccionNEQ applies the NEQ predicate on the "direccion" field.
func DireccionNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldDireccion, v))
}

// DireccionIn applies the In predicate on the "direccion" field.
func DireccionIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldDireccion, vs...))
}

// DireccionNotIn applies the NotIn predicate on the "direccion" field.
func DireccionNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldDireccion, vs...))
}

// DireccionGT applies the GT predicate on the "direccion" field.
func DireccionGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldDireccion, v))
}

// DireccionGTE applies the GTE predicate on the "direccion" field.
func DireccionGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldDireccion, v))
}

// DireccionLT applies the LT predicate on the "direccion" field.
func DireccionLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldDireccion, v))
}

// DireccionLTE applies the LTE predicate on the "direccion" field.
func DireccionLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldDireccion, v))
}

// DireccionContains applies the Contains predicate on the "direccion" field.
func DireccionContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldDireccion, v))
}

// DireccionHasPrefix applies the HasPrefix predicate on the "direccion" field.
func DireccionHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldDireccion, v))
}

// DireccionHasSuffix applies the HasSuffix predicate on the "direccion" field.
func DireccionHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldDireccion, v))
}

// DireccionEqualFold applies the EqualFold predicate on the "direccion" field.
func DireccionEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldDireccion, v))
}

// DireccionContainsFold applies the ContainsFold predicate on the "direccion" field.
func DireccionContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldDireccion, v))
}

// CiudadEQ applies the EQ predicate on the "ciudad" field.
func CiudadEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCiudad, v))
}

// CiudadNEQ applies the NEQ predicate on the "ciudad" field.
func CiudadNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldCiudad, v))
}

// CiudadIn applies the In predicate on the "ciudad" field.
func CiudadIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldCiudad, vs...))
}

// CiudadNotIn applies the NotIn predicate on the "ciudad" field.
func CiudadNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldCiudad, vs...))
}

// CiudadGT applies the GT predicate on the "ciudad" field.
func CiudadGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldCiudad, v))
}

// CiudadGTE applies the GTE predicate on the "ciudad" field.
func CiudadGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldCiudad, v))
}

// CiudadLT applies the LT predicate on the "ciudad" field.
func CiudadLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldCiudad, v))
}

// CiudadLTE applies the LTE predicate on the "ciudad" field.
func CiudadLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldCiudad, v))
}

// CiudadContains applies the Contains predicate on the "ciudad" field.
func CiudadContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldCiudad, v))
}

// CiudadHasPrefix applies the HasPrefix predicate on the "ciudad" field.
func CiudadHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldCiudad, v))
}

// CiudadHasSuffix applies the HasSuffix predicate on the "ciudad" field.
func CiudadHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldCiudad, v))
}

// CiudadEqualFold applies the EqualFold predicate on the "ciudad" field.
func CiudadEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldCiudad, v))
}

// CiudadContainsFold applies the ContainsFold predicate on the "ciudad" field.
func CiudadContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldCiudad, v))
}

// TelefonoEQ applies the EQ predicate on the "telefono" field.
func TelefonoEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldTelefono, v))
}

// TelefonoNEQ applies the NEQ predicate on the "telefono" field.
func TelefonoNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldTelefono, v))
}

// TelefonoIn applies the In predicate on the "telefono" field.
func TelefonoIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldTelefono, vs...))
}

// TelefonoNotIn applies the NotIn predicate on the "telefono" field.
func TelefonoNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldTelefono, vs...))
}

// TelefonoGT applies the GT predicate on the "telefono" field.
func TelefonoGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldTelefono, v))
}

// TelefonoGTE applies the GTE predicate on the "telefono" field.
func TelefonoGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldTelefono, v))
}

// TelefonoLT applies the LT predicate on the "telefono" field.
func TelefonoLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldTelefono, v))
}

// TelefonoLTE applies the LTE predicate on the "telefono" field.
func TelefonoLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldTelefono, v))
}

// TelefonoContains applies the Contains predicate on the "telefono" field.
func TelefonoContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldTelefono, v))
}

// TelefonoHasPrefix applies the HasPrefix predicate on the "telefono" field.
func TelefonoHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldTelefono, v))
}

// TelefonoHasSuffix applies the HasSuffix predicate on the "telefono" field.
func TelefonoHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldTelefono, v))
}

// TelefonoEqualFold applies the EqualFold predicate on the "telefono" field.
func TelefonoEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldTelefono, v))
}

// TelefonoContainsFold applies the ContainsFold predicate on the "telefono" field.
func TelefonoContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldTelefono, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Person) predicate.Person {
	return predicate.Person(sql.NotPredicates(p))
}
