// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dfmora/car2data/db/ent/schema"
	"github.com/dfmora/car2data/gen/ent/document"
	"github.com/dfmora/car2data/gen/ent/generatedform"
	"github.com/dfmora/car2data/gen/ent/person"
	"github.com/dfmora/car2data/gen/ent/vehicle"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescName is the schema descriptor for name field.
	documentDescName := documentFields[2].Descriptor()
	// document.NameValidator is a validator for the "name" field. It is called by the builders before save.
	document.NameValidator = documentDescName.Validators[0].(func(string) error)
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[3].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[4].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[5].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescDocType is the schema descriptor for doc_type field.
	documentDescDocType := documentFields[6].Descriptor()
	// document.DefaultDocType holds the default value on creation for the doc_type field.
	document.DefaultDocType = documentDescDocType.Default.(string)
	// document.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	document.DocTypeValidator = documentDescDocType.Validators[0].(func(string) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[7].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	generatedformFields := schema.GeneratedForm{}.Fields()
	_ = generatedformFields
	// generatedformDescFormType is the schema descriptor for form_type field.
	generatedformDescFormType := generatedformFields[3].Descriptor()
	// generatedform.FormTypeValidator is a validator for the "form_type" field. It is called by the builders before save.
	generatedform.FormTypeValidator = func() func(string) error {
		validators := generatedformDescFormType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(form_type string) error {
			for _, fn := range fns {
				if err := fn(form_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// generatedformDescOutputPath is the schema descriptor for output_path field.
	generatedformDescOutputPath := generatedformFields[4].Descriptor()
	// generatedform.OutputPathValidator is a validator for the "output_path" field. It is called by the builders before save.
	generatedform.OutputPathValidator = generatedformDescOutputPath.Validators[0].(func(string) error)
	// generatedformDescCreatedAt is the schema descriptor for created_at field.
	generatedformDescCreatedAt := generatedformFields[5].Descriptor()
	// generatedform.DefaultCreatedAt holds the default value on creation for the created_at field.
	generatedform.DefaultCreatedAt = generatedformDescCreatedAt.Default.(func() time.Time)
	// generatedformDescID is the schema descriptor for id field.
	generatedformDescID := generatedformFields[0].Descriptor()
	// generatedform.DefaultID holds the default value on creation for the id field.
	generatedform.DefaultID = generatedformDescID.Default.(func() uuid.UUID)
	personFields := schema.Person{}.Fields()
	_ = personFields
	// personDescNumeroDocumento is the schema descriptor for numero_documento field.
	personDescNumeroDocumento := personFields[1].Descriptor()
	// person.NumeroDocumentoValidator is a validator for the "numero_documento" field. It is called by the builders before save.
	person.NumeroDocumentoValidator = func() func(string) error {
		validators := personDescNumeroDocumento.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(numero_documento string) error {
			for _, fn := range fns {
				if err := fn(numero_documento); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personDescTipoDocumento is the schema descriptor for tipo_documento field.
	personDescTipoDocumento := personFields[2].Descriptor()
	// person.TipoDocumentoValidator is a validator for the "tipo_documento" field. It is called by the builders before save.
	person.TipoDocumentoValidator = personDescTipoDocumento.Validators[0].(func(string) error)
	// personDescNombre is the schema descriptor for nombre field.
	personDescNombre := personFields[3].Descriptor()
	// person.DefaultNombre holds the default value on creation for the nombre field.
	person.DefaultNombre = personDescNombre.Default.(string)
	// personDescDireccion is the schema descriptor for direccion field.
	personDescDireccion := personFields[4].Descriptor()
	// person.DefaultDireccion holds the default value on creation for the direccion field.
	person.DefaultDireccion = personDescDireccion.Default.(string)
	// personDescCiudad is the schema descriptor for ciudad field.
	personDescCiudad := personFields[5].Descriptor()
	// person.DefaultCiudad holds the default value on creation for the ciudad field.
	person.DefaultCiudad = personDescCiudad.Default.(string)
	// personDescTelefono is the schema descriptor for telefono field.
	personDescTelefono := personFields[6].Descriptor()
	// person.DefaultTelefono holds the default value on creation for the telefono field.
	person.DefaultTelefono = personDescTelefono.Default.(string)
	// personDescCreatedAt is the schema descriptor for created_at field.
	personDescCreatedAt := personFields[7].Descriptor()
	// person.DefaultCreatedAt holds the default value on creation for the created_at field.
	person.DefaultCreatedAt = personDescCreatedAt.Default.(func() time.Time)
	// personDescUpdatedAt is the schema descriptor for updated_at field.
	personDescUpdatedAt := personFields[8].Descriptor()
	// person.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	person.DefaultUpdatedAt = personDescUpdatedAt.Default.(func() time.Time)
	// person.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	person.UpdateDefaultUpdatedAt = personDescUpdatedAt.UpdateDefault.(func() time.Time)
	// personDescID is the schema descriptor for id field.
	personDescID := personFields[0].Descriptor()
	// person.DefaultID holds the default value on creation for the id field.
	person.DefaultID = personDescID.Default.(func() uuid.UUID)
	vehicleFields := schema.Vehicle{}.Fields()
	_ = vehicleFields
	// vehicleDescPlaca is the schema descriptor for placa field.
	vehicleDescPlaca := vehicleFields[1].Descriptor()
	// vehicle.PlacaValidator is a validator for the "placa" field. It is called by the builders before save.
	vehicle.PlacaValidator = func() func(string) error {
		validators := vehicleDescPlaca.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(placa string) error {
			for _, fn := range fns {
				if err := fn(placa); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vehicleDescMarca is the schema descriptor for marca field.
	vehicleDescMarca := vehicleFields[2].Descriptor()
	// vehicle.DefaultMarca holds the default value on creation for the marca field.
	vehicle.DefaultMarca = vehicleDescMarca.Default.(string)
	// vehicleDescLinea is the schema descriptor for linea field.
	vehicleDescLinea := vehicleFields[3].Descriptor()
	// vehicle.DefaultLinea holds the default value on creation for the linea field.
	vehicle.DefaultLinea = vehicleDescLinea.Default.(string)
	// vehicleDescModelo is the schema descriptor for modelo field.
	vehicleDescModelo := vehicleFields[4].Descriptor()
	// vehicle.DefaultModelo holds the default value on creation for the modelo field.
	vehicle.DefaultModelo = vehicleDescModelo.Default.(string)
	// vehicleDescColor is the schema descriptor for color field.
	vehicleDescColor := vehicleFields[5].Descriptor()
	// vehicle.DefaultColor holds the default value on creation for the color field.
	vehicle.DefaultColor = vehicleDescColor.Default.(string)
	// vehicleDescNumeroMotor is the schema descriptor for numero_motor field.
	vehicleDescNumeroMotor := vehicleFields[6].Descriptor()
	// vehicle.DefaultNumeroMotor holds the default value on creation for the numero_motor field.
	vehicle.DefaultNumeroMotor = vehicleDescNumeroMotor.Default.(string)
	// vehicleDescNumeroChasis is the schema descriptor for numero_chasis field.
	vehicleDescNumeroChasis := vehicleFields[7].Descriptor()
	// vehicle.DefaultNumeroChasis holds the default value on creation for the numero_chasis field.
	vehicle.DefaultNumeroChasis = vehicleDescNumeroChasis.Default.(string)
	// vehicleDescNumeroSerie is the schema descriptor for numero_serie field.
	vehicleDescNumeroSerie := vehicleFields[8].Descriptor()
	// vehicle.DefaultNumeroSerie holds the default value on creation for the numero_serie field.
	vehicle.DefaultNumeroSerie = vehicleDescNumeroSerie.Default.(string)
	// vehicleDescVin is the schema descriptor for vin field.
	vehicleDescVin := vehicleFields[9].Descriptor()
	// vehicle.DefaultVin holds the default value on creation for the vin field.
	vehicle.DefaultVin = vehicleDescVin.Default.(string)
	// vehicleDescCilindraje is the schema descriptor for cilindraje field.
	vehicleDescCilindraje := vehicleFields[10].Descriptor()
	// vehicle.DefaultCilindraje holds the default value on creation for the cilindraje field.
	vehicle.DefaultCilindraje = vehicleDescCilindraje.Default.(string)
	// vehicleDescPotenciaHp is the schema descriptor for potencia_hp field.
	vehicleDescPotenciaHp := vehicleFields[11].Descriptor()
	// vehicle.DefaultPotenciaHp holds the default value on creation for the potencia_hp field.
	vehicle.DefaultPotenciaHp = vehicleDescPotenciaHp.Default.(string)
	// vehicleDescCapacidad is the schema descriptor for capacidad field.
	vehicleDescCapacidad := vehicleFields[12].Descriptor()
	// vehicle.DefaultCapacidad holds the default value on creation for the capacidad field.
	vehicle.DefaultCapacidad = vehicleDescCapacidad.Default.(string)
	// vehicleDescCarroceria is the schema descriptor for carroceria field.
	vehicleDescCarroceria := vehicleFields[13].Descriptor()
	// vehicle.DefaultCarroceria holds the default value on creation for the carroceria field.
	vehicle.DefaultCarroceria = vehicleDescCarroceria.Default.(string)
	// vehicleDescClaseVehiculo is the schema descriptor for clase_vehiculo field.
	vehicleDescClaseVehiculo := vehicleFields[14].Descriptor()
	// vehicle.DefaultClaseVehiculo holds the default value on creation for the clase_vehiculo field.
	vehicle.DefaultClaseVehiculo = vehicleDescClaseVehiculo.Default.(string)
	// vehicleDescCombustible is the schema descriptor for combustible field.
	vehicleDescCombustible := vehicleFields[15].Descriptor()
	// vehicle.DefaultCombustible holds the default value on creation for the combustible field.
	vehicle.DefaultCombustible = vehicleDescCombustible.Default.(string)
	// vehicleDescServicio is the schema descriptor for servicio field.
	vehicleDescServicio := vehicleFields[16].Descriptor()
	// vehicle.DefaultServicio holds the default value on creation for the servicio field.
	vehicle.DefaultServicio = vehicleDescServicio.Default.(string)
	// vehicleDescPuertas is the schema descriptor for puertas field.
	vehicleDescPuertas := vehicleFields[17].Descriptor()
	// vehicle.DefaultPuertas holds the default value on creation for the puertas field.
	vehicle.DefaultPuertas = vehicleDescPuertas.Default.(string)
	// vehicleDescCreatedAt is the schema descriptor for created_at field.
	vehicleDescCreatedAt := vehicleFields[18].Descriptor()
	// vehicle.DefaultCreatedAt holds the default value on creation for the created_at field.
	vehicle.DefaultCreatedAt = vehicleDescCreatedAt.Default.(func() time.Time)
	// vehicleDescUpdatedAt is the schema descriptor for updated_at field.
	vehicleDescUpdatedAt := vehicleFields[19].Descriptor()
	// vehicle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vehicle.DefaultUpdatedAt = vehicleDescUpdatedAt.Default.(func() time.Time)
	// vehicle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vehicle.UpdateDefaultUpdatedAt = vehicleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vehicleDescID is the schema descriptor for id field.
	vehicleDescID := vehicleFields[0].Descriptor()
	// vehicle.DefaultID holds the default value on creation for the id field.
	vehicle.DefaultID = vehicleDescID.Default.(func() uuid.UUID)
}
