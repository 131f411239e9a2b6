package utils

import (
	"github.com/dfmora/car2data/gen/ent"
	"github.com/dfmora/car2data/internal/entity"
)

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		Name:            e.Name,
		SourcePath:      e.SourcePath,
		ContentHash:     e.ContentHash,
		Status:          e.Status,
		DocType:         e.DocType,
		UploadedAt:      e.UploadedAt,
		ProcessedAt:     e.ProcessedAt,
		ExtractionError: e.ExtractionError,
		ExtractedJSON:   e.ExtractedJSON,
	}
}

func ToVehicle(e *ent.Vehicle) *entity.Vehicle {
	return &entity.Vehicle{
		ID:            e.ID,
		Placa:         e.Placa,
		Marca:         e.Marca,
		Linea:         e.Linea,
		Modelo:        e.Modelo,
		Color:         e.Color,
		NumeroMotor:   e.NumeroMotor,
		NumeroChasis:  e.NumeroChasis,
		NumeroSerie:   e.NumeroSerie,
		VIN:           e.Vin,
		Cilindraje:    e.Cilindraje,
		PotenciaHP:    e.PotenciaHp,
		Capacidad:     e.Capacidad,
		Carroceria:    e.Carroceria,
		ClaseVehiculo: e.ClaseVehiculo,
		Combustible:   e.Combustible,
		Servicio:      e.Servicio,
		Puertas:       e.Puertas,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToPerson(e *ent.Person) *entity.Person {
	return &entity.Person{
		ID:              e.ID,
		NumeroDocumento: e.NumeroDocumento,
		TipoDocumento:   e.TipoDocumento,
		Nombre:          e.Nombre,
		Direccion:       e.Direccion,
		Ciudad:          e.Ciudad,
		Telefono:        e.Telefono,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToGeneratedForm(e *ent.GeneratedForm) *entity.GeneratedForm {
	return &entity.GeneratedForm{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		DocumentID: e.DocumentID,
		FormType:   e.FormType,
		OutputPath: e.OutputPath,
		CreatedAt:  e.CreatedAt,
	}
}
