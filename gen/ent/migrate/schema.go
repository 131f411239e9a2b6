// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "doc_type", Type: field.TypeString, Default: "unknown"},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "extraction_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_owner_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[4]},
			},
			{
				Name:    "document_owner_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[7]},
			},
			{
				Name:    "document_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[5]},
			},
		},
	}
	// GeneratedFormsColumns holds the columns for the "generated_forms" table.
	GeneratedFormsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "form_type", Type: field.TypeString},
		{Name: "output_path", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// GeneratedFormsTable holds the schema information for the "generated_forms" table.
	GeneratedFormsTable = &schema.Table{
		Name:       "generated_forms",
		Columns:    GeneratedFormsColumns,
		PrimaryKey: []*schema.Column{GeneratedFormsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_forms_documents_forms",
				Columns:    []*schema.Column{GeneratedFormsColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generatedform_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{GeneratedFormsColumns[1], GeneratedFormsColumns[4]},
			},
			{
				Name:    "generatedform_document_id",
				Unique:  false,
				Columns: []*schema.Column{GeneratedFormsColumns[5]},
			},
		},
	}
	// PersonsColumns holds the columns for the "persons" table.
	PersonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "numero_documento", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "tipo_documento", Type: field.TypeString, Nullable: true},
		{Name: "nombre", Type: field.TypeString, Default: ""},
		{Name: "direccion", Type: field.TypeString, Default: ""},
		{Name: "ciudad", Type: field.TypeString, Default: ""},
		{Name: "telefono", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PersonsTable holds the schema information for the "persons" table.
	PersonsTable = &schema.Table{
		Name:       "persons",
		Columns:    PersonsColumns,
		PrimaryKey: []*schema.Column{PersonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "person_numero_documento",
				Unique:  true,
				Columns: []*schema.Column{PersonsColumns[1]},
			},
		},
	}
	// VehiclesColumns holds the columns for the "vehicles" table.
	VehiclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "placa", Type: field.TypeString, Unique: true, Size: 10},
		{Name: "marca", Type: field.TypeString, Default: ""},
		{Name: "linea", Type: field.TypeString, Default: ""},
		{Name: "modelo", Type: field.TypeString, Default: ""},
		{Name: "color", Type: field.TypeString, Default: ""},
		{Name: "numero_motor", Type: field.TypeString, Default: ""},
		{Name: "numero_chasis", Type: field.TypeString, Default: ""},
		{Name: "numero_serie", Type: field.TypeString, Default: ""},
		{Name: "vin", Type: field.TypeString, Default: ""},
		{Name: "cilindraje", Type: field.TypeString, Default: ""},
		{Name: "potencia_hp", Type: field.TypeString, Default: ""},
		{Name: "capacidad", Type: field.TypeString, Default: ""},
		{Name: "carroceria", Type: field.TypeString, Default: ""},
		{Name: "clase_vehiculo", Type: field.TypeString, Default: ""},
		{Name: "combustible", Type: field.TypeString, Default: ""},
		{Name: "servicio", Type: field.TypeString, Default: ""},
		{Name: "puertas", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VehiclesTable holds the schema information for the "vehicles" table.
	VehiclesTable = &schema.Table{
		Name:       "vehicles",
		Columns:    VehiclesColumns,
		PrimaryKey: []*schema.Column{VehiclesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vehicle_placa",
				Unique:  true,
				Columns: []*schema.Column{VehiclesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		GeneratedFormsTable,
		PersonsTable,
		VehiclesTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	GeneratedFormsTable.ForeignKeys[0].RefTable = DocumentsTable
	GeneratedFormsTable.Annotation = &entsql.Annotation{
		Table: "generated_forms",
	}
	PersonsTable.Annotation = &entsql.Annotation{
		Table: "persons",
	}
	VehiclesTable.Annotation = &entsql.Annotation{
		Table: "vehicles",
	}
}
