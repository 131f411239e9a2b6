package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Vehicle is the canonical vehicle entity, keyed by its unique plate.
// Attribute names follow the official registration card (Spanish).
type Vehicle struct{ ent.Schema }

func (Vehicle) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vehicles"},
	}
}

func (Vehicle) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("placa").NotEmpty().MaxLen(10).Unique(),
		field.String("marca").Default(""),
		field.String("linea").Default(""),
		field.String("modelo").Default(""),
		field.String("color").Default(""),
		field.String("numero_motor").Default(""),
		field.String("numero_chasis").Default(""),
		field.String("numero_serie").Default(""),
		field.String("vin").Default(""),
		field.String("cilindraje").Default(""),
		field.String("potencia_hp").Default(""),
		field.String("capacidad").Default(""),
		field.String("carroceria").Default(""),
		field.String("clase_vehiculo").Default(""),
		field.String("combustible").Default(""),
		field.String("servicio").Default(""),
		field.String("puertas").Default(""),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vehicle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("placa").Unique(),
	}
}
