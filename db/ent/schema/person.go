package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/db/ent/schema/utils"
	"github.com/google/uuid"
)

// Person is the canonical natural-person entity, keyed by its unique
// national identification number. One row may appear under several
// roles (owner, buyer, seller, mandator) across generated documents.
type Person struct{ ent.Schema }

func (Person) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "persons"},
	}
}

func (Person) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("numero_documento").NotEmpty().MaxLen(20).Unique(),
		field.String("tipo_documento").
			Optional().
			Validate(utils.EnumValidator(constants.PersonDocTypes...)),
		field.String("nombre").Default(""),
		field.String("direccion").Default(""),
		field.String("ciudad").Default(""),
		field.String("telefono").Default(""),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Person) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("numero_documento").Unique(),
	}
}
