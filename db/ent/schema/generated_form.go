package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/db/ent/schema/utils"
	"github.com/google/uuid"
)

// GeneratedForm records one successful render: which document it came
// from, which form type, and where the output PDF landed. Rows are only
// written after the file exists on disk.
type GeneratedForm struct{ ent.Schema }

func (GeneratedForm) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "generated_forms"},
	}
}

func (GeneratedForm) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}),
		// explicit FK; edge below binds it
		field.UUID("document_id", uuid.UUID{}),
		field.String("form_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FormTypes...)),
		field.String("output_path").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (GeneratedForm) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY forms -> ONE document (FK: generated_forms.document_id)
		edge.From("document", Document.Type).
			Ref("forms").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (GeneratedForm) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("document_id"),
	}
}
