package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("status").
			Default(string(constants.DocumentStatusPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.String("doc_type").
			Default(constants.DocTypeUnknown).
			Validate(utils.EnumValidator(constants.DocTypes...)),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
		field.String("extraction_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// CanonicalExtraction payload; present whenever status=completed.
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY generated forms
		edge.To("forms", GeneratedForm.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "content_hash").Unique(),
		index.Fields("owner_id", "uploaded_at"),
		index.Fields("owner_id", "status"),
	}
}
