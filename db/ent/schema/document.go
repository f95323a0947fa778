package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Document struct {
	ent.Schema
}

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
		field.String("filename").NotEmpty(),
		field.String("source_path").NotEmpty(),
		// "sha256:<hex>"; the identity key for idempotent reprocessing
		field.String("file_hash").NotEmpty().Unique(),
		field.Int("pages").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY runs
		edge.To("runs", ExtractionRun.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("filename"),
		index.Fields("created_at"),
	}
}
