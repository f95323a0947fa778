package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/db/ent/schema/utils"
)

type ExtractionRun struct{ ent.Schema }

func (ExtractionRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_runs"},
	}
}

func (ExtractionRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.RunStatuses...)),
		field.String("mode").NotEmpty().
			Validate(utils.EnumValidator(constants.PipelineModeValues()...)),
		field.String("pipeline_version").NotEmpty(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.JSON("final_data", json.RawMessage{}).Optional(),
		field.JSON("field_sources", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Int64("total_duration_ms").NonNegative().Default(0),
	}
}

func (ExtractionRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("runs").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ExtractionRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "started_at"),
		index.Fields("status"),
	}
}
