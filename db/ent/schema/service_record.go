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

type ServiceRecord struct{ ent.Schema }

func (ServiceRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "service_records"},
	}
}

func (ServiceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// the history key, e.g. "2021-06-01" or "2021-06-01-2"
		field.String("record_id").NotEmpty().Unique(),
		field.String("service_date").NotEmpty(),
		field.String("company").Optional(),
		field.Float("amount").Default(0),
		field.Float("vat_amount").Optional().Nillable(),
		field.String("invoice_number").Optional().Nillable(),
		field.Int("odometer_km").Optional().Nillable(),
		field.JSON("work_descriptions", []string{}).Optional(),
		field.String("source_stem").NotEmpty().Unique(),
		field.Bool("overridden").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (ServiceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("service_date"),
		index.Fields("company"),
	}
}
