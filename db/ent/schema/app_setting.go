package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// AppSetting is a key/value row for operator-tunable configuration,
// e.g. the course prompt template override.
type AppSetting struct{ ent.Schema }

func (AppSetting) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "app_settings"},
	}
}

func (AppSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").NotEmpty().Unique(),
		field.String("value").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
