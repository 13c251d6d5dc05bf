package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/amara-obi/course-gen/constants"
	"github.com/amara-obi/course-gen/db/ent/schema/utils"
)

type Course struct{ ent.Schema }

func (Course) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "courses"},
	}
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("title").NotEmpty(),
		field.String("description").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("difficulty").
			Default(string(constants.Beginner)).
			Validate(utils.EnumValidator(constants.Difficulties()...)),
		field.Int("duration_minutes").Default(0).Min(0),
		field.String("prerequisites").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("tags", []string{}).Optional(),
		field.String("image").Optional().Nillable(),
		field.String("status").Default(constants.CourseStatusInactive),
		field.Int("sort_order").Default(0),
		field.Bool("featured").Default(false),
		field.UUID("author_id", uuid.UUID{}),
		field.String("organization_domain").Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("lessons", Lesson.Type),
		edge.To("editors", CourseEditor.Type),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_domain", "status"),
		index.Fields("sort_order"),
	}
}
