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

// CourseEditor grants a user edit rights on a course. The importer creates
// one row for the requester alongside the course itself.
type CourseEditor struct{ ent.Schema }

func (CourseEditor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "course_editors"},
	}
}

func (CourseEditor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("course_id", uuid.UUID{}),
		field.UUID("user_id", uuid.UUID{}),
		field.String("role").Default("editor"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (CourseEditor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("editors").
			Field("course_id").
			Unique().
			Required(),
	}
}

func (CourseEditor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "user_id").Unique(),
	}
}
