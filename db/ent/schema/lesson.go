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

type Lesson struct{ ent.Schema }

func (Lesson) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lessons"},
	}
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("course_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.Int("duration_minutes").Default(constants.DefaultLessonDurationMinutes).Min(0),
		field.String("content").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("video_url").Optional().Nillable(),
		field.JSON("resources", []string{}).Optional(),
		field.Int("sort_order").Default(0),
		field.String("status").Default(constants.LessonStatusActive),
		field.String("tutor_instruction").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("tutor_prompt").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("quiz_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.QuizTypes()...)),
		field.String("question").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("answers", []string{}).Optional(),
		field.Int("correct_answer").Optional().Nillable(),
		field.JSON("correct_answers", []int{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("lessons").
			Field("course_id").
			Unique().
			Required(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "sort_order"),
	}
}
