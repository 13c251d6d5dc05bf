package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/amara-obi/course-gen/constants"
	"github.com/amara-obi/course-gen/db/ent/schema/utils"
)

type GenerationJob struct{ ent.Schema }

func (GenerationJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "generation_job"},
	}
}

func (GenerationJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("course_name").NotEmpty(),
		field.String("course_description").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("difficulty_level").
			Default(string(constants.Beginner)).
			Validate(utils.EnumValidator(constants.Difficulties()...)),
		field.Int("lesson_count").Positive(),
		field.Bool("include_quiz").Default(false),
		field.Bool("include_ai_tutor").Default(false),
		field.Bool("include_video_links").Default(false),
		field.UUID("requester_id", uuid.UUID{}),
		field.String("organization_domain").Default(""),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("progress_percent").Default(0).Min(0).Max(100),
		field.String("progress_message").Default(""),
		field.JSON("generated_payload", json.RawMessage{}).Optional(),
		field.UUID("result_course_id", uuid.UUID{}).Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (GenerationJob) Indexes() []ent.Index {
	return []ent.Index{
		// claim query: oldest pending first
		index.Fields("status", "created_at"),
		index.Fields("requester_id"),
		index.Fields("organization_domain"),
	}
}
