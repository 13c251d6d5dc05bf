// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppSettingsColumns holds the columns for the "app_settings" table.
	AppSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AppSettingsTable holds the schema information for the "app_settings" table.
	AppSettingsTable = &schema.Table{
		Name:       "app_settings",
		Columns:    AppSettingsColumns,
		PrimaryKey: []*schema.Column{AppSettingsColumns[0]},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "difficulty", Type: field.TypeString, Default: "beginner"},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 0},
		{Name: "prerequisites", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "image", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "inactive"},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "author_id", Type: field.TypeUUID},
		{Name: "organization_domain", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_organization_domain_status",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[12], CoursesColumns[8]},
			},
			{
				Name:    "course_sort_order",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[9]},
			},
		},
	}
	// CourseEditorsColumns holds the columns for the "course_editors" table.
	CourseEditorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeString, Default: "editor"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeUUID},
	}
	// CourseEditorsTable holds the schema information for the "course_editors" table.
	CourseEditorsTable = &schema.Table{
		Name:       "course_editors",
		Columns:    CourseEditorsColumns,
		PrimaryKey: []*schema.Column{CourseEditorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "course_editors_courses_editors",
				Columns:    []*schema.Column{CourseEditorsColumns[4]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "courseeditor_course_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{CourseEditorsColumns[4], CourseEditorsColumns[1]},
			},
		},
	}
	// GenerationJobColumns holds the columns for the "generation_job" table.
	GenerationJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "course_name", Type: field.TypeString},
		{Name: "course_description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "difficulty_level", Type: field.TypeString, Default: "beginner"},
		{Name: "lesson_count", Type: field.TypeInt},
		{Name: "include_quiz", Type: field.TypeBool, Default: false},
		{Name: "include_ai_tutor", Type: field.TypeBool, Default: false},
		{Name: "include_video_links", Type: field.TypeBool, Default: false},
		{Name: "requester_id", Type: field.TypeUUID},
		{Name: "organization_domain", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "progress_percent", Type: field.TypeInt, Default: 0},
		{Name: "progress_message", Type: field.TypeString, Default: ""},
		{Name: "generated_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "result_course_id", Type: field.TypeUUID, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// GenerationJobTable holds the schema information for the "generation_job" table.
	GenerationJobTable = &schema.Table{
		Name:       "generation_job",
		Columns:    GenerationJobColumns,
		PrimaryKey: []*schema.Column{GenerationJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{GenerationJobColumns[10], GenerationJobColumns[16]},
			},
			{
				Name:    "generationjob_requester_id",
				Unique:  false,
				Columns: []*schema.Column{GenerationJobColumns[8]},
			},
			{
				Name:    "generationjob_organization_domain",
				Unique:  false,
				Columns: []*schema.Column{GenerationJobColumns[9]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 5},
		{Name: "content", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "video_url", Type: field.TypeString, Nullable: true},
		{Name: "resources", Type: field.TypeJSON, Nullable: true},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "tutor_instruction", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "tutor_prompt", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "quiz_type", Type: field.TypeString, Nullable: true},
		{Name: "question", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_answer", Type: field.TypeInt, Nullable: true},
		{Name: "correct_answers", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeUUID},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_courses_lessons",
				Columns:    []*schema.Column{LessonsColumns[16]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_course_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[16], LessonsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppSettingsTable,
		CoursesTable,
		CourseEditorsTable,
		GenerationJobTable,
		LessonsTable,
	}
)

func init() {
	AppSettingsTable.Annotation = &entsql.Annotation{
		Table: "app_settings",
	}
	CoursesTable.Annotation = &entsql.Annotation{
		Table: "courses",
	}
	CourseEditorsTable.ForeignKeys[0].RefTable = CoursesTable
	CourseEditorsTable.Annotation = &entsql.Annotation{
		Table: "course_editors",
	}
	GenerationJobTable.Annotation = &entsql.Annotation{
		Table: "generation_job",
	}
	LessonsTable.ForeignKeys[0].RefTable = CoursesTable
	LessonsTable.Annotation = &entsql.Annotation{
		Table: "lessons",
	}
}
