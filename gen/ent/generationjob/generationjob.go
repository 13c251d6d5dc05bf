// Code generated by ent, DO NOT EDIT.

package generationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the generationjob type in the database.
	Label = "generation_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCourseName holds the string denoting the course_name field in the database.
	FieldCourseName = "course_name"
	// FieldCourseDescription holds the string denoting the course_description field in the database.
	FieldCourseDescription = "course_description"
	// FieldDifficultyLevel holds the string denoting the difficulty_level field in the database.
	FieldDifficultyLevel = "difficulty_level"
	// FieldLessonCount holds the string denoting the lesson_count field in the database.
	FieldLessonCount = "lesson_count"
	// FieldIncludeQuiz holds the string denoting the include_quiz field in the database.
	FieldIncludeQuiz = "include_quiz"
	// FieldIncludeAiTutor holds the string denoting the include_ai_tutor field in the database.
	FieldIncludeAiTutor = "include_ai_tutor"
	// FieldIncludeVideoLinks holds the string denoting the include_video_links field in the database.
	FieldIncludeVideoLinks = "include_video_links"
	// FieldRequesterID holds the string denoting the requester_id field in the database.
	FieldRequesterID = "requester_id"
	// FieldOrganizationDomain holds the string denoting the organization_domain field in the database.
	FieldOrganizationDomain = "organization_domain"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgressPercent holds the string denoting the progress_percent field in the database.
	FieldProgressPercent = "progress_percent"
	// FieldProgressMessage holds the string denoting the progress_message field in the database.
	FieldProgressMessage = "progress_message"
	// FieldGeneratedPayload holds the string denoting the generated_payload field in the database.
	FieldGeneratedPayload = "generated_payload"
	// FieldResultCourseID holds the string denoting the result_course_id field in the database.
	FieldResultCourseID = "result_course_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the generationjob in the database.
	Table = "generation_job"
)

// Columns holds all SQL columns for generationjob fields.
var Columns = []string{
	FieldID,
	FieldCourseName,
	FieldCourseDescription,
	FieldDifficultyLevel,
	FieldLessonCount,
	FieldIncludeQuiz,
	FieldIncludeAiTutor,
	FieldIncludeVideoLinks,
	FieldRequesterID,
	FieldOrganizationDomain,
	FieldStatus,
	FieldProgressPercent,
	FieldProgressMessage,
	FieldGeneratedPayload,
	FieldResultCourseID,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CourseNameValidator is a validator for the "course_name" field. It is called by the builders before save.
	CourseNameValidator func(string) error
	// DefaultDifficultyLevel holds the default value on creation for the "difficulty_level" field.
	DefaultDifficultyLevel string
	// DifficultyLevelValidator is a validator for the "difficulty_level" field. It is called by the builders before save.
	DifficultyLevelValidator func(string) error
	// LessonCountValidator is a validator for the "lesson_count" field. It is called by the builders before save.
	LessonCountValidator func(int) error
	// DefaultIncludeQuiz holds the default value on creation for the "include_quiz" field.
	DefaultIncludeQuiz bool
	// DefaultIncludeAiTutor holds the default value on creation for the "include_ai_tutor" field.
	DefaultIncludeAiTutor bool
	// DefaultIncludeVideoLinks holds the default value on creation for the "include_video_links" field.
	DefaultIncludeVideoLinks bool
	// DefaultOrganizationDomain holds the default value on creation for the "organization_domain" field.
	DefaultOrganizationDomain string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultProgressPercent holds the default value on creation for the "progress_percent" field.
	DefaultProgressPercent int
	// ProgressPercentValidator is a validator for the "progress_percent" field. It is called by the builders before save.
	ProgressPercentValidator func(int) error
	// DefaultProgressMessage holds the default value on creation for the "progress_message" field.
	DefaultProgressMessage string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GenerationJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCourseName orders the results by the course_name field.
func ByCourseName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseName, opts...).ToFunc()
}

// ByCourseDescription orders the results by the course_description field.
func ByCourseDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseDescription, opts...).ToFunc()
}

// ByDifficultyLevel orders the results by the difficulty_level field.
func ByDifficultyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLevel, opts...).ToFunc()
}

// ByLessonCount orders the results by the lesson_count field.
func ByLessonCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonCount, opts...).ToFunc()
}

// ByIncludeQuiz orders the results by the include_quiz field.
func ByIncludeQuiz(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncludeQuiz, opts...).ToFunc()
}

// ByIncludeAiTutor orders the results by the include_ai_tutor field.
func ByIncludeAiTutor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncludeAiTutor, opts...).ToFunc()
}

// ByIncludeVideoLinks orders the results by the include_video_links field.
func ByIncludeVideoLinks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncludeVideoLinks, opts...).ToFunc()
}

// ByRequesterID orders the results by the requester_id field.
func ByRequesterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterID, opts...).ToFunc()
}

// ByOrganizationDomain orders the results by the organization_domain field.
func ByOrganizationDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationDomain, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgressPercent orders the results by the progress_percent field.
func ByProgressPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercent, opts...).ToFunc()
}

// ByProgressMessage orders the results by the progress_message field.
func ByProgressMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressMessage, opts...).ToFunc()
}

// ByResultCourseID orders the results by the result_course_id field.
func ByResultCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultCourseID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
