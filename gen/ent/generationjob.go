// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amara-obi/course-gen/gen/ent/generationjob"
	"github.com/google/uuid"
)

// GenerationJob is the model entity for the GenerationJob schema.
type GenerationJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CourseName holds the value of the "course_name" field.
	CourseName string `json:"course_name,omitempty"`
	// CourseDescription holds the value of the "course_description" field.
	CourseDescription string `json:"course_description,omitempty"`
	// DifficultyLevel holds the value of the "difficulty_level" field.
	DifficultyLevel string `json:"difficulty_level,omitempty"`
	// LessonCount holds the value of the "lesson_count" field.
	LessonCount int `json:"lesson_count,omitempty"`
	// IncludeQuiz holds the value of the "include_quiz" field.
	IncludeQuiz bool `json:"include_quiz,omitempty"`
	// IncludeAiTutor holds the value of the "include_ai_tutor" field.
	IncludeAiTutor bool `json:"include_ai_tutor,omitempty"`
	// IncludeVideoLinks holds the value of the "include_video_links" field.
	IncludeVideoLinks bool `json:"include_video_links,omitempty"`
	// RequesterID holds the value of the "requester_id" field.
	RequesterID uuid.UUID `json:"requester_id,omitempty"`
	// OrganizationDomain holds the value of the "organization_domain" field.
	OrganizationDomain string `json:"organization_domain,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ProgressPercent holds the value of the "progress_percent" field.
	ProgressPercent int `json:"progress_percent,omitempty"`
	// ProgressMessage holds the value of the "progress_message" field.
	ProgressMessage string `json:"progress_message,omitempty"`
	// GeneratedPayload holds the value of the "generated_payload" field.
	GeneratedPayload json.RawMessage `json:"generated_payload,omitempty"`
	// ResultCourseID holds the value of the "result_course_id" field.
	ResultCourseID *uuid.UUID `json:"result_course_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GenerationJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generationjob.FieldResultCourseID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case generationjob.FieldGeneratedPayload:
			values[i] = new([]byte)
		case generationjob.FieldIncludeQuiz, generationjob.FieldIncludeAiTutor, generationjob.FieldIncludeVideoLinks:
			values[i] = new(sql.NullBool)
		case generationjob.FieldLessonCount, generationjob.FieldProgressPercent:
			values[i] = new(sql.NullInt64)
		case generationjob.FieldCourseName, generationjob.FieldCourseDescription, generationjob.FieldDifficultyLevel, generationjob.FieldOrganizationDomain, generationjob.FieldStatus, generationjob.FieldProgressMessage, generationjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case generationjob.FieldCreatedAt, generationjob.FieldStartedAt, generationjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case generationjob.FieldID, generationjob.FieldRequesterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GenerationJob fields.
func (_m *GenerationJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generationjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case generationjob.FieldCourseName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_name", values[i])
			} else if value.Valid {
				_m.CourseName = value.String
			}
		case generationjob.FieldCourseDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_description", values[i])
			} else if value.Valid {
				_m.CourseDescription = value.String
			}
		case generationjob.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = value.String
			}
		case generationjob.FieldLessonCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_count", values[i])
			} else if value.Valid {
				_m.LessonCount = int(value.Int64)
			}
		case generationjob.FieldIncludeQuiz:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field include_quiz", values[i])
			} else if value.Valid {
				_m.IncludeQuiz = value.Bool
			}
		case generationjob.FieldIncludeAiTutor:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field include_ai_tutor", values[i])
			} else if value.Valid {
				_m.IncludeAiTutor = value.Bool
			}
		case generationjob.FieldIncludeVideoLinks:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field include_video_links", values[i])
			} else if value.Valid {
				_m.IncludeVideoLinks = value.Bool
			}
		case generationjob.FieldRequesterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field requester_id", values[i])
			} else if value != nil {
				_m.RequesterID = *value
			}
		case generationjob.FieldOrganizationDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_domain", values[i])
			} else if value.Valid {
				_m.OrganizationDomain = value.String
			}
		case generationjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case generationjob.FieldProgressPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percent", values[i])
			} else if value.Valid {
				_m.ProgressPercent = int(value.Int64)
			}
		case generationjob.FieldProgressMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field progress_message", values[i])
			} else if value.Valid {
				_m.ProgressMessage = value.String
			}
		case generationjob.FieldGeneratedPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field generated_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GeneratedPayload); err != nil {
					return fmt.Errorf("unmarshal field generated_payload: %w", err)
				}
			}
		case generationjob.FieldResultCourseID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field result_course_id", values[i])
			} else if value.Valid {
				_m.ResultCourseID = new(uuid.UUID)
				*_m.ResultCourseID = *value.S.(*uuid.UUID)
			}
		case generationjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case generationjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case generationjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case generationjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GenerationJob.
// This includes values selected through modifiers, order, etc.
func (_m *GenerationJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GenerationJob.
// Note that you need to call GenerationJob.Unwrap() before calling this method if this GenerationJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GenerationJob) Update() *GenerationJobUpdateOne {
	return NewGenerationJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GenerationJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GenerationJob) Unwrap() *GenerationJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GenerationJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GenerationJob) String() string {
	var builder strings.Builder
	builder.WriteString("GenerationJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("course_name=")
	builder.WriteString(_m.CourseName)
	builder.WriteString(", ")
	builder.WriteString("course_description=")
	builder.WriteString(_m.CourseDescription)
	builder.WriteString(", ")
	builder.WriteString("difficulty_level=")
	builder.WriteString(_m.DifficultyLevel)
	builder.WriteString(", ")
	builder.WriteString("lesson_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonCount))
	builder.WriteString(", ")
	builder.WriteString("include_quiz=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncludeQuiz))
	builder.WriteString(", ")
	builder.WriteString("include_ai_tutor=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncludeAiTutor))
	builder.WriteString(", ")
	builder.WriteString("include_video_links=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncludeVideoLinks))
	builder.WriteString(", ")
	builder.WriteString("requester_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequesterID))
	builder.WriteString(", ")
	builder.WriteString("organization_domain=")
	builder.WriteString(_m.OrganizationDomain)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("progress_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercent))
	builder.WriteString(", ")
	builder.WriteString("progress_message=")
	builder.WriteString(_m.ProgressMessage)
	builder.WriteString(", ")
	builder.WriteString("generated_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedPayload))
	builder.WriteString(", ")
	if v := _m.ResultCourseID; v != nil {
		builder.WriteString("result_course_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// GenerationJobs is a parsable slice of GenerationJob.
type GenerationJobs []*GenerationJob
