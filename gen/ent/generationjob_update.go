// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/amara-obi/course-gen/gen/ent/generationjob"
	"github.com/amara-obi/course-gen/gen/ent/predicate"
	"github.com/google/uuid"
)

// GenerationJobUpdate is the builder for updating GenerationJob entities.
type GenerationJobUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationJobMutation
}

// Where appends a list predicates to the GenerationJobUpdate builder.
func (_u *GenerationJobUpdate) Where(ps ...predicate.GenerationJob) *GenerationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseName sets the "course_name" field.
func (_u *GenerationJobUpdate) SetCourseName(v string) *GenerationJobUpdate {
	_u.mutation.SetCourseName(v)
	return _u
}

// SetNillableCourseName sets the "course_name" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableCourseName(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetCourseName(*v)
	}
	return _u
}

// SetCourseDescription sets the "course_description" field.
func (_u *GenerationJobUpdate) SetCourseDescription(v string) *GenerationJobUpdate {
	_u.mutation.SetCourseDescription(v)
	return _u
}

// SetNillableCourseDescription sets the "course_description" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableCourseDescription(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetCourseDescription(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *GenerationJobUpdate) SetDifficultyLevel(v string) *GenerationJobUpdate {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableDifficultyLevel(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// SetLessonCount sets the "lesson_count" field.
func (_u *GenerationJobUpdate) SetLessonCount(v int) *GenerationJobUpdate {
	_u.mutation.ResetLessonCount()
	_u.mutation.SetLessonCount(v)
	return _u
}

// SetNillableLessonCount sets the "lesson_count" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableLessonCount(v *int) *GenerationJobUpdate {
	if v != nil {
		_u.SetLessonCount(*v)
	}
	return _u
}

// AddLessonCount adds value to the "lesson_count" field.
func (_u *GenerationJobUpdate) AddLessonCount(v int) *GenerationJobUpdate {
	_u.mutation.AddLessonCount(v)
	return _u
}

// SetIncludeQuiz sets the "include_quiz" field.
func (_u *GenerationJobUpdate) SetIncludeQuiz(v bool) *GenerationJobUpdate {
	_u.mutation.SetIncludeQuiz(v)
	return _u
}

// SetNillableIncludeQuiz sets the "include_quiz" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableIncludeQuiz(v *bool) *GenerationJobUpdate {
	if v != nil {
		_u.SetIncludeQuiz(*v)
	}
	return _u
}

// SetIncludeAiTutor sets the "include_ai_tutor" field.
func (_u *GenerationJobUpdate) SetIncludeAiTutor(v bool) *GenerationJobUpdate {
	_u.mutation.SetIncludeAiTutor(v)
	return _u
}

// SetNillableIncludeAiTutor sets the "include_ai_tutor" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableIncludeAiTutor(v *bool) *GenerationJobUpdate {
	if v != nil {
		_u.SetIncludeAiTutor(*v)
	}
	return _u
}

// SetIncludeVideoLinks sets the "include_video_links" field.
func (_u *GenerationJobUpdate) SetIncludeVideoLinks(v bool) *GenerationJobUpdate {
	_u.mutation.SetIncludeVideoLinks(v)
	return _u
}

// SetNillableIncludeVideoLinks sets the "include_video_links" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableIncludeVideoLinks(v *bool) *GenerationJobUpdate {
	if v != nil {
		_u.SetIncludeVideoLinks(*v)
	}
	return _u
}

// SetRequesterID sets the "requester_id" field.
func (_u *GenerationJobUpdate) SetRequesterID(v uuid.UUID) *GenerationJobUpdate {
	_u.mutation.SetRequesterID(v)
	return _u
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableRequesterID(v *uuid.UUID) *GenerationJobUpdate {
	if v != nil {
		_u.SetRequesterID(*v)
	}
	return _u
}

// SetOrganizationDomain sets the "organization_domain" field.
func (_u *GenerationJobUpdate) SetOrganizationDomain(v string) *GenerationJobUpdate {
	_u.mutation.SetOrganizationDomain(v)
	return _u
}

// SetNillableOrganizationDomain sets the "organization_domain" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableOrganizationDomain(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetOrganizationDomain(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationJobUpdate) SetStatus(v string) *GenerationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableStatus(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *GenerationJobUpdate) SetProgressPercent(v int) *GenerationJobUpdate {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableProgressPercent(v *int) *GenerationJobUpdate {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *GenerationJobUpdate) AddProgressPercent(v int) *GenerationJobUpdate {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetProgressMessage sets the "progress_message" field.
func (_u *GenerationJobUpdate) SetProgressMessage(v string) *GenerationJobUpdate {
	_u.mutation.SetProgressMessage(v)
	return _u
}

// SetNillableProgressMessage sets the "progress_message" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableProgressMessage(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetProgressMessage(*v)
	}
	return _u
}

// SetGeneratedPayload sets the "generated_payload" field.
func (_u *GenerationJobUpdate) SetGeneratedPayload(v json.RawMessage) *GenerationJobUpdate {
	_u.mutation.SetGeneratedPayload(v)
	return _u
}

// AppendGeneratedPayload appends value to the "generated_payload" field.
func (_u *GenerationJobUpdate) AppendGeneratedPayload(v json.RawMessage) *GenerationJobUpdate {
	_u.mutation.AppendGeneratedPayload(v)
	return _u
}

// ClearGeneratedPayload clears the value of the "generated_payload" field.
func (_u *GenerationJobUpdate) ClearGeneratedPayload() *GenerationJobUpdate {
	_u.mutation.ClearGeneratedPayload()
	return _u
}

// SetResultCourseID sets the "result_course_id" field.
func (_u *GenerationJobUpdate) SetResultCourseID(v uuid.UUID) *GenerationJobUpdate {
	_u.mutation.SetResultCourseID(v)
	return _u
}

// SetNillableResultCourseID sets the "result_course_id" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableResultCourseID(v *uuid.UUID) *GenerationJobUpdate {
	if v != nil {
		_u.SetResultCourseID(*v)
	}
	return _u
}

// ClearResultCourseID clears the value of the "result_course_id" field.
func (_u *GenerationJobUpdate) ClearResultCourseID() *GenerationJobUpdate {
	_u.mutation.ClearResultCourseID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationJobUpdate) SetErrorMessage(v string) *GenerationJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableErrorMessage(v *string) *GenerationJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenerationJobUpdate) ClearErrorMessage() *GenerationJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GenerationJobUpdate) SetStartedAt(v time.Time) *GenerationJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableStartedAt(v *time.Time) *GenerationJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GenerationJobUpdate) ClearStartedAt() *GenerationJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GenerationJobUpdate) SetCompletedAt(v time.Time) *GenerationJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GenerationJobUpdate) SetNillableCompletedAt(v *time.Time) *GenerationJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GenerationJobUpdate) ClearCompletedAt() *GenerationJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the GenerationJobMutation object of the builder.
func (_u *GenerationJobUpdate) Mutation() *GenerationJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationJobUpdate) check() error {
	if v, ok := _u.mutation.CourseName(); ok {
		if err := generationjob.CourseNameValidator(v); err != nil {
			return &ValidationError{Name: "course_name", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.course_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyLevel(); ok {
		if err := generationjob.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.difficulty_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonCount(); ok {
		if err := generationjob.LessonCountValidator(v); err != nil {
			return &ValidationError{Name: "lesson_count", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.lesson_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressPercent(); ok {
		if err := generationjob.ProgressPercentValidator(v); err != nil {
			return &ValidationError{Name: "progress_percent", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.progress_percent": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationjob.Table, generationjob.Columns, sqlgraph.NewFieldSpec(generationjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseName(); ok {
		_spec.SetField(generationjob.FieldCourseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseDescription(); ok {
		_spec.SetField(generationjob.FieldCourseDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(generationjob.FieldDifficultyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonCount(); ok {
		_spec.SetField(generationjob.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonCount(); ok {
		_spec.AddField(generationjob.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncludeQuiz(); ok {
		_spec.SetField(generationjob.FieldIncludeQuiz, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IncludeAiTutor(); ok {
		_spec.SetField(generationjob.FieldIncludeAiTutor, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IncludeVideoLinks(); ok {
		_spec.SetField(generationjob.FieldIncludeVideoLinks, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequesterID(); ok {
		_spec.SetField(generationjob.FieldRequesterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrganizationDomain(); ok {
		_spec.SetField(generationjob.FieldOrganizationDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(generationjob.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(generationjob.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressMessage(); ok {
		_spec.SetField(generationjob.FieldProgressMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedPayload(); ok {
		_spec.SetField(generationjob.FieldGeneratedPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generationjob.FieldGeneratedPayload, value)
		})
	}
	if _u.mutation.GeneratedPayloadCleared() {
		_spec.ClearField(generationjob.FieldGeneratedPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultCourseID(); ok {
		_spec.SetField(generationjob.FieldResultCourseID, field.TypeUUID, value)
	}
	if _u.mutation.ResultCourseIDCleared() {
		_spec.ClearField(generationjob.FieldResultCourseID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(generationjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(generationjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(generationjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(generationjob.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationJobUpdateOne is the builder for updating a single GenerationJob entity.
type GenerationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationJobMutation
}

// SetCourseName sets the "course_name" field.
func (_u *GenerationJobUpdateOne) SetCourseName(v string) *GenerationJobUpdateOne {
	_u.mutation.SetCourseName(v)
	return _u
}

// SetNillableCourseName sets the "course_name" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableCourseName(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetCourseName(*v)
	}
	return _u
}

// SetCourseDescription sets the "course_description" field.
func (_u *GenerationJobUpdateOne) SetCourseDescription(v string) *GenerationJobUpdateOne {
	_u.mutation.SetCourseDescription(v)
	return _u
}

// SetNillableCourseDescription sets the "course_description" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableCourseDescription(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetCourseDescription(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *GenerationJobUpdateOne) SetDifficultyLevel(v string) *GenerationJobUpdateOne {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableDifficultyLevel(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// SetLessonCount sets the "lesson_count" field.
func (_u *GenerationJobUpdateOne) SetLessonCount(v int) *GenerationJobUpdateOne {
	_u.mutation.ResetLessonCount()
	_u.mutation.SetLessonCount(v)
	return _u
}

// SetNillableLessonCount sets the "lesson_count" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableLessonCount(v *int) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetLessonCount(*v)
	}
	return _u
}

// AddLessonCount adds value to the "lesson_count" field.
func (_u *GenerationJobUpdateOne) AddLessonCount(v int) *GenerationJobUpdateOne {
	_u.mutation.AddLessonCount(v)
	return _u
}

// SetIncludeQuiz sets the "include_quiz" field.
func (_u *GenerationJobUpdateOne) SetIncludeQuiz(v bool) *GenerationJobUpdateOne {
	_u.mutation.SetIncludeQuiz(v)
	return _u
}

// SetNillableIncludeQuiz sets the "include_quiz" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableIncludeQuiz(v *bool) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetIncludeQuiz(*v)
	}
	return _u
}

// SetIncludeAiTutor sets the "include_ai_tutor" field.
func (_u *GenerationJobUpdateOne) SetIncludeAiTutor(v bool) *GenerationJobUpdateOne {
	_u.mutation.SetIncludeAiTutor(v)
	return _u
}

// SetNillableIncludeAiTutor sets the "include_ai_tutor" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableIncludeAiTutor(v *bool) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetIncludeAiTutor(*v)
	}
	return _u
}

// SetIncludeVideoLinks sets the "include_video_links" field.
func (_u *GenerationJobUpdateOne) SetIncludeVideoLinks(v bool) *GenerationJobUpdateOne {
	_u.mutation.SetIncludeVideoLinks(v)
	return _u
}

// SetNillableIncludeVideoLinks sets the "include_video_links" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableIncludeVideoLinks(v *bool) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetIncludeVideoLinks(*v)
	}
	return _u
}

// SetRequesterID sets the "requester_id" field.
func (_u *GenerationJobUpdateOne) SetRequesterID(v uuid.UUID) *GenerationJobUpdateOne {
	_u.mutation.SetRequesterID(v)
	return _u
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableRequesterID(v *uuid.UUID) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetRequesterID(*v)
	}
	return _u
}

// SetOrganizationDomain sets the "organization_domain" field.
func (_u *GenerationJobUpdateOne) SetOrganizationDomain(v string) *GenerationJobUpdateOne {
	_u.mutation.SetOrganizationDomain(v)
	return _u
}

// SetNillableOrganizationDomain sets the "organization_domain" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableOrganizationDomain(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetOrganizationDomain(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationJobUpdateOne) SetStatus(v string) *GenerationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableStatus(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *GenerationJobUpdateOne) SetProgressPercent(v int) *GenerationJobUpdateOne {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableProgressPercent(v *int) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *GenerationJobUpdateOne) AddProgressPercent(v int) *GenerationJobUpdateOne {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetProgressMessage sets the "progress_message" field.
func (_u *GenerationJobUpdateOne) SetProgressMessage(v string) *GenerationJobUpdateOne {
	_u.mutation.SetProgressMessage(v)
	return _u
}

// SetNillableProgressMessage sets the "progress_message" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableProgressMessage(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetProgressMessage(*v)
	}
	return _u
}

// SetGeneratedPayload sets the "generated_payload" field.
func (_u *GenerationJobUpdateOne) SetGeneratedPayload(v json.RawMessage) *GenerationJobUpdateOne {
	_u.mutation.SetGeneratedPayload(v)
	return _u
}

// AppendGeneratedPayload appends value to the "generated_payload" field.
func (_u *GenerationJobUpdateOne) AppendGeneratedPayload(v json.RawMessage) *GenerationJobUpdateOne {
	_u.mutation.AppendGeneratedPayload(v)
	return _u
}

// ClearGeneratedPayload clears the value of the "generated_payload" field.
func (_u *GenerationJobUpdateOne) ClearGeneratedPayload() *GenerationJobUpdateOne {
	_u.mutation.ClearGeneratedPayload()
	return _u
}

// SetResultCourseID sets the "result_course_id" field.
func (_u *GenerationJobUpdateOne) SetResultCourseID(v uuid.UUID) *GenerationJobUpdateOne {
	_u.mutation.SetResultCourseID(v)
	return _u
}

// SetNillableResultCourseID sets the "result_course_id" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableResultCourseID(v *uuid.UUID) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetResultCourseID(*v)
	}
	return _u
}

// ClearResultCourseID clears the value of the "result_course_id" field.
func (_u *GenerationJobUpdateOne) ClearResultCourseID() *GenerationJobUpdateOne {
	_u.mutation.ClearResultCourseID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationJobUpdateOne) SetErrorMessage(v string) *GenerationJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableErrorMessage(v *string) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenerationJobUpdateOne) ClearErrorMessage() *GenerationJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GenerationJobUpdateOne) SetStartedAt(v time.Time) *GenerationJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableStartedAt(v *time.Time) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GenerationJobUpdateOne) ClearStartedAt() *GenerationJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GenerationJobUpdateOne) SetCompletedAt(v time.Time) *GenerationJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GenerationJobUpdateOne) SetNillableCompletedAt(v *time.Time) *GenerationJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GenerationJobUpdateOne) ClearCompletedAt() *GenerationJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the GenerationJobMutation object of the builder.
func (_u *GenerationJobUpdateOne) Mutation() *GenerationJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationJobUpdate builder.
func (_u *GenerationJobUpdateOne) Where(ps ...predicate.GenerationJob) *GenerationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationJobUpdateOne) Select(field string, fields ...string) *GenerationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationJob entity.
func (_u *GenerationJobUpdateOne) Save(ctx context.Context) (*GenerationJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationJobUpdateOne) SaveX(ctx context.Context) *GenerationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationJobUpdateOne) check() error {
	if v, ok := _u.mutation.CourseName(); ok {
		if err := generationjob.CourseNameValidator(v); err != nil {
			return &ValidationError{Name: "course_name", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.course_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyLevel(); ok {
		if err := generationjob.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.difficulty_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonCount(); ok {
		if err := generationjob.LessonCountValidator(v); err != nil {
			return &ValidationError{Name: "lesson_count", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.lesson_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressPercent(); ok {
		if err := generationjob.ProgressPercentValidator(v); err != nil {
			return &ValidationError{Name: "progress_percent", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.progress_percent": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationJobUpdateOne) sqlSave(ctx context.Context) (_node *GenerationJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationjob.Table, generationjob.Columns, sqlgraph.NewFieldSpec(generationjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationjob.FieldID)
		for _, f := range fields {
			if !generationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseName(); ok {
		_spec.SetField(generationjob.FieldCourseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseDescription(); ok {
		_spec.SetField(generationjob.FieldCourseDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(generationjob.FieldDifficultyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonCount(); ok {
		_spec.SetField(generationjob.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonCount(); ok {
		_spec.AddField(generationjob.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncludeQuiz(); ok {
		_spec.SetField(generationjob.FieldIncludeQuiz, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IncludeAiTutor(); ok {
		_spec.SetField(generationjob.FieldIncludeAiTutor, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IncludeVideoLinks(); ok {
		_spec.SetField(generationjob.FieldIncludeVideoLinks, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequesterID(); ok {
		_spec.SetField(generationjob.FieldRequesterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrganizationDomain(); ok {
		_spec.SetField(generationjob.FieldOrganizationDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(generationjob.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(generationjob.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressMessage(); ok {
		_spec.SetField(generationjob.FieldProgressMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedPayload(); ok {
		_spec.SetField(generationjob.FieldGeneratedPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generationjob.FieldGeneratedPayload, value)
		})
	}
	if _u.mutation.GeneratedPayloadCleared() {
		_spec.ClearField(generationjob.FieldGeneratedPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultCourseID(); ok {
		_spec.SetField(generationjob.FieldResultCourseID, field.TypeUUID, value)
	}
	if _u.mutation.ResultCourseIDCleared() {
		_spec.ClearField(generationjob.FieldResultCourseID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(generationjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(generationjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(generationjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(generationjob.FieldCompletedAt, field.TypeTime)
	}
	_node = &GenerationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
