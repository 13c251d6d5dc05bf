// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amara-obi/course-gen/gen/ent/generationjob"
	"github.com/google/uuid"
)

// GenerationJobCreate is the builder for creating a GenerationJob entity.
type GenerationJobCreate struct {
	config
	mutation *GenerationJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCourseName sets the "course_name" field.
func (_c *GenerationJobCreate) SetCourseName(v string) *GenerationJobCreate {
	_c.mutation.SetCourseName(v)
	return _c
}

// SetCourseDescription sets the "course_description" field.
func (_c *GenerationJobCreate) SetCourseDescription(v string) *GenerationJobCreate {
	_c.mutation.SetCourseDescription(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *GenerationJobCreate) SetDifficultyLevel(v string) *GenerationJobCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableDifficultyLevel(v *string) *GenerationJobCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetLessonCount sets the "lesson_count" field.
func (_c *GenerationJobCreate) SetLessonCount(v int) *GenerationJobCreate {
	_c.mutation.SetLessonCount(v)
	return _c
}

// SetIncludeQuiz sets the "include_quiz" field.
func (_c *GenerationJobCreate) SetIncludeQuiz(v bool) *GenerationJobCreate {
	_c.mutation.SetIncludeQuiz(v)
	return _c
}

// SetNillableIncludeQuiz sets the "include_quiz" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableIncludeQuiz(v *bool) *GenerationJobCreate {
	if v != nil {
		_c.SetIncludeQuiz(*v)
	}
	return _c
}

// SetIncludeAiTutor sets the "include_ai_tutor" field.
func (_c *GenerationJobCreate) SetIncludeAiTutor(v bool) *GenerationJobCreate {
	_c.mutation.SetIncludeAiTutor(v)
	return _c
}

// SetNillableIncludeAiTutor sets the "include_ai_tutor" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableIncludeAiTutor(v *bool) *GenerationJobCreate {
	if v != nil {
		_c.SetIncludeAiTutor(*v)
	}
	return _c
}

// SetIncludeVideoLinks sets the "include_video_links" field.
func (_c *GenerationJobCreate) SetIncludeVideoLinks(v bool) *GenerationJobCreate {
	_c.mutation.SetIncludeVideoLinks(v)
	return _c
}

// SetNillableIncludeVideoLinks sets the "include_video_links" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableIncludeVideoLinks(v *bool) *GenerationJobCreate {
	if v != nil {
		_c.SetIncludeVideoLinks(*v)
	}
	return _c
}

// SetRequesterID sets the "requester_id" field.
func (_c *GenerationJobCreate) SetRequesterID(v uuid.UUID) *GenerationJobCreate {
	_c.mutation.SetRequesterID(v)
	return _c
}

// SetOrganizationDomain sets the "organization_domain" field.
func (_c *GenerationJobCreate) SetOrganizationDomain(v string) *GenerationJobCreate {
	_c.mutation.SetOrganizationDomain(v)
	return _c
}

// SetNillableOrganizationDomain sets the "organization_domain" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableOrganizationDomain(v *string) *GenerationJobCreate {
	if v != nil {
		_c.SetOrganizationDomain(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GenerationJobCreate) SetStatus(v string) *GenerationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableStatus(v *string) *GenerationJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgressPercent sets the "progress_percent" field.
func (_c *GenerationJobCreate) SetProgressPercent(v int) *GenerationJobCreate {
	_c.mutation.SetProgressPercent(v)
	return _c
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableProgressPercent(v *int) *GenerationJobCreate {
	if v != nil {
		_c.SetProgressPercent(*v)
	}
	return _c
}

// SetProgressMessage sets the "progress_message" field.
func (_c *GenerationJobCreate) SetProgressMessage(v string) *GenerationJobCreate {
	_c.mutation.SetProgressMessage(v)
	return _c
}

// SetNillableProgressMessage sets the "progress_message" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableProgressMessage(v *string) *GenerationJobCreate {
	if v != nil {
		_c.SetProgressMessage(*v)
	}
	return _c
}

// SetGeneratedPayload sets the "generated_payload" field.
func (_c *GenerationJobCreate) SetGeneratedPayload(v json.RawMessage) *GenerationJobCreate {
	_c.mutation.SetGeneratedPayload(v)
	return _c
}

// SetResultCourseID sets the "result_course_id" field.
func (_c *GenerationJobCreate) SetResultCourseID(v uuid.UUID) *GenerationJobCreate {
	_c.mutation.SetResultCourseID(v)
	return _c
}

// SetNillableResultCourseID sets the "result_course_id" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableResultCourseID(v *uuid.UUID) *GenerationJobCreate {
	if v != nil {
		_c.SetResultCourseID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GenerationJobCreate) SetErrorMessage(v string) *GenerationJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableErrorMessage(v *string) *GenerationJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GenerationJobCreate) SetCreatedAt(v time.Time) *GenerationJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableCreatedAt(v *time.Time) *GenerationJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GenerationJobCreate) SetStartedAt(v time.Time) *GenerationJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableStartedAt(v *time.Time) *GenerationJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *GenerationJobCreate) SetCompletedAt(v time.Time) *GenerationJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableCompletedAt(v *time.Time) *GenerationJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GenerationJobCreate) SetID(v uuid.UUID) *GenerationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GenerationJobCreate) SetNillableID(v *uuid.UUID) *GenerationJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GenerationJobMutation object of the builder.
func (_c *GenerationJobCreate) Mutation() *GenerationJobMutation {
	return _c.mutation
}

// Save creates the GenerationJob in the database.
func (_c *GenerationJobCreate) Save(ctx context.Context) (*GenerationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationJobCreate) SaveX(ctx context.Context) *GenerationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationJobCreate) defaults() {
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := generationjob.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
	if _, ok := _c.mutation.IncludeQuiz(); !ok {
		v := generationjob.DefaultIncludeQuiz
		_c.mutation.SetIncludeQuiz(v)
	}
	if _, ok := _c.mutation.IncludeAiTutor(); !ok {
		v := generationjob.DefaultIncludeAiTutor
		_c.mutation.SetIncludeAiTutor(v)
	}
	if _, ok := _c.mutation.IncludeVideoLinks(); !ok {
		v := generationjob.DefaultIncludeVideoLinks
		_c.mutation.SetIncludeVideoLinks(v)
	}
	if _, ok := _c.mutation.OrganizationDomain(); !ok {
		v := generationjob.DefaultOrganizationDomain
		_c.mutation.SetOrganizationDomain(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := generationjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		v := generationjob.DefaultProgressPercent
		_c.mutation.SetProgressPercent(v)
	}
	if _, ok := _c.mutation.ProgressMessage(); !ok {
		v := generationjob.DefaultProgressMessage
		_c.mutation.SetProgressMessage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generationjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := generationjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationJobCreate) check() error {
	if _, ok := _c.mutation.CourseName(); !ok {
		return &ValidationError{Name: "course_name", err: errors.New(`ent: missing required field "GenerationJob.course_name"`)}
	}
	if v, ok := _c.mutation.CourseName(); ok {
		if err := generationjob.CourseNameValidator(v); err != nil {
			return &ValidationError{Name: "course_name", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.course_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseDescription(); !ok {
		return &ValidationError{Name: "course_description", err: errors.New(`ent: missing required field "GenerationJob.course_description"`)}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "GenerationJob.difficulty_level"`)}
	}
	if v, ok := _c.mutation.DifficultyLevel(); ok {
		if err := generationjob.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.difficulty_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonCount(); !ok {
		return &ValidationError{Name: "lesson_count", err: errors.New(`ent: missing required field "GenerationJob.lesson_count"`)}
	}
	if v, ok := _c.mutation.LessonCount(); ok {
		if err := generationjob.LessonCountValidator(v); err != nil {
			return &ValidationError{Name: "lesson_count", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.lesson_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IncludeQuiz(); !ok {
		return &ValidationError{Name: "include_quiz", err: errors.New(`ent: missing required field "GenerationJob.include_quiz"`)}
	}
	if _, ok := _c.mutation.IncludeAiTutor(); !ok {
		return &ValidationError{Name: "include_ai_tutor", err: errors.New(`ent: missing required field "GenerationJob.include_ai_tutor"`)}
	}
	if _, ok := _c.mutation.IncludeVideoLinks(); !ok {
		return &ValidationError{Name: "include_video_links", err: errors.New(`ent: missing required field "GenerationJob.include_video_links"`)}
	}
	if _, ok := _c.mutation.RequesterID(); !ok {
		return &ValidationError{Name: "requester_id", err: errors.New(`ent: missing required field "GenerationJob.requester_id"`)}
	}
	if _, ok := _c.mutation.OrganizationDomain(); !ok {
		return &ValidationError{Name: "organization_domain", err: errors.New(`ent: missing required field "GenerationJob.organization_domain"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GenerationJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := generationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		return &ValidationError{Name: "progress_percent", err: errors.New(`ent: missing required field "GenerationJob.progress_percent"`)}
	}
	if v, ok := _c.mutation.ProgressPercent(); ok {
		if err := generationjob.ProgressPercentValidator(v); err != nil {
			return &ValidationError{Name: "progress_percent", err: fmt.Errorf(`ent: validator failed for field "GenerationJob.progress_percent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProgressMessage(); !ok {
		return &ValidationError{Name: "progress_message", err: errors.New(`ent: missing required field "GenerationJob.progress_message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GenerationJob.created_at"`)}
	}
	return nil
}

func (_c *GenerationJobCreate) sqlSave(ctx context.Context) (*GenerationJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GenerationJobCreate) createSpec() (*GenerationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationjob.Table, sqlgraph.NewFieldSpec(generationjob.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CourseName(); ok {
		_spec.SetField(generationjob.FieldCourseName, field.TypeString, value)
		_node.CourseName = value
	}
	if value, ok := _c.mutation.CourseDescription(); ok {
		_spec.SetField(generationjob.FieldCourseDescription, field.TypeString, value)
		_node.CourseDescription = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(generationjob.FieldDifficultyLevel, field.TypeString, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.LessonCount(); ok {
		_spec.SetField(generationjob.FieldLessonCount, field.TypeInt, value)
		_node.LessonCount = value
	}
	if value, ok := _c.mutation.IncludeQuiz(); ok {
		_spec.SetField(generationjob.FieldIncludeQuiz, field.TypeBool, value)
		_node.IncludeQuiz = value
	}
	if value, ok := _c.mutation.IncludeAiTutor(); ok {
		_spec.SetField(generationjob.FieldIncludeAiTutor, field.TypeBool, value)
		_node.IncludeAiTutor = value
	}
	if value, ok := _c.mutation.IncludeVideoLinks(); ok {
		_spec.SetField(generationjob.FieldIncludeVideoLinks, field.TypeBool, value)
		_node.IncludeVideoLinks = value
	}
	if value, ok := _c.mutation.RequesterID(); ok {
		_spec.SetField(generationjob.FieldRequesterID, field.TypeUUID, value)
		_node.RequesterID = value
	}
	if value, ok := _c.mutation.OrganizationDomain(); ok {
		_spec.SetField(generationjob.FieldOrganizationDomain, field.TypeString, value)
		_node.OrganizationDomain = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generationjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProgressPercent(); ok {
		_spec.SetField(generationjob.FieldProgressPercent, field.TypeInt, value)
		_node.ProgressPercent = value
	}
	if value, ok := _c.mutation.ProgressMessage(); ok {
		_spec.SetField(generationjob.FieldProgressMessage, field.TypeString, value)
		_node.ProgressMessage = value
	}
	if value, ok := _c.mutation.GeneratedPayload(); ok {
		_spec.SetField(generationjob.FieldGeneratedPayload, field.TypeJSON, value)
		_node.GeneratedPayload = value
	}
	if value, ok := _c.mutation.ResultCourseID(); ok {
		_spec.SetField(generationjob.FieldResultCourseID, field.TypeUUID, value)
		_node.ResultCourseID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(generationjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generationjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(generationjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(generationjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationJob.Create().
//		SetCourseName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationJobUpsert) {
//			SetCourseName(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationJobCreate) OnConflict(opts ...sql.ConflictOption) *GenerationJobUpsertOne {
	_c.conflict = opts
	return &GenerationJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationJobCreate) OnConflictColumns(columns ...string) *GenerationJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationJobUpsertOne{
		create: _c,
	}
}

type (
	// GenerationJobUpsertOne is the builder for "upsert"-ing
	//  one GenerationJob node.
	GenerationJobUpsertOne struct {
		create *GenerationJobCreate
	}

	// GenerationJobUpsert is the "OnConflict" setter.
	GenerationJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetCourseName sets the "course_name" field.
func (u *GenerationJobUpsert) SetCourseName(v string) *GenerationJobUpsert {
	u.Set(generationjob.FieldCourseName, v)
	return u
}

// UpdateCourseName sets the "course_name" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateCourseName() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldCourseName)
	return u
}

// SetCourseDescription sets the "course_description" field.
func (u *GenerationJobUpsert) SetCourseDescription(v string) *GenerationJobUpsert {
	u.Set(generationjob.FieldCourseDescription, v)
	return u
}

// UpdateCourseDescription sets the "course_description" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateCourseDescription() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldCourseDescription)
	return u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *GenerationJobUpsert) SetDifficultyLevel(v string) *GenerationJobUpsert {
	u.Set(generationjob.FieldDifficultyLevel, v)
	return u
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateDifficultyLevel() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldDifficultyLevel)
	return u
}

// SetLessonCount sets the "lesson_count" field.
func (u *GenerationJobUpsert) SetLessonCount(v int) *GenerationJobUpsert {
	u.Set(generationjob.FieldLessonCount, v)
	return u
}

// UpdateLessonCount sets the "lesson_count" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateLessonCount() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldLessonCount)
	return u
}

// AddLessonCount adds v to the "lesson_count" field.
func (u *GenerationJobUpsert) AddLessonCount(v int) *GenerationJobUpsert {
	u.Add(generationjob.FieldLessonCount, v)
	return u
}

// SetIncludeQuiz sets the "include_quiz" field.
func (u *GenerationJobUpsert) SetIncludeQuiz(v bool) *GenerationJobUpsert {
	u.Set(generationjob.FieldIncludeQuiz, v)
	return u
}

// UpdateIncludeQuiz sets the "include_quiz" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateIncludeQuiz() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldIncludeQuiz)
	return u
}

// SetIncludeAiTutor sets the "include_ai_tutor" field.
func (u *GenerationJobUpsert) SetIncludeAiTutor(v bool) *GenerationJobUpsert {
	u.Set(generationjob.FieldIncludeAiTutor, v)
	return u
}

// UpdateIncludeAiTutor sets the "include_ai_tutor" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateIncludeAiTutor() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldIncludeAiTutor)
	return u
}

// SetIncludeVideoLinks sets the "include_video_links" field.
func (u *GenerationJobUpsert) SetIncludeVideoLinks(v bool) *GenerationJobUpsert {
	u.Set(generationjob.FieldIncludeVideoLinks, v)
	return u
}

// UpdateIncludeVideoLinks sets the "include_video_links" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateIncludeVideoLinks() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldIncludeVideoLinks)
	return u
}

// SetRequesterID sets the "requester_id" field.
func (u *GenerationJobUpsert) SetRequesterID(v uuid.UUID) *GenerationJobUpsert {
	u.Set(generationjob.FieldRequesterID, v)
	return u
}

// UpdateRequesterID sets the "requester_id" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateRequesterID() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldRequesterID)
	return u
}

// SetOrganizationDomain sets the "organization_domain" field.
func (u *GenerationJobUpsert) SetOrganizationDomain(v string) *GenerationJobUpsert {
	u.Set(generationjob.FieldOrganizationDomain, v)
	return u
}

// UpdateOrganizationDomain sets the "organization_domain" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateOrganizationDomain() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldOrganizationDomain)
	return u
}

// SetStatus sets the "status" field.
func (u *GenerationJobUpsert) SetStatus(v string) *GenerationJobUpsert {
	u.Set(generationjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateStatus() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldStatus)
	return u
}

// SetProgressPercent sets the "progress_percent" field.
func (u *GenerationJobUpsert) SetProgressPercent(v int) *GenerationJobUpsert {
	u.Set(generationjob.FieldProgressPercent, v)
	return u
}

// UpdateProgressPercent sets the "progress_percent" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateProgressPercent() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldProgressPercent)
	return u
}

// AddProgressPercent adds v to the "progress_percent" field.
func (u *GenerationJobUpsert) AddProgressPercent(v int) *GenerationJobUpsert {
	u.Add(generationjob.FieldProgressPercent, v)
	return u
}

// SetProgressMessage sets the "progress_message" field.
func (u *GenerationJobUpsert) SetProgressMessage(v string) *GenerationJobUpsert {
	u.Set(generationjob.FieldProgressMessage, v)
	return u
}

// UpdateProgressMessage sets the "progress_message" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateProgressMessage() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldProgressMessage)
	return u
}

// SetGeneratedPayload sets the "generated_payload" field.
func (u *GenerationJobUpsert) SetGeneratedPayload(v json.RawMessage) *GenerationJobUpsert {
	u.Set(generationjob.FieldGeneratedPayload, v)
	return u
}

// UpdateGeneratedPayload sets the "generated_payload" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateGeneratedPayload() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldGeneratedPayload)
	return u
}

// ClearGeneratedPayload clears the value of the "generated_payload" field.
func (u *GenerationJobUpsert) ClearGeneratedPayload() *GenerationJobUpsert {
	u.SetNull(generationjob.FieldGeneratedPayload)
	return u
}

// SetResultCourseID sets the "result_course_id" field.
func (u *GenerationJobUpsert) SetResultCourseID(v uuid.UUID) *GenerationJobUpsert {
	u.Set(generationjob.FieldResultCourseID, v)
	return u
}

// UpdateResultCourseID sets the "result_course_id" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateResultCourseID() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldResultCourseID)
	return u
}

// ClearResultCourseID clears the value of the "result_course_id" field.
func (u *GenerationJobUpsert) ClearResultCourseID() *GenerationJobUpsert {
	u.SetNull(generationjob.FieldResultCourseID)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *GenerationJobUpsert) SetErrorMessage(v string) *GenerationJobUpsert {
	u.Set(generationjob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateErrorMessage() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GenerationJobUpsert) ClearErrorMessage() *GenerationJobUpsert {
	u.SetNull(generationjob.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *GenerationJobUpsert) SetStartedAt(v time.Time) *GenerationJobUpsert {
	u.Set(generationjob.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateStartedAt() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GenerationJobUpsert) ClearStartedAt() *GenerationJobUpsert {
	u.SetNull(generationjob.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *GenerationJobUpsert) SetCompletedAt(v time.Time) *GenerationJobUpsert {
	u.Set(generationjob.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *GenerationJobUpsert) UpdateCompletedAt() *GenerationJobUpsert {
	u.SetExcluded(generationjob.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *GenerationJobUpsert) ClearCompletedAt() *GenerationJobUpsert {
	u.SetNull(generationjob.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GenerationJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generationjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GenerationJobUpsertOne) UpdateNewValues() *GenerationJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(generationjob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(generationjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GenerationJobUpsertOne) Ignore() *GenerationJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationJobUpsertOne) DoNothing() *GenerationJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationJobCreate.OnConflict
// documentation for more info.
func (u *GenerationJobUpsertOne) Update(set func(*GenerationJobUpsert)) *GenerationJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseName sets the "course_name" field.
func (u *GenerationJobUpsertOne) SetCourseName(v string) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetCourseName(v)
	})
}

// UpdateCourseName sets the "course_name" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateCourseName() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateCourseName()
	})
}

// SetCourseDescription sets the "course_description" field.
func (u *GenerationJobUpsertOne) SetCourseDescription(v string) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetCourseDescription(v)
	})
}

// UpdateCourseDescription sets the "course_description" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateCourseDescription() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateCourseDescription()
	})
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *GenerationJobUpsertOne) SetDifficultyLevel(v string) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetDifficultyLevel(v)
	})
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateDifficultyLevel() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateDifficultyLevel()
	})
}

// SetLessonCount sets the "lesson_count" field.
func (u *GenerationJobUpsertOne) SetLessonCount(v int) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetLessonCount(v)
	})
}

// AddLessonCount adds v to the "lesson_count" field.
func (u *GenerationJobUpsertOne) AddLessonCount(v int) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.AddLessonCount(v)
	})
}

// UpdateLessonCount sets the "lesson_count" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateLessonCount() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateLessonCount()
	})
}

// SetIncludeQuiz sets the "include_quiz" field.
func (u *GenerationJobUpsertOne) SetIncludeQuiz(v bool) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetIncludeQuiz(v)
	})
}

// UpdateIncludeQuiz sets the "include_quiz" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateIncludeQuiz() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateIncludeQuiz()
	})
}

// SetIncludeAiTutor sets the "include_ai_tutor" field.
func (u *GenerationJobUpsertOne) SetIncludeAiTutor(v bool) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetIncludeAiTutor(v)
	})
}

// UpdateIncludeAiTutor sets the "include_ai_tutor" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateIncludeAiTutor() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateIncludeAiTutor()
	})
}

// SetIncludeVideoLinks sets the "include_video_links" field.
func (u *GenerationJobUpsertOne) SetIncludeVideoLinks(v bool) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetIncludeVideoLinks(v)
	})
}

// UpdateIncludeVideoLinks sets the "include_video_links" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateIncludeVideoLinks() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateIncludeVideoLinks()
	})
}

// SetRequesterID sets the "requester_id" field.
func (u *GenerationJobUpsertOne) SetRequesterID(v uuid.UUID) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetRequesterID(v)
	})
}

// UpdateRequesterID sets the "requester_id" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateRequesterID() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateRequesterID()
	})
}

// SetOrganizationDomain sets the "organization_domain" field.
func (u *GenerationJobUpsertOne) SetOrganizationDomain(v string) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetOrganizationDomain(v)
	})
}

// UpdateOrganizationDomain sets the "organization_domain" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateOrganizationDomain() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateOrganizationDomain()
	})
}

// SetStatus sets the "status" field.
func (u *GenerationJobUpsertOne) SetStatus(v string) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateStatus() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateStatus()
	})
}

// SetProgressPercent sets the "progress_percent" field.
func (u *GenerationJobUpsertOne) SetProgressPercent(v int) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetProgressPercent(v)
	})
}

// AddProgressPercent adds v to the "progress_percent" field.
func (u *GenerationJobUpsertOne) AddProgressPercent(v int) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.AddProgressPercent(v)
	})
}

// UpdateProgressPercent sets the "progress_percent" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateProgressPercent() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateProgressPercent()
	})
}

// SetProgressMessage sets the "progress_message" field.
func (u *GenerationJobUpsertOne) SetProgressMessage(v string) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetProgressMessage(v)
	})
}

// UpdateProgressMessage sets the "progress_message" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateProgressMessage() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateProgressMessage()
	})
}

// SetGeneratedPayload sets the "generated_payload" field.
func (u *GenerationJobUpsertOne) SetGeneratedPayload(v json.RawMessage) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetGeneratedPayload(v)
	})
}

// UpdateGeneratedPayload sets the "generated_payload" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateGeneratedPayload() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateGeneratedPayload()
	})
}

// ClearGeneratedPayload clears the value of the "generated_payload" field.
func (u *GenerationJobUpsertOne) ClearGeneratedPayload() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearGeneratedPayload()
	})
}

// SetResultCourseID sets the "result_course_id" field.
func (u *GenerationJobUpsertOne) SetResultCourseID(v uuid.UUID) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetResultCourseID(v)
	})
}

// UpdateResultCourseID sets the "result_course_id" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateResultCourseID() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateResultCourseID()
	})
}

// ClearResultCourseID clears the value of the "result_course_id" field.
func (u *GenerationJobUpsertOne) ClearResultCourseID() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearResultCourseID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GenerationJobUpsertOne) SetErrorMessage(v string) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateErrorMessage() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GenerationJobUpsertOne) ClearErrorMessage() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *GenerationJobUpsertOne) SetStartedAt(v time.Time) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateStartedAt() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GenerationJobUpsertOne) ClearStartedAt() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *GenerationJobUpsertOne) SetCompletedAt(v time.Time) *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *GenerationJobUpsertOne) UpdateCompletedAt() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *GenerationJobUpsertOne) ClearCompletedAt() *GenerationJobUpsertOne {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *GenerationJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GenerationJobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GenerationJobUpsertOne.ID is not supported by MySQL driver. Use GenerationJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GenerationJobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerationJobCreateBulk is the builder for creating many GenerationJob entities in bulk.
type GenerationJobCreateBulk struct {
	config
	err      error
	builders []*GenerationJobCreate
	conflict []sql.ConflictOption
}

// Save creates the GenerationJob entities in the database.
func (_c *GenerationJobCreateBulk) Save(ctx context.Context) ([]*GenerationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GenerationJobCreateBulk) SaveX(ctx context.Context) []*GenerationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GenerationJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationJobUpsert) {
//			SetCourseName(v+v).
//		}).
//		Exec(ctx)
func (_c *GenerationJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *GenerationJobUpsertBulk {
	_c.conflict = opts
	return &GenerationJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GenerationJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GenerationJobCreateBulk) OnConflictColumns(columns ...string) *GenerationJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GenerationJobUpsertBulk{
		create: _c,
	}
}

// GenerationJobUpsertBulk is the builder for "upsert"-ing
// a bulk of GenerationJob nodes.
type GenerationJobUpsertBulk struct {
	create *GenerationJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GenerationJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generationjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GenerationJobUpsertBulk) UpdateNewValues() *GenerationJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(generationjob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(generationjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GenerationJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GenerationJobUpsertBulk) Ignore() *GenerationJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationJobUpsertBulk) DoNothing() *GenerationJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationJobCreateBulk.OnConflict
// documentation for more info.
func (u *GenerationJobUpsertBulk) Update(set func(*GenerationJobUpsert)) *GenerationJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseName sets the "course_name" field.
func (u *GenerationJobUpsertBulk) SetCourseName(v string) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetCourseName(v)
	})
}

// UpdateCourseName sets the "course_name" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateCourseName() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateCourseName()
	})
}

// SetCourseDescription sets the "course_description" field.
func (u *GenerationJobUpsertBulk) SetCourseDescription(v string) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetCourseDescription(v)
	})
}

// UpdateCourseDescription sets the "course_description" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateCourseDescription() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateCourseDescription()
	})
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (u *GenerationJobUpsertBulk) SetDifficultyLevel(v string) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetDifficultyLevel(v)
	})
}

// UpdateDifficultyLevel sets the "difficulty_level" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateDifficultyLevel() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateDifficultyLevel()
	})
}

// SetLessonCount sets the "lesson_count" field.
func (u *GenerationJobUpsertBulk) SetLessonCount(v int) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetLessonCount(v)
	})
}

// AddLessonCount adds v to the "lesson_count" field.
func (u *GenerationJobUpsertBulk) AddLessonCount(v int) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.AddLessonCount(v)
	})
}

// UpdateLessonCount sets the "lesson_count" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateLessonCount() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateLessonCount()
	})
}

// SetIncludeQuiz sets the "include_quiz" field.
func (u *GenerationJobUpsertBulk) SetIncludeQuiz(v bool) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetIncludeQuiz(v)
	})
}

// UpdateIncludeQuiz sets the "include_quiz" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateIncludeQuiz() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateIncludeQuiz()
	})
}

// SetIncludeAiTutor sets the "include_ai_tutor" field.
func (u *GenerationJobUpsertBulk) SetIncludeAiTutor(v bool) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetIncludeAiTutor(v)
	})
}

// UpdateIncludeAiTutor sets the "include_ai_tutor" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateIncludeAiTutor() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateIncludeAiTutor()
	})
}

// SetIncludeVideoLinks sets the "include_video_links" field.
func (u *GenerationJobUpsertBulk) SetIncludeVideoLinks(v bool) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetIncludeVideoLinks(v)
	})
}

// UpdateIncludeVideoLinks sets the "include_video_links" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateIncludeVideoLinks() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateIncludeVideoLinks()
	})
}

// SetRequesterID sets the "requester_id" field.
func (u *GenerationJobUpsertBulk) SetRequesterID(v uuid.UUID) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetRequesterID(v)
	})
}

// UpdateRequesterID sets the "requester_id" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateRequesterID() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateRequesterID()
	})
}

// SetOrganizationDomain sets the "organization_domain" field.
func (u *GenerationJobUpsertBulk) SetOrganizationDomain(v string) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetOrganizationDomain(v)
	})
}

// UpdateOrganizationDomain sets the "organization_domain" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateOrganizationDomain() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateOrganizationDomain()
	})
}

// SetStatus sets the "status" field.
func (u *GenerationJobUpsertBulk) SetStatus(v string) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateStatus() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateStatus()
	})
}

// SetProgressPercent sets the "progress_percent" field.
func (u *GenerationJobUpsertBulk) SetProgressPercent(v int) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetProgressPercent(v)
	})
}

// AddProgressPercent adds v to the "progress_percent" field.
func (u *GenerationJobUpsertBulk) AddProgressPercent(v int) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.AddProgressPercent(v)
	})
}

// UpdateProgressPercent sets the "progress_percent" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateProgressPercent() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateProgressPercent()
	})
}

// SetProgressMessage sets the "progress_message" field.
func (u *GenerationJobUpsertBulk) SetProgressMessage(v string) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetProgressMessage(v)
	})
}

// UpdateProgressMessage sets the "progress_message" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateProgressMessage() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateProgressMessage()
	})
}

// SetGeneratedPayload sets the "generated_payload" field.
func (u *GenerationJobUpsertBulk) SetGeneratedPayload(v json.RawMessage) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetGeneratedPayload(v)
	})
}

// UpdateGeneratedPayload sets the "generated_payload" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateGeneratedPayload() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateGeneratedPayload()
	})
}

// ClearGeneratedPayload clears the value of the "generated_payload" field.
func (u *GenerationJobUpsertBulk) ClearGeneratedPayload() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearGeneratedPayload()
	})
}

// SetResultCourseID sets the "result_course_id" field.
func (u *GenerationJobUpsertBulk) SetResultCourseID(v uuid.UUID) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetResultCourseID(v)
	})
}

// UpdateResultCourseID sets the "result_course_id" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateResultCourseID() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateResultCourseID()
	})
}

// ClearResultCourseID clears the value of the "result_course_id" field.
func (u *GenerationJobUpsertBulk) ClearResultCourseID() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearResultCourseID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GenerationJobUpsertBulk) SetErrorMessage(v string) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateErrorMessage() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GenerationJobUpsertBulk) ClearErrorMessage() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *GenerationJobUpsertBulk) SetStartedAt(v time.Time) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateStartedAt() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GenerationJobUpsertBulk) ClearStartedAt() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *GenerationJobUpsertBulk) SetCompletedAt(v time.Time) *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *GenerationJobUpsertBulk) UpdateCompletedAt() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *GenerationJobUpsertBulk) ClearCompletedAt() *GenerationJobUpsertBulk {
	return u.Update(func(s *GenerationJobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *GenerationJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GenerationJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
