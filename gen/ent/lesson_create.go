// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amara-obi/course-gen/gen/ent/course"
	"github.com/amara-obi/course-gen/gen/ent/lesson"
	"github.com/google/uuid"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCourseID sets the "course_id" field.
func (_c *LessonCreate) SetCourseID(v uuid.UUID) *LessonCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *LessonCreate) SetDurationMinutes(v int) *LessonCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *LessonCreate) SetNillableDurationMinutes(v *int) *LessonCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *LessonCreate) SetContent(v string) *LessonCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *LessonCreate) SetNillableContent(v *string) *LessonCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetVideoURL sets the "video_url" field.
func (_c *LessonCreate) SetVideoURL(v string) *LessonCreate {
	_c.mutation.SetVideoURL(v)
	return _c
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_c *LessonCreate) SetNillableVideoURL(v *string) *LessonCreate {
	if v != nil {
		_c.SetVideoURL(*v)
	}
	return _c
}

// SetResources sets the "resources" field.
func (_c *LessonCreate) SetResources(v []string) *LessonCreate {
	_c.mutation.SetResources(v)
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *LessonCreate) SetSortOrder(v int) *LessonCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *LessonCreate) SetNillableSortOrder(v *int) *LessonCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LessonCreate) SetStatus(v string) *LessonCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LessonCreate) SetNillableStatus(v *string) *LessonCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTutorInstruction sets the "tutor_instruction" field.
func (_c *LessonCreate) SetTutorInstruction(v string) *LessonCreate {
	_c.mutation.SetTutorInstruction(v)
	return _c
}

// SetNillableTutorInstruction sets the "tutor_instruction" field if the given value is not nil.
func (_c *LessonCreate) SetNillableTutorInstruction(v *string) *LessonCreate {
	if v != nil {
		_c.SetTutorInstruction(*v)
	}
	return _c
}

// SetTutorPrompt sets the "tutor_prompt" field.
func (_c *LessonCreate) SetTutorPrompt(v string) *LessonCreate {
	_c.mutation.SetTutorPrompt(v)
	return _c
}

// SetNillableTutorPrompt sets the "tutor_prompt" field if the given value is not nil.
func (_c *LessonCreate) SetNillableTutorPrompt(v *string) *LessonCreate {
	if v != nil {
		_c.SetTutorPrompt(*v)
	}
	return _c
}

// SetQuizType sets the "quiz_type" field.
func (_c *LessonCreate) SetQuizType(v string) *LessonCreate {
	_c.mutation.SetQuizType(v)
	return _c
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_c *LessonCreate) SetNillableQuizType(v *string) *LessonCreate {
	if v != nil {
		_c.SetQuizType(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *LessonCreate) SetQuestion(v string) *LessonCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_c *LessonCreate) SetNillableQuestion(v *string) *LessonCreate {
	if v != nil {
		_c.SetQuestion(*v)
	}
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *LessonCreate) SetAnswers(v []string) *LessonCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *LessonCreate) SetCorrectAnswer(v int) *LessonCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *LessonCreate) SetNillableCorrectAnswer(v *int) *LessonCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *LessonCreate) SetCorrectAnswers(v []int) *LessonCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonCreate) SetCreatedAt(v time.Time) *LessonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonCreate) SetNillableCreatedAt(v *time.Time) *LessonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCreate) SetID(v uuid.UUID) *LessonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LessonCreate) SetNillableID(v *uuid.UUID) *LessonCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCourse sets the "course" edge to the Course entity.
func (_c *LessonCreate) SetCourse(v *Course) *LessonCreate {
	return _c.SetCourseID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := lesson.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.Content(); !ok {
		v := lesson.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := lesson.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := lesson.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lesson.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := lesson.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Lesson.course_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "Lesson.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := lesson.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Lesson.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Lesson.content"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "Lesson.sort_order"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Lesson.status"`)}
	}
	if v, ok := _c.mutation.QuizType(); ok {
		if err := lesson.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "Lesson.quiz_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lesson.created_at"`)}
	}
	if len(_c.mutation.CourseIDs()) == 0 {
		return &ValidationError{Name: "course", err: errors.New(`ent: missing required edge "Lesson.course"`)}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
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

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(lesson.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(lesson.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.VideoURL(); ok {
		_spec.SetField(lesson.FieldVideoURL, field.TypeString, value)
		_node.VideoURL = &value
	}
	if value, ok := _c.mutation.Resources(); ok {
		_spec.SetField(lesson.FieldResources, field.TypeJSON, value)
		_node.Resources = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(lesson.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lesson.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TutorInstruction(); ok {
		_spec.SetField(lesson.FieldTutorInstruction, field.TypeString, value)
		_node.TutorInstruction = &value
	}
	if value, ok := _c.mutation.TutorPrompt(); ok {
		_spec.SetField(lesson.FieldTutorPrompt, field.TypeString, value)
		_node.TutorPrompt = &value
	}
	if value, ok := _c.mutation.QuizType(); ok {
		_spec.SetField(lesson.FieldQuizType, field.TypeString, value)
		_node.QuizType = &value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(lesson.FieldQuestion, field.TypeString, value)
		_node.Question = &value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(lesson.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(lesson.FieldCorrectAnswer, field.TypeInt, value)
		_node.CorrectAnswer = &value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(lesson.FieldCorrectAnswers, field.TypeJSON, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.CourseTable,
			Columns: []string{lesson.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CourseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lesson.Create().
//		SetCourseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCreate) OnConflict(opts ...sql.ConflictOption) *LessonUpsertOne {
	_c.conflict = opts
	return &LessonUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCreate) OnConflictColumns(columns ...string) *LessonUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonUpsertOne{
		create: _c,
	}
}

type (
	// LessonUpsertOne is the builder for "upsert"-ing
	//  one Lesson node.
	LessonUpsertOne struct {
		create *LessonCreate
	}

	// LessonUpsert is the "OnConflict" setter.
	LessonUpsert struct {
		*sql.UpdateSet
	}
)

// SetCourseID sets the "course_id" field.
func (u *LessonUpsert) SetCourseID(v uuid.UUID) *LessonUpsert {
	u.Set(lesson.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *LessonUpsert) UpdateCourseID() *LessonUpsert {
	u.SetExcluded(lesson.FieldCourseID)
	return u
}

// SetTitle sets the "title" field.
func (u *LessonUpsert) SetTitle(v string) *LessonUpsert {
	u.Set(lesson.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsert) UpdateTitle() *LessonUpsert {
	u.SetExcluded(lesson.FieldTitle)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *LessonUpsert) SetDurationMinutes(v int) *LessonUpsert {
	u.Set(lesson.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *LessonUpsert) UpdateDurationMinutes() *LessonUpsert {
	u.SetExcluded(lesson.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *LessonUpsert) AddDurationMinutes(v int) *LessonUpsert {
	u.Add(lesson.FieldDurationMinutes, v)
	return u
}

// SetContent sets the "content" field.
func (u *LessonUpsert) SetContent(v string) *LessonUpsert {
	u.Set(lesson.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *LessonUpsert) UpdateContent() *LessonUpsert {
	u.SetExcluded(lesson.FieldContent)
	return u
}

// SetVideoURL sets the "video_url" field.
func (u *LessonUpsert) SetVideoURL(v string) *LessonUpsert {
	u.Set(lesson.FieldVideoURL, v)
	return u
}

// UpdateVideoURL sets the "video_url" field to the value that was provided on create.
func (u *LessonUpsert) UpdateVideoURL() *LessonUpsert {
	u.SetExcluded(lesson.FieldVideoURL)
	return u
}

// ClearVideoURL clears the value of the "video_url" field.
func (u *LessonUpsert) ClearVideoURL() *LessonUpsert {
	u.SetNull(lesson.FieldVideoURL)
	return u
}

// SetResources sets the "resources" field.
func (u *LessonUpsert) SetResources(v []string) *LessonUpsert {
	u.Set(lesson.FieldResources, v)
	return u
}

// UpdateResources sets the "resources" field to the value that was provided on create.
func (u *LessonUpsert) UpdateResources() *LessonUpsert {
	u.SetExcluded(lesson.FieldResources)
	return u
}

// ClearResources clears the value of the "resources" field.
func (u *LessonUpsert) ClearResources() *LessonUpsert {
	u.SetNull(lesson.FieldResources)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *LessonUpsert) SetSortOrder(v int) *LessonUpsert {
	u.Set(lesson.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *LessonUpsert) UpdateSortOrder() *LessonUpsert {
	u.SetExcluded(lesson.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *LessonUpsert) AddSortOrder(v int) *LessonUpsert {
	u.Add(lesson.FieldSortOrder, v)
	return u
}

// SetStatus sets the "status" field.
func (u *LessonUpsert) SetStatus(v string) *LessonUpsert {
	u.Set(lesson.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LessonUpsert) UpdateStatus() *LessonUpsert {
	u.SetExcluded(lesson.FieldStatus)
	return u
}

// SetTutorInstruction sets the "tutor_instruction" field.
func (u *LessonUpsert) SetTutorInstruction(v string) *LessonUpsert {
	u.Set(lesson.FieldTutorInstruction, v)
	return u
}

// UpdateTutorInstruction sets the "tutor_instruction" field to the value that was provided on create.
func (u *LessonUpsert) UpdateTutorInstruction() *LessonUpsert {
	u.SetExcluded(lesson.FieldTutorInstruction)
	return u
}

// ClearTutorInstruction clears the value of the "tutor_instruction" field.
func (u *LessonUpsert) ClearTutorInstruction() *LessonUpsert {
	u.SetNull(lesson.FieldTutorInstruction)
	return u
}

// SetTutorPrompt sets the "tutor_prompt" field.
func (u *LessonUpsert) SetTutorPrompt(v string) *LessonUpsert {
	u.Set(lesson.FieldTutorPrompt, v)
	return u
}

// UpdateTutorPrompt sets the "tutor_prompt" field to the value that was provided on create.
func (u *LessonUpsert) UpdateTutorPrompt() *LessonUpsert {
	u.SetExcluded(lesson.FieldTutorPrompt)
	return u
}

// ClearTutorPrompt clears the value of the "tutor_prompt" field.
func (u *LessonUpsert) ClearTutorPrompt() *LessonUpsert {
	u.SetNull(lesson.FieldTutorPrompt)
	return u
}

// SetQuizType sets the "quiz_type" field.
func (u *LessonUpsert) SetQuizType(v string) *LessonUpsert {
	u.Set(lesson.FieldQuizType, v)
	return u
}

// UpdateQuizType sets the "quiz_type" field to the value that was provided on create.
func (u *LessonUpsert) UpdateQuizType() *LessonUpsert {
	u.SetExcluded(lesson.FieldQuizType)
	return u
}

// ClearQuizType clears the value of the "quiz_type" field.
func (u *LessonUpsert) ClearQuizType() *LessonUpsert {
	u.SetNull(lesson.FieldQuizType)
	return u
}

// SetQuestion sets the "question" field.
func (u *LessonUpsert) SetQuestion(v string) *LessonUpsert {
	u.Set(lesson.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *LessonUpsert) UpdateQuestion() *LessonUpsert {
	u.SetExcluded(lesson.FieldQuestion)
	return u
}

// ClearQuestion clears the value of the "question" field.
func (u *LessonUpsert) ClearQuestion() *LessonUpsert {
	u.SetNull(lesson.FieldQuestion)
	return u
}

// SetAnswers sets the "answers" field.
func (u *LessonUpsert) SetAnswers(v []string) *LessonUpsert {
	u.Set(lesson.FieldAnswers, v)
	return u
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *LessonUpsert) UpdateAnswers() *LessonUpsert {
	u.SetExcluded(lesson.FieldAnswers)
	return u
}

// ClearAnswers clears the value of the "answers" field.
func (u *LessonUpsert) ClearAnswers() *LessonUpsert {
	u.SetNull(lesson.FieldAnswers)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *LessonUpsert) SetCorrectAnswer(v int) *LessonUpsert {
	u.Set(lesson.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *LessonUpsert) UpdateCorrectAnswer() *LessonUpsert {
	u.SetExcluded(lesson.FieldCorrectAnswer)
	return u
}

// AddCorrectAnswer adds v to the "correct_answer" field.
func (u *LessonUpsert) AddCorrectAnswer(v int) *LessonUpsert {
	u.Add(lesson.FieldCorrectAnswer, v)
	return u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (u *LessonUpsert) ClearCorrectAnswer() *LessonUpsert {
	u.SetNull(lesson.FieldCorrectAnswer)
	return u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *LessonUpsert) SetCorrectAnswers(v []int) *LessonUpsert {
	u.Set(lesson.FieldCorrectAnswers, v)
	return u
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *LessonUpsert) UpdateCorrectAnswers() *LessonUpsert {
	u.SetExcluded(lesson.FieldCorrectAnswers)
	return u
}

// ClearCorrectAnswers clears the value of the "correct_answers" field.
func (u *LessonUpsert) ClearCorrectAnswers() *LessonUpsert {
	u.SetNull(lesson.FieldCorrectAnswers)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lesson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonUpsertOne) UpdateNewValues() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lesson.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lesson.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonUpsertOne) Ignore() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonUpsertOne) DoNothing() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCreate.OnConflict
// documentation for more info.
func (u *LessonUpsertOne) Update(set func(*LessonUpsert)) *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *LessonUpsertOne) SetCourseID(v uuid.UUID) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateCourseID() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCourseID()
	})
}

// SetTitle sets the "title" field.
func (u *LessonUpsertOne) SetTitle(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateTitle() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTitle()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *LessonUpsertOne) SetDurationMinutes(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *LessonUpsertOne) AddDurationMinutes(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateDurationMinutes() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetContent sets the "content" field.
func (u *LessonUpsertOne) SetContent(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateContent() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateContent()
	})
}

// SetVideoURL sets the "video_url" field.
func (u *LessonUpsertOne) SetVideoURL(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetVideoURL(v)
	})
}

// UpdateVideoURL sets the "video_url" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateVideoURL() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateVideoURL()
	})
}

// ClearVideoURL clears the value of the "video_url" field.
func (u *LessonUpsertOne) ClearVideoURL() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearVideoURL()
	})
}

// SetResources sets the "resources" field.
func (u *LessonUpsertOne) SetResources(v []string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetResources(v)
	})
}

// UpdateResources sets the "resources" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateResources() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateResources()
	})
}

// ClearResources clears the value of the "resources" field.
func (u *LessonUpsertOne) ClearResources() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearResources()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *LessonUpsertOne) SetSortOrder(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *LessonUpsertOne) AddSortOrder(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateSortOrder() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateSortOrder()
	})
}

// SetStatus sets the "status" field.
func (u *LessonUpsertOne) SetStatus(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateStatus() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateStatus()
	})
}

// SetTutorInstruction sets the "tutor_instruction" field.
func (u *LessonUpsertOne) SetTutorInstruction(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetTutorInstruction(v)
	})
}

// UpdateTutorInstruction sets the "tutor_instruction" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateTutorInstruction() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTutorInstruction()
	})
}

// ClearTutorInstruction clears the value of the "tutor_instruction" field.
func (u *LessonUpsertOne) ClearTutorInstruction() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearTutorInstruction()
	})
}

// SetTutorPrompt sets the "tutor_prompt" field.
func (u *LessonUpsertOne) SetTutorPrompt(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetTutorPrompt(v)
	})
}

// UpdateTutorPrompt sets the "tutor_prompt" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateTutorPrompt() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTutorPrompt()
	})
}

// ClearTutorPrompt clears the value of the "tutor_prompt" field.
func (u *LessonUpsertOne) ClearTutorPrompt() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearTutorPrompt()
	})
}

// SetQuizType sets the "quiz_type" field.
func (u *LessonUpsertOne) SetQuizType(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetQuizType(v)
	})
}

// UpdateQuizType sets the "quiz_type" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateQuizType() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateQuizType()
	})
}

// ClearQuizType clears the value of the "quiz_type" field.
func (u *LessonUpsertOne) ClearQuizType() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearQuizType()
	})
}

// SetQuestion sets the "question" field.
func (u *LessonUpsertOne) SetQuestion(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateQuestion() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateQuestion()
	})
}

// ClearQuestion clears the value of the "question" field.
func (u *LessonUpsertOne) ClearQuestion() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearQuestion()
	})
}

// SetAnswers sets the "answers" field.
func (u *LessonUpsertOne) SetAnswers(v []string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateAnswers() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateAnswers()
	})
}

// ClearAnswers clears the value of the "answers" field.
func (u *LessonUpsertOne) ClearAnswers() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearAnswers()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *LessonUpsertOne) SetCorrectAnswer(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// AddCorrectAnswer adds v to the "correct_answer" field.
func (u *LessonUpsertOne) AddCorrectAnswer(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.AddCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateCorrectAnswer() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (u *LessonUpsertOne) ClearCorrectAnswer() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearCorrectAnswer()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *LessonUpsertOne) SetCorrectAnswers(v []int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateCorrectAnswers() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// ClearCorrectAnswers clears the value of the "correct_answers" field.
func (u *LessonUpsertOne) ClearCorrectAnswers() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearCorrectAnswers()
	})
}

// Exec executes the query.
func (u *LessonUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LessonUpsertOne.ID is not supported by MySQL driver. Use LessonUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
	conflict []sql.ConflictOption
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
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
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lesson.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonUpsertBulk {
	_c.conflict = opts
	return &LessonUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCreateBulk) OnConflictColumns(columns ...string) *LessonUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonUpsertBulk{
		create: _c,
	}
}

// LessonUpsertBulk is the builder for "upsert"-ing
// a bulk of Lesson nodes.
type LessonUpsertBulk struct {
	create *LessonCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lesson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonUpsertBulk) UpdateNewValues() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lesson.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lesson.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonUpsertBulk) Ignore() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonUpsertBulk) DoNothing() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCreateBulk.OnConflict
// documentation for more info.
func (u *LessonUpsertBulk) Update(set func(*LessonUpsert)) *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *LessonUpsertBulk) SetCourseID(v uuid.UUID) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateCourseID() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCourseID()
	})
}

// SetTitle sets the "title" field.
func (u *LessonUpsertBulk) SetTitle(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateTitle() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTitle()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *LessonUpsertBulk) SetDurationMinutes(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *LessonUpsertBulk) AddDurationMinutes(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateDurationMinutes() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetContent sets the "content" field.
func (u *LessonUpsertBulk) SetContent(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateContent() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateContent()
	})
}

// SetVideoURL sets the "video_url" field.
func (u *LessonUpsertBulk) SetVideoURL(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetVideoURL(v)
	})
}

// UpdateVideoURL sets the "video_url" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateVideoURL() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateVideoURL()
	})
}

// ClearVideoURL clears the value of the "video_url" field.
func (u *LessonUpsertBulk) ClearVideoURL() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearVideoURL()
	})
}

// SetResources sets the "resources" field.
func (u *LessonUpsertBulk) SetResources(v []string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetResources(v)
	})
}

// UpdateResources sets the "resources" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateResources() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateResources()
	})
}

// ClearResources clears the value of the "resources" field.
func (u *LessonUpsertBulk) ClearResources() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearResources()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *LessonUpsertBulk) SetSortOrder(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *LessonUpsertBulk) AddSortOrder(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateSortOrder() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateSortOrder()
	})
}

// SetStatus sets the "status" field.
func (u *LessonUpsertBulk) SetStatus(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateStatus() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateStatus()
	})
}

// SetTutorInstruction sets the "tutor_instruction" field.
func (u *LessonUpsertBulk) SetTutorInstruction(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetTutorInstruction(v)
	})
}

// UpdateTutorInstruction sets the "tutor_instruction" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateTutorInstruction() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTutorInstruction()
	})
}

// ClearTutorInstruction clears the value of the "tutor_instruction" field.
func (u *LessonUpsertBulk) ClearTutorInstruction() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearTutorInstruction()
	})
}

// SetTutorPrompt sets the "tutor_prompt" field.
func (u *LessonUpsertBulk) SetTutorPrompt(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetTutorPrompt(v)
	})
}

// UpdateTutorPrompt sets the "tutor_prompt" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateTutorPrompt() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTutorPrompt()
	})
}

// ClearTutorPrompt clears the value of the "tutor_prompt" field.
func (u *LessonUpsertBulk) ClearTutorPrompt() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearTutorPrompt()
	})
}

// SetQuizType sets the "quiz_type" field.
func (u *LessonUpsertBulk) SetQuizType(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetQuizType(v)
	})
}

// UpdateQuizType sets the "quiz_type" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateQuizType() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateQuizType()
	})
}

// ClearQuizType clears the value of the "quiz_type" field.
func (u *LessonUpsertBulk) ClearQuizType() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearQuizType()
	})
}

// SetQuestion sets the "question" field.
func (u *LessonUpsertBulk) SetQuestion(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateQuestion() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateQuestion()
	})
}

// ClearQuestion clears the value of the "question" field.
func (u *LessonUpsertBulk) ClearQuestion() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearQuestion()
	})
}

// SetAnswers sets the "answers" field.
func (u *LessonUpsertBulk) SetAnswers(v []string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateAnswers() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateAnswers()
	})
}

// ClearAnswers clears the value of the "answers" field.
func (u *LessonUpsertBulk) ClearAnswers() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearAnswers()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *LessonUpsertBulk) SetCorrectAnswer(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// AddCorrectAnswer adds v to the "correct_answer" field.
func (u *LessonUpsertBulk) AddCorrectAnswer(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.AddCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateCorrectAnswer() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (u *LessonUpsertBulk) ClearCorrectAnswer() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearCorrectAnswer()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *LessonUpsertBulk) SetCorrectAnswers(v []int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateCorrectAnswers() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// ClearCorrectAnswers clears the value of the "correct_answers" field.
func (u *LessonUpsertBulk) ClearCorrectAnswers() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearCorrectAnswers()
	})
}

// Exec executes the query.
func (u *LessonUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
