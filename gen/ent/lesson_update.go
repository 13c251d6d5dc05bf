// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/amara-obi/course-gen/gen/ent/course"
	"github.com/amara-obi/course-gen/gen/ent/lesson"
	"github.com/amara-obi/course-gen/gen/ent/predicate"
	"github.com/google/uuid"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdate) SetCourseID(v uuid.UUID) *LessonUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableCourseID(v *uuid.UUID) *LessonUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *LessonUpdate) SetDurationMinutes(v int) *LessonUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableDurationMinutes(v *int) *LessonUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *LessonUpdate) AddDurationMinutes(v int) *LessonUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *LessonUpdate) SetContent(v string) *LessonUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableContent(v *string) *LessonUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *LessonUpdate) SetVideoURL(v string) *LessonUpdate {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableVideoURL(v *string) *LessonUpdate {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *LessonUpdate) ClearVideoURL() *LessonUpdate {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetResources sets the "resources" field.
func (_u *LessonUpdate) SetResources(v []string) *LessonUpdate {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *LessonUpdate) AppendResources(v []string) *LessonUpdate {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *LessonUpdate) ClearResources() *LessonUpdate {
	_u.mutation.ClearResources()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *LessonUpdate) SetSortOrder(v int) *LessonUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableSortOrder(v *int) *LessonUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *LessonUpdate) AddSortOrder(v int) *LessonUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LessonUpdate) SetStatus(v string) *LessonUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableStatus(v *string) *LessonUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTutorInstruction sets the "tutor_instruction" field.
func (_u *LessonUpdate) SetTutorInstruction(v string) *LessonUpdate {
	_u.mutation.SetTutorInstruction(v)
	return _u
}

// SetNillableTutorInstruction sets the "tutor_instruction" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTutorInstruction(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTutorInstruction(*v)
	}
	return _u
}

// ClearTutorInstruction clears the value of the "tutor_instruction" field.
func (_u *LessonUpdate) ClearTutorInstruction() *LessonUpdate {
	_u.mutation.ClearTutorInstruction()
	return _u
}

// SetTutorPrompt sets the "tutor_prompt" field.
func (_u *LessonUpdate) SetTutorPrompt(v string) *LessonUpdate {
	_u.mutation.SetTutorPrompt(v)
	return _u
}

// SetNillableTutorPrompt sets the "tutor_prompt" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTutorPrompt(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTutorPrompt(*v)
	}
	return _u
}

// ClearTutorPrompt clears the value of the "tutor_prompt" field.
func (_u *LessonUpdate) ClearTutorPrompt() *LessonUpdate {
	_u.mutation.ClearTutorPrompt()
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *LessonUpdate) SetQuizType(v string) *LessonUpdate {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableQuizType(v *string) *LessonUpdate {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// ClearQuizType clears the value of the "quiz_type" field.
func (_u *LessonUpdate) ClearQuizType() *LessonUpdate {
	_u.mutation.ClearQuizType()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *LessonUpdate) SetQuestion(v string) *LessonUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableQuestion(v *string) *LessonUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// ClearQuestion clears the value of the "question" field.
func (_u *LessonUpdate) ClearQuestion() *LessonUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *LessonUpdate) SetAnswers(v []string) *LessonUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *LessonUpdate) AppendAnswers(v []string) *LessonUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *LessonUpdate) ClearAnswers() *LessonUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *LessonUpdate) SetCorrectAnswer(v int) *LessonUpdate {
	_u.mutation.ResetCorrectAnswer()
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableCorrectAnswer(v *int) *LessonUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// AddCorrectAnswer adds value to the "correct_answer" field.
func (_u *LessonUpdate) AddCorrectAnswer(v int) *LessonUpdate {
	_u.mutation.AddCorrectAnswer(v)
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *LessonUpdate) ClearCorrectAnswer() *LessonUpdate {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *LessonUpdate) SetCorrectAnswers(v []int) *LessonUpdate {
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// AppendCorrectAnswers appends value to the "correct_answers" field.
func (_u *LessonUpdate) AppendCorrectAnswers(v []int) *LessonUpdate {
	_u.mutation.AppendCorrectAnswers(v)
	return _u
}

// ClearCorrectAnswers clears the value of the "correct_answers" field.
func (_u *LessonUpdate) ClearCorrectAnswers() *LessonUpdate {
	_u.mutation.ClearCorrectAnswers()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *LessonUpdate) SetCourse(v *Course) *LessonUpdate {
	return _u.SetCourseID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *LessonUpdate) ClearCourse() *LessonUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := lesson.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Lesson.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := lesson.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "Lesson.quiz_type": %w`, err)}
		}
	}
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lesson.course"`)
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(lesson.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(lesson.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(lesson.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(lesson.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(lesson.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(lesson.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(lesson.FieldResources, field.TypeJSON)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(lesson.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(lesson.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lesson.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TutorInstruction(); ok {
		_spec.SetField(lesson.FieldTutorInstruction, field.TypeString, value)
	}
	if _u.mutation.TutorInstructionCleared() {
		_spec.ClearField(lesson.FieldTutorInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.TutorPrompt(); ok {
		_spec.SetField(lesson.FieldTutorPrompt, field.TypeString, value)
	}
	if _u.mutation.TutorPromptCleared() {
		_spec.ClearField(lesson.FieldTutorPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(lesson.FieldQuizType, field.TypeString, value)
	}
	if _u.mutation.QuizTypeCleared() {
		_spec.ClearField(lesson.FieldQuizType, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(lesson.FieldQuestion, field.TypeString, value)
	}
	if _u.mutation.QuestionCleared() {
		_spec.ClearField(lesson.FieldQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(lesson.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(lesson.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(lesson.FieldCorrectAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswer(); ok {
		_spec.AddField(lesson.FieldCorrectAnswer, field.TypeInt, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(lesson.FieldCorrectAnswer, field.TypeInt)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(lesson.FieldCorrectAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldCorrectAnswers, value)
		})
	}
	if _u.mutation.CorrectAnswersCleared() {
		_spec.ClearField(lesson.FieldCorrectAnswers, field.TypeJSON)
	}
	if _u.mutation.CourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdateOne) SetCourseID(v uuid.UUID) *LessonUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableCourseID(v *uuid.UUID) *LessonUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *LessonUpdateOne) SetDurationMinutes(v int) *LessonUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableDurationMinutes(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *LessonUpdateOne) AddDurationMinutes(v int) *LessonUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *LessonUpdateOne) SetContent(v string) *LessonUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableContent(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *LessonUpdateOne) SetVideoURL(v string) *LessonUpdateOne {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableVideoURL(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *LessonUpdateOne) ClearVideoURL() *LessonUpdateOne {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetResources sets the "resources" field.
func (_u *LessonUpdateOne) SetResources(v []string) *LessonUpdateOne {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *LessonUpdateOne) AppendResources(v []string) *LessonUpdateOne {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *LessonUpdateOne) ClearResources() *LessonUpdateOne {
	_u.mutation.ClearResources()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *LessonUpdateOne) SetSortOrder(v int) *LessonUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableSortOrder(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *LessonUpdateOne) AddSortOrder(v int) *LessonUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LessonUpdateOne) SetStatus(v string) *LessonUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableStatus(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTutorInstruction sets the "tutor_instruction" field.
func (_u *LessonUpdateOne) SetTutorInstruction(v string) *LessonUpdateOne {
	_u.mutation.SetTutorInstruction(v)
	return _u
}

// SetNillableTutorInstruction sets the "tutor_instruction" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTutorInstruction(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTutorInstruction(*v)
	}
	return _u
}

// ClearTutorInstruction clears the value of the "tutor_instruction" field.
func (_u *LessonUpdateOne) ClearTutorInstruction() *LessonUpdateOne {
	_u.mutation.ClearTutorInstruction()
	return _u
}

// SetTutorPrompt sets the "tutor_prompt" field.
func (_u *LessonUpdateOne) SetTutorPrompt(v string) *LessonUpdateOne {
	_u.mutation.SetTutorPrompt(v)
	return _u
}

// SetNillableTutorPrompt sets the "tutor_prompt" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTutorPrompt(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTutorPrompt(*v)
	}
	return _u
}

// ClearTutorPrompt clears the value of the "tutor_prompt" field.
func (_u *LessonUpdateOne) ClearTutorPrompt() *LessonUpdateOne {
	_u.mutation.ClearTutorPrompt()
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *LessonUpdateOne) SetQuizType(v string) *LessonUpdateOne {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableQuizType(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// ClearQuizType clears the value of the "quiz_type" field.
func (_u *LessonUpdateOne) ClearQuizType() *LessonUpdateOne {
	_u.mutation.ClearQuizType()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *LessonUpdateOne) SetQuestion(v string) *LessonUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableQuestion(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// ClearQuestion clears the value of the "question" field.
func (_u *LessonUpdateOne) ClearQuestion() *LessonUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *LessonUpdateOne) SetAnswers(v []string) *LessonUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *LessonUpdateOne) AppendAnswers(v []string) *LessonUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *LessonUpdateOne) ClearAnswers() *LessonUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *LessonUpdateOne) SetCorrectAnswer(v int) *LessonUpdateOne {
	_u.mutation.ResetCorrectAnswer()
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableCorrectAnswer(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// AddCorrectAnswer adds value to the "correct_answer" field.
func (_u *LessonUpdateOne) AddCorrectAnswer(v int) *LessonUpdateOne {
	_u.mutation.AddCorrectAnswer(v)
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *LessonUpdateOne) ClearCorrectAnswer() *LessonUpdateOne {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *LessonUpdateOne) SetCorrectAnswers(v []int) *LessonUpdateOne {
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// AppendCorrectAnswers appends value to the "correct_answers" field.
func (_u *LessonUpdateOne) AppendCorrectAnswers(v []int) *LessonUpdateOne {
	_u.mutation.AppendCorrectAnswers(v)
	return _u
}

// ClearCorrectAnswers clears the value of the "correct_answers" field.
func (_u *LessonUpdateOne) ClearCorrectAnswers() *LessonUpdateOne {
	_u.mutation.ClearCorrectAnswers()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *LessonUpdateOne) SetCourse(v *Course) *LessonUpdateOne {
	return _u.SetCourseID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *LessonUpdateOne) ClearCourse() *LessonUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := lesson.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Lesson.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := lesson.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "Lesson.quiz_type": %w`, err)}
		}
	}
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lesson.course"`)
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(lesson.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(lesson.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(lesson.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(lesson.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(lesson.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(lesson.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(lesson.FieldResources, field.TypeJSON)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(lesson.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(lesson.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lesson.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TutorInstruction(); ok {
		_spec.SetField(lesson.FieldTutorInstruction, field.TypeString, value)
	}
	if _u.mutation.TutorInstructionCleared() {
		_spec.ClearField(lesson.FieldTutorInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.TutorPrompt(); ok {
		_spec.SetField(lesson.FieldTutorPrompt, field.TypeString, value)
	}
	if _u.mutation.TutorPromptCleared() {
		_spec.ClearField(lesson.FieldTutorPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(lesson.FieldQuizType, field.TypeString, value)
	}
	if _u.mutation.QuizTypeCleared() {
		_spec.ClearField(lesson.FieldQuizType, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(lesson.FieldQuestion, field.TypeString, value)
	}
	if _u.mutation.QuestionCleared() {
		_spec.ClearField(lesson.FieldQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(lesson.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(lesson.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(lesson.FieldCorrectAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswer(); ok {
		_spec.AddField(lesson.FieldCorrectAnswer, field.TypeInt, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(lesson.FieldCorrectAnswer, field.TypeInt)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(lesson.FieldCorrectAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldCorrectAnswers, value)
		})
	}
	if _u.mutation.CorrectAnswersCleared() {
		_spec.ClearField(lesson.FieldCorrectAnswers, field.TypeJSON)
	}
	if _u.mutation.CourseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
