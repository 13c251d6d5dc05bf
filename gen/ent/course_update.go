// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/amara-obi/course-gen/gen/ent/course"
	"github.com/amara-obi/course-gen/gen/ent/courseeditor"
	"github.com/amara-obi/course-gen/gen/ent/lesson"
	"github.com/amara-obi/course-gen/gen/ent/predicate"
	"github.com/google/uuid"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdate) SetTitle(v string) *CourseUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTitle(v *string) *CourseUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdate) SetDescription(v string) *CourseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDescription(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CourseUpdate) SetDifficulty(v string) *CourseUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDifficulty(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *CourseUpdate) SetDurationMinutes(v int) *CourseUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDurationMinutes(v *int) *CourseUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *CourseUpdate) AddDurationMinutes(v int) *CourseUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *CourseUpdate) SetPrerequisites(v string) *CourseUpdate {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// SetNillablePrerequisites sets the "prerequisites" field if the given value is not nil.
func (_u *CourseUpdate) SetNillablePrerequisites(v *string) *CourseUpdate {
	if v != nil {
		_u.SetPrerequisites(*v)
	}
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *CourseUpdate) ClearPrerequisites() *CourseUpdate {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetTags sets the "tags" field.
func (_u *CourseUpdate) SetTags(v []string) *CourseUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CourseUpdate) AppendTags(v []string) *CourseUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CourseUpdate) ClearTags() *CourseUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetImage sets the "image" field.
func (_u *CourseUpdate) SetImage(v string) *CourseUpdate {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableImage(v *string) *CourseUpdate {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *CourseUpdate) ClearImage() *CourseUpdate {
	_u.mutation.ClearImage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseUpdate) SetStatus(v string) *CourseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableStatus(v *string) *CourseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *CourseUpdate) SetSortOrder(v int) *CourseUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSortOrder(v *int) *CourseUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *CourseUpdate) AddSortOrder(v int) *CourseUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *CourseUpdate) SetFeatured(v bool) *CourseUpdate {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableFeatured(v *bool) *CourseUpdate {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *CourseUpdate) SetAuthorID(v uuid.UUID) *CourseUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableAuthorID(v *uuid.UUID) *CourseUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetOrganizationDomain sets the "organization_domain" field.
func (_u *CourseUpdate) SetOrganizationDomain(v string) *CourseUpdate {
	_u.mutation.SetOrganizationDomain(v)
	return _u
}

// SetNillableOrganizationDomain sets the "organization_domain" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableOrganizationDomain(v *string) *CourseUpdate {
	if v != nil {
		_u.SetOrganizationDomain(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdate) SetUpdatedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *CourseUpdate) AddLessonIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *CourseUpdate) AddLessons(v ...*Lesson) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// AddEditorIDs adds the "editors" edge to the CourseEditor entity by IDs.
func (_u *CourseUpdate) AddEditorIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.AddEditorIDs(ids...)
	return _u
}

// AddEditors adds the "editors" edges to the CourseEditor entity.
func (_u *CourseUpdate) AddEditors(v ...*CourseEditor) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEditorIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *CourseUpdate) ClearLessons() *CourseUpdate {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *CourseUpdate) RemoveLessonIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *CourseUpdate) RemoveLessons(v ...*Lesson) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// ClearEditors clears all "editors" edges to the CourseEditor entity.
func (_u *CourseUpdate) ClearEditors() *CourseUpdate {
	_u.mutation.ClearEditors()
	return _u
}

// RemoveEditorIDs removes the "editors" edge to CourseEditor entities by IDs.
func (_u *CourseUpdate) RemoveEditorIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.RemoveEditorIDs(ids...)
	return _u
}

// RemoveEditors removes "editors" edges to CourseEditor entities.
func (_u *CourseUpdate) RemoveEditors(v ...*CourseEditor) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEditorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := course.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Course.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := course.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Course.duration_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(course.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(course.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(course.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(course.FieldPrerequisites, field.TypeString, value)
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(course.FieldPrerequisites, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(course.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, course.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(course.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(course.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(course.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(course.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(course.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(course.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(course.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrganizationDomain(); ok {
		_spec.SetField(course.FieldOrganizationDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.LessonsTable,
			Columns: []string{course.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.LessonsTable,
			Columns: []string{course.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.LessonsTable,
			Columns: []string{course.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EditorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EditorsTable,
			Columns: []string{course.EditorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseeditor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEditorsIDs(); len(nodes) > 0 && !_u.mutation.EditorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EditorsTable,
			Columns: []string{course.EditorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseeditor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EditorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EditorsTable,
			Columns: []string{course.EditorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseeditor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetTitle sets the "title" field.
func (_u *CourseUpdateOne) SetTitle(v string) *CourseUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTitle(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdateOne) SetDescription(v string) *CourseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDescription(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CourseUpdateOne) SetDifficulty(v string) *CourseUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDifficulty(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *CourseUpdateOne) SetDurationMinutes(v int) *CourseUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDurationMinutes(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *CourseUpdateOne) AddDurationMinutes(v int) *CourseUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *CourseUpdateOne) SetPrerequisites(v string) *CourseUpdateOne {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// SetNillablePrerequisites sets the "prerequisites" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillablePrerequisites(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetPrerequisites(*v)
	}
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *CourseUpdateOne) ClearPrerequisites() *CourseUpdateOne {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetTags sets the "tags" field.
func (_u *CourseUpdateOne) SetTags(v []string) *CourseUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CourseUpdateOne) AppendTags(v []string) *CourseUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CourseUpdateOne) ClearTags() *CourseUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetImage sets the "image" field.
func (_u *CourseUpdateOne) SetImage(v string) *CourseUpdateOne {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableImage(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *CourseUpdateOne) ClearImage() *CourseUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseUpdateOne) SetStatus(v string) *CourseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableStatus(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *CourseUpdateOne) SetSortOrder(v int) *CourseUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSortOrder(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *CourseUpdateOne) AddSortOrder(v int) *CourseUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *CourseUpdateOne) SetFeatured(v bool) *CourseUpdateOne {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableFeatured(v *bool) *CourseUpdateOne {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *CourseUpdateOne) SetAuthorID(v uuid.UUID) *CourseUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableAuthorID(v *uuid.UUID) *CourseUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetOrganizationDomain sets the "organization_domain" field.
func (_u *CourseUpdateOne) SetOrganizationDomain(v string) *CourseUpdateOne {
	_u.mutation.SetOrganizationDomain(v)
	return _u
}

// SetNillableOrganizationDomain sets the "organization_domain" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableOrganizationDomain(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetOrganizationDomain(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdateOne) SetUpdatedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *CourseUpdateOne) AddLessonIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *CourseUpdateOne) AddLessons(v ...*Lesson) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// AddEditorIDs adds the "editors" edge to the CourseEditor entity by IDs.
func (_u *CourseUpdateOne) AddEditorIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.AddEditorIDs(ids...)
	return _u
}

// AddEditors adds the "editors" edges to the CourseEditor entity.
func (_u *CourseUpdateOne) AddEditors(v ...*CourseEditor) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEditorIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *CourseUpdateOne) ClearLessons() *CourseUpdateOne {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *CourseUpdateOne) RemoveLessonIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *CourseUpdateOne) RemoveLessons(v ...*Lesson) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// ClearEditors clears all "editors" edges to the CourseEditor entity.
func (_u *CourseUpdateOne) ClearEditors() *CourseUpdateOne {
	_u.mutation.ClearEditors()
	return _u
}

// RemoveEditorIDs removes the "editors" edge to CourseEditor entities by IDs.
func (_u *CourseUpdateOne) RemoveEditorIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.RemoveEditorIDs(ids...)
	return _u
}

// RemoveEditors removes "editors" edges to CourseEditor entities.
func (_u *CourseUpdateOne) RemoveEditors(v ...*CourseEditor) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEditorIDs(ids...)
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := course.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Course.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := course.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Course.duration_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
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
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(course.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(course.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(course.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(course.FieldPrerequisites, field.TypeString, value)
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(course.FieldPrerequisites, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(course.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, course.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(course.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(course.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(course.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(course.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(course.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(course.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(course.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrganizationDomain(); ok {
		_spec.SetField(course.FieldOrganizationDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.LessonsTable,
			Columns: []string{course.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.LessonsTable,
			Columns: []string{course.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.LessonsTable,
			Columns: []string{course.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EditorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EditorsTable,
			Columns: []string{course.EditorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseeditor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEditorsIDs(); len(nodes) > 0 && !_u.mutation.EditorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EditorsTable,
			Columns: []string{course.EditorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseeditor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EditorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EditorsTable,
			Columns: []string{course.EditorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseeditor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
