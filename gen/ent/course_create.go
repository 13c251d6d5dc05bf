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
	"github.com/amara-obi/course-gen/gen/ent/courseeditor"
	"github.com/amara-obi/course-gen/gen/ent/lesson"
	"github.com/google/uuid"
)

// CourseCreate is the builder for creating a Course entity.
type CourseCreate struct {
	config
	mutation *CourseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *CourseCreate) SetTitle(v string) *CourseCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CourseCreate) SetDescription(v string) *CourseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDescription(v *string) *CourseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CourseCreate) SetDifficulty(v string) *CourseCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDifficulty(v *string) *CourseCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *CourseCreate) SetDurationMinutes(v int) *CourseCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDurationMinutes(v *int) *CourseCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *CourseCreate) SetPrerequisites(v string) *CourseCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// SetNillablePrerequisites sets the "prerequisites" field if the given value is not nil.
func (_c *CourseCreate) SetNillablePrerequisites(v *string) *CourseCreate {
	if v != nil {
		_c.SetPrerequisites(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *CourseCreate) SetTags(v []string) *CourseCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetImage sets the "image" field.
func (_c *CourseCreate) SetImage(v string) *CourseCreate {
	_c.mutation.SetImage(v)
	return _c
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_c *CourseCreate) SetNillableImage(v *string) *CourseCreate {
	if v != nil {
		_c.SetImage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CourseCreate) SetStatus(v string) *CourseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CourseCreate) SetNillableStatus(v *string) *CourseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *CourseCreate) SetSortOrder(v int) *CourseCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *CourseCreate) SetNillableSortOrder(v *int) *CourseCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetFeatured sets the "featured" field.
func (_c *CourseCreate) SetFeatured(v bool) *CourseCreate {
	_c.mutation.SetFeatured(v)
	return _c
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_c *CourseCreate) SetNillableFeatured(v *bool) *CourseCreate {
	if v != nil {
		_c.SetFeatured(*v)
	}
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *CourseCreate) SetAuthorID(v uuid.UUID) *CourseCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetOrganizationDomain sets the "organization_domain" field.
func (_c *CourseCreate) SetOrganizationDomain(v string) *CourseCreate {
	_c.mutation.SetOrganizationDomain(v)
	return _c
}

// SetNillableOrganizationDomain sets the "organization_domain" field if the given value is not nil.
func (_c *CourseCreate) SetNillableOrganizationDomain(v *string) *CourseCreate {
	if v != nil {
		_c.SetOrganizationDomain(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourseCreate) SetCreatedAt(v time.Time) *CourseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableCreatedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CourseCreate) SetUpdatedAt(v time.Time) *CourseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableUpdatedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CourseCreate) SetID(v uuid.UUID) *CourseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CourseCreate) SetNillableID(v *uuid.UUID) *CourseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_c *CourseCreate) AddLessonIDs(ids ...uuid.UUID) *CourseCreate {
	_c.mutation.AddLessonIDs(ids...)
	return _c
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_c *CourseCreate) AddLessons(v ...*Lesson) *CourseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLessonIDs(ids...)
}

// AddEditorIDs adds the "editors" edge to the CourseEditor entity by IDs.
func (_c *CourseCreate) AddEditorIDs(ids ...uuid.UUID) *CourseCreate {
	_c.mutation.AddEditorIDs(ids...)
	return _c
}

// AddEditors adds the "editors" edges to the CourseEditor entity.
func (_c *CourseCreate) AddEditors(v ...*CourseEditor) *CourseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEditorIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_c *CourseCreate) Mutation() *CourseMutation {
	return _c.mutation
}

// Save creates the Course in the database.
func (_c *CourseCreate) Save(ctx context.Context) (*Course, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseCreate) SaveX(ctx context.Context) *Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := course.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := course.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := course.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := course.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := course.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.Featured(); !ok {
		v := course.DefaultFeatured
		_c.mutation.SetFeatured(v)
	}
	if _, ok := _c.mutation.OrganizationDomain(); !ok {
		v := course.DefaultOrganizationDomain
		_c.mutation.SetOrganizationDomain(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := course.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := course.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := course.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Course.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Course.description"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Course.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := course.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Course.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "Course.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := course.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Course.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Course.status"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "Course.sort_order"`)}
	}
	if _, ok := _c.mutation.Featured(); !ok {
		return &ValidationError{Name: "featured", err: errors.New(`ent: missing required field "Course.featured"`)}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "Course.author_id"`)}
	}
	if _, ok := _c.mutation.OrganizationDomain(); !ok {
		return &ValidationError{Name: "organization_domain", err: errors.New(`ent: missing required field "Course.organization_domain"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Course.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Course.updated_at"`)}
	}
	return nil
}

func (_c *CourseCreate) sqlSave(ctx context.Context) (*Course, error) {
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

func (_c *CourseCreate) createSpec() (*Course, *sqlgraph.CreateSpec) {
	var (
		_node = &Course{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(course.Table, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(course.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(course.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(course.FieldPrerequisites, field.TypeString, value)
		_node.Prerequisites = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(course.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Image(); ok {
		_spec.SetField(course.FieldImage, field.TypeString, value)
		_node.Image = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(course.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.Featured(); ok {
		_spec.SetField(course.FieldFeatured, field.TypeBool, value)
		_node.Featured = value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(course.FieldAuthorID, field.TypeUUID, value)
		_node.AuthorID = value
	}
	if value, ok := _c.mutation.OrganizationDomain(); ok {
		_spec.SetField(course.FieldOrganizationDomain, field.TypeString, value)
		_node.OrganizationDomain = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(course.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EditorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Course.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseCreate) OnConflict(opts ...sql.ConflictOption) *CourseUpsertOne {
	_c.conflict = opts
	return &CourseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseCreate) OnConflictColumns(columns ...string) *CourseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseUpsertOne{
		create: _c,
	}
}

type (
	// CourseUpsertOne is the builder for "upsert"-ing
	//  one Course node.
	CourseUpsertOne struct {
		create *CourseCreate
	}

	// CourseUpsert is the "OnConflict" setter.
	CourseUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *CourseUpsert) SetTitle(v string) *CourseUpsert {
	u.Set(course.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CourseUpsert) UpdateTitle() *CourseUpsert {
	u.SetExcluded(course.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *CourseUpsert) SetDescription(v string) *CourseUpsert {
	u.Set(course.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CourseUpsert) UpdateDescription() *CourseUpsert {
	u.SetExcluded(course.FieldDescription)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *CourseUpsert) SetDifficulty(v string) *CourseUpsert {
	u.Set(course.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *CourseUpsert) UpdateDifficulty() *CourseUpsert {
	u.SetExcluded(course.FieldDifficulty)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *CourseUpsert) SetDurationMinutes(v int) *CourseUpsert {
	u.Set(course.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *CourseUpsert) UpdateDurationMinutes() *CourseUpsert {
	u.SetExcluded(course.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *CourseUpsert) AddDurationMinutes(v int) *CourseUpsert {
	u.Add(course.FieldDurationMinutes, v)
	return u
}

// SetPrerequisites sets the "prerequisites" field.
func (u *CourseUpsert) SetPrerequisites(v string) *CourseUpsert {
	u.Set(course.FieldPrerequisites, v)
	return u
}

// UpdatePrerequisites sets the "prerequisites" field to the value that was provided on create.
func (u *CourseUpsert) UpdatePrerequisites() *CourseUpsert {
	u.SetExcluded(course.FieldPrerequisites)
	return u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (u *CourseUpsert) ClearPrerequisites() *CourseUpsert {
	u.SetNull(course.FieldPrerequisites)
	return u
}

// SetTags sets the "tags" field.
func (u *CourseUpsert) SetTags(v []string) *CourseUpsert {
	u.Set(course.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *CourseUpsert) UpdateTags() *CourseUpsert {
	u.SetExcluded(course.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *CourseUpsert) ClearTags() *CourseUpsert {
	u.SetNull(course.FieldTags)
	return u
}

// SetImage sets the "image" field.
func (u *CourseUpsert) SetImage(v string) *CourseUpsert {
	u.Set(course.FieldImage, v)
	return u
}

// UpdateImage sets the "image" field to the value that was provided on create.
func (u *CourseUpsert) UpdateImage() *CourseUpsert {
	u.SetExcluded(course.FieldImage)
	return u
}

// ClearImage clears the value of the "image" field.
func (u *CourseUpsert) ClearImage() *CourseUpsert {
	u.SetNull(course.FieldImage)
	return u
}

// SetStatus sets the "status" field.
func (u *CourseUpsert) SetStatus(v string) *CourseUpsert {
	u.Set(course.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CourseUpsert) UpdateStatus() *CourseUpsert {
	u.SetExcluded(course.FieldStatus)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *CourseUpsert) SetSortOrder(v int) *CourseUpsert {
	u.Set(course.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *CourseUpsert) UpdateSortOrder() *CourseUpsert {
	u.SetExcluded(course.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *CourseUpsert) AddSortOrder(v int) *CourseUpsert {
	u.Add(course.FieldSortOrder, v)
	return u
}

// SetFeatured sets the "featured" field.
func (u *CourseUpsert) SetFeatured(v bool) *CourseUpsert {
	u.Set(course.FieldFeatured, v)
	return u
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *CourseUpsert) UpdateFeatured() *CourseUpsert {
	u.SetExcluded(course.FieldFeatured)
	return u
}

// SetAuthorID sets the "author_id" field.
func (u *CourseUpsert) SetAuthorID(v uuid.UUID) *CourseUpsert {
	u.Set(course.FieldAuthorID, v)
	return u
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *CourseUpsert) UpdateAuthorID() *CourseUpsert {
	u.SetExcluded(course.FieldAuthorID)
	return u
}

// SetOrganizationDomain sets the "organization_domain" field.
func (u *CourseUpsert) SetOrganizationDomain(v string) *CourseUpsert {
	u.Set(course.FieldOrganizationDomain, v)
	return u
}

// UpdateOrganizationDomain sets the "organization_domain" field to the value that was provided on create.
func (u *CourseUpsert) UpdateOrganizationDomain() *CourseUpsert {
	u.SetExcluded(course.FieldOrganizationDomain)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CourseUpsert) SetUpdatedAt(v time.Time) *CourseUpsert {
	u.Set(course.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CourseUpsert) UpdateUpdatedAt() *CourseUpsert {
	u.SetExcluded(course.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(course.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CourseUpsertOne) UpdateNewValues() *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(course.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(course.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Course.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CourseUpsertOne) Ignore() *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseUpsertOne) DoNothing() *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseCreate.OnConflict
// documentation for more info.
func (u *CourseUpsertOne) Update(set func(*CourseUpsert)) *CourseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CourseUpsertOne) SetTitle(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateTitle() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CourseUpsertOne) SetDescription(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateDescription() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateDescription()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *CourseUpsertOne) SetDifficulty(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateDifficulty() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateDifficulty()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *CourseUpsertOne) SetDurationMinutes(v int) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *CourseUpsertOne) AddDurationMinutes(v int) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateDurationMinutes() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetPrerequisites sets the "prerequisites" field.
func (u *CourseUpsertOne) SetPrerequisites(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetPrerequisites(v)
	})
}

// UpdatePrerequisites sets the "prerequisites" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdatePrerequisites() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdatePrerequisites()
	})
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (u *CourseUpsertOne) ClearPrerequisites() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.ClearPrerequisites()
	})
}

// SetTags sets the "tags" field.
func (u *CourseUpsertOne) SetTags(v []string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateTags() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *CourseUpsertOne) ClearTags() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.ClearTags()
	})
}

// SetImage sets the "image" field.
func (u *CourseUpsertOne) SetImage(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetImage(v)
	})
}

// UpdateImage sets the "image" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateImage() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateImage()
	})
}

// ClearImage clears the value of the "image" field.
func (u *CourseUpsertOne) ClearImage() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.ClearImage()
	})
}

// SetStatus sets the "status" field.
func (u *CourseUpsertOne) SetStatus(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateStatus() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateStatus()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *CourseUpsertOne) SetSortOrder(v int) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *CourseUpsertOne) AddSortOrder(v int) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateSortOrder() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateSortOrder()
	})
}

// SetFeatured sets the "featured" field.
func (u *CourseUpsertOne) SetFeatured(v bool) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateFeatured() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateFeatured()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *CourseUpsertOne) SetAuthorID(v uuid.UUID) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateAuthorID() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateAuthorID()
	})
}

// SetOrganizationDomain sets the "organization_domain" field.
func (u *CourseUpsertOne) SetOrganizationDomain(v string) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetOrganizationDomain(v)
	})
}

// UpdateOrganizationDomain sets the "organization_domain" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateOrganizationDomain() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateOrganizationDomain()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CourseUpsertOne) SetUpdatedAt(v time.Time) *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CourseUpsertOne) UpdateUpdatedAt() *CourseUpsertOne {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CourseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CourseUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CourseUpsertOne.ID is not supported by MySQL driver. Use CourseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CourseUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CourseCreateBulk is the builder for creating many Course entities in bulk.
type CourseCreateBulk struct {
	config
	err      error
	builders []*CourseCreate
	conflict []sql.ConflictOption
}

// Save creates the Course entities in the database.
func (_c *CourseCreateBulk) Save(ctx context.Context) ([]*Course, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Course, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseMutation)
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
func (_c *CourseCreateBulk) SaveX(ctx context.Context) []*Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Course.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseCreateBulk) OnConflict(opts ...sql.ConflictOption) *CourseUpsertBulk {
	_c.conflict = opts
	return &CourseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseCreateBulk) OnConflictColumns(columns ...string) *CourseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseUpsertBulk{
		create: _c,
	}
}

// CourseUpsertBulk is the builder for "upsert"-ing
// a bulk of Course nodes.
type CourseUpsertBulk struct {
	create *CourseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(course.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CourseUpsertBulk) UpdateNewValues() *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(course.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(course.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Course.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CourseUpsertBulk) Ignore() *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseUpsertBulk) DoNothing() *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseCreateBulk.OnConflict
// documentation for more info.
func (u *CourseUpsertBulk) Update(set func(*CourseUpsert)) *CourseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CourseUpsertBulk) SetTitle(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateTitle() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CourseUpsertBulk) SetDescription(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateDescription() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateDescription()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *CourseUpsertBulk) SetDifficulty(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateDifficulty() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateDifficulty()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *CourseUpsertBulk) SetDurationMinutes(v int) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *CourseUpsertBulk) AddDurationMinutes(v int) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateDurationMinutes() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetPrerequisites sets the "prerequisites" field.
func (u *CourseUpsertBulk) SetPrerequisites(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetPrerequisites(v)
	})
}

// UpdatePrerequisites sets the "prerequisites" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdatePrerequisites() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdatePrerequisites()
	})
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (u *CourseUpsertBulk) ClearPrerequisites() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.ClearPrerequisites()
	})
}

// SetTags sets the "tags" field.
func (u *CourseUpsertBulk) SetTags(v []string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateTags() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *CourseUpsertBulk) ClearTags() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.ClearTags()
	})
}

// SetImage sets the "image" field.
func (u *CourseUpsertBulk) SetImage(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetImage(v)
	})
}

// UpdateImage sets the "image" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateImage() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateImage()
	})
}

// ClearImage clears the value of the "image" field.
func (u *CourseUpsertBulk) ClearImage() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.ClearImage()
	})
}

// SetStatus sets the "status" field.
func (u *CourseUpsertBulk) SetStatus(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateStatus() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateStatus()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *CourseUpsertBulk) SetSortOrder(v int) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *CourseUpsertBulk) AddSortOrder(v int) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateSortOrder() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateSortOrder()
	})
}

// SetFeatured sets the "featured" field.
func (u *CourseUpsertBulk) SetFeatured(v bool) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetFeatured(v)
	})
}

// UpdateFeatured sets the "featured" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateFeatured() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateFeatured()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *CourseUpsertBulk) SetAuthorID(v uuid.UUID) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateAuthorID() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateAuthorID()
	})
}

// SetOrganizationDomain sets the "organization_domain" field.
func (u *CourseUpsertBulk) SetOrganizationDomain(v string) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetOrganizationDomain(v)
	})
}

// UpdateOrganizationDomain sets the "organization_domain" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateOrganizationDomain() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateOrganizationDomain()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CourseUpsertBulk) SetUpdatedAt(v time.Time) *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CourseUpsertBulk) UpdateUpdatedAt() *CourseUpsertBulk {
	return u.Update(func(s *CourseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CourseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CourseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
