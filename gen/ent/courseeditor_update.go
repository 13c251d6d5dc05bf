// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amara-obi/course-gen/gen/ent/course"
	"github.com/amara-obi/course-gen/gen/ent/courseeditor"
	"github.com/amara-obi/course-gen/gen/ent/predicate"
	"github.com/google/uuid"
)

// CourseEditorUpdate is the builder for updating CourseEditor entities.
type CourseEditorUpdate struct {
	config
	hooks    []Hook
	mutation *CourseEditorMutation
}

// Where appends a list predicates to the CourseEditorUpdate builder.
func (_u *CourseEditorUpdate) Where(ps ...predicate.CourseEditor) *CourseEditorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CourseEditorUpdate) SetCourseID(v uuid.UUID) *CourseEditorUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseEditorUpdate) SetNillableCourseID(v *uuid.UUID) *CourseEditorUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CourseEditorUpdate) SetUserID(v uuid.UUID) *CourseEditorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CourseEditorUpdate) SetNillableUserID(v *uuid.UUID) *CourseEditorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *CourseEditorUpdate) SetRole(v string) *CourseEditorUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *CourseEditorUpdate) SetNillableRole(v *string) *CourseEditorUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *CourseEditorUpdate) SetCourse(v *Course) *CourseEditorUpdate {
	return _u.SetCourseID(v.ID)
}

// Mutation returns the CourseEditorMutation object of the builder.
func (_u *CourseEditorUpdate) Mutation() *CourseEditorMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *CourseEditorUpdate) ClearCourse() *CourseEditorUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseEditorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseEditorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseEditorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseEditorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseEditorUpdate) check() error {
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourseEditor.course"`)
	}
	return nil
}

func (_u *CourseEditorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseeditor.Table, courseeditor.Columns, sqlgraph.NewFieldSpec(courseeditor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(courseeditor.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(courseeditor.FieldRole, field.TypeString, value)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courseeditor.CourseTable,
			Columns: []string{courseeditor.CourseColumn},
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
			Table:   courseeditor.CourseTable,
			Columns: []string{courseeditor.CourseColumn},
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
			err = &NotFoundError{courseeditor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseEditorUpdateOne is the builder for updating a single CourseEditor entity.
type CourseEditorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseEditorMutation
}

// SetCourseID sets the "course_id" field.
func (_u *CourseEditorUpdateOne) SetCourseID(v uuid.UUID) *CourseEditorUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseEditorUpdateOne) SetNillableCourseID(v *uuid.UUID) *CourseEditorUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CourseEditorUpdateOne) SetUserID(v uuid.UUID) *CourseEditorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CourseEditorUpdateOne) SetNillableUserID(v *uuid.UUID) *CourseEditorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *CourseEditorUpdateOne) SetRole(v string) *CourseEditorUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *CourseEditorUpdateOne) SetNillableRole(v *string) *CourseEditorUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *CourseEditorUpdateOne) SetCourse(v *Course) *CourseEditorUpdateOne {
	return _u.SetCourseID(v.ID)
}

// Mutation returns the CourseEditorMutation object of the builder.
func (_u *CourseEditorUpdateOne) Mutation() *CourseEditorMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *CourseEditorUpdateOne) ClearCourse() *CourseEditorUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// Where appends a list predicates to the CourseEditorUpdate builder.
func (_u *CourseEditorUpdateOne) Where(ps ...predicate.CourseEditor) *CourseEditorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseEditorUpdateOne) Select(field string, fields ...string) *CourseEditorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseEditor entity.
func (_u *CourseEditorUpdateOne) Save(ctx context.Context) (*CourseEditor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseEditorUpdateOne) SaveX(ctx context.Context) *CourseEditor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseEditorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseEditorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseEditorUpdateOne) check() error {
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourseEditor.course"`)
	}
	return nil
}

func (_u *CourseEditorUpdateOne) sqlSave(ctx context.Context) (_node *CourseEditor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseeditor.Table, courseeditor.Columns, sqlgraph.NewFieldSpec(courseeditor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseEditor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courseeditor.FieldID)
		for _, f := range fields {
			if !courseeditor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courseeditor.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(courseeditor.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(courseeditor.FieldRole, field.TypeString, value)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courseeditor.CourseTable,
			Columns: []string{courseeditor.CourseColumn},
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
			Table:   courseeditor.CourseTable,
			Columns: []string{courseeditor.CourseColumn},
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
	_node = &CourseEditor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseeditor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
