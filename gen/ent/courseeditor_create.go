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
	"github.com/google/uuid"
)

// CourseEditorCreate is the builder for creating a CourseEditor entity.
type CourseEditorCreate struct {
	config
	mutation *CourseEditorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCourseID sets the "course_id" field.
func (_c *CourseEditorCreate) SetCourseID(v uuid.UUID) *CourseEditorCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CourseEditorCreate) SetUserID(v uuid.UUID) *CourseEditorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *CourseEditorCreate) SetRole(v string) *CourseEditorCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *CourseEditorCreate) SetNillableRole(v *string) *CourseEditorCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourseEditorCreate) SetCreatedAt(v time.Time) *CourseEditorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourseEditorCreate) SetNillableCreatedAt(v *time.Time) *CourseEditorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CourseEditorCreate) SetID(v uuid.UUID) *CourseEditorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CourseEditorCreate) SetNillableID(v *uuid.UUID) *CourseEditorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCourse sets the "course" edge to the Course entity.
func (_c *CourseEditorCreate) SetCourse(v *Course) *CourseEditorCreate {
	return _c.SetCourseID(v.ID)
}

// Mutation returns the CourseEditorMutation object of the builder.
func (_c *CourseEditorCreate) Mutation() *CourseEditorMutation {
	return _c.mutation
}

// Save creates the CourseEditor in the database.
func (_c *CourseEditorCreate) Save(ctx context.Context) (*CourseEditor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseEditorCreate) SaveX(ctx context.Context) *CourseEditor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseEditorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseEditorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseEditorCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := courseeditor.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := courseeditor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := courseeditor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseEditorCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "CourseEditor.course_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CourseEditor.user_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "CourseEditor.role"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CourseEditor.created_at"`)}
	}
	if len(_c.mutation.CourseIDs()) == 0 {
		return &ValidationError{Name: "course", err: errors.New(`ent: missing required edge "CourseEditor.course"`)}
	}
	return nil
}

func (_c *CourseEditorCreate) sqlSave(ctx context.Context) (*CourseEditor, error) {
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

func (_c *CourseEditorCreate) createSpec() (*CourseEditor, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseEditor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courseeditor.Table, sqlgraph.NewFieldSpec(courseeditor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(courseeditor.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(courseeditor.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(courseeditor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CourseIDs(); len(nodes) > 0 {
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
		_node.CourseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CourseEditor.Create().
//		SetCourseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseEditorUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseEditorCreate) OnConflict(opts ...sql.ConflictOption) *CourseEditorUpsertOne {
	_c.conflict = opts
	return &CourseEditorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CourseEditor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseEditorCreate) OnConflictColumns(columns ...string) *CourseEditorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseEditorUpsertOne{
		create: _c,
	}
}

type (
	// CourseEditorUpsertOne is the builder for "upsert"-ing
	//  one CourseEditor node.
	CourseEditorUpsertOne struct {
		create *CourseEditorCreate
	}

	// CourseEditorUpsert is the "OnConflict" setter.
	CourseEditorUpsert struct {
		*sql.UpdateSet
	}
)

// SetCourseID sets the "course_id" field.
func (u *CourseEditorUpsert) SetCourseID(v uuid.UUID) *CourseEditorUpsert {
	u.Set(courseeditor.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *CourseEditorUpsert) UpdateCourseID() *CourseEditorUpsert {
	u.SetExcluded(courseeditor.FieldCourseID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *CourseEditorUpsert) SetUserID(v uuid.UUID) *CourseEditorUpsert {
	u.Set(courseeditor.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CourseEditorUpsert) UpdateUserID() *CourseEditorUpsert {
	u.SetExcluded(courseeditor.FieldUserID)
	return u
}

// SetRole sets the "role" field.
func (u *CourseEditorUpsert) SetRole(v string) *CourseEditorUpsert {
	u.Set(courseeditor.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *CourseEditorUpsert) UpdateRole() *CourseEditorUpsert {
	u.SetExcluded(courseeditor.FieldRole)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CourseEditor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(courseeditor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CourseEditorUpsertOne) UpdateNewValues() *CourseEditorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(courseeditor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(courseeditor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CourseEditor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CourseEditorUpsertOne) Ignore() *CourseEditorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseEditorUpsertOne) DoNothing() *CourseEditorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseEditorCreate.OnConflict
// documentation for more info.
func (u *CourseEditorUpsertOne) Update(set func(*CourseEditorUpsert)) *CourseEditorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseEditorUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *CourseEditorUpsertOne) SetCourseID(v uuid.UUID) *CourseEditorUpsertOne {
	return u.Update(func(s *CourseEditorUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *CourseEditorUpsertOne) UpdateCourseID() *CourseEditorUpsertOne {
	return u.Update(func(s *CourseEditorUpsert) {
		s.UpdateCourseID()
	})
}

// SetUserID sets the "user_id" field.
func (u *CourseEditorUpsertOne) SetUserID(v uuid.UUID) *CourseEditorUpsertOne {
	return u.Update(func(s *CourseEditorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CourseEditorUpsertOne) UpdateUserID() *CourseEditorUpsertOne {
	return u.Update(func(s *CourseEditorUpsert) {
		s.UpdateUserID()
	})
}

// SetRole sets the "role" field.
func (u *CourseEditorUpsertOne) SetRole(v string) *CourseEditorUpsertOne {
	return u.Update(func(s *CourseEditorUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *CourseEditorUpsertOne) UpdateRole() *CourseEditorUpsertOne {
	return u.Update(func(s *CourseEditorUpsert) {
		s.UpdateRole()
	})
}

// Exec executes the query.
func (u *CourseEditorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseEditorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseEditorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CourseEditorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CourseEditorUpsertOne.ID is not supported by MySQL driver. Use CourseEditorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CourseEditorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CourseEditorCreateBulk is the builder for creating many CourseEditor entities in bulk.
type CourseEditorCreateBulk struct {
	config
	err      error
	builders []*CourseEditorCreate
	conflict []sql.ConflictOption
}

// Save creates the CourseEditor entities in the database.
func (_c *CourseEditorCreateBulk) Save(ctx context.Context) ([]*CourseEditor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseEditor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseEditorMutation)
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
func (_c *CourseEditorCreateBulk) SaveX(ctx context.Context) []*CourseEditor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseEditorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseEditorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CourseEditor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseEditorUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseEditorCreateBulk) OnConflict(opts ...sql.ConflictOption) *CourseEditorUpsertBulk {
	_c.conflict = opts
	return &CourseEditorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CourseEditor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseEditorCreateBulk) OnConflictColumns(columns ...string) *CourseEditorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseEditorUpsertBulk{
		create: _c,
	}
}

// CourseEditorUpsertBulk is the builder for "upsert"-ing
// a bulk of CourseEditor nodes.
type CourseEditorUpsertBulk struct {
	create *CourseEditorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CourseEditor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(courseeditor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CourseEditorUpsertBulk) UpdateNewValues() *CourseEditorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(courseeditor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(courseeditor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CourseEditor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CourseEditorUpsertBulk) Ignore() *CourseEditorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseEditorUpsertBulk) DoNothing() *CourseEditorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseEditorCreateBulk.OnConflict
// documentation for more info.
func (u *CourseEditorUpsertBulk) Update(set func(*CourseEditorUpsert)) *CourseEditorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseEditorUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *CourseEditorUpsertBulk) SetCourseID(v uuid.UUID) *CourseEditorUpsertBulk {
	return u.Update(func(s *CourseEditorUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *CourseEditorUpsertBulk) UpdateCourseID() *CourseEditorUpsertBulk {
	return u.Update(func(s *CourseEditorUpsert) {
		s.UpdateCourseID()
	})
}

// SetUserID sets the "user_id" field.
func (u *CourseEditorUpsertBulk) SetUserID(v uuid.UUID) *CourseEditorUpsertBulk {
	return u.Update(func(s *CourseEditorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CourseEditorUpsertBulk) UpdateUserID() *CourseEditorUpsertBulk {
	return u.Update(func(s *CourseEditorUpsert) {
		s.UpdateUserID()
	})
}

// SetRole sets the "role" field.
func (u *CourseEditorUpsertBulk) SetRole(v string) *CourseEditorUpsertBulk {
	return u.Update(func(s *CourseEditorUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *CourseEditorUpsertBulk) UpdateRole() *CourseEditorUpsertBulk {
	return u.Update(func(s *CourseEditorUpsert) {
		s.UpdateRole()
	})
}

// Exec executes the query.
func (u *CourseEditorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CourseEditorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseEditorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseEditorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
