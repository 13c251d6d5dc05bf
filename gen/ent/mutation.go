// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amara-obi/course-gen/gen/ent/appsetting"
	"github.com/amara-obi/course-gen/gen/ent/course"
	"github.com/amara-obi/course-gen/gen/ent/courseeditor"
	"github.com/amara-obi/course-gen/gen/ent/generationjob"
	"github.com/amara-obi/course-gen/gen/ent/lesson"
	"github.com/amara-obi/course-gen/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppSetting    = "AppSetting"
	TypeCourse        = "Course"
	TypeCourseEditor  = "CourseEditor"
	TypeGenerationJob = "GenerationJob"
	TypeLesson        = "Lesson"
)

// AppSettingMutation represents an operation that mutates the AppSetting nodes in the graph.
type AppSettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AppSetting, error)
	predicates    []predicate.AppSetting
}

var _ ent.Mutation = (*AppSettingMutation)(nil)

// appsettingOption allows management of the mutation configuration using functional options.
type appsettingOption func(*AppSettingMutation)

// newAppSettingMutation creates new mutation for the AppSetting entity.
func newAppSettingMutation(c config, op Op, opts ...appsettingOption) *AppSettingMutation {
	m := &AppSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeAppSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppSettingID sets the ID field of the mutation.
func withAppSettingID(id int) appsettingOption {
	return func(m *AppSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *AppSetting
		)
		m.oldValue = func(ctx context.Context) (*AppSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AppSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppSetting sets the old AppSetting of the mutation.
func withAppSetting(node *AppSetting) appsettingOption {
	return func(m *AppSettingMutation) {
		m.oldValue = func(context.Context) (*AppSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppSettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppSettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AppSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *AppSettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *AppSettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the AppSetting entity.
// If the AppSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppSettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *AppSettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *AppSettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *AppSettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the AppSetting entity.
// If the AppSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppSettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *AppSettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AppSetting entity.
// If the AppSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AppSettingMutation builder.
func (m *AppSettingMutation) Where(ps ...predicate.AppSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AppSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AppSetting).
func (m *AppSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppSettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, appsetting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, appsetting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, appsetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appsetting.FieldKey:
		return m.Key()
	case appsetting.FieldValue:
		return m.Value()
	case appsetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appsetting.FieldKey:
		return m.OldKey(ctx)
	case appsetting.FieldValue:
		return m.OldValue(ctx)
	case appsetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AppSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appsetting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case appsetting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case appsetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AppSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AppSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AppSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppSettingMutation) ResetField(name string) error {
	switch name {
	case appsetting.FieldKey:
		m.ResetKey()
		return nil
	case appsetting.FieldValue:
		m.ResetValue()
		return nil
	case appsetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AppSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AppSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AppSetting edge %s", name)
}

// CourseMutation represents an operation that mutates the Course nodes in the graph.
type CourseMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	title               *string
	description         *string
	difficulty          *string
	duration_minutes    *int
	addduration_minutes *int
	prerequisites       *string
	tags                *[]string
	appendtags          []string
	image               *string
	status              *string
	sort_order          *int
	addsort_order       *int
	featured            *bool
	author_id           *uuid.UUID
	organization_domain *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	lessons             map[uuid.UUID]struct{}
	removedlessons      map[uuid.UUID]struct{}
	clearedlessons      bool
	editors             map[uuid.UUID]struct{}
	removededitors      map[uuid.UUID]struct{}
	clearededitors      bool
	done                bool
	oldValue            func(context.Context) (*Course, error)
	predicates          []predicate.Course
}

var _ ent.Mutation = (*CourseMutation)(nil)

// courseOption allows management of the mutation configuration using functional options.
type courseOption func(*CourseMutation)

// newCourseMutation creates new mutation for the Course entity.
func newCourseMutation(c config, op Op, opts ...courseOption) *CourseMutation {
	m := &CourseMutation{
		config:        c,
		op:            op,
		typ:           TypeCourse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseID sets the ID field of the mutation.
func withCourseID(id uuid.UUID) courseOption {
	return func(m *CourseMutation) {
		var (
			err   error
			once  sync.Once
			value *Course
		)
		m.oldValue = func(ctx context.Context) (*Course, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Course.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourse sets the old Course of the mutation.
func withCourse(node *Course) courseOption {
	return func(m *CourseMutation) {
		m.oldValue = func(context.Context) (*Course, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Course entities.
func (m *CourseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Course.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CourseMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CourseMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CourseMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *CourseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CourseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *CourseMutation) ResetDescription() {
	m.description = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *CourseMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *CourseMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *CourseMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *CourseMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *CourseMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *CourseMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *CourseMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *CourseMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetPrerequisites sets the "prerequisites" field.
func (m *CourseMutation) SetPrerequisites(s string) {
	m.prerequisites = &s
}

// Prerequisites returns the value of the "prerequisites" field in the mutation.
func (m *CourseMutation) Prerequisites() (r string, exists bool) {
	v := m.prerequisites
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisites returns the old "prerequisites" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldPrerequisites(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisites is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisites requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisites: %w", err)
	}
	return oldValue.Prerequisites, nil
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (m *CourseMutation) ClearPrerequisites() {
	m.prerequisites = nil
	m.clearedFields[course.FieldPrerequisites] = struct{}{}
}

// PrerequisitesCleared returns if the "prerequisites" field was cleared in this mutation.
func (m *CourseMutation) PrerequisitesCleared() bool {
	_, ok := m.clearedFields[course.FieldPrerequisites]
	return ok
}

// ResetPrerequisites resets all changes to the "prerequisites" field.
func (m *CourseMutation) ResetPrerequisites() {
	m.prerequisites = nil
	delete(m.clearedFields, course.FieldPrerequisites)
}

// SetTags sets the "tags" field.
func (m *CourseMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *CourseMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *CourseMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *CourseMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *CourseMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[course.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *CourseMutation) TagsCleared() bool {
	_, ok := m.clearedFields[course.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *CourseMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, course.FieldTags)
}

// SetImage sets the "image" field.
func (m *CourseMutation) SetImage(s string) {
	m.image = &s
}

// Image returns the value of the "image" field in the mutation.
func (m *CourseMutation) Image() (r string, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImage returns the old "image" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldImage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImage: %w", err)
	}
	return oldValue.Image, nil
}

// ClearImage clears the value of the "image" field.
func (m *CourseMutation) ClearImage() {
	m.image = nil
	m.clearedFields[course.FieldImage] = struct{}{}
}

// ImageCleared returns if the "image" field was cleared in this mutation.
func (m *CourseMutation) ImageCleared() bool {
	_, ok := m.clearedFields[course.FieldImage]
	return ok
}

// ResetImage resets all changes to the "image" field.
func (m *CourseMutation) ResetImage() {
	m.image = nil
	delete(m.clearedFields, course.FieldImage)
}

// SetStatus sets the "status" field.
func (m *CourseMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CourseMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CourseMutation) ResetStatus() {
	m.status = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *CourseMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *CourseMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *CourseMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *CourseMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *CourseMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetFeatured sets the "featured" field.
func (m *CourseMutation) SetFeatured(b bool) {
	m.featured = &b
}

// Featured returns the value of the "featured" field in the mutation.
func (m *CourseMutation) Featured() (r bool, exists bool) {
	v := m.featured
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatured returns the old "featured" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatured: %w", err)
	}
	return oldValue.Featured, nil
}

// ResetFeatured resets all changes to the "featured" field.
func (m *CourseMutation) ResetFeatured() {
	m.featured = nil
}

// SetAuthorID sets the "author_id" field.
func (m *CourseMutation) SetAuthorID(u uuid.UUID) {
	m.author_id = &u
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *CourseMutation) AuthorID() (r uuid.UUID, exists bool) {
	v := m.author_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldAuthorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *CourseMutation) ResetAuthorID() {
	m.author_id = nil
}

// SetOrganizationDomain sets the "organization_domain" field.
func (m *CourseMutation) SetOrganizationDomain(s string) {
	m.organization_domain = &s
}

// OrganizationDomain returns the value of the "organization_domain" field in the mutation.
func (m *CourseMutation) OrganizationDomain() (r string, exists bool) {
	v := m.organization_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationDomain returns the old "organization_domain" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldOrganizationDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationDomain: %w", err)
	}
	return oldValue.OrganizationDomain, nil
}

// ResetOrganizationDomain resets all changes to the "organization_domain" field.
func (m *CourseMutation) ResetOrganizationDomain() {
	m.organization_domain = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CourseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CourseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CourseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CourseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CourseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by ids.
func (m *CourseMutation) AddLessonIDs(ids ...uuid.UUID) {
	if m.lessons == nil {
		m.lessons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.lessons[ids[i]] = struct{}{}
	}
}

// ClearLessons clears the "lessons" edge to the Lesson entity.
func (m *CourseMutation) ClearLessons() {
	m.clearedlessons = true
}

// LessonsCleared reports if the "lessons" edge to the Lesson entity was cleared.
func (m *CourseMutation) LessonsCleared() bool {
	return m.clearedlessons
}

// RemoveLessonIDs removes the "lessons" edge to the Lesson entity by IDs.
func (m *CourseMutation) RemoveLessonIDs(ids ...uuid.UUID) {
	if m.removedlessons == nil {
		m.removedlessons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.lessons, ids[i])
		m.removedlessons[ids[i]] = struct{}{}
	}
}

// RemovedLessons returns the removed IDs of the "lessons" edge to the Lesson entity.
func (m *CourseMutation) RemovedLessonsIDs() (ids []uuid.UUID) {
	for id := range m.removedlessons {
		ids = append(ids, id)
	}
	return
}

// LessonsIDs returns the "lessons" edge IDs in the mutation.
func (m *CourseMutation) LessonsIDs() (ids []uuid.UUID) {
	for id := range m.lessons {
		ids = append(ids, id)
	}
	return
}

// ResetLessons resets all changes to the "lessons" edge.
func (m *CourseMutation) ResetLessons() {
	m.lessons = nil
	m.clearedlessons = false
	m.removedlessons = nil
}

// AddEditorIDs adds the "editors" edge to the CourseEditor entity by ids.
func (m *CourseMutation) AddEditorIDs(ids ...uuid.UUID) {
	if m.editors == nil {
		m.editors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.editors[ids[i]] = struct{}{}
	}
}

// ClearEditors clears the "editors" edge to the CourseEditor entity.
func (m *CourseMutation) ClearEditors() {
	m.clearededitors = true
}

// EditorsCleared reports if the "editors" edge to the CourseEditor entity was cleared.
func (m *CourseMutation) EditorsCleared() bool {
	return m.clearededitors
}

// RemoveEditorIDs removes the "editors" edge to the CourseEditor entity by IDs.
func (m *CourseMutation) RemoveEditorIDs(ids ...uuid.UUID) {
	if m.removededitors == nil {
		m.removededitors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.editors, ids[i])
		m.removededitors[ids[i]] = struct{}{}
	}
}

// RemovedEditors returns the removed IDs of the "editors" edge to the CourseEditor entity.
func (m *CourseMutation) RemovedEditorsIDs() (ids []uuid.UUID) {
	for id := range m.removededitors {
		ids = append(ids, id)
	}
	return
}

// EditorsIDs returns the "editors" edge IDs in the mutation.
func (m *CourseMutation) EditorsIDs() (ids []uuid.UUID) {
	for id := range m.editors {
		ids = append(ids, id)
	}
	return
}

// ResetEditors resets all changes to the "editors" edge.
func (m *CourseMutation) ResetEditors() {
	m.editors = nil
	m.clearededitors = false
	m.removededitors = nil
}

// Where appends a list predicates to the CourseMutation builder.
func (m *CourseMutation) Where(ps ...predicate.Course) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Course, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Course).
func (m *CourseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.title != nil {
		fields = append(fields, course.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, course.FieldDescription)
	}
	if m.difficulty != nil {
		fields = append(fields, course.FieldDifficulty)
	}
	if m.duration_minutes != nil {
		fields = append(fields, course.FieldDurationMinutes)
	}
	if m.prerequisites != nil {
		fields = append(fields, course.FieldPrerequisites)
	}
	if m.tags != nil {
		fields = append(fields, course.FieldTags)
	}
	if m.image != nil {
		fields = append(fields, course.FieldImage)
	}
	if m.status != nil {
		fields = append(fields, course.FieldStatus)
	}
	if m.sort_order != nil {
		fields = append(fields, course.FieldSortOrder)
	}
	if m.featured != nil {
		fields = append(fields, course.FieldFeatured)
	}
	if m.author_id != nil {
		fields = append(fields, course.FieldAuthorID)
	}
	if m.organization_domain != nil {
		fields = append(fields, course.FieldOrganizationDomain)
	}
	if m.created_at != nil {
		fields = append(fields, course.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, course.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case course.FieldTitle:
		return m.Title()
	case course.FieldDescription:
		return m.Description()
	case course.FieldDifficulty:
		return m.Difficulty()
	case course.FieldDurationMinutes:
		return m.DurationMinutes()
	case course.FieldPrerequisites:
		return m.Prerequisites()
	case course.FieldTags:
		return m.Tags()
	case course.FieldImage:
		return m.Image()
	case course.FieldStatus:
		return m.Status()
	case course.FieldSortOrder:
		return m.SortOrder()
	case course.FieldFeatured:
		return m.Featured()
	case course.FieldAuthorID:
		return m.AuthorID()
	case course.FieldOrganizationDomain:
		return m.OrganizationDomain()
	case course.FieldCreatedAt:
		return m.CreatedAt()
	case course.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case course.FieldTitle:
		return m.OldTitle(ctx)
	case course.FieldDescription:
		return m.OldDescription(ctx)
	case course.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case course.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case course.FieldPrerequisites:
		return m.OldPrerequisites(ctx)
	case course.FieldTags:
		return m.OldTags(ctx)
	case course.FieldImage:
		return m.OldImage(ctx)
	case course.FieldStatus:
		return m.OldStatus(ctx)
	case course.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case course.FieldFeatured:
		return m.OldFeatured(ctx)
	case course.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case course.FieldOrganizationDomain:
		return m.OldOrganizationDomain(ctx)
	case course.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case course.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Course field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case course.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case course.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case course.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case course.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case course.FieldPrerequisites:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisites(v)
		return nil
	case course.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case course.FieldImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImage(v)
		return nil
	case course.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case course.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case course.FieldFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatured(v)
		return nil
	case course.FieldAuthorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case course.FieldOrganizationDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationDomain(v)
		return nil
	case course.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case course.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, course.FieldDurationMinutes)
	}
	if m.addsort_order != nil {
		fields = append(fields, course.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case course.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case course.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case course.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case course.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Course numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(course.FieldPrerequisites) {
		fields = append(fields, course.FieldPrerequisites)
	}
	if m.FieldCleared(course.FieldTags) {
		fields = append(fields, course.FieldTags)
	}
	if m.FieldCleared(course.FieldImage) {
		fields = append(fields, course.FieldImage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseMutation) ClearField(name string) error {
	switch name {
	case course.FieldPrerequisites:
		m.ClearPrerequisites()
		return nil
	case course.FieldTags:
		m.ClearTags()
		return nil
	case course.FieldImage:
		m.ClearImage()
		return nil
	}
	return fmt.Errorf("unknown Course nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseMutation) ResetField(name string) error {
	switch name {
	case course.FieldTitle:
		m.ResetTitle()
		return nil
	case course.FieldDescription:
		m.ResetDescription()
		return nil
	case course.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case course.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case course.FieldPrerequisites:
		m.ResetPrerequisites()
		return nil
	case course.FieldTags:
		m.ResetTags()
		return nil
	case course.FieldImage:
		m.ResetImage()
		return nil
	case course.FieldStatus:
		m.ResetStatus()
		return nil
	case course.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case course.FieldFeatured:
		m.ResetFeatured()
		return nil
	case course.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case course.FieldOrganizationDomain:
		m.ResetOrganizationDomain()
		return nil
	case course.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case course.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lessons != nil {
		edges = append(edges, course.EdgeLessons)
	}
	if m.editors != nil {
		edges = append(edges, course.EdgeEditors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case course.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.lessons))
		for id := range m.lessons {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeEditors:
		ids := make([]ent.Value, 0, len(m.editors))
		for id := range m.editors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlessons != nil {
		edges = append(edges, course.EdgeLessons)
	}
	if m.removededitors != nil {
		edges = append(edges, course.EdgeEditors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case course.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.removedlessons))
		for id := range m.removedlessons {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeEditors:
		ids := make([]ent.Value, 0, len(m.removededitors))
		for id := range m.removededitors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlessons {
		edges = append(edges, course.EdgeLessons)
	}
	if m.clearededitors {
		edges = append(edges, course.EdgeEditors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseMutation) EdgeCleared(name string) bool {
	switch name {
	case course.EdgeLessons:
		return m.clearedlessons
	case course.EdgeEditors:
		return m.clearededitors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Course unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseMutation) ResetEdge(name string) error {
	switch name {
	case course.EdgeLessons:
		m.ResetLessons()
		return nil
	case course.EdgeEditors:
		m.ResetEditors()
		return nil
	}
	return fmt.Errorf("unknown Course edge %s", name)
}

// CourseEditorMutation represents an operation that mutates the CourseEditor nodes in the graph.
type CourseEditorMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	user_id       *uuid.UUID
	role          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	course        *uuid.UUID
	clearedcourse bool
	done          bool
	oldValue      func(context.Context) (*CourseEditor, error)
	predicates    []predicate.CourseEditor
}

var _ ent.Mutation = (*CourseEditorMutation)(nil)

// courseeditorOption allows management of the mutation configuration using functional options.
type courseeditorOption func(*CourseEditorMutation)

// newCourseEditorMutation creates new mutation for the CourseEditor entity.
func newCourseEditorMutation(c config, op Op, opts ...courseeditorOption) *CourseEditorMutation {
	m := &CourseEditorMutation{
		config:        c,
		op:            op,
		typ:           TypeCourseEditor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseEditorID sets the ID field of the mutation.
func withCourseEditorID(id uuid.UUID) courseeditorOption {
	return func(m *CourseEditorMutation) {
		var (
			err   error
			once  sync.Once
			value *CourseEditor
		)
		m.oldValue = func(ctx context.Context) (*CourseEditor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourseEditor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourseEditor sets the old CourseEditor of the mutation.
func withCourseEditor(node *CourseEditor) courseeditorOption {
	return func(m *CourseEditorMutation) {
		m.oldValue = func(context.Context) (*CourseEditor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseEditorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseEditorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CourseEditor entities.
func (m *CourseEditorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseEditorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseEditorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourseEditor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseID sets the "course_id" field.
func (m *CourseEditorMutation) SetCourseID(u uuid.UUID) {
	m.course = &u
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *CourseEditorMutation) CourseID() (r uuid.UUID, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the CourseEditor entity.
// If the CourseEditor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEditorMutation) OldCourseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *CourseEditorMutation) ResetCourseID() {
	m.course = nil
}

// SetUserID sets the "user_id" field.
func (m *CourseEditorMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CourseEditorMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CourseEditor entity.
// If the CourseEditor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEditorMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CourseEditorMutation) ResetUserID() {
	m.user_id = nil
}

// SetRole sets the "role" field.
func (m *CourseEditorMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *CourseEditorMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the CourseEditor entity.
// If the CourseEditor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEditorMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *CourseEditorMutation) ResetRole() {
	m.role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CourseEditorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourseEditorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CourseEditor entity.
// If the CourseEditor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEditorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CourseEditorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCourse clears the "course" edge to the Course entity.
func (m *CourseEditorMutation) ClearCourse() {
	m.clearedcourse = true
	m.clearedFields[courseeditor.FieldCourseID] = struct{}{}
}

// CourseCleared reports if the "course" edge to the Course entity was cleared.
func (m *CourseEditorMutation) CourseCleared() bool {
	return m.clearedcourse
}

// CourseIDs returns the "course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseID instead. It exists only for internal usage by the builders.
func (m *CourseEditorMutation) CourseIDs() (ids []uuid.UUID) {
	if id := m.course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourse resets all changes to the "course" edge.
func (m *CourseEditorMutation) ResetCourse() {
	m.course = nil
	m.clearedcourse = false
}

// Where appends a list predicates to the CourseEditorMutation builder.
func (m *CourseEditorMutation) Where(ps ...predicate.CourseEditor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseEditorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseEditorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourseEditor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseEditorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseEditorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourseEditor).
func (m *CourseEditorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseEditorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.course != nil {
		fields = append(fields, courseeditor.FieldCourseID)
	}
	if m.user_id != nil {
		fields = append(fields, courseeditor.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, courseeditor.FieldRole)
	}
	if m.created_at != nil {
		fields = append(fields, courseeditor.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseEditorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case courseeditor.FieldCourseID:
		return m.CourseID()
	case courseeditor.FieldUserID:
		return m.UserID()
	case courseeditor.FieldRole:
		return m.Role()
	case courseeditor.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseEditorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case courseeditor.FieldCourseID:
		return m.OldCourseID(ctx)
	case courseeditor.FieldUserID:
		return m.OldUserID(ctx)
	case courseeditor.FieldRole:
		return m.OldRole(ctx)
	case courseeditor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CourseEditor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseEditorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case courseeditor.FieldCourseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case courseeditor.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case courseeditor.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case courseeditor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CourseEditor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseEditorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseEditorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseEditorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CourseEditor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseEditorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseEditorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseEditorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CourseEditor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseEditorMutation) ResetField(name string) error {
	switch name {
	case courseeditor.FieldCourseID:
		m.ResetCourseID()
		return nil
	case courseeditor.FieldUserID:
		m.ResetUserID()
		return nil
	case courseeditor.FieldRole:
		m.ResetRole()
		return nil
	case courseeditor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CourseEditor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseEditorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.course != nil {
		edges = append(edges, courseeditor.EdgeCourse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseEditorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case courseeditor.EdgeCourse:
		if id := m.course; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseEditorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseEditorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseEditorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcourse {
		edges = append(edges, courseeditor.EdgeCourse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseEditorMutation) EdgeCleared(name string) bool {
	switch name {
	case courseeditor.EdgeCourse:
		return m.clearedcourse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseEditorMutation) ClearEdge(name string) error {
	switch name {
	case courseeditor.EdgeCourse:
		m.ClearCourse()
		return nil
	}
	return fmt.Errorf("unknown CourseEditor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseEditorMutation) ResetEdge(name string) error {
	switch name {
	case courseeditor.EdgeCourse:
		m.ResetCourse()
		return nil
	}
	return fmt.Errorf("unknown CourseEditor edge %s", name)
}

// GenerationJobMutation represents an operation that mutates the GenerationJob nodes in the graph.
type GenerationJobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	course_name             *string
	course_description      *string
	difficulty_level        *string
	lesson_count            *int
	addlesson_count         *int
	include_quiz            *bool
	include_ai_tutor        *bool
	include_video_links     *bool
	requester_id            *uuid.UUID
	organization_domain     *string
	status                  *string
	progress_percent        *int
	addprogress_percent     *int
	progress_message        *string
	generated_payload       *json.RawMessage
	appendgenerated_payload json.RawMessage
	result_course_id        *uuid.UUID
	error_message           *string
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*GenerationJob, error)
	predicates              []predicate.GenerationJob
}

var _ ent.Mutation = (*GenerationJobMutation)(nil)

// generationjobOption allows management of the mutation configuration using functional options.
type generationjobOption func(*GenerationJobMutation)

// newGenerationJobMutation creates new mutation for the GenerationJob entity.
func newGenerationJobMutation(c config, op Op, opts ...generationjobOption) *GenerationJobMutation {
	m := &GenerationJobMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationJobID sets the ID field of the mutation.
func withGenerationJobID(id uuid.UUID) generationjobOption {
	return func(m *GenerationJobMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationJob
		)
		m.oldValue = func(ctx context.Context) (*GenerationJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationJob sets the old GenerationJob of the mutation.
func withGenerationJob(node *GenerationJob) generationjobOption {
	return func(m *GenerationJobMutation) {
		m.oldValue = func(context.Context) (*GenerationJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GenerationJob entities.
func (m *GenerationJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseName sets the "course_name" field.
func (m *GenerationJobMutation) SetCourseName(s string) {
	m.course_name = &s
}

// CourseName returns the value of the "course_name" field in the mutation.
func (m *GenerationJobMutation) CourseName() (r string, exists bool) {
	v := m.course_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseName returns the old "course_name" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldCourseName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseName: %w", err)
	}
	return oldValue.CourseName, nil
}

// ResetCourseName resets all changes to the "course_name" field.
func (m *GenerationJobMutation) ResetCourseName() {
	m.course_name = nil
}

// SetCourseDescription sets the "course_description" field.
func (m *GenerationJobMutation) SetCourseDescription(s string) {
	m.course_description = &s
}

// CourseDescription returns the value of the "course_description" field in the mutation.
func (m *GenerationJobMutation) CourseDescription() (r string, exists bool) {
	v := m.course_description
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseDescription returns the old "course_description" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldCourseDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseDescription: %w", err)
	}
	return oldValue.CourseDescription, nil
}

// ResetCourseDescription resets all changes to the "course_description" field.
func (m *GenerationJobMutation) ResetCourseDescription() {
	m.course_description = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *GenerationJobMutation) SetDifficultyLevel(s string) {
	m.difficulty_level = &s
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *GenerationJobMutation) DifficultyLevel() (r string, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldDifficultyLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *GenerationJobMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
}

// SetLessonCount sets the "lesson_count" field.
func (m *GenerationJobMutation) SetLessonCount(i int) {
	m.lesson_count = &i
	m.addlesson_count = nil
}

// LessonCount returns the value of the "lesson_count" field in the mutation.
func (m *GenerationJobMutation) LessonCount() (r int, exists bool) {
	v := m.lesson_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonCount returns the old "lesson_count" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldLessonCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonCount: %w", err)
	}
	return oldValue.LessonCount, nil
}

// AddLessonCount adds i to the "lesson_count" field.
func (m *GenerationJobMutation) AddLessonCount(i int) {
	if m.addlesson_count != nil {
		*m.addlesson_count += i
	} else {
		m.addlesson_count = &i
	}
}

// AddedLessonCount returns the value that was added to the "lesson_count" field in this mutation.
func (m *GenerationJobMutation) AddedLessonCount() (r int, exists bool) {
	v := m.addlesson_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLessonCount resets all changes to the "lesson_count" field.
func (m *GenerationJobMutation) ResetLessonCount() {
	m.lesson_count = nil
	m.addlesson_count = nil
}

// SetIncludeQuiz sets the "include_quiz" field.
func (m *GenerationJobMutation) SetIncludeQuiz(b bool) {
	m.include_quiz = &b
}

// IncludeQuiz returns the value of the "include_quiz" field in the mutation.
func (m *GenerationJobMutation) IncludeQuiz() (r bool, exists bool) {
	v := m.include_quiz
	if v == nil {
		return
	}
	return *v, true
}

// OldIncludeQuiz returns the old "include_quiz" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldIncludeQuiz(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncludeQuiz is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncludeQuiz requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncludeQuiz: %w", err)
	}
	return oldValue.IncludeQuiz, nil
}

// ResetIncludeQuiz resets all changes to the "include_quiz" field.
func (m *GenerationJobMutation) ResetIncludeQuiz() {
	m.include_quiz = nil
}

// SetIncludeAiTutor sets the "include_ai_tutor" field.
func (m *GenerationJobMutation) SetIncludeAiTutor(b bool) {
	m.include_ai_tutor = &b
}

// IncludeAiTutor returns the value of the "include_ai_tutor" field in the mutation.
func (m *GenerationJobMutation) IncludeAiTutor() (r bool, exists bool) {
	v := m.include_ai_tutor
	if v == nil {
		return
	}
	return *v, true
}

// OldIncludeAiTutor returns the old "include_ai_tutor" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldIncludeAiTutor(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncludeAiTutor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncludeAiTutor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncludeAiTutor: %w", err)
	}
	return oldValue.IncludeAiTutor, nil
}

// ResetIncludeAiTutor resets all changes to the "include_ai_tutor" field.
func (m *GenerationJobMutation) ResetIncludeAiTutor() {
	m.include_ai_tutor = nil
}

// SetIncludeVideoLinks sets the "include_video_links" field.
func (m *GenerationJobMutation) SetIncludeVideoLinks(b bool) {
	m.include_video_links = &b
}

// IncludeVideoLinks returns the value of the "include_video_links" field in the mutation.
func (m *GenerationJobMutation) IncludeVideoLinks() (r bool, exists bool) {
	v := m.include_video_links
	if v == nil {
		return
	}
	return *v, true
}

// OldIncludeVideoLinks returns the old "include_video_links" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldIncludeVideoLinks(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncludeVideoLinks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncludeVideoLinks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncludeVideoLinks: %w", err)
	}
	return oldValue.IncludeVideoLinks, nil
}

// ResetIncludeVideoLinks resets all changes to the "include_video_links" field.
func (m *GenerationJobMutation) ResetIncludeVideoLinks() {
	m.include_video_links = nil
}

// SetRequesterID sets the "requester_id" field.
func (m *GenerationJobMutation) SetRequesterID(u uuid.UUID) {
	m.requester_id = &u
}

// RequesterID returns the value of the "requester_id" field in the mutation.
func (m *GenerationJobMutation) RequesterID() (r uuid.UUID, exists bool) {
	v := m.requester_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterID returns the old "requester_id" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldRequesterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterID: %w", err)
	}
	return oldValue.RequesterID, nil
}

// ResetRequesterID resets all changes to the "requester_id" field.
func (m *GenerationJobMutation) ResetRequesterID() {
	m.requester_id = nil
}

// SetOrganizationDomain sets the "organization_domain" field.
func (m *GenerationJobMutation) SetOrganizationDomain(s string) {
	m.organization_domain = &s
}

// OrganizationDomain returns the value of the "organization_domain" field in the mutation.
func (m *GenerationJobMutation) OrganizationDomain() (r string, exists bool) {
	v := m.organization_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationDomain returns the old "organization_domain" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldOrganizationDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationDomain: %w", err)
	}
	return oldValue.OrganizationDomain, nil
}

// ResetOrganizationDomain resets all changes to the "organization_domain" field.
func (m *GenerationJobMutation) ResetOrganizationDomain() {
	m.organization_domain = nil
}

// SetStatus sets the "status" field.
func (m *GenerationJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *GenerationJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GenerationJobMutation) ResetStatus() {
	m.status = nil
}

// SetProgressPercent sets the "progress_percent" field.
func (m *GenerationJobMutation) SetProgressPercent(i int) {
	m.progress_percent = &i
	m.addprogress_percent = nil
}

// ProgressPercent returns the value of the "progress_percent" field in the mutation.
func (m *GenerationJobMutation) ProgressPercent() (r int, exists bool) {
	v := m.progress_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercent returns the old "progress_percent" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldProgressPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercent: %w", err)
	}
	return oldValue.ProgressPercent, nil
}

// AddProgressPercent adds i to the "progress_percent" field.
func (m *GenerationJobMutation) AddProgressPercent(i int) {
	if m.addprogress_percent != nil {
		*m.addprogress_percent += i
	} else {
		m.addprogress_percent = &i
	}
}

// AddedProgressPercent returns the value that was added to the "progress_percent" field in this mutation.
func (m *GenerationJobMutation) AddedProgressPercent() (r int, exists bool) {
	v := m.addprogress_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercent resets all changes to the "progress_percent" field.
func (m *GenerationJobMutation) ResetProgressPercent() {
	m.progress_percent = nil
	m.addprogress_percent = nil
}

// SetProgressMessage sets the "progress_message" field.
func (m *GenerationJobMutation) SetProgressMessage(s string) {
	m.progress_message = &s
}

// ProgressMessage returns the value of the "progress_message" field in the mutation.
func (m *GenerationJobMutation) ProgressMessage() (r string, exists bool) {
	v := m.progress_message
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressMessage returns the old "progress_message" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldProgressMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressMessage: %w", err)
	}
	return oldValue.ProgressMessage, nil
}

// ResetProgressMessage resets all changes to the "progress_message" field.
func (m *GenerationJobMutation) ResetProgressMessage() {
	m.progress_message = nil
}

// SetGeneratedPayload sets the "generated_payload" field.
func (m *GenerationJobMutation) SetGeneratedPayload(jm json.RawMessage) {
	m.generated_payload = &jm
	m.appendgenerated_payload = nil
}

// GeneratedPayload returns the value of the "generated_payload" field in the mutation.
func (m *GenerationJobMutation) GeneratedPayload() (r json.RawMessage, exists bool) {
	v := m.generated_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedPayload returns the old "generated_payload" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldGeneratedPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedPayload: %w", err)
	}
	return oldValue.GeneratedPayload, nil
}

// AppendGeneratedPayload adds jm to the "generated_payload" field.
func (m *GenerationJobMutation) AppendGeneratedPayload(jm json.RawMessage) {
	m.appendgenerated_payload = append(m.appendgenerated_payload, jm...)
}

// AppendedGeneratedPayload returns the list of values that were appended to the "generated_payload" field in this mutation.
func (m *GenerationJobMutation) AppendedGeneratedPayload() (json.RawMessage, bool) {
	if len(m.appendgenerated_payload) == 0 {
		return nil, false
	}
	return m.appendgenerated_payload, true
}

// ClearGeneratedPayload clears the value of the "generated_payload" field.
func (m *GenerationJobMutation) ClearGeneratedPayload() {
	m.generated_payload = nil
	m.appendgenerated_payload = nil
	m.clearedFields[generationjob.FieldGeneratedPayload] = struct{}{}
}

// GeneratedPayloadCleared returns if the "generated_payload" field was cleared in this mutation.
func (m *GenerationJobMutation) GeneratedPayloadCleared() bool {
	_, ok := m.clearedFields[generationjob.FieldGeneratedPayload]
	return ok
}

// ResetGeneratedPayload resets all changes to the "generated_payload" field.
func (m *GenerationJobMutation) ResetGeneratedPayload() {
	m.generated_payload = nil
	m.appendgenerated_payload = nil
	delete(m.clearedFields, generationjob.FieldGeneratedPayload)
}

// SetResultCourseID sets the "result_course_id" field.
func (m *GenerationJobMutation) SetResultCourseID(u uuid.UUID) {
	m.result_course_id = &u
}

// ResultCourseID returns the value of the "result_course_id" field in the mutation.
func (m *GenerationJobMutation) ResultCourseID() (r uuid.UUID, exists bool) {
	v := m.result_course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResultCourseID returns the old "result_course_id" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldResultCourseID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultCourseID: %w", err)
	}
	return oldValue.ResultCourseID, nil
}

// ClearResultCourseID clears the value of the "result_course_id" field.
func (m *GenerationJobMutation) ClearResultCourseID() {
	m.result_course_id = nil
	m.clearedFields[generationjob.FieldResultCourseID] = struct{}{}
}

// ResultCourseIDCleared returns if the "result_course_id" field was cleared in this mutation.
func (m *GenerationJobMutation) ResultCourseIDCleared() bool {
	_, ok := m.clearedFields[generationjob.FieldResultCourseID]
	return ok
}

// ResetResultCourseID resets all changes to the "result_course_id" field.
func (m *GenerationJobMutation) ResetResultCourseID() {
	m.result_course_id = nil
	delete(m.clearedFields, generationjob.FieldResultCourseID)
}

// SetErrorMessage sets the "error_message" field.
func (m *GenerationJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GenerationJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *GenerationJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[generationjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *GenerationJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[generationjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GenerationJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, generationjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *GenerationJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GenerationJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GenerationJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *GenerationJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *GenerationJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *GenerationJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[generationjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *GenerationJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[generationjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *GenerationJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, generationjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *GenerationJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *GenerationJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the GenerationJob entity.
// If the GenerationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *GenerationJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[generationjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *GenerationJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[generationjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *GenerationJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, generationjob.FieldCompletedAt)
}

// Where appends a list predicates to the GenerationJobMutation builder.
func (m *GenerationJobMutation) Where(ps ...predicate.GenerationJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationJob).
func (m *GenerationJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationJobMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.course_name != nil {
		fields = append(fields, generationjob.FieldCourseName)
	}
	if m.course_description != nil {
		fields = append(fields, generationjob.FieldCourseDescription)
	}
	if m.difficulty_level != nil {
		fields = append(fields, generationjob.FieldDifficultyLevel)
	}
	if m.lesson_count != nil {
		fields = append(fields, generationjob.FieldLessonCount)
	}
	if m.include_quiz != nil {
		fields = append(fields, generationjob.FieldIncludeQuiz)
	}
	if m.include_ai_tutor != nil {
		fields = append(fields, generationjob.FieldIncludeAiTutor)
	}
	if m.include_video_links != nil {
		fields = append(fields, generationjob.FieldIncludeVideoLinks)
	}
	if m.requester_id != nil {
		fields = append(fields, generationjob.FieldRequesterID)
	}
	if m.organization_domain != nil {
		fields = append(fields, generationjob.FieldOrganizationDomain)
	}
	if m.status != nil {
		fields = append(fields, generationjob.FieldStatus)
	}
	if m.progress_percent != nil {
		fields = append(fields, generationjob.FieldProgressPercent)
	}
	if m.progress_message != nil {
		fields = append(fields, generationjob.FieldProgressMessage)
	}
	if m.generated_payload != nil {
		fields = append(fields, generationjob.FieldGeneratedPayload)
	}
	if m.result_course_id != nil {
		fields = append(fields, generationjob.FieldResultCourseID)
	}
	if m.error_message != nil {
		fields = append(fields, generationjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, generationjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, generationjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, generationjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationjob.FieldCourseName:
		return m.CourseName()
	case generationjob.FieldCourseDescription:
		return m.CourseDescription()
	case generationjob.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case generationjob.FieldLessonCount:
		return m.LessonCount()
	case generationjob.FieldIncludeQuiz:
		return m.IncludeQuiz()
	case generationjob.FieldIncludeAiTutor:
		return m.IncludeAiTutor()
	case generationjob.FieldIncludeVideoLinks:
		return m.IncludeVideoLinks()
	case generationjob.FieldRequesterID:
		return m.RequesterID()
	case generationjob.FieldOrganizationDomain:
		return m.OrganizationDomain()
	case generationjob.FieldStatus:
		return m.Status()
	case generationjob.FieldProgressPercent:
		return m.ProgressPercent()
	case generationjob.FieldProgressMessage:
		return m.ProgressMessage()
	case generationjob.FieldGeneratedPayload:
		return m.GeneratedPayload()
	case generationjob.FieldResultCourseID:
		return m.ResultCourseID()
	case generationjob.FieldErrorMessage:
		return m.ErrorMessage()
	case generationjob.FieldCreatedAt:
		return m.CreatedAt()
	case generationjob.FieldStartedAt:
		return m.StartedAt()
	case generationjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationjob.FieldCourseName:
		return m.OldCourseName(ctx)
	case generationjob.FieldCourseDescription:
		return m.OldCourseDescription(ctx)
	case generationjob.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case generationjob.FieldLessonCount:
		return m.OldLessonCount(ctx)
	case generationjob.FieldIncludeQuiz:
		return m.OldIncludeQuiz(ctx)
	case generationjob.FieldIncludeAiTutor:
		return m.OldIncludeAiTutor(ctx)
	case generationjob.FieldIncludeVideoLinks:
		return m.OldIncludeVideoLinks(ctx)
	case generationjob.FieldRequesterID:
		return m.OldRequesterID(ctx)
	case generationjob.FieldOrganizationDomain:
		return m.OldOrganizationDomain(ctx)
	case generationjob.FieldStatus:
		return m.OldStatus(ctx)
	case generationjob.FieldProgressPercent:
		return m.OldProgressPercent(ctx)
	case generationjob.FieldProgressMessage:
		return m.OldProgressMessage(ctx)
	case generationjob.FieldGeneratedPayload:
		return m.OldGeneratedPayload(ctx)
	case generationjob.FieldResultCourseID:
		return m.OldResultCourseID(ctx)
	case generationjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case generationjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case generationjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case generationjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationjob.FieldCourseName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseName(v)
		return nil
	case generationjob.FieldCourseDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseDescription(v)
		return nil
	case generationjob.FieldDifficultyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case generationjob.FieldLessonCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonCount(v)
		return nil
	case generationjob.FieldIncludeQuiz:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncludeQuiz(v)
		return nil
	case generationjob.FieldIncludeAiTutor:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncludeAiTutor(v)
		return nil
	case generationjob.FieldIncludeVideoLinks:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncludeVideoLinks(v)
		return nil
	case generationjob.FieldRequesterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterID(v)
		return nil
	case generationjob.FieldOrganizationDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationDomain(v)
		return nil
	case generationjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case generationjob.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercent(v)
		return nil
	case generationjob.FieldProgressMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressMessage(v)
		return nil
	case generationjob.FieldGeneratedPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedPayload(v)
		return nil
	case generationjob.FieldResultCourseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultCourseID(v)
		return nil
	case generationjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case generationjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case generationjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case generationjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationJobMutation) AddedFields() []string {
	var fields []string
	if m.addlesson_count != nil {
		fields = append(fields, generationjob.FieldLessonCount)
	}
	if m.addprogress_percent != nil {
		fields = append(fields, generationjob.FieldProgressPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationjob.FieldLessonCount:
		return m.AddedLessonCount()
	case generationjob.FieldProgressPercent:
		return m.AddedProgressPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationjob.FieldLessonCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLessonCount(v)
		return nil
	case generationjob.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercent(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationjob.FieldGeneratedPayload) {
		fields = append(fields, generationjob.FieldGeneratedPayload)
	}
	if m.FieldCleared(generationjob.FieldResultCourseID) {
		fields = append(fields, generationjob.FieldResultCourseID)
	}
	if m.FieldCleared(generationjob.FieldErrorMessage) {
		fields = append(fields, generationjob.FieldErrorMessage)
	}
	if m.FieldCleared(generationjob.FieldStartedAt) {
		fields = append(fields, generationjob.FieldStartedAt)
	}
	if m.FieldCleared(generationjob.FieldCompletedAt) {
		fields = append(fields, generationjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationJobMutation) ClearField(name string) error {
	switch name {
	case generationjob.FieldGeneratedPayload:
		m.ClearGeneratedPayload()
		return nil
	case generationjob.FieldResultCourseID:
		m.ClearResultCourseID()
		return nil
	case generationjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case generationjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case generationjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationJobMutation) ResetField(name string) error {
	switch name {
	case generationjob.FieldCourseName:
		m.ResetCourseName()
		return nil
	case generationjob.FieldCourseDescription:
		m.ResetCourseDescription()
		return nil
	case generationjob.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case generationjob.FieldLessonCount:
		m.ResetLessonCount()
		return nil
	case generationjob.FieldIncludeQuiz:
		m.ResetIncludeQuiz()
		return nil
	case generationjob.FieldIncludeAiTutor:
		m.ResetIncludeAiTutor()
		return nil
	case generationjob.FieldIncludeVideoLinks:
		m.ResetIncludeVideoLinks()
		return nil
	case generationjob.FieldRequesterID:
		m.ResetRequesterID()
		return nil
	case generationjob.FieldOrganizationDomain:
		m.ResetOrganizationDomain()
		return nil
	case generationjob.FieldStatus:
		m.ResetStatus()
		return nil
	case generationjob.FieldProgressPercent:
		m.ResetProgressPercent()
		return nil
	case generationjob.FieldProgressMessage:
		m.ResetProgressMessage()
		return nil
	case generationjob.FieldGeneratedPayload:
		m.ResetGeneratedPayload()
		return nil
	case generationjob.FieldResultCourseID:
		m.ResetResultCourseID()
		return nil
	case generationjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case generationjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case generationjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case generationjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationJob edge %s", name)
}

// LessonMutation represents an operation that mutates the Lesson nodes in the graph.
type LessonMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	title                 *string
	duration_minutes      *int
	addduration_minutes   *int
	content               *string
	video_url             *string
	resources             *[]string
	appendresources       []string
	sort_order            *int
	addsort_order         *int
	status                *string
	tutor_instruction     *string
	tutor_prompt          *string
	quiz_type             *string
	question              *string
	answers               *[]string
	appendanswers         []string
	correct_answer        *int
	addcorrect_answer     *int
	correct_answers       *[]int
	appendcorrect_answers []int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	course                *uuid.UUID
	clearedcourse         bool
	done                  bool
	oldValue              func(context.Context) (*Lesson, error)
	predicates            []predicate.Lesson
}

var _ ent.Mutation = (*LessonMutation)(nil)

// lessonOption allows management of the mutation configuration using functional options.
type lessonOption func(*LessonMutation)

// newLessonMutation creates new mutation for the Lesson entity.
func newLessonMutation(c config, op Op, opts ...lessonOption) *LessonMutation {
	m := &LessonMutation{
		config:        c,
		op:            op,
		typ:           TypeLesson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonID sets the ID field of the mutation.
func withLessonID(id uuid.UUID) lessonOption {
	return func(m *LessonMutation) {
		var (
			err   error
			once  sync.Once
			value *Lesson
		)
		m.oldValue = func(ctx context.Context) (*Lesson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lesson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLesson sets the old Lesson of the mutation.
func withLesson(node *Lesson) lessonOption {
	return func(m *LessonMutation) {
		m.oldValue = func(context.Context) (*Lesson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lesson entities.
func (m *LessonMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lesson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseID sets the "course_id" field.
func (m *LessonMutation) SetCourseID(u uuid.UUID) {
	m.course = &u
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *LessonMutation) CourseID() (r uuid.UUID, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldCourseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *LessonMutation) ResetCourseID() {
	m.course = nil
}

// SetTitle sets the "title" field.
func (m *LessonMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LessonMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LessonMutation) ResetTitle() {
	m.title = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *LessonMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *LessonMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *LessonMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *LessonMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *LessonMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetContent sets the "content" field.
func (m *LessonMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *LessonMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *LessonMutation) ResetContent() {
	m.content = nil
}

// SetVideoURL sets the "video_url" field.
func (m *LessonMutation) SetVideoURL(s string) {
	m.video_url = &s
}

// VideoURL returns the value of the "video_url" field in the mutation.
func (m *LessonMutation) VideoURL() (r string, exists bool) {
	v := m.video_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoURL returns the old "video_url" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldVideoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoURL: %w", err)
	}
	return oldValue.VideoURL, nil
}

// ClearVideoURL clears the value of the "video_url" field.
func (m *LessonMutation) ClearVideoURL() {
	m.video_url = nil
	m.clearedFields[lesson.FieldVideoURL] = struct{}{}
}

// VideoURLCleared returns if the "video_url" field was cleared in this mutation.
func (m *LessonMutation) VideoURLCleared() bool {
	_, ok := m.clearedFields[lesson.FieldVideoURL]
	return ok
}

// ResetVideoURL resets all changes to the "video_url" field.
func (m *LessonMutation) ResetVideoURL() {
	m.video_url = nil
	delete(m.clearedFields, lesson.FieldVideoURL)
}

// SetResources sets the "resources" field.
func (m *LessonMutation) SetResources(s []string) {
	m.resources = &s
	m.appendresources = nil
}

// Resources returns the value of the "resources" field in the mutation.
func (m *LessonMutation) Resources() (r []string, exists bool) {
	v := m.resources
	if v == nil {
		return
	}
	return *v, true
}

// OldResources returns the old "resources" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldResources(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResources: %w", err)
	}
	return oldValue.Resources, nil
}

// AppendResources adds s to the "resources" field.
func (m *LessonMutation) AppendResources(s []string) {
	m.appendresources = append(m.appendresources, s...)
}

// AppendedResources returns the list of values that were appended to the "resources" field in this mutation.
func (m *LessonMutation) AppendedResources() ([]string, bool) {
	if len(m.appendresources) == 0 {
		return nil, false
	}
	return m.appendresources, true
}

// ClearResources clears the value of the "resources" field.
func (m *LessonMutation) ClearResources() {
	m.resources = nil
	m.appendresources = nil
	m.clearedFields[lesson.FieldResources] = struct{}{}
}

// ResourcesCleared returns if the "resources" field was cleared in this mutation.
func (m *LessonMutation) ResourcesCleared() bool {
	_, ok := m.clearedFields[lesson.FieldResources]
	return ok
}

// ResetResources resets all changes to the "resources" field.
func (m *LessonMutation) ResetResources() {
	m.resources = nil
	m.appendresources = nil
	delete(m.clearedFields, lesson.FieldResources)
}

// SetSortOrder sets the "sort_order" field.
func (m *LessonMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *LessonMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *LessonMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *LessonMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *LessonMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetStatus sets the "status" field.
func (m *LessonMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LessonMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LessonMutation) ResetStatus() {
	m.status = nil
}

// SetTutorInstruction sets the "tutor_instruction" field.
func (m *LessonMutation) SetTutorInstruction(s string) {
	m.tutor_instruction = &s
}

// TutorInstruction returns the value of the "tutor_instruction" field in the mutation.
func (m *LessonMutation) TutorInstruction() (r string, exists bool) {
	v := m.tutor_instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorInstruction returns the old "tutor_instruction" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTutorInstruction(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorInstruction: %w", err)
	}
	return oldValue.TutorInstruction, nil
}

// ClearTutorInstruction clears the value of the "tutor_instruction" field.
func (m *LessonMutation) ClearTutorInstruction() {
	m.tutor_instruction = nil
	m.clearedFields[lesson.FieldTutorInstruction] = struct{}{}
}

// TutorInstructionCleared returns if the "tutor_instruction" field was cleared in this mutation.
func (m *LessonMutation) TutorInstructionCleared() bool {
	_, ok := m.clearedFields[lesson.FieldTutorInstruction]
	return ok
}

// ResetTutorInstruction resets all changes to the "tutor_instruction" field.
func (m *LessonMutation) ResetTutorInstruction() {
	m.tutor_instruction = nil
	delete(m.clearedFields, lesson.FieldTutorInstruction)
}

// SetTutorPrompt sets the "tutor_prompt" field.
func (m *LessonMutation) SetTutorPrompt(s string) {
	m.tutor_prompt = &s
}

// TutorPrompt returns the value of the "tutor_prompt" field in the mutation.
func (m *LessonMutation) TutorPrompt() (r string, exists bool) {
	v := m.tutor_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorPrompt returns the old "tutor_prompt" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTutorPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorPrompt: %w", err)
	}
	return oldValue.TutorPrompt, nil
}

// ClearTutorPrompt clears the value of the "tutor_prompt" field.
func (m *LessonMutation) ClearTutorPrompt() {
	m.tutor_prompt = nil
	m.clearedFields[lesson.FieldTutorPrompt] = struct{}{}
}

// TutorPromptCleared returns if the "tutor_prompt" field was cleared in this mutation.
func (m *LessonMutation) TutorPromptCleared() bool {
	_, ok := m.clearedFields[lesson.FieldTutorPrompt]
	return ok
}

// ResetTutorPrompt resets all changes to the "tutor_prompt" field.
func (m *LessonMutation) ResetTutorPrompt() {
	m.tutor_prompt = nil
	delete(m.clearedFields, lesson.FieldTutorPrompt)
}

// SetQuizType sets the "quiz_type" field.
func (m *LessonMutation) SetQuizType(s string) {
	m.quiz_type = &s
}

// QuizType returns the value of the "quiz_type" field in the mutation.
func (m *LessonMutation) QuizType() (r string, exists bool) {
	v := m.quiz_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizType returns the old "quiz_type" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldQuizType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizType: %w", err)
	}
	return oldValue.QuizType, nil
}

// ClearQuizType clears the value of the "quiz_type" field.
func (m *LessonMutation) ClearQuizType() {
	m.quiz_type = nil
	m.clearedFields[lesson.FieldQuizType] = struct{}{}
}

// QuizTypeCleared returns if the "quiz_type" field was cleared in this mutation.
func (m *LessonMutation) QuizTypeCleared() bool {
	_, ok := m.clearedFields[lesson.FieldQuizType]
	return ok
}

// ResetQuizType resets all changes to the "quiz_type" field.
func (m *LessonMutation) ResetQuizType() {
	m.quiz_type = nil
	delete(m.clearedFields, lesson.FieldQuizType)
}

// SetQuestion sets the "question" field.
func (m *LessonMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *LessonMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldQuestion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ClearQuestion clears the value of the "question" field.
func (m *LessonMutation) ClearQuestion() {
	m.question = nil
	m.clearedFields[lesson.FieldQuestion] = struct{}{}
}

// QuestionCleared returns if the "question" field was cleared in this mutation.
func (m *LessonMutation) QuestionCleared() bool {
	_, ok := m.clearedFields[lesson.FieldQuestion]
	return ok
}

// ResetQuestion resets all changes to the "question" field.
func (m *LessonMutation) ResetQuestion() {
	m.question = nil
	delete(m.clearedFields, lesson.FieldQuestion)
}

// SetAnswers sets the "answers" field.
func (m *LessonMutation) SetAnswers(s []string) {
	m.answers = &s
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *LessonMutation) Answers() (r []string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldAnswers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds s to the "answers" field.
func (m *LessonMutation) AppendAnswers(s []string) {
	m.appendanswers = append(m.appendanswers, s...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *LessonMutation) AppendedAnswers() ([]string, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ClearAnswers clears the value of the "answers" field.
func (m *LessonMutation) ClearAnswers() {
	m.answers = nil
	m.appendanswers = nil
	m.clearedFields[lesson.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *LessonMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[lesson.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *LessonMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
	delete(m.clearedFields, lesson.FieldAnswers)
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *LessonMutation) SetCorrectAnswer(i int) {
	m.correct_answer = &i
	m.addcorrect_answer = nil
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *LessonMutation) CorrectAnswer() (r int, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldCorrectAnswer(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// AddCorrectAnswer adds i to the "correct_answer" field.
func (m *LessonMutation) AddCorrectAnswer(i int) {
	if m.addcorrect_answer != nil {
		*m.addcorrect_answer += i
	} else {
		m.addcorrect_answer = &i
	}
}

// AddedCorrectAnswer returns the value that was added to the "correct_answer" field in this mutation.
func (m *LessonMutation) AddedCorrectAnswer() (r int, exists bool) {
	v := m.addcorrect_answer
	if v == nil {
		return
	}
	return *v, true
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (m *LessonMutation) ClearCorrectAnswer() {
	m.correct_answer = nil
	m.addcorrect_answer = nil
	m.clearedFields[lesson.FieldCorrectAnswer] = struct{}{}
}

// CorrectAnswerCleared returns if the "correct_answer" field was cleared in this mutation.
func (m *LessonMutation) CorrectAnswerCleared() bool {
	_, ok := m.clearedFields[lesson.FieldCorrectAnswer]
	return ok
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *LessonMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
	m.addcorrect_answer = nil
	delete(m.clearedFields, lesson.FieldCorrectAnswer)
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *LessonMutation) SetCorrectAnswers(i []int) {
	m.correct_answers = &i
	m.appendcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *LessonMutation) CorrectAnswers() (r []int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldCorrectAnswers(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AppendCorrectAnswers adds i to the "correct_answers" field.
func (m *LessonMutation) AppendCorrectAnswers(i []int) {
	m.appendcorrect_answers = append(m.appendcorrect_answers, i...)
}

// AppendedCorrectAnswers returns the list of values that were appended to the "correct_answers" field in this mutation.
func (m *LessonMutation) AppendedCorrectAnswers() ([]int, bool) {
	if len(m.appendcorrect_answers) == 0 {
		return nil, false
	}
	return m.appendcorrect_answers, true
}

// ClearCorrectAnswers clears the value of the "correct_answers" field.
func (m *LessonMutation) ClearCorrectAnswers() {
	m.correct_answers = nil
	m.appendcorrect_answers = nil
	m.clearedFields[lesson.FieldCorrectAnswers] = struct{}{}
}

// CorrectAnswersCleared returns if the "correct_answers" field was cleared in this mutation.
func (m *LessonMutation) CorrectAnswersCleared() bool {
	_, ok := m.clearedFields[lesson.FieldCorrectAnswers]
	return ok
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *LessonMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.appendcorrect_answers = nil
	delete(m.clearedFields, lesson.FieldCorrectAnswers)
}

// SetCreatedAt sets the "created_at" field.
func (m *LessonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LessonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LessonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCourse clears the "course" edge to the Course entity.
func (m *LessonMutation) ClearCourse() {
	m.clearedcourse = true
	m.clearedFields[lesson.FieldCourseID] = struct{}{}
}

// CourseCleared reports if the "course" edge to the Course entity was cleared.
func (m *LessonMutation) CourseCleared() bool {
	return m.clearedcourse
}

// CourseIDs returns the "course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) CourseIDs() (ids []uuid.UUID) {
	if id := m.course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourse resets all changes to the "course" edge.
func (m *LessonMutation) ResetCourse() {
	m.course = nil
	m.clearedcourse = false
}

// Where appends a list predicates to the LessonMutation builder.
func (m *LessonMutation) Where(ps ...predicate.Lesson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lesson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lesson).
func (m *LessonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.course != nil {
		fields = append(fields, lesson.FieldCourseID)
	}
	if m.title != nil {
		fields = append(fields, lesson.FieldTitle)
	}
	if m.duration_minutes != nil {
		fields = append(fields, lesson.FieldDurationMinutes)
	}
	if m.content != nil {
		fields = append(fields, lesson.FieldContent)
	}
	if m.video_url != nil {
		fields = append(fields, lesson.FieldVideoURL)
	}
	if m.resources != nil {
		fields = append(fields, lesson.FieldResources)
	}
	if m.sort_order != nil {
		fields = append(fields, lesson.FieldSortOrder)
	}
	if m.status != nil {
		fields = append(fields, lesson.FieldStatus)
	}
	if m.tutor_instruction != nil {
		fields = append(fields, lesson.FieldTutorInstruction)
	}
	if m.tutor_prompt != nil {
		fields = append(fields, lesson.FieldTutorPrompt)
	}
	if m.quiz_type != nil {
		fields = append(fields, lesson.FieldQuizType)
	}
	if m.question != nil {
		fields = append(fields, lesson.FieldQuestion)
	}
	if m.answers != nil {
		fields = append(fields, lesson.FieldAnswers)
	}
	if m.correct_answer != nil {
		fields = append(fields, lesson.FieldCorrectAnswer)
	}
	if m.correct_answers != nil {
		fields = append(fields, lesson.FieldCorrectAnswers)
	}
	if m.created_at != nil {
		fields = append(fields, lesson.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldCourseID:
		return m.CourseID()
	case lesson.FieldTitle:
		return m.Title()
	case lesson.FieldDurationMinutes:
		return m.DurationMinutes()
	case lesson.FieldContent:
		return m.Content()
	case lesson.FieldVideoURL:
		return m.VideoURL()
	case lesson.FieldResources:
		return m.Resources()
	case lesson.FieldSortOrder:
		return m.SortOrder()
	case lesson.FieldStatus:
		return m.Status()
	case lesson.FieldTutorInstruction:
		return m.TutorInstruction()
	case lesson.FieldTutorPrompt:
		return m.TutorPrompt()
	case lesson.FieldQuizType:
		return m.QuizType()
	case lesson.FieldQuestion:
		return m.Question()
	case lesson.FieldAnswers:
		return m.Answers()
	case lesson.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case lesson.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case lesson.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lesson.FieldCourseID:
		return m.OldCourseID(ctx)
	case lesson.FieldTitle:
		return m.OldTitle(ctx)
	case lesson.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case lesson.FieldContent:
		return m.OldContent(ctx)
	case lesson.FieldVideoURL:
		return m.OldVideoURL(ctx)
	case lesson.FieldResources:
		return m.OldResources(ctx)
	case lesson.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case lesson.FieldStatus:
		return m.OldStatus(ctx)
	case lesson.FieldTutorInstruction:
		return m.OldTutorInstruction(ctx)
	case lesson.FieldTutorPrompt:
		return m.OldTutorPrompt(ctx)
	case lesson.FieldQuizType:
		return m.OldQuizType(ctx)
	case lesson.FieldQuestion:
		return m.OldQuestion(ctx)
	case lesson.FieldAnswers:
		return m.OldAnswers(ctx)
	case lesson.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case lesson.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case lesson.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lesson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldCourseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case lesson.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case lesson.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case lesson.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case lesson.FieldVideoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoURL(v)
		return nil
	case lesson.FieldResources:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResources(v)
		return nil
	case lesson.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case lesson.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lesson.FieldTutorInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorInstruction(v)
		return nil
	case lesson.FieldTutorPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorPrompt(v)
		return nil
	case lesson.FieldQuizType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizType(v)
		return nil
	case lesson.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case lesson.FieldAnswers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case lesson.FieldCorrectAnswer:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case lesson.FieldCorrectAnswers:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case lesson.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, lesson.FieldDurationMinutes)
	}
	if m.addsort_order != nil {
		fields = append(fields, lesson.FieldSortOrder)
	}
	if m.addcorrect_answer != nil {
		fields = append(fields, lesson.FieldCorrectAnswer)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case lesson.FieldSortOrder:
		return m.AddedSortOrder()
	case lesson.FieldCorrectAnswer:
		return m.AddedCorrectAnswer()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case lesson.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	case lesson.FieldCorrectAnswer:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswer(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lesson.FieldVideoURL) {
		fields = append(fields, lesson.FieldVideoURL)
	}
	if m.FieldCleared(lesson.FieldResources) {
		fields = append(fields, lesson.FieldResources)
	}
	if m.FieldCleared(lesson.FieldTutorInstruction) {
		fields = append(fields, lesson.FieldTutorInstruction)
	}
	if m.FieldCleared(lesson.FieldTutorPrompt) {
		fields = append(fields, lesson.FieldTutorPrompt)
	}
	if m.FieldCleared(lesson.FieldQuizType) {
		fields = append(fields, lesson.FieldQuizType)
	}
	if m.FieldCleared(lesson.FieldQuestion) {
		fields = append(fields, lesson.FieldQuestion)
	}
	if m.FieldCleared(lesson.FieldAnswers) {
		fields = append(fields, lesson.FieldAnswers)
	}
	if m.FieldCleared(lesson.FieldCorrectAnswer) {
		fields = append(fields, lesson.FieldCorrectAnswer)
	}
	if m.FieldCleared(lesson.FieldCorrectAnswers) {
		fields = append(fields, lesson.FieldCorrectAnswers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonMutation) ClearField(name string) error {
	switch name {
	case lesson.FieldVideoURL:
		m.ClearVideoURL()
		return nil
	case lesson.FieldResources:
		m.ClearResources()
		return nil
	case lesson.FieldTutorInstruction:
		m.ClearTutorInstruction()
		return nil
	case lesson.FieldTutorPrompt:
		m.ClearTutorPrompt()
		return nil
	case lesson.FieldQuizType:
		m.ClearQuizType()
		return nil
	case lesson.FieldQuestion:
		m.ClearQuestion()
		return nil
	case lesson.FieldAnswers:
		m.ClearAnswers()
		return nil
	case lesson.FieldCorrectAnswer:
		m.ClearCorrectAnswer()
		return nil
	case lesson.FieldCorrectAnswers:
		m.ClearCorrectAnswers()
		return nil
	}
	return fmt.Errorf("unknown Lesson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonMutation) ResetField(name string) error {
	switch name {
	case lesson.FieldCourseID:
		m.ResetCourseID()
		return nil
	case lesson.FieldTitle:
		m.ResetTitle()
		return nil
	case lesson.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case lesson.FieldContent:
		m.ResetContent()
		return nil
	case lesson.FieldVideoURL:
		m.ResetVideoURL()
		return nil
	case lesson.FieldResources:
		m.ResetResources()
		return nil
	case lesson.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case lesson.FieldStatus:
		m.ResetStatus()
		return nil
	case lesson.FieldTutorInstruction:
		m.ResetTutorInstruction()
		return nil
	case lesson.FieldTutorPrompt:
		m.ResetTutorPrompt()
		return nil
	case lesson.FieldQuizType:
		m.ResetQuizType()
		return nil
	case lesson.FieldQuestion:
		m.ResetQuestion()
		return nil
	case lesson.FieldAnswers:
		m.ResetAnswers()
		return nil
	case lesson.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case lesson.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case lesson.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.course != nil {
		edges = append(edges, lesson.EdgeCourse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lesson.EdgeCourse:
		if id := m.course; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcourse {
		edges = append(edges, lesson.EdgeCourse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonMutation) EdgeCleared(name string) bool {
	switch name {
	case lesson.EdgeCourse:
		return m.clearedcourse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonMutation) ClearEdge(name string) error {
	switch name {
	case lesson.EdgeCourse:
		m.ClearCourse()
		return nil
	}
	return fmt.Errorf("unknown Lesson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonMutation) ResetEdge(name string) error {
	switch name {
	case lesson.EdgeCourse:
		m.ResetCourse()
		return nil
	}
	return fmt.Errorf("unknown Lesson edge %s", name)
}
