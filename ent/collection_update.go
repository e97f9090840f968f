// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/collection"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// CollectionUpdate is the builder for updating Collection entities.
type CollectionUpdate struct {
	config
	hooks     []Hook
	mutation  *CollectionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the CollectionUpdate builder.
func (cu *CollectionUpdate) Where(ps ...predicate.Collection) *CollectionUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetDeletedAt sets the "deleted_at" field.
func (cu *CollectionUpdate) SetDeletedAt(t time.Time) *CollectionUpdate {
	cu.mutation.SetDeletedAt(t)
	return cu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (cu *CollectionUpdate) SetNillableDeletedAt(t *time.Time) *CollectionUpdate {
	if t != nil {
		cu.SetDeletedAt(*t)
	}
	return cu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (cu *CollectionUpdate) ClearDeletedAt() *CollectionUpdate {
	cu.mutation.ClearDeletedAt()
	return cu
}

// SetOwnerID sets the "owner_id" field.
func (cu *CollectionUpdate) SetOwnerID(u uint) *CollectionUpdate {
	cu.mutation.ResetOwnerID()
	cu.mutation.SetOwnerID(u)
	return cu
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (cu *CollectionUpdate) SetNillableOwnerID(u *uint) *CollectionUpdate {
	if u != nil {
		cu.SetOwnerID(*u)
	}
	return cu
}

// AddOwnerID adds u to the "owner_id" field.
func (cu *CollectionUpdate) AddOwnerID(u int) *CollectionUpdate {
	cu.mutation.AddOwnerID(u)
	return cu
}

// SetParentID sets the "parent_id" field.
func (cu *CollectionUpdate) SetParentID(u uint) *CollectionUpdate {
	cu.mutation.ResetParentID()
	cu.mutation.SetParentID(u)
	return cu
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (cu *CollectionUpdate) SetNillableParentID(u *uint) *CollectionUpdate {
	if u != nil {
		cu.SetParentID(*u)
	}
	return cu
}

// AddParentID adds u to the "parent_id" field.
func (cu *CollectionUpdate) AddParentID(u int) *CollectionUpdate {
	cu.mutation.AddParentID(u)
	return cu
}

// ClearParentID clears the value of the "parent_id" field.
func (cu *CollectionUpdate) ClearParentID() *CollectionUpdate {
	cu.mutation.ClearParentID()
	return cu
}

// SetCreatedAt sets the "created_at" field.
func (cu *CollectionUpdate) SetCreatedAt(t time.Time) *CollectionUpdate {
	cu.mutation.SetCreatedAt(t)
	return cu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cu *CollectionUpdate) SetNillableCreatedAt(t *time.Time) *CollectionUpdate {
	if t != nil {
		cu.SetCreatedAt(*t)
	}
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *CollectionUpdate) SetUpdatedAt(t time.Time) *CollectionUpdate {
	cu.mutation.SetUpdatedAt(t)
	return cu
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cu *CollectionUpdate) SetNillableUpdatedAt(t *time.Time) *CollectionUpdate {
	if t != nil {
		cu.SetUpdatedAt(*t)
	}
	return cu
}

// SetTitle sets the "title" field.
func (cu *CollectionUpdate) SetTitle(s string) *CollectionUpdate {
	cu.mutation.SetTitle(s)
	return cu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cu *CollectionUpdate) SetNillableTitle(s *string) *CollectionUpdate {
	if s != nil {
		cu.SetTitle(*s)
	}
	return cu
}

// SetDescription sets the "description" field.
func (cu *CollectionUpdate) SetDescription(s string) *CollectionUpdate {
	cu.mutation.SetDescription(s)
	return cu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cu *CollectionUpdate) SetNillableDescription(s *string) *CollectionUpdate {
	if s != nil {
		cu.SetDescription(*s)
	}
	return cu
}

// ClearDescription clears the value of the "description" field.
func (cu *CollectionUpdate) ClearDescription() *CollectionUpdate {
	cu.mutation.ClearDescription()
	return cu
}

// SetPublic sets the "public" field.
func (cu *CollectionUpdate) SetPublic(b bool) *CollectionUpdate {
	cu.mutation.SetPublic(b)
	return cu
}

// SetNillablePublic sets the "public" field if the given value is not nil.
func (cu *CollectionUpdate) SetNillablePublic(b *bool) *CollectionUpdate {
	if b != nil {
		cu.SetPublic(*b)
	}
	return cu
}

// Mutation returns the CollectionMutation object of the builder.
func (cu *CollectionUpdate) Mutation() *CollectionMutation {
	return cu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *CollectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *CollectionUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *CollectionUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *CollectionUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *CollectionUpdate) check() error {
	if v, ok := cu.mutation.Title(); ok {
		if err := collection.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Collection.title": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cu *CollectionUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CollectionUpdate {
	cu.modifiers = append(cu.modifiers, modifiers...)
	return cu
}

func (cu *CollectionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(collection.Table, collection.Columns, sqlgraph.NewFieldSpec(collection.FieldID, field.TypeUint))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.DeletedAt(); ok {
		_spec.SetField(collection.FieldDeletedAt, field.TypeTime, value)
	}
	if cu.mutation.DeletedAtCleared() {
		_spec.ClearField(collection.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := cu.mutation.OwnerID(); ok {
		_spec.SetField(collection.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := cu.mutation.AddedOwnerID(); ok {
		_spec.AddField(collection.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := cu.mutation.ParentID(); ok {
		_spec.SetField(collection.FieldParentID, field.TypeUint, value)
	}
	if value, ok := cu.mutation.AddedParentID(); ok {
		_spec.AddField(collection.FieldParentID, field.TypeUint, value)
	}
	if cu.mutation.ParentIDCleared() {
		_spec.ClearField(collection.FieldParentID, field.TypeUint)
	}
	if value, ok := cu.mutation.CreatedAt(); ok {
		_spec.SetField(collection.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := cu.mutation.UpdatedAt(); ok {
		_spec.SetField(collection.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cu.mutation.Title(); ok {
		_spec.SetField(collection.FieldTitle, field.TypeString, value)
	}
	if value, ok := cu.mutation.Description(); ok {
		_spec.SetField(collection.FieldDescription, field.TypeString, value)
	}
	if cu.mutation.DescriptionCleared() {
		_spec.ClearField(collection.FieldDescription, field.TypeString)
	}
	if value, ok := cu.mutation.Public(); ok {
		_spec.SetField(collection.FieldPublic, field.TypeBool, value)
	}
	_spec.AddModifiers(cu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// CollectionUpdateOne is the builder for updating a single Collection entity.
type CollectionUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *CollectionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetDeletedAt sets the "deleted_at" field.
func (cuo *CollectionUpdateOne) SetDeletedAt(t time.Time) *CollectionUpdateOne {
	cuo.mutation.SetDeletedAt(t)
	return cuo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (cuo *CollectionUpdateOne) SetNillableDeletedAt(t *time.Time) *CollectionUpdateOne {
	if t != nil {
		cuo.SetDeletedAt(*t)
	}
	return cuo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (cuo *CollectionUpdateOne) ClearDeletedAt() *CollectionUpdateOne {
	cuo.mutation.ClearDeletedAt()
	return cuo
}

// SetOwnerID sets the "owner_id" field.
func (cuo *CollectionUpdateOne) SetOwnerID(u uint) *CollectionUpdateOne {
	cuo.mutation.ResetOwnerID()
	cuo.mutation.SetOwnerID(u)
	return cuo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (cuo *CollectionUpdateOne) SetNillableOwnerID(u *uint) *CollectionUpdateOne {
	if u != nil {
		cuo.SetOwnerID(*u)
	}
	return cuo
}

// AddOwnerID adds u to the "owner_id" field.
func (cuo *CollectionUpdateOne) AddOwnerID(u int) *CollectionUpdateOne {
	cuo.mutation.AddOwnerID(u)
	return cuo
}

// SetParentID sets the "parent_id" field.
func (cuo *CollectionUpdateOne) SetParentID(u uint) *CollectionUpdateOne {
	cuo.mutation.ResetParentID()
	cuo.mutation.SetParentID(u)
	return cuo
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (cuo *CollectionUpdateOne) SetNillableParentID(u *uint) *CollectionUpdateOne {
	if u != nil {
		cuo.SetParentID(*u)
	}
	return cuo
}

// AddParentID adds u to the "parent_id" field.
func (cuo *CollectionUpdateOne) AddParentID(u int) *CollectionUpdateOne {
	cuo.mutation.AddParentID(u)
	return cuo
}

// ClearParentID clears the value of the "parent_id" field.
func (cuo *CollectionUpdateOne) ClearParentID() *CollectionUpdateOne {
	cuo.mutation.ClearParentID()
	return cuo
}

// SetCreatedAt sets the "created_at" field.
func (cuo *CollectionUpdateOne) SetCreatedAt(t time.Time) *CollectionUpdateOne {
	cuo.mutation.SetCreatedAt(t)
	return cuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cuo *CollectionUpdateOne) SetNillableCreatedAt(t *time.Time) *CollectionUpdateOne {
	if t != nil {
		cuo.SetCreatedAt(*t)
	}
	return cuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *CollectionUpdateOne) SetUpdatedAt(t time.Time) *CollectionUpdateOne {
	cuo.mutation.SetUpdatedAt(t)
	return cuo
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cuo *CollectionUpdateOne) SetNillableUpdatedAt(t *time.Time) *CollectionUpdateOne {
	if t != nil {
		cuo.SetUpdatedAt(*t)
	}
	return cuo
}

// SetTitle sets the "title" field.
func (cuo *CollectionUpdateOne) SetTitle(s string) *CollectionUpdateOne {
	cuo.mutation.SetTitle(s)
	return cuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cuo *CollectionUpdateOne) SetNillableTitle(s *string) *CollectionUpdateOne {
	if s != nil {
		cuo.SetTitle(*s)
	}
	return cuo
}

// SetDescription sets the "description" field.
func (cuo *CollectionUpdateOne) SetDescription(s string) *CollectionUpdateOne {
	cuo.mutation.SetDescription(s)
	return cuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cuo *CollectionUpdateOne) SetNillableDescription(s *string) *CollectionUpdateOne {
	if s != nil {
		cuo.SetDescription(*s)
	}
	return cuo
}

// ClearDescription clears the value of the "description" field.
func (cuo *CollectionUpdateOne) ClearDescription() *CollectionUpdateOne {
	cuo.mutation.ClearDescription()
	return cuo
}

// SetPublic sets the "public" field.
func (cuo *CollectionUpdateOne) SetPublic(b bool) *CollectionUpdateOne {
	cuo.mutation.SetPublic(b)
	return cuo
}

// SetNillablePublic sets the "public" field if the given value is not nil.
func (cuo *CollectionUpdateOne) SetNillablePublic(b *bool) *CollectionUpdateOne {
	if b != nil {
		cuo.SetPublic(*b)
	}
	return cuo
}

// Mutation returns the CollectionMutation object of the builder.
func (cuo *CollectionUpdateOne) Mutation() *CollectionMutation {
	return cuo.mutation
}

// Where appends a list predicates to the CollectionUpdate builder.
func (cuo *CollectionUpdateOne) Where(ps ...predicate.Collection) *CollectionUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *CollectionUpdateOne) Select(field string, fields ...string) *CollectionUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Collection entity.
func (cuo *CollectionUpdateOne) Save(ctx context.Context) (*Collection, error) {
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *CollectionUpdateOne) SaveX(ctx context.Context) *Collection {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *CollectionUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *CollectionUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *CollectionUpdateOne) check() error {
	if v, ok := cuo.mutation.Title(); ok {
		if err := collection.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Collection.title": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cuo *CollectionUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CollectionUpdateOne {
	cuo.modifiers = append(cuo.modifiers, modifiers...)
	return cuo
}

func (cuo *CollectionUpdateOne) sqlSave(ctx context.Context) (_node *Collection, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collection.Table, collection.Columns, sqlgraph.NewFieldSpec(collection.FieldID, field.TypeUint))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Collection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collection.FieldID)
		for _, f := range fields {
			if !collection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.DeletedAt(); ok {
		_spec.SetField(collection.FieldDeletedAt, field.TypeTime, value)
	}
	if cuo.mutation.DeletedAtCleared() {
		_spec.ClearField(collection.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := cuo.mutation.OwnerID(); ok {
		_spec.SetField(collection.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := cuo.mutation.AddedOwnerID(); ok {
		_spec.AddField(collection.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := cuo.mutation.ParentID(); ok {
		_spec.SetField(collection.FieldParentID, field.TypeUint, value)
	}
	if value, ok := cuo.mutation.AddedParentID(); ok {
		_spec.AddField(collection.FieldParentID, field.TypeUint, value)
	}
	if cuo.mutation.ParentIDCleared() {
		_spec.ClearField(collection.FieldParentID, field.TypeUint)
	}
	if value, ok := cuo.mutation.CreatedAt(); ok {
		_spec.SetField(collection.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.UpdatedAt(); ok {
		_spec.SetField(collection.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.Title(); ok {
		_spec.SetField(collection.FieldTitle, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Description(); ok {
		_spec.SetField(collection.FieldDescription, field.TypeString, value)
	}
	if cuo.mutation.DescriptionCleared() {
		_spec.ClearField(collection.FieldDescription, field.TypeString)
	}
	if value, ok := cuo.mutation.Public(); ok {
		_spec.SetField(collection.FieldPublic, field.TypeBool, value)
	}
	_spec.AddModifiers(cuo.modifiers...)
	_node = &Collection{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
