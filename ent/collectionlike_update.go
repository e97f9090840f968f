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
	"github.com/dsp2b/dsp2b/ent/collectionlike"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// CollectionLikeUpdate is the builder for updating CollectionLike entities.
type CollectionLikeUpdate struct {
	config
	hooks     []Hook
	mutation  *CollectionLikeMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the CollectionLikeUpdate builder.
func (clu *CollectionLikeUpdate) Where(ps ...predicate.CollectionLike) *CollectionLikeUpdate {
	clu.mutation.Where(ps...)
	return clu
}

// SetCollectionID sets the "collection_id" field.
func (clu *CollectionLikeUpdate) SetCollectionID(u uint) *CollectionLikeUpdate {
	clu.mutation.ResetCollectionID()
	clu.mutation.SetCollectionID(u)
	return clu
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (clu *CollectionLikeUpdate) SetNillableCollectionID(u *uint) *CollectionLikeUpdate {
	if u != nil {
		clu.SetCollectionID(*u)
	}
	return clu
}

// AddCollectionID adds u to the "collection_id" field.
func (clu *CollectionLikeUpdate) AddCollectionID(u int) *CollectionLikeUpdate {
	clu.mutation.AddCollectionID(u)
	return clu
}

// SetUserID sets the "user_id" field.
func (clu *CollectionLikeUpdate) SetUserID(u uint) *CollectionLikeUpdate {
	clu.mutation.ResetUserID()
	clu.mutation.SetUserID(u)
	return clu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (clu *CollectionLikeUpdate) SetNillableUserID(u *uint) *CollectionLikeUpdate {
	if u != nil {
		clu.SetUserID(*u)
	}
	return clu
}

// AddUserID adds u to the "user_id" field.
func (clu *CollectionLikeUpdate) AddUserID(u int) *CollectionLikeUpdate {
	clu.mutation.AddUserID(u)
	return clu
}

// SetCreatedAt sets the "created_at" field.
func (clu *CollectionLikeUpdate) SetCreatedAt(t time.Time) *CollectionLikeUpdate {
	clu.mutation.SetCreatedAt(t)
	return clu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (clu *CollectionLikeUpdate) SetNillableCreatedAt(t *time.Time) *CollectionLikeUpdate {
	if t != nil {
		clu.SetCreatedAt(*t)
	}
	return clu
}

// Mutation returns the CollectionLikeMutation object of the builder.
func (clu *CollectionLikeUpdate) Mutation() *CollectionLikeMutation {
	return clu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (clu *CollectionLikeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, clu.sqlSave, clu.mutation, clu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (clu *CollectionLikeUpdate) SaveX(ctx context.Context) int {
	affected, err := clu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (clu *CollectionLikeUpdate) Exec(ctx context.Context) error {
	_, err := clu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (clu *CollectionLikeUpdate) ExecX(ctx context.Context) {
	if err := clu.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (clu *CollectionLikeUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CollectionLikeUpdate {
	clu.modifiers = append(clu.modifiers, modifiers...)
	return clu
}

func (clu *CollectionLikeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(collectionlike.Table, collectionlike.Columns, sqlgraph.NewFieldSpec(collectionlike.FieldID, field.TypeUint))
	if ps := clu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := clu.mutation.CollectionID(); ok {
		_spec.SetField(collectionlike.FieldCollectionID, field.TypeUint, value)
	}
	if value, ok := clu.mutation.AddedCollectionID(); ok {
		_spec.AddField(collectionlike.FieldCollectionID, field.TypeUint, value)
	}
	if value, ok := clu.mutation.UserID(); ok {
		_spec.SetField(collectionlike.FieldUserID, field.TypeUint, value)
	}
	if value, ok := clu.mutation.AddedUserID(); ok {
		_spec.AddField(collectionlike.FieldUserID, field.TypeUint, value)
	}
	if value, ok := clu.mutation.CreatedAt(); ok {
		_spec.SetField(collectionlike.FieldCreatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(clu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, clu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectionlike.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	clu.mutation.done = true
	return n, nil
}

// CollectionLikeUpdateOne is the builder for updating a single CollectionLike entity.
type CollectionLikeUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *CollectionLikeMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCollectionID sets the "collection_id" field.
func (cluo *CollectionLikeUpdateOne) SetCollectionID(u uint) *CollectionLikeUpdateOne {
	cluo.mutation.ResetCollectionID()
	cluo.mutation.SetCollectionID(u)
	return cluo
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (cluo *CollectionLikeUpdateOne) SetNillableCollectionID(u *uint) *CollectionLikeUpdateOne {
	if u != nil {
		cluo.SetCollectionID(*u)
	}
	return cluo
}

// AddCollectionID adds u to the "collection_id" field.
func (cluo *CollectionLikeUpdateOne) AddCollectionID(u int) *CollectionLikeUpdateOne {
	cluo.mutation.AddCollectionID(u)
	return cluo
}

// SetUserID sets the "user_id" field.
func (cluo *CollectionLikeUpdateOne) SetUserID(u uint) *CollectionLikeUpdateOne {
	cluo.mutation.ResetUserID()
	cluo.mutation.SetUserID(u)
	return cluo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (cluo *CollectionLikeUpdateOne) SetNillableUserID(u *uint) *CollectionLikeUpdateOne {
	if u != nil {
		cluo.SetUserID(*u)
	}
	return cluo
}

// AddUserID adds u to the "user_id" field.
func (cluo *CollectionLikeUpdateOne) AddUserID(u int) *CollectionLikeUpdateOne {
	cluo.mutation.AddUserID(u)
	return cluo
}

// SetCreatedAt sets the "created_at" field.
func (cluo *CollectionLikeUpdateOne) SetCreatedAt(t time.Time) *CollectionLikeUpdateOne {
	cluo.mutation.SetCreatedAt(t)
	return cluo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cluo *CollectionLikeUpdateOne) SetNillableCreatedAt(t *time.Time) *CollectionLikeUpdateOne {
	if t != nil {
		cluo.SetCreatedAt(*t)
	}
	return cluo
}

// Mutation returns the CollectionLikeMutation object of the builder.
func (cluo *CollectionLikeUpdateOne) Mutation() *CollectionLikeMutation {
	return cluo.mutation
}

// Where appends a list predicates to the CollectionLikeUpdate builder.
func (cluo *CollectionLikeUpdateOne) Where(ps ...predicate.CollectionLike) *CollectionLikeUpdateOne {
	cluo.mutation.Where(ps...)
	return cluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cluo *CollectionLikeUpdateOne) Select(field string, fields ...string) *CollectionLikeUpdateOne {
	cluo.fields = append([]string{field}, fields...)
	return cluo
}

// Save executes the query and returns the updated CollectionLike entity.
func (cluo *CollectionLikeUpdateOne) Save(ctx context.Context) (*CollectionLike, error) {
	return withHooks(ctx, cluo.sqlSave, cluo.mutation, cluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cluo *CollectionLikeUpdateOne) SaveX(ctx context.Context) *CollectionLike {
	node, err := cluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cluo *CollectionLikeUpdateOne) Exec(ctx context.Context) error {
	_, err := cluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cluo *CollectionLikeUpdateOne) ExecX(ctx context.Context) {
	if err := cluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cluo *CollectionLikeUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CollectionLikeUpdateOne {
	cluo.modifiers = append(cluo.modifiers, modifiers...)
	return cluo
}

func (cluo *CollectionLikeUpdateOne) sqlSave(ctx context.Context) (_node *CollectionLike, err error) {
	_spec := sqlgraph.NewUpdateSpec(collectionlike.Table, collectionlike.Columns, sqlgraph.NewFieldSpec(collectionlike.FieldID, field.TypeUint))
	id, ok := cluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollectionLike.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collectionlike.FieldID)
		for _, f := range fields {
			if !collectionlike.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collectionlike.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cluo.mutation.CollectionID(); ok {
		_spec.SetField(collectionlike.FieldCollectionID, field.TypeUint, value)
	}
	if value, ok := cluo.mutation.AddedCollectionID(); ok {
		_spec.AddField(collectionlike.FieldCollectionID, field.TypeUint, value)
	}
	if value, ok := cluo.mutation.UserID(); ok {
		_spec.SetField(collectionlike.FieldUserID, field.TypeUint, value)
	}
	if value, ok := cluo.mutation.AddedUserID(); ok {
		_spec.AddField(collectionlike.FieldUserID, field.TypeUint, value)
	}
	if value, ok := cluo.mutation.CreatedAt(); ok {
		_spec.SetField(collectionlike.FieldCreatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(cluo.modifiers...)
	_node = &CollectionLike{config: cluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectionlike.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cluo.mutation.done = true
	return _node, nil
}
