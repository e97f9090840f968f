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
	"github.com/dsp2b/dsp2b/ent/blueprintlike"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintLikeUpdate is the builder for updating BlueprintLike entities.
type BlueprintLikeUpdate struct {
	config
	hooks     []Hook
	mutation  *BlueprintLikeMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the BlueprintLikeUpdate builder.
func (blu *BlueprintLikeUpdate) Where(ps ...predicate.BlueprintLike) *BlueprintLikeUpdate {
	blu.mutation.Where(ps...)
	return blu
}

// SetBlueprintID sets the "blueprint_id" field.
func (blu *BlueprintLikeUpdate) SetBlueprintID(u uint) *BlueprintLikeUpdate {
	blu.mutation.ResetBlueprintID()
	blu.mutation.SetBlueprintID(u)
	return blu
}

// SetNillableBlueprintID sets the "blueprint_id" field if the given value is not nil.
func (blu *BlueprintLikeUpdate) SetNillableBlueprintID(u *uint) *BlueprintLikeUpdate {
	if u != nil {
		blu.SetBlueprintID(*u)
	}
	return blu
}

// AddBlueprintID adds u to the "blueprint_id" field.
func (blu *BlueprintLikeUpdate) AddBlueprintID(u int) *BlueprintLikeUpdate {
	blu.mutation.AddBlueprintID(u)
	return blu
}

// SetUserID sets the "user_id" field.
func (blu *BlueprintLikeUpdate) SetUserID(u uint) *BlueprintLikeUpdate {
	blu.mutation.ResetUserID()
	blu.mutation.SetUserID(u)
	return blu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (blu *BlueprintLikeUpdate) SetNillableUserID(u *uint) *BlueprintLikeUpdate {
	if u != nil {
		blu.SetUserID(*u)
	}
	return blu
}

// AddUserID adds u to the "user_id" field.
func (blu *BlueprintLikeUpdate) AddUserID(u int) *BlueprintLikeUpdate {
	blu.mutation.AddUserID(u)
	return blu
}

// SetCreatedAt sets the "created_at" field.
func (blu *BlueprintLikeUpdate) SetCreatedAt(t time.Time) *BlueprintLikeUpdate {
	blu.mutation.SetCreatedAt(t)
	return blu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (blu *BlueprintLikeUpdate) SetNillableCreatedAt(t *time.Time) *BlueprintLikeUpdate {
	if t != nil {
		blu.SetCreatedAt(*t)
	}
	return blu
}

// Mutation returns the BlueprintLikeMutation object of the builder.
func (blu *BlueprintLikeUpdate) Mutation() *BlueprintLikeMutation {
	return blu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (blu *BlueprintLikeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, blu.sqlSave, blu.mutation, blu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (blu *BlueprintLikeUpdate) SaveX(ctx context.Context) int {
	affected, err := blu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (blu *BlueprintLikeUpdate) Exec(ctx context.Context) error {
	_, err := blu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (blu *BlueprintLikeUpdate) ExecX(ctx context.Context) {
	if err := blu.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (blu *BlueprintLikeUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BlueprintLikeUpdate {
	blu.modifiers = append(blu.modifiers, modifiers...)
	return blu
}

func (blu *BlueprintLikeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(blueprintlike.Table, blueprintlike.Columns, sqlgraph.NewFieldSpec(blueprintlike.FieldID, field.TypeUint))
	if ps := blu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := blu.mutation.BlueprintID(); ok {
		_spec.SetField(blueprintlike.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := blu.mutation.AddedBlueprintID(); ok {
		_spec.AddField(blueprintlike.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := blu.mutation.UserID(); ok {
		_spec.SetField(blueprintlike.FieldUserID, field.TypeUint, value)
	}
	if value, ok := blu.mutation.AddedUserID(); ok {
		_spec.AddField(blueprintlike.FieldUserID, field.TypeUint, value)
	}
	if value, ok := blu.mutation.CreatedAt(); ok {
		_spec.SetField(blueprintlike.FieldCreatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(blu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, blu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintlike.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	blu.mutation.done = true
	return n, nil
}

// BlueprintLikeUpdateOne is the builder for updating a single BlueprintLike entity.
type BlueprintLikeUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *BlueprintLikeMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetBlueprintID sets the "blueprint_id" field.
func (bluo *BlueprintLikeUpdateOne) SetBlueprintID(u uint) *BlueprintLikeUpdateOne {
	bluo.mutation.ResetBlueprintID()
	bluo.mutation.SetBlueprintID(u)
	return bluo
}

// SetNillableBlueprintID sets the "blueprint_id" field if the given value is not nil.
func (bluo *BlueprintLikeUpdateOne) SetNillableBlueprintID(u *uint) *BlueprintLikeUpdateOne {
	if u != nil {
		bluo.SetBlueprintID(*u)
	}
	return bluo
}

// AddBlueprintID adds u to the "blueprint_id" field.
func (bluo *BlueprintLikeUpdateOne) AddBlueprintID(u int) *BlueprintLikeUpdateOne {
	bluo.mutation.AddBlueprintID(u)
	return bluo
}

// SetUserID sets the "user_id" field.
func (bluo *BlueprintLikeUpdateOne) SetUserID(u uint) *BlueprintLikeUpdateOne {
	bluo.mutation.ResetUserID()
	bluo.mutation.SetUserID(u)
	return bluo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (bluo *BlueprintLikeUpdateOne) SetNillableUserID(u *uint) *BlueprintLikeUpdateOne {
	if u != nil {
		bluo.SetUserID(*u)
	}
	return bluo
}

// AddUserID adds u to the "user_id" field.
func (bluo *BlueprintLikeUpdateOne) AddUserID(u int) *BlueprintLikeUpdateOne {
	bluo.mutation.AddUserID(u)
	return bluo
}

// SetCreatedAt sets the "created_at" field.
func (bluo *BlueprintLikeUpdateOne) SetCreatedAt(t time.Time) *BlueprintLikeUpdateOne {
	bluo.mutation.SetCreatedAt(t)
	return bluo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bluo *BlueprintLikeUpdateOne) SetNillableCreatedAt(t *time.Time) *BlueprintLikeUpdateOne {
	if t != nil {
		bluo.SetCreatedAt(*t)
	}
	return bluo
}

// Mutation returns the BlueprintLikeMutation object of the builder.
func (bluo *BlueprintLikeUpdateOne) Mutation() *BlueprintLikeMutation {
	return bluo.mutation
}

// Where appends a list predicates to the BlueprintLikeUpdate builder.
func (bluo *BlueprintLikeUpdateOne) Where(ps ...predicate.BlueprintLike) *BlueprintLikeUpdateOne {
	bluo.mutation.Where(ps...)
	return bluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (bluo *BlueprintLikeUpdateOne) Select(field string, fields ...string) *BlueprintLikeUpdateOne {
	bluo.fields = append([]string{field}, fields...)
	return bluo
}

// Save executes the query and returns the updated BlueprintLike entity.
func (bluo *BlueprintLikeUpdateOne) Save(ctx context.Context) (*BlueprintLike, error) {
	return withHooks(ctx, bluo.sqlSave, bluo.mutation, bluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bluo *BlueprintLikeUpdateOne) SaveX(ctx context.Context) *BlueprintLike {
	node, err := bluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (bluo *BlueprintLikeUpdateOne) Exec(ctx context.Context) error {
	_, err := bluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bluo *BlueprintLikeUpdateOne) ExecX(ctx context.Context) {
	if err := bluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (bluo *BlueprintLikeUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BlueprintLikeUpdateOne {
	bluo.modifiers = append(bluo.modifiers, modifiers...)
	return bluo
}

func (bluo *BlueprintLikeUpdateOne) sqlSave(ctx context.Context) (_node *BlueprintLike, err error) {
	_spec := sqlgraph.NewUpdateSpec(blueprintlike.Table, blueprintlike.Columns, sqlgraph.NewFieldSpec(blueprintlike.FieldID, field.TypeUint))
	id, ok := bluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlueprintLike.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := bluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintlike.FieldID)
		for _, f := range fields {
			if !blueprintlike.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprintlike.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := bluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bluo.mutation.BlueprintID(); ok {
		_spec.SetField(blueprintlike.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bluo.mutation.AddedBlueprintID(); ok {
		_spec.AddField(blueprintlike.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bluo.mutation.UserID(); ok {
		_spec.SetField(blueprintlike.FieldUserID, field.TypeUint, value)
	}
	if value, ok := bluo.mutation.AddedUserID(); ok {
		_spec.AddField(blueprintlike.FieldUserID, field.TypeUint, value)
	}
	if value, ok := bluo.mutation.CreatedAt(); ok {
		_spec.SetField(blueprintlike.FieldCreatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(bluo.modifiers...)
	_node = &BlueprintLike{config: bluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, bluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintlike.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	bluo.mutation.done = true
	return _node, nil
}
