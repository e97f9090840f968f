// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprintproduct"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintProductUpdate is the builder for updating BlueprintProduct entities.
type BlueprintProductUpdate struct {
	config
	hooks     []Hook
	mutation  *BlueprintProductMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the BlueprintProductUpdate builder.
func (bpu *BlueprintProductUpdate) Where(ps ...predicate.BlueprintProduct) *BlueprintProductUpdate {
	bpu.mutation.Where(ps...)
	return bpu
}

// SetBlueprintID sets the "blueprint_id" field.
func (bpu *BlueprintProductUpdate) SetBlueprintID(u uint) *BlueprintProductUpdate {
	bpu.mutation.ResetBlueprintID()
	bpu.mutation.SetBlueprintID(u)
	return bpu
}

// SetNillableBlueprintID sets the "blueprint_id" field if the given value is not nil.
func (bpu *BlueprintProductUpdate) SetNillableBlueprintID(u *uint) *BlueprintProductUpdate {
	if u != nil {
		bpu.SetBlueprintID(*u)
	}
	return bpu
}

// AddBlueprintID adds u to the "blueprint_id" field.
func (bpu *BlueprintProductUpdate) AddBlueprintID(u int) *BlueprintProductUpdate {
	bpu.mutation.AddBlueprintID(u)
	return bpu
}

// SetItemID sets the "item_id" field.
func (bpu *BlueprintProductUpdate) SetItemID(i int) *BlueprintProductUpdate {
	bpu.mutation.ResetItemID()
	bpu.mutation.SetItemID(i)
	return bpu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (bpu *BlueprintProductUpdate) SetNillableItemID(i *int) *BlueprintProductUpdate {
	if i != nil {
		bpu.SetItemID(*i)
	}
	return bpu
}

// AddItemID adds i to the "item_id" field.
func (bpu *BlueprintProductUpdate) AddItemID(i int) *BlueprintProductUpdate {
	bpu.mutation.AddItemID(i)
	return bpu
}

// SetCount sets the "count" field.
func (bpu *BlueprintProductUpdate) SetCount(i int) *BlueprintProductUpdate {
	bpu.mutation.ResetCount()
	bpu.mutation.SetCount(i)
	return bpu
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (bpu *BlueprintProductUpdate) SetNillableCount(i *int) *BlueprintProductUpdate {
	if i != nil {
		bpu.SetCount(*i)
	}
	return bpu
}

// AddCount adds i to the "count" field.
func (bpu *BlueprintProductUpdate) AddCount(i int) *BlueprintProductUpdate {
	bpu.mutation.AddCount(i)
	return bpu
}

// Mutation returns the BlueprintProductMutation object of the builder.
func (bpu *BlueprintProductUpdate) Mutation() *BlueprintProductMutation {
	return bpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bpu *BlueprintProductUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, bpu.sqlSave, bpu.mutation, bpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bpu *BlueprintProductUpdate) SaveX(ctx context.Context) int {
	affected, err := bpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bpu *BlueprintProductUpdate) Exec(ctx context.Context) error {
	_, err := bpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bpu *BlueprintProductUpdate) ExecX(ctx context.Context) {
	if err := bpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (bpu *BlueprintProductUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BlueprintProductUpdate {
	bpu.modifiers = append(bpu.modifiers, modifiers...)
	return bpu
}

func (bpu *BlueprintProductUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(blueprintproduct.Table, blueprintproduct.Columns, sqlgraph.NewFieldSpec(blueprintproduct.FieldID, field.TypeUint))
	if ps := bpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bpu.mutation.BlueprintID(); ok {
		_spec.SetField(blueprintproduct.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bpu.mutation.AddedBlueprintID(); ok {
		_spec.AddField(blueprintproduct.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bpu.mutation.ItemID(); ok {
		_spec.SetField(blueprintproduct.FieldItemID, field.TypeInt, value)
	}
	if value, ok := bpu.mutation.AddedItemID(); ok {
		_spec.AddField(blueprintproduct.FieldItemID, field.TypeInt, value)
	}
	if value, ok := bpu.mutation.Count(); ok {
		_spec.SetField(blueprintproduct.FieldCount, field.TypeInt, value)
	}
	if value, ok := bpu.mutation.AddedCount(); ok {
		_spec.AddField(blueprintproduct.FieldCount, field.TypeInt, value)
	}
	_spec.AddModifiers(bpu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, bpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bpu.mutation.done = true
	return n, nil
}

// BlueprintProductUpdateOne is the builder for updating a single BlueprintProduct entity.
type BlueprintProductUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *BlueprintProductMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetBlueprintID sets the "blueprint_id" field.
func (bpuo *BlueprintProductUpdateOne) SetBlueprintID(u uint) *BlueprintProductUpdateOne {
	bpuo.mutation.ResetBlueprintID()
	bpuo.mutation.SetBlueprintID(u)
	return bpuo
}

// SetNillableBlueprintID sets the "blueprint_id" field if the given value is not nil.
func (bpuo *BlueprintProductUpdateOne) SetNillableBlueprintID(u *uint) *BlueprintProductUpdateOne {
	if u != nil {
		bpuo.SetBlueprintID(*u)
	}
	return bpuo
}

// AddBlueprintID adds u to the "blueprint_id" field.
func (bpuo *BlueprintProductUpdateOne) AddBlueprintID(u int) *BlueprintProductUpdateOne {
	bpuo.mutation.AddBlueprintID(u)
	return bpuo
}

// SetItemID sets the "item_id" field.
func (bpuo *BlueprintProductUpdateOne) SetItemID(i int) *BlueprintProductUpdateOne {
	bpuo.mutation.ResetItemID()
	bpuo.mutation.SetItemID(i)
	return bpuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (bpuo *BlueprintProductUpdateOne) SetNillableItemID(i *int) *BlueprintProductUpdateOne {
	if i != nil {
		bpuo.SetItemID(*i)
	}
	return bpuo
}

// AddItemID adds i to the "item_id" field.
func (bpuo *BlueprintProductUpdateOne) AddItemID(i int) *BlueprintProductUpdateOne {
	bpuo.mutation.AddItemID(i)
	return bpuo
}

// SetCount sets the "count" field.
func (bpuo *BlueprintProductUpdateOne) SetCount(i int) *BlueprintProductUpdateOne {
	bpuo.mutation.ResetCount()
	bpuo.mutation.SetCount(i)
	return bpuo
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (bpuo *BlueprintProductUpdateOne) SetNillableCount(i *int) *BlueprintProductUpdateOne {
	if i != nil {
		bpuo.SetCount(*i)
	}
	return bpuo
}

// AddCount adds i to the "count" field.
func (bpuo *BlueprintProductUpdateOne) AddCount(i int) *BlueprintProductUpdateOne {
	bpuo.mutation.AddCount(i)
	return bpuo
}

// Mutation returns the BlueprintProductMutation object of the builder.
func (bpuo *BlueprintProductUpdateOne) Mutation() *BlueprintProductMutation {
	return bpuo.mutation
}

// Where appends a list predicates to the BlueprintProductUpdate builder.
func (bpuo *BlueprintProductUpdateOne) Where(ps ...predicate.BlueprintProduct) *BlueprintProductUpdateOne {
	bpuo.mutation.Where(ps...)
	return bpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (bpuo *BlueprintProductUpdateOne) Select(field string, fields ...string) *BlueprintProductUpdateOne {
	bpuo.fields = append([]string{field}, fields...)
	return bpuo
}

// Save executes the query and returns the updated BlueprintProduct entity.
func (bpuo *BlueprintProductUpdateOne) Save(ctx context.Context) (*BlueprintProduct, error) {
	return withHooks(ctx, bpuo.sqlSave, bpuo.mutation, bpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bpuo *BlueprintProductUpdateOne) SaveX(ctx context.Context) *BlueprintProduct {
	node, err := bpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (bpuo *BlueprintProductUpdateOne) Exec(ctx context.Context) error {
	_, err := bpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bpuo *BlueprintProductUpdateOne) ExecX(ctx context.Context) {
	if err := bpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (bpuo *BlueprintProductUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BlueprintProductUpdateOne {
	bpuo.modifiers = append(bpuo.modifiers, modifiers...)
	return bpuo
}

func (bpuo *BlueprintProductUpdateOne) sqlSave(ctx context.Context) (_node *BlueprintProduct, err error) {
	_spec := sqlgraph.NewUpdateSpec(blueprintproduct.Table, blueprintproduct.Columns, sqlgraph.NewFieldSpec(blueprintproduct.FieldID, field.TypeUint))
	id, ok := bpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlueprintProduct.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := bpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintproduct.FieldID)
		for _, f := range fields {
			if !blueprintproduct.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprintproduct.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := bpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bpuo.mutation.BlueprintID(); ok {
		_spec.SetField(blueprintproduct.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bpuo.mutation.AddedBlueprintID(); ok {
		_spec.AddField(blueprintproduct.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bpuo.mutation.ItemID(); ok {
		_spec.SetField(blueprintproduct.FieldItemID, field.TypeInt, value)
	}
	if value, ok := bpuo.mutation.AddedItemID(); ok {
		_spec.AddField(blueprintproduct.FieldItemID, field.TypeInt, value)
	}
	if value, ok := bpuo.mutation.Count(); ok {
		_spec.SetField(blueprintproduct.FieldCount, field.TypeInt, value)
	}
	if value, ok := bpuo.mutation.AddedCount(); ok {
		_spec.AddField(blueprintproduct.FieldCount, field.TypeInt, value)
	}
	_spec.AddModifiers(bpuo.modifiers...)
	_node = &BlueprintProduct{config: bpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, bpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	bpuo.mutation.done = true
	return _node, nil
}
